package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/buyclientuz-pixel/targetbot-sub002/infrastructure/integrator/telegram"
	"github.com/buyclientuz-pixel/targetbot-sub002/infrastructure/repository"
	"github.com/buyclientuz-pixel/targetbot-sub002/internal/config"
	"github.com/buyclientuz-pixel/targetbot-sub002/internal/domain"
	"github.com/buyclientuz-pixel/targetbot-sub002/internal/usecases/insighting"
	"github.com/buyclientuz-pixel/targetbot-sub002/internal/usecases/leadsync"
)

// ReportDispatchConfig representa a configuração do agendador de relatórios
type ReportDispatchConfig struct {
	CronSchedule     string
	ToleranceMinutes int
	MaxConcurrent    int
	SyncEnabled      bool
}

// ReportDispatchService gerencia o tick periódico que despacha relatórios
// agendados e alertas de cobrança por projeto
type ReportDispatchService struct {
	scheduler           *gocron.Scheduler
	config              ReportDispatchConfig
	appConfig           *config.Config
	projectRepo         repository.ProjectRepository
	scheduleRepo        repository.ReportScheduleRepository
	stateRepo           repository.ScheduleStateRepository
	insighter           insighting.Insighter
	provider            insighting.Provider
	leadSync            leadsync.Merger
	dispatcher          telegram.Dispatcher
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	now                 func() time.Time
}

// NewReportDispatchService cria uma nova instância do agendador de relatórios
func NewReportDispatchService(
	projectRepo repository.ProjectRepository,
	scheduleRepo repository.ReportScheduleRepository,
	stateRepo repository.ScheduleStateRepository,
	insighter insighting.Insighter,
	provider insighting.Provider,
	leadSync leadsync.Merger,
	dispatcher telegram.Dispatcher,
	appConfig *config.Config,
) *ReportDispatchService {
	dispatchConfig := ReportDispatchConfig{
		CronSchedule:     appConfig.ReportSync.CronSchedule,
		ToleranceMinutes: appConfig.ReportSync.ToleranceMinutes,
		MaxConcurrent:    appConfig.ReportSync.MaxConcurrent,
		SyncEnabled:      appConfig.ReportSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.UTC)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":     dispatchConfig.CronSchedule,
		"tolerance_minutes": dispatchConfig.ToleranceMinutes,
		"max_concurrent":    dispatchConfig.MaxConcurrent,
		"sync_enabled":      dispatchConfig.SyncEnabled,
	}).Info("Configuração do agendador de relatórios carregada")

	return &ReportDispatchService{
		scheduler:    scheduler,
		config:       dispatchConfig,
		appConfig:    appConfig,
		projectRepo:  projectRepo,
		scheduleRepo: scheduleRepo,
		stateRepo:    stateRepo,
		insighter:    insighter,
		provider:     provider,
		leadSync:     leadSync,
		dispatcher:   dispatcher,
		now:          time.Now,
	}
}

// Start inicia o agendador
func (s *ReportDispatchService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Despacho de relatórios desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de despacho de relatórios")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runGuardedTick(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar despacho de relatórios: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de despacho de relatórios")
		s.scheduler.Stop()
	}()

	return nil
}

// runGuardedTick executa um tick garantindo que invocações não se sobreponham
func (s *ReportDispatchService) runGuardedTick(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Tick de relatórios já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	s.lastSyncStartedAt = s.now()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
		s.lastSyncCompletedAt = s.now()
	}()

	s.RunTick(ctx, s.lastSyncStartedAt)
}

// RunTick avalia todos os projetos ativos no instante dado. A falha (ou
// pânico) no processamento de um projeto não afeta os demais.
func (s *ReportDispatchService) RunTick(ctx context.Context, now time.Time) {
	projects, err := s.projectRepo.ListByStatus(ctx, domain.ProjectStatusActive)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar projetos ativos para o tick de relatórios")
		return
	}

	logrus.WithFields(logrus.Fields{
		"projects": len(projects),
		"now":      now.Format(time.RFC3339),
	}).Info("Iniciando tick de despacho de relatórios")

	semaphore := make(chan struct{}, s.config.MaxConcurrent)
	var wg sync.WaitGroup

	for _, project := range projects {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(p *domain.Project) {
			defer func() {
				if r := recover(); r != nil {
					logrus.WithFields(logrus.Fields{
						"project_id": p.ID,
						"panic":      fmt.Sprintf("%v", r),
					}).Error("Pânico isolado no processamento do projeto")
				}
				<-semaphore
				wg.Done()
			}()

			s.processProject(ctx, p, now)
		}(project)
	}

	wg.Wait()
}

// processProject avalia os slots e os alertas de cobrança de um projeto
func (s *ReportDispatchService) processProject(ctx context.Context, project *domain.Project, now time.Time) {
	schedule, err := s.scheduleRepo.GetByProjectID(ctx, project.ID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"project_id": project.ID,
			"error":      err.Error(),
		}).Error("Erro ao carregar a agenda do projeto")
		return
	}
	if schedule == nil {
		return
	}

	state, err := s.stateRepo.Get(ctx, project.ID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"project_id": project.ID,
			"error":      err.Error(),
		}).Error("Erro ao carregar o estado do agendador do projeto")
		return
	}

	stateDirty := false

	if schedule.Enabled {
		if s.processSlots(ctx, project, schedule, state, now) {
			stateDirty = true
		}
	}

	if schedule.PaymentAlerts.Enabled {
		if s.processPaymentAlerts(ctx, project, schedule, state, now) {
			stateDirty = true
		}
	}

	if stateDirty {
		if err := s.stateRepo.Save(ctx, state); err != nil {
			logrus.WithFields(logrus.Fields{
				"project_id": project.ID,
				"error":      err.Error(),
			}).Error("Erro ao salvar o estado do agendador do projeto")
		}
	}
}

// processSlots despacha os slots devidos do projeto. Devolve true quando o
// estado foi alterado.
//
// Um slot é devido quando |now - instante do slot| cabe na tolerância e ele
// ainda não foi carimbado com a data local corrente. O carimbo só acontece
// após um despacho bem-sucedido: falha de entrega deixa o slot elegível para
// o próximo tick dentro da tolerância.
func (s *ReportDispatchService) processSlots(ctx context.Context, project *domain.Project, schedule *domain.ReportSchedule, state *domain.ScheduleState, now time.Time) bool {
	loc := project.Location()
	localDate := domain.LocalDate(now, loc)
	tolerance := time.Duration(s.config.ToleranceMinutes) * time.Minute

	dirty := false

	for _, slot := range schedule.Slots {
		slotInstant, err := resolveSlotInstant(slot, now, loc)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"project_id": project.ID,
				"slot":       slot,
			}).Warn("Slot com formato inválido, ignorando")
			continue
		}

		offset := now.Sub(slotInstant)
		if offset < 0 {
			offset = -offset
		}
		if offset > tolerance {
			continue
		}

		if state.SlotDispatchedOn(slot, localDate) {
			continue
		}

		if !schedule.SendToChat && !schedule.SendToAdmin {
			// Sem destinatários o despacho é um sucesso silencioso, mas o
			// carimbo acontece para manter a semântica de uma vez por dia.
			state.MarkSlotDispatched(slot, localDate)
			dirty = true
			continue
		}

		text := s.composeReport(ctx, project, schedule)

		route := telegram.Route{
			ChatID:      project.ChatID,
			SendToChat:  schedule.SendToChat,
			SendToAdmin: schedule.SendToAdmin,
		}

		if _, err := s.dispatcher.Dispatch(ctx, route, text); err != nil {
			logrus.WithFields(logrus.Fields{
				"project_id": project.ID,
				"slot":       slot,
				"error":      err.Error(),
			}).Error("Erro ao despachar relatório, slot permanece elegível")
			continue
		}

		state.MarkSlotDispatched(slot, localDate)
		dirty = true

		logrus.WithFields(logrus.Fields{
			"project_id": project.ID,
			"slot":       slot,
			"local_date": localDate,
		}).Info("Relatório despachado")
	}

	return dirty
}

// processPaymentAlerts aplica a histerese de alertas de cobrança: o alerta
// dispara apenas na transição para bloqueado. Devolve true quando o estado
// foi alterado.
func (s *ReportDispatchService) processPaymentAlerts(ctx context.Context, project *domain.Project, schedule *domain.ReportSchedule, state *domain.ScheduleState, now time.Time) bool {
	status, err := s.provider.GetAccountStatus(ctx, project.AccountID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"project_id": project.ID,
			"error":      err.Error(),
		}).Warn("Erro ao consultar o status da conta, alerta adiado")
		return false
	}

	previous := state.PaymentAlerts.LastAccountStatus
	dirty := false

	if status.Blocked() && !previous.Blocked() {
		text := formatPaymentAlert(project, status)

		route := telegram.Route{
			ChatID:      project.ChatID,
			SendToChat:  schedule.PaymentAlerts.SendToChat,
			SendToAdmin: schedule.PaymentAlerts.SendToAdmin,
		}

		if _, err := s.dispatcher.Dispatch(ctx, route, text); err != nil {
			logrus.WithFields(logrus.Fields{
				"project_id": project.ID,
				"status":     string(status),
				"error":      err.Error(),
			}).Error("Erro ao despachar alerta de cobrança")
			// O status anterior não é atualizado: a transição continua
			// pendente e o alerta será tentado no próximo tick.
			return false
		}

		alertAt := now
		state.PaymentAlerts.LastAlertAt = &alertAt
		dirty = true

		logrus.WithFields(logrus.Fields{
			"project_id": project.ID,
			"status":     string(status),
		}).Info("Alerta de cobrança despachado")
	}

	if status != previous {
		state.PaymentAlerts.LastAccountStatus = status
		dirty = true
	}

	return dirty
}

// composeReport monta o texto do relatório com os períodos do modo da
// agenda. Antes de compor, sincroniza os leads para que os contadores do dia
// estejam frescos; a falha da sincronização não bloqueia o relatório.
func (s *ReportDispatchService) composeReport(ctx context.Context, project *domain.Project, schedule *domain.ReportSchedule) string {
	snapshot, err := s.leadSync.SyncProject(ctx, project)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"project_id": project.ID,
			"error":      err.Error(),
		}).Warn("Erro ao sincronizar leads antes do relatório")

		if snapshot, err = s.leadSync.GetSnapshot(ctx, project.ID); err != nil {
			snapshot = nil
		}
	}

	sections := make([]*reportSection, 0, len(schedule.Mode.Periods()))
	for _, key := range schedule.Mode.Periods() {
		section := &reportSection{Key: key}

		result, err := s.insighter.GetSummary(ctx, project, key, nil)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"project_id": project.ID,
				"period":     string(key),
				"error":      err.Error(),
			}).Warn("Período indisponível no relatório")
			section.Unavailable = true
		} else {
			section.Result = result
		}

		sections = append(sections, section)
	}

	return formatReport(project, snapshot, sections)
}

// resolveSlotInstant converte um slot "HH:MM" no instante correspondente do
// dia local corrente.
func resolveSlotInstant(slot string, now time.Time, loc *time.Location) (time.Time, error) {
	parsed, err := time.Parse("15:04", slot)
	if err != nil {
		return time.Time{}, err
	}

	local := now.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), parsed.Hour(), parsed.Minute(), 0, 0, loc), nil
}

// TriggerManualSync inicia manualmente um tick de despacho de relatórios
func (s *ReportDispatchService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Tick de relatórios já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando tick manual de despacho de relatórios")
	go s.runGuardedTick(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *ReportDispatchService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"tolerance_minutes":      s.config.ToleranceMinutes,
		"max_concurrent":         s.config.MaxConcurrent,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
