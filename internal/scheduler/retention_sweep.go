package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/buyclientuz-pixel/targetbot-sub002/infrastructure/repository"
	"github.com/buyclientuz-pixel/targetbot-sub002/internal/config"
	"github.com/buyclientuz-pixel/targetbot-sub002/internal/domain"
)

// RetentionConfig representa a configuração da varredura de retenção
type RetentionConfig struct {
	CronSchedule  string
	LeadDays      int
	CacheDays     int
	MaxConcurrent int
	SweepEnabled  bool
}

// RetentionService executa a varredura diária que apaga leads além do
// horizonte de retenção e entradas de cache velhas demais
type RetentionService struct {
	scheduler            *gocron.Scheduler
	config               RetentionConfig
	appConfig            *config.Config
	projectRepo          repository.ProjectRepository
	leadRepo             repository.LeadRepository
	cacheRepo            repository.MetricsCacheRepository
	sweepRunning         bool
	sweepMutex           sync.Mutex
	lastSweepStartedAt   time.Time
	lastSweepCompletedAt time.Time
	lastSummary          *domain.MaintenanceSummary
	now                  func() time.Time
}

// NewRetentionService cria uma nova instância do serviço de retenção
func NewRetentionService(
	projectRepo repository.ProjectRepository,
	leadRepo repository.LeadRepository,
	cacheRepo repository.MetricsCacheRepository,
	appConfig *config.Config,
) *RetentionService {
	retentionConfig := RetentionConfig{
		CronSchedule:  appConfig.Retention.CronSchedule,
		LeadDays:      appConfig.Retention.LeadDays,
		CacheDays:     appConfig.Retention.CacheDays,
		MaxConcurrent: appConfig.Retention.MaxConcurrent,
		SweepEnabled:  appConfig.Retention.Enabled,
	}

	scheduler := gocron.NewScheduler(time.UTC)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":  retentionConfig.CronSchedule,
		"lead_days":      retentionConfig.LeadDays,
		"cache_days":     retentionConfig.CacheDays,
		"max_concurrent": retentionConfig.MaxConcurrent,
		"sweep_enabled":  retentionConfig.SweepEnabled,
	}).Info("Configuração da varredura de retenção carregada")

	return &RetentionService{
		scheduler:   scheduler,
		config:      retentionConfig,
		appConfig:   appConfig,
		projectRepo: projectRepo,
		leadRepo:    leadRepo,
		cacheRepo:   cacheRepo,
		now:         time.Now,
	}
}

// Start inicia o agendador
func (s *RetentionService) Start(ctx context.Context) error {
	if !s.config.SweepEnabled {
		logrus.Info("Varredura de retenção desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador da varredura de retenção")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runGuardedSweep(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar varredura de retenção: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador da varredura de retenção")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *RetentionService) runGuardedSweep(ctx context.Context) {
	s.sweepMutex.Lock()
	if s.sweepRunning {
		s.sweepMutex.Unlock()
		logrus.Info("Varredura de retenção já em andamento, ignorando")
		return
	}
	s.sweepRunning = true
	s.sweepMutex.Unlock()

	s.lastSweepStartedAt = s.now()

	defer func() {
		s.sweepMutex.Lock()
		s.sweepRunning = false
		s.sweepMutex.Unlock()
		s.lastSweepCompletedAt = s.now()
	}()

	summary := s.RunMaintenance(ctx, s.lastSweepStartedAt)
	s.lastSummary = summary
}

// RunMaintenance varre todos os projetos com snapshot de leads e o cache de
// métricas. Falhas por projeto são registradas e puladas, nunca fatais.
func (s *RetentionService) RunMaintenance(ctx context.Context, now time.Time) *domain.MaintenanceSummary {
	summary := &domain.MaintenanceSummary{}

	projectIDs, err := s.leadRepo.SnapshotProjectIDs(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar projetos com snapshot de leads")
	}

	leadHorizon := now.AddDate(0, 0, -s.config.LeadDays)

	semaphore := make(chan struct{}, s.config.MaxConcurrent)
	var wg sync.WaitGroup
	var mu sync.Mutex

	for _, projectID := range projectIDs {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(pid string) {
			defer func() {
				if r := recover(); r != nil {
					logrus.WithFields(logrus.Fields{
						"project_id": pid,
						"panic":      fmt.Sprintf("%v", r),
					}).Error("Pânico isolado na varredura do projeto")
				}
				<-semaphore
				wg.Done()
			}()

			deleted, err := s.sweepProjectLeads(ctx, pid, leadHorizon, now)

			mu.Lock()
			summary.ScannedProjects++
			summary.DeletedLeadCount += deleted
			mu.Unlock()

			if err != nil {
				logrus.WithFields(logrus.Fields{
					"project_id": pid,
					"error":      err.Error(),
				}).Error("Erro na varredura de leads do projeto, pulando")
			}
		}(projectID)
	}

	wg.Wait()

	cacheCutoff := now.AddDate(0, 0, -s.config.CacheDays)
	deletedCache, err := s.cacheRepo.DeleteOlderThan(ctx, cacheCutoff)
	if err != nil {
		logrus.WithError(err).Error("Erro na evicção dura do cache de métricas")
	}
	summary.DeletedCacheCount = int(deletedCache)

	logrus.WithFields(logrus.Fields{
		"scanned_projects":    summary.ScannedProjects,
		"deleted_lead_count":  summary.DeletedLeadCount,
		"deleted_cache_count": summary.DeletedCacheCount,
	}).Info("Varredura de retenção concluída")

	return summary
}

// sweepProjectLeads remove do snapshot os leads criados antes do horizonte e
// apaga os documentos de detalhe correspondentes.
func (s *RetentionService) sweepProjectLeads(ctx context.Context, projectID string, horizon, now time.Time) (int, error) {
	snapshot, err := s.leadRepo.GetSnapshot(ctx, projectID)
	if err != nil {
		return 0, err
	}
	if snapshot == nil {
		return 0, nil
	}

	kept := make([]*domain.Lead, 0, len(snapshot.Leads))
	expired := make([]*domain.Lead, 0)
	for _, lead := range snapshot.Leads {
		if lead.CreatedAt.Before(horizon) {
			expired = append(expired, lead)
		} else {
			kept = append(kept, lead)
		}
	}

	if len(expired) == 0 {
		return 0, nil
	}

	loc := time.UTC
	if project, err := s.projectRepo.GetByID(ctx, projectID); err == nil && project != nil {
		loc = project.Location()
	}

	snapshot.Leads = kept
	snapshot.Stats = domain.ComputeLeadStats(kept, loc, now)

	if err := s.leadRepo.SaveSnapshot(ctx, snapshot); err != nil {
		return 0, err
	}

	for _, lead := range expired {
		if err := s.leadRepo.DeleteDetail(ctx, projectID, lead.ID); err != nil {
			logrus.WithFields(logrus.Fields{
				"project_id": projectID,
				"lead_id":    lead.ID,
				"error":      err.Error(),
			}).Warn("Erro ao apagar documento de detalhe do lead expirado")
		}
	}

	return len(expired), nil
}

// TriggerManualSweep inicia manualmente uma varredura de retenção
func (s *RetentionService) TriggerManualSweep() {
	s.sweepMutex.Lock()
	if s.sweepRunning {
		s.sweepMutex.Unlock()
		logrus.Info("Varredura de retenção já em andamento, ignorando solicitação manual")
		return
	}
	s.sweepMutex.Unlock()

	logrus.Info("Iniciando varredura manual de retenção")
	go s.runGuardedSweep(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *RetentionService) GetStatus() map[string]any {
	status := map[string]any{
		"sweep_enabled":           s.config.SweepEnabled,
		"sweep_cron":              s.config.CronSchedule,
		"lead_retention_days":     s.config.LeadDays,
		"cache_retention_days":    s.config.CacheDays,
		"last_sweep_started_at":   s.lastSweepStartedAt,
		"last_sweep_completed_at": s.lastSweepCompletedAt,
	}

	if s.lastSummary != nil {
		status["last_summary"] = s.lastSummary
	}

	return status
}
