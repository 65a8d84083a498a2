package scheduler

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/buyclientuz-pixel/targetbot-sub002/infrastructure/integrator/telegram"
	telmocks "github.com/buyclientuz-pixel/targetbot-sub002/infrastructure/integrator/telegram/mocks"
	repomocks "github.com/buyclientuz-pixel/targetbot-sub002/infrastructure/repository/mocks"
	"github.com/buyclientuz-pixel/targetbot-sub002/internal/domain"
	"github.com/buyclientuz-pixel/targetbot-sub002/internal/usecases/insighting"
	insmocks "github.com/buyclientuz-pixel/targetbot-sub002/internal/usecases/insighting/mocks"
	leadmocks "github.com/buyclientuz-pixel/targetbot-sub002/internal/usecases/leadsync/mocks"
)

type dispatchMocks struct {
	projectRepo  *repomocks.MockProjectRepository
	scheduleRepo *repomocks.MockReportScheduleRepository
	stateRepo    *repomocks.MockScheduleStateRepository
	insighter    *insmocks.MockInsighter
	provider     *insmocks.MockProvider
	leadSync     *leadmocks.MockMerger
	dispatcher   *telmocks.MockDispatcher
}

func newDispatchService(ctrl *gomock.Controller, now time.Time) (*ReportDispatchService, *dispatchMocks) {
	m := &dispatchMocks{
		projectRepo:  repomocks.NewMockProjectRepository(ctrl),
		scheduleRepo: repomocks.NewMockReportScheduleRepository(ctrl),
		stateRepo:    repomocks.NewMockScheduleStateRepository(ctrl),
		insighter:    insmocks.NewMockInsighter(ctrl),
		provider:     insmocks.NewMockProvider(ctrl),
		leadSync:     leadmocks.NewMockMerger(ctrl),
		dispatcher:   telmocks.NewMockDispatcher(ctrl),
	}

	service := &ReportDispatchService{
		config: ReportDispatchConfig{
			CronSchedule:     "*/5 * * * *",
			ToleranceMinutes: 5,
			MaxConcurrent:    2,
			SyncEnabled:      true,
		},
		projectRepo:  m.projectRepo,
		scheduleRepo: m.scheduleRepo,
		stateRepo:    m.stateRepo,
		insighter:    m.insighter,
		provider:     m.provider,
		leadSync:     m.leadSync,
		dispatcher:   m.dispatcher,
		now:          func() time.Time { return now },
	}

	return service, m
}

func testProject() *domain.Project {
	chatID := int64(-100123)
	return &domain.Project{
		ID:        "P1",
		Name:      "Loja Centro",
		AccountID: "ACC1",
		Timezone:  "America/Sao_Paulo",
		KPI:       domain.KPIConfig{Mode: domain.KPIModeAuto},
		ChatID:    &chatID,
		Status:    domain.ProjectStatusActive,
	}
}

func summaryResult(leads int) *insighting.SummaryResult {
	summary := &domain.InsightSummary{AccountID: "ACC1", Leads: leads, Clicks: 100, Spend: 50}
	return &insighting.SummaryResult{
		Summary: summary,
		KPI:     domain.SelectKPI(domain.KPIConfig{Mode: domain.KPIModeAuto}, summary),
	}
}

func expectComposedReport(m *dispatchMocks, project *domain.Project) {
	m.leadSync.EXPECT().
		SyncProject(gomock.Any(), project).
		Return(&domain.LeadListSnapshot{ProjectID: "P1", Stats: domain.LeadStats{Total: 12, Today: 3}}, nil)

	// Modo short compõe os dois períodos diários
	m.insighter.EXPECT().
		GetSummary(gomock.Any(), project, domain.PeriodToday, nil).
		Return(summaryResult(4), nil)
	m.insighter.EXPECT().
		GetSummary(gomock.Any(), project, domain.PeriodYesterday, nil).
		Return(summaryResult(7), nil)
}

func TestProcessSlots(t *testing.T) {
	saoPaulo, err := time.LoadLocation("America/Sao_Paulo")
	assert.NoError(t, err)

	// 12:02 locais de 15 de junho
	now := time.Date(2024, 6, 15, 12, 2, 0, 0, saoPaulo)
	localDate := "2024-06-15"
	ctx := context.Background()

	t.Run("Slot dentro da tolerância é despachado e carimbado com a data local", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newDispatchService(ctrl, now)
		project := testProject()
		schedule := &domain.ReportSchedule{
			ProjectID:  "P1",
			Enabled:    true,
			Slots:      []string{"12:00"},
			Mode:       domain.ReportModeShort,
			SendToChat: true,
		}
		state := &domain.ScheduleState{ProjectID: "P1"}

		expectComposedReport(m, project)
		m.dispatcher.EXPECT().
			Dispatch(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, route telegram.Route, text string) (*telegram.DispatchResult, error) {
				assert.True(t, route.SendToChat)
				assert.False(t, route.SendToAdmin)
				assert.True(t, strings.Contains(text, "Loja Centro"))
				assert.True(t, strings.Contains(text, "12 no total, 3 hoje"))
				return &telegram.DispatchResult{DeliveredChat: true}, nil
			})

		dirty := service.processSlots(ctx, project, schedule, state, now)

		assert.True(t, dirty)
		assert.True(t, state.SlotDispatchedOn("12:00", localDate))
	})

	t.Run("Slot fora da tolerância não dispara", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _ := newDispatchService(ctrl, now)
		project := testProject()
		schedule := &domain.ReportSchedule{
			ProjectID:  "P1",
			Enabled:    true,
			Slots:      []string{"09:00", "18:00"},
			Mode:       domain.ReportModeShort,
			SendToChat: true,
		}
		state := &domain.ScheduleState{ProjectID: "P1"}

		dirty := service.processSlots(ctx, project, schedule, state, now)

		assert.False(t, dirty)
		assert.False(t, state.SlotDispatchedOn("09:00", localDate))
	})

	t.Run("Slot já carimbado hoje não dispara de novo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _ := newDispatchService(ctrl, now)
		project := testProject()
		schedule := &domain.ReportSchedule{
			ProjectID:  "P1",
			Enabled:    true,
			Slots:      []string{"12:00"},
			Mode:       domain.ReportModeShort,
			SendToChat: true,
		}
		state := &domain.ScheduleState{
			ProjectID: "P1",
			Slots:     map[string]string{"12:00": localDate},
		}

		dirty := service.processSlots(ctx, project, schedule, state, now)

		assert.False(t, dirty)
	})

	t.Run("Carimbo de um dia anterior não bloqueia o despacho de hoje", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newDispatchService(ctrl, now)
		project := testProject()
		schedule := &domain.ReportSchedule{
			ProjectID:  "P1",
			Enabled:    true,
			Slots:      []string{"12:00"},
			Mode:       domain.ReportModeShort,
			SendToChat: true,
		}
		state := &domain.ScheduleState{
			ProjectID: "P1",
			Slots:     map[string]string{"12:00": "2024-06-14"},
		}

		expectComposedReport(m, project)
		m.dispatcher.EXPECT().
			Dispatch(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&telegram.DispatchResult{DeliveredChat: true}, nil)

		dirty := service.processSlots(ctx, project, schedule, state, now)

		assert.True(t, dirty)
		assert.True(t, state.SlotDispatchedOn("12:00", localDate))
	})

	t.Run("Falha de entrega deixa o slot elegível para o próximo tick", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newDispatchService(ctrl, now)
		project := testProject()
		schedule := &domain.ReportSchedule{
			ProjectID:  "P1",
			Enabled:    true,
			Slots:      []string{"12:00"},
			Mode:       domain.ReportModeShort,
			SendToChat: true,
		}
		state := &domain.ScheduleState{ProjectID: "P1"}

		expectComposedReport(m, project)
		m.dispatcher.EXPECT().
			Dispatch(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("telegram fora do ar"))

		dirty := service.processSlots(ctx, project, schedule, state, now)

		assert.False(t, dirty)
		assert.False(t, state.SlotDispatchedOn("12:00", localDate))
	})

	t.Run("Agenda sem destinatários carimba como sucesso silencioso", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _ := newDispatchService(ctrl, now)
		project := testProject()
		schedule := &domain.ReportSchedule{
			ProjectID: "P1",
			Enabled:   true,
			Slots:     []string{"12:00"},
			Mode:      domain.ReportModeShort,
		}
		state := &domain.ScheduleState{ProjectID: "P1"}

		dirty := service.processSlots(ctx, project, schedule, state, now)

		assert.True(t, dirty)
		assert.True(t, state.SlotDispatchedOn("12:00", localDate))
	})

	t.Run("Slot com formato inválido é ignorado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _ := newDispatchService(ctrl, now)
		project := testProject()
		schedule := &domain.ReportSchedule{
			ProjectID:  "P1",
			Enabled:    true,
			Slots:      []string{"meio-dia"},
			Mode:       domain.ReportModeShort,
			SendToChat: true,
		}
		state := &domain.ScheduleState{ProjectID: "P1"}

		dirty := service.processSlots(ctx, project, schedule, state, now)

		assert.False(t, dirty)
	})
}

func TestProcessPaymentAlerts(t *testing.T) {
	now := time.Date(2024, 6, 15, 15, 0, 0, 0, time.UTC)
	ctx := context.Background()

	schedule := &domain.ReportSchedule{
		ProjectID: "P1",
		PaymentAlerts: domain.PaymentAlertsConfig{
			Enabled:     true,
			SendToChat:  true,
			SendToAdmin: true,
		},
	}

	t.Run("Transição para bloqueado dispara exatamente um alerta", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newDispatchService(ctrl, now)
		project := testProject()
		state := &domain.ScheduleState{
			ProjectID:     "P1",
			PaymentAlerts: domain.PaymentAlertState{LastAccountStatus: domain.AccountStatusActive},
		}

		m.provider.EXPECT().
			GetAccountStatus(gomock.Any(), "ACC1").
			Return(domain.AccountStatusUnsettled, nil)
		m.dispatcher.EXPECT().
			Dispatch(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, route telegram.Route, text string) (*telegram.DispatchResult, error) {
				assert.True(t, route.SendToAdmin)
				assert.True(t, strings.Contains(text, "pendência de pagamento"))
				return &telegram.DispatchResult{DeliveredChat: true, DeliveredAdmin: true}, nil
			})

		dirty := service.processPaymentAlerts(ctx, project, schedule, state, now)

		assert.True(t, dirty)
		assert.Equal(t, domain.AccountStatusUnsettled, state.PaymentAlerts.LastAccountStatus)
		assert.NotNil(t, state.PaymentAlerts.LastAlertAt)
	})

	t.Run("Conta que permanece bloqueada não gera alerta repetido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newDispatchService(ctrl, now)
		project := testProject()
		state := &domain.ScheduleState{
			ProjectID:     "P1",
			PaymentAlerts: domain.PaymentAlertState{LastAccountStatus: domain.AccountStatusUnsettled},
		}

		m.provider.EXPECT().
			GetAccountStatus(gomock.Any(), "ACC1").
			Return(domain.AccountStatusUnsettled, nil)

		dirty := service.processPaymentAlerts(ctx, project, schedule, state, now)

		assert.False(t, dirty)
	})

	t.Run("Recuperação rearma a histerese para o próximo bloqueio", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newDispatchService(ctrl, now)
		project := testProject()
		state := &domain.ScheduleState{
			ProjectID:     "P1",
			PaymentAlerts: domain.PaymentAlertState{LastAccountStatus: domain.AccountStatusUnsettled},
		}

		m.provider.EXPECT().
			GetAccountStatus(gomock.Any(), "ACC1").
			Return(domain.AccountStatusActive, nil)

		dirty := service.processPaymentAlerts(ctx, project, schedule, state, now)

		assert.True(t, dirty)
		assert.Equal(t, domain.AccountStatusActive, state.PaymentAlerts.LastAccountStatus)

		// Novo bloqueio depois da recuperação dispara um segundo alerta
		m.provider.EXPECT().
			GetAccountStatus(gomock.Any(), "ACC1").
			Return(domain.AccountStatusDisabled, nil)
		m.dispatcher.EXPECT().
			Dispatch(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&telegram.DispatchResult{DeliveredChat: true}, nil)

		dirty = service.processPaymentAlerts(ctx, project, schedule, state, now)

		assert.True(t, dirty)
		assert.Equal(t, domain.AccountStatusDisabled, state.PaymentAlerts.LastAccountStatus)
	})

	t.Run("Falha na entrega do alerta mantém a transição pendente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newDispatchService(ctrl, now)
		project := testProject()
		state := &domain.ScheduleState{
			ProjectID:     "P1",
			PaymentAlerts: domain.PaymentAlertState{LastAccountStatus: domain.AccountStatusActive},
		}

		m.provider.EXPECT().
			GetAccountStatus(gomock.Any(), "ACC1").
			Return(domain.AccountStatusUnsettled, nil)
		m.dispatcher.EXPECT().
			Dispatch(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("telegram fora do ar"))

		dirty := service.processPaymentAlerts(ctx, project, schedule, state, now)

		assert.False(t, dirty)
		assert.Equal(t, domain.AccountStatusActive, state.PaymentAlerts.LastAccountStatus)
		assert.Nil(t, state.PaymentAlerts.LastAlertAt)
	})

	t.Run("Falha ao consultar o status adia o alerta sem tocar o estado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newDispatchService(ctrl, now)
		project := testProject()
		state := &domain.ScheduleState{
			ProjectID:     "P1",
			PaymentAlerts: domain.PaymentAlertState{LastAccountStatus: domain.AccountStatusActive},
		}

		m.provider.EXPECT().
			GetAccountStatus(gomock.Any(), "ACC1").
			Return(domain.AccountStatusUnknown, errors.New("provedor fora do ar"))

		dirty := service.processPaymentAlerts(ctx, project, schedule, state, now)

		assert.False(t, dirty)
		assert.Equal(t, domain.AccountStatusActive, state.PaymentAlerts.LastAccountStatus)
	})
}

func TestProcessProject(t *testing.T) {
	saoPaulo, err := time.LoadLocation("America/Sao_Paulo")
	assert.NoError(t, err)
	now := time.Date(2024, 6, 15, 12, 2, 0, 0, saoPaulo)
	ctx := context.Background()

	t.Run("Estado alterado é persistido ao final do processamento", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newDispatchService(ctrl, now)
		project := testProject()

		schedule := &domain.ReportSchedule{
			ProjectID:  "P1",
			Enabled:    true,
			Slots:      []string{"12:00"},
			Mode:       domain.ReportModeShort,
			SendToChat: true,
		}

		m.scheduleRepo.EXPECT().GetByProjectID(gomock.Any(), "P1").Return(schedule, nil)
		m.stateRepo.EXPECT().Get(gomock.Any(), "P1").Return(&domain.ScheduleState{ProjectID: "P1"}, nil)

		expectComposedReport(m, project)
		m.dispatcher.EXPECT().
			Dispatch(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&telegram.DispatchResult{DeliveredChat: true}, nil)

		m.stateRepo.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, state *domain.ScheduleState) error {
				assert.True(t, state.SlotDispatchedOn("12:00", "2024-06-15"))
				return nil
			})

		service.processProject(ctx, project, now)
	})

	t.Run("Projeto sem agenda não faz nada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newDispatchService(ctrl, now)
		project := testProject()

		m.scheduleRepo.EXPECT().GetByProjectID(gomock.Any(), "P1").Return(nil, nil)

		service.processProject(ctx, project, now)
	})
}
