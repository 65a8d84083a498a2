package scheduler

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/buyclientuz-pixel/targetbot-sub002/internal/domain"
	"github.com/buyclientuz-pixel/targetbot-sub002/internal/usecases/insighting"
)

func TestFormatReport(t *testing.T) {
	project := &domain.Project{ID: "P1", Name: "Loja Centro"}

	ctr := 2.5
	summary := &domain.InsightSummary{
		AccountID:   "ACC1",
		Spend:       150.0,
		Impressions: 4000,
		Clicks:      100,
		Leads:       8,
		CTR:         &ctr,
	}

	sections := []*reportSection{
		{
			Key: domain.PeriodToday,
			Result: &insighting.SummaryResult{
				Summary: summary,
				KPI:     domain.KPITypeLead,
			},
		},
		{Key: domain.PeriodYesterday, Unavailable: true},
	}

	snapshot := &domain.LeadListSnapshot{Stats: domain.LeadStats{Total: 20, Today: 4}}

	text := formatReport(project, snapshot, sections)

	assert.True(t, strings.Contains(text, "<b>Loja Centro</b>"))
	assert.True(t, strings.Contains(text, "20 no total, 4 hoje"))
	assert.True(t, strings.Contains(text, "<b>Hoje</b>"))
	assert.True(t, strings.Contains(text, "Leads: 8"))
	assert.True(t, strings.Contains(text, "CTR: 2.50%"))
	// CPC com denominador zero renderiza travessão, nunca 0
	assert.True(t, strings.Contains(text, "CPC: —"))
	// Período indisponível é dito como tal, nunca zerado
	assert.True(t, strings.Contains(text, "<b>Ontem</b>\nmétricas indisponíveis"))
}

func TestFormatReportSemSnapshot(t *testing.T) {
	project := &domain.Project{ID: "P1", Name: "Loja Centro"}

	text := formatReport(project, nil, nil)

	assert.True(t, strings.Contains(text, "Loja Centro"))
	assert.False(t, strings.Contains(text, "no total"))
}

func TestFormatPaymentAlert(t *testing.T) {
	project := &domain.Project{ID: "P1", Name: "Loja Centro"}

	unsettled := formatPaymentAlert(project, domain.AccountStatusUnsettled)
	assert.True(t, strings.Contains(unsettled, "pendência de pagamento"))

	disabled := formatPaymentAlert(project, domain.AccountStatusDisabled)
	assert.True(t, strings.Contains(disabled, "desativada"))
}

func TestResolveSlotInstant(t *testing.T) {
	saoPaulo, err := time.LoadLocation("America/Sao_Paulo")
	assert.NoError(t, err)

	now := time.Date(2024, 6, 15, 18, 30, 0, 0, time.UTC)

	instant, err := resolveSlotInstant("09:15", now, saoPaulo)
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 15, 9, 15, 0, 0, saoPaulo), instant)

	_, err = resolveSlotInstant("25:99", now, saoPaulo)
	assert.Error(t, err)
}
