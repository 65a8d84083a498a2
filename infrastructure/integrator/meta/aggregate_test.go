package meta

import (
	"testing"

	"github.com/stretchr/testify/assert"

	metadomain "github.com/buyclientuz-pixel/targetbot-sub002/infrastructure/integrator/meta/domain"
)

func TestClassifyAction(t *testing.T) {
	tests := []struct {
		name       string
		actionType string
		category   ActionCategory
		recognized bool
	}{
		{
			name:       "Tipo contendo lead vira categoria lead",
			actionType: "onsite_conversion.lead_grouped",
			category:   CategoryLead,
			recognized: true,
		},
		{
			name:       "Lead simples também é reconhecido",
			actionType: "lead",
			category:   CategoryLead,
			recognized: true,
		},
		{
			name:       "Conversa iniciada vira categoria message",
			actionType: "onsite_conversion.messaging_conversation_started_7d",
			category:   CategoryMessage,
			recognized: true,
		},
		{
			name:       "Compra vira categoria purchase",
			actionType: "offsite_conversion.fb_pixel_purchase",
			category:   CategoryPurchase,
			recognized: true,
		},
		{
			name:       "Tipo fora do conjunto fechado é ignorado",
			actionType: "post_engagement",
			recognized: false,
		},
		{
			name:       "Messaging sem o prefixo onsite não é conversa",
			actionType: "messaging_first_reply",
			recognized: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			category, ok := ClassifyAction(tt.actionType)
			assert.Equal(t, tt.recognized, ok)
			if tt.recognized {
				assert.Equal(t, tt.category, category)
			}
		})
	}
}

func TestFactoryInsightSummary(t *testing.T) {
	t.Run("Variantes da mesma categoria são somadas", func(t *testing.T) {
		row := &metadomain.AccountInsight{
			Spend:       "100.50",
			Impressions: "10000",
			Clicks:      "250",
			Reach:       "8000",
			Actions: []metadomain.Action{
				{ActionType: "lead", Value: "10"},
				{ActionType: "onsite_conversion.lead_grouped", Value: "12"},
				{ActionType: "leadgen_grouped", Value: "8"},
				{ActionType: "onsite_conversion.messaging_conversation_started_7d", Value: "5"},
				{ActionType: "purchase", Value: "2"},
				{ActionType: "post_engagement", Value: "999"},
			},
		}

		summary := FactoryInsightSummary("ACC1", row)

		assert.Equal(t, "ACC1", summary.AccountID)
		assert.Equal(t, 30, summary.Leads)
		assert.Equal(t, 5, summary.Messages)
		assert.Equal(t, 2, summary.Purchases)
		assert.Equal(t, 100.50, summary.Spend)
		assert.Equal(t, 10000, summary.Impressions)
		assert.Equal(t, 250, summary.Clicks)
		assert.Equal(t, 8000, summary.Reach)
	})

	t.Run("Lead e lead_grouped do mesmo período se acumulam", func(t *testing.T) {
		row := &metadomain.AccountInsight{
			Actions: []metadomain.Action{
				{ActionType: "lead", Value: "2"},
				{ActionType: "onsite_conversion.lead_grouped", Value: "3"},
			},
		}

		summary := FactoryInsightSummary("ACC1", row)

		assert.Equal(t, 5, summary.Leads)
	})

	t.Run("Métricas derivadas são calculadas e arredondadas", func(t *testing.T) {
		row := &metadomain.AccountInsight{
			Spend:       "90.00",
			Impressions: "1000",
			Clicks:      "50",
			Frequency:   "1.37",
			Actions: []metadomain.Action{
				{ActionType: "lead", Value: "6"},
				{ActionType: "onsite_conversion.messaging_conversation_started_7d", Value: "3"},
			},
		}

		summary := FactoryInsightSummary("ACC1", row)

		assert.NotNil(t, summary.CTR)
		assert.Equal(t, 5.0, *summary.CTR)
		assert.NotNil(t, summary.CPC)
		assert.Equal(t, 1.8, *summary.CPC)
		// CPA divide o investimento apenas pelos leads
		assert.NotNil(t, summary.CPA)
		assert.Equal(t, 15.0, *summary.CPA)
		assert.NotNil(t, summary.Frequency)
		assert.Equal(t, 1.37, *summary.Frequency)
	})

	t.Run("CPA fica nil sem leads, mesmo com conversas", func(t *testing.T) {
		row := &metadomain.AccountInsight{
			Spend:       "100.00",
			Impressions: "4000",
			Clicks:      "120",
			Actions: []metadomain.Action{
				{ActionType: "onsite_conversion.messaging_conversation_started_7d", Value: "6"},
			},
		}

		summary := FactoryInsightSummary("ACC1", row)

		assert.Equal(t, 0, summary.Leads)
		assert.Equal(t, 6, summary.Messages)
		assert.Nil(t, summary.CPA)
	})

	t.Run("Denominador zero deixa a métrica derivada nil", func(t *testing.T) {
		row := &metadomain.AccountInsight{
			Spend:       "50.00",
			Impressions: "0",
			Clicks:      "0",
		}

		summary := FactoryInsightSummary("ACC1", row)

		assert.Nil(t, summary.CTR)
		assert.Nil(t, summary.CPC)
		assert.Nil(t, summary.CPA)
		assert.Nil(t, summary.Frequency)
	})

	t.Run("Linha nil vira resumo zerado", func(t *testing.T) {
		summary := FactoryInsightSummary("ACC1", nil)

		assert.Equal(t, "ACC1", summary.AccountID)
		assert.Equal(t, 0.0, summary.Spend)
		assert.Equal(t, 0, summary.Leads)
		assert.Nil(t, summary.CTR)
		assert.Nil(t, summary.CPA)
	})

	t.Run("Valor ilegível é coagido para zero, nunca um erro", func(t *testing.T) {
		row := &metadomain.AccountInsight{
			Spend:       "not-a-number",
			Impressions: "1e4",
			Clicks:      "30",
			Actions: []metadomain.Action{
				{ActionType: "lead", Value: "??"},
			},
		}

		summary := FactoryInsightSummary("ACC1", row)

		assert.Equal(t, 0.0, summary.Spend)
		assert.Equal(t, 0, summary.Impressions)
		assert.Equal(t, 30, summary.Clicks)
		assert.Equal(t, 0, summary.Leads)
	})
}

func TestFactoryCampaignRows(t *testing.T) {
	insights := []metadomain.CampaignInsight{
		{
			CampaignID:   "C1",
			CampaignName: "Campanha A",
			Spend:        "40.00",
			Impressions:  "2000",
			Clicks:       "80",
			Actions: []metadomain.Action{
				{ActionType: "lead", Value: "4"},
			},
		},
		{
			CampaignID:   "C2",
			CampaignName: "Campanha B",
			Spend:        "10.00",
			Impressions:  "500",
			Clicks:       "0",
		},
	}

	campaigns := []metadomain.Campaign{
		{ID: "C1", Name: "Campanha A", Status: "ACTIVE"},
		{ID: "C3", Name: "Campanha C", Status: "PAUSED"},
	}

	rows := FactoryCampaignRows(insights, campaigns)

	assert.Len(t, rows, 2)

	assert.Equal(t, "C1", rows[0].ID)
	assert.Equal(t, "ACTIVE", rows[0].Status)
	assert.Equal(t, 4, rows[0].Leads)
	assert.NotNil(t, rows[0].CTR)
	assert.Equal(t, 4.0, *rows[0].CTR)
	assert.NotNil(t, rows[0].CPA)
	assert.Equal(t, 10.0, *rows[0].CPA)

	// Campanha sem entrada na listagem fica sem status, nunca é descartada
	assert.Equal(t, "C2", rows[1].ID)
	assert.Equal(t, "", rows[1].Status)
	assert.Nil(t, rows[1].CPC)
	assert.Nil(t, rows[1].CPA)
}
