package meta

import (
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	metadomain "github.com/buyclientuz-pixel/targetbot-sub002/infrastructure/integrator/meta/domain"
	"github.com/buyclientuz-pixel/targetbot-sub002/internal/domain"
	"github.com/buyclientuz-pixel/targetbot-sub002/pkg/utils"
)

// ActionCategory é uma categoria reconhecida de ação. O conjunto é fechado:
// tipos de ação fora dele são ignorados na agregação.
type ActionCategory string

const (
	CategoryLead     ActionCategory = "lead"
	CategoryMessage  ActionCategory = "message"
	CategoryPurchase ActionCategory = "purchase"
)

// ClassifyAction mapeia um tipo de ação bruto para a sua categoria.
func ClassifyAction(actionType string) (ActionCategory, bool) {
	switch {
	case strings.Contains(actionType, "lead"):
		return CategoryLead, true
	case strings.HasPrefix(actionType, "onsite_conversion.messaging_"):
		return CategoryMessage, true
	case strings.Contains(actionType, "purchase"):
		return CategoryPurchase, true
	}

	return "", false
}

// sumActions acumula as ações por categoria, somando todas as variantes que
// a API reporta para o mesmo evento (ex.: "lead" e
// "onsite_conversion.lead_grouped").
func sumActions(actions []metadomain.Action) map[ActionCategory]int {
	totals := make(map[ActionCategory]int)

	for _, action := range actions {
		category, ok := ClassifyAction(action.ActionType)
		if !ok {
			continue
		}

		totals[category] += parseMetricInt(action.ActionType, action.Value)
	}

	return totals
}

// FactoryInsightSummary normaliza a linha bruta de insights da conta.
// Uma linha nil (período sem entrega) vira um resumo zerado, com as métricas
// derivadas nil.
func FactoryInsightSummary(accountID string, row *metadomain.AccountInsight) *domain.InsightSummary {
	summary := &domain.InsightSummary{AccountID: accountID}
	if row == nil {
		return summary
	}

	summary.Spend = parseMetricFloat("spend", row.Spend)
	summary.Impressions = parseMetricInt("impressions", row.Impressions)
	summary.Clicks = parseMetricInt("clicks", row.Clicks)
	summary.Reach = parseMetricInt("reach", row.Reach)

	totals := sumActions(row.Actions)
	summary.Leads = totals[CategoryLead]
	summary.Messages = totals[CategoryMessage]
	summary.Purchases = totals[CategoryPurchase]

	if row.Frequency != "" {
		frequency := parseMetricFloat("frequency", row.Frequency)
		summary.Frequency = &frequency
	}

	summary.CTR = ratio(float64(summary.Clicks)*100, float64(summary.Impressions))
	summary.CPC = ratio(summary.Spend, float64(summary.Clicks))
	summary.CPA = ratio(summary.Spend, float64(summary.Leads))

	return summary
}

// FactoryCampaignRows normaliza as linhas de insights por campanha,
// anexando o status de veiculação vindo da listagem de campanhas.
func FactoryCampaignRows(insights []metadomain.CampaignInsight, campaigns []metadomain.Campaign) []*domain.CampaignRow {
	statusByID := make(map[string]string, len(campaigns))
	for _, campaign := range campaigns {
		statusByID[campaign.ID] = campaign.Status
	}

	rows := make([]*domain.CampaignRow, 0, len(insights))
	for i := range insights {
		insight := &insights[i]

		row := &domain.CampaignRow{
			ID:          insight.CampaignID,
			Name:        insight.CampaignName,
			Status:      statusByID[insight.CampaignID],
			Spend:       parseMetricFloat("spend", insight.Spend),
			Impressions: parseMetricInt("impressions", insight.Impressions),
			Clicks:      parseMetricInt("clicks", insight.Clicks),
		}

		totals := sumActions(insight.Actions)
		row.Leads = totals[CategoryLead]
		row.Messages = totals[CategoryMessage]

		if insight.Frequency != "" {
			frequency := parseMetricFloat("frequency", insight.Frequency)
			row.Frequency = &frequency
		}

		row.CTR = ratio(float64(row.Clicks)*100, float64(row.Impressions))
		row.CPC = ratio(row.Spend, float64(row.Clicks))
		row.CPA = ratio(row.Spend, float64(row.Leads))

		rows = append(rows, row)
	}

	return rows
}

// ratio devolve num/den arredondado, ou nil quando o denominador é zero.
// Métricas derivadas nunca viram 0 ou NaN por divisão inválida.
func ratio(num, den float64) *float64 {
	if den == 0 {
		return nil
	}

	value := utils.RoundWithTwoDecimalPlace(num / den)
	return &value
}

// parseMetricInt converte uma métrica textual em inteiro. Valor ilegível
// vira zero, nunca um erro.
func parseMetricInt(field, raw string) int {
	if raw == "" {
		return 0
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"field": field,
			"value": raw,
		}).Warn("insights: unparseable metric value, coercing to zero")
		return 0
	}

	return value
}

func parseMetricFloat(field, raw string) float64 {
	if raw == "" {
		return 0
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"field": field,
			"value": raw,
		}).Warn("insights: unparseable metric value, coercing to zero")
		return 0
	}

	return value
}
