package scheduler

import (
	"fmt"
	"strings"

	"github.com/buyclientuz-pixel/targetbot-sub002/internal/domain"
	"github.com/buyclientuz-pixel/targetbot-sub002/internal/usecases/insighting"
)

type reportSection struct {
	Key         domain.PeriodKey
	Result      *insighting.SummaryResult
	Unavailable bool
}

var periodLabels = map[domain.PeriodKey]string{
	domain.PeriodToday:     "Hoje",
	domain.PeriodYesterday: "Ontem",
	domain.PeriodWeek:      "Últimos 7 dias",
	domain.PeriodMonth:     "Últimos 30 dias",
}

var kpiLabels = map[domain.KPIType]string{
	domain.KPITypeLead:    "Leads",
	domain.KPITypeMessage: "Conversas",
	domain.KPITypeClick:   "Cliques",
}

// formatReport monta o texto HTML do relatório. Períodos indisponíveis são
// renderizados como tal, nunca como zeros.
func formatReport(project *domain.Project, snapshot *domain.LeadListSnapshot, sections []*reportSection) string {
	var b strings.Builder

	fmt.Fprintf(&b, "📊 <b>%s</b>\n", project.Name)

	if snapshot != nil {
		fmt.Fprintf(&b, "👤 Leads: %d no total, %d hoje\n", snapshot.Stats.Total, snapshot.Stats.Today)
	}

	for _, section := range sections {
		label := periodLabels[section.Key]
		if label == "" {
			label = string(section.Key)
		}

		fmt.Fprintf(&b, "\n<b>%s</b>\n", label)

		if section.Unavailable || section.Result == nil || section.Result.Summary == nil {
			b.WriteString("métricas indisponíveis\n")
			continue
		}

		summary := section.Result.Summary

		fmt.Fprintf(&b, "Investimento: %.2f\n", summary.Spend)
		fmt.Fprintf(&b, "Impressões: %d | Alcance: %d\n", summary.Impressions, summary.Reach)
		fmt.Fprintf(&b, "Cliques: %d | CTR: %s%% | CPC: %s\n",
			summary.Clicks, formatDerived(summary.CTR), formatDerived(summary.CPC))

		kpiLabel := kpiLabels[section.Result.KPI]
		fmt.Fprintf(&b, "%s: %d | CPA: %s\n",
			kpiLabel, kpiValue(section.Result.KPI, summary), formatDerived(summary.CPA))
	}

	return b.String()
}

// formatPaymentAlert monta o texto do alerta de bloqueio de cobrança
func formatPaymentAlert(project *domain.Project, status domain.AccountStatus) string {
	reason := "a conta de anúncios foi desativada"
	if status == domain.AccountStatusUnsettled {
		reason = "há uma pendência de pagamento na conta de anúncios"
	}

	return fmt.Sprintf("⚠️ <b>%s</b>\nVeiculação interrompida: %s. Regularize para retomar os anúncios.",
		project.Name, reason)
}

// formatDerived renderiza uma métrica derivada, com travessão quando o
// denominador era zero.
func formatDerived(value *float64) string {
	if value == nil {
		return "—"
	}
	return fmt.Sprintf("%.2f", *value)
}

func kpiValue(kpi domain.KPIType, summary *domain.InsightSummary) int {
	switch kpi {
	case domain.KPITypeLead:
		return summary.Leads
	case domain.KPITypeMessage:
		return summary.Messages
	default:
		return summary.Clicks
	}
}
