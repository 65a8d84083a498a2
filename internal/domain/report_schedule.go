package domain

import "time"

// ReportMode define quais períodos compõem o relatório automático.
type ReportMode string

const (
	// ReportModeShort inclui apenas os períodos diários.
	ReportModeShort ReportMode = "short"
	// ReportModeFull inclui também as janelas de 7 e 30 dias.
	ReportModeFull ReportMode = "full"
)

// Periods devolve os períodos que o modo inclui, na ordem de composição.
func (m ReportMode) Periods() []PeriodKey {
	switch m {
	case ReportModeFull:
		return []PeriodKey{PeriodToday, PeriodYesterday, PeriodWeek, PeriodMonth}
	default:
		return []PeriodKey{PeriodToday, PeriodYesterday}
	}
}

// PaymentAlertsConfig configura os alertas de bloqueio de cobrança.
type PaymentAlertsConfig struct {
	Enabled     bool `json:"enabled"`
	SendToChat  bool `json:"send_to_chat"`
	SendToAdmin bool `json:"send_to_admin"`
}

// ReportSchedule é a agenda de relatórios de um projeto. Slots são horários
// "HH:MM" interpretados no fuso do projeto. Lida a cada tick do agendador.
type ReportSchedule struct {
	ProjectID     string              `json:"project_id"`
	Enabled       bool                `json:"enabled"`
	Slots         []string            `json:"slots"`
	Mode          ReportMode          `json:"mode"`
	SendToChat    bool                `json:"send_to_chat"`
	SendToAdmin   bool                `json:"send_to_admin"`
	PaymentAlerts PaymentAlertsConfig `json:"payment_alerts"`
}

// PaymentAlertState implementa a histerese dos alertas de cobrança: o alerta
// dispara apenas na transição para bloqueado, nunca repetidamente enquanto o
// status não muda.
type PaymentAlertState struct {
	LastAccountStatus AccountStatus `json:"last_account_status,omitempty"`
	LastAlertAt       *time.Time    `json:"last_alert_at,omitempty"`
}

// ScheduleState é o estado de idempotência do agendador por projeto.
// Invariante: um slot é despachado no máximo uma vez por dia de calendário
// local do projeto. Slots mapeia o slot para a data local (ISO) do último
// despacho.
type ScheduleState struct {
	ProjectID     string            `json:"project_id"`
	Slots         map[string]string `json:"slots"`
	PaymentAlerts PaymentAlertState `json:"payment_alerts"`
}

// SlotDispatchedOn informa se o slot já foi despachado na data local dada.
func (s *ScheduleState) SlotDispatchedOn(slot, localDate string) bool {
	if s == nil || s.Slots == nil {
		return false
	}
	return s.Slots[slot] == localDate
}

// MarkSlotDispatched registra o despacho do slot na data local dada.
func (s *ScheduleState) MarkSlotDispatched(slot, localDate string) {
	if s.Slots == nil {
		s.Slots = make(map[string]string)
	}
	s.Slots[slot] = localDate
}
