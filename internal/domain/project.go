package domain

import (
	"time"

	"github.com/sirupsen/logrus"
)

// KPIMode define como o KPI principal de um projeto é escolhido.
type KPIMode string

const (
	KPIModeAuto   KPIMode = "auto"
	KPIModeManual KPIMode = "manual"
)

// KPIType é o tipo de resultado que o relatório destaca para o projeto.
type KPIType string

const (
	KPITypeLead    KPIType = "LEAD"
	KPITypeMessage KPIType = "MESSAGE"
	KPITypeClick   KPIType = "CLICK"
)

type KPIConfig struct {
	Mode KPIMode `json:"mode"`
	Type KPIType `json:"type"`
}

// ProjectStatus indica se o projeto participa dos ticks do agendador.
type ProjectStatus string

const (
	ProjectStatusActive   ProjectStatus = "active"
	ProjectStatusDisabled ProjectStatus = "disabled"
)

// Project é a configuração de um projeto de anúncios. É imutável para este
// núcleo: apenas ações administrativas explícitas a alteram.
type Project struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	AccountID string        `json:"account_id"`
	Timezone  string        `json:"timezone"`
	KPI       KPIConfig     `json:"kpi"`
	ChatID    *int64        `json:"chat_id,omitempty"`
	OwnerID   int64         `json:"owner_id"`
	Status    ProjectStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// Location resolve o fuso IANA do projeto, caindo para UTC quando a
// configuração estiver vazia ou inválida.
func (p *Project) Location() *time.Location {
	if p.Timezone == "" {
		return time.UTC
	}

	loc, err := time.LoadLocation(p.Timezone)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"project_id": p.ID,
			"timezone":   p.Timezone,
		}).Warn("projeto com fuso horário inválido, usando UTC")
		return time.UTC
	}

	return loc
}

// SelectKPI escolhe o tipo de KPI a destacar no relatório. No modo manual o
// tipo configurado vence; no modo auto a precedência fixa é LEAD, depois
// MESSAGE, depois CLICK, vencendo o primeiro com valor positivo.
func SelectKPI(cfg KPIConfig, summary *InsightSummary) KPIType {
	if cfg.Mode == KPIModeManual && cfg.Type != "" {
		return cfg.Type
	}

	if summary != nil {
		if summary.Leads > 0 {
			return KPITypeLead
		}
		if summary.Messages > 0 {
			return KPITypeMessage
		}
	}

	return KPITypeClick
}
