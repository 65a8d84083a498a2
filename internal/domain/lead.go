package domain

import (
	"sort"
	"time"
)

// LeadStatus é o estado de atendimento de um lead. Transições são sempre
// explícitas; um re-sync nunca rebaixa o status.
type LeadStatus string

const (
	LeadStatusNew        LeadStatus = "new"
	LeadStatusProcessing LeadStatus = "processing"
	LeadStatusDone       LeadStatus = "done"
)

var leadStatusRank = map[LeadStatus]int{
	LeadStatusNew:        0,
	LeadStatusProcessing: 1,
	LeadStatusDone:       2,
}

// ValidLeadStatus informa se o valor é um status conhecido.
func ValidLeadStatus(s LeadStatus) bool {
	_, ok := leadStatusRank[s]
	return ok
}

// LeadType distingue leads de formulário de conversas iniciadas por
// mensagem. Heurística de detecção: leads de mensagem não carregam telefone.
type LeadType string

const (
	LeadTypeLead    LeadType = "lead"
	LeadTypeMessage LeadType = "message"
)

// Lead é um evento de lead persistido por projeto.
type Lead struct {
	ID           string     `json:"id"`
	ProjectID    string     `json:"project_id"`
	Name         string     `json:"name"`
	Phone        string     `json:"phone"`
	CreatedAt    time.Time  `json:"created_at"`
	Source       string     `json:"source"`
	CampaignName string     `json:"campaign_name"`
	Status       LeadStatus `json:"status"`
	Type         LeadType   `json:"type"`
}

type LeadStats struct {
	Total int `json:"total"`
	Today int `json:"today"`
}

// LeadListSnapshot é a visão desnormalizada dos leads de um projeto,
// mantida para renderização rápida do painel. Invariantes: Leads é único
// por id e ordenado por CreatedAt decrescente; Stats.Total == len(Leads);
// Stats.Today conta os leads do dia de calendário local corrente.
type LeadListSnapshot struct {
	ProjectID string    `json:"project_id"`
	Stats     LeadStats `json:"stats"`
	Leads     []*Lead   `json:"leads"`
	SyncedAt  time.Time `json:"synced_at"`
}

// MergeLeadBatch mescla um lote de leads recém-buscados no snapshot
// existente. A mescla é idempotente: aplicar o mesmo lote duas vezes produz
// o mesmo snapshot.
//
// Regras: lead ausente é inserido com status "new" (tipo "message" quando
// não há telefone); lead presente tem os campos de contato atualizados mas o
// status nunca é rebaixado.
func MergeLeadBatch(snap *LeadListSnapshot, projectID string, batch []*Lead, loc *time.Location, now time.Time) *LeadListSnapshot {
	byID := make(map[string]*Lead)
	if snap != nil {
		for _, lead := range snap.Leads {
			byID[lead.ID] = lead
		}
	}

	for _, incoming := range batch {
		if incoming == nil || incoming.ID == "" {
			continue
		}

		existing, ok := byID[incoming.ID]
		if !ok {
			lead := *incoming
			lead.ProjectID = projectID
			lead.Status = LeadStatusNew
			if lead.Type == "" {
				lead.Type = LeadTypeLead
				if lead.Phone == "" {
					lead.Type = LeadTypeMessage
				}
			}
			byID[lead.ID] = &lead
			continue
		}

		existing.Name = incoming.Name
		if incoming.Phone != "" {
			existing.Phone = incoming.Phone
		}
		if incoming.CampaignName != "" {
			existing.CampaignName = incoming.CampaignName
		}
		if !incoming.CreatedAt.IsZero() {
			existing.CreatedAt = incoming.CreatedAt
		}
		// Status é preservado: rebaixamento silencioso nunca acontece aqui.
	}

	merged := &LeadListSnapshot{
		ProjectID: projectID,
		Leads:     make([]*Lead, 0, len(byID)),
		SyncedAt:  now,
	}
	for _, lead := range byID {
		merged.Leads = append(merged.Leads, lead)
	}

	sort.Slice(merged.Leads, func(i, j int) bool {
		if merged.Leads[i].CreatedAt.Equal(merged.Leads[j].CreatedAt) {
			return merged.Leads[i].ID < merged.Leads[j].ID
		}
		return merged.Leads[i].CreatedAt.After(merged.Leads[j].CreatedAt)
	})

	merged.Stats = ComputeLeadStats(merged.Leads, loc, now)

	return merged
}

// ComputeLeadStats recalcula os contadores do snapshot. "Today" usa o dia de
// calendário local do projeto, não UTC.
func ComputeLeadStats(leads []*Lead, loc *time.Location, now time.Time) LeadStats {
	stats := LeadStats{Total: len(leads)}

	today := LocalDate(now, loc)
	for _, lead := range leads {
		if LocalDate(lead.CreatedAt, loc) == today {
			stats.Today++
		}
	}

	return stats
}

// MaintenanceSummary é o resultado de uma varredura de retenção.
type MaintenanceSummary struct {
	ScannedProjects   int `json:"scanned_projects"`
	DeletedLeadCount  int `json:"deleted_lead_count"`
	DeletedCacheCount int `json:"deleted_cache_count"`
}
