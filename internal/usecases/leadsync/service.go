package leadsync

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/buyclientuz-pixel/targetbot-sub002/infrastructure/repository"
	"github.com/buyclientuz-pixel/targetbot-sub002/internal/domain"
)

// LeadFetcher define a fronteira com o integrador que busca leads no provedor
type LeadFetcher interface {
	FetchLeads(ctx context.Context, accountID string, since time.Time) ([]*domain.Lead, error)
}

// Merger define a interface de sincronização e transição de leads
type Merger interface {
	MergeLeads(ctx context.Context, project *domain.Project, batch []*domain.Lead) (*domain.LeadListSnapshot, error)
	SyncProject(ctx context.Context, project *domain.Project) (*domain.LeadListSnapshot, error)
	UpdateLeadStatus(ctx context.Context, project *domain.Project, leadID string, status domain.LeadStatus) (*domain.LeadListSnapshot, error)
	GetSnapshot(ctx context.Context, projectID string) (*domain.LeadListSnapshot, error)
}

type Service struct {
	leads   repository.LeadRepository
	fetcher LeadFetcher
	now     func() time.Time
}

func NewService(leads repository.LeadRepository, fetcher LeadFetcher) *Service {
	return &Service{
		leads:   leads,
		fetcher: fetcher,
		now:     time.Now,
	}
}

// MergeLeads mescla um lote de leads no snapshot do projeto e persiste o
// resultado. A operação é idempotente: reaplicar o mesmo lote não muda nada.
func (s *Service) MergeLeads(ctx context.Context, project *domain.Project, batch []*domain.Lead) (*domain.LeadListSnapshot, error) {
	snapshot, err := s.leads.GetSnapshot(ctx, project.ID)
	if err != nil {
		return nil, err
	}

	merged := domain.MergeLeadBatch(snapshot, project.ID, batch, project.Location(), s.now())

	if err := s.leads.SaveSnapshot(ctx, merged); err != nil {
		return nil, err
	}

	// Os documentos de detalhe acompanham a versão mesclada, não a recebida.
	byID := make(map[string]*domain.Lead, len(merged.Leads))
	for _, lead := range merged.Leads {
		byID[lead.ID] = lead
	}
	for _, incoming := range batch {
		if incoming == nil {
			continue
		}
		lead, ok := byID[incoming.ID]
		if !ok {
			continue
		}
		if err := s.leads.SaveDetail(ctx, lead); err != nil {
			logrus.WithFields(logrus.Fields{
				"project_id": project.ID,
				"lead_id":    lead.ID,
				"error":      err.Error(),
			}).Warn("leads: failed to save lead detail document")
		}
	}

	logrus.WithFields(logrus.Fields{
		"project_id": project.ID,
		"batch_size": len(batch),
		"total":      merged.Stats.Total,
		"today":      merged.Stats.Today,
	}).Info("leads: merge finished")

	return merged, nil
}

// SyncProject busca no provedor os leads criados desde a última
// sincronização e os mescla no snapshot.
func (s *Service) SyncProject(ctx context.Context, project *domain.Project) (*domain.LeadListSnapshot, error) {
	snapshot, err := s.leads.GetSnapshot(ctx, project.ID)
	if err != nil {
		return nil, err
	}

	var since time.Time
	if snapshot != nil {
		since = snapshot.SyncedAt
	}

	batch, err := s.fetcher.FetchLeads(ctx, project.AccountID, since)
	if err != nil {
		return nil, err
	}

	return s.MergeLeads(ctx, project, batch)
}

// UpdateLeadStatus aplica uma transição explícita de status. Diferente da
// mescla, aqui qualquer transição entre status conhecidos é permitida.
func (s *Service) UpdateLeadStatus(ctx context.Context, project *domain.Project, leadID string, status domain.LeadStatus) (*domain.LeadListSnapshot, error) {
	if !domain.ValidLeadStatus(status) {
		return nil, ErrInvalidStatus
	}

	snapshot, err := s.leads.GetSnapshot(ctx, project.ID)
	if err != nil {
		return nil, err
	}
	if snapshot == nil {
		return nil, ErrLeadNotFound
	}

	var target *domain.Lead
	for _, lead := range snapshot.Leads {
		if lead.ID == leadID {
			target = lead
			break
		}
	}
	if target == nil {
		return nil, ErrLeadNotFound
	}

	target.Status = status

	if err := s.leads.SaveSnapshot(ctx, snapshot); err != nil {
		return nil, err
	}
	if err := s.leads.SaveDetail(ctx, target); err != nil {
		logrus.WithFields(logrus.Fields{
			"project_id": project.ID,
			"lead_id":    leadID,
			"error":      err.Error(),
		}).Warn("leads: failed to save lead detail document")
	}

	return snapshot, nil
}

func (s *Service) GetSnapshot(ctx context.Context, projectID string) (*domain.LeadListSnapshot, error) {
	return s.leads.GetSnapshot(ctx, projectID)
}
