package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/buyclientuz-pixel/targetbot-sub002/infrastructure/storage"
	"github.com/buyclientuz-pixel/targetbot-sub002/internal/domain"
)

const (
	leadSnapshotKeyPrefix = "leads:snapshot:"
	leadDetailKeyPrefix   = "leads:detail:"
)

func leadSnapshotKey(projectID string) string {
	return fmt.Sprintf("%s%s", leadSnapshotKeyPrefix, projectID)
}

func leadDetailKey(projectID, leadID string) string {
	return fmt.Sprintf("%s%s:%s", leadDetailKeyPrefix, projectID, leadID)
}

// LeadRepository persiste o snapshot desnormalizado por projeto e os
// documentos de detalhe de cada lead no armazém de documentos.
type LeadRepository interface {
	GetSnapshot(ctx context.Context, projectID string) (*domain.LeadListSnapshot, error)
	SaveSnapshot(ctx context.Context, snapshot *domain.LeadListSnapshot) error
	SaveDetail(ctx context.Context, lead *domain.Lead) error
	DeleteDetail(ctx context.Context, projectID, leadID string) error
	// SnapshotProjectIDs lista os projetos que possuem snapshot gravado.
	SnapshotProjectIDs(ctx context.Context) ([]string, error)
}

type leadRepository struct {
	blobs storage.BlobStore
}

func NewLeadRepository(blobs storage.BlobStore) LeadRepository {
	return &leadRepository{blobs: blobs}
}

func (r *leadRepository) GetSnapshot(ctx context.Context, projectID string) (*domain.LeadListSnapshot, error) {
	raw, err := r.blobs.Get(ctx, leadSnapshotKey(projectID))
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}

	snapshot := &domain.LeadListSnapshot{}
	if err := json.Unmarshal(raw, snapshot); err != nil {
		return nil, &domain.StorageError{Op: "leads.snapshot.get", Err: err}
	}

	return snapshot, nil
}

func (r *leadRepository) SaveSnapshot(ctx context.Context, snapshot *domain.LeadListSnapshot) error {
	raw, err := json.Marshal(snapshot)
	if err != nil {
		return &domain.StorageError{Op: "leads.snapshot.save", Err: err}
	}

	return r.blobs.Put(ctx, leadSnapshotKey(snapshot.ProjectID), raw)
}

func (r *leadRepository) SaveDetail(ctx context.Context, lead *domain.Lead) error {
	raw, err := json.Marshal(lead)
	if err != nil {
		return &domain.StorageError{Op: "leads.detail.save", Err: err}
	}

	return r.blobs.Put(ctx, leadDetailKey(lead.ProjectID, lead.ID), raw)
}

func (r *leadRepository) DeleteDetail(ctx context.Context, projectID, leadID string) error {
	return r.blobs.Delete(ctx, leadDetailKey(projectID, leadID))
}

func (r *leadRepository) SnapshotProjectIDs(ctx context.Context) ([]string, error) {
	keys, err := r.blobs.ListKeys(ctx, leadSnapshotKeyPrefix)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(keys))
	for _, key := range keys {
		ids = append(ids, strings.TrimPrefix(key, leadSnapshotKeyPrefix))
	}

	return ids, nil
}
