package repository

import (
	"context"
	"fmt"

	"github.com/buyclientuz-pixel/targetbot-sub002/infrastructure/storage"
	"github.com/buyclientuz-pixel/targetbot-sub002/internal/domain"
)

const scheduleStateKeyPrefix = "schedstate:"

func scheduleStateKey(projectID string) string {
	return fmt.Sprintf("%s%s", scheduleStateKeyPrefix, projectID)
}

// ScheduleStateRepository persiste o estado de idempotência do agendador.
// A escrita é um simples sobrescreve-sem-transação: a corrida rara entre
// invocações sobrepostas é aceita por design.
type ScheduleStateRepository interface {
	Get(ctx context.Context, projectID string) (*domain.ScheduleState, error)
	Save(ctx context.Context, state *domain.ScheduleState) error
}

type scheduleStateRepository struct {
	kv storage.KVStore
}

func NewScheduleStateRepository(kv storage.KVStore) ScheduleStateRepository {
	return &scheduleStateRepository{kv: kv}
}

func (r *scheduleStateRepository) Get(ctx context.Context, projectID string) (*domain.ScheduleState, error) {
	raw, err := r.kv.Get(ctx, scheduleStateKey(projectID))
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return &domain.ScheduleState{ProjectID: projectID, Slots: make(map[string]string)}, nil
	}

	state := &domain.ScheduleState{}
	if err := json.Unmarshal(raw, state); err != nil {
		return nil, &domain.StorageError{Op: "schedstate.get", Err: err}
	}
	if state.Slots == nil {
		state.Slots = make(map[string]string)
	}
	state.ProjectID = projectID

	return state, nil
}

func (r *scheduleStateRepository) Save(ctx context.Context, state *domain.ScheduleState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return &domain.StorageError{Op: "schedstate.save", Err: err}
	}

	return r.kv.Put(ctx, scheduleStateKey(state.ProjectID), raw)
}
