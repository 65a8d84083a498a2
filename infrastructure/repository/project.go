package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/buyclientuz-pixel/targetbot-sub002/infrastructure/database/postgres"
	"github.com/buyclientuz-pixel/targetbot-sub002/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const projectsTable = "projects p"

type ProjectRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	ListByStatus(ctx context.Context, status domain.ProjectStatus) ([]*domain.Project, error)
	Save(ctx context.Context, project *domain.Project) error
}

type projectRepository struct {
	conn postgres.Queryer
}

func NewProjectRepository(conn postgres.Queryer) ProjectRepository {
	return &projectRepository{conn: conn}
}

func (r *projectRepository) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	query, args, err := squirrel.
		Select("p.id, p.name, p.account_id, p.timezone, p.kpi, p.chat_id, p.owner_id, p.status, p.created_at, p.updated_at").
		From(projectsTable).
		Where(squirrel.Eq{"p.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	project, err := r.scanProject(r.conn.QueryRow(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, &domain.StorageError{Op: "project.get", Err: err}
	}

	return project, nil
}

func (r *projectRepository) ListByStatus(ctx context.Context, status domain.ProjectStatus) ([]*domain.Project, error) {
	query, args, err := squirrel.
		Select("p.id, p.name, p.account_id, p.timezone, p.kpi, p.chat_id, p.owner_id, p.status, p.created_at, p.updated_at").
		From(projectsTable).
		Where(squirrel.Eq{"p.status": status}).
		OrderBy("p.id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, &domain.StorageError{Op: "project.list", Err: err}
	}
	defer rows.Close()

	projects := make([]*domain.Project, 0)
	for rows.Next() {
		project, err := r.scanProject(rows)
		if err != nil {
			return nil, &domain.StorageError{Op: "project.list", Err: err}
		}
		projects = append(projects, project)
	}

	if err := rows.Err(); err != nil {
		return nil, &domain.StorageError{Op: "project.list", Err: err}
	}

	return projects, nil
}

func (r *projectRepository) Save(ctx context.Context, project *domain.Project) error {
	kpiJSON, err := json.Marshal(project.KPI)
	if err != nil {
		return errors.Wrap(err, "erro ao serializar KPI para JSON")
	}

	query, args, err := squirrel.
		Insert("projects").
		Columns("id", "name", "account_id", "timezone", "kpi", "chat_id", "owner_id", "status").
		Values(
			project.ID,
			project.Name,
			project.AccountID,
			project.Timezone,
			kpiJSON,
			project.ChatID,
			project.OwnerID,
			project.Status,
		).
		Suffix(`
			ON CONFLICT (id) DO UPDATE SET
				name = EXCLUDED.name,
				account_id = EXCLUDED.account_id,
				timezone = EXCLUDED.timezone,
				kpi = EXCLUDED.kpi,
				chat_id = EXCLUDED.chat_id,
				owner_id = EXCLUDED.owner_id,
				status = EXCLUDED.status,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir a query")
	}

	if _, err := r.conn.Exec(ctx, query, args...); err != nil {
		return &domain.StorageError{Op: "project.save", Err: err}
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *projectRepository) scanProject(row rowScanner) (*domain.Project, error) {
	project := &domain.Project{}
	var kpiJSON []byte
	var chatID sql.NullInt64
	var createdAt, updatedAt time.Time

	err := row.Scan(
		&project.ID,
		&project.Name,
		&project.AccountID,
		&project.Timezone,
		&kpiJSON,
		&chatID,
		&project.OwnerID,
		&project.Status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(kpiJSON) > 0 {
		if err := json.Unmarshal(kpiJSON, &project.KPI); err != nil {
			return nil, errors.Wrap(err, "erro ao deserializar JSON de kpi")
		}
	}

	if chatID.Valid {
		project.ChatID = &chatID.Int64
	}

	project.CreatedAt = createdAt
	project.UpdatedAt = updatedAt

	return project, nil
}
