package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/buyclientuz-pixel/targetbot-sub002/infrastructure/database/postgres"
	"github.com/buyclientuz-pixel/targetbot-sub002/internal/domain"
)

const reportSchedulesTable = "report_schedules rs"

type ReportScheduleRepository interface {
	GetByProjectID(ctx context.Context, projectID string) (*domain.ReportSchedule, error)
	Save(ctx context.Context, schedule *domain.ReportSchedule) error
}

type reportScheduleRepository struct {
	conn postgres.Queryer
}

func NewReportScheduleRepository(conn postgres.Queryer) ReportScheduleRepository {
	return &reportScheduleRepository{conn: conn}
}

func (r *reportScheduleRepository) GetByProjectID(ctx context.Context, projectID string) (*domain.ReportSchedule, error) {
	query, args, err := squirrel.
		Select("rs.config").
		From(reportSchedulesTable).
		Where(squirrel.Eq{"rs.project_id": projectID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	var configJSON []byte
	if err := r.conn.QueryRow(ctx, query, args...).Scan(&configJSON); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, &domain.StorageError{Op: "schedule.get", Err: err}
	}

	schedule := &domain.ReportSchedule{}
	if err := json.Unmarshal(configJSON, schedule); err != nil {
		return nil, &domain.StorageError{Op: "schedule.get", Err: errors.Wrap(err, "erro ao deserializar JSON de config")}
	}
	schedule.ProjectID = projectID

	return schedule, nil
}

func (r *reportScheduleRepository) Save(ctx context.Context, schedule *domain.ReportSchedule) error {
	configJSON, err := json.Marshal(schedule)
	if err != nil {
		return errors.Wrap(err, "erro ao serializar config para JSON")
	}

	query, args, err := squirrel.
		Insert("report_schedules").
		Columns("project_id", "config").
		Values(schedule.ProjectID, configJSON).
		Suffix(`
			ON CONFLICT (project_id) DO UPDATE SET
				config = EXCLUDED.config,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir a query")
	}

	if _, err := r.conn.Exec(ctx, query, args...); err != nil {
		return &domain.StorageError{Op: "schedule.save", Err: err}
	}

	return nil
}
