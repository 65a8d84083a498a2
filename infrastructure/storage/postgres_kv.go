package storage

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/buyclientuz-pixel/targetbot-sub002/infrastructure/database/postgres"
	"github.com/buyclientuz-pixel/targetbot-sub002/internal/domain"
)

const kvTable = "kv_entries"

type postgresKVStore struct {
	conn postgres.Queryer
}

// NewPostgresKVStore cria um KVStore sobre a tabela kv_entries.
func NewPostgresKVStore(conn postgres.Queryer) KVStore {
	return &postgresKVStore{conn: conn}
}

func (s *postgresKVStore) Get(ctx context.Context, key string) ([]byte, error) {
	query, args, err := squirrel.
		Select("value").
		From(kvTable).
		Where(squirrel.Eq{"key": key}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, &domain.StorageError{Op: "kv.get", Err: errors.Wrap(err, "build query")}
	}

	var value []byte
	if err := s.conn.QueryRow(ctx, query, args...).Scan(&value); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, &domain.StorageError{Op: "kv.get", Err: err}
	}

	return value, nil
}

func (s *postgresKVStore) Put(ctx context.Context, key string, value []byte) error {
	query, args, err := squirrel.
		Insert(kvTable).
		Columns("key", "value", "updated_at").
		Values(key, value, time.Now().UTC()).
		Suffix(`
			ON CONFLICT (key) DO UPDATE SET
				value = EXCLUDED.value,
				updated_at = EXCLUDED.updated_at
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return &domain.StorageError{Op: "kv.put", Err: errors.Wrap(err, "build query")}
	}

	if _, err := s.conn.Exec(ctx, query, args...); err != nil {
		return &domain.StorageError{Op: "kv.put", Err: err}
	}

	return nil
}

func (s *postgresKVStore) Delete(ctx context.Context, key string) error {
	query, args, err := squirrel.
		Delete(kvTable).
		Where(squirrel.Eq{"key": key}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return &domain.StorageError{Op: "kv.delete", Err: errors.Wrap(err, "build query")}
	}

	if _, err := s.conn.Exec(ctx, query, args...); err != nil {
		return &domain.StorageError{Op: "kv.delete", Err: err}
	}

	return nil
}

func (s *postgresKVStore) ListKeys(ctx context.Context, prefix string) ([]string, error) {
	query, args, err := squirrel.
		Select("key").
		From(kvTable).
		Where(squirrel.Like{"key": prefix + "%"}).
		OrderBy("key ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, &domain.StorageError{Op: "kv.list", Err: errors.Wrap(err, "build query")}
	}

	rows, err := s.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, &domain.StorageError{Op: "kv.list", Err: err}
	}
	defer rows.Close()

	keys := make([]string, 0)
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, &domain.StorageError{Op: "kv.list", Err: err}
		}
		keys = append(keys, key)
	}

	if err := rows.Err(); err != nil {
		return nil, &domain.StorageError{Op: "kv.list", Err: err}
	}

	return keys, nil
}

func (s *postgresKVStore) DeleteOlderThan(ctx context.Context, prefix string, cutoff time.Time) (int64, error) {
	query, args, err := squirrel.
		Delete(kvTable).
		Where(squirrel.Like{"key": prefix + "%"}).
		Where(squirrel.Lt{"updated_at": cutoff.UTC()}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, &domain.StorageError{Op: "kv.delete_older_than", Err: errors.Wrap(err, "build query")}
	}

	result, err := s.conn.Exec(ctx, query, args...)
	if err != nil {
		return 0, &domain.StorageError{Op: "kv.delete_older_than", Err: err}
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, &domain.StorageError{Op: "kv.delete_older_than", Err: err}
	}

	return affected, nil
}
