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

const documentsTable = "documents"

type postgresBlobStore struct {
	conn postgres.Queryer
}

// NewPostgresBlobStore cria um BlobStore sobre a tabela documents.
func NewPostgresBlobStore(conn postgres.Queryer) BlobStore {
	return &postgresBlobStore{conn: conn}
}

func (s *postgresBlobStore) Get(ctx context.Context, key string) ([]byte, error) {
	query, args, err := squirrel.
		Select("body").
		From(documentsTable).
		Where(squirrel.Eq{"key": key}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, &domain.StorageError{Op: "blob.get", Err: errors.Wrap(err, "build query")}
	}

	var body []byte
	if err := s.conn.QueryRow(ctx, query, args...).Scan(&body); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, &domain.StorageError{Op: "blob.get", Err: err}
	}

	return body, nil
}

func (s *postgresBlobStore) Put(ctx context.Context, key string, body []byte) error {
	query, args, err := squirrel.
		Insert(documentsTable).
		Columns("key", "body", "updated_at").
		Values(key, body, time.Now().UTC()).
		Suffix(`
			ON CONFLICT (key) DO UPDATE SET
				body = EXCLUDED.body,
				updated_at = EXCLUDED.updated_at
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return &domain.StorageError{Op: "blob.put", Err: errors.Wrap(err, "build query")}
	}

	if _, err := s.conn.Exec(ctx, query, args...); err != nil {
		return &domain.StorageError{Op: "blob.put", Err: err}
	}

	return nil
}

func (s *postgresBlobStore) Delete(ctx context.Context, key string) error {
	query, args, err := squirrel.
		Delete(documentsTable).
		Where(squirrel.Eq{"key": key}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return &domain.StorageError{Op: "blob.delete", Err: errors.Wrap(err, "build query")}
	}

	if _, err := s.conn.Exec(ctx, query, args...); err != nil {
		return &domain.StorageError{Op: "blob.delete", Err: err}
	}

	return nil
}

func (s *postgresBlobStore) ListKeys(ctx context.Context, prefix string) ([]string, error) {
	query, args, err := squirrel.
		Select("key").
		From(documentsTable).
		Where(squirrel.Like{"key": prefix + "%"}).
		OrderBy("key ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, &domain.StorageError{Op: "blob.list", Err: errors.Wrap(err, "build query")}
	}

	rows, err := s.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, &domain.StorageError{Op: "blob.list", Err: err}
	}
	defer rows.Close()

	keys := make([]string, 0)
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, &domain.StorageError{Op: "blob.list", Err: err}
		}
		keys = append(keys, key)
	}

	if err := rows.Err(); err != nil {
		return nil, &domain.StorageError{Op: "blob.list", Err: err}
	}

	return keys, nil
}
