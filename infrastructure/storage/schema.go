package storage

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/buyclientuz-pixel/targetbot-sub002/infrastructure/database/postgres"
)

// Statements de criação das tabelas do núcleo. Idempotentes: executados a
// cada inicialização.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS kv_entries (
		key        TEXT PRIMARY KEY,
		value      BYTEA NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS documents (
		key        TEXT PRIMARY KEY,
		body       BYTEA NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS projects (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		account_id TEXT NOT NULL,
		timezone   TEXT NOT NULL DEFAULT 'UTC',
		kpi        JSONB NOT NULL DEFAULT '{}',
		chat_id    BIGINT,
		owner_id   BIGINT NOT NULL DEFAULT 0,
		status     TEXT NOT NULL DEFAULT 'active',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS report_schedules (
		project_id TEXT PRIMARY KEY REFERENCES projects (id) ON DELETE CASCADE,
		config     JSONB NOT NULL DEFAULT '{}',
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_kv_entries_updated_at ON kv_entries (updated_at)`,
	`CREATE INDEX IF NOT EXISTS idx_documents_updated_at ON documents (updated_at)`,
}

// EnsureSchema cria as tabelas do núcleo caso ainda não existam.
func EnsureSchema(ctx context.Context, conn postgres.Queryer) error {
	for _, stmt := range schemaStatements {
		if _, err := conn.Exec(ctx, stmt); err != nil {
			return errors.Wrap(err, "erro ao criar schema")
		}
	}

	logrus.Debug("Schema do banco de dados verificado")
	return nil
}
