// Package storage expõe as interfaces estreitas de armazenamento usadas
// pelo núcleo: um armazém chave-valor para entradas pequenas e frequentes
// (cache de métricas, estado do agendador) e um armazém de documentos para
// corpos maiores e menos acessados (detalhes de lead, snapshots).
package storage

import (
	"context"
	"time"
)

// KVStore é um armazém chave-valor eventualmente consistente. Get devolve
// (nil, nil) quando a chave não existe; Put sobrescreve incondicionalmente.
type KVStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	ListKeys(ctx context.Context, prefix string) ([]string, error)
	// DeleteOlderThan remove as chaves com o prefixo dado gravadas antes do
	// corte. É a política de evicção dura, distinta do TTL de leitura.
	DeleteOlderThan(ctx context.Context, prefix string, cutoff time.Time) (int64, error)
}

// BlobStore é um armazém de documentos com a mesma semântica de Get/Put.
type BlobStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, body []byte) error
	Delete(ctx context.Context, key string) error
	ListKeys(ctx context.Context, prefix string) ([]string, error)
}
