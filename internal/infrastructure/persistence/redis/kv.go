package redis

import (
	"context"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"telco-enable-ai-api/internal/domain/repository"
)

// keyPrefix scopes all KV namespaces in the shared Redis instance.
const keyPrefix = "telco-enable:"

// KVStore is the Redis implementation of the durable KV store used by
// the style catalog. Namespaces map to plain keys with no expiration;
// the catalog owns its own lifecycle.
type KVStore struct {
	client *Client
}

// NewKVStore creates a KV store over an established client.
func NewKVStore(client *Client) repository.KVStore {
	return &KVStore{client: client}
}

// Get reads one namespace. A missing key is not an error.
func (s *KVStore) Get(ctx context.Context, ns string) ([]byte, bool, error) {
	ctx, span := tracer.Start(ctx, "kv.Get",
		trace.WithAttributes(attribute.String("kv.namespace", ns)))
	defer span.End()

	data, err := s.client.rdb.Get(ctx, keyPrefix+ns).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		span.RecordError(err)
		return nil, false, err
	}
	return data, true, nil
}

// Set overwrites one namespace.
func (s *KVStore) Set(ctx context.Context, ns string, data []byte) error {
	ctx, span := tracer.Start(ctx, "kv.Set",
		trace.WithAttributes(
			attribute.String("kv.namespace", ns),
			attribute.Int("kv.bytes", len(data)),
		))
	defer span.End()

	if err := s.client.rdb.Set(ctx, keyPrefix+ns, data, 0).Err(); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}
