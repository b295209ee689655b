package repository

import (
	"context"
	"errors"

	"quotedesk/internal/usecase/interfaces"

	redis "github.com/redis/go-redis/v9"
)

// KeyValueRedisRepository stores serialized values as plain Redis strings
// without expiry.
type KeyValueRedisRepository struct {
	client    *redis.Client
	namespace string
}

var _ interfaces.IKeyValueStore = (*KeyValueRedisRepository)(nil)

func NewKeyValueRedisRepository(client *redis.Client, namespace string) *KeyValueRedisRepository {
	return &KeyValueRedisRepository{client: client, namespace: namespace}
}

func (r *KeyValueRedisRepository) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := r.client.Get(ctx, namespacedKey(r.namespace, key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *KeyValueRedisRepository) Set(ctx context.Context, key string, value []byte) error {
	return r.client.Set(ctx, namespacedKey(r.namespace, key), value, 0).Err()
}

func (r *KeyValueRedisRepository) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, namespacedKey(r.namespace, key)).Err()
}
