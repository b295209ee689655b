package usecase

import (
	"context"
	"encoding/json"

	"quotedesk/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// saveJSON writes v under key. Failures are logged only.
func saveJSON(ctx context.Context, kv interfaces.IKeyValueStore, log *zap.Logger, key string, v any) {
	if kv == nil {
		return
	}
	b, err := json.Marshal(v)
	if err != nil {
		log.Warn("[kv][usecase] marshal failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := kv.Set(ctx, key, b); err != nil {
		log.Warn("[kv][usecase] save failed", zap.String("key", key), zap.Error(err))
	}
}

// loadJSON reads key into v. It reports false when the key is absent or the
// stored value cannot be decoded.
func loadJSON(ctx context.Context, kv interfaces.IKeyValueStore, log *zap.Logger, key string, v any) (bool, error) {
	if kv == nil {
		return false, nil
	}
	raw, err := kv.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if raw == nil {
		return false, nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		log.Warn("[kv][usecase] stored value unreadable", zap.String("key", key), zap.Error(err))
		return false, nil
	}
	return true, nil
}

func deleteKey(ctx context.Context, kv interfaces.IKeyValueStore, log *zap.Logger, key string) {
	if kv == nil {
		return
	}
	if err := kv.Delete(ctx, key); err != nil {
		log.Warn("[kv][usecase] delete failed", zap.String("key", key), zap.Error(err))
	}
}
