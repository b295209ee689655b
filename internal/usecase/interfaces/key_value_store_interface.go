package interfaces

import "context"

// IKeyValueStore abstracts the key-value persistence the quote store relies on.
//
// Contract:
//   - Get returns (nil, nil) when the key is absent; callers treat that as the empty default.
//   - Set overwrites; the last write wins.
type IKeyValueStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
