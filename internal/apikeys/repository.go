package apikeys

import (
	"context"
	"errors"
)

// ErrDuplicate is returned by Insert when id or secret already exists.
var ErrDuplicate = errors.New("api key already exists")

// Repository defines persistence operations for API keys. Keys have no
// update operation; they are immutable once created.
type Repository interface {
	Insert(ctx context.Context, k *Key) error
	FindByID(ctx context.Context, id string) (*Key, error)
	FindBySecret(ctx context.Context, secret string) (*Key, error)
	// DeleteByID reports whether a record was removed; absence is not an
	// error at this layer.
	DeleteByID(ctx context.Context, id string) (bool, error)
	List(ctx context.Context) ([]Key, error)
}
