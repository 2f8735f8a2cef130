package documents

import (
	"context"
	"errors"
)

var (
	// ErrDuplicate is returned by Insert when id or name already exists.
	// The unique indexes are the authoritative arbiter for create races.
	ErrDuplicate = errors.New("document already exists")
	ErrNotFound  = errors.New("document not found")
)

// Repository defines persistence operations for documents. Resolution by
// identifier (id-or-name union) happens in FindByIDOrName; mutations act on
// the already-resolved document ID.
type Repository interface {
	Insert(ctx context.Context, d *Document) error
	FindByIDOrName(ctx context.Context, identifier string) (*Document, error)
	FindByName(ctx context.Context, name string) (*Document, error)
	UpdateContentByID(ctx context.Context, id, content string) error
	DeleteByID(ctx context.Context, id string) error
	List(ctx context.Context) ([]Listing, error)
}
