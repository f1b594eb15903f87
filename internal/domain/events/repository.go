package events

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("event not found")

// Event is a semi-structured record: a store-assigned ULID identity plus
// whatever fields the client supplied. No schema is enforced; unknown
// fields round-trip through the store untouched.
type Event struct {
	ULID      string
	Fields    map[string]any
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Document renders the event as a JSON-shaped map with the identity
// under "id". The identity always wins over a client-supplied "id" field.
func (e Event) Document() map[string]any {
	doc := make(map[string]any, len(e.Fields)+1)
	for key, value := range e.Fields {
		doc[key] = value
	}
	doc["id"] = e.ULID
	return doc
}

type Repository interface {
	List(ctx context.Context) ([]Event, error)
	GetByULID(ctx context.Context, ulid string) (*Event, error)
	Create(ctx context.Context, ulid string, fields map[string]any) (*Event, error)
	Update(ctx context.Context, ulid string, fields map[string]any) (*Event, error)
	Delete(ctx context.Context, ulid string) error
}
