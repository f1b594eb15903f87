package organizers

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("organizer not found")

// Organizer is a semi-structured record with no relationship to events
// or attendees.
type Organizer struct {
	ULID      string
	Fields    map[string]any
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Document renders the organizer as a JSON-shaped map with the identity
// under "id".
func (o Organizer) Document() map[string]any {
	doc := make(map[string]any, len(o.Fields)+1)
	for key, value := range o.Fields {
		doc[key] = value
	}
	doc["id"] = o.ULID
	return doc
}

type Repository interface {
	List(ctx context.Context) ([]Organizer, error)
	GetByULID(ctx context.Context, ulid string) (*Organizer, error)
	Create(ctx context.Context, ulid string, fields map[string]any) (*Organizer, error)
	Update(ctx context.Context, ulid string, fields map[string]any) (*Organizer, error)
	Delete(ctx context.Context, ulid string) error
}
