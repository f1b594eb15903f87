package attendees

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("attendee not found")

// EventField is the document key holding the attendee's event reference.
// It stores a bare event ULID; reads replace it with the full event
// document when the reference resolves.
const EventField = "event"

// Attendee is a semi-structured record, same shape as events.Event.
// The optional event reference is just another field and is never
// validated for existence at write time.
type Attendee struct {
	ULID      string
	Fields    map[string]any
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Document renders the attendee as a JSON-shaped map with the identity
// under "id".
func (a Attendee) Document() map[string]any {
	doc := make(map[string]any, len(a.Fields)+1)
	for key, value := range a.Fields {
		doc[key] = value
	}
	doc["id"] = a.ULID
	return doc
}

type Repository interface {
	List(ctx context.Context) ([]Attendee, error)
	GetByULID(ctx context.Context, ulid string) (*Attendee, error)
	Create(ctx context.Context, ulid string, fields map[string]any) (*Attendee, error)
	Delete(ctx context.Context, ulid string) error
}
