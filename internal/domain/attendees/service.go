package attendees

import (
	"context"
	"errors"
	"fmt"

	"github.com/gatherhall/server/internal/domain/events"
	"github.com/gatherhall/server/internal/domain/ids"
)

// Service reads and writes attendees, expanding the event reference on
// reads with a secondary lookup against the events repository. A dangling
// or malformed reference renders as null rather than failing the read, so
// deleting an event never breaks the attendees that pointed at it.
type Service struct {
	repo   Repository
	events events.Repository
}

func NewService(repo Repository, eventsRepo events.Repository) *Service {
	return &Service{repo: repo, events: eventsRepo}
}

func (s *Service) List(ctx context.Context) ([]Attendee, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if err := s.expandEvent(ctx, &items[i]); err != nil {
			return nil, err
		}
	}
	return items, nil
}

func (s *Service) GetByULID(ctx context.Context, ulid string) (*Attendee, error) {
	item, err := s.repo.GetByULID(ctx, ulid)
	if err != nil {
		return nil, err
	}
	if err := s.expandEvent(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Create stores a new attendee. The event reference, if any, is persisted
// as-is without checking that the event exists.
func (s *Service) Create(ctx context.Context, fields map[string]any) (*Attendee, error) {
	ulid, err := ids.NewULID()
	if err != nil {
		return nil, fmt.Errorf("mint attendee id: %w", err)
	}
	if fields == nil {
		fields = map[string]any{}
	}
	return s.repo.Create(ctx, ulid, fields)
}

func (s *Service) Delete(ctx context.Context, ulid string) error {
	return s.repo.Delete(ctx, ulid)
}

func (s *Service) expandEvent(ctx context.Context, attendee *Attendee) error {
	raw, ok := attendee.Fields[EventField]
	if !ok || raw == nil {
		return nil
	}

	ref, ok := raw.(string)
	if !ok || ids.ValidateULID(ref) != nil {
		attendee.Fields[EventField] = nil
		return nil
	}

	event, err := s.events.GetByULID(ctx, ref)
	if errors.Is(err, events.ErrNotFound) {
		attendee.Fields[EventField] = nil
		return nil
	}
	if err != nil {
		return fmt.Errorf("expand event reference: %w", err)
	}

	attendee.Fields[EventField] = event.Document()
	return nil
}
