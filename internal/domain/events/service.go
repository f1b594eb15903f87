package events

import (
	"context"
	"fmt"

	"github.com/gatherhall/server/internal/domain/ids"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Event, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByULID(ctx context.Context, ulid string) (*Event, error) {
	return s.repo.GetByULID(ctx, ulid)
}

// Create stores a new event under a freshly minted ULID. Fields are
// persisted as given: missing ones stay absent, unrecognized ones are kept.
func (s *Service) Create(ctx context.Context, fields map[string]any) (*Event, error) {
	ulid, err := ids.NewULID()
	if err != nil {
		return nil, fmt.Errorf("mint event id: %w", err)
	}
	if fields == nil {
		fields = map[string]any{}
	}
	return s.repo.Create(ctx, ulid, fields)
}

// Update merges fields into the stored document. PUT and PATCH share this
// merge path; neither replaces the whole document.
func (s *Service) Update(ctx context.Context, ulid string, fields map[string]any) (*Event, error) {
	if fields == nil {
		fields = map[string]any{}
	}
	return s.repo.Update(ctx, ulid, fields)
}

func (s *Service) Delete(ctx context.Context, ulid string) error {
	return s.repo.Delete(ctx, ulid)
}
