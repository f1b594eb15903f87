package organizers

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

func (s *Service) List(ctx context.Context) ([]Organizer, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByULID(ctx context.Context, ulid string) (*Organizer, error) {
	return s.repo.GetByULID(ctx, ulid)
}

func (s *Service) Create(ctx context.Context, fields map[string]any) (*Organizer, error) {
	ulid, err := ids.NewULID()
	if err != nil {
		return nil, fmt.Errorf("mint organizer id: %w", err)
	}
	if fields == nil {
		fields = map[string]any{}
	}
	return s.repo.Create(ctx, ulid, fields)
}

// Update merges fields into the stored document (PUT shares the merge
// path, same as events).
func (s *Service) Update(ctx context.Context, ulid string, fields map[string]any) (*Organizer, error) {
	if fields == nil {
		fields = map[string]any{}
	}
	return s.repo.Update(ctx, ulid, fields)
}

func (s *Service) Delete(ctx context.Context, ulid string) error {
	return s.repo.Delete(ctx, ulid)
}
