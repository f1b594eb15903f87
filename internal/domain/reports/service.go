package reports

import "context"

// Stats holds live collection cardinalities. Nothing is cached; every
// call recounts at the store.
type Stats struct {
	TotalEvents    int64 `json:"totalEvents"`
	TotalAttendees int64 `json:"totalAttendees"`
}

type Repository interface {
	CountEvents(ctx context.Context) (int64, error)
	CountAttendees(ctx context.Context) (int64, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) EventStats(ctx context.Context) (Stats, error) {
	totalEvents, err := s.repo.CountEvents(ctx)
	if err != nil {
		return Stats{}, err
	}
	totalAttendees, err := s.repo.CountAttendees(ctx)
	if err != nil {
		return Stats{}, err
	}
	return Stats{TotalEvents: totalEvents, TotalAttendees: totalAttendees}, nil
}
