package postgres

import (
	"fmt"

	"github.com/gatherhall/server/internal/domain/attendees"
	"github.com/gatherhall/server/internal/domain/events"
	"github.com/gatherhall/server/internal/domain/organizers"
	"github.com/gatherhall/server/internal/domain/reports"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository hands out per-domain repositories backed by a single shared
// connection pool. The pool is created once at startup and lives for the
// process; concurrent single-record operations are serialized by Postgres,
// not by this layer.
type Repository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) (*Repository, error) {
	if pool == nil {
		return nil, fmt.Errorf("postgres repository: pool is nil")
	}
	return &Repository{pool: pool}, nil
}

func (r *Repository) Events() events.Repository {
	return &EventRepository{pool: r.pool}
}

func (r *Repository) Attendees() attendees.Repository {
	return &AttendeeRepository{pool: r.pool}
}

func (r *Repository) Organizers() organizers.Repository {
	return &OrganizerRepository{pool: r.pool}
}

func (r *Repository) Reports() reports.Repository {
	return &ReportsRepository{pool: r.pool}
}

type EventRepository struct {
	pool *pgxpool.Pool
}

type AttendeeRepository struct {
	pool *pgxpool.Pool
}

type OrganizerRepository struct {
	pool *pgxpool.Pool
}

type ReportsRepository struct {
	pool *pgxpool.Pool
}
