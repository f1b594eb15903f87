package storage

import (
	"github.com/gatherhall/server/internal/domain/attendees"
	"github.com/gatherhall/server/internal/domain/events"
	"github.com/gatherhall/server/internal/domain/organizers"
	"github.com/gatherhall/server/internal/domain/reports"
)

// Repository groups data access by domain.
type Repository interface {
	Events() events.Repository
	Attendees() attendees.Repository
	Organizers() organizers.Repository
	Reports() reports.Repository
}
