package postgres

import (
	"context"
	"fmt"

	"github.com/gatherhall/server/internal/domain/reports"
)

var _ reports.Repository = (*ReportsRepository)(nil)

func (r *ReportsRepository) CountEvents(ctx context.Context) (int64, error) {
	var count int64
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM events`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count events: %w", err)
	}
	return count, nil
}

func (r *ReportsRepository) CountAttendees(ctx context.Context) (int64, error) {
	var count int64
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM attendees`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count attendees: %w", err)
	}
	return count, nil
}
