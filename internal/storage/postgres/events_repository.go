package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/gatherhall/server/internal/domain/events"
	"github.com/jackc/pgx/v5"
)

var _ events.Repository = (*EventRepository)(nil)

func (r *EventRepository) List(ctx context.Context) ([]events.Event, error) {
	rows, err := r.pool.Query(ctx, `
SELECT ulid, data, created_at, updated_at
  FROM events
 ORDER BY created_at, ulid
`)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var items []events.Event
	for rows.Next() {
		var row documentRow
		if err := rows.Scan(&row.ULID, &row.Data, &row.CreatedAt, &row.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		item, err := eventRowToDomain(row)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return items, nil
}

func (r *EventRepository) GetByULID(ctx context.Context, ulid string) (*events.Event, error) {
	row := r.pool.QueryRow(ctx, `
SELECT ulid, data, created_at, updated_at
  FROM events
 WHERE ulid = $1
`, normalizeULID(ulid))

	var data documentRow
	if err := row.Scan(&data.ULID, &data.Data, &data.CreatedAt, &data.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, events.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	item, err := eventRowToDomain(data)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *EventRepository) Create(ctx context.Context, ulid string, fields map[string]any) (*events.Event, error) {
	data, err := encodeFields(fields)
	if err != nil {
		return nil, err
	}

	row := r.pool.QueryRow(ctx, `
INSERT INTO events (ulid, data)
VALUES ($1, $2)
RETURNING ulid, data, created_at, updated_at
`, normalizeULID(ulid), data)

	var created documentRow
	if err := row.Scan(&created.ULID, &created.Data, &created.CreatedAt, &created.UpdatedAt); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	item, err := eventRowToDomain(created)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Update merges fields into the stored JSONB document. A key present in
// fields overwrites the stored value; everything else is untouched.
func (r *EventRepository) Update(ctx context.Context, ulid string, fields map[string]any) (*events.Event, error) {
	data, err := encodeFields(fields)
	if err != nil {
		return nil, err
	}

	row := r.pool.QueryRow(ctx, `
UPDATE events
   SET data = data || $2::jsonb,
       updated_at = now()
 WHERE ulid = $1
RETURNING ulid, data, created_at, updated_at
`, normalizeULID(ulid), data)

	var updated documentRow
	if err := row.Scan(&updated.ULID, &updated.Data, &updated.CreatedAt, &updated.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, events.ErrNotFound
		}
		return nil, fmt.Errorf("update event: %w", err)
	}

	item, err := eventRowToDomain(updated)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Delete removes the event row only. Attendees referencing it keep their
// dangling reference; there is no cascade.
func (r *EventRepository) Delete(ctx context.Context, ulid string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM events WHERE ulid = $1`, normalizeULID(ulid))
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return events.ErrNotFound
	}
	return nil
}

func eventRowToDomain(row documentRow) (events.Event, error) {
	fields, err := row.fields()
	if err != nil {
		return events.Event{}, err
	}
	item := events.Event{ULID: row.ULID, Fields: fields}
	if row.CreatedAt.Valid {
		item.CreatedAt = row.CreatedAt.Time
	}
	if row.UpdatedAt.Valid {
		item.UpdatedAt = row.UpdatedAt.Time
	}
	return item, nil
}
