package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/gatherhall/server/internal/domain/attendees"
	"github.com/jackc/pgx/v5"
)

var _ attendees.Repository = (*AttendeeRepository)(nil)

func (r *AttendeeRepository) List(ctx context.Context) ([]attendees.Attendee, error) {
	rows, err := r.pool.Query(ctx, `
SELECT ulid, data, created_at, updated_at
  FROM attendees
 ORDER BY created_at, ulid
`)
	if err != nil {
		return nil, fmt.Errorf("list attendees: %w", err)
	}
	defer rows.Close()

	var items []attendees.Attendee
	for rows.Next() {
		var row documentRow
		if err := rows.Scan(&row.ULID, &row.Data, &row.CreatedAt, &row.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan attendee: %w", err)
		}
		item, err := attendeeRowToDomain(row)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list attendees: %w", err)
	}
	return items, nil
}

func (r *AttendeeRepository) GetByULID(ctx context.Context, ulid string) (*attendees.Attendee, error) {
	row := r.pool.QueryRow(ctx, `
SELECT ulid, data, created_at, updated_at
  FROM attendees
 WHERE ulid = $1
`, normalizeULID(ulid))

	var data documentRow
	if err := row.Scan(&data.ULID, &data.Data, &data.CreatedAt, &data.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, attendees.ErrNotFound
		}
		return nil, fmt.Errorf("get attendee: %w", err)
	}

	item, err := attendeeRowToDomain(data)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *AttendeeRepository) Create(ctx context.Context, ulid string, fields map[string]any) (*attendees.Attendee, error) {
	data, err := encodeFields(fields)
	if err != nil {
		return nil, err
	}

	row := r.pool.QueryRow(ctx, `
INSERT INTO attendees (ulid, data)
VALUES ($1, $2)
RETURNING ulid, data, created_at, updated_at
`, normalizeULID(ulid), data)

	var created documentRow
	if err := row.Scan(&created.ULID, &created.Data, &created.CreatedAt, &created.UpdatedAt); err != nil {
		return nil, fmt.Errorf("create attendee: %w", err)
	}

	item, err := attendeeRowToDomain(created)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *AttendeeRepository) Delete(ctx context.Context, ulid string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM attendees WHERE ulid = $1`, normalizeULID(ulid))
	if err != nil {
		return fmt.Errorf("delete attendee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendees.ErrNotFound
	}
	return nil
}

func attendeeRowToDomain(row documentRow) (attendees.Attendee, error) {
	fields, err := row.fields()
	if err != nil {
		return attendees.Attendee{}, err
	}
	item := attendees.Attendee{ULID: row.ULID, Fields: fields}
	if row.CreatedAt.Valid {
		item.CreatedAt = row.CreatedAt.Time
	}
	if row.UpdatedAt.Valid {
		item.UpdatedAt = row.UpdatedAt.Time
	}
	return item, nil
}
