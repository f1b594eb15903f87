package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/gatherhall/server/internal/domain/organizers"
	"github.com/jackc/pgx/v5"
)

var _ organizers.Repository = (*OrganizerRepository)(nil)

func (r *OrganizerRepository) List(ctx context.Context) ([]organizers.Organizer, error) {
	rows, err := r.pool.Query(ctx, `
SELECT ulid, data, created_at, updated_at
  FROM organizers
 ORDER BY created_at, ulid
`)
	if err != nil {
		return nil, fmt.Errorf("list organizers: %w", err)
	}
	defer rows.Close()

	var items []organizers.Organizer
	for rows.Next() {
		var row documentRow
		if err := rows.Scan(&row.ULID, &row.Data, &row.CreatedAt, &row.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan organizer: %w", err)
		}
		item, err := organizerRowToDomain(row)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list organizers: %w", err)
	}
	return items, nil
}

func (r *OrganizerRepository) GetByULID(ctx context.Context, ulid string) (*organizers.Organizer, error) {
	row := r.pool.QueryRow(ctx, `
SELECT ulid, data, created_at, updated_at
  FROM organizers
 WHERE ulid = $1
`, normalizeULID(ulid))

	var data documentRow
	if err := row.Scan(&data.ULID, &data.Data, &data.CreatedAt, &data.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, organizers.ErrNotFound
		}
		return nil, fmt.Errorf("get organizer: %w", err)
	}

	item, err := organizerRowToDomain(data)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *OrganizerRepository) Create(ctx context.Context, ulid string, fields map[string]any) (*organizers.Organizer, error) {
	data, err := encodeFields(fields)
	if err != nil {
		return nil, err
	}

	row := r.pool.QueryRow(ctx, `
INSERT INTO organizers (ulid, data)
VALUES ($1, $2)
RETURNING ulid, data, created_at, updated_at
`, normalizeULID(ulid), data)

	var created documentRow
	if err := row.Scan(&created.ULID, &created.Data, &created.CreatedAt, &created.UpdatedAt); err != nil {
		return nil, fmt.Errorf("create organizer: %w", err)
	}

	item, err := organizerRowToDomain(created)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *OrganizerRepository) Update(ctx context.Context, ulid string, fields map[string]any) (*organizers.Organizer, error) {
	data, err := encodeFields(fields)
	if err != nil {
		return nil, err
	}

	row := r.pool.QueryRow(ctx, `
UPDATE organizers
   SET data = data || $2::jsonb,
       updated_at = now()
 WHERE ulid = $1
RETURNING ulid, data, created_at, updated_at
`, normalizeULID(ulid), data)

	var updated documentRow
	if err := row.Scan(&updated.ULID, &updated.Data, &updated.CreatedAt, &updated.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, organizers.ErrNotFound
		}
		return nil, fmt.Errorf("update organizer: %w", err)
	}

	item, err := organizerRowToDomain(updated)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *OrganizerRepository) Delete(ctx context.Context, ulid string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM organizers WHERE ulid = $1`, normalizeULID(ulid))
	if err != nil {
		return fmt.Errorf("delete organizer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return organizers.ErrNotFound
	}
	return nil
}

func organizerRowToDomain(row documentRow) (organizers.Organizer, error) {
	fields, err := row.fields()
	if err != nil {
		return organizers.Organizer{}, err
	}
	item := organizers.Organizer{ULID: row.ULID, Fields: fields}
	if row.CreatedAt.Valid {
		item.CreatedAt = row.CreatedAt.Time
	}
	if row.UpdatedAt.Valid {
		item.UpdatedAt = row.UpdatedAt.Time
	}
	return item, nil
}
