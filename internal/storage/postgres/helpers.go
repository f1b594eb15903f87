package postgres

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgtype"
)

// documentRow is the scan target shared by all three collections: every
// record is a ULID identity plus a JSONB document.
type documentRow struct {
	ULID      string
	Data      []byte
	CreatedAt pgtype.Timestamptz
	UpdatedAt pgtype.Timestamptz
}

func (row documentRow) fields() (map[string]any, error) {
	fields := map[string]any{}
	if len(row.Data) > 0 {
		if err := json.Unmarshal(row.Data, &fields); err != nil {
			return nil, fmt.Errorf("decode document: %w", err)
		}
	}
	return fields, nil
}

func encodeFields(fields map[string]any) ([]byte, error) {
	if fields == nil {
		fields = map[string]any{}
	}
	data, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	return data, nil
}

// normalizeULID folds identities to the stored (upper-case) form. ULIDs
// validate case-insensitively but the ulid column holds upper-case.
func normalizeULID(value string) string {
	return strings.ToUpper(strings.TrimSpace(value))
}
