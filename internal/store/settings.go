package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"
)

// Setting is one key of the settings table. Value is stored as JSONB and
// returned verbatim.
type Setting struct {
	Key       string          `db:"key" json:"key"`
	Value     json.RawMessage `db:"value" json:"value"`
	UpdatedAt time.Time       `db:"updated_at" json:"updated_at"`
}

const sqlListSettings = `
SELECT key, value, updated_at
FROM settings
ORDER BY key ASC
`

func (s *Store) ListSettings(ctx context.Context) ([]Setting, error) {
	settings := []Setting{}
	if err := s.db.SelectContext(ctx, &settings, sqlListSettings); err != nil {
		return nil, fmt.Errorf("failed to list settings: %w", err)
	}
	return settings, nil
}

const sqlGetSetting = `
SELECT key, value, updated_at
FROM settings
WHERE key = $1
`

func (s *Store) GetSetting(ctx context.Context, key string) (Setting, error) {
	var setting Setting
	if err := s.db.GetContext(ctx, &setting, sqlGetSetting, key); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Setting{}, ErrNotFound
		}
		return Setting{}, fmt.Errorf("failed to get setting: %w", err)
	}
	return setting, nil
}

const sqlUpsertSetting = `
INSERT INTO settings (key, value, updated_at)
VALUES ($1, $2, NOW())
ON CONFLICT (key) DO UPDATE
SET value = EXCLUDED.value,
    updated_at = NOW()
`

// UpsertSettings writes every key in one transaction; either all keys are
// saved or none are.
func (s *Store) UpsertSettings(ctx context.Context, values map[string]json.RawMessage) error {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin settings transaction: %w", err)
	}
	defer tx.Rollback()

	for _, key := range keys {
		if _, err := tx.ExecContext(ctx, sqlUpsertSetting, key, []byte(values[key])); err != nil {
			return fmt.Errorf("failed to upsert setting %q: %w", key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit settings: %w", err)
	}
	return nil
}
