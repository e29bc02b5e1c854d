package settings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mcdev12/faauction/go/internal/settings/db"
	"github.com/mcdev12/faauction/go/internal/sqlutil"
)

// Repository implements settings data access on top of the sqlc queries.
type Repository struct {
	queries *db.Queries
	sqlDB   *sql.DB
}

// NewRepository creates a new settings repository
func NewRepository(queries *db.Queries, sqlDB *sql.DB) *Repository {
	return &Repository{
		queries: queries,
		sqlDB:   sqlDB,
	}
}

// GetSetting returns the stored value and whether the key exists.
func (r *Repository) GetSetting(ctx context.Context, key string) (string, bool, error) {
	value, err := r.queries.GetSetting(ctx, key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get setting %s: %w", key, err)
	}
	return value, true, nil
}

// ListSettings returns every stored setting keyed by name.
func (r *Repository) ListSettings(ctx context.Context) (map[string]string, error) {
	rows, err := r.queries.ListSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list settings: %w", err)
	}
	values := make(map[string]string, len(rows))
	for _, row := range rows {
		values[row.SettingKey] = row.SettingValue
	}
	return values, nil
}

// SetSettings writes all values in one transaction.
func (r *Repository) SetSettings(ctx context.Context, values map[string]string) error {
	err := sqlutil.Run(ctx, r.sqlDB, func(tx *sql.Tx) *db.Queries {
		return r.queries.WithTx(tx)
	}, func(q *db.Queries) error {
		for key, value := range values {
			if err := q.UpsertSetting(ctx, db.UpsertSettingParams{
				SettingKey:   key,
				SettingValue: value,
			}); err != nil {
				return fmt.Errorf("failed to set %s: %w", key, err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}
