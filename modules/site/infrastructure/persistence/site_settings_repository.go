package persistence

import (
	"context"
	"errors"

	"github.com/atelier-dourado/backoffice/modules/site/domain/sitesettings"
	"github.com/atelier-dourado/backoffice/pkg/composables"
	"github.com/jackc/pgx/v5"
)

const (
	siteSettingsSelectQuery = `
		SELECT setting_key, setting_value, updated_at
		FROM site_settings`

	siteSettingsUpsertQuery = `
		INSERT INTO site_settings (setting_key, setting_value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (setting_key) DO UPDATE
		SET setting_value = EXCLUDED.setting_value, updated_at = NOW()
		RETURNING setting_key, setting_value, updated_at`
)

type PgSiteSettingsRepository struct{}

func NewSiteSettingsRepository() sitesettings.Repository {
	return &PgSiteSettingsRepository{}
}

func (r *PgSiteSettingsRepository) GetAll(ctx context.Context) ([]*sitesettings.Setting, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := tx.Query(ctx, siteSettingsSelectQuery+` ORDER BY setting_key`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var settings []*sitesettings.Setting
	for rows.Next() {
		var setting sitesettings.Setting
		if err := rows.Scan(&setting.Key, &setting.Value, &setting.UpdatedAt); err != nil {
			return nil, err
		}
		settings = append(settings, &setting)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return settings, nil
}

func (r *PgSiteSettingsRepository) GetByKey(ctx context.Context, key string) (*sitesettings.Setting, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	var setting sitesettings.Setting
	err = tx.QueryRow(ctx, siteSettingsSelectQuery+` WHERE setting_key = $1`, key).
		Scan(&setting.Key, &setting.Value, &setting.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, sitesettings.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &setting, nil
}

func (r *PgSiteSettingsRepository) Upsert(ctx context.Context, setting *sitesettings.Setting) (*sitesettings.Setting, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	var saved sitesettings.Setting
	err = tx.QueryRow(ctx, siteSettingsUpsertQuery, setting.Key, setting.Value).
		Scan(&saved.Key, &saved.Value, &saved.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &saved, nil
}
