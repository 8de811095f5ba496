package repositories

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"
	"poultry-backend/internal/models"
)

type SystemSettingRepository struct {
	DB *pgxpool.Pool
}

func NewSystemSettingRepository(db *pgxpool.Pool) *SystemSettingRepository {
	return &SystemSettingRepository{DB: db}
}

func (r *SystemSettingRepository) Get(ctx context.Context, key string) (*models.SystemSetting, error) {
	s := &models.SystemSetting{}
	err := r.DB.QueryRow(ctx, `
		SELECT id, setting_key, setting_value, COALESCE(description, ''), updated_at, COALESCE(updated_by_user_id, 0)
		FROM system_settings
		WHERE setting_key = $1
	`, key).Scan(&s.ID, &s.SettingKey, &s.SettingValue, &s.Description, &s.UpdatedAt, &s.UpdatedByUserID)
	if err != nil {
		return nil, fmt.Errorf("setting %s not found: %w", key, err)
	}
	return s, nil
}

// GetInt reads a numeric setting, falling back to def when the setting
// is absent or malformed.
func (r *SystemSettingRepository) GetInt(ctx context.Context, key string, def int) int {
	s, err := r.Get(ctx, key)
	if err != nil {
		return def
	}
	n, err := strconv.Atoi(s.SettingValue)
	if err != nil {
		return def
	}
	return n
}

func (r *SystemSettingRepository) List(ctx context.Context) ([]models.SystemSetting, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT id, setting_key, setting_value, COALESCE(description, ''), updated_at, COALESCE(updated_by_user_id, 0)
		FROM system_settings
		ORDER BY setting_key
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list settings: %w", err)
	}
	defer rows.Close()

	var settings []models.SystemSetting
	for rows.Next() {
		var s models.SystemSetting
		if err := rows.Scan(&s.ID, &s.SettingKey, &s.SettingValue, &s.Description, &s.UpdatedAt, &s.UpdatedByUserID); err != nil {
			return nil, err
		}
		settings = append(settings, s)
	}
	return settings, rows.Err()
}

func (r *SystemSettingRepository) Upsert(ctx context.Context, key, value string, userID int) error {
	_, err := r.DB.Exec(ctx, `
		INSERT INTO system_settings (setting_key, setting_value, updated_by_user_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (setting_key)
		DO UPDATE SET setting_value = $2, updated_by_user_id = $3, updated_at = NOW()
	`, key, value, userID)
	if err != nil {
		return fmt.Errorf("failed to save setting %s: %w", key, err)
	}
	return nil
}
