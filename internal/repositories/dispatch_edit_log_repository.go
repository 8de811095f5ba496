package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"poultry-backend/internal/models"
)

type DispatchEditLogRepository struct {
	DB *pgxpool.Pool
}

func NewDispatchEditLogRepository(db *pgxpool.Pool) *DispatchEditLogRepository {
	return &DispatchEditLogRepository{DB: db}
}

func (r *DispatchEditLogRepository) Create(ctx context.Context, l *models.DispatchEditLog) error {
	err := r.DB.QueryRow(ctx, `
		INSERT INTO dispatch_edit_logs
			(batch_id, trip_id, action, field_name, old_value, new_value, edited_by, edited_email)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`, l.BatchID, l.TripID, l.Action, l.FieldName, l.OldValue, l.NewValue, l.EditedBy, l.EditedEmail).
		Scan(&l.ID, &l.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create dispatch edit log: %w", err)
	}
	return nil
}

func (r *DispatchEditLogRepository) ListByBatch(ctx context.Context, batchID int) ([]models.DispatchEditLog, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT id, batch_id, trip_id, action, field_name,
		       COALESCE(old_value, ''), COALESCE(new_value, ''),
		       edited_by, COALESCE(edited_email, ''), created_at
		FROM dispatch_edit_logs
		WHERE batch_id = $1
		ORDER BY created_at DESC, id DESC
	`, batchID)
	if err != nil {
		return nil, fmt.Errorf("failed to list dispatch edit logs: %w", err)
	}
	defer rows.Close()

	var logs []models.DispatchEditLog
	for rows.Next() {
		var l models.DispatchEditLog
		if err := rows.Scan(&l.ID, &l.BatchID, &l.TripID, &l.Action, &l.FieldName,
			&l.OldValue, &l.NewValue, &l.EditedBy, &l.EditedEmail, &l.CreatedAt); err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}
