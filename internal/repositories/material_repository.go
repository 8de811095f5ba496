package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"poultry-backend/internal/models"
	"poultry-backend/internal/stock"
)

type MaterialRepository struct {
	DB *pgxpool.Pool
}

func NewMaterialRepository(db *pgxpool.Pool) *MaterialRepository {
	return &MaterialRepository{DB: db}
}

func (r *MaterialRepository) Create(ctx context.Context, e *models.MaterialEntry) error {
	err := r.DB.QueryRow(ctx, `
		INSERT INTO material_entries
			(entry_date, item_name, base_item_name, variant, category, quantity, unit, branch)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`, e.EntryDate, e.ItemName, e.BaseItemName, e.Variant, e.Category, e.Quantity, e.Unit, e.Branch).
		Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create material entry: %w", err)
	}
	return nil
}

func (r *MaterialRepository) Get(ctx context.Context, id int) (*models.MaterialEntry, error) {
	e := &models.MaterialEntry{}
	err := r.DB.QueryRow(ctx, `
		SELECT id, to_char(entry_date, 'YYYY-MM-DD'), item_name, COALESCE(base_item_name, ''),
		       COALESCE(variant, ''), category, quantity, COALESCE(unit, ''), branch,
		       created_at, updated_at
		FROM material_entries
		WHERE id = $1
	`, id).Scan(&e.ID, &e.EntryDate, &e.ItemName, &e.BaseItemName, &e.Variant,
		&e.Category, &e.Quantity, &e.Unit, &e.Branch, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("material entry not found: %w", err)
	}
	return e, nil
}

func (r *MaterialRepository) List(ctx context.Context, branch string) ([]models.MaterialEntry, error) {
	query := `
		SELECT id, to_char(entry_date, 'YYYY-MM-DD'), item_name, COALESCE(base_item_name, ''),
		       COALESCE(variant, ''), category, quantity, COALESCE(unit, ''), branch,
		       created_at, updated_at
		FROM material_entries
	`
	args := []interface{}{}
	if branch != "" && branch != stock.BranchAll {
		query += ` WHERE branch = $1`
		args = append(args, branch)
	}
	query += ` ORDER BY entry_date DESC, id DESC`

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list material entries: %w", err)
	}
	defer rows.Close()

	var entries []models.MaterialEntry
	for rows.Next() {
		var e models.MaterialEntry
		if err := rows.Scan(&e.ID, &e.EntryDate, &e.ItemName, &e.BaseItemName, &e.Variant,
			&e.Category, &e.Quantity, &e.Unit, &e.Branch, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *MaterialRepository) Update(ctx context.Context, e *models.MaterialEntry) error {
	tag, err := r.DB.Exec(ctx, `
		UPDATE material_entries
		SET entry_date = $1, item_name = $2, base_item_name = $3, variant = $4,
		    category = $5, quantity = $6, unit = $7, branch = $8, updated_at = NOW()
		WHERE id = $9
	`, e.EntryDate, e.ItemName, e.BaseItemName, e.Variant, e.Category, e.Quantity, e.Unit, e.Branch, e.ID)
	if err != nil {
		return fmt.Errorf("failed to update material entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("material entry %d not found", e.ID)
	}
	return nil
}

func (r *MaterialRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM material_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete material entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("material entry %d not found", id)
	}
	return nil
}
