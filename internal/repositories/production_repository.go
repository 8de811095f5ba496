package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"poultry-backend/internal/models"
	"poultry-backend/internal/stock"
)

type ProductionRepository struct {
	DB *pgxpool.Pool
}

func NewProductionRepository(db *pgxpool.Pool) *ProductionRepository {
	return &ProductionRepository{DB: db}
}

func (r *ProductionRepository) Create(ctx context.Context, e *models.ProductionEntry) error {
	err := r.DB.QueryRow(ctx, `
		INSERT INTO production_entries
			(entry_date, location_name, branch, tray30, pack30, pack10, pack06, total_eggs)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`, e.EntryDate, e.LocationName, e.Branch, e.Tray30, e.Pack30, e.Pack10, e.Pack06, e.TotalEggs).
		Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create production entry: %w", err)
	}
	return nil
}

func (r *ProductionRepository) Get(ctx context.Context, id int) (*models.ProductionEntry, error) {
	e := &models.ProductionEntry{}
	err := r.DB.QueryRow(ctx, `
		SELECT id, to_char(entry_date, 'YYYY-MM-DD'), location_name, branch,
		       tray30, pack30, pack10, pack06, total_eggs, created_at, updated_at
		FROM production_entries
		WHERE id = $1
	`, id).Scan(&e.ID, &e.EntryDate, &e.LocationName, &e.Branch,
		&e.Tray30, &e.Pack30, &e.Pack10, &e.Pack06, &e.TotalEggs, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("production entry not found: %w", err)
	}
	return e, nil
}

func (r *ProductionRepository) List(ctx context.Context, branch string) ([]models.ProductionEntry, error) {
	query := `
		SELECT id, to_char(entry_date, 'YYYY-MM-DD'), location_name, branch,
		       tray30, pack30, pack10, pack06, total_eggs, created_at, updated_at
		FROM production_entries
	`
	args := []interface{}{}
	if branch != "" && branch != stock.BranchAll {
		query += ` WHERE branch = $1`
		args = append(args, branch)
	}
	query += ` ORDER BY entry_date DESC, id DESC`

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list production entries: %w", err)
	}
	defer rows.Close()

	var entries []models.ProductionEntry
	for rows.Next() {
		var e models.ProductionEntry
		if err := rows.Scan(&e.ID, &e.EntryDate, &e.LocationName, &e.Branch,
			&e.Tray30, &e.Pack30, &e.Pack10, &e.Pack06, &e.TotalEggs, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// ListTotals returns the stored branch/total pairs the stock
// aggregator consumes. Kept narrow so dashboard loads stay cheap.
func (r *ProductionRepository) ListTotals(ctx context.Context) ([]stock.Record, error) {
	rows, err := r.DB.Query(ctx, `SELECT branch, total_eggs FROM production_entries`)
	if err != nil {
		return nil, fmt.Errorf("failed to list production totals: %w", err)
	}
	defer rows.Close()

	var records []stock.Record
	for rows.Next() {
		var rec stock.Record
		if err := rows.Scan(&rec.Branch, &rec.TotalEggs); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *ProductionRepository) Update(ctx context.Context, e *models.ProductionEntry) error {
	tag, err := r.DB.Exec(ctx, `
		UPDATE production_entries
		SET entry_date = $1, location_name = $2, branch = $3,
		    tray30 = $4, pack30 = $5, pack10 = $6, pack06 = $7,
		    total_eggs = $8, updated_at = NOW()
		WHERE id = $9
	`, e.EntryDate, e.LocationName, e.Branch, e.Tray30, e.Pack30, e.Pack10, e.Pack06, e.TotalEggs, e.ID)
	if err != nil {
		return fmt.Errorf("failed to update production entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("production entry %d not found", e.ID)
	}
	return nil
}

func (r *ProductionRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM production_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete production entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("production entry %d not found", id)
	}
	return nil
}
