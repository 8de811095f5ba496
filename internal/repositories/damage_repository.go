package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"poultry-backend/internal/models"
	"poultry-backend/internal/stock"
)

type DamageRepository struct {
	DB *pgxpool.Pool
}

func NewDamageRepository(db *pgxpool.Pool) *DamageRepository {
	return &DamageRepository{DB: db}
}

func (r *DamageRepository) Create(ctx context.Context, e *models.DamageEntry) error {
	err := r.DB.QueryRow(ctx, `
		INSERT INTO damage_entries
			(entry_date, location_name, damage_type, damage_location, description, branch,
			 tray30, pack30, pack10, pack06, loose, total_eggs)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at, updated_at
	`, e.EntryDate, e.LocationName, e.DamageType, e.DamageLocation, e.Description, e.Branch,
		e.Tray30, e.Pack30, e.Pack10, e.Pack06, e.Loose, e.TotalEggs).
		Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create damage entry: %w", err)
	}
	return nil
}

func (r *DamageRepository) Get(ctx context.Context, id int) (*models.DamageEntry, error) {
	e := &models.DamageEntry{}
	err := r.DB.QueryRow(ctx, `
		SELECT id, to_char(entry_date, 'YYYY-MM-DD'), location_name, damage_type,
		       COALESCE(damage_location, ''), COALESCE(description, ''), branch,
		       tray30, pack30, pack10, pack06, loose, total_eggs, created_at, updated_at
		FROM damage_entries
		WHERE id = $1
	`, id).Scan(&e.ID, &e.EntryDate, &e.LocationName, &e.DamageType,
		&e.DamageLocation, &e.Description, &e.Branch,
		&e.Tray30, &e.Pack30, &e.Pack10, &e.Pack06, &e.Loose, &e.TotalEggs, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("damage entry not found: %w", err)
	}
	return e, nil
}

func (r *DamageRepository) List(ctx context.Context, branch string) ([]models.DamageEntry, error) {
	query := `
		SELECT id, to_char(entry_date, 'YYYY-MM-DD'), location_name, damage_type,
		       COALESCE(damage_location, ''), COALESCE(description, ''), branch,
		       tray30, pack30, pack10, pack06, loose, total_eggs, created_at, updated_at
		FROM damage_entries
	`
	args := []interface{}{}
	if branch != "" && branch != stock.BranchAll {
		query += ` WHERE branch = $1`
		args = append(args, branch)
	}
	query += ` ORDER BY entry_date DESC, id DESC`

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list damage entries: %w", err)
	}
	defer rows.Close()

	var entries []models.DamageEntry
	for rows.Next() {
		var e models.DamageEntry
		if err := rows.Scan(&e.ID, &e.EntryDate, &e.LocationName, &e.DamageType,
			&e.DamageLocation, &e.Description, &e.Branch,
			&e.Tray30, &e.Pack30, &e.Pack10, &e.Pack06, &e.Loose, &e.TotalEggs, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// ListTotals returns branch/total pairs for the stock aggregator.
func (r *DamageRepository) ListTotals(ctx context.Context) ([]stock.Record, error) {
	rows, err := r.DB.Query(ctx, `SELECT branch, total_eggs FROM damage_entries`)
	if err != nil {
		return nil, fmt.Errorf("failed to list damage totals: %w", err)
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

func (r *DamageRepository) Update(ctx context.Context, e *models.DamageEntry) error {
	tag, err := r.DB.Exec(ctx, `
		UPDATE damage_entries
		SET entry_date = $1, location_name = $2, damage_type = $3, damage_location = $4,
		    description = $5, branch = $6, tray30 = $7, pack30 = $8, pack10 = $9,
		    pack06 = $10, loose = $11, total_eggs = $12, updated_at = NOW()
		WHERE id = $13
	`, e.EntryDate, e.LocationName, e.DamageType, e.DamageLocation, e.Description, e.Branch,
		e.Tray30, e.Pack30, e.Pack10, e.Pack06, e.Loose, e.TotalEggs, e.ID)
	if err != nil {
		return fmt.Errorf("failed to update damage entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("damage entry %d not found", e.ID)
	}
	return nil
}

func (r *DamageRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM damage_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete damage entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("damage entry %d not found", id)
	}
	return nil
}
