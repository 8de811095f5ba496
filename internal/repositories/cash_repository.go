package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"poultry-backend/internal/models"
	"poultry-backend/internal/stock"
)

type CashRepository struct {
	DB *pgxpool.Pool
}

func NewCashRepository(db *pgxpool.Pool) *CashRepository {
	return &CashRepository{DB: db}
}

func (r *CashRepository) Create(ctx context.Context, e *models.CashEntry) error {
	err := r.DB.QueryRow(ctx, `
		INSERT INTO cash_entries (entry_date, entry_type, category, description, amount, branch)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`, e.EntryDate, e.EntryType, e.Category, e.Description, e.Amount, e.Branch).
		Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create cash entry: %w", err)
	}
	return nil
}

func (r *CashRepository) Get(ctx context.Context, id int) (*models.CashEntry, error) {
	e := &models.CashEntry{}
	err := r.DB.QueryRow(ctx, `
		SELECT id, to_char(entry_date, 'YYYY-MM-DD'), entry_type, category,
		       COALESCE(description, ''), amount, branch, created_at, updated_at
		FROM cash_entries
		WHERE id = $1
	`, id).Scan(&e.ID, &e.EntryDate, &e.EntryType, &e.Category, &e.Description, &e.Amount, &e.Branch, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("cash entry not found: %w", err)
	}
	return e, nil
}

func (r *CashRepository) List(ctx context.Context, branch string) ([]models.CashEntry, error) {
	query := `
		SELECT id, to_char(entry_date, 'YYYY-MM-DD'), entry_type, category,
		       COALESCE(description, ''), amount, branch, created_at, updated_at
		FROM cash_entries
	`
	args := []interface{}{}
	if branch != "" && branch != stock.BranchAll {
		query += ` WHERE branch = $1`
		args = append(args, branch)
	}
	query += ` ORDER BY entry_date DESC, id DESC`

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list cash entries: %w", err)
	}
	defer rows.Close()

	var entries []models.CashEntry
	for rows.Next() {
		var e models.CashEntry
		if err := rows.Scan(&e.ID, &e.EntryDate, &e.EntryType, &e.Category, &e.Description, &e.Amount, &e.Branch, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *CashRepository) Summary(ctx context.Context, branch string) (*models.CashSummary, error) {
	query := `
		SELECT
			COALESCE(SUM(amount) FILTER (WHERE entry_type = 'Income'), 0),
			COALESCE(SUM(amount) FILTER (WHERE entry_type = 'Expense'), 0)
		FROM cash_entries
	`
	args := []interface{}{}
	if branch != "" && branch != stock.BranchAll {
		query += ` WHERE branch = $1`
		args = append(args, branch)
	}

	s := &models.CashSummary{}
	if err := r.DB.QueryRow(ctx, query, args...).Scan(&s.TotalIncome, &s.TotalExpense); err != nil {
		return nil, fmt.Errorf("failed to compute cash summary: %w", err)
	}
	s.Balance = s.TotalIncome - s.TotalExpense
	return s, nil
}

func (r *CashRepository) Update(ctx context.Context, e *models.CashEntry) error {
	tag, err := r.DB.Exec(ctx, `
		UPDATE cash_entries
		SET entry_date = $1, entry_type = $2, category = $3, description = $4,
		    amount = $5, branch = $6, updated_at = NOW()
		WHERE id = $7
	`, e.EntryDate, e.EntryType, e.Category, e.Description, e.Amount, e.Branch, e.ID)
	if err != nil {
		return fmt.Errorf("failed to update cash entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("cash entry %d not found", e.ID)
	}
	return nil
}

func (r *CashRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM cash_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete cash entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("cash entry %d not found", id)
	}
	return nil
}
