package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"poultry-backend/internal/models"
)

type CatalogRepository struct {
	DB *pgxpool.Pool
}

func NewCatalogRepository(db *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{DB: db}
}

func (r *CatalogRepository) ListByKind(ctx context.Context, kind string) ([]models.CatalogItem, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT id, kind, name, COALESCE(meta, ''), created_at
		FROM catalog_items
		WHERE kind = $1
		ORDER BY name
	`, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s catalog: %w", kind, err)
	}
	defer rows.Close()

	var items []models.CatalogItem
	for rows.Next() {
		var item models.CatalogItem
		if err := rows.Scan(&item.ID, &item.Kind, &item.Name, &item.Meta, &item.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *CatalogRepository) Create(ctx context.Context, item *models.CatalogItem) error {
	err := r.DB.QueryRow(ctx, `
		INSERT INTO catalog_items (kind, name, meta)
		VALUES ($1, $2, NULLIF($3, ''))
		ON CONFLICT (kind, name) DO NOTHING
		RETURNING id, created_at
	`, item.Kind, item.Name, item.Meta).Scan(&item.ID, &item.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create %s %q (may already exist): %w", item.Kind, item.Name, err)
	}
	return nil
}

func (r *CatalogRepository) Delete(ctx context.Context, kind string, id int) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM catalog_items WHERE id = $1 AND kind = $2`, id, kind)
	if err != nil {
		return fmt.Errorf("failed to delete catalog item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("catalog item %d not found", id)
	}
	return nil
}

// BranchNames returns the configured branch list for the stock
// scheduler's per-branch sweep.
func (r *CatalogRepository) BranchNames(ctx context.Context) ([]string, error) {
	items, err := r.ListByKind(ctx, models.CatalogBranch)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.Name)
	}
	return names, nil
}
