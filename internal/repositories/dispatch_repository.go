package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"poultry-backend/internal/models"
	"poultry-backend/internal/stock"
)

type DispatchRepository struct {
	DB *pgxpool.Pool
}

func NewDispatchRepository(db *pgxpool.Pool) *DispatchRepository {
	return &DispatchRepository{DB: db}
}

// CreateBatch inserts the batch and its trips in one transaction.
func (r *DispatchRepository) CreateBatch(ctx context.Context, b *models.DispatchBatch) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO dispatch_batches (batch_date, branch, grand_total_order, grand_total_short)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`, b.BatchDate, b.Branch, b.GrandTotalOrder, b.GrandTotalShort).
		Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create dispatch batch: %w", err)
	}

	for i := range b.Trips {
		b.Trips[i].BatchID = b.ID
		if err := insertTrip(ctx, tx, &b.Trips[i]); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// ApplyEdit updates the batch header and applies a trip diff in one
// transaction: updates in place, inserts new trips, deletes removed
// ones. The diff keeps trip ids stable across edits.
func (r *DispatchRepository) ApplyEdit(ctx context.Context, b *models.DispatchBatch, diff stock.TripDiff) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `
		UPDATE dispatch_batches
		SET batch_date = $1, branch = $2, grand_total_order = $3,
		    grand_total_short = $4, updated_at = NOW()
		WHERE id = $5
	`, b.BatchDate, b.Branch, b.GrandTotalOrder, b.GrandTotalShort, b.ID)
	if err != nil {
		return fmt.Errorf("failed to update dispatch batch: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("dispatch batch %d not found", b.ID)
	}

	for i := range diff.Update {
		t := &diff.Update[i]
		_, err := tx.Exec(ctx, `
			UPDATE dispatch_trips
			SET position = $1, source_location = $2, destination_location = $3, description = $4,
			    ord_pack30 = $5, ord_pack10 = $6, ord_pack06 = $7, ord_loose = $8,
			    rec_pack30 = $9, rec_pack10 = $10, rec_pack06 = $11,
			    dispose_eggs = $12, returned_farm = $13, returned_nrgp = $14,
			    total_order_eggs = $15, total_received_eggs = $16,
			    short_pack30 = $17, short_pack10 = $18, short_pack06 = $19, total_short_eggs = $20
			WHERE id = $21 AND batch_id = $22
		`, t.Position, t.SourceLocation, t.DestinationLocation, t.Description,
			t.OrdPack30, t.OrdPack10, t.OrdPack06, t.OrdLoose,
			t.RecPack30, t.RecPack10, t.RecPack06,
			t.DisposeEggs, t.ReturnedFarm, t.ReturnedNRGP,
			t.TotalOrderEggs, t.TotalReceivedEggs,
			t.ShortPack30, t.ShortPack10, t.ShortPack06, t.TotalShortEggs,
			t.ID, b.ID)
		if err != nil {
			return fmt.Errorf("failed to update trip %d: %w", t.ID, err)
		}
	}

	for i := range diff.Create {
		t := &diff.Create[i]
		t.ID = 0
		t.BatchID = b.ID
		if err := insertTrip(ctx, tx, t); err != nil {
			return err
		}
	}

	for _, id := range diff.Delete {
		if _, err := tx.Exec(ctx, `DELETE FROM dispatch_trips WHERE id = $1 AND batch_id = $2`, id, b.ID); err != nil {
			return fmt.Errorf("failed to delete trip %d: %w", id, err)
		}
	}

	return tx.Commit(ctx)
}

func insertTrip(ctx context.Context, tx pgx.Tx, t *models.Trip) error {
	err := tx.QueryRow(ctx, `
		INSERT INTO dispatch_trips
			(batch_id, position, source_location, destination_location, description,
			 ord_pack30, ord_pack10, ord_pack06, ord_loose,
			 rec_pack30, rec_pack10, rec_pack06,
			 dispose_eggs, returned_farm, returned_nrgp,
			 total_order_eggs, total_received_eggs,
			 short_pack30, short_pack10, short_pack06, total_short_eggs)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
		RETURNING id
	`, t.BatchID, t.Position, t.SourceLocation, t.DestinationLocation, t.Description,
		t.OrdPack30, t.OrdPack10, t.OrdPack06, t.OrdLoose,
		t.RecPack30, t.RecPack10, t.RecPack06,
		t.DisposeEggs, t.ReturnedFarm, t.ReturnedNRGP,
		t.TotalOrderEggs, t.TotalReceivedEggs,
		t.ShortPack30, t.ShortPack10, t.ShortPack06, t.TotalShortEggs).
		Scan(&t.ID)
	if err != nil {
		return fmt.Errorf("failed to insert trip: %w", err)
	}
	return nil
}

func (r *DispatchRepository) GetBatch(ctx context.Context, id int) (*models.DispatchBatch, error) {
	b := &models.DispatchBatch{}
	err := r.DB.QueryRow(ctx, `
		SELECT id, to_char(batch_date, 'YYYY-MM-DD'), branch,
		       grand_total_order, grand_total_short, created_at, updated_at
		FROM dispatch_batches
		WHERE id = $1
	`, id).Scan(&b.ID, &b.BatchDate, &b.Branch, &b.GrandTotalOrder, &b.GrandTotalShort, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("dispatch batch not found: %w", err)
	}

	trips, err := r.listTrips(ctx, id)
	if err != nil {
		return nil, err
	}
	b.Trips = trips
	return b, nil
}

func (r *DispatchRepository) ListBatches(ctx context.Context, branch string) ([]models.DispatchBatch, error) {
	query := `
		SELECT id, to_char(batch_date, 'YYYY-MM-DD'), branch,
		       grand_total_order, grand_total_short, created_at, updated_at
		FROM dispatch_batches
	`
	args := []interface{}{}
	if branch != "" && branch != stock.BranchAll {
		query += ` WHERE branch = $1`
		args = append(args, branch)
	}
	query += ` ORDER BY batch_date DESC, id DESC`

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list dispatch batches: %w", err)
	}
	defer rows.Close()

	var batches []models.DispatchBatch
	for rows.Next() {
		var b models.DispatchBatch
		if err := rows.Scan(&b.ID, &b.BatchDate, &b.Branch, &b.GrandTotalOrder, &b.GrandTotalShort, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		batches = append(batches, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range batches {
		trips, err := r.listTrips(ctx, batches[i].ID)
		if err != nil {
			return nil, err
		}
		batches[i].Trips = trips
	}
	return batches, nil
}

func (r *DispatchRepository) listTrips(ctx context.Context, batchID int) ([]models.Trip, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT id, batch_id, position, source_location, destination_location, COALESCE(description, ''),
		       ord_pack30, ord_pack10, ord_pack06, ord_loose,
		       rec_pack30, rec_pack10, rec_pack06,
		       dispose_eggs, returned_farm, returned_nrgp,
		       total_order_eggs, total_received_eggs,
		       short_pack30, short_pack10, short_pack06, total_short_eggs
		FROM dispatch_trips
		WHERE batch_id = $1
		ORDER BY position
	`, batchID)
	if err != nil {
		return nil, fmt.Errorf("failed to list trips: %w", err)
	}
	defer rows.Close()

	var trips []models.Trip
	for rows.Next() {
		var t models.Trip
		if err := rows.Scan(&t.ID, &t.BatchID, &t.Position, &t.SourceLocation, &t.DestinationLocation, &t.Description,
			&t.OrdPack30, &t.OrdPack10, &t.OrdPack06, &t.OrdLoose,
			&t.RecPack30, &t.RecPack10, &t.RecPack06,
			&t.DisposeEggs, &t.ReturnedFarm, &t.ReturnedNRGP,
			&t.TotalOrderEggs, &t.TotalReceivedEggs,
			&t.ShortPack30, &t.ShortPack10, &t.ShortPack06, &t.TotalShortEggs); err != nil {
			return nil, err
		}
		trips = append(trips, t)
	}
	return trips, rows.Err()
}

// ListOrderTotals returns branch/grand-order pairs; batches count as
// the dispatched leg of the stock computation.
func (r *DispatchRepository) ListOrderTotals(ctx context.Context) ([]stock.Record, error) {
	rows, err := r.DB.Query(ctx, `SELECT branch, grand_total_order FROM dispatch_batches`)
	if err != nil {
		return nil, fmt.Errorf("failed to list dispatch totals: %w", err)
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

func (r *DispatchRepository) DeleteBatch(ctx context.Context, id int) error {
	// Trips cascade via FK
	tag, err := r.DB.Exec(ctx, `DELETE FROM dispatch_batches WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete dispatch batch: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("dispatch batch %d not found", id)
	}
	return nil
}
