package services

import (
	"context"
	"errors"
	"log"
	"strconv"

	"poultry-backend/internal/cache"
	"poultry-backend/internal/metrics"
	"poultry-backend/internal/models"
	"poultry-backend/internal/repositories"
	"poultry-backend/internal/stock"
	"poultry-backend/internal/timeutil"
)

type DispatchService struct {
	dispatchRepo *repositories.DispatchRepository
	editLogRepo  *repositories.DispatchEditLogRepository
}

func NewDispatchService(dispatchRepo *repositories.DispatchRepository, editLogRepo *repositories.DispatchEditLogRepository) *DispatchService {
	return &DispatchService{
		dispatchRepo: dispatchRepo,
		editLogRepo:  editLogRepo,
	}
}

func validateBatchRequest(req *models.SaveDispatchBatchRequest) error {
	if req.BatchDate == "" {
		return errors.New("batch date is required")
	}
	if _, err := timeutil.ParseInIST(timeutil.DateLayout, req.BatchDate); err != nil {
		return errors.New("batch date must be YYYY-MM-DD")
	}
	if req.Branch == "" || req.Branch == stock.BranchAll {
		return errors.New("a concrete branch is required")
	}
	return nil
}

// Create reconciles and persists a new batch. Reconciliation is
// all-or-nothing: validation failure writes nothing.
func (s *DispatchService) Create(ctx context.Context, req *models.SaveDispatchBatchRequest) (*models.DispatchBatch, error) {
	if err := validateBatchRequest(req); err != nil {
		return nil, err
	}

	result, err := stock.ReconcileTrips(req.Trips)
	if err != nil {
		return nil, err
	}

	// New batch: stale client ids must not survive into inserts
	for i := range result.Trips {
		result.Trips[i].ID = 0
	}

	batch := &models.DispatchBatch{
		BatchDate:       req.BatchDate,
		Branch:          req.Branch,
		GrandTotalOrder: result.GrandTotalOrder,
		GrandTotalShort: result.GrandTotalShort,
		Trips:           result.Trips,
	}
	if err := s.dispatchRepo.CreateBatch(ctx, batch); err != nil {
		return nil, err
	}

	cache.InvalidateStockCaches(ctx)
	metrics.DispatchBatchesSaved.Inc()
	log.Printf("[Dispatch] Batch %d saved: %s %s, %d trips, order %d, short %d",
		batch.ID, batch.Branch, batch.BatchDate, len(batch.Trips), batch.GrandTotalOrder, batch.GrandTotalShort)
	return batch, nil
}

// Update re-reconciles an edited batch and applies the id-set diff
// against the stored trips, then records field-level edit logs.
func (s *DispatchService) Update(ctx context.Context, id int, req *models.SaveDispatchBatchRequest, userID int, userEmail string) (*models.DispatchBatch, error) {
	if err := validateBatchRequest(req); err != nil {
		return nil, err
	}

	existing, err := s.dispatchRepo.GetBatch(ctx, id)
	if err != nil {
		return nil, err
	}

	result, err := stock.ReconcileTrips(req.Trips)
	if err != nil {
		return nil, err
	}

	diff := stock.DiffTrips(existing.Trips, result.Trips)

	batch := &models.DispatchBatch{
		ID:              id,
		BatchDate:       req.BatchDate,
		Branch:          req.Branch,
		GrandTotalOrder: result.GrandTotalOrder,
		GrandTotalShort: result.GrandTotalShort,
	}
	if err := s.dispatchRepo.ApplyEdit(ctx, batch, diff); err != nil {
		return nil, err
	}

	s.recordEditLogs(ctx, existing, diff, userID, userEmail)

	cache.InvalidateStockCaches(ctx)
	metrics.DispatchBatchesSaved.Inc()
	log.Printf("[Dispatch] Batch %d edited by %s: %d updated, %d added, %d removed",
		id, userEmail, len(diff.Update), len(diff.Create), len(diff.Delete))
	return s.dispatchRepo.GetBatch(ctx, id)
}

// recordEditLogs writes one row per changed field. Log failures never
// fail the edit itself.
func (s *DispatchService) recordEditLogs(ctx context.Context, old *models.DispatchBatch, diff stock.TripDiff, userID int, userEmail string) {
	oldByID := make(map[int]models.Trip, len(old.Trips))
	for _, t := range old.Trips {
		oldByID[t.ID] = t
	}

	write := func(l *models.DispatchEditLog) {
		l.BatchID = old.ID
		l.EditedBy = userID
		l.EditedEmail = userEmail
		if err := s.editLogRepo.Create(ctx, l); err != nil {
			log.Printf("[Dispatch] Failed to write edit log for batch %d: %v", old.ID, err)
		}
	}

	for _, updated := range diff.Update {
		prev, ok := oldByID[updated.ID]
		if !ok {
			continue
		}
		tripID := updated.ID
		for _, c := range tripFieldChanges(prev, updated) {
			write(&models.DispatchEditLog{
				TripID:    &tripID,
				Action:    "updated",
				FieldName: c.field,
				OldValue:  c.oldValue,
				NewValue:  c.newValue,
			})
		}
	}
	for _, created := range diff.Create {
		write(&models.DispatchEditLog{
			Action:    "created",
			FieldName: "trip",
			NewValue:  created.SourceLocation + " -> " + created.DestinationLocation,
		})
	}
	for _, deletedID := range diff.Delete {
		prev := oldByID[deletedID]
		tripID := deletedID
		write(&models.DispatchEditLog{
			TripID:    &tripID,
			Action:    "deleted",
			FieldName: "trip",
			OldValue:  prev.SourceLocation + " -> " + prev.DestinationLocation,
		})
	}
}

type fieldChange struct {
	field    string
	oldValue string
	newValue string
}

func tripFieldChanges(old, updated models.Trip) []fieldChange {
	var changes []fieldChange
	cmpStr := func(field, o, n string) {
		if o != n {
			changes = append(changes, fieldChange{field, o, n})
		}
	}
	cmpInt := func(field string, o, n int) {
		if o != n {
			changes = append(changes, fieldChange{field, strconv.Itoa(o), strconv.Itoa(n)})
		}
	}

	cmpStr("source_location", old.SourceLocation, updated.SourceLocation)
	cmpStr("destination_location", old.DestinationLocation, updated.DestinationLocation)
	cmpStr("description", old.Description, updated.Description)
	cmpInt("ord_pack30", old.OrdPack30, updated.OrdPack30)
	cmpInt("ord_pack10", old.OrdPack10, updated.OrdPack10)
	cmpInt("ord_pack06", old.OrdPack06, updated.OrdPack06)
	cmpInt("ord_loose", old.OrdLoose, updated.OrdLoose)
	cmpInt("rec_pack30", old.RecPack30, updated.RecPack30)
	cmpInt("rec_pack10", old.RecPack10, updated.RecPack10)
	cmpInt("rec_pack06", old.RecPack06, updated.RecPack06)
	cmpInt("dispose_eggs", old.DisposeEggs, updated.DisposeEggs)
	cmpInt("returned_farm", old.ReturnedFarm, updated.ReturnedFarm)
	cmpInt("returned_nrgp", old.ReturnedNRGP, updated.ReturnedNRGP)

	return changes
}

func (s *DispatchService) Get(ctx context.Context, id int) (*models.DispatchBatch, error) {
	return s.dispatchRepo.GetBatch(ctx, id)
}

func (s *DispatchService) List(ctx context.Context, branch string) ([]models.DispatchBatch, error) {
	return s.dispatchRepo.ListBatches(ctx, branch)
}

func (s *DispatchService) EditHistory(ctx context.Context, batchID int) ([]models.DispatchEditLog, error) {
	return s.editLogRepo.ListByBatch(ctx, batchID)
}

func (s *DispatchService) Delete(ctx context.Context, id int) error {
	if err := s.dispatchRepo.DeleteBatch(ctx, id); err != nil {
		return err
	}
	cache.InvalidateStockCaches(ctx)
	return nil
}
