package services

import (
	"context"
	"errors"
	"log"

	"poultry-backend/internal/cache"
	"poultry-backend/internal/models"
	"poultry-backend/internal/repositories"
	"poultry-backend/internal/stock"
	"poultry-backend/internal/timeutil"
)

type ProductionService struct {
	productionRepo *repositories.ProductionRepository
}

func NewProductionService(productionRepo *repositories.ProductionRepository) *ProductionService {
	return &ProductionService{productionRepo: productionRepo}
}

// buildProductionEntry validates and normalizes a form submission.
// The derived total is computed here, once, at write time.
func buildProductionEntry(req *models.SaveProductionEntryRequest) (*models.ProductionEntry, error) {
	if req.EntryDate == "" {
		return nil, errors.New("entry date is required")
	}
	if _, err := timeutil.ParseInIST(timeutil.DateLayout, req.EntryDate); err != nil {
		return nil, errors.New("entry date must be YYYY-MM-DD")
	}
	if req.LocationName == "" {
		return nil, errors.New("location is required")
	}
	if req.Branch == "" || req.Branch == stock.BranchAll {
		return nil, errors.New("a concrete branch is required")
	}

	counts := stock.ParsePackCounts(req.Tray30, req.Pack30, req.Pack10, req.Pack06, "")
	total := counts.Units()
	if total <= 0 {
		return nil, errors.New("at least one egg quantity is required")
	}

	return &models.ProductionEntry{
		EntryDate:    req.EntryDate,
		LocationName: req.LocationName,
		Branch:       req.Branch,
		Tray30:       counts.Tray30,
		Pack30:       counts.Pack30,
		Pack10:       counts.Pack10,
		Pack06:       counts.Pack06,
		TotalEggs:    total,
	}, nil
}

func (s *ProductionService) Create(ctx context.Context, req *models.SaveProductionEntryRequest) (*models.ProductionEntry, error) {
	entry, err := buildProductionEntry(req)
	if err != nil {
		return nil, err
	}
	if err := s.productionRepo.Create(ctx, entry); err != nil {
		return nil, err
	}
	cache.InvalidateStockCaches(ctx)
	log.Printf("[Production] Entry created: %s %s %d eggs", entry.Branch, entry.EntryDate, entry.TotalEggs)
	return entry, nil
}

func (s *ProductionService) Update(ctx context.Context, id int, req *models.SaveProductionEntryRequest) (*models.ProductionEntry, error) {
	entry, err := buildProductionEntry(req)
	if err != nil {
		return nil, err
	}
	entry.ID = id
	if err := s.productionRepo.Update(ctx, entry); err != nil {
		return nil, err
	}
	cache.InvalidateStockCaches(ctx)
	return s.productionRepo.Get(ctx, id)
}

func (s *ProductionService) Get(ctx context.Context, id int) (*models.ProductionEntry, error) {
	return s.productionRepo.Get(ctx, id)
}

func (s *ProductionService) List(ctx context.Context, branch string) ([]models.ProductionEntry, error) {
	return s.productionRepo.List(ctx, branch)
}

func (s *ProductionService) Delete(ctx context.Context, id int) error {
	if err := s.productionRepo.Delete(ctx, id); err != nil {
		return err
	}
	cache.InvalidateStockCaches(ctx)
	return nil
}
