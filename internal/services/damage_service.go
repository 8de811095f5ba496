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

type DamageService struct {
	damageRepo *repositories.DamageRepository
}

func NewDamageService(damageRepo *repositories.DamageRepository) *DamageService {
	return &DamageService{damageRepo: damageRepo}
}

func buildDamageEntry(req *models.SaveDamageEntryRequest) (*models.DamageEntry, error) {
	if req.EntryDate == "" {
		return nil, errors.New("entry date is required")
	}
	if _, err := timeutil.ParseInIST(timeutil.DateLayout, req.EntryDate); err != nil {
		return nil, errors.New("entry date must be YYYY-MM-DD")
	}
	if req.LocationName == "" {
		return nil, errors.New("location is required")
	}
	if req.DamageType == "" {
		return nil, errors.New("damage type is required")
	}
	if req.Branch == "" || req.Branch == stock.BranchAll {
		return nil, errors.New("a concrete branch is required")
	}

	counts := stock.ParsePackCounts(req.Tray30, req.Pack30, req.Pack10, req.Pack06, req.Loose)
	total := counts.Units()
	if total <= 0 {
		return nil, errors.New("at least one egg quantity is required")
	}

	return &models.DamageEntry{
		EntryDate:      req.EntryDate,
		LocationName:   req.LocationName,
		DamageType:     req.DamageType,
		DamageLocation: req.DamageLocation,
		Description:    req.Description,
		Branch:         req.Branch,
		Tray30:         counts.Tray30,
		Pack30:         counts.Pack30,
		Pack10:         counts.Pack10,
		Pack06:         counts.Pack06,
		Loose:          counts.Loose,
		TotalEggs:      total,
	}, nil
}

func (s *DamageService) Create(ctx context.Context, req *models.SaveDamageEntryRequest) (*models.DamageEntry, error) {
	entry, err := buildDamageEntry(req)
	if err != nil {
		return nil, err
	}
	if err := s.damageRepo.Create(ctx, entry); err != nil {
		return nil, err
	}
	cache.InvalidateStockCaches(ctx)
	log.Printf("[Damage] Entry created: %s %s %d eggs (%s)", entry.Branch, entry.EntryDate, entry.TotalEggs, entry.DamageType)
	return entry, nil
}

func (s *DamageService) Update(ctx context.Context, id int, req *models.SaveDamageEntryRequest) (*models.DamageEntry, error) {
	entry, err := buildDamageEntry(req)
	if err != nil {
		return nil, err
	}
	entry.ID = id
	if err := s.damageRepo.Update(ctx, entry); err != nil {
		return nil, err
	}
	cache.InvalidateStockCaches(ctx)
	return s.damageRepo.Get(ctx, id)
}

func (s *DamageService) Get(ctx context.Context, id int) (*models.DamageEntry, error) {
	return s.damageRepo.Get(ctx, id)
}

func (s *DamageService) List(ctx context.Context, branch string) ([]models.DamageEntry, error) {
	return s.damageRepo.List(ctx, branch)
}

func (s *DamageService) Delete(ctx context.Context, id int) error {
	if err := s.damageRepo.Delete(ctx, id); err != nil {
		return err
	}
	cache.InvalidateStockCaches(ctx)
	return nil
}
