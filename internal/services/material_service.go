package services

import (
	"context"
	"errors"
	"strings"

	"poultry-backend/internal/models"
	"poultry-backend/internal/repositories"
	"poultry-backend/internal/stock"
	"poultry-backend/internal/timeutil"
)

type MaterialService struct {
	materialRepo *repositories.MaterialRepository
}

func NewMaterialService(materialRepo *repositories.MaterialRepository) *MaterialService {
	return &MaterialService{materialRepo: materialRepo}
}

func buildMaterialEntry(req *models.SaveMaterialEntryRequest) (*models.MaterialEntry, error) {
	if req.EntryDate == "" {
		return nil, errors.New("entry date is required")
	}
	if _, err := timeutil.ParseInIST(timeutil.DateLayout, req.EntryDate); err != nil {
		return nil, errors.New("entry date must be YYYY-MM-DD")
	}
	if req.ItemName == "" {
		return nil, errors.New("item name is required")
	}
	if req.Category != models.MaterialAsset && req.Category != models.MaterialConsumable {
		return nil, errors.New("category must be Asset or Consumable")
	}
	if req.Quantity <= 0 {
		return nil, errors.New("quantity must be greater than zero")
	}
	if req.Branch == "" || req.Branch == stock.BranchAll {
		return nil, errors.New("a concrete branch is required")
	}

	baseName := req.BaseItemName
	if baseName == "" {
		// "Feed (50kg)" keeps "Feed" as its base item
		baseName = strings.TrimSpace(strings.SplitN(req.ItemName, "(", 2)[0])
	}

	return &models.MaterialEntry{
		EntryDate:    req.EntryDate,
		ItemName:     req.ItemName,
		BaseItemName: baseName,
		Variant:      req.Variant,
		Category:     req.Category,
		Quantity:     req.Quantity,
		Unit:         req.Unit,
		Branch:       req.Branch,
	}, nil
}

func (s *MaterialService) Create(ctx context.Context, req *models.SaveMaterialEntryRequest) (*models.MaterialEntry, error) {
	entry, err := buildMaterialEntry(req)
	if err != nil {
		return nil, err
	}
	if err := s.materialRepo.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *MaterialService) Update(ctx context.Context, id int, req *models.SaveMaterialEntryRequest) (*models.MaterialEntry, error) {
	entry, err := buildMaterialEntry(req)
	if err != nil {
		return nil, err
	}
	entry.ID = id
	if err := s.materialRepo.Update(ctx, entry); err != nil {
		return nil, err
	}
	return s.materialRepo.Get(ctx, id)
}

func (s *MaterialService) List(ctx context.Context, branch string) ([]models.MaterialEntry, error) {
	return s.materialRepo.List(ctx, branch)
}

func (s *MaterialService) Delete(ctx context.Context, id int) error {
	return s.materialRepo.Delete(ctx, id)
}
