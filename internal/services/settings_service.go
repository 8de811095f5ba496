package services

import (
	"context"
	"errors"
	"strconv"

	"poultry-backend/internal/models"
	"poultry-backend/internal/repositories"
)

type SettingsService struct {
	settingRepo *repositories.SystemSettingRepository
	catalogRepo *repositories.CatalogRepository
}

func NewSettingsService(settingRepo *repositories.SystemSettingRepository, catalogRepo *repositories.CatalogRepository) *SettingsService {
	return &SettingsService{
		settingRepo: settingRepo,
		catalogRepo: catalogRepo,
	}
}

func (s *SettingsService) ListSettings(ctx context.Context) ([]models.SystemSetting, error) {
	return s.settingRepo.List(ctx)
}

func (s *SettingsService) UpdateSetting(ctx context.Context, key, value string, userID int) error {
	if key == "" {
		return errors.New("setting key is required")
	}
	if value == "" {
		return errors.New("setting value is required")
	}
	if key == models.SettingLowStockThreshold {
		if n, err := strconv.Atoi(value); err != nil || n <= 0 {
			return errors.New("low stock threshold must be a positive number")
		}
	}
	return s.settingRepo.Upsert(ctx, key, value, userID)
}

func (s *SettingsService) ListCatalog(ctx context.Context, kind string) ([]models.CatalogItem, error) {
	if !models.ValidCatalogKind(kind) {
		return nil, errors.New("unknown catalog kind: " + kind)
	}
	return s.catalogRepo.ListByKind(ctx, kind)
}

func (s *SettingsService) AddCatalogItem(ctx context.Context, kind string, req *models.SaveCatalogItemRequest) (*models.CatalogItem, error) {
	if !models.ValidCatalogKind(kind) {
		return nil, errors.New("unknown catalog kind: " + kind)
	}
	if req.Name == "" {
		return nil, errors.New("name is required")
	}

	item := &models.CatalogItem{Kind: kind, Name: req.Name, Meta: req.Meta}
	if err := s.catalogRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *SettingsService) DeleteCatalogItem(ctx context.Context, kind string, id int) error {
	if !models.ValidCatalogKind(kind) {
		return errors.New("unknown catalog kind: " + kind)
	}
	return s.catalogRepo.Delete(ctx, kind, id)
}

func (s *SettingsService) BranchNames(ctx context.Context) ([]string, error) {
	return s.catalogRepo.BranchNames(ctx)
}
