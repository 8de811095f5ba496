package services

import (
	"context"
	"errors"

	"poultry-backend/internal/cache"
	"poultry-backend/internal/models"
	"poultry-backend/internal/repositories"
	"poultry-backend/internal/stock"
	"poultry-backend/internal/timeutil"
)

type CashbookService struct {
	cashRepo *repositories.CashRepository
}

func NewCashbookService(cashRepo *repositories.CashRepository) *CashbookService {
	return &CashbookService{cashRepo: cashRepo}
}

func buildCashEntry(req *models.SaveCashEntryRequest) (*models.CashEntry, error) {
	if req.EntryDate == "" {
		return nil, errors.New("entry date is required")
	}
	if _, err := timeutil.ParseInIST(timeutil.DateLayout, req.EntryDate); err != nil {
		return nil, errors.New("entry date must be YYYY-MM-DD")
	}
	if req.EntryType != models.CashTypeIncome && req.EntryType != models.CashTypeExpense {
		return nil, errors.New("entry type must be Income or Expense")
	}
	if req.Category == "" {
		return nil, errors.New("category is required")
	}
	if req.Amount <= 0 {
		return nil, errors.New("amount must be greater than zero")
	}
	if req.Branch == "" || req.Branch == stock.BranchAll {
		return nil, errors.New("a concrete branch is required")
	}

	return &models.CashEntry{
		EntryDate:   req.EntryDate,
		EntryType:   req.EntryType,
		Category:    req.Category,
		Description: req.Description,
		Amount:      req.Amount,
		Branch:      req.Branch,
	}, nil
}

func (s *CashbookService) Create(ctx context.Context, req *models.SaveCashEntryRequest) (*models.CashEntry, error) {
	entry, err := buildCashEntry(req)
	if err != nil {
		return nil, err
	}
	if err := s.cashRepo.Create(ctx, entry); err != nil {
		return nil, err
	}
	cache.InvalidateCashCaches(ctx)
	return entry, nil
}

func (s *CashbookService) Update(ctx context.Context, id int, req *models.SaveCashEntryRequest) (*models.CashEntry, error) {
	entry, err := buildCashEntry(req)
	if err != nil {
		return nil, err
	}
	entry.ID = id
	if err := s.cashRepo.Update(ctx, entry); err != nil {
		return nil, err
	}
	cache.InvalidateCashCaches(ctx)
	return s.cashRepo.Get(ctx, id)
}

func (s *CashbookService) List(ctx context.Context, branch string) ([]models.CashEntry, error) {
	return s.cashRepo.List(ctx, branch)
}

func (s *CashbookService) Summary(ctx context.Context, branch string) (*models.CashSummary, error) {
	return s.cashRepo.Summary(ctx, branch)
}

func (s *CashbookService) Delete(ctx context.Context, id int) error {
	if err := s.cashRepo.Delete(ctx, id); err != nil {
		return err
	}
	cache.InvalidateCashCaches(ctx)
	return nil
}
