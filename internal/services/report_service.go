package services

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"strconv"

	"poultry-backend/internal/models"
	"poultry-backend/internal/repositories"
	"poultry-backend/internal/timeutil"
)

// ReportService renders CSV registers for office record keeping. Dates
// are inclusive YYYY-MM-DD bounds; either side can be empty.
type ReportService struct {
	dispatchRepo   *repositories.DispatchRepository
	cashRepo       *repositories.CashRepository
	productionRepo *repositories.ProductionRepository
	damageRepo     *repositories.DamageRepository
}

func NewReportService(
	dispatchRepo *repositories.DispatchRepository,
	cashRepo *repositories.CashRepository,
	productionRepo *repositories.ProductionRepository,
	damageRepo *repositories.DamageRepository,
) *ReportService {
	return &ReportService{
		dispatchRepo:   dispatchRepo,
		cashRepo:       cashRepo,
		productionRepo: productionRepo,
		damageRepo:     damageRepo,
	}
}

func validateRange(from, to string) error {
	for _, d := range []string{from, to} {
		if d == "" {
			continue
		}
		if _, err := timeutil.ParseInIST(timeutil.DateLayout, d); err != nil {
			return errors.New("dates must be YYYY-MM-DD")
		}
	}
	if from != "" && to != "" && from > to {
		return errors.New("from date is after to date")
	}
	return nil
}

// inRange works on YYYY-MM-DD strings, which order lexicographically.
func inRange(date, from, to string) bool {
	if from != "" && date < from {
		return false
	}
	if to != "" && date > to {
		return false
	}
	return true
}

// DispatchRegisterCSV writes one row per trip with its batch context.
func (s *ReportService) DispatchRegisterCSV(ctx context.Context, w io.Writer, branch, from, to string) error {
	if err := validateRange(from, to); err != nil {
		return err
	}

	batches, err := s.dispatchRepo.ListBatches(ctx, branch)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	header := []string{
		"batch_date", "branch", "trip", "from", "to", "description",
		"ord_pack30", "ord_pack10", "ord_pack06", "ord_loose",
		"rec_pack30", "rec_pack10", "rec_pack06",
		"dispose", "returned_farm", "returned_nrgp",
		"total_order_eggs", "total_received_eggs", "total_short_eggs",
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, b := range batches {
		if !inRange(b.BatchDate, from, to) {
			continue
		}
		for _, t := range b.Trips {
			row := []string{
				b.BatchDate, b.Branch, strconv.Itoa(t.Position),
				t.SourceLocation, t.DestinationLocation, t.Description,
				strconv.Itoa(t.OrdPack30), strconv.Itoa(t.OrdPack10), strconv.Itoa(t.OrdPack06), strconv.Itoa(t.OrdLoose),
				strconv.Itoa(t.RecPack30), strconv.Itoa(t.RecPack10), strconv.Itoa(t.RecPack06),
				strconv.Itoa(t.DisposeEggs), strconv.Itoa(t.ReturnedFarm), strconv.Itoa(t.ReturnedNRGP),
				strconv.Itoa(t.TotalOrderEggs), strconv.Itoa(t.TotalReceivedEggs), strconv.Itoa(t.TotalShortEggs),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

// CashbookCSV writes the cash register plus a trailing summary row.
func (s *ReportService) CashbookCSV(ctx context.Context, w io.Writer, branch, from, to string) error {
	if err := validateRange(from, to); err != nil {
		return err
	}

	entries, err := s.cashRepo.List(ctx, branch)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"entry_date", "branch", "type", "category", "description", "amount"}); err != nil {
		return err
	}

	var income, expense float64
	for _, e := range entries {
		if !inRange(e.EntryDate, from, to) {
			continue
		}
		if e.EntryType == models.CashTypeIncome {
			income += e.Amount
		} else {
			expense += e.Amount
		}
		row := []string{
			e.EntryDate, e.Branch, e.EntryType, e.Category, e.Description,
			strconv.FormatFloat(e.Amount, 'f', 2, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	balanceRow := []string{
		"", "", "", "", "balance",
		strconv.FormatFloat(income-expense, 'f', 2, 64),
	}
	if err := cw.Write(balanceRow); err != nil {
		return err
	}

	cw.Flush()
	return cw.Error()
}

// ProductionRegisterCSV writes the daily output ledger per branch.
func (s *ReportService) ProductionRegisterCSV(ctx context.Context, w io.Writer, branch, from, to string) error {
	if err := validateRange(from, to); err != nil {
		return err
	}

	entries, err := s.productionRepo.List(ctx, branch)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"entry_date", "branch", "location", "tray30", "pack30", "pack10", "pack06", "total_eggs"}); err != nil {
		return err
	}
	for _, e := range entries {
		if !inRange(e.EntryDate, from, to) {
			continue
		}
		row := []string{
			e.EntryDate, e.Branch, e.LocationName,
			strconv.Itoa(e.Tray30), strconv.Itoa(e.Pack30), strconv.Itoa(e.Pack10), strconv.Itoa(e.Pack06),
			strconv.Itoa(e.TotalEggs),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// DamageRegisterCSV writes the damage ledger per branch.
func (s *ReportService) DamageRegisterCSV(ctx context.Context, w io.Writer, branch, from, to string) error {
	if err := validateRange(from, to); err != nil {
		return err
	}

	entries, err := s.damageRepo.List(ctx, branch)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"entry_date", "branch", "location", "damage_location", "damage_type", "tray30", "pack30", "pack10", "pack06", "loose", "total_eggs", "description"}); err != nil {
		return err
	}
	for _, e := range entries {
		if !inRange(e.EntryDate, from, to) {
			continue
		}
		row := []string{
			e.EntryDate, e.Branch, e.LocationName, e.DamageLocation, e.DamageType,
			strconv.Itoa(e.Tray30), strconv.Itoa(e.Pack30), strconv.Itoa(e.Pack10), strconv.Itoa(e.Pack06), strconv.Itoa(e.Loose),
			strconv.Itoa(e.TotalEggs), e.Description,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
