package models

import "time"

const (
	CashTypeIncome  = "Income"
	CashTypeExpense = "Expense"
)

type CashEntry struct {
	ID          int       `json:"id"`
	EntryDate   string    `json:"entry_date"` // YYYY-MM-DD
	EntryType   string    `json:"entry_type"` // Income or Expense
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Branch      string    `json:"branch"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type SaveCashEntryRequest struct {
	EntryDate   string  `json:"entry_date"`
	EntryType   string  `json:"entry_type"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Branch      string  `json:"branch"`
}

// CashSummary totals one branch's cashbook.
type CashSummary struct {
	TotalIncome  float64 `json:"total_income"`
	TotalExpense float64 `json:"total_expense"`
	Balance      float64 `json:"balance"`
}
