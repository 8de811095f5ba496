package models

import "time"

const (
	MaterialAsset      = "Asset"
	MaterialConsumable = "Consumable"
)

type MaterialEntry struct {
	ID           int       `json:"id"`
	EntryDate    string    `json:"entry_date"` // YYYY-MM-DD
	ItemName     string    `json:"item_name"`
	BaseItemName string    `json:"base_item_name"`
	Variant      string    `json:"variant"`
	Category     string    `json:"category"` // Asset or Consumable
	Quantity     float64   `json:"quantity"`
	Unit         string    `json:"unit"`
	Branch       string    `json:"branch"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type SaveMaterialEntryRequest struct {
	EntryDate    string  `json:"entry_date"`
	ItemName     string  `json:"item_name"`
	BaseItemName string  `json:"base_item_name"`
	Variant      string  `json:"variant"`
	Category     string  `json:"category"`
	Quantity     float64 `json:"quantity"`
	Unit         string  `json:"unit"`
	Branch       string  `json:"branch"`
}
