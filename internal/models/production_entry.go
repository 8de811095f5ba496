package models

import "time"

type ProductionEntry struct {
	ID           int       `json:"id"`
	EntryDate    string    `json:"entry_date"` // YYYY-MM-DD
	LocationName string    `json:"location_name"`
	Branch       string    `json:"branch"`
	Tray30       int       `json:"tray30"`
	Pack30       int       `json:"pack30"`
	Pack10       int       `json:"pack10"`
	Pack06       int       `json:"pack06"`
	TotalEggs    int       `json:"total_eggs"` // derived at write time
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// SaveProductionEntryRequest carries form input. Counts arrive as
// strings because the entry forms allow blanks; blanks count as zero.
type SaveProductionEntryRequest struct {
	EntryDate    string `json:"entry_date"`
	LocationName string `json:"location_name"`
	Branch       string `json:"branch"`
	Tray30       string `json:"tray30"`
	Pack30       string `json:"pack30"`
	Pack10       string `json:"pack10"`
	Pack06       string `json:"pack06"`
}
