package models

import "time"

type DamageEntry struct {
	ID             int       `json:"id"`
	EntryDate      string    `json:"entry_date"` // YYYY-MM-DD
	LocationName   string    `json:"location_name"`
	DamageType     string    `json:"damage_type"`
	DamageLocation string    `json:"damage_location"`
	Description    string    `json:"description"`
	Branch         string    `json:"branch"`
	Tray30         int       `json:"tray30"`
	Pack30         int       `json:"pack30"`
	Pack10         int       `json:"pack10"`
	Pack06         int       `json:"pack06"`
	Loose          int       `json:"loose"`
	TotalEggs      int       `json:"total_eggs"` // derived at write time
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type SaveDamageEntryRequest struct {
	EntryDate      string `json:"entry_date"`
	LocationName   string `json:"location_name"`
	DamageType     string `json:"damage_type"`
	DamageLocation string `json:"damage_location"`
	Description    string `json:"description"`
	Branch         string `json:"branch"`
	Tray30         string `json:"tray30"`
	Pack30         string `json:"pack30"`
	Pack10         string `json:"pack10"`
	Pack06         string `json:"pack06"`
	Loose          string `json:"loose"`
}
