package models

import "time"

// Catalog kinds. Each kind is one configurable dropdown list in the
// settings screens.
const (
	CatalogBranch          = "branch"
	CatalogLocation        = "location"
	CatalogDispatchFrom    = "dispatch_from"
	CatalogDispatchTo      = "dispatch_to"
	CatalogFinanceCategory = "finance_category"
	CatalogDamageType      = "damage_type"
	CatalogDamageLocation  = "damage_location"
	CatalogMaterialItem    = "material_item"
)

// CatalogItem is one named entry in a configurable list. Meta carries
// kind-specific extras (material items keep unit/category/variants).
type CatalogItem struct {
	ID        int       `json:"id"`
	Kind      string    `json:"kind"`
	Name      string    `json:"name"`
	Meta      string    `json:"meta,omitempty"` // JSON blob, kind-specific
	CreatedAt time.Time `json:"created_at"`
}

type SaveCatalogItemRequest struct {
	Name string `json:"name"`
	Meta string `json:"meta,omitempty"`
}

// ValidCatalogKind reports whether kind names a known list.
func ValidCatalogKind(kind string) bool {
	switch kind {
	case CatalogBranch, CatalogLocation, CatalogDispatchFrom, CatalogDispatchTo,
		CatalogFinanceCategory, CatalogDamageType, CatalogDamageLocation, CatalogMaterialItem:
		return true
	}
	return false
}
