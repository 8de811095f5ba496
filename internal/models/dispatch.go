package models

import "time"

// DispatchBatch is one calendar day's dispatch register for a branch.
// Grand totals are derived from the trips at write time and stored
// redundantly; list and dashboard readers trust the stored values.
type DispatchBatch struct {
	ID              int       `json:"id"`
	BatchDate       string    `json:"batch_date"` // YYYY-MM-DD
	Branch          string    `json:"branch"`
	GrandTotalOrder int       `json:"grand_total_order"`
	GrandTotalShort int       `json:"grand_total_short"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
	Trips           []Trip    `json:"trips"`
}

// Trip is one source-to-destination delivery leg within a batch.
// The ordered side carries a loose damage-in-transit allowance that has
// no received counterpart, so shortage is computed per denomination.
type Trip struct {
	ID                  int    `json:"id"`
	BatchID             int    `json:"batch_id"`
	Position            int    `json:"position"`
	SourceLocation      string `json:"source_location"`
	DestinationLocation string `json:"destination_location"`
	Description         string `json:"description"`
	OrdPack30           int    `json:"ord_pack30"`
	OrdPack10           int    `json:"ord_pack10"`
	OrdPack06           int    `json:"ord_pack06"`
	OrdLoose            int    `json:"ord_loose"`
	RecPack30           int    `json:"rec_pack30"`
	RecPack10           int    `json:"rec_pack10"`
	RecPack06           int    `json:"rec_pack06"`
	DisposeEggs         int    `json:"dispose_eggs"`
	ReturnedFarm        int    `json:"returned_farm"`
	ReturnedNRGP        int    `json:"returned_nrgp"`
	TotalOrderEggs      int    `json:"total_order_eggs"`
	TotalReceivedEggs   int    `json:"total_received_eggs"`
	ShortPack30         int    `json:"short_pack30"`
	ShortPack10         int    `json:"short_pack10"`
	ShortPack06         int    `json:"short_pack06"`
	TotalShortEggs      int    `json:"total_short_eggs"`
}

// IsPerfect reports whether the trip arrived with no shortage in any
// denomination. Surpluses (negative shortages) still count as perfect.
func (t *Trip) IsPerfect() bool {
	return t.ShortPack30 <= 0 && t.ShortPack10 <= 0 && t.ShortPack06 <= 0
}

// TripInput is one trip row as submitted by the dispatch form.
// ID is zero for new trips and set when re-editing a saved batch.
type TripInput struct {
	ID                  int    `json:"id,omitempty"`
	SourceLocation      string `json:"source_location"`
	DestinationLocation string `json:"destination_location"`
	Description         string `json:"description"`
	OrdPack30           string `json:"ord_pack30"`
	OrdPack10           string `json:"ord_pack10"`
	OrdPack06           string `json:"ord_pack06"`
	OrdLoose            string `json:"ord_loose"`
	RecPack30           string `json:"rec_pack30"`
	RecPack10           string `json:"rec_pack10"`
	RecPack06           string `json:"rec_pack06"`
	DisposeEggs         string `json:"dispose_eggs"`
	ReturnedFarm        string `json:"returned_farm"`
	ReturnedNRGP        string `json:"returned_nrgp"`
}

type SaveDispatchBatchRequest struct {
	BatchDate string      `json:"batch_date"`
	Branch    string      `json:"branch"`
	Trips     []TripInput `json:"trips"`
}
