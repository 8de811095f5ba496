package stock

import "math"

// BranchAll is the query-time sentinel meaning "every branch".
// Records are never stored against it.
const BranchAll = "All"

// Record is the slice of an entity the aggregator cares about: its
// branch tag and its stored derived egg total. The stored total is
// trusted, not recomputed from pack counts.
type Record struct {
	Branch    string
	TotalEggs int
}

// Summary is the derived stock position for one branch (or all).
type Summary struct {
	TotalProduced   int `json:"total_produced"`
	TotalDispatched int `json:"total_dispatched"`
	TotalDamaged    int `json:"total_damaged"`
}

// CurrentStock is produced minus dispatched and damaged. Stays signed
// so alerting sees true negatives; only DisplayStock clamps.
func (s Summary) CurrentStock() int {
	return s.TotalProduced - (s.TotalDispatched + s.TotalDamaged)
}

// DisplayStock floors the stock at zero for presentation.
func (s Summary) DisplayStock() int {
	if stock := s.CurrentStock(); stock > 0 {
		return stock
	}
	return 0
}

// TrayEquivalent is the stock in trays of 30, one decimal.
func (s Summary) TrayEquivalent() float64 {
	return math.Round(float64(s.CurrentStock())/TrayOf30*10) / 10
}

// SumRecords adds the stored egg totals of records matching branch.
// BranchAll matches everything.
func SumRecords(records []Record, branch string) int {
	total := 0
	for _, r := range records {
		if branch != BranchAll && r.Branch != branch {
			continue
		}
		total += r.TotalEggs
	}
	return total
}

// Aggregate derives a branch's stock position from the three record
// sets. Each leg is independent; callers that fail to fetch a leg pass
// an empty slice so one unreachable source degrades the number instead
// of blocking it.
func Aggregate(produced, dispatched, damaged []Record, branch string) Summary {
	return Summary{
		TotalProduced:   SumRecords(produced, branch),
		TotalDispatched: SumRecords(dispatched, branch),
		TotalDamaged:    SumRecords(damaged, branch),
	}
}
