package stock

import "testing"

func TestSumRecordsBranchFilter(t *testing.T) {
	records := []Record{
		{Branch: "Delhi", TotalEggs: 100},
		{Branch: "Lucknow", TotalEggs: 50},
		{Branch: "Delhi", TotalEggs: 25},
	}

	if got := SumRecords(records, "Delhi"); got != 125 {
		t.Errorf("Delhi sum = %d, want 125", got)
	}
	if got := SumRecords(records, "Lucknow"); got != 50 {
		t.Errorf("Lucknow sum = %d, want 50", got)
	}
	if got := SumRecords(records, BranchAll); got != 175 {
		t.Errorf("All sum = %d, want 175", got)
	}
	if got := SumRecords(records, "Mumbai"); got != 0 {
		t.Errorf("unknown branch sum = %d, want 0", got)
	}
}

// Splitting a record set into arbitrary halves and summing the halves
// must equal summing the whole set.
func TestSumRecordsPartitionAssociativity(t *testing.T) {
	records := []Record{
		{Branch: "Delhi", TotalEggs: 300},
		{Branch: "Delhi", TotalEggs: 210},
		{Branch: "Delhi", TotalEggs: 90},
		{Branch: "Delhi", TotalEggs: 1200},
		{Branch: "Delhi", TotalEggs: 30},
	}

	whole := SumRecords(records, "Delhi")
	for split := 0; split <= len(records); split++ {
		left := SumRecords(records[:split], "Delhi")
		right := SumRecords(records[split:], "Delhi")
		if left+right != whole {
			t.Errorf("split at %d: %d + %d != %d", split, left, right, whole)
		}
	}
}

func TestNegativeStockPassthrough(t *testing.T) {
	s := Summary{TotalProduced: 1000, TotalDispatched: 1200, TotalDamaged: 0}

	if got := s.CurrentStock(); got != -200 {
		t.Errorf("CurrentStock() = %d, want -200", got)
	}
	if got := s.DisplayStock(); got != 0 {
		t.Errorf("DisplayStock() = %d, want 0", got)
	}
}

func TestAggregateDelhiScenario(t *testing.T) {
	produced := []Record{
		{Branch: "Delhi", TotalEggs: 60000},
		{Branch: "Delhi", TotalEggs: 40000},
		{Branch: "Lucknow", TotalEggs: 9999},
	}
	dispatched := []Record{
		{Branch: "Delhi", TotalEggs: 72000},
	}
	damaged := []Record{
		{Branch: "Delhi", TotalEggs: 3000},
		{Branch: "Lucknow", TotalEggs: 500},
	}

	s := Aggregate(produced, dispatched, damaged, "Delhi")

	if got := s.CurrentStock(); got != 25000 {
		t.Fatalf("CurrentStock() = %d, want 25000", got)
	}
	if got := s.TrayEquivalent(); got != 833.3 {
		t.Errorf("TrayEquivalent() = %v, want 833.3", got)
	}
}

func TestAggregateMissingSourceContributesZero(t *testing.T) {
	produced := []Record{{Branch: "Delhi", TotalEggs: 5000}}

	// An unreachable source arrives as an empty slice
	s := Aggregate(produced, nil, nil, "Delhi")

	if got := s.CurrentStock(); got != 5000 {
		t.Errorf("CurrentStock() = %d, want 5000", got)
	}
}
