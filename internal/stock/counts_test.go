package stock

import "testing"

func TestParseCount(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"empty is zero", "", 0},
		{"plain number", "42", 42},
		{"zero", "0", 0},
		{"garbage is zero", "abc", 0},
		{"decimal is zero", "3.5", 0},
		{"negative passes through", "-7", -7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseCount(tt.input); got != tt.want {
				t.Errorf("ParseCount(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestPackCountsUnits(t *testing.T) {
	tests := []struct {
		name   string
		counts PackCounts
		want   int
	}{
		{"all zero", PackCounts{}, 0},
		{"trays only", PackCounts{Tray30: 10}, 300},
		{"mixed packs", PackCounts{Tray30: 2, Pack30: 3, Pack10: 4, Pack06: 5}, 220},
		{"loose units count as one", PackCounts{Pack06: 1, Loose: 7}, 13},
		{"negative counts propagate", PackCounts{Pack30: -2}, -60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.counts.Units(); got != tt.want {
				t.Errorf("Units() = %d, want %d", got, tt.want)
			}
		})
	}
}

// Units must stay linear in every denomination: the total is exactly
// 30a + 30b + 10c + 6d for any non-negative a,b,c,d.
func TestUnitsLinearity(t *testing.T) {
	for a := 0; a <= 3; a++ {
		for b := 0; b <= 3; b++ {
			for c := 0; c <= 3; c++ {
				for d := 0; d <= 3; d++ {
					got := PackCounts{Tray30: a, Pack30: b, Pack10: c, Pack06: d}.Units()
					want := 30*a + 30*b + 10*c + 6*d
					if got != want {
						t.Fatalf("Units(%d,%d,%d,%d) = %d, want %d", a, b, c, d, got, want)
					}
				}
			}
		}
	}
}

func TestParsePackCounts(t *testing.T) {
	got := ParsePackCounts("2", "", "x", "5", "3")
	want := PackCounts{Tray30: 2, Pack30: 0, Pack10: 0, Pack06: 5, Loose: 3}
	if got != want {
		t.Errorf("ParsePackCounts = %+v, want %+v", got, want)
	}
}
