package services

import "testing"

func TestValidateRange(t *testing.T) {
	tests := []struct {
		name    string
		from    string
		to      string
		wantErr bool
	}{
		{"both empty", "", "", false},
		{"only from", "2025-01-01", "", false},
		{"only to", "", "2025-06-30", false},
		{"ordered", "2025-01-01", "2025-06-30", false},
		{"same day", "2025-03-15", "2025-03-15", false},
		{"reversed", "2025-06-30", "2025-01-01", true},
		{"bad format", "01-01-2025", "", true},
		{"not a date", "yesterday", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateRange(tt.from, tt.to)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateRange(%q, %q) error = %v, wantErr %v", tt.from, tt.to, err, tt.wantErr)
			}
		})
	}
}

func TestInRange(t *testing.T) {
	tests := []struct {
		date string
		from string
		to   string
		want bool
	}{
		{"2025-03-15", "", "", true},
		{"2025-03-15", "2025-03-15", "2025-03-15", true},
		{"2025-03-14", "2025-03-15", "", false},
		{"2025-03-16", "", "2025-03-15", false},
		{"2025-03-15", "2025-01-01", "2025-12-31", true},
	}

	for _, tt := range tests {
		if got := inRange(tt.date, tt.from, tt.to); got != tt.want {
			t.Errorf("inRange(%q, %q, %q) = %v, want %v", tt.date, tt.from, tt.to, got, tt.want)
		}
	}
}
