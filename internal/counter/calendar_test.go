package counter

import "testing"

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month int
		want  int
	}{
		{"january", 2023, 1, 31},
		{"april", 2023, 4, 30},
		{"december", 2023, 12, 31},
		{"february 2000", 2000, 2, 29},
		{"february 1900", 1900, 2, 28},
		{"february 2024", 2024, 2, 29},
		{"february 2023", 2023, 2, 28},
		{"month zero", 2023, 0, 30},
		{"month thirteen", 2023, 13, 30},
		{"negative month", 2023, -1, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysInMonth(tt.year, tt.month); got != tt.want {
				t.Fatalf("DaysInMonth(%d, %d) = %d, want %d", tt.year, tt.month, got, tt.want)
			}
		})
	}
}

func TestIsLeapYear(t *testing.T) {
	for year, want := range map[int]bool{
		1600: true,
		1700: false,
		2000: true,
		2023: false,
		2024: true,
		2100: false,
	} {
		if got := IsLeapYear(year); got != want {
			t.Fatalf("IsLeapYear(%d) = %v, want %v", year, got, want)
		}
	}
}
