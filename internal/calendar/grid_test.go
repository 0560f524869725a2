package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrid(t *testing.T) {
	tests := []struct {
		name       string
		year       int
		month      time.Month
		wantBlanks int
		wantDays   int
		firstKey   string
		lastKey    string
	}{
		{
			name:       "june 2025 starts on sunday",
			year:       2025,
			month:      time.June,
			wantBlanks: 0,
			wantDays:   30,
			firstKey:   "2025-06-01",
			lastKey:    "2025-06-30",
		},
		{
			name:       "september 2025 starts on monday",
			year:       2025,
			month:      time.September,
			wantBlanks: 1,
			wantDays:   30,
			firstKey:   "2025-09-01",
			lastKey:    "2025-09-30",
		},
		{
			name:       "february 2024 leap year",
			year:       2024,
			month:      time.February,
			wantBlanks: 4,
			wantDays:   29,
			firstKey:   "2024-02-01",
			lastKey:    "2024-02-29",
		},
		{
			name:       "february 2025 non-leap",
			year:       2025,
			month:      time.February,
			wantBlanks: 6,
			wantDays:   28,
			firstKey:   "2025-02-01",
			lastKey:    "2025-02-28",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cells := Grid(tt.year, tt.month)
			require.Len(t, cells, tt.wantBlanks+tt.wantDays)

			blanks := 0
			for _, c := range cells {
				if c.Blank {
					blanks++
					assert.Empty(t, c.DateKey)
					assert.Zero(t, c.Day)
				}
			}
			assert.Equal(t, tt.wantBlanks, blanks)

			// Blanks come first, then the days in order.
			for i := 0; i < tt.wantBlanks; i++ {
				assert.True(t, cells[i].Blank)
			}
			assert.Equal(t, tt.firstKey, cells[tt.wantBlanks].DateKey)
			assert.Equal(t, 1, cells[tt.wantBlanks].Day)
			assert.Equal(t, tt.lastKey, cells[len(cells)-1].DateKey)
			assert.Equal(t, tt.wantDays, cells[len(cells)-1].Day)
		})
	}
}

func TestGrid_CellCountProperty(t *testing.T) {
	// W blanks + D days for every month over a few years.
	for year := 2023; year <= 2026; year++ {
		for month := time.January; month <= time.December; month++ {
			cells := Grid(year, month)
			w := int(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday())
			d := DaysIn(year, month)
			require.Len(t, cells, w+d, "%d-%d", year, month)
		}
	}
}

func TestDateKey(t *testing.T) {
	assert.Equal(t, "2025-06-01", DateKey(2025, time.June, 1))
	assert.Equal(t, "2025-11-30", DateKey(2025, time.November, 30))
	assert.Equal(t, "0999-01-05", DateKey(999, time.January, 5))
}

func TestMonthKey(t *testing.T) {
	assert.Equal(t, "2025-06", MonthKey(2025, time.June))
	assert.Equal(t, "2025-12", MonthKey(2025, time.December))
}
