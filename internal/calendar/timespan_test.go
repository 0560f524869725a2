package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestElapsed(t *testing.T) {
	tests := []struct {
		name  string
		start ClockTime
		end   ClockTime
		want  float64
	}{
		{
			name:  "morning two hours",
			start: ClockTime{Hour: 9, Minute: 0, Period: PeriodAM},
			end:   ClockTime{Hour: 11, Minute: 0, Period: PeriodAM},
			want:  2.0,
		},
		{
			name:  "crosses midnight",
			start: ClockTime{Hour: 11, Minute: 30, Period: PeriodPM},
			end:   ClockTime{Hour: 1, Minute: 0, Period: PeriodAM},
			want:  1.5,
		},
		{
			name:  "noon to afternoon",
			start: ClockTime{Hour: 12, Minute: 0, Period: PeriodPM},
			end:   ClockTime{Hour: 3, Minute: 30, Period: PeriodPM},
			want:  3.5,
		},
		{
			name:  "midnight start",
			start: ClockTime{Hour: 12, Minute: 0, Period: PeriodAM},
			end:   ClockTime{Hour: 6, Minute: 45, Period: PeriodAM},
			want:  6.8,
		},
		{
			name:  "same time is zero",
			start: ClockTime{Hour: 10, Minute: 15, Period: PeriodAM},
			end:   ClockTime{Hour: 10, Minute: 15, Period: PeriodAM},
			want:  0,
		},
		{
			name:  "one decimal rounding",
			start: ClockTime{Hour: 9, Minute: 0, Period: PeriodAM},
			end:   ClockTime{Hour: 9, Minute: 20, Period: PeriodAM},
			want:  0.3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Elapsed(tt.start, tt.end), 1e-9)
		})
	}
}

func TestClockTime_MinutesSinceMidnight(t *testing.T) {
	assert.Equal(t, 0, ClockTime{Hour: 12, Minute: 0, Period: PeriodAM}.MinutesSinceMidnight())
	assert.Equal(t, 12*60, ClockTime{Hour: 12, Minute: 0, Period: PeriodPM}.MinutesSinceMidnight())
	assert.Equal(t, 9*60+30, ClockTime{Hour: 9, Minute: 30, Period: PeriodAM}.MinutesSinceMidnight())
	assert.Equal(t, 23*60+59, ClockTime{Hour: 11, Minute: 59, Period: PeriodPM}.MinutesSinceMidnight())
}

func TestSlotLabel(t *testing.T) {
	start := ClockTime{Hour: 9, Minute: 0, Period: PeriodAM}
	end := ClockTime{Hour: 11, Minute: 0, Period: PeriodAM}
	assert.Equal(t, "09:00～11:00", SlotLabel(start, end))

	late := ClockTime{Hour: 7, Minute: 0, Period: PeriodPM}
	assert.Equal(t, "11:00～19:00", SlotLabel(end, late))
}
