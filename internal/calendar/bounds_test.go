package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inkdesk/internal/domain"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := ParseDay(s, time.UTC)
	require.NoError(t, err)
	return d
}

func TestBounds(t *testing.T) {
	tests := []struct {
		name      string
		anchor    string
		weekStart time.Weekday
		want      domain.CalendarRange
	}{
		{"may sunday", "2024-05-17", time.Sunday, domain.CalendarRange{FirstDay: "2024-04-28", LastDay: "2024-06-01"}},
		{"may monday", "2024-05-17", time.Monday, domain.CalendarRange{FirstDay: "2024-04-29", LastDay: "2024-06-02"}},
		{"exact weeks", "2026-02-10", time.Sunday, domain.CalendarRange{FirstDay: "2026-02-01", LastDay: "2026-02-28"}},
		{"year boundary", "2024-12-31", time.Sunday, domain.CalendarRange{FirstDay: "2024-12-01", LastDay: "2025-01-04"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Bounds(day(t, tt.anchor), tt.weekStart))
		})
	}
}

func TestBounds_SameMonthSameRange(t *testing.T) {
	a := Bounds(day(t, "2024-05-01"), time.Sunday)
	b := Bounds(day(t, "2024-05-31"), time.Sunday)
	assert.Equal(t, a, b)
}

func TestBounds_AdjacentMonths(t *testing.T) {
	may := Bounds(day(t, "2024-05-15"), time.Sunday)
	june := Bounds(day(t, "2024-06-15"), time.Sunday)

	assert.NotEqual(t, may.FirstDay, june.FirstDay)
	assert.Less(t, may.FirstDay, june.FirstDay)

	mayEnd := day(t, may.LastDay)
	juneStart := day(t, june.FirstDay)
	overlap := int(mayEnd.Sub(juneStart).Hours()/24) + 1
	assert.LessOrEqual(t, overlap, 13)
	assert.Equal(t, "2024-05-26", june.FirstDay)
}
