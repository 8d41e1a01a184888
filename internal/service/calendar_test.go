package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inkdesk/internal/calendar"
	"inkdesk/internal/domain"
)

func newCalendarFixture(t *testing.T) (*CalendarServiceImpl, *fakeUpstream, *calendar.Memo) {
	t.Helper()
	memo, err := calendar.NewMemo(16)
	require.NoError(t, err)
	up := newFakeUpstream()
	up.appointments = []domain.CalendarAppointment{
		{ID: 1, Date: "2024-05-01", Service: domain.AppointmentService{Name: "Massage", Color: "blue"}},
		{ID: 2, Date: "2024-05-01", Service: domain.AppointmentService{Name: "Massage", Color: "blue"}},
	}
	return NewCalendarService(up, memo, time.Sunday, nopLogger()), up, memo
}

func TestCalendarService_FetchesGridRange(t *testing.T) {
	svc, up, _ := newCalendarFixture(t)

	month, err := svc.Month(context.Background(), testPrincipal, MonthQuery{
		Anchor: time.Date(2024, 5, 17, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.True(t, month.Refetched)
	assert.Equal(t, "2024-04-28", up.lastFilter.From)
	assert.Equal(t, "2024-06-01", up.lastFilter.To)
	assert.Equal(t, []int64{7}, up.lastFilter.StaffIDs)
	assert.Len(t, month.MarkedDates["2024-05-01"].Dots, 2)
	assert.Equal(t, calendar.Light.Primary, month.MarkedDates["2024-05-01"].SelectedColor)
}

func TestCalendarService_SameGridServedFromMemo(t *testing.T) {
	svc, up, memo := newCalendarFixture(t)
	ctx := context.Background()

	_, err := svc.Month(ctx, testPrincipal, MonthQuery{Anchor: time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)})
	require.NoError(t, err)
	month, err := svc.Month(ctx, testPrincipal, MonthQuery{Anchor: time.Date(2024, 5, 30, 0, 0, 0, 0, time.UTC)})
	require.NoError(t, err)

	assert.False(t, month.Refetched)
	assert.Equal(t, 1, up.count("appointments"))
	assert.Len(t, month.Appointments, 2)

	_, err = svc.Month(ctx, testPrincipal, MonthQuery{Anchor: time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC)})
	require.NoError(t, err)
	assert.Equal(t, 2, up.count("appointments"))

	_, err = svc.Month(ctx, testPrincipal, MonthQuery{Anchor: time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC), Refresh: true})
	require.NoError(t, err)
	assert.Equal(t, 3, up.count("appointments"))

	memo.Forget(testPrincipal.UserID)
	_, err = svc.Month(ctx, testPrincipal, MonthQuery{Anchor: time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC)})
	require.NoError(t, err)
	assert.Equal(t, 4, up.count("appointments"))
}

func TestCalendarService_FocusAndTheme(t *testing.T) {
	svc, _, _ := newCalendarFixture(t)

	month, err := svc.Month(context.Background(), testPrincipal, MonthQuery{
		Anchor:  time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		Focused: "2024-05-01",
		Theme:   "dark",
	})
	require.NoError(t, err)

	day := month.MarkedDates["2024-05-01"]
	assert.Equal(t, calendar.Dark.Accent, day.SelectedColor)
	assert.Len(t, day.Dots, 2)
}
