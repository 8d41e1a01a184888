package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"inkdesk/internal/calendar"
	"inkdesk/internal/domain"
)

type MonthQuery struct {
	Anchor  time.Time
	Focused string
	Theme   string
	Refresh bool
}

type CalendarServiceImpl struct {
	upstream  Upstream
	memo      *calendar.Memo
	weekStart time.Weekday
	logger    *zap.Logger
}

func NewCalendarService(up Upstream, memo *calendar.Memo, weekStart time.Weekday, logger *zap.Logger) *CalendarServiceImpl {
	return &CalendarServiceImpl{
		upstream:  up,
		memo:      memo,
		weekStart: weekStart,
		logger:    logger,
	}
}

// Month returns the grid of the month containing q.Anchor with its markers.
// Appointments are fetched again only when the grid's first day moved or a
// refresh is forced.
func (s *CalendarServiceImpl) Month(ctx context.Context, p domain.Principal, q MonthQuery) (*domain.CalendarMonth, error) {
	rng := calendar.Bounds(q.Anchor, s.weekStart)

	appointments, hit := s.memo.Lookup(p.UserID, rng.FirstDay)
	refetched := false
	if !hit || q.Refresh {
		fetched, err := s.upstream.ListAppointments(ctx, p.APIKey, domain.AppointmentFilter{
			From:     rng.FirstDay,
			To:       rng.LastDay,
			StaffIDs: []int64{p.UserID},
		})
		if err != nil {
			return nil, upstreamError(s.logger, "appointments", err)
		}
		s.memo.Store(p.UserID, rng.FirstDay, fetched)
		appointments = fetched
		refetched = true
	}

	palette := calendar.PaletteFor(q.Theme)
	marks := calendar.MarkDates(appointments, palette)
	if q.Focused != "" {
		marks = calendar.Focus(marks, q.Focused, palette)
	}

	if appointments == nil {
		appointments = []domain.CalendarAppointment{}
	}

	return &domain.CalendarMonth{
		Range:        rng,
		Appointments: appointments,
		MarkedDates:  marks,
		Refetched:    refetched,
	}, nil
}
