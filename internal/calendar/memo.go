package calendar

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"inkdesk/internal/domain"
)

type memoEntry struct {
	firstDay     string
	appointments []domain.CalendarAppointment
}

// Memo keeps, per user, the first day of the last fetched grid and what was
// fetched for it. A different first day means the range must be fetched again.
type Memo struct {
	slots *lru.Cache[int64, *memoEntry]
}

func NewMemo(users int) (*Memo, error) {
	cache, err := lru.New[int64, *memoEntry](users)
	if err != nil {
		return nil, fmt.Errorf("calendar memo: %w", err)
	}
	return &Memo{slots: cache}, nil
}

// Lookup returns the remembered appointments when firstDay matches the slot.
func (m *Memo) Lookup(userID int64, firstDay string) ([]domain.CalendarAppointment, bool) {
	e, ok := m.slots.Get(userID)
	if !ok || e.firstDay != firstDay {
		return nil, false
	}
	return e.appointments, true
}

// Store replaces the user's slot.
func (m *Memo) Store(userID int64, firstDay string, appointments []domain.CalendarAppointment) {
	m.slots.Add(userID, &memoEntry{firstDay: firstDay, appointments: appointments})
}

func (m *Memo) Forget(userID int64) {
	m.slots.Remove(userID)
}

func (m *Memo) Len() int {
	return m.slots.Len()
}
