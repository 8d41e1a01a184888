package domain

type AppointmentService struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// CalendarAppointment is one row of GET /appointments.
type CalendarAppointment struct {
	ID        int64              `json:"id"`
	Date      string             `json:"date"`
	StartTime string             `json:"start_time"`
	Duration  int                `json:"duration"`
	Service   AppointmentService `json:"service"`
}

type AppointmentFilter struct {
	From       string
	To         string
	StaffIDs   []int64
	Duration   string
	Status     string
	CustomerID string
	ServiceID  string
	LocationID string
}

// CalendarRange is the first and last day shown in a month grid, as YYYY-MM-DD.
type CalendarRange struct {
	FirstDay string `json:"first_day"`
	LastDay  string `json:"last_day"`
}

type Dot struct {
	Key   string `json:"key"`
	Color string `json:"color"`
}

type DayMarking struct {
	Dots          []Dot  `json:"dots,omitempty"`
	Selected      bool   `json:"selected"`
	SelectedColor string `json:"selectedColor"`
}

type MarkedDates map[string]DayMarking

type CalendarMonth struct {
	Range        CalendarRange         `json:"range"`
	Appointments []CalendarAppointment `json:"appointments"`
	MarkedDates  MarkedDates           `json:"marked_dates"`
	Refetched    bool                  `json:"refetched"`
}
