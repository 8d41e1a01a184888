package wizard

import (
	"errors"
	"fmt"
	"time"

	"inkdesk/internal/domain"
)

var (
	ErrLookupMiss       = errors.New("label not found in reference data")
	ErrClientRequired   = errors.New("a client must be selected before saving")
	ErrDateTimeRequired = errors.New("appointment date and time are required")
)

const (
	StartTimeLayout = "15:04"
	DateLayout      = "02-01-2006"
)

type DurationOption struct {
	Label   string `json:"label"`
	Minutes int    `json:"value"`
}

var DurationOptions = []DurationOption{
	{Label: "15 min", Minutes: 15},
	{Label: "30 min", Minutes: 30},
	{Label: "45 min", Minutes: 45},
	{Label: "1 hour", Minutes: 60},
	{Label: "2 hours", Minutes: 120},
	{Label: "3 hours", Minutes: 180},
	{Label: "4 hours", Minutes: 240},
}

// LookupError reports a draft label that has no entry in its reference table.
type LookupError struct {
	Field string `json:"field"`
	Label string `json:"label"`
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Field, e.Label)
}

func (e *LookupError) Is(target error) bool {
	return target == ErrLookupMiss
}

// References are the tables draft labels are resolved against.
type References struct {
	StaffID   int64
	Locations []domain.Location
	Services  []domain.Service
	Projects  []domain.Project
	Durations []DurationOption
}

type Options struct {
	// Strict turns the first lookup miss into an error instead of a zero id.
	Strict   bool
	Location *time.Location
}

// Assembly is a built payload together with the labels that did not resolve.
type Assembly struct {
	Payload domain.AppointmentPayload
	Misses  []*LookupError
}

// BuildPayload converts a draft into the create-appointment body.
func BuildPayload(d domain.AppointmentDraft, refs References, opts Options) (Assembly, error) {
	if d.Client == nil {
		return Assembly{}, ErrClientRequired
	}
	if d.DateTime == nil || d.DateTime.IsZero() {
		return Assembly{}, ErrDateTimeRequired
	}

	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}
	at := d.DateTime.In(loc)

	durations := refs.Durations
	if durations == nil {
		durations = DurationOptions
	}

	var misses []*LookupError
	miss := func(field, label string) {
		misses = append(misses, &LookupError{Field: field, Label: label})
	}

	var projectID int64
	if d.IsPartOfProject {
		if p, ok := findProject(refs.Projects, d.SelectedProjectName); ok {
			projectID = p.ID
		} else {
			miss("project", d.SelectedProjectName)
		}
	}

	var serviceID int64
	if s, ok := findService(refs.Services, d.ServiceName); ok {
		serviceID = s.ID
	} else {
		miss("service", d.ServiceName)
	}

	var locationID int64
	if l, ok := findLocation(refs.Locations, d.LocationName); ok {
		locationID = l.ID
	} else {
		miss("location", d.LocationName)
	}

	var minutes int
	if o, ok := findDuration(durations, d.DurationLabel); ok {
		minutes = o.Minutes
	} else {
		miss("duration", d.DurationLabel)
	}

	if opts.Strict && len(misses) > 0 {
		return Assembly{Misses: misses}, misses[0]
	}

	return Assembly{
		Payload: domain.AppointmentPayload{
			StaffID:    refs.StaffID,
			ProjectID:  projectID,
			ServiceID:  serviceID,
			CustomerID: d.Client.ID,
			LocationID: locationID,
			StartTime:  at.Format(StartTimeLayout),
			Date:       at.Format(DateLayout),
			Duration:   minutes,
			Price:      d.Price,
			Note:       d.Notes,
			Status:     nil,
			PaidBy:     d.PaidBy,
			Deposit:    d.DepositAmount,
		},
		Misses: misses,
	}, nil
}

func findProject(projects []domain.Project, name string) (domain.Project, bool) {
	for _, p := range projects {
		if p.Name == name {
			return p, true
		}
	}
	return domain.Project{}, false
}

func findService(services []domain.Service, name string) (domain.Service, bool) {
	for _, s := range services {
		if s.Name == name {
			return s, true
		}
	}
	return domain.Service{}, false
}

func findLocation(locations []domain.Location, name string) (domain.Location, bool) {
	for _, l := range locations {
		if l.Name == name {
			return l, true
		}
	}
	return domain.Location{}, false
}

func findDuration(options []DurationOption, label string) (DurationOption, bool) {
	for _, o := range options {
		if o.Label == label {
			return o, true
		}
	}
	return DurationOption{}, false
}
