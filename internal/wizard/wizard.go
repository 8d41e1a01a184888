package wizard

import (
	"errors"
	"fmt"
	"time"

	"inkdesk/internal/domain"
)

var (
	ErrStepOutOfRange = errors.New("step out of range")
	ErrUnknownClient  = errors.New("client is not in the loaded customer list")
)

type Stage string

const (
	StageDetails Stage = "details"
	StageClient  Stage = "client"
	StageProject Stage = "project"
	StagePayment Stage = "payment"
)

func stageOf(step int, partOfProject bool) Stage {
	switch {
	case step <= 1:
		return StageDetails
	case step == 2:
		return StageClient
	case step == 3 && partOfProject:
		return StageProject
	default:
		return StagePayment
	}
}

type EffectKind string

const (
	EffectFetchCustomers EffectKind = "fetch_customers"
	EffectFetchProjects  EffectKind = "fetch_projects"
)

// Effect is work the caller has to run after a step change. Its result must be
// applied with the Generation it was issued for.
type Effect struct {
	Kind       EffectKind `json:"kind"`
	CustomerID int64      `json:"customer_id,omitempty"`
	Generation uint64     `json:"generation"`
}

type Transition struct {
	Step       int              `json:"step"`
	Submit     bool             `json:"submit"`
	Validation ValidationResult `json:"validation"`
	Effects    []Effect         `json:"effects,omitempty"`
}

// Wizard is the appointment form: the draft, the current step and what was
// loaded for it so far.
type Wizard struct {
	ID         string                  `json:"id"`
	UserID     int64                   `json:"user_id"`
	Draft      domain.AppointmentDraft `json:"draft"`
	Step       int                     `json:"step"`
	Validation ValidationResult        `json:"validation"`
	Customers  []domain.Customer       `json:"customers"`
	Projects   []domain.Project        `json:"projects"`
	Generation uint64                  `json:"generation"`
	CreatedAt  time.Time               `json:"created_at"`
	UpdatedAt  time.Time               `json:"updated_at"`
}

// New returns a wizard on step 1 with the default location and the staff member pre-filled.
func New(profile *domain.UserProfile, locations []domain.Location) *Wizard {
	w := &Wizard{Step: 1}
	w.Validation = valid(1)
	for _, l := range locations {
		if l.DefaultForAuthUser {
			w.Draft.LocationName = l.Name
			break
		}
	}
	if profile != nil {
		w.Draft.ArtistName = profile.FullName
	}
	return w
}

func (w *Wizard) Ceiling() int {
	if w.Draft.IsPartOfProject {
		return 4
	}
	return 3
}

func (w *Wizard) IsFinalStep() bool {
	return w.Step == w.Ceiling()
}

func (w *Wizard) Stage() Stage {
	return stageOf(w.Step, w.Draft.IsPartOfProject)
}

func (w *Wizard) Steps() []int {
	steps := make([]int, w.Ceiling())
	for i := range steps {
		steps[i] = i + 1
	}
	return steps
}

// Next validates the current step. A valid final step asks for submission
// instead of advancing.
func (w *Wizard) Next() Transition {
	res := Validate(w.Step, w.Draft)
	w.Validation = res
	if !res.Valid {
		return Transition{Step: w.Step, Validation: res}
	}
	if w.IsFinalStep() {
		return Transition{Step: w.Step, Submit: true, Validation: res}
	}
	effects := w.moveTo(min(w.Step+1, w.Ceiling()))
	return Transition{Step: w.Step, Validation: res, Effects: effects}
}

func (w *Wizard) Back() Transition {
	effects := w.moveTo(max(w.Step-1, 1))
	w.Validation = valid(w.Step)
	return Transition{Step: w.Step, Validation: w.Validation, Effects: effects}
}

// JumpTo moves to any step of the current ceiling without validation.
func (w *Wizard) JumpTo(step int) (Transition, error) {
	if step < 1 || step > w.Ceiling() {
		return Transition{}, fmt.Errorf("%w: %d not in 1..%d", ErrStepOutOfRange, step, w.Ceiling())
	}
	effects := w.moveTo(step)
	w.Validation = valid(w.Step)
	return Transition{Step: w.Step, Validation: w.Validation, Effects: effects}, nil
}

// SetPartOfProject toggles project mode. The step is clamped to the new ceiling
// and re-entered when its meaning changed.
func (w *Wizard) SetPartOfProject(on bool) []Effect {
	if w.Draft.IsPartOfProject == on {
		return nil
	}
	before := w.Stage()
	w.Draft.IsPartOfProject = on
	if w.Step > w.Ceiling() {
		return w.moveTo(w.Ceiling())
	}
	if w.Stage() != before {
		w.Generation++
		return w.enter()
	}
	return nil
}

// SelectClient picks a client out of the loaded customer list. Projects of the
// previous client are dropped and fetches still running for them go stale.
func (w *Wizard) SelectClient(customerID int64) error {
	if w.Draft.Client != nil && w.Draft.Client.ID == customerID {
		return nil
	}
	for i := range w.Customers {
		if w.Customers[i].ID == customerID {
			c := w.Customers[i]
			w.Draft.Client = &c
			w.Projects = nil
			w.Draft.SelectedProjectName = ""
			w.Generation++
			return nil
		}
	}
	return fmt.Errorf("%w: %d", ErrUnknownClient, customerID)
}

// Apply copies the changed fields of a patch onto the draft.
func (w *Wizard) Apply(p domain.DraftPatch) ([]Effect, error) {
	clientChanged := false
	if p.ClientID != nil {
		gen := w.Generation
		if err := w.SelectClient(*p.ClientID); err != nil {
			return nil, err
		}
		clientChanged = w.Generation != gen
	}
	setString(&w.Draft.LocationName, p.LocationName)
	setString(&w.Draft.ArtistName, p.ArtistName)
	setString(&w.Draft.ServiceName, p.ServiceName)
	setString(&w.Draft.DurationLabel, p.DurationLabel)
	setString(&w.Draft.Price, p.Price)
	setString(&w.Draft.Notes, p.Notes)
	setString(&w.Draft.SelectedProjectName, p.SelectedProjectName)
	setString(&w.Draft.PaidBy, p.PaidBy)
	setString(&w.Draft.DepositAmount, p.DepositAmount)
	if p.DateTime != nil {
		dt := *p.DateTime
		w.Draft.DateTime = &dt
	}

	var effects []Effect
	if p.IsPartOfProject != nil {
		effects = w.SetPartOfProject(*p.IsPartOfProject)
	}
	// The project step lists the projects of the selected client.
	if clientChanged && len(effects) == 0 && w.Stage() == StageProject {
		effects = w.enter()
	}
	return effects, nil
}

// ApplyCustomers stores a customer fetch result unless a newer step change happened.
func (w *Wizard) ApplyCustomers(gen uint64, customers []domain.Customer) bool {
	if gen != w.Generation {
		return false
	}
	w.Customers = customers
	return true
}

// ApplyProjects stores a project fetch result unless a newer step change happened.
func (w *Wizard) ApplyProjects(gen uint64, projects []domain.Project) bool {
	if gen != w.Generation {
		return false
	}
	w.Projects = projects
	return true
}

// MarkSigned flags the named project of the current client as signed.
func (w *Wizard) MarkSigned(projectName string) {
	for i := range w.Projects {
		if w.Projects[i].Name == projectName {
			w.Projects[i].Signed = true
		}
	}
}

func (w *Wizard) moveTo(step int) []Effect {
	if step == w.Step {
		return nil
	}
	w.Step = step
	w.Generation++
	return w.enter()
}

func (w *Wizard) enter() []Effect {
	switch w.Stage() {
	case StageClient:
		return []Effect{{Kind: EffectFetchCustomers, Generation: w.Generation}}
	case StageProject:
		if w.Draft.Client == nil {
			return nil
		}
		return []Effect{{Kind: EffectFetchProjects, CustomerID: w.Draft.Client.ID, Generation: w.Generation}}
	case StagePayment:
		if blank(w.Draft.PaidBy) && w.Draft.Client != nil {
			w.Draft.PaidBy = w.Draft.Client.FullName
		}
	}
	return nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
