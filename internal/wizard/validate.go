package wizard

import (
	"inkdesk/internal/domain"
	"inkdesk/pkg/validator"
)

const (
	MsgRequiredFields = "Please fill out all the required fields."
	MsgSelectClient   = "Please select a client."
	MsgSelectProject  = "Please select a project."
)

// ValidationResult is the outcome of checking one step. Message is empty when Valid.
type ValidationResult struct {
	Step    int    `json:"step"`
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}

func valid(step int) ValidationResult {
	return ValidationResult{Step: step, Valid: true}
}

func invalid(step int, msg string) ValidationResult {
	return ValidationResult{Step: step, Message: msg}
}

// Validate checks the fields the given step requires. It never mutates the draft.
func Validate(step int, d domain.AppointmentDraft) ValidationResult {
	switch stageOf(step, d.IsPartOfProject) {
	case StageDetails:
		if blank(d.LocationName) || blank(d.ArtistName) || blank(d.ServiceName) ||
			blank(d.DurationLabel) || blank(d.Price) || d.DateTime == nil || d.DateTime.IsZero() {
			return invalid(step, MsgRequiredFields)
		}
	case StageClient:
		if d.Client == nil {
			return invalid(step, MsgSelectClient)
		}
	case StageProject:
		if blank(d.SelectedProjectName) {
			return invalid(step, MsgSelectProject)
		}
	}
	return valid(step)
}

func blank(s string) bool {
	return validator.IsBlank(s)
}
