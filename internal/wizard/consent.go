package wizard

import (
	"errors"

	"inkdesk/internal/domain"
)

const ConsentFormID = 1

var (
	ErrNotProjectMode    = errors.New("consent forms are only available for project appointments")
	ErrSignatureRequired = errors.New("signature is empty")
)

// ConsentPayload builds the save-document body for the selected client and project.
func ConsentPayload(w *Wizard, signature string) (domain.ConsentDocumentPayload, error) {
	if !w.Draft.IsPartOfProject {
		return domain.ConsentDocumentPayload{}, ErrNotProjectMode
	}
	if w.Draft.Client == nil {
		return domain.ConsentDocumentPayload{}, ErrClientRequired
	}
	if blank(signature) {
		return domain.ConsentDocumentPayload{}, ErrSignatureRequired
	}
	p, ok := findProject(w.Projects, w.Draft.SelectedProjectName)
	if !ok {
		return domain.ConsentDocumentPayload{}, &LookupError{Field: "project", Label: w.Draft.SelectedProjectName}
	}
	return domain.ConsentDocumentPayload{
		ConsentFormID: ConsentFormID,
		CustomerID:    w.Draft.Client.ID,
		ProjectID:     p.ID,
		Signature:     signature,
	}, nil
}
