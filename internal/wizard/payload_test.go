package wizard

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inkdesk/internal/domain"
)

func payloadDraft() domain.AppointmentDraft {
	at := time.Date(2024, 5, 1, 14, 5, 0, 0, time.UTC)
	return domain.AppointmentDraft{
		LocationName:  "Studio A",
		ArtistName:    "Ana Artist",
		ServiceName:   "Fine Line",
		DurationLabel: "2 hours",
		Price:         "250",
		DateTime:      &at,
		Notes:         "left forearm",
		Client:        &domain.Customer{ID: 11, FullName: "Cara Client"},
		PaidBy:        "Cara Client",
		DepositAmount: "50",
	}
}

func payloadRefs() References {
	return References{
		StaffID:   7,
		Locations: []domain.Location{{ID: 3, Name: "Studio A"}},
		Services:  []domain.Service{{ID: 5, Name: "Fine Line", Color: "#f00"}},
		Projects:  []domain.Project{{ID: 9, Name: "Sleeve"}},
	}
}

func TestBuildPayload_ResolvesLabels(t *testing.T) {
	a, err := BuildPayload(payloadDraft(), payloadRefs(), Options{Strict: true})
	require.NoError(t, err)

	p := a.Payload
	assert.Empty(t, a.Misses)
	assert.Equal(t, int64(7), p.StaffID)
	assert.Equal(t, int64(0), p.ProjectID)
	assert.Equal(t, int64(5), p.ServiceID)
	assert.Equal(t, int64(11), p.CustomerID)
	assert.Equal(t, int64(3), p.LocationID)
	assert.Equal(t, "14:05", p.StartTime)
	assert.Equal(t, "01-05-2024", p.Date)
	assert.Equal(t, 120, p.Duration)
	assert.Equal(t, "250", p.Price)
	assert.Equal(t, "left forearm", p.Note)
	assert.Nil(t, p.Status)
	assert.Equal(t, "Cara Client", p.PaidBy)
	assert.Equal(t, "50", p.Deposit)
}

func TestBuildPayload_ProjectMode(t *testing.T) {
	d := payloadDraft()
	d.IsPartOfProject = true
	d.SelectedProjectName = "Sleeve"

	a, err := BuildPayload(d, payloadRefs(), Options{Strict: true})
	require.NoError(t, err)
	assert.Equal(t, int64(9), a.Payload.ProjectID)
}

func TestBuildPayload_UnknownServiceDefaultsToZero(t *testing.T) {
	d := payloadDraft()
	d.ServiceName = "Color Tattoo"

	a, err := BuildPayload(d, payloadRefs(), Options{})
	require.NoError(t, err)

	assert.Equal(t, int64(0), a.Payload.ServiceID)
	assert.Equal(t, int64(3), a.Payload.LocationID)
	require.Len(t, a.Misses, 1)
	assert.Equal(t, "service", a.Misses[0].Field)
	assert.Equal(t, "Color Tattoo", a.Misses[0].Label)
}

func TestBuildPayload_StrictMiss(t *testing.T) {
	d := payloadDraft()
	d.ServiceName = "Color Tattoo"

	_, err := BuildPayload(d, payloadRefs(), Options{Strict: true})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrLookupMiss))

	var lerr *LookupError
	require.ErrorAs(t, err, &lerr)
	assert.Equal(t, "Color Tattoo", lerr.Label)
}

func TestBuildPayload_StudioTimeZone(t *testing.T) {
	loc := time.FixedZone("CEST", 2*60*60)
	d := payloadDraft()
	at := time.Date(2024, 5, 1, 22, 30, 0, 0, time.UTC)
	d.DateTime = &at

	a, err := BuildPayload(d, payloadRefs(), Options{Location: loc})
	require.NoError(t, err)
	assert.Equal(t, "00:30", a.Payload.StartTime)
	assert.Equal(t, "02-05-2024", a.Payload.Date)
}

func TestBuildPayload_RequiresClient(t *testing.T) {
	d := payloadDraft()
	d.Client = nil

	_, err := BuildPayload(d, payloadRefs(), Options{})
	assert.ErrorIs(t, err, ErrClientRequired)
}

func TestConsentPayload(t *testing.T) {
	w := filledWizard(t)
	w.Draft.IsPartOfProject = true
	w.Draft.Client = &domain.Customer{ID: 11}
	w.Draft.SelectedProjectName = "Sleeve"
	w.Projects = []domain.Project{{ID: 9, Name: "Sleeve"}}

	p, err := ConsentPayload(w, "data:image/png;base64,AAAA")
	require.NoError(t, err)
	assert.Equal(t, domain.ConsentDocumentPayload{
		ConsentFormID: 1,
		CustomerID:    11,
		ProjectID:     9,
		Signature:     "data:image/png;base64,AAAA",
	}, p)

	w.MarkSigned("Sleeve")
	assert.True(t, w.Projects[0].Signed)
}

func TestConsentPayload_Preconditions(t *testing.T) {
	w := filledWizard(t)
	_, err := ConsentPayload(w, "sig")
	assert.ErrorIs(t, err, ErrNotProjectMode)

	w.Draft.IsPartOfProject = true
	_, err = ConsentPayload(w, "sig")
	assert.ErrorIs(t, err, ErrClientRequired)

	w.Draft.Client = &domain.Customer{ID: 11}
	_, err = ConsentPayload(w, "")
	assert.ErrorIs(t, err, ErrSignatureRequired)

	w.Draft.SelectedProjectName = "Missing"
	_, err = ConsentPayload(w, "sig")
	assert.ErrorIs(t, err, ErrLookupMiss)
}
