package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inkdesk/internal/domain"
	"inkdesk/internal/wizard"
)

var testRefs = domain.ReferenceSettings{
	Languages:  []domain.Language{{ID: 1, Name: "English"}},
	Currencies: []domain.Currency{{ID: 2, Name: "EUR"}},
}

func TestOrganisationPayload(t *testing.T) {
	p, err := OrganisationPayload(domain.OrganisationSettings{
		BusinessName:       "Black Ink Studio",
		Language:           "English",
		Currency:           "EUR",
		Timezone:           "Europe/Berlin",
		CancellationPolicy: "Two days",
		AutoDelete:         "Previous week",
	}, testRefs)
	require.NoError(t, err)

	assert.Equal(t, domain.UpdateOrganisationPayload{
		AutodeletePeriodDays:   7,
		CancellationBufferDays: 2,
		CurrencyID:             2,
		LanguageID:             1,
		Name:                   "Black Ink Studio",
		Slug:                   "black-ink-studio",
		Timezone:               "Europe/Berlin",
	}, p)
}

func TestOrganisationPayload_UnknownLabels(t *testing.T) {
	p, err := OrganisationPayload(domain.OrganisationSettings{
		BusinessName:       "Ink",
		Language:           "English",
		Currency:           "EUR",
		CancellationPolicy: "Someday",
		AutoDelete:         "Never ever",
	}, testRefs)
	require.NoError(t, err)
	assert.Equal(t, 0, p.CancellationBufferDays)
	assert.Equal(t, 99999, p.AutodeletePeriodDays)
}

func TestOrganisationPayload_UnknownCurrency(t *testing.T) {
	_, err := OrganisationPayload(domain.OrganisationSettings{Language: "English", Currency: "XYZ"}, testRefs)
	assert.ErrorIs(t, err, wizard.ErrLookupMiss)
}

func TestSettingsForm(t *testing.T) {
	form := SettingsForm(domain.Organisation{
		Name: "Black Ink", LanguageID: 1, CurrencyID: 2, Timezone: "UTC",
		CancellationBufferDays: 3, AutodeletePeriodDays: 30,
	}, testRefs)
	assert.Equal(t, "Tree days", form.CancellationPolicy)
	assert.Equal(t, "Previous month", form.AutoDelete)
	assert.Equal(t, "English", form.Language)
	assert.Equal(t, "EUR", form.Currency)

	form = SettingsForm(domain.Organisation{CancellationBufferDays: 17, AutodeletePeriodDays: 2}, testRefs)
	assert.Equal(t, "Anytime", form.CancellationPolicy)
	assert.Equal(t, "Newer", form.AutoDelete)
}

func TestSettingsService_Update(t *testing.T) {
	up := newFakeUpstream()
	svc := NewSettingsService(up, nopLogger())

	current, err := svc.Current(context.Background(), testPrincipal)
	require.NoError(t, err)
	assert.Equal(t, "Two days", current.CancellationPolicy)
	assert.Equal(t, "Previous week", current.AutoDelete)

	current.BusinessName = "Black Ink Studio"
	current.Currency = "USD"
	require.NoError(t, svc.Update(context.Background(), testPrincipal, *current))

	require.Len(t, up.orgUpdates, 1)
	assert.Equal(t, []int64{3}, up.updatedOrgIDs)
	assert.Equal(t, "black-ink-studio", up.orgUpdates[0].Slug)
	assert.Equal(t, int64(6), up.orgUpdates[0].CurrencyID)
}

func TestSettingsService_NoOrganisation(t *testing.T) {
	up := newFakeUpstream()
	up.profile.DefaultOrganisationID = 99
	svc := NewSettingsService(up, nopLogger())

	_, err := svc.Current(context.Background(), testPrincipal)
	assert.ErrorIs(t, err, ErrNoOrganisation)
}
