package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"inkdesk/internal/domain"
	"inkdesk/internal/wizard"
	"inkdesk/pkg/validator"
)

type settingOption struct {
	Label string
	Days  int
}

var cancellationPolicyOptions = []settingOption{
	{"Allow anytime", 0},
	{"Two days", 2},
	{"Tree days", 3},
	{"Four days", 4},
	{"Five days", 5},
	{"Always", 99999},
}

var autoDeletePeriodOptions = []settingOption{
	{"Newer", 99999},
	{"Previous year", 365},
	{"Previous month", 30},
	{"Previous week", 7},
	{"Previous day", 1},
}

const (
	defaultCancellationLabel = "Anytime"
	defaultAutoDeleteLabel   = "Newer"
	defaultCancellationDays  = 0
	defaultAutoDeleteDays    = 99999
)

func daysFor(options []settingOption, label string, fallback int) int {
	for _, o := range options {
		if o.Label == label {
			return o.Days
		}
	}
	return fallback
}

func labelFor(options []settingOption, days int, fallback string) string {
	for _, o := range options {
		if o.Days == days {
			return o.Label
		}
	}
	return fallback
}

// SettingsForm renders an organisation as the labels of the settings form.
func SettingsForm(org domain.Organisation, refs domain.ReferenceSettings) domain.OrganisationSettings {
	form := domain.OrganisationSettings{
		BusinessName:       org.Name,
		Timezone:           org.Timezone,
		CancellationPolicy: labelFor(cancellationPolicyOptions, org.CancellationBufferDays, defaultCancellationLabel),
		AutoDelete:         labelFor(autoDeletePeriodOptions, org.AutodeletePeriodDays, defaultAutoDeleteLabel),
	}
	for _, l := range refs.Languages {
		if l.ID == org.LanguageID {
			form.Language = l.Name
			break
		}
	}
	for _, c := range refs.Currencies {
		if c.ID == org.CurrencyID {
			form.Currency = c.Name
			break
		}
	}
	return form
}

// OrganisationPayload turns the settings form back into the PATCH body.
func OrganisationPayload(form domain.OrganisationSettings, refs domain.ReferenceSettings) (domain.UpdateOrganisationPayload, error) {
	payload := domain.UpdateOrganisationPayload{
		AutodeletePeriodDays:   daysFor(autoDeletePeriodOptions, form.AutoDelete, defaultAutoDeleteDays),
		CancellationBufferDays: daysFor(cancellationPolicyOptions, form.CancellationPolicy, defaultCancellationDays),
		Name:                   form.BusinessName,
		Slug:                   validator.OrganisationSlug(form.BusinessName),
		Timezone:               form.Timezone,
	}

	found := false
	for _, c := range refs.Currencies {
		if c.Name == form.Currency {
			payload.CurrencyID = c.ID
			found = true
			break
		}
	}
	if !found {
		return domain.UpdateOrganisationPayload{}, &wizard.LookupError{Field: "currency", Label: form.Currency}
	}

	found = false
	for _, l := range refs.Languages {
		if l.Name == form.Language {
			payload.LanguageID = l.ID
			found = true
			break
		}
	}
	if !found {
		return domain.UpdateOrganisationPayload{}, &wizard.LookupError{Field: "language", Label: form.Language}
	}

	return payload, nil
}

type SettingsServiceImpl struct {
	upstream Upstream
	logger   *zap.Logger
}

func NewSettingsService(up Upstream, logger *zap.Logger) *SettingsServiceImpl {
	return &SettingsServiceImpl{
		upstream: up,
		logger:   logger,
	}
}

func (s *SettingsServiceImpl) Current(ctx context.Context, p domain.Principal) (*domain.OrganisationSettings, error) {
	org, refs, err := s.load(ctx, p)
	if err != nil {
		return nil, err
	}
	form := SettingsForm(*org, *refs)
	return &form, nil
}

func (s *SettingsServiceImpl) Update(ctx context.Context, p domain.Principal, form domain.OrganisationSettings) error {
	org, refs, err := s.load(ctx, p)
	if err != nil {
		return err
	}

	payload, err := OrganisationPayload(form, *refs)
	if err != nil {
		return err
	}

	if err := s.upstream.UpdateOrganisation(ctx, p.APIKey, org.ID, payload); err != nil {
		return upstreamError(s.logger, "update_organisation", err)
	}

	s.logger.Info("organisation updated", zap.Int64("organisation", org.ID), zap.Int64("user", p.UserID))
	return nil
}

func (s *SettingsServiceImpl) load(ctx context.Context, p domain.Principal) (*domain.Organisation, *domain.ReferenceSettings, error) {
	profile, err := s.upstream.GetProfile(ctx, p.APIKey)
	if err != nil {
		return nil, nil, upstreamError(s.logger, "settings.me", err)
	}
	org := profile.DefaultOrganisation()
	if org == nil {
		return nil, nil, fmt.Errorf("%w: %d", ErrNoOrganisation, profile.DefaultOrganisationID)
	}

	refs, err := s.upstream.GetReferenceSettings(ctx, p.APIKey)
	if err != nil {
		return nil, nil, upstreamError(s.logger, "settings", err)
	}
	return org, refs, nil
}
