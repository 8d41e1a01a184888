package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"inkdesk/internal/calendar"
	"inkdesk/internal/domain"
	"inkdesk/internal/observability/metrics"
	"inkdesk/internal/repository"
	"inkdesk/internal/upstream"
	"inkdesk/internal/wizard"
)

const EventCalendarInvalidated = "calendar.invalidated"

type WizardOptions struct {
	StrictLookups bool
	Location      *time.Location
}

// WizardState is what every wizard action answers with.
type WizardState struct {
	Wizard      *wizard.Wizard             `json:"wizard"`
	Transition  *wizard.Transition         `json:"transition,omitempty"`
	Appointment *domain.CreatedAppointment `json:"appointment,omitempty"`
	Misses      []*wizard.LookupError      `json:"lookup_misses,omitempty"`
	Submitted   bool                       `json:"submitted"`
}

type WizardServiceImpl struct {
	drafts   repository.DraftRepository
	upstream Upstream
	consent  ConsentArchive
	memo     *calendar.Memo
	notifier Notifier
	metrics  *metrics.WizardMetrics
	opts     WizardOptions
	logger   *zap.Logger
	now      func() time.Time
}

func NewWizardService(
	drafts repository.DraftRepository,
	up Upstream,
	consent ConsentArchive,
	memo *calendar.Memo,
	notifier Notifier,
	m *metrics.WizardMetrics,
	opts WizardOptions,
	logger *zap.Logger,
) *WizardServiceImpl {
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	return &WizardServiceImpl{
		drafts:   drafts,
		upstream: up,
		consent:  consent,
		memo:     memo,
		notifier: notifier,
		metrics:  m,
		opts:     opts,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *WizardServiceImpl) Start(ctx context.Context, p domain.Principal) (*WizardState, error) {
	profile, err := s.upstream.GetProfile(ctx, p.APIKey)
	if err != nil {
		return nil, upstreamError(s.logger, "wizard.me", err)
	}
	locations, err := s.upstream.ListLocations(ctx, p.APIKey)
	if err != nil {
		return nil, upstreamError(s.logger, "wizard.locations", err)
	}

	w := wizard.New(profile, locations)
	w.ID = uuid.New().String()
	w.UserID = p.UserID
	w.CreatedAt = s.now()

	if err := s.save(ctx, w); err != nil {
		return nil, err
	}
	s.metrics.ObserveTransition("start", "ok")
	return &WizardState{Wizard: w}, nil
}

func (s *WizardServiceImpl) Get(ctx context.Context, p domain.Principal, id string) (*WizardState, error) {
	w, err := s.load(ctx, p, id)
	if err != nil {
		return nil, err
	}
	return &WizardState{Wizard: w}, nil
}

func (s *WizardServiceImpl) Update(ctx context.Context, p domain.Principal, id string, patch domain.DraftPatch) (*WizardState, error) {
	w, err := s.load(ctx, p, id)
	if err != nil {
		return nil, err
	}

	effects, err := w.Apply(patch)
	if err != nil {
		return nil, err
	}

	w, err = s.commit(ctx, p, w, effects)
	if err != nil {
		return nil, err
	}
	return &WizardState{Wizard: w}, nil
}

// Next validates the current step and either advances or, on the final step,
// submits the appointment.
func (s *WizardServiceImpl) Next(ctx context.Context, p domain.Principal, id string) (*WizardState, error) {
	w, err := s.load(ctx, p, id)
	if err != nil {
		return nil, err
	}

	tr := w.Next()
	if !tr.Validation.Valid {
		s.metrics.ObserveTransition("next", "invalid")
		if err := s.save(ctx, w); err != nil {
			return nil, err
		}
		return &WizardState{Wizard: w, Transition: &tr}, nil
	}

	if tr.Submit {
		return s.submit(ctx, p, w, tr)
	}

	s.metrics.ObserveTransition("next", "ok")
	w, err = s.commit(ctx, p, w, tr.Effects)
	if err != nil {
		return nil, err
	}
	return &WizardState{Wizard: w, Transition: &tr}, nil
}

func (s *WizardServiceImpl) Back(ctx context.Context, p domain.Principal, id string) (*WizardState, error) {
	w, err := s.load(ctx, p, id)
	if err != nil {
		return nil, err
	}

	tr := w.Back()
	s.metrics.ObserveTransition("back", "ok")
	w, err = s.commit(ctx, p, w, tr.Effects)
	if err != nil {
		return nil, err
	}
	return &WizardState{Wizard: w, Transition: &tr}, nil
}

func (s *WizardServiceImpl) JumpTo(ctx context.Context, p domain.Principal, id string, step int) (*WizardState, error) {
	w, err := s.load(ctx, p, id)
	if err != nil {
		return nil, err
	}

	tr, err := w.JumpTo(step)
	if err != nil {
		s.metrics.ObserveTransition("jump", "out_of_range")
		return nil, err
	}
	s.metrics.ObserveTransition("jump", "ok")
	w, err = s.commit(ctx, p, w, tr.Effects)
	if err != nil {
		return nil, err
	}
	return &WizardState{Wizard: w, Transition: &tr}, nil
}

// SendSignature submits the consent form of the selected project. It does not
// move the wizard.
func (s *WizardServiceImpl) SendSignature(ctx context.Context, p domain.Principal, id, signature string) (*WizardState, error) {
	w, err := s.load(ctx, p, id)
	if err != nil {
		return nil, err
	}

	payload, err := wizard.ConsentPayload(w, signature)
	if err != nil {
		return nil, err
	}

	if err := s.upstream.SaveConsentDocument(ctx, p.APIKey, payload); err != nil {
		return nil, upstreamError(s.logger, "save_document", err)
	}

	w.MarkSigned(w.Draft.SelectedProjectName)
	if err := s.save(ctx, w); err != nil {
		return nil, err
	}

	if s.consent != nil {
		if _, err := s.consent.Archive(ctx, p.UserID, payload); err != nil {
			s.logger.Warn("failed to archive consent document",
				zap.Int64("customer", payload.CustomerID),
				zap.Int64("project", payload.ProjectID),
				zap.Error(err))
		}
	}

	return &WizardState{Wizard: w}, nil
}

func (s *WizardServiceImpl) Cancel(ctx context.Context, p domain.Principal, id string) error {
	if _, err := s.load(ctx, p, id); err != nil {
		return err
	}
	s.metrics.ObserveTransition("cancel", "ok")
	return s.drafts.Delete(ctx, id)
}

func (s *WizardServiceImpl) submit(ctx context.Context, p domain.Principal, w *wizard.Wizard, tr wizard.Transition) (*WizardState, error) {
	if w.Draft.Client == nil {
		s.metrics.ObserveSubmission("no_client")
		return nil, ErrClientRequired
	}

	profile, err := s.upstream.GetProfile(ctx, p.APIKey)
	if err != nil {
		return nil, upstreamError(s.logger, "submit.me", err)
	}
	locations, err := s.upstream.ListLocations(ctx, p.APIKey)
	if err != nil {
		return nil, upstreamError(s.logger, "submit.locations", err)
	}

	asm, err := wizard.BuildPayload(w.Draft, wizard.References{
		StaffID:   profile.ID,
		Locations: locations,
		Services:  profile.Services,
		Projects:  w.Projects,
	}, wizard.Options{Strict: s.opts.StrictLookups, Location: s.opts.Location})
	for _, m := range asm.Misses {
		s.metrics.ObserveLookupMiss(m.Field)
		s.logger.Warn("draft label did not resolve", zap.String("wizard", w.ID), zap.String("field", m.Field), zap.String("label", m.Label))
	}
	if err != nil {
		s.metrics.ObserveSubmission("rejected")
		return nil, err
	}

	created, err := s.upstream.CreateAppointment(ctx, p.APIKey, asm.Payload)
	if err != nil {
		s.metrics.ObserveSubmission("failed")
		return nil, upstreamError(s.logger, "create_appointment", err)
	}
	s.metrics.ObserveSubmission("created")

	if err := s.drafts.Delete(ctx, w.ID); err != nil {
		s.logger.Warn("failed to delete submitted draft", zap.String("wizard", w.ID), zap.Error(err))
	}
	if s.memo != nil {
		s.memo.Forget(p.UserID)
	}
	if s.notifier != nil {
		s.notifier.Notify(p.UserID, EventCalendarInvalidated, created)
	}

	s.logger.Info("appointment created", zap.Int64("appointment", created.ID), zap.Int64("user", p.UserID))
	return &WizardState{Wizard: w, Transition: &tr, Appointment: created, Misses: asm.Misses, Submitted: true}, nil
}

// commit stores w and then runs the fetches its step change asked for. Each
// result is applied to the freshest stored copy and dropped when the wizard
// moved on in the meantime.
func (s *WizardServiceImpl) commit(ctx context.Context, p domain.Principal, w *wizard.Wizard, effects []wizard.Effect) (*wizard.Wizard, error) {
	if err := s.save(ctx, w); err != nil {
		return nil, err
	}

	for _, e := range effects {
		var apply func(*wizard.Wizard) bool

		switch e.Kind {
		case wizard.EffectFetchCustomers:
			customers, err := s.upstream.ListCustomers(ctx, p.APIKey, "")
			if err != nil {
				if errors.Is(err, upstream.ErrUnauthorized) {
					return nil, upstreamError(s.logger, "customers", err)
				}
				s.logger.Warn("failed to load customers", zap.String("wizard", w.ID), zap.Error(err))
				continue
			}
			apply = func(fresh *wizard.Wizard) bool { return fresh.ApplyCustomers(e.Generation, customers) }
		case wizard.EffectFetchProjects:
			projects, err := s.upstream.ListProjects(ctx, p.APIKey, e.CustomerID)
			if err != nil {
				if errors.Is(err, upstream.ErrUnauthorized) {
					return nil, upstreamError(s.logger, "projects", err)
				}
				s.logger.Warn("failed to load projects", zap.String("wizard", w.ID), zap.Int64("customer", e.CustomerID), zap.Error(err))
				continue
			}
			apply = func(fresh *wizard.Wizard) bool { return fresh.ApplyProjects(e.Generation, projects) }
		default:
			continue
		}

		fresh, err := s.drafts.Get(ctx, w.ID)
		if err != nil {
			if errors.Is(err, repository.ErrDraftNotFound) {
				return nil, ErrWizardNotFound
			}
			return nil, err
		}
		if !apply(fresh) {
			s.metrics.ObserveStaleResult()
			s.logger.Debug("dropped stale fetch result", zap.String("wizard", w.ID), zap.String("kind", string(e.Kind)),
				zap.Uint64("issued", e.Generation), zap.Uint64("current", fresh.Generation))
			w = fresh
			continue
		}
		if err := s.save(ctx, fresh); err != nil {
			return nil, err
		}
		w = fresh
	}

	return w, nil
}

func (s *WizardServiceImpl) load(ctx context.Context, p domain.Principal, id string) (*wizard.Wizard, error) {
	w, err := s.drafts.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrDraftNotFound) {
			return nil, ErrWizardNotFound
		}
		return nil, err
	}
	if w.UserID != p.UserID {
		return nil, ErrWizardNotFound
	}
	return w, nil
}

func (s *WizardServiceImpl) save(ctx context.Context, w *wizard.Wizard) error {
	w.UpdatedAt = s.now()
	return s.drafts.Save(ctx, w)
}
