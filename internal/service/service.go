package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"inkdesk/config"
	"inkdesk/internal/calendar"
	"inkdesk/internal/domain"
	"inkdesk/internal/observability/metrics"
	"inkdesk/internal/repository"
	"inkdesk/internal/storage"
	"inkdesk/internal/upstream"
	"inkdesk/internal/wizard"
)

var (
	ErrInvalidEmail       = errors.New("The email must be a valid email address.")
	ErrInvalidPassword    = errors.New("Password must be at least 8 characters")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNoAPIKey           = errors.New("sign in required")
	ErrInvalidToken       = errors.New("invalid token")
	ErrSessionExpired     = errors.New("session expired")
	ErrUpstreamFailed     = errors.New("Try again later or contact support.")
	ErrWizardNotFound     = errors.New("wizard not found")
	ErrNoOrganisation     = errors.New("user has no default organisation")
	ErrClientRequired     = wizard.ErrClientRequired
)

// Upstream is the studio API as the services use it.
type Upstream interface {
	Login(ctx context.Context, req domain.LoginRequest) (string, error)
	GetProfile(ctx context.Context, apiKey string) (*domain.UserProfile, error)
	ListCustomers(ctx context.Context, apiKey, search string) ([]domain.Customer, error)
	ListProjects(ctx context.Context, apiKey string, customerID int64) ([]domain.Project, error)
	SaveConsentDocument(ctx context.Context, apiKey string, payload domain.ConsentDocumentPayload) error
	CreateAppointment(ctx context.Context, apiKey string, payload domain.AppointmentPayload) (*domain.CreatedAppointment, error)
	ListAppointments(ctx context.Context, apiKey string, f domain.AppointmentFilter) ([]domain.CalendarAppointment, error)
	UpdateOrganisation(ctx context.Context, apiKey string, id int64, payload domain.UpdateOrganisationPayload) error
	ListLocations(ctx context.Context, apiKey string) ([]domain.Location, error)
	GetReferenceSettings(ctx context.Context, apiKey string) (*domain.ReferenceSettings, error)
}

type KeySealer interface {
	Seal(plain string) (string, error)
	Open(sealed string) (string, error)
}

// Notifier pushes an event to the live connections of a user.
type Notifier interface {
	Notify(userID int64, event string, data any)
}

type Deps struct {
	Repos       *repository.Repositories
	Upstream    Upstream
	Keybox      KeySealer
	FileStorage storage.FileStorage
	Memo        *calendar.Memo
	Notifier    Notifier
	Metrics     *metrics.WizardMetrics
	Logger      *zap.Logger
	Config      *config.Config
}

type Services struct {
	Auth     AuthService
	Profile  ProfileService
	Wizard   WizardService
	Calendar CalendarService
	Settings SettingsService
	Consent  ConsentArchive
}

func NewServices(deps Deps) (*Services, error) {
	loc, err := time.LoadLocation(deps.Config.Studio.TimeZone)
	if err != nil {
		return nil, err
	}

	consent := NewConsentArchive(deps.Repos.Consent, deps.FileStorage, deps.Logger)

	return &Services{
		Auth:     NewAuthService(deps.Repos.Session, deps.Upstream, deps.Keybox, deps.Config.JWT, deps.Logger),
		Profile:  NewProfileService(deps.Upstream, deps.Logger),
		Wizard:   NewWizardService(deps.Repos.Draft, deps.Upstream, consent, deps.Memo, deps.Notifier, deps.Metrics, WizardOptions{StrictLookups: deps.Config.Studio.StrictLookups, Location: loc}, deps.Logger),
		Calendar: NewCalendarService(deps.Upstream, deps.Memo, deps.Config.Studio.WeekStart, deps.Logger),
		Settings: NewSettingsService(deps.Upstream, deps.Logger),
		Consent:  consent,
	}, nil
}

type AuthService interface {
	Login(ctx context.Context, req domain.LoginRequest, userAgent, ip string) (*domain.Tokens, error)
	RefreshTokens(ctx context.Context, refreshToken, userAgent, ip string) (*domain.Tokens, error)
	Logout(ctx context.Context, refreshToken string) error
	LogoutAll(ctx context.Context, userID int64) error
	ParseToken(ctx context.Context, token string) (domain.Principal, error)
	APIKey(ctx context.Context, sessionID string) (string, error)
	PurgeExpired(ctx context.Context) (int64, error)
}

type ProfileService interface {
	Me(ctx context.Context, p domain.Principal) (*domain.UserProfile, error)
	Locations(ctx context.Context, p domain.Principal) ([]domain.Location, error)
}

type WizardService interface {
	Start(ctx context.Context, p domain.Principal) (*WizardState, error)
	Get(ctx context.Context, p domain.Principal, id string) (*WizardState, error)
	Update(ctx context.Context, p domain.Principal, id string, patch domain.DraftPatch) (*WizardState, error)
	Next(ctx context.Context, p domain.Principal, id string) (*WizardState, error)
	Back(ctx context.Context, p domain.Principal, id string) (*WizardState, error)
	JumpTo(ctx context.Context, p domain.Principal, id string, step int) (*WizardState, error)
	SendSignature(ctx context.Context, p domain.Principal, id, signature string) (*WizardState, error)
	Cancel(ctx context.Context, p domain.Principal, id string) error
}

type CalendarService interface {
	Month(ctx context.Context, p domain.Principal, q MonthQuery) (*domain.CalendarMonth, error)
}

type SettingsService interface {
	Current(ctx context.Context, p domain.Principal) (*domain.OrganisationSettings, error)
	Update(ctx context.Context, p domain.Principal, form domain.OrganisationSettings) error
}

type ConsentArchive interface {
	Archive(ctx context.Context, userID int64, payload domain.ConsentDocumentPayload) (*domain.ConsentDocument, error)
	List(ctx context.Context, customerID, projectID int64) ([]domain.ConsentDocument, error)
}

// upstreamError maps a studio API failure to what the user is told. The cause
// is logged, never returned.
func upstreamError(logger *zap.Logger, op string, err error) error {
	if errors.Is(err, upstream.ErrUnauthorized) {
		logger.Warn("studio API rejected stored key", zap.String("op", op), zap.Error(err))
		return ErrNoAPIKey
	}
	if errors.Is(err, context.Canceled) {
		return err
	}
	logger.Error("studio API call failed", zap.String("op", op), zap.Error(err))
	return ErrUpstreamFailed
}
