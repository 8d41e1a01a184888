package service

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"inkdesk/internal/domain"
	"inkdesk/internal/repository"
)

type fakeUpstream struct {
	mu sync.Mutex

	loginKey   string
	loginErr   error
	profile    *domain.UserProfile
	profileErr error
	customers  []domain.Customer
	projects   []domain.Project
	locations  []domain.Location
	refs       *domain.ReferenceSettings
	createErr  error

	appointments []domain.CalendarAppointment

	onListProjects func()

	calls         map[string]int
	lastKey       string
	created       []domain.AppointmentPayload
	consents      []domain.ConsentDocumentPayload
	orgUpdates    []domain.UpdateOrganisationPayload
	lastFilter    domain.AppointmentFilter
	lastLoginReq  domain.LoginRequest
	updatedOrgIDs []int64
}

func newFakeUpstream() *fakeUpstream {
	return &fakeUpstream{
		loginKey: "key-1",
		profile: &domain.UserProfile{
			ID:                    7,
			FullName:              "Ana Artist",
			DefaultOrganisationID: 3,
			Services:              []domain.Service{{ID: 5, Name: "Fine Line", Color: "#f00"}},
			Organisations: []domain.Organisation{{
				ID: 3, Name: "Black Ink", LanguageID: 1, CurrencyID: 2, Timezone: "Europe/Berlin",
				CancellationBufferDays: 2, AutodeletePeriodDays: 7,
			}},
		},
		customers: []domain.Customer{{ID: 11, FullName: "Cara Client"}},
		projects:  []domain.Project{{ID: 9, Name: "Sleeve"}},
		locations: []domain.Location{{ID: 1, Name: "Studio B"}, {ID: 2, Name: "Studio A", DefaultForAuthUser: true}},
		refs: &domain.ReferenceSettings{
			Languages:  []domain.Language{{ID: 1, Name: "English"}, {ID: 4, Name: "German"}},
			Currencies: []domain.Currency{{ID: 2, Name: "EUR"}, {ID: 6, Name: "USD"}},
		},
		calls: map[string]int{},
	}
}

func (f *fakeUpstream) record(name, key string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[name]++
	f.lastKey = key
}

func (f *fakeUpstream) count(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

func (f *fakeUpstream) Login(ctx context.Context, req domain.LoginRequest) (string, error) {
	f.record("login", "")
	f.lastLoginReq = req
	return f.loginKey, f.loginErr
}

func (f *fakeUpstream) GetProfile(ctx context.Context, apiKey string) (*domain.UserProfile, error) {
	f.record("me", apiKey)
	if f.profileErr != nil {
		return nil, f.profileErr
	}
	p := *f.profile
	return &p, nil
}

func (f *fakeUpstream) ListCustomers(ctx context.Context, apiKey, search string) ([]domain.Customer, error) {
	f.record("customers", apiKey)
	return f.customers, nil
}

func (f *fakeUpstream) ListProjects(ctx context.Context, apiKey string, customerID int64) ([]domain.Project, error) {
	f.record("projects", apiKey)
	if f.onListProjects != nil {
		f.onListProjects()
	}
	return append([]domain.Project(nil), f.projects...), nil
}

func (f *fakeUpstream) SaveConsentDocument(ctx context.Context, apiKey string, payload domain.ConsentDocumentPayload) error {
	f.record("save_document", apiKey)
	f.consents = append(f.consents, payload)
	return nil
}

func (f *fakeUpstream) CreateAppointment(ctx context.Context, apiKey string, payload domain.AppointmentPayload) (*domain.CreatedAppointment, error) {
	f.record("create_appointment", apiKey)
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, payload)
	return &domain.CreatedAppointment{ID: 42}, nil
}

func (f *fakeUpstream) ListAppointments(ctx context.Context, apiKey string, filter domain.AppointmentFilter) ([]domain.CalendarAppointment, error) {
	f.record("appointments", apiKey)
	f.lastFilter = filter
	return f.appointments, nil
}

func (f *fakeUpstream) UpdateOrganisation(ctx context.Context, apiKey string, id int64, payload domain.UpdateOrganisationPayload) error {
	f.record("update_organisation", apiKey)
	f.updatedOrgIDs = append(f.updatedOrgIDs, id)
	f.orgUpdates = append(f.orgUpdates, payload)
	return nil
}

func (f *fakeUpstream) ListLocations(ctx context.Context, apiKey string) ([]domain.Location, error) {
	f.record("locations", apiKey)
	return f.locations, nil
}

func (f *fakeUpstream) GetReferenceSettings(ctx context.Context, apiKey string) (*domain.ReferenceSettings, error) {
	f.record("settings", apiKey)
	return f.refs, nil
}

// plainSealer marks values instead of encrypting them.
type plainSealer struct{}

func (plainSealer) Seal(plain string) (string, error) { return "sealed:" + plain, nil }

func (plainSealer) Open(sealed string) (string, error) {
	return strings.TrimPrefix(sealed, "sealed:"), nil
}

type memSessions struct {
	mu       sync.Mutex
	sessions map[string]domain.Session
}

func newMemSessions() *memSessions {
	return &memSessions{sessions: map[string]domain.Session{}}
}

func (m *memSessions) Create(ctx context.Context, s domain.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
	return nil
}

func (m *memSessions) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, repository.ErrSessionNotFound
	}
	return &s, nil
}

func (m *memSessions) GetByRefreshToken(ctx context.Context, token string) (*domain.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.sessions {
		if s.RefreshToken == token {
			s := s
			return &s, nil
		}
	}
	return nil, repository.ErrSessionNotFound
}

func (m *memSessions) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

func (m *memSessions) DeleteByUserID(ctx context.Context, userID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, s := range m.sessions {
		if s.UserID == userID {
			delete(m.sessions, id)
		}
	}
	return nil
}

func (m *memSessions) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for id, s := range m.sessions {
		if s.ExpiresAt.Before(now) {
			delete(m.sessions, id)
			n++
		}
	}
	return n, nil
}

type memConsents struct {
	docs []domain.ConsentDocument
}

func (m *memConsents) Create(ctx context.Context, doc domain.ConsentDocument) (int64, error) {
	doc.ID = int64(len(m.docs) + 1)
	m.docs = append(m.docs, doc)
	return doc.ID, nil
}

func (m *memConsents) ListByProject(ctx context.Context, customerID, projectID int64) ([]domain.ConsentDocument, error) {
	var out []domain.ConsentDocument
	for _, d := range m.docs {
		if d.CustomerID == customerID && d.ProjectID == projectID {
			out = append(out, d)
		}
	}
	return out, nil
}

type memFiles struct {
	uploads [][]byte
	deleted []string
}

func (m *memFiles) UploadFile(ctx context.Context, data []byte, prefix string) (string, error) {
	m.uploads = append(m.uploads, data)
	return "https://files.test/" + prefix + "/1.png", nil
}

func (m *memFiles) DeleteFile(ctx context.Context, fileURL string) error {
	m.deleted = append(m.deleted, fileURL)
	return nil
}

func (m *memFiles) GetPresignedURL(ctx context.Context, fileURL string, expiry time.Duration) (string, error) {
	return fileURL + "?signed=1", nil
}

type recordedEvent struct {
	userID int64
	event  string
}

type fakeNotifier struct {
	events []recordedEvent
}

func (n *fakeNotifier) Notify(userID int64, event string, data any) {
	n.events = append(n.events, recordedEvent{userID: userID, event: event})
}

func newDraftStore(t *testing.T) *repository.DraftRepo {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return repository.NewDraftRepository(rdb, time.Hour)
}

var testPrincipal = domain.Principal{UserID: 7, SessionID: "s-1", APIKey: "key-1"}

func nopLogger() *zap.Logger {
	return zap.NewNop()
}
