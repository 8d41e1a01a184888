package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"

	"inkdesk/internal/domain"
	"inkdesk/internal/wizard"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrDraftNotFound   = errors.New("wizard draft not found")
)

// DB is the part of pgxpool.Pool the repositories use.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Repositories struct {
	Session SessionRepository
	Consent ConsentRepository
	Draft   DraftRepository
}

func NewRepositories(db DB, rdb redis.UniversalClient, draftTTL time.Duration) *Repositories {
	return &Repositories{
		Session: NewSessionRepository(db),
		Consent: NewConsentRepository(db),
		Draft:   NewDraftRepository(rdb, draftTTL),
	}
}

type SessionRepository interface {
	Create(ctx context.Context, session domain.Session) error
	GetByID(ctx context.Context, id string) (*domain.Session, error)
	GetByRefreshToken(ctx context.Context, refreshToken string) (*domain.Session, error)
	Delete(ctx context.Context, id string) error
	DeleteByUserID(ctx context.Context, userID int64) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type ConsentRepository interface {
	Create(ctx context.Context, doc domain.ConsentDocument) (int64, error)
	ListByProject(ctx context.Context, customerID, projectID int64) ([]domain.ConsentDocument, error)
}

type DraftRepository interface {
	Save(ctx context.Context, w *wizard.Wizard) error
	Get(ctx context.Context, id string) (*wizard.Wizard, error)
	Delete(ctx context.Context, id string) error
}
