package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inkdesk/internal/domain"
)

func TestConsentRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	signed := time.Now()
	mock.ExpectQuery("INSERT INTO consent_documents").
		WithArgs(int64(7), int64(11), int64(9), "https://s3/consent/a.png", signed).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(1)))

	id, err := NewConsentRepository(mock).Create(context.Background(), domain.ConsentDocument{
		UserID: 7, CustomerID: 11, ProjectID: 9, ObjectURL: "https://s3/consent/a.png", SignedAt: signed,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConsentRepo_ListByProject(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	signed := time.Now()
	mock.ExpectQuery("FROM consent_documents").
		WithArgs(int64(11), int64(9)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "customer_id", "project_id", "object_url", "signed_at"}).
			AddRow(int64(2), int64(7), int64(11), int64(9), "u2", signed).
			AddRow(int64(1), int64(7), int64(11), int64(9), "u1", signed.Add(-time.Hour)))

	docs, err := NewConsentRepository(mock).ListByProject(context.Background(), 11, 9)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "u2", docs[0].ObjectURL)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConsentRepo_CreateError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("INSERT INTO consent_documents").WillReturnError(errors.New("boom"))

	_, err = NewConsentRepository(mock).Create(context.Background(), domain.ConsentDocument{})
	assert.Error(t, err)
}
