package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inkdesk/internal/domain"
)

func TestConsentArchive_NotADataURL(t *testing.T) {
	files := &memFiles{}
	repo := &memConsents{}
	archive := NewConsentArchive(repo, files, nopLogger())

	doc, err := archive.Archive(context.Background(), 7, domain.ConsentDocumentPayload{CustomerID: 11, ProjectID: 9, Signature: "%%%"})
	require.NoError(t, err)
	assert.Empty(t, doc.ObjectURL)
	assert.Empty(t, files.uploads)
	assert.Len(t, repo.docs, 1)
}

func TestConsentArchive_ListPresigns(t *testing.T) {
	files := &memFiles{}
	repo := &memConsents{}
	archive := NewConsentArchive(repo, files, nopLogger())

	_, err := archive.Archive(context.Background(), 7, domain.ConsentDocumentPayload{CustomerID: 11, ProjectID: 9, Signature: "data:image/png;base64,iVBORw0KGgo="})
	require.NoError(t, err)

	docs, err := archive.List(context.Background(), 11, 9)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "https://files.test/consent/1.png?signed=1", docs[0].ObjectURL)
}

func TestConsentArchive_WithoutStorage(t *testing.T) {
	repo := &memConsents{}
	archive := NewConsentArchive(repo, nil, nopLogger())

	doc, err := archive.Archive(context.Background(), 7, domain.ConsentDocumentPayload{CustomerID: 11, ProjectID: 9, Signature: "data:image/png;base64,iVBORw0KGgo="})
	require.NoError(t, err)
	assert.Equal(t, int64(1), doc.ID)
	assert.Empty(t, doc.ObjectURL)
}
