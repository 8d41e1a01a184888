package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"inkdesk/internal/domain"
	"inkdesk/internal/repository"
	"inkdesk/internal/storage"
)

const consentPrefix = "consent"

type ConsentArchiveImpl struct {
	repo    repository.ConsentRepository
	files   storage.FileStorage
	logger  *zap.Logger
	presign time.Duration
}

// NewConsentArchive keeps a copy of every signed consent form. files may be nil,
// then only the record is kept.
func NewConsentArchive(repo repository.ConsentRepository, files storage.FileStorage, logger *zap.Logger) *ConsentArchiveImpl {
	return &ConsentArchiveImpl{
		repo:    repo,
		files:   files,
		logger:  logger,
		presign: 15 * time.Minute,
	}
}

func (a *ConsentArchiveImpl) Archive(ctx context.Context, userID int64, payload domain.ConsentDocumentPayload) (*domain.ConsentDocument, error) {
	doc := domain.ConsentDocument{
		UserID:     userID,
		CustomerID: payload.CustomerID,
		ProjectID:  payload.ProjectID,
		SignedAt:   time.Now(),
	}

	if a.files != nil {
		raw, _, err := storage.DecodeDataURL(payload.Signature)
		if err != nil {
			a.logger.Warn("signature is not a data url, image not archived", zap.Error(err))
		} else if url, err := a.files.UploadFile(ctx, raw, consentPrefix); err != nil {
			a.logger.Warn("failed to upload signature", zap.Error(err))
		} else {
			doc.ObjectURL = url
		}
	}

	id, err := a.repo.Create(ctx, doc)
	if err != nil {
		if doc.ObjectURL != "" {
			if derr := a.files.DeleteFile(ctx, doc.ObjectURL); derr != nil {
				a.logger.Warn("failed to remove orphaned signature", zap.String("url", doc.ObjectURL), zap.Error(derr))
			}
		}
		return nil, err
	}
	doc.ID = id
	return &doc, nil
}

// List returns the archived consent forms of a project with short-lived links.
func (a *ConsentArchiveImpl) List(ctx context.Context, customerID, projectID int64) ([]domain.ConsentDocument, error) {
	docs, err := a.repo.ListByProject(ctx, customerID, projectID)
	if err != nil {
		return nil, err
	}
	if a.files == nil {
		return docs, nil
	}
	for i := range docs {
		if docs[i].ObjectURL == "" {
			continue
		}
		signed, err := a.files.GetPresignedURL(ctx, docs[i].ObjectURL, a.presign)
		if err != nil {
			a.logger.Warn("failed to presign consent document", zap.Int64("id", docs[i].ID), zap.Error(err))
			continue
		}
		docs[i].ObjectURL = signed
	}
	return docs, nil
}
