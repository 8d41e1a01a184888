package repository

import (
	"context"
	"fmt"

	"inkdesk/internal/domain"
)

type ConsentRepo struct {
	db DB
}

func NewConsentRepository(db DB) *ConsentRepo {
	return &ConsentRepo{
		db: db,
	}
}

func (r *ConsentRepo) Create(ctx context.Context, doc domain.ConsentDocument) (int64, error) {
	query := `
		INSERT INTO consent_documents (user_id, customer_id, project_id, object_url, signed_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(ctx, query,
		doc.UserID,
		doc.CustomerID,
		doc.ProjectID,
		doc.ObjectURL,
		doc.SignedAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create consent document: %w", err)
	}

	return id, nil
}

func (r *ConsentRepo) ListByProject(ctx context.Context, customerID, projectID int64) ([]domain.ConsentDocument, error) {
	query := `
		SELECT id, user_id, customer_id, project_id, object_url, signed_at
		FROM consent_documents
		WHERE customer_id = $1 AND project_id = $2
		ORDER BY signed_at DESC
	`

	rows, err := r.db.Query(ctx, query, customerID, projectID)
	if err != nil {
		return nil, fmt.Errorf("list consent documents: %w", err)
	}
	defer rows.Close()

	var docs []domain.ConsentDocument
	for rows.Next() {
		var d domain.ConsentDocument
		if err := rows.Scan(&d.ID, &d.UserID, &d.CustomerID, &d.ProjectID, &d.ObjectURL, &d.SignedAt); err != nil {
			return nil, fmt.Errorf("scan consent document: %w", err)
		}
		docs = append(docs, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list consent documents: %w", err)
	}

	return docs, nil
}
