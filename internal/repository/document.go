package repository

import (
	"context"

	"docchat/internal/model"
)

// DocumentRepository defines read access to the document store. No business
// logic here — strictly lookup operations. The store is read-only for the
// lifetime of the process; implementations must be safe for concurrent use.
type DocumentRepository interface {
	// FetchDocuments returns the documents of one client in insertion order,
	// optionally filtered to a document type (zero value means all types).
	// A known client with no documents yields an empty, non-nil slice; an
	// unknown client also yields an empty slice, not an error.
	FetchDocuments(ctx context.Context, clientID string, docType model.DocumentType) ([]model.Document, error)

	// Clients returns the known client ids in stable order.
	Clients(ctx context.Context) ([]string, error)
}
