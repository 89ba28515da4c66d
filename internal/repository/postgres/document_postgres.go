package postgres

import (
	"context"
	"database/sql"

	"docchat/internal/model"
	"docchat/internal/repository"
)

// DocumentPostgres is a PostgreSQL implementation of
// repository.DocumentRepository — the production replacement for the
// simulated in-memory store, with the same fetch signature and semantics.
// It uses database/sql with parameterized queries and contains no business
// logic.
type DocumentPostgres struct {
	db *sql.DB
}

// NewDocumentPostgres creates a new DocumentPostgres repository.
func NewDocumentPostgres(db *sql.DB) *DocumentPostgres {
	return &DocumentPostgres{db: db}
}

var _ repository.DocumentRepository = (*DocumentPostgres)(nil)

// FetchDocuments returns the client's documents ordered by date then path,
// optionally filtered to one document type. An unknown client yields an
// empty slice, matching the in-memory store.
func (r *DocumentPostgres) FetchDocuments(ctx context.Context, clientID string, docType model.DocumentType) ([]model.Document, error) {
	const qAll = `
		SELECT path, name, doc_type, to_char(doc_date, 'YYYY-MM-DD')
		FROM client_documents
		WHERE client_id = $1
		ORDER BY doc_date, path
	`
	const qTyped = `
		SELECT path, name, doc_type, to_char(doc_date, 'YYYY-MM-DD')
		FROM client_documents
		WHERE client_id = $1 AND doc_type = $2
		ORDER BY doc_date, path
	`

	var (
		rows *sql.Rows
		err  error
	)
	if docType == "" {
		rows, err = r.db.QueryContext(ctx, qAll, clientID)
	} else {
		rows, err = r.db.QueryContext(ctx, qTyped, clientID, string(docType))
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	docs := make([]model.Document, 0)
	for rows.Next() {
		var d model.Document
		var t string
		if err := rows.Scan(&d.Path, &d.Name, &t, &d.Date); err != nil {
			return nil, err
		}
		d.Type = model.DocumentType(t)
		docs = append(docs, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return docs, nil
}

// Clients returns the distinct client ids present in the table, sorted.
func (r *DocumentPostgres) Clients(ctx context.Context) ([]string, error) {
	const q = `SELECT DISTINCT client_id FROM client_documents ORDER BY client_id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ids, nil
}
