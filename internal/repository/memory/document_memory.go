// Package memory provides the in-memory document repository backing the
// simulated dataset. It stands in for a real filesystem or database and is
// the default store when no database is configured.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"docchat/internal/model"
	"docchat/internal/repository"
)

// DocumentMemory is an in-memory implementation of
// repository.DocumentRepository. The dataset is fixed at construction and
// never mutated afterwards, so lookups are race-free without locking.
type DocumentMemory struct {
	docs    map[string][]model.Document
	clients []string
}

var _ repository.DocumentRepository = (*DocumentMemory)(nil)

// New builds a repository over the given dataset. Client order follows the
// sorted client ids so that cross-client queries are deterministic.
func New(dataset map[string][]model.Document) *DocumentMemory {
	clients := make([]string, 0, len(dataset))
	for id := range dataset {
		clients = append(clients, id)
	}
	sort.Strings(clients)
	return &DocumentMemory{docs: dataset, clients: clients}
}

// NewFromFile loads a JSON dataset file with the same shape as the built-in
// one: an object mapping client ids to document arrays.
func NewFromFile(path string) (*DocumentMemory, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	var dataset map[string][]model.Document
	if err := json.Unmarshal(b, &dataset); err != nil {
		return nil, fmt.Errorf("parse dataset: %w", err)
	}
	return New(dataset), nil
}

// FetchDocuments returns the client's documents in insertion order,
// optionally filtered by type. Unknown clients yield an empty slice.
func (r *DocumentMemory) FetchDocuments(ctx context.Context, clientID string, docType model.DocumentType) ([]model.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	docs := r.docs[clientID]
	out := make([]model.Document, 0, len(docs))
	for _, d := range docs {
		if docType != "" && d.Type != docType {
			continue
		}
		out = append(out, d)
	}
	return out, nil
}

// Clients returns the known client ids in sorted order.
func (r *DocumentMemory) Clients(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]string, len(r.clients))
	copy(out, r.clients)
	return out, nil
}
