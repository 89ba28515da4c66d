package service

import (
	"context"
	"fmt"

	"docchat/internal/model"
	"docchat/internal/nlp"
	"docchat/internal/repository"
)

// User-facing Portuguese messages for non-success outcomes.
const (
	msgInvalidClient  = "Formato do número de cliente incorreto. Por favor, use o formato CXXX (ex: C001)."
	msgNothingMatched = "Não foram encontrados documentos com os critérios especificados."
	msgInternalError  = "Ocorreu um erro ao procurar os documentos. Por favor, tente novamente."
)

// QueryService resolves natural-language document queries against the store.
type QueryService interface {
	// Resolve extracts entities from the raw query and classifies the
	// outcome. It never returns an error: store faults are downgraded to an
	// empty result with reason erro_interno.
	Resolve(ctx context.Context, rawQuery string) model.QueryResult

	// Search looks up one client's documents, optionally type-filtered.
	// The client id is strictly validated ("C" + 3-or-more digits) before
	// any lookup; extraction upstream is liberal, so ids arriving from
	// outside the extractor must pass through here.
	Search(ctx context.Context, clientID string, docType model.DocumentType) model.QueryResult

	// Clients returns the known client ids in the store's stable order.
	Clients(ctx context.Context) ([]string, error)
}

type queryService struct {
	repo repository.DocumentRepository
}

// NewQueryService constructs a QueryService over the given store.
func NewQueryService(repo repository.DocumentRepository) QueryService {
	return &queryService{repo: repo}
}

func (s *queryService) Resolve(ctx context.Context, rawQuery string) model.QueryResult {
	q := nlp.Parse(rawQuery)

	var res model.QueryResult
	if q.Client == "" {
		res = s.searchAllClients(ctx, q.Type)
	} else {
		res = s.Search(ctx, q.Client, q.Type)
	}

	res.Client = q.Client
	res.Type = q.Type
	res.Month = q.Month
	return res
}

// searchAllClients concatenates every known client's documents, optionally
// filtered to one type. Client order follows the store's stable order so
// resolving the same query twice yields identical results.
func (s *queryService) searchAllClients(ctx context.Context, docType model.DocumentType) model.QueryResult {
	clients, err := s.repo.Clients(ctx)
	if err != nil {
		return model.Empty(model.ReasonInternalError, msgInternalError)
	}

	all := make([]model.Document, 0)
	for _, id := range clients {
		docs, err := s.repo.FetchDocuments(ctx, id, docType)
		if err != nil {
			return model.Empty(model.ReasonInternalError, msgInternalError)
		}
		all = append(all, docs...)
	}

	if len(all) == 0 {
		return model.Empty(model.ReasonNotFound, msgNothingMatched)
	}
	return model.Success(all)
}

func (s *queryService) Search(ctx context.Context, clientID string, docType model.DocumentType) model.QueryResult {
	clientID = model.NormalizeClientID(clientID)
	if !model.ValidClientID(clientID) {
		return model.Invalid(model.ReasonInvalidClient, msgInvalidClient)
	}

	docs, err := s.repo.FetchDocuments(ctx, clientID, docType)
	if err != nil {
		return model.Empty(model.ReasonInternalError, msgInternalError)
	}

	if len(docs) == 0 {
		msg := fmt.Sprintf("Não foram encontrados documentos para o cliente %s", clientID)
		if docType != "" {
			msg += fmt.Sprintf(" do tipo %s", docType.ReadableLabel())
		}
		msg += "."
		return model.Empty(model.ReasonNotFound, msg)
	}
	return model.Success(docs)
}

func (s *queryService) Clients(ctx context.Context) ([]string, error) {
	return s.repo.Clients(ctx)
}
