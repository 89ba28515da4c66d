package service

import (
	"context"
	"errors"
	"testing"

	"docchat/internal/model"
	"docchat/internal/repository/memory"
	repoMocks "docchat/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestQueryService_Resolve(t *testing.T) {
	ctx := context.Background()
	svc := NewQueryService(memory.Default())

	t.Run("typed query for a known client", func(t *testing.T) {
		res := svc.Resolve(ctx, "faturas do cliente C001")

		assert.Equal(t, model.ResultSuccess, res.Kind)
		require.Len(t, res.Documents, 2)
		for _, d := range res.Documents {
			assert.Equal(t, model.TypeInvoice, d.Type)
		}
		assert.Equal(t, "C001", res.Client)
		assert.Equal(t, model.TypeInvoice, res.Type)
	})

	t.Run("untyped query for a known client", func(t *testing.T) {
		res := svc.Resolve(ctx, "documentos do cliente C003")

		assert.Equal(t, model.ResultSuccess, res.Kind)
		assert.Len(t, res.Documents, 4)
	})

	t.Run("unknown client mentions client and type label", func(t *testing.T) {
		res := svc.Resolve(ctx, "faturas do cliente C999")

		assert.Equal(t, model.ResultEmpty, res.Kind)
		assert.Equal(t, model.ReasonNotFound, res.Reason)
		assert.Contains(t, res.Message, "C999")
		assert.Contains(t, res.Message, "faturas")
	})

	t.Run("no client concatenates all clients", func(t *testing.T) {
		res := svc.Resolve(ctx, "todas as faturas")

		assert.Equal(t, model.ResultSuccess, res.Kind)
		// 2 + 1 + 3 + 1 invoices across C001..C004
		assert.Len(t, res.Documents, 7)
		assert.Empty(t, res.Client)
	})

	t.Run("month is extracted but does not restrict the lookup", func(t *testing.T) {
		res := svc.Resolve(ctx, "faturas de fevereiro do cliente C001")

		assert.Equal(t, model.ResultSuccess, res.Kind)
		assert.Len(t, res.Documents, 2)
		assert.Equal(t, 2, res.Month)
	})

	t.Run("resolving twice yields identical results", func(t *testing.T) {
		first := svc.Resolve(ctx, "documentos do cliente C003")
		second := svc.Resolve(ctx, "documentos do cliente C003")

		assert.Equal(t, first, second)
	})
}

func TestQueryService_ResolveStoreErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("fetch error downgrades to erro_interno", func(t *testing.T) {
		mRepo := new(repoMocks.MockDocumentRepository)
		mRepo.On("FetchDocuments", ctx, "C001", model.TypeInvoice).
			Return(nil, errors.New("store blew up"))

		res := NewQueryService(mRepo).Resolve(ctx, "faturas do cliente C001")

		assert.Equal(t, model.ResultEmpty, res.Kind)
		assert.Equal(t, model.ReasonInternalError, res.Reason)
		assert.NotContains(t, res.Message, "blew up")
		mRepo.AssertExpectations(t)
	})

	t.Run("client listing error downgrades to erro_interno", func(t *testing.T) {
		mRepo := new(repoMocks.MockDocumentRepository)
		mRepo.On("Clients", ctx).Return(nil, errors.New("store blew up"))

		res := NewQueryService(mRepo).Resolve(ctx, "todas as faturas")

		assert.Equal(t, model.ResultEmpty, res.Kind)
		assert.Equal(t, model.ReasonInternalError, res.Reason)
		mRepo.AssertExpectations(t)
	})

	t.Run("cross-client fetch error mid-iteration", func(t *testing.T) {
		mRepo := new(repoMocks.MockDocumentRepository)
		mRepo.On("Clients", ctx).Return([]string{"C001", "C002"}, nil)
		mRepo.On("FetchDocuments", ctx, "C001", mock.Anything).
			Return([]model.Document{{Path: "documents/C001/a.pdf"}}, nil)
		mRepo.On("FetchDocuments", ctx, "C002", mock.Anything).
			Return(nil, errors.New("store blew up"))

		res := NewQueryService(mRepo).Resolve(ctx, "todos os documentos")

		assert.Equal(t, model.ResultEmpty, res.Kind)
		assert.Equal(t, model.ReasonInternalError, res.Reason)
		mRepo.AssertExpectations(t)
	})

	t.Run("cross-client with nothing matching", func(t *testing.T) {
		mRepo := new(repoMocks.MockDocumentRepository)
		mRepo.On("Clients", ctx).Return([]string{"C001"}, nil)
		mRepo.On("FetchDocuments", ctx, "C001", mock.Anything).
			Return([]model.Document{}, nil)

		res := NewQueryService(mRepo).Resolve(ctx, "todos os documentos")

		assert.Equal(t, model.ResultEmpty, res.Kind)
		assert.Equal(t, model.ReasonNotFound, res.Reason)
		mRepo.AssertExpectations(t)
	})
}

func TestQueryService_Search(t *testing.T) {
	ctx := context.Background()
	svc := NewQueryService(memory.Default())

	t.Run("two digits fails validation", func(t *testing.T) {
		res := svc.Search(ctx, "C99", "")

		assert.Equal(t, model.ResultInvalid, res.Kind)
		assert.Equal(t, model.ReasonInvalidClient, res.Reason)
		assert.Contains(t, res.Message, "CXXX")
	})

	t.Run("lowercase id is normalized before validation", func(t *testing.T) {
		res := svc.Search(ctx, "c001", model.TypeInvoice)

		assert.Equal(t, model.ResultSuccess, res.Kind)
		assert.Len(t, res.Documents, 2)
	})

	t.Run("empty id fails validation", func(t *testing.T) {
		res := svc.Search(ctx, "", "")

		assert.Equal(t, model.ResultInvalid, res.Kind)
	})

	t.Run("unknown client without type", func(t *testing.T) {
		res := svc.Search(ctx, "C999", "")

		assert.Equal(t, model.ResultEmpty, res.Kind)
		assert.Equal(t, "Não foram encontrados documentos para o cliente C999.", res.Message)
	})

	t.Run("unknown client with type", func(t *testing.T) {
		res := svc.Search(ctx, "C999", model.TypeTransportGuide)

		assert.Equal(t, model.ResultEmpty, res.Kind)
		assert.Contains(t, res.Message, "do tipo guias de transporte")
	})
}

func TestQueryService_Clients(t *testing.T) {
	svc := NewQueryService(memory.Default())

	clients, err := svc.Clients(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"C001", "C002", "C003", "C004"}, clients)
}
