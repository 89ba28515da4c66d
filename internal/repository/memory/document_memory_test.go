package memory

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"docchat/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchDocuments(t *testing.T) {
	ctx := context.Background()
	repo := Default()

	t.Run("all documents of a client in insertion order", func(t *testing.T) {
		docs, err := repo.FetchDocuments(ctx, "C001", "")
		require.NoError(t, err)
		require.Len(t, docs, 3)
		assert.Equal(t, "Fatura Janeiro 2023", docs[0].Name)
		assert.Equal(t, "Fatura Fevereiro 2023", docs[1].Name)
		assert.Equal(t, "Guia de Transporte #123", docs[2].Name)
	})

	t.Run("filtered by invoice type", func(t *testing.T) {
		docs, err := repo.FetchDocuments(ctx, "C003", model.TypeInvoice)
		require.NoError(t, err)
		require.Len(t, docs, 3)
		for _, d := range docs {
			assert.Equal(t, model.TypeInvoice, d.Type)
		}
	})

	t.Run("filtered by transport guide type", func(t *testing.T) {
		docs, err := repo.FetchDocuments(ctx, "C004", model.TypeTransportGuide)
		require.NoError(t, err)
		assert.Len(t, docs, 2)
	})

	t.Run("unknown client yields empty non-nil slice", func(t *testing.T) {
		docs, err := repo.FetchDocuments(ctx, "C999", "")
		require.NoError(t, err)
		assert.NotNil(t, docs)
		assert.Empty(t, docs)
	})

	t.Run("cancelled context", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		_, err := repo.FetchDocuments(cancelled, "C001", "")
		assert.Error(t, err)
	})
}

func TestClients(t *testing.T) {
	repo := Default()

	clients, err := repo.Clients(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"C001", "C002", "C003", "C004"}, clients)
}

func TestNewFromFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("loads a valid dataset", func(t *testing.T) {
		path := filepath.Join(dir, "dataset.json")
		data := `{
			"C777": [
				{"path": "documents/C777/fatura_C777_2024-01.pdf", "name": "Fatura Janeiro 2024", "type": "fatura", "date": "2024-01-31"}
			]
		}`
		require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

		repo, err := NewFromFile(path)
		require.NoError(t, err)

		clients, err := repo.Clients(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"C777"}, clients)

		docs, err := repo.FetchDocuments(context.Background(), "C777", model.TypeInvoice)
		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, "Fatura Janeiro 2024", docs[0].Name)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := NewFromFile(filepath.Join(dir, "missing.json"))
		assert.ErrorContains(t, err, "read dataset")
	})

	t.Run("malformed json", func(t *testing.T) {
		path := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

		_, err := NewFromFile(path)
		assert.ErrorContains(t, err, "parse dataset")
	})
}
