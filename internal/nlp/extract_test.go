package nlp

import (
	"testing"

	"docchat/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestExtractClient(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{name: "plain client number", query: "fatura do cliente C001", want: "C001"},
		{name: "lowercase client number", query: "documentos do c123", want: "C123"},
		{name: "more than three digits", query: "cliente C10045", want: "C10045"},
		{name: "first of several matches wins", query: "c001 e c002", want: "C001"},
		{name: "no client present", query: "sem cliente", want: ""},
		{name: "fewer than three digits", query: "c7", want: ""},
		{name: "two digits", query: "cliente C99", want: ""},
		{name: "embedded in a word", query: "doc001 em anexo", want: "C001"},
		{name: "empty query", query: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractClient(tt.query))
		})
	}
}

func TestExtractType(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  model.DocumentType
	}{
		{name: "invoice in portuguese", query: "quero a fatura de janeiro", want: model.TypeInvoice},
		{name: "invoice with old spelling", query: "a factura por favor", want: model.TypeInvoice},
		{name: "invoice in english", query: "I need the invoice", want: model.TypeInvoice},
		{name: "transport guide full phrase", query: "preciso da guia de transporte", want: model.TypeTransportGuide},
		{name: "cmr shorthand", query: "onde está o CMR?", want: model.TypeTransportGuide},
		{name: "accented variant matches", query: "FATURAS do cliente", want: model.TypeInvoice},
		{name: "no type named", query: "bom dia", want: ""},
		{name: "both types named picks first declared", query: "faturas e guias de transporte", want: model.TypeInvoice},
		{name: "empty query", query: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractType(tt.query))
		})
	}
}

func TestExtractMonth(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  int
	}{
		{name: "january", query: "faturas de janeiro", want: 1},
		{name: "accented march", query: "documentos de março", want: 3},
		{name: "unaccented march", query: "documentos de marco", want: 3},
		{name: "uppercase month", query: "FATURAS DE DEZEMBRO", want: 12},
		{name: "no month", query: "faturas do cliente C001", want: 0},
		{name: "empty query", query: "", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractMonth(tt.query))
		})
	}
}

func TestParse(t *testing.T) {
	q := Parse("Faturas de Fevereiro do cliente C001")

	assert.Equal(t, "C001", q.Client)
	assert.Equal(t, model.TypeInvoice, q.Type)
	assert.Equal(t, 2, q.Month)
}

func TestParseNothingExtracted(t *testing.T) {
	q := Parse("olá, tudo bem?")

	assert.Empty(t, q.Client)
	assert.Empty(t, q.Type)
	assert.Zero(t, q.Month)
}
