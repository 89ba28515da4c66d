package memory

import "docchat/internal/model"

// basePath prefixes every simulated storage path.
const basePath = "documents/"

// DefaultDataset returns the fixed simulated document set. It mirrors a real
// document repository with four clients; document order within a client is
// insertion order, chronological in practice.
func DefaultDataset() map[string][]model.Document {
	return map[string][]model.Document{
		"C001": {
			{Path: basePath + "C001/fatura_C001_2023-01.pdf", Name: "Fatura Janeiro 2023", Type: model.TypeInvoice, Date: "2023-01-15"},
			{Path: basePath + "C001/fatura_C001_2023-02.pdf", Name: "Fatura Fevereiro 2023", Type: model.TypeInvoice, Date: "2023-02-15"},
			{Path: basePath + "C001/guia_transporte_C001_123.pdf", Name: "Guia de Transporte #123", Type: model.TypeTransportGuide, Date: "2023-02-20"},
		},
		"C002": {
			{Path: basePath + "C002/fatura_C002_2023-01.pdf", Name: "Fatura Janeiro 2023", Type: model.TypeInvoice, Date: "2023-01-20"},
			{Path: basePath + "C002/guia_transporte_C002_456.pdf", Name: "Guia de Transporte #456", Type: model.TypeTransportGuide, Date: "2023-01-25"},
		},
		"C003": {
			{Path: basePath + "C003/fatura_C003_2023-01.pdf", Name: "Fatura Janeiro 2023", Type: model.TypeInvoice, Date: "2023-01-10"},
			{Path: basePath + "C003/fatura_C003_2023-02.pdf", Name: "Fatura Fevereiro 2023", Type: model.TypeInvoice, Date: "2023-02-10"},
			{Path: basePath + "C003/fatura_C003_2023-03.pdf", Name: "Fatura Março 2023", Type: model.TypeInvoice, Date: "2023-03-10"},
			{Path: basePath + "C003/guia_transporte_C003_789.pdf", Name: "Guia de Transporte #789", Type: model.TypeTransportGuide, Date: "2023-03-15"},
		},
		"C004": {
			{Path: basePath + "C004/fatura_C004_2023-01.pdf", Name: "Fatura Janeiro 2023", Type: model.TypeInvoice, Date: "2023-01-05"},
			{Path: basePath + "C004/guia_transporte_C004_101.pdf", Name: "Guia de Transporte #101", Type: model.TypeTransportGuide, Date: "2023-01-12"},
			{Path: basePath + "C004/guia_transporte_C004_102.pdf", Name: "Guia de Transporte #102", Type: model.TypeTransportGuide, Date: "2023-02-18"},
		},
	}
}

// Default builds a repository over the built-in simulated dataset.
func Default() *DocumentMemory {
	return New(DefaultDataset())
}
