package model

import (
	"regexp"
	"strings"
	"time"
)

// DocumentType is the closed set of document categories the assistant knows about.
type DocumentType string

const (
	TypeInvoice        DocumentType = "fatura"
	TypeTransportGuide DocumentType = "guia_transporte"
)

// DocumentTypes lists the known types in declaration order. Extraction checks
// them in this order, so a query naming both categories resolves to the first.
var DocumentTypes = []DocumentType{TypeInvoice, TypeTransportGuide}

// synonyms maps each type to the natural-language variants (Portuguese and
// English) recognized in queries. Matched as substrings after normalization.
var synonyms = map[DocumentType][]string{
	TypeInvoice:        {"fatura", "faturas", "factura", "facturas", "invoice", "invoices"},
	TypeTransportGuide: {"guia", "guias", "cmr", "guia de transporte", "guias de transporte", "transport guide", "transport guides"},
}

// countLabels are the short labels used in count sentences ("2 faturas", "1 CMR").
var countLabels = map[DocumentType][2]string{
	TypeInvoice:        {"fatura", "faturas"},
	TypeTransportGuide: {"CMR", "CMRs"},
}

// readableLabels are the long plural labels used in error narration
// ("... do tipo guias de transporte").
var readableLabels = map[DocumentType]string{
	TypeInvoice:        "faturas",
	TypeTransportGuide: "guias de transporte",
}

// Synonyms returns the recognized variants for the type.
func (t DocumentType) Synonyms() []string {
	return synonyms[t]
}

// CountLabel returns the singular or plural short label for the given count.
// Count 1 is singular; anything else, including 0, is plural.
func (t DocumentType) CountLabel(n int) string {
	labels, ok := countLabels[t]
	if !ok {
		return "documentos"
	}
	if n == 1 {
		return labels[0]
	}
	return labels[1]
}

// ReadableLabel returns the long plural label for error narration.
func (t DocumentType) ReadableLabel() string {
	if l, ok := readableLabels[t]; ok {
		return l
	}
	return "documentos"
}

// Valid reports whether t is one of the known document types.
func (t DocumentType) Valid() bool {
	_, ok := synonyms[t]
	return ok
}

// Document represents one stored document of a client. It is a pure domain
// record with no persistence coupling; instances are immutable once created
// and owned by the document store.
type Document struct {
	Path string       `json:"path"`
	Name string       `json:"name"`
	Type DocumentType `json:"type"`
	Date string       `json:"date"` // ISO date, YYYY-MM-DD
}

// Month returns the 1-12 calendar month of the document date, or 0 when the
// date is malformed. Callers that filter on it ignore the year.
func (d Document) Month() int {
	t, err := time.Parse("2006-01-02", d.Date)
	if err != nil {
		return 0
	}
	return int(t.Month())
}

// Client derives the owning client id from the storage path
// (e.g. "documents/C001/fatura_C001_2023-01.pdf" -> "C001").
// Returns "" when the path has no client segment.
func (d Document) Client() string {
	parts := strings.Split(d.Path, "/")
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}

// clientIDPattern is the strict shape of a client id: "C" plus 3 or more digits.
var clientIDPattern = regexp.MustCompile(`^C\d{3,}$`)

// ValidClientID reports whether id has the strict "C" + 3-or-more-digits shape.
// This is intentionally a separate pass from extraction: an id handed in from
// outside (e.g. a URL parameter) must still be shape-checked before use.
func ValidClientID(id string) bool {
	return clientIDPattern.MatchString(id)
}

// NormalizeClientID uppercases a client id ("c001" -> "C001"). It does not
// validate; pair with ValidClientID.
func NormalizeClientID(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}

// MonthNames are the Portuguese month names used in result narration,
// indexed by month-1.
var MonthNames = [12]string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

// MonthName returns the Portuguese name for a 1-12 month, or "" out of range.
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return MonthNames[month-1]
}
