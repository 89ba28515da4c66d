package nlp

import (
	"regexp"
	"strings"

	"docchat/internal/model"
)

// clientPattern matches a client number inside free text: the letter "c"
// followed by at least 3 digits. The source is normalized first, so the
// pattern only needs the lowercase form. Extraction is deliberately liberal
// (any substring match); strict shape validation happens downstream before
// the id is used as a store key.
var clientPattern = regexp.MustCompile(`c\d{3,}`)

// ExtractClient returns the first client number found in the query with the
// leading letter forced to uppercase ("C001"), or "" when none is present.
func ExtractClient(query string) string {
	m := clientPattern.FindString(Normalize(query))
	if m == "" {
		return ""
	}
	return "C" + m[1:]
}

// ExtractType returns the first document type whose synonym set has a
// substring match in the normalized query, checking types in declaration
// order (invoices before transport guides). Returns "" when no synonym
// matches. A query naming both categories resolves to the first declared
// one; that precision limit is accepted behavior.
func ExtractType(query string) model.DocumentType {
	normalized := Normalize(query)
	for _, t := range model.DocumentTypes {
		for _, syn := range t.Synonyms() {
			if strings.Contains(normalized, Normalize(syn)) {
				return t
			}
		}
	}
	return ""
}

// months maps normalized Portuguese month names to month numbers. "março"
// collapses to "marco" under normalization, so one entry covers both.
var months = map[string]int{
	"janeiro": 1, "fevereiro": 2, "marco": 3,
	"abril": 4, "maio": 5, "junho": 6, "julho": 7,
	"agosto": 8, "setembro": 9, "outubro": 10,
	"novembro": 11, "dezembro": 12,
}

// monthOrder fixes the scan order; map iteration order would make extraction
// nondeterministic when a query names several months.
var monthOrder = []string{
	"janeiro", "fevereiro", "marco", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// ExtractMonth returns the 1-12 month number named in the query, or 0 when
// none is present. Months only filter and narrate results after retrieval;
// they do not participate in the store lookup.
func ExtractMonth(query string) int {
	normalized := Normalize(query)
	for _, name := range monthOrder {
		if strings.Contains(normalized, name) {
			return months[name]
		}
	}
	return 0
}

// Query holds the entities extracted from one raw query.
type Query struct {
	Client string             // "" when the query named no client
	Type   model.DocumentType // "" when no category was named
	Month  int                // 0 when no month was named
}

// Parse runs all three extractors over the raw query.
func Parse(raw string) Query {
	return Query{
		Client: ExtractClient(raw),
		Type:   ExtractType(raw),
		Month:  ExtractMonth(raw),
	}
}
