package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"docchat/internal/model"
	"docchat/internal/storage"
)

// Message is one renderable chat reply. Either Text or Document is set.
// Document messages carry a Link the UI can open: a presigned storage URL
// when object storage is configured, otherwise the raw storage path.
type Message struct {
	Text     string          `json:"text,omitempty"`
	Document *model.Document `json:"document,omitempty"`
	Link     string          `json:"link,omitempty"`
}

// clientGroup holds one client's documents split by type, invoices first.
type clientGroup struct {
	invoices []model.Document
	guides   []model.Document
}

// Presenter turns a resolved query result into chat messages: it applies the
// month filter, groups documents per client and per type, and builds the
// Portuguese summary narration.
type Presenter struct {
	store      storage.Storage // nil when no object storage is configured
	linkExpiry time.Duration
}

// NewPresenter constructs a Presenter. store may be nil; document links then
// fall back to the raw storage path.
func NewPresenter(store storage.Storage, linkExpiry time.Duration) *Presenter {
	if linkExpiry <= 0 {
		linkExpiry = 15 * time.Minute
	}
	return &Presenter{store: store, linkExpiry: linkExpiry}
}

// Present renders a query result. Non-success outcomes become a single text
// message; success results are month-filtered, grouped and narrated in
// single-client or all-clients mode depending on whether the query named a
// client.
func (p *Presenter) Present(ctx context.Context, res model.QueryResult) []Message {
	if res.Kind != model.ResultSuccess {
		return []Message{{Text: res.Message}}
	}

	docs := filterByMonth(res.Documents, res.Month)
	if len(docs) == 0 {
		return []Message{{Text: notFoundNarration(res.Month, res.Client)}}
	}

	order, groups := groupByClient(docs)

	if res.Client != "" {
		return p.presentSingleClient(ctx, res.Client, groups[res.Client], res.Month)
	}
	return p.presentAllClients(ctx, order, groups, res.Month)
}

// filterByMonth keeps documents whose date falls in the given calendar
// month, across any year. Month 0 means no filtering.
func filterByMonth(docs []model.Document, month int) []model.Document {
	if month == 0 {
		return docs
	}
	out := make([]model.Document, 0, len(docs))
	for _, d := range docs {
		if d.Month() == month {
			out = append(out, d)
		}
	}
	return out
}

// groupByClient buckets documents by the client id derived from their
// storage path, preserving the encounter order of clients.
func groupByClient(docs []model.Document) ([]string, map[string]*clientGroup) {
	order := make([]string, 0)
	groups := make(map[string]*clientGroup)
	for _, d := range docs {
		id := d.Client()
		g, ok := groups[id]
		if !ok {
			g = &clientGroup{}
			groups[id] = g
			order = append(order, id)
		}
		if d.Type == model.TypeTransportGuide {
			g.guides = append(g.guides, d)
		} else {
			g.invoices = append(g.invoices, d)
		}
	}
	return order, groups
}

// countPhrase builds "2 faturas e 1 CMR"-style phrases. Types with zero
// documents contribute nothing.
func (g *clientGroup) countPhrase() string {
	parts := make([]string, 0, 2)
	if n := len(g.invoices); n > 0 {
		parts = append(parts, fmt.Sprintf("%d %s", n, model.TypeInvoice.CountLabel(n)))
	}
	if n := len(g.guides); n > 0 {
		parts = append(parts, fmt.Sprintf("%d %s", n, model.TypeTransportGuide.CountLabel(n)))
	}
	return strings.Join(parts, " e ")
}

// ordered returns the group's documents with invoices before transport guides.
func (g *clientGroup) ordered() []model.Document {
	out := make([]model.Document, 0, len(g.invoices)+len(g.guides))
	out = append(out, g.invoices...)
	out = append(out, g.guides...)
	return out
}

func (p *Presenter) presentSingleClient(ctx context.Context, clientID string, g *clientGroup, month int) []Message {
	if g == nil {
		// The requested client contributed no documents to the result; the
		// liberal path-derived grouping can disagree with the lookup key
		// only for malformed dataset paths.
		return []Message{{Text: notFoundNarration(month, clientID)}}
	}
	msgs := []Message{{Text: fmt.Sprintf("Encontrei %s%s para o cliente %s.", g.countPhrase(), monthSuffix(month), clientID)}}
	return append(msgs, p.documentMessages(ctx, g.ordered())...)
}

func (p *Presenter) presentAllClients(ctx context.Context, order []string, groups map[string]*clientGroup, month int) []Message {
	msgs := []Message{{Text: fmt.Sprintf("Encontrei os seguintes documentos%s:", monthSuffix(month))}}
	for _, id := range order {
		g := groups[id]
		msgs = append(msgs, Message{Text: fmt.Sprintf("Cliente %s: %s", id, g.countPhrase())})
		msgs = append(msgs, p.documentMessages(ctx, g.ordered())...)
	}
	return msgs
}

// documentMessages renders one message per document, resolving links.
func (p *Presenter) documentMessages(ctx context.Context, docs []model.Document) []Message {
	msgs := make([]Message, 0, len(docs))
	for i := range docs {
		d := docs[i]
		msgs = append(msgs, Message{Document: &d, Link: p.link(ctx, d)})
	}
	return msgs
}

// link resolves the document's download link. Presign failures fall back to
// the raw path: a degraded link must not fail the whole reply.
func (p *Presenter) link(ctx context.Context, d model.Document) string {
	if p.store == nil {
		return d.Path
	}
	u, err := p.store.PresignGet(ctx, d.Path, p.linkExpiry)
	if err != nil {
		return d.Path
	}
	return u
}

// monthSuffix renders " de Fevereiro" for a set month, "" otherwise.
func monthSuffix(month int) string {
	if name := model.MonthName(month); name != "" {
		return " de " + name
	}
	return ""
}

// notFoundNarration builds the "nothing after filtering" sentence,
// mentioning the month and client when the query named them.
func notFoundNarration(month int, clientID string) string {
	msg := "Não encontrei documentos"
	if name := model.MonthName(month); name != "" {
		msg += " de " + name
	}
	if clientID != "" {
		msg += " para o cliente " + clientID
	}
	return msg + "."
}
