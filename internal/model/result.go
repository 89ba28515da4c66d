package model

// ResultKind tags the outcome of resolving a query. Exactly one of the
// QueryResult branches is meaningful for a given kind.
type ResultKind int

const (
	// ResultSuccess carries one or more documents.
	ResultSuccess ResultKind = iota
	// ResultEmpty means the query was well-formed but matched nothing,
	// or the store lookup failed and was downgraded.
	ResultEmpty
	// ResultInvalid means the query failed validation before any lookup.
	ResultInvalid
)

// Reason is the machine-readable code attached to non-success outcomes.
type Reason string

const (
	ReasonNotFound      Reason = "documentos_nao_encontrados"
	ReasonInvalidClient Reason = "formato_cliente_invalido"
	ReasonInternalError Reason = "erro_interno"
)

// QueryResult is the outcome of resolving one natural-language query.
// Success carries Documents; Empty and Invalid carry Reason plus a
// human-readable Portuguese Message. The extracted entities (Client, Type,
// Month) are always carried so the presenter can narrate what was asked.
type QueryResult struct {
	Kind      ResultKind
	Documents []Document
	Reason    Reason
	Message   string

	// Entities extracted from the query. Client is "" when the query named
	// no client (cross-client mode); Type is "" when no category was named;
	// Month is 0 when no month was named.
	Client string
	Type   DocumentType
	Month  int
}

// Success builds a success result.
func Success(docs []Document) QueryResult {
	return QueryResult{Kind: ResultSuccess, Documents: docs}
}

// Empty builds an empty (no documents) result with a reason and message.
func Empty(reason Reason, message string) QueryResult {
	return QueryResult{Kind: ResultEmpty, Reason: reason, Message: message}
}

// Invalid builds a validation-error result with a reason and message.
func Invalid(reason Reason, message string) QueryResult {
	return QueryResult{Kind: ResultInvalid, Reason: reason, Message: message}
}
