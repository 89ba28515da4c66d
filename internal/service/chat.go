package service

import (
	"context"
	"math/rand"
	"strings"

	"docchat/internal/nlp"
)

// Canned conversational replies, matched over the normalized message.
// Greetings and thanks short-circuit the query pipeline entirely.
var (
	greetingTokens = []string{"ola", "oi", "bom dia", "boa tarde", "boa noite", "hello", "hi"}
	thanksTokens   = []string{"obrigado", "obrigada", "agradecido", "agradecida", "valeu", "thanks"}

	welcomeReplies = []string{
		"Olá! Bem-vindo ao assistente de documentos. Como posso ajudar?",
		"Olá! Estou aqui para ajudar com a recuperação de documentos. O que precisa?",
		"Bem-vindo! Posso ajudar a encontrar faturas ou guias de transporte. Como posso ajudar?",
	}
	greetingReplies = []string{
		"Olá! Como posso ajudar com os documentos hoje?",
		"Olá! Precisa de alguma fatura ou guia de transporte?",
		"Olá! Estou aqui para ajudar a encontrar documentos. O que precisa?",
	}
	thanksReplies = []string{
		"De nada! Estou aqui para ajudar.",
		"Disponha! Precisa de mais alguma coisa?",
		"Por nada! Se precisar de mais documentos, é só pedir.",
	}
)

// ChatService is the conversational front door: it answers greetings and
// thanks with canned replies and routes everything else through the query
// resolver and presenter.
type ChatService interface {
	// Welcome returns the greeting shown when a conversation opens.
	Welcome() Message

	// Reply processes one user message and returns the bot's messages.
	// It never returns an error: resolution faults surface as apologetic
	// chat replies.
	Reply(ctx context.Context, message string) []Message
}

type chatService struct {
	queries   QueryService
	presenter *Presenter
}

// NewChatService constructs a ChatService.
func NewChatService(queries QueryService, presenter *Presenter) ChatService {
	return &chatService{queries: queries, presenter: presenter}
}

func (s *chatService) Welcome() Message {
	return Message{Text: pick(welcomeReplies)}
}

func (s *chatService) Reply(ctx context.Context, message string) []Message {
	normalized := nlp.Normalize(message)

	if containsAny(normalized, greetingTokens) {
		return []Message{{Text: pick(greetingReplies)}}
	}
	if containsAny(normalized, thanksTokens) {
		return []Message{{Text: pick(thanksReplies)}}
	}

	res := s.queries.Resolve(ctx, message)
	return s.presenter.Present(ctx, res)
}

func containsAny(normalized string, tokens []string) bool {
	for _, tok := range tokens {
		if strings.Contains(normalized, tok) {
			return true
		}
	}
	return false
}

func pick(replies []string) string {
	return replies[rand.Intn(len(replies))]
}
