package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/Kendal-dot/racebuddy/internal/llm"
)

// --- Error Definitions ---
var (
	ErrChatUnavailable = errors.New("chat assistant is unavailable")
)

const systemPrompt = "You are RaceBuddy, a running coach assistant. Answer questions about the " +
	"race and about training for it. Be concrete and practical. Use the provided race context " +
	"when it is relevant; say so when you do not know."

// maxContextSnippets bounds how much retrieved text goes into the prompt.
const maxContextSnippets = 4

// ChatService answers free-form questions about races and training.
// It is fully independent of the plan generator: the two share nothing
// beyond being reachable from the same HTTP layer.
type ChatService interface {
	Ask(ctx context.Context, message string, history []llm.Message) (string, error)
}

type chatService struct {
	client      *llm.Client
	temperature float64
	maxTokens   int
	snippets    []knowledgeSnippet
}

// knowledgeSnippet is one retrievable piece of race knowledge.
type knowledgeSnippet struct {
	Topic string
	Text  string
}

// NewChatService builds the assistant over the race catalogue: race
// descriptions, challenges and tips become the retrieval corpus.
func NewChatService(client *llm.Client, raceService RaceService, temperature float64, maxTokens int) ChatService {
	s := &chatService{
		client:      client,
		temperature: temperature,
		maxTokens:   maxTokens,
	}
	for _, race := range raceService.ListRaces() {
		s.snippets = append(s.snippets, knowledgeSnippet{
			Topic: race.Name,
			Text: fmt.Sprintf("%s: %s Distance %.0f km, elevation gain %d m. Conditions: %s.",
				race.Name, race.Description, race.DistanceKm, race.ElevationGainM, race.TypicalConditions),
		})
		for _, ch := range race.KeyChallenges {
			s.snippets = append(s.snippets, knowledgeSnippet{Topic: race.Name + " course", Text: ch})
		}
		tips, err := raceService.GetTips(race.ID)
		if err != nil {
			continue
		}
		for _, tip := range tips {
			s.snippets = append(s.snippets, knowledgeSnippet{
				Topic: tip.Category,
				Text:  fmt.Sprintf("%s. %s", tip.Tip, tip.Rationale),
			})
		}
	}
	return s
}

// Ask retrieves the most relevant knowledge snippets for the question,
// prepends them as context and asks the model.
func (s *chatService) Ask(ctx context.Context, message string, history []llm.Message) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", errors.New("message cannot be empty")
	}
	if s.client == nil {
		return "", ErrChatUnavailable
	}

	messages := []llm.Message{{Role: "system", Content: systemPrompt}}
	if raceContext := s.retrieve(message); raceContext != "" {
		messages = append(messages, llm.Message{Role: "system", Content: "Race context:\n" + raceContext})
	}
	messages = append(messages, history...)
	messages = append(messages, llm.Message{Role: "user", Content: message})

	reply, err := s.client.Chat(ctx, messages, s.temperature, s.maxTokens)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrChatUnavailable, err)
	}
	return reply, nil
}

// retrieve scores snippets by keyword overlap with the question and
// returns the best few joined into one context block.
func (s *chatService) retrieve(message string) string {
	words := tokenize(message)
	if len(words) == 0 {
		return ""
	}

	type scored struct {
		snippet knowledgeSnippet
		score   int
	}
	var ranked []scored
	for _, sn := range s.snippets {
		text := strings.ToLower(sn.Topic + " " + sn.Text)
		score := 0
		for w := range words {
			if strings.Contains(text, w) {
				score++
			}
		}
		if score > 0 {
			ranked = append(ranked, scored{snippet: sn, score: score})
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })

	if len(ranked) > maxContextSnippets {
		ranked = ranked[:maxContextSnippets]
	}
	parts := make([]string, 0, len(ranked))
	for _, r := range ranked {
		parts = append(parts, fmt.Sprintf("[%s] %s", r.snippet.Topic, r.snippet.Text))
	}
	return strings.Join(parts, "\n")
}

// tokenize lowercases the question and keeps words long enough to be
// meaningful match terms.
func tokenize(message string) map[string]struct{} {
	words := make(map[string]struct{})
	for _, w := range strings.Fields(strings.ToLower(message)) {
		w = strings.Trim(w, ".,!?:;\"'()")
		if len(w) >= 4 {
			words[w] = struct{}{}
		}
	}
	return words
}
