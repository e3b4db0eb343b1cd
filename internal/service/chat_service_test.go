package service

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func newTestChatService(t *testing.T) *chatService {
	t.Helper()
	s, ok := NewChatService(nil, NewRaceService(), 0.2, 500).(*chatService)
	if !ok {
		t.Fatal("NewChatService did not return a *chatService")
	}
	return s
}

func TestRetrieveFindsRelevantSnippets(t *testing.T) {
	s := newTestChatService(t)

	tests := []struct {
		name     string
		question string
		wantWord string
	}{
		{name: "terrain question", question: "How technical is the terrain on the course?", wantWord: "technical"},
		{name: "hill question", question: "Should I do hill training for the climbs?", wantWord: "climb"},
		{name: "race name", question: "Tell me about Lidingöloppet", wantWord: "Lidingöloppet"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.retrieve(tt.question)
			if got == "" {
				t.Fatalf("retrieve(%q) returned no context", tt.question)
			}
			if !strings.Contains(strings.ToLower(got), strings.ToLower(tt.wantWord)) {
				t.Errorf("retrieve(%q) context missing %q:\n%s", tt.question, tt.wantWord, got)
			}
		})
	}
}

func TestRetrieveBoundsContextSize(t *testing.T) {
	s := newTestChatService(t)

	// A question overlapping nearly every snippet must still be capped.
	got := s.retrieve("race training course terrain hills distance pacing energy")
	lines := 0
	if got != "" {
		lines = len(strings.Split(got, "\n"))
	}
	if lines > maxContextSnippets {
		t.Errorf("retrieve() returned %d snippets, cap is %d", lines, maxContextSnippets)
	}
}

func TestRetrieveNoMatch(t *testing.T) {
	s := newTestChatService(t)
	if got := s.retrieve("zzzz qqqq"); got != "" {
		t.Errorf("retrieve(nonsense) = %q, want empty", got)
	}
}

func TestAskRejectsEmptyMessage(t *testing.T) {
	s := newTestChatService(t)
	if _, err := s.Ask(context.Background(), "   ", nil); err == nil {
		t.Error("Ask(blank message) did not return an error")
	}
}

func TestAskWithoutClientUnavailable(t *testing.T) {
	s := newTestChatService(t)
	_, err := s.Ask(context.Background(), "How should I pace the race?", nil)
	if !errors.Is(err, ErrChatUnavailable) {
		t.Errorf("Ask() without client error = %v, want ErrChatUnavailable", err)
	}
}

func TestTokenize(t *testing.T) {
	words := tokenize("How hard are the HILLS, really? Go!")
	if _, ok := words["hills"]; !ok {
		t.Error("tokenize() dropped 'hills'")
	}
	if _, ok := words["how"]; ok {
		t.Error("tokenize() kept short word 'how'")
	}
	if _, ok := words["go"]; ok {
		t.Error("tokenize() kept short word 'go'")
	}
}
