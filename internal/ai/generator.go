package ai

import (
	"context"

	"github.com/abyssmaljib/irene-training/internal/domain"
)

// Request is one text-generation call. Messages are optional: flows that
// only need a single prompt put it in Prompt and leave Messages nil.
type Request struct {
	System      string
	Prompt      string
	Messages    []domain.ChatMessage
	Temperature float32
	MaxTokens   int32
	JSONMode    bool
}

// Generator produces model text for a request. Services depend on this
// interface; tests swap in a fake.
type Generator interface {
	Generate(ctx context.Context, req Request) (string, error)
}
