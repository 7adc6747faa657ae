package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/abyssmaljib/irene-training/internal/ai"
)

// SummarizeService rewrites long text as plain Thai bullet points.
type SummarizeService struct {
	generator ai.Generator
	logger    *zap.Logger
}

func NewSummarizeService(generator ai.Generator, logger *zap.Logger) *SummarizeService {
	return &SummarizeService{generator: generator, logger: logger}
}

func (s *SummarizeService) Summarize(ctx context.Context, text string) (string, error) {
	prompt := fmt.Sprintf(`%s

ข้อความที่ต้องการสรุป:
%s

%s`, summarizeSystemPrompt, text, summarizeFormatInstruction)

	// no token cap: the summary must keep every instruction intact
	content, err := s.generator.Generate(ctx, ai.Request{
		Prompt:      prompt,
		Temperature: 0.5,
	})
	if err != nil {
		return "", fmt.Errorf("failed to summarize text: %w", err)
	}

	s.logger.Info("text summarized", zap.Int("input_len", len(text)), zap.Int("output_len", len(content)))

	return content, nil
}
