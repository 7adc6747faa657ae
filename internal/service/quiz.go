package service

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/abyssmaljib/irene-training/internal/ai"
	"github.com/abyssmaljib/irene-training/internal/sanitize"
)

// QuizOptions are the three answer choices.
type QuizOptions struct {
	A string `json:"A"`
	B string `json:"B"`
	C string `json:"C"`
}

// Quiz is one generated multiple-choice question.
type Quiz struct {
	Question      string      `json:"question"`
	Options       QuizOptions `json:"options"`
	CorrectAnswer string      `json:"correct_answer"`
}

// QuizService turns training material into quiz questions.
type QuizService struct {
	generator ai.Generator
	logger    *zap.Logger
}

func NewQuizService(generator ai.Generator, logger *zap.Logger) *QuizService {
	return &QuizService{generator: generator, logger: logger}
}

func (s *QuizService) Generate(ctx context.Context, text string) (*Quiz, error) {
	prompt := fmt.Sprintf(`%s

Here is the material to create a quiz from:
---
%s
---

Create one quiz question based on this material. Respond with JSON only.`, quizSystemPrompt, text)

	raw, err := s.generator.Generate(ctx, ai.Request{
		Prompt:      prompt,
		Temperature: 0.7,
		MaxTokens:   1024,
		JSONMode:    true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate quiz: %w", err)
	}

	var quiz Quiz
	if err := json.Unmarshal([]byte(raw), &quiz); err != nil {
		extracted := sanitize.ExtractLooseJSON(raw)
		if err := json.Unmarshal([]byte(extracted), &quiz); err != nil {
			return nil, fmt.Errorf("failed to parse quiz: %w", err)
		}
	}

	if quiz.Question == "" || quiz.CorrectAnswer == "" ||
		(quiz.Options.A == "" && quiz.Options.B == "" && quiz.Options.C == "") {
		return nil, fmt.Errorf("invalid quiz structure from model")
	}

	switch quiz.CorrectAnswer {
	case "A", "B", "C":
	default:
		quiz.CorrectAnswer = "A"
	}

	s.logger.Info("quiz generated", zap.String("question", truncate(quiz.Question, 50)))

	return &quiz, nil
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
