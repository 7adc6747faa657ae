package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/abyssmaljib/irene-training/internal/ai"
	"github.com/abyssmaljib/irene-training/internal/domain"
	"github.com/abyssmaljib/irene-training/internal/repository"
	"github.com/abyssmaljib/irene-training/internal/sanitize"
)

// fallbackCoreValueCodes validates model-suggested codes when the DB has no
// user-picked values to prefer.
var fallbackCoreValueCodes = []string{
	"SPEAK_UP", "SERVICE_MIND", "SYSTEM_FOCUS", "INTEGRITY", "LEARNING", "TEAMWORK",
}

// IncidentSummary is the four-pillars digest of a finished coaching chat.
type IncidentSummary struct {
	WhyItMatters       string   `json:"why_it_matters"`
	RootCause          string   `json:"root_cause"`
	CoreValueAnalysis  string   `json:"core_value_analysis"`
	ViolatedCoreValues []string `json:"violated_core_values"`
	PreventionPlan     string   `json:"prevention_plan"`
	IsComplete         bool     `json:"is_complete"`
}

// IncidentSummaryService distills a coaching conversation into the four
// pillars, preferring the core values the user already picked over anything
// the model suggests.
type IncidentSummaryService struct {
	incidents repository.IncidentsRepo
	generator ai.Generator
	logger    *zap.Logger
}

func NewIncidentSummaryService(incidents repository.IncidentsRepo, generator ai.Generator, logger *zap.Logger) *IncidentSummaryService {
	return &IncidentSummaryService{incidents: incidents, generator: generator, logger: logger}
}

func (s *IncidentSummaryService) Summarize(ctx context.Context, incidentID int64, history []domain.ChatMessage) (*IncidentSummary, error) {
	// values the user picked during the chat; a read failure only means we
	// fall back to the model's suggestion
	var savedViolated []string
	if pillars, err := s.incidents.GetPillars(ctx, incidentID); err != nil {
		s.logger.Warn("failed to load incident pillars",
			zap.Int64("incident_id", incidentID), zap.Error(err))
	} else {
		savedViolated = pillars.ViolatedCoreValues
	}

	lines := make([]string, len(history))
	for i, msg := range history {
		speaker := "AI Coach"
		if msg.Role == "user" {
			speaker = "พนักงาน"
		}
		lines[i] = speaker + ": " + msg.Content
	}
	prompt := strings.Replace(incidentSummaryPrompt, "{CONVERSATION}", strings.Join(lines, "\n"), 1)

	raw, err := s.generator.Generate(ctx, ai.Request{
		Prompt:      prompt,
		Temperature: 0.3,
		JSONMode:    true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate incident summary: %w", err)
	}

	var summary IncidentSummary
	if err := json.Unmarshal([]byte(raw), &summary); err != nil {
		// JSON mode usually prevents this, but the model can still wrap
		// the object in prose
		extracted := sanitize.ExtractLooseJSON(raw)
		if err := json.Unmarshal([]byte(extracted), &summary); err != nil {
			return nil, fmt.Errorf("failed to parse incident summary: %w", err)
		}
	}

	if len(savedViolated) > 0 {
		summary.ViolatedCoreValues = savedViolated
	} else {
		summary.ViolatedCoreValues = normalizeCoreValueCodes(summary.ViolatedCoreValues)
	}

	summary.IsComplete = summary.WhyItMatters != "" &&
		summary.RootCause != "" &&
		summary.CoreValueAnalysis != "" &&
		len(summary.ViolatedCoreValues) > 0 &&
		summary.PreventionPlan != ""

	s.logger.Info("incident summary generated",
		zap.Int64("incident_id", incidentID),
		zap.Bool("is_complete", summary.IsComplete),
	)

	return &summary, nil
}

// normalizeCoreValueCodes uppercases and filters against the known codes.
func normalizeCoreValueCodes(values []string) []string {
	valid := make(map[string]struct{}, len(fallbackCoreValueCodes))
	for _, code := range fallbackCoreValueCodes {
		valid[code] = struct{}{}
	}
	out := []string{}
	for _, v := range values {
		code := strings.ToUpper(v)
		if _, ok := valid[code]; ok {
			out = append(out, code)
		}
	}
	return out
}
