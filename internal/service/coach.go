package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/abyssmaljib/irene-training/internal/ai"
	"github.com/abyssmaljib/irene-training/internal/domain"
	"github.com/abyssmaljib/irene-training/internal/repository"
	"github.com/abyssmaljib/irene-training/internal/sanitize"
)

// CoachRequest is one user turn of the incident coaching chat.
type CoachRequest struct {
	IncidentID          int64                `json:"incident_id"`
	Message             string               `json:"message"`
	ChatHistory         []domain.ChatMessage `json:"chat_history"`
	IncidentTitle       string               `json:"incident_title,omitempty"`
	IncidentDescription string               `json:"incident_description,omitempty"`
	UserName            string               `json:"user_name,omitempty"`
}

// CoachCoreValue is the core-value subset sent back for the picker UI.
type CoachCoreValue struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// CoachResponse is the sanitized coach turn the app renders directly.
type CoachResponse struct {
	AiMessage           string                 `json:"ai_message"`
	PillarsProgress     domain.PillarsProgress `json:"pillars_progress"`
	PillarContent       domain.PillarContent   `json:"pillar_content"`
	IsComplete          bool                   `json:"is_complete"`
	ShowCoreValuePicker bool                   `json:"show_core_value_picker"`
	CurrentPillar       *int                   `json:"current_pillar"`
	AvailableCoreValues []CoachCoreValue       `json:"available_core_values,omitempty"`
}

// CoachService runs the 5 Whys coaching conversation.
type CoachService struct {
	config     repository.AIConfigRepo
	coreValues repository.CoreValuesRepo
	incidents  repository.IncidentsRepo
	generator  ai.Generator
	logger     *zap.Logger
}

func NewCoachService(
	config repository.AIConfigRepo,
	coreValues repository.CoreValuesRepo,
	incidents repository.IncidentsRepo,
	generator ai.Generator,
	logger *zap.Logger,
) *CoachService {
	return &CoachService{
		config:     config,
		coreValues: coreValues,
		incidents:  incidents,
		generator:  generator,
		logger:     logger,
	}
}

// Chat sends one user message through the coach model and returns the
// sanitized reply. Context fetches that fail fall back to defaults so a
// degraded DB never blocks the conversation.
func (s *CoachService) Chat(ctx context.Context, req CoachRequest) (*CoachResponse, error) {
	var (
		wg           sync.WaitGroup
		systemPrompt string
		coreValues   []domain.CoreValue
		incident     *domain.Incident
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		value, err := s.config.GetValue(ctx, repository.ConfigKeyCoachPrompt)
		if err != nil || value == "" {
			if err != nil {
				s.logger.Warn("failed to load coach prompt, using default", zap.Error(err))
			}
			systemPrompt = defaultCoachPrompt
			return
		}
		systemPrompt = value
	}()
	go func() {
		defer wg.Done()
		values, err := s.coreValues.ListActive(ctx)
		if err != nil {
			s.logger.Warn("failed to load core values", zap.Error(err))
			return
		}
		coreValues = values
	}()
	go func() {
		defer wg.Done()
		inc, err := s.incidents.Get(ctx, req.IncidentID)
		if err != nil {
			s.logger.Warn("failed to load incident",
				zap.Int64("incident_id", req.IncidentID), zap.Error(err))
			return
		}
		incident = inc
	}()
	wg.Wait()

	coreValuesText := formatCoreValuesForPrompt(coreValues)
	coreValueNames := make([]string, len(coreValues))
	for i, cv := range coreValues {
		coreValueNames[i] = cv.Name
	}

	userName := req.UserName
	if userName == "" {
		userName = "คุณ"
	}

	if incident == nil {
		incident = &domain.Incident{}
	}
	description := firstNonEmpty(req.IncidentDescription, incident.Description, "ไม่ระบุ")
	title := firstNonEmpty(req.IncidentTitle, incident.Title, "ไม่ระบุ")

	processed := strings.NewReplacer(
		"{{USER_NAME}}", userName,
		"{{INCIDENT_DESCRIPTION}}", description,
		"{{CORE_VALUES_LIST}}", coreValuesText,
	).Replace(systemPrompt)

	enhancedPrompt := fmt.Sprintf(`%s

## Core Values ที่ใช้วิเคราะห์:
%s

## เหตุการณ์ที่กำลังถอดบทเรียน:
- หัวข้อ: %s
- รายละเอียด: %s
- หมวดหมู่: %s
- ความรุนแรง: %s

%s`,
		processed,
		coreValuesText,
		title,
		description,
		firstNonEmpty(incident.Category, "ไม่ระบุ"),
		firstNonEmpty(incident.Severity, "ไม่ระบุ"),
		coachResponseRules,
	)

	// prime the history with the contract and a conforming model ack so
	// every later turn stays in JSON
	messages := make([]domain.ChatMessage, 0, len(req.ChatHistory)+2)
	messages = append(messages,
		domain.ChatMessage{Role: "user", Content: enhancedPrompt},
		domain.ChatMessage{Role: "assistant", Content: coachPrimerAck},
	)
	messages = append(messages, req.ChatHistory...)

	raw, err := s.generator.Generate(ctx, ai.Request{
		Messages:    messages,
		Prompt:      req.Message,
		Temperature: 0.7,
		MaxTokens:   1500,
		JSONMode:    true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate coach reply: %w", err)
	}

	reply := sanitize.ParseCoachReply(raw, coreValueNames)

	s.logger.Info("coach reply generated",
		zap.Int64("incident_id", req.IncidentID),
		zap.Bool("is_complete", reply.IsComplete),
		zap.Bool("show_core_value_picker", reply.ShowCoreValuePicker),
	)

	resp := &CoachResponse{
		AiMessage:           reply.AiMessage,
		PillarsProgress:     reply.Progress,
		PillarContent:       reply.Content,
		IsComplete:          reply.IsComplete,
		ShowCoreValuePicker: reply.ShowCoreValuePicker,
		CurrentPillar:       reply.CurrentPillar,
	}
	if reply.ShowCoreValuePicker {
		resp.AvailableCoreValues = make([]CoachCoreValue, len(coreValues))
		for i, cv := range coreValues {
			resp.AvailableCoreValues[i] = CoachCoreValue{
				ID:          cv.ID,
				Name:        cv.Name,
				Description: cv.Description,
			}
		}
	}
	return resp, nil
}

// formatCoreValuesForPrompt renders one core value per line, e.g.
// "- Speak Up (กล้าพูด กล้าสื่อสาร): description".
func formatCoreValuesForPrompt(values []domain.CoreValue) string {
	lines := make([]string, len(values))
	for i, cv := range values {
		line := "- " + cv.Name
		if cv.Description != nil && *cv.Description != "" {
			line += ": " + *cv.Description
		}
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
