package sanitize

import (
	"encoding/json"
	"math"

	"github.com/abyssmaljib/irene-training/internal/domain"
)

// CoachReply is the sanitized result of one coach model turn. Every field
// has a safe zero value so a garbled model response degrades instead of
// failing the request.
type CoachReply struct {
	AiMessage           string
	Progress            domain.PillarsProgress
	Content             domain.PillarContent
	IsComplete          bool
	ShowCoreValuePicker bool
	CurrentPillar       *int // 1..4, nil when the model isn't on a specific pillar
}

// coachPayload mirrors the JSON the model is instructed to return, with
// every leaf loosely typed. Coercion to domain types happens exactly once,
// below, and never again downstream.
type coachPayload struct {
	AiMessage           string          `json:"ai_message"`
	PillarsProgress     map[string]any  `json:"pillars_progress"`
	PillarContent       json.RawMessage `json:"pillar_content"`
	IsComplete          any             `json:"is_complete"`
	ShowCoreValuePicker any             `json:"show_core_value_picker"`
	CurrentPillar       any             `json:"current_pillar"`
}

type pillarContentPayload struct {
	WhyItMatters       any `json:"why_it_matters"`
	RootCause          any `json:"root_cause"`
	CoreValueAnalysis  any `json:"core_value_analysis"`
	ViolatedCoreValues any `json:"violated_core_values"`
	PreventionPlan     any `json:"prevention_plan"`
}

// ParseCoachReply runs the full sanitization pipeline on a raw coach model
// response: JSON extraction, parse, prose-field cleaning, strict coercion of
// every structured field, and the completeness override. Parse failure is a
// normal outcome: the reply then carries the extracted text as the message
// and defaults everywhere else.
func ParseCoachReply(raw string, allowedCoreValues []string) CoachReply {
	reply := CoachReply{
		Content: domain.PillarContent{ViolatedCoreValues: []string{}},
	}

	extracted := ExtractJSONObject(raw)

	var payload coachPayload
	if err := json.Unmarshal([]byte(extracted), &payload); err != nil {
		reply.AiMessage = extracted
		return reply
	}

	reply.AiMessage = CleanConversationalField(payload.AiMessage, CoachMetadataFields)

	if payload.PillarsProgress != nil {
		reply.Progress = domain.PillarsProgress{
			WhyItMatters:   boolField(payload.PillarsProgress["why_it_matters"]),
			RootCause:      boolField(payload.PillarsProgress["root_cause"]),
			CoreValues:     boolField(payload.PillarsProgress["core_values"]),
			PreventionPlan: boolField(payload.PillarsProgress["prevention_plan"]),
		}
	}

	if len(payload.PillarContent) > 0 {
		var content pillarContentPayload
		if err := json.Unmarshal(payload.PillarContent, &content); err == nil {
			reply.Content = domain.PillarContent{
				WhyItMatters:       stringField(content.WhyItMatters),
				RootCause:          stringField(content.RootCause),
				CoreValueAnalysis:  stringField(content.CoreValueAnalysis),
				ViolatedCoreValues: filterAllowed(content.ViolatedCoreValues, allowedCoreValues),
				PreventionPlan:     stringField(content.PreventionPlan),
			}
		}
	}

	reply.IsComplete = boolField(payload.IsComplete)
	reply.ShowCoreValuePicker = boolField(payload.ShowCoreValuePicker)
	reply.CurrentPillar = pillarField(payload.CurrentPillar)

	// The model sometimes reports every pillar done without setting the
	// overall flag. Completeness is derived here, not trusted.
	if reply.Progress.AllTrue() && !reply.IsComplete {
		reply.IsComplete = true
	}

	return reply
}

// boolField accepts only exact boolean true. No truthy coercion.
func boolField(v any) bool {
	b, ok := v.(bool)
	return ok && b
}

// stringField passes through non-empty strings, anything else becomes nil.
func stringField(v any) *string {
	s, ok := v.(string)
	if !ok || s == "" {
		return nil
	}
	return &s
}

// pillarField accepts only integers 1..4.
func pillarField(v any) *int {
	f, ok := v.(float64)
	if !ok || f != math.Trunc(f) {
		return nil
	}
	n := int(f)
	if n < 1 || n > 4 {
		return nil
	}
	return &n
}

// filterAllowed keeps only values on the allow-list, preserving their
// original relative order.
func filterAllowed(v any, allowed []string) []string {
	items, ok := v.([]any)
	if !ok {
		return []string{}
	}
	allowedSet := make(map[string]struct{}, len(allowed))
	for _, a := range allowed {
		allowedSet[a] = struct{}{}
	}
	out := []string{}
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			continue
		}
		if _, ok := allowedSet[s]; ok {
			out = append(out, s)
		}
	}
	return out
}
