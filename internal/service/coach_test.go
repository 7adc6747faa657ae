package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/abyssmaljib/irene-training/internal/ai"
	"github.com/abyssmaljib/irene-training/internal/domain"
)

// fakeGenerator records the last request and returns a canned response.
type fakeGenerator struct {
	response string
	err      error
	lastReq  ai.Request
}

func (f *fakeGenerator) Generate(ctx context.Context, req ai.Request) (string, error) {
	f.lastReq = req
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

type fakeConfigRepo struct {
	values map[string]string
	err    error
}

func (f *fakeConfigRepo) GetValue(ctx context.Context, key string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.values[key], nil
}

type fakeCoreValuesRepo struct {
	values []domain.CoreValue
	err    error
}

func (f *fakeCoreValuesRepo) ListActive(ctx context.Context) ([]domain.CoreValue, error) {
	return f.values, f.err
}

type fakeIncidentsRepo struct {
	incident *domain.Incident
	pillars  *domain.IncidentPillars
	err      error
}

func (f *fakeIncidentsRepo) Get(ctx context.Context, id int64) (*domain.Incident, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.incident, nil
}

func (f *fakeIncidentsRepo) GetPillars(ctx context.Context, id int64) (*domain.IncidentPillars, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.pillars, nil
}

func speakUp() domain.CoreValue {
	return domain.CoreValue{ID: 1, Name: "Speak Up (กล้าพูด กล้าสื่อสาร)"}
}

func newCoachService(gen *fakeGenerator) *CoachService {
	return NewCoachService(
		&fakeConfigRepo{values: map[string]string{}},
		&fakeCoreValuesRepo{values: []domain.CoreValue{speakUp()}},
		&fakeIncidentsRepo{incident: &domain.Incident{
			Title: "ลืมให้ยา", Description: "ลืมให้ยามื้อเช้า", Category: "medication", Severity: "low",
		}},
		gen,
		zap.NewNop(),
	)
}

func TestCoachChat(t *testing.T) {
	gen := &fakeGenerator{response: `{"ai_message": "เล่าให้ฟังหน่อยค่ะ", "pillars_progress": {"why_it_matters": true, "root_cause": false, "core_values": false, "prevention_plan": false}, "pillar_content": {"why_it_matters": "เสี่ยงต่อผู้พัก", "root_cause": null, "core_value_analysis": null, "violated_core_values": ["Speak Up (กล้าพูด กล้าสื่อสาร)"], "prevention_plan": null}, "is_complete": false, "show_core_value_picker": false, "current_pillar": 2}`}
	svc := newCoachService(gen)

	resp, err := svc.Chat(context.Background(), CoachRequest{
		IncidentID: 5,
		Message:    "หนูลืมดูตารางยาค่ะ",
		UserName:   "จิ๊บ",
	})
	require.NoError(t, err)

	assert.Equal(t, "เล่าให้ฟังหน่อยค่ะ", resp.AiMessage)
	assert.True(t, resp.PillarsProgress.WhyItMatters)
	assert.False(t, resp.IsComplete)
	require.NotNil(t, resp.CurrentPillar)
	assert.Equal(t, 2, *resp.CurrentPillar)
	assert.Equal(t, []string{"Speak Up (กล้าพูด กล้าสื่อสาร)"}, resp.PillarContent.ViolatedCoreValues)
	assert.Nil(t, resp.AvailableCoreValues)

	// request shape: primer pair, then the user message as the final turn
	require.Len(t, gen.lastReq.Messages, 2)
	assert.Equal(t, "user", gen.lastReq.Messages[0].Role)
	assert.Contains(t, gen.lastReq.Messages[0].Content, "ลืมให้ยามื้อเช้า")
	assert.Contains(t, gen.lastReq.Messages[0].Content, "Speak Up")
	assert.Equal(t, "assistant", gen.lastReq.Messages[1].Role)
	assert.Equal(t, "หนูลืมดูตารางยาค่ะ", gen.lastReq.Prompt)
	assert.True(t, gen.lastReq.JSONMode)
}

func TestCoachChatPickerIncludesCoreValues(t *testing.T) {
	gen := &fakeGenerator{response: `{"ai_message": "เลือก Core Values ที่เกี่ยวข้องค่ะ", "pillars_progress": {"why_it_matters": true, "root_cause": true, "core_values": false, "prevention_plan": false}, "is_complete": false, "show_core_value_picker": true, "current_pillar": 3}`}
	svc := newCoachService(gen)

	resp, err := svc.Chat(context.Background(), CoachRequest{IncidentID: 5, Message: "ค่ะ"})
	require.NoError(t, err)

	assert.True(t, resp.ShowCoreValuePicker)
	require.Len(t, resp.AvailableCoreValues, 1)
	assert.Equal(t, "Speak Up (กล้าพูด กล้าสื่อสาร)", resp.AvailableCoreValues[0].Name)
}

func TestCoachChatNonJSONResponse(t *testing.T) {
	gen := &fakeGenerator{response: "สวัสดีค่ะ เล่าเหตุการณ์ให้ฟังหน่อยนะคะ"}
	svc := newCoachService(gen)

	resp, err := svc.Chat(context.Background(), CoachRequest{IncidentID: 5, Message: "สวัสดี"})
	require.NoError(t, err)

	// the raw text becomes the message; everything else stays at defaults
	assert.Equal(t, "สวัสดีค่ะ เล่าเหตุการณ์ให้ฟังหน่อยนะคะ", resp.AiMessage)
	assert.False(t, resp.IsComplete)
	assert.Nil(t, resp.CurrentPillar)
}

func TestCoachChatDegradedContext(t *testing.T) {
	gen := &fakeGenerator{response: `{"ai_message": "สวัสดีค่ะ"}`}
	svc := NewCoachService(
		&fakeConfigRepo{err: errors.New("db down")},
		&fakeCoreValuesRepo{err: errors.New("db down")},
		&fakeIncidentsRepo{err: errors.New("db down")},
		gen,
		zap.NewNop(),
	)

	resp, err := svc.Chat(context.Background(), CoachRequest{IncidentID: 5, Message: "สวัสดี"})
	require.NoError(t, err)
	assert.Equal(t, "สวัสดีค่ะ", resp.AiMessage)

	// default prompt with placeholders for the missing incident
	assert.Contains(t, gen.lastReq.Messages[0].Content, "5 Whys")
	assert.Contains(t, gen.lastReq.Messages[0].Content, "ไม่ระบุ")
}

func TestCoachChatGeneratorError(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("model unavailable")}
	svc := newCoachService(gen)

	_, err := svc.Chat(context.Background(), CoachRequest{IncidentID: 5, Message: "สวัสดี"})
	assert.Error(t, err)
}

func TestCoachChatHistoryPassedThrough(t *testing.T) {
	gen := &fakeGenerator{response: `{"ai_message": "ต่อเลยค่ะ"}`}
	svc := newCoachService(gen)

	history := []domain.ChatMessage{
		{Role: "user", Content: "หนูลืมให้ยา"},
		{Role: "assistant", Content: "เกิดอะไรขึ้นคะ"},
	}
	_, err := svc.Chat(context.Background(), CoachRequest{IncidentID: 5, Message: "ลืมดูตาราง", ChatHistory: history})
	require.NoError(t, err)

	require.Len(t, gen.lastReq.Messages, 4)
	assert.Equal(t, "หนูลืมให้ยา", gen.lastReq.Messages[2].Content)
	assert.Equal(t, "เกิดอะไรขึ้นคะ", gen.lastReq.Messages[3].Content)
}
