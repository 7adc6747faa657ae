package httpapi

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/abyssmaljib/irene-training/internal/domain"
	"github.com/abyssmaljib/irene-training/internal/push"
	"github.com/abyssmaljib/irene-training/internal/service"
)

// AIHandler serves the AI endpoints the staff app calls.
type AIHandler struct {
	coach     *service.CoachService
	summary   *service.ShiftSummaryService
	incidents *service.IncidentSummaryService
	quiz      *service.QuizService
	summarize *service.SummarizeService
	sender    push.Sender
	logger    *zap.Logger
}

func NewAIHandler(
	coach *service.CoachService,
	summary *service.ShiftSummaryService,
	incidents *service.IncidentSummaryService,
	quiz *service.QuizService,
	summarize *service.SummarizeService,
	sender push.Sender,
	logger *zap.Logger,
) *AIHandler {
	return &AIHandler{
		coach:     coach,
		summary:   summary,
		incidents: incidents,
		quiz:      quiz,
		summarize: summarize,
		sender:    sender,
		logger:    logger,
	}
}

// FiveWhysChat handles one turn of the incident coaching conversation.
func (h *AIHandler) FiveWhysChat(w http.ResponseWriter, r *http.Request) {
	var req service.CoachRequest
	if err := readBodyJSON(r, maxBodyBytes, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid JSON body"})
		return
	}
	if req.Message == "" || req.IncidentID == 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "Missing required fields: incident_id, message",
		})
		return
	}

	resp, err := h.coach.Chat(r.Context(), req)
	if err != nil {
		h.logger.Error("five-whys chat failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// GenerateShiftSummary produces the per-shift report for one resident.
func (h *AIHandler) GenerateShiftSummary(w http.ResponseWriter, r *http.Request) {
	var req service.ShiftSummaryRequest
	if err := readBodyJSON(r, maxBodyBytes, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid JSON body", "content": ""})
		return
	}
	if req.ResidentID == 0 || req.Date == "" || req.Shift == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error":   "Missing required fields: resident_id, date, shift",
			"content": "",
		})
		return
	}

	resp, err := h.summary.Generate(r.Context(), req)
	if err != nil {
		h.logger.Error("shift summary failed",
			zap.Int64("resident_id", req.ResidentID), zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error(), "content": ""})
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

type incidentSummaryRequest struct {
	IncidentID  int64                `json:"incident_id"`
	ChatHistory []domain.ChatMessage `json:"chat_history"`
}

// GenerateIncidentSummary distills a finished coaching chat into the four
// pillars.
func (h *AIHandler) GenerateIncidentSummary(w http.ResponseWriter, r *http.Request) {
	var req incidentSummaryRequest
	if err := readBodyJSON(r, maxBodyBytes, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid JSON body"})
		return
	}
	if req.IncidentID == 0 || len(req.ChatHistory) == 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "Missing required fields: incident_id, chat_history",
		})
		return
	}

	summary, err := h.incidents.Summarize(r.Context(), req.IncidentID, req.ChatHistory)
	if err != nil {
		h.logger.Error("incident summary failed",
			zap.Int64("incident_id", req.IncidentID), zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"error":                err.Error(),
			"why_it_matters":       "",
			"root_cause":           "",
			"core_value_analysis":  "",
			"violated_core_values": []string{},
			"prevention_plan":      "",
			"is_complete":          false,
		})
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

type textRequest struct {
	Text string `json:"text"`
}

func emptyQuiz() map[string]any {
	return map[string]any{
		"question":       "",
		"options":        map[string]string{"A": "", "B": "", "C": ""},
		"correct_answer": "A",
	}
}

// GenerateQuiz creates one multiple-choice question from training material.
func (h *AIHandler) GenerateQuiz(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	if err := readBodyJSON(r, maxBodyBytes, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid JSON body"})
		return
	}
	if len(strings.TrimSpace(req.Text)) < 20 {
		body := emptyQuiz()
		body["error"] = "Text is required and must be at least 20 characters"
		writeJSON(w, http.StatusBadRequest, body)
		return
	}

	quiz, err := h.quiz.Generate(r.Context(), req.Text)
	if err != nil {
		h.logger.Error("quiz generation failed", zap.Error(err))
		body := emptyQuiz()
		body["error"] = err.Error()
		writeJSON(w, http.StatusInternalServerError, body)
		return
	}
	writeJSON(w, http.StatusOK, quiz)
}

// SummarizeText rewrites text as plain Thai bullet points.
func (h *AIHandler) SummarizeText(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	if err := readBodyJSON(r, maxBodyBytes, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid JSON body", "content": ""})
		return
	}
	if len(strings.TrimSpace(req.Text)) < 10 {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error":   "Text is required and must be at least 10 characters",
			"content": "",
		})
		return
	}

	content, err := h.summarize.Summarize(r.Context(), req.Text)
	if err != nil {
		h.logger.Error("summarize failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error(), "content": ""})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"content": content})
}

// pushPayload accepts either a bare notification or a DB-webhook payload
// wrapping it under "record".
type pushPayload struct {
	domain.Notification
	Record *domain.Notification `json:"record"`
}

// Push relays a notification row to OneSignal.
func (h *AIHandler) Push(w http.ResponseWriter, r *http.Request) {
	var payload pushPayload
	if err := readBodyJSON(r, maxBodyBytes, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid JSON body"})
		return
	}
	notification := payload.Notification
	if payload.Record != nil {
		notification = *payload.Record
	}
	if notification.UserID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Missing user_id"})
		return
	}

	receipt, err := h.sender.Send(r.Context(), notification)
	if err != nil {
		h.logger.Error("push failed", zap.String("user_id", notification.UserID), zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "OneSignal Error", "details": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "data": receipt})
}
