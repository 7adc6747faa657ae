package httpapi

import (
	"net/http"

	"go.uber.org/zap"
)

// Router wraps the standard library ServeMux. The mobile app calls these
// endpoints from a browser context, so every route answers CORS preflight.
type Router struct {
	mux    *http.ServeMux
	logger *zap.Logger
}

func NewRouter(logger *zap.Logger) *Router {
	return &Router{
		mux:    http.NewServeMux(),
		logger: logger,
	}
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

// post registers a POST-only route with CORS preflight handling.
func (r *Router) post(pattern string, h http.HandlerFunc) {
	r.mux.HandleFunc(pattern, func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		if req.Method == http.MethodOptions {
			w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, apikey, x-client-info")
			w.WriteHeader(http.StatusNoContent)
			return
		}
		if req.Method != http.MethodPost {
			writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "Method not allowed"})
			return
		}
		h(w, req)
	})
}

// RegisterAIRoutes keeps the paths the app already calls as Supabase edge
// functions.
func (r *Router) RegisterAIRoutes(h *AIHandler) {
	r.post("/functions/v1/five-whys-chat", h.FiveWhysChat)
	r.post("/functions/v1/generate-shift-summary", h.GenerateShiftSummary)
	r.post("/functions/v1/generate-incident-summary", h.GenerateIncidentSummary)
	r.post("/functions/v1/generate-quiz", h.GenerateQuiz)
	r.post("/functions/v1/summarize-text", h.SummarizeText)
	r.post("/functions/v1/push", h.Push)
}

// RegisterHealthRoutes exposes the liveness probe.
func (r *Router) RegisterHealthRoutes() {
	r.mux.HandleFunc("/healthz", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
}
