package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"linearcode/services"
	"linearcode/usecases/webhook"
	"linearcode/utils"
)

// WebhooksHandler serves the Linear webhook endpoint plus the auxiliary
// service and dashboard routes.
type WebhooksHandler struct {
	webhookSecret  string
	webhookUsecase *webhook.WebhookUsecase
	streamService  services.StreamService
}

func NewWebhooksHandler(
	webhookSecret string,
	webhookUsecase *webhook.WebhookUsecase,
	streamService services.StreamService,
) *WebhooksHandler {
	return &WebhooksHandler{
		webhookSecret:  webhookSecret,
		webhookUsecase: webhookUsecase,
		streamService:  streamService,
	}
}

func (h *WebhooksHandler) SetupEndpoints(router *mux.Router) {
	router.HandleFunc("/webhooks/linear", h.HandleLinearWebhook).Methods("POST")
	router.HandleFunc("/health", h.HandleHealth).Methods("GET")
	router.HandleFunc("/info", h.HandleInfo).Methods("GET")
	router.HandleFunc("/events", h.HandleEventHistory).Methods("GET")
	router.HandleFunc("/events/filters", h.HandleGetFilters).Methods("GET")
	router.HandleFunc("/events/filters", h.HandleSetFilters).Methods("PUT")
	router.HandleFunc("/events/filters", h.HandleClearFilters).Methods("DELETE")
	router.HandleFunc("/", h.HandleRoot).Methods("GET")
}

// HandleLinearWebhook verifies the delivery signature before handing the
// raw body to the processor. Signature failures map to 401; processing
// failures after a valid signature map to 500 with the error message.
func (h *WebhooksHandler) HandleLinearWebhook(w http.ResponseWriter, r *http.Request) {
	log.Printf("📨 Linear webhook received from %s", r.RemoteAddr)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Printf("❌ Failed to read webhook body: %v", err)
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "failed to read body"})
		return
	}
	if len(body) == 0 {
		log.Printf("❌ Empty webhook body")
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "empty body"})
		return
	}

	signature := utils.ExtractSignature(r.Header)
	if !utils.VerifySignature(body, signature, h.webhookSecret) {
		log.Printf("❌ Webhook signature verification failed")
		writeJSON(w, http.StatusUnauthorized, map[string]any{"error": "signature verification failed"})
		return
	}
	log.Printf("✅ Webhook signature verification successful")

	if !json.Valid(body) {
		log.Printf("❌ Webhook body is not valid JSON")
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "malformed payload"})
		return
	}

	result := h.webhookUsecase.ProcessWebhook(r.Context(), body, signature)
	if !result.Success {
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"error":   result.Error,
			"message": result.Message,
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": result.Message,
		"data":    result,
	})
}

func (h *WebhooksHandler) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
}

func (h *WebhooksHandler) HandleInfo(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"name":            "linearcode",
		"description":     "Linear to OpenCode integration backend",
		"streamActive":    h.streamService.IsActive(),
		"referenceMarker": utils.ReferenceMarker,
	})
}

func (h *WebhooksHandler) HandleRoot(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"endpoints": []string{
			"POST /webhooks/linear",
			"GET /health",
			"GET /info",
			"GET /events",
			"GET /events/filters",
			"PUT /events/filters",
			"DELETE /events/filters",
			"GET /socket.io/",
			"POST /mcp",
		},
	})
}

func (h *WebhooksHandler) HandleEventHistory(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]any{"error": "invalid limit"})
			return
		}
		limit = parsed
	}
	events := h.streamService.History(limit)
	writeJSON(w, http.StatusOK, map[string]any{"events": events, "count": len(events)})
}

func (h *WebhooksHandler) HandleGetFilters(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"filters": h.streamService.Filters()})
}

func (h *WebhooksHandler) HandleSetFilters(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Filters []string `json:"filters"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "invalid request body"})
		return
	}
	h.streamService.SetFilters(req.Filters)
	writeJSON(w, http.StatusOK, map[string]any{"filters": h.streamService.Filters()})
}

func (h *WebhooksHandler) HandleClearFilters(w http.ResponseWriter, _ *http.Request) {
	h.streamService.ClearFilters()
	writeJSON(w, http.StatusOK, map[string]any{"filters": []string{}})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("❌ Failed to encode response: %v", err)
	}
}
