// internal/server/handler.go
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	apperrors "menu-recommender/internal/common/errors"
	"menu-recommender/internal/common/logger"
	"menu-recommender/internal/common/metrics"
	"menu-recommender/internal/models"
	"menu-recommender/internal/store"
)

// Recommender is the one operation the HTTP surface needs from the engine.
type Recommender interface {
	Recommend(ctx context.Context, userID string) ([]models.Recommendation, error)
}

type Handler struct {
	engine Recommender
	store  store.Store
	logger logger.Logger
}

func NewHandler(engine Recommender, st store.Store, log logger.Logger) *Handler {
	return &Handler{
		engine: engine,
		store:  st,
		logger: log.WithFields(map[string]interface{}{"component": "http"}),
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/api/v1/users/{userID}/recommendations", h.GetRecommendations)
	r.Get("/healthz", h.Healthz)
}

// GetRecommendations serializes the pipeline result as a JSON array of
// {name, price, description, image} in rank order. An empty result is a 200
// with []; only a store failure turns into an error response.
func (h *Handler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	userID := strings.TrimSpace(chi.URLParam(r, "userID"))
	if userID == "" {
		h.writeError(w, http.StatusBadRequest, "MISSING_USER_ID", "user id is required")
		return
	}

	recommendations, err := h.engine.Recommend(r.Context(), userID)
	if err != nil {
		code := "RECOMMENDATION_FAILED"
		if stdErr, ok := apperrors.AsStandardError(err); ok {
			code = string(stdErr.Code)
		}
		metrics.RecommendationsFailed.WithLabelValues(code).Inc()
		h.logger.Error("recommendation request failed", map[string]interface{}{
			"userId": userID,
			"error":  err.Error(),
		})
		h.writeError(w, http.StatusBadGateway, code, "recommendation store unavailable")
		return
	}

	if recommendations == nil {
		recommendations = []models.Recommendation{}
	}
	h.writeJSON(w, http.StatusOK, recommendations)
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Ping(r.Context()); err != nil {
		h.writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unhealthy"})
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("failed to encode response", map[string]interface{}{"error": err.Error()})
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, code, message string) {
	h.writeJSON(w, status, map[string]interface{}{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
