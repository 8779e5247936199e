package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/shouri123/WRAP-YOUR-GIT/internal/models"
	"github.com/shouri123/WRAP-YOUR-GIT/pkg/logger"
)

// * ReportService is implemented by service.WrappedService
type ReportService interface {
	GetWrapped(ctx context.Context, username, callerToken string) (*models.Report, error)
}

type WrappedHandler struct {
	service ReportService
}

func NewWrappedHandler(service ReportService) *WrappedHandler {
	return &WrappedHandler{
		service: service,
	}
}

func (h *WrappedHandler) RegisterRoutes(r *mux.Router) {
	// * OPTIONS is routed so the CORS middleware can answer preflights
	r.HandleFunc("/api/github/{username}", h.getWrapped).Methods("GET", "OPTIONS")
	r.HandleFunc("/health", h.health).Methods("GET")
}

// * bearerToken extracts the token from an "Authorization: Bearer <token>"
// * header, if one was sent
func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if auth == "" {
		return ""
	}
	parts := strings.SplitN(auth, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

// getWrapped godoc
// @Summary Get Wrapped Report
// @Description Fetches a GitHub user's profile, repositories, and recent events and derives their wrapped statistics
// @Tags Wrapped
// @Produce json
// @Param username path string true "GitHub username"
// @Param Authorization header string false "Bearer token forwarded to GitHub"
// @Success 200 {object} models.Report
// @Failure 500 {object} ErrorResponse
// @Router /api/github/{username} [get]
func (h *WrappedHandler) getWrapped(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	username := vars["username"]
	token := bearerToken(r)

	report, err := h.service.GetWrapped(r.Context(), username, token)
	if err != nil {
		// * The cause stays in the logs; callers get one opaque failure
		logger.Error("wrapped report for %s failed: %v", username, err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(ErrorResponse{Error: "GitHub fetch failed"})
		return
	}

	logger.Info("Built wrapped report for %s", username)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(report)
}

// health godoc
// @Summary Health check
// @Tags Operations
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *WrappedHandler) health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(HealthResponse{Status: "ok"})
}
