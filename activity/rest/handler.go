package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/activitylog/api/activity/domain"
	"github.com/activitylog/api/activity/errs"
	"github.com/activitylog/api/pkg/logger"
	"go.uber.org/fx"
)

const (
	serviceName    = "Activity Logs Microservice"
	serviceVersion = "1.0.0"
)

// ErrorResponse represents error response structure
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    string `json:"code"`
}

// MessageResponse is a plain informational reply
type MessageResponse struct {
	Message string `json:"message"`
}

type Params struct {
	fx.In
	Svc domain.Service
}

func NewHandler(params Params) (*Handler, error) {
	return &Handler{
		Svc: params.Svc,
	}, nil
}

type Handler struct {
	Svc domain.Service
}

func (h *Handler) JSONResponse(ctx context.Context, w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		logger.Logger(ctx).Error().Err(err).Msg("Failed to encode JSON response")
	}
}

func (h *Handler) JSONBind(r *http.Request, dst any) error {
	decoder := json.NewDecoder(r.Body)
	return decoder.Decode(dst)
}

func (h *Handler) ErrorResponse(ctx context.Context, w http.ResponseWriter, status int, code string, errMsg string) {
	resp := ErrorResponse{
		Success: false,
		Error:   errMsg,
		Code:    code,
	}
	h.JSONResponse(ctx, w, status, resp)
}

// HandleError writes the client-facing form of err.
func (h *Handler) HandleError(ctx context.Context, w http.ResponseWriter, err error) {
	httpErr := errs.FromError(err)
	if httpErr.StatusCode >= http.StatusInternalServerError {
		logger.Logger(ctx).Error().Err(err).Msg("request failed")
	}
	h.ErrorResponse(ctx, w, httpErr.StatusCode, httpErr.Code, httpErr.Message)
}

// Root godoc
// @Summary Service banner
// @Tags System
// @Produce json
// @Success 200 {object} MessageResponse
// @Router / [get]
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	h.JSONResponse(r.Context(), w, http.StatusOK, MessageResponse{Message: serviceName + " is running"})
}

// Version godoc
// @Summary Service version
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string
// @Router /version [get]
func (h *Handler) Version(w http.ResponseWriter, r *http.Request) {
	response := map[string]string{
		"message":   serviceName,
		"version":   serviceVersion,
		"endpoints": "/api/activities (GET, POST), /api/activities/user/{userId} (GET), /api/activities/action/{action} (GET), /api/activities/range (GET), /api/activities/{id} (GET), /api/activities/cleanup/{days} (DELETE), /health (GET), /metrics (GET)",
	}
	h.JSONResponse(r.Context(), w, http.StatusOK, response)
}

// HealthCheck godoc
// @Summary Health check
// @Tags System
// @Produce json
// @Success 200 {object} map[string]any
// @Router /health [get]
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]any{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   serviceName,
	}
	h.JSONResponse(r.Context(), w, http.StatusOK, response)
}
