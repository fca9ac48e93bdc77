package rest

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/activitylog/api/activity/domain"
	"github.com/activitylog/api/activity/errs"
)

const dateOnlyLayout = "2006-01-02"

type CreateActivityRequest struct {
	UserID       string         `json:"userId"`
	Action       string         `json:"action"`
	Timestamp    *time.Time     `json:"timestamp,omitempty"`
	IPAddress    string         `json:"ipAddress,omitempty"`
	UserAgent    string         `json:"userAgent,omitempty"`
	Details      map[string]any `json:"details,omitempty"`
	ResourceType string         `json:"resourceType,omitempty"`
	ResourceID   string         `json:"resourceId,omitempty"`
	Status       string         `json:"status,omitempty"`
}

type ActivityResponse struct {
	ID           string         `json:"id"`
	UserID       string         `json:"userId"`
	Action       string         `json:"action"`
	Timestamp    time.Time      `json:"timestamp"`
	IPAddress    string         `json:"ipAddress,omitempty"`
	UserAgent    string         `json:"userAgent,omitempty"`
	Details      map[string]any `json:"details,omitempty"`
	ResourceType string         `json:"resourceType,omitempty"`
	ResourceID   string         `json:"resourceId,omitempty"`
	Status       string         `json:"status"`
}

type PaginationResponse struct {
	Total     int64 `json:"total"`
	Page      int   `json:"page"`
	PageSize  int   `json:"pageSize"`
	PageCount int   `json:"pageCount"`
}

type ActivityPageResponse struct {
	Data       []ActivityResponse `json:"data"`
	Pagination PaginationResponse `json:"pagination"`
}

type CleanupResponse struct {
	Message      string `json:"message"`
	DeletedCount int64  `json:"deletedCount"`
}

func NewActivityResponse(a *domain.Activity) ActivityResponse {
	return ActivityResponse{
		ID:           a.ID.Hex(),
		UserID:       a.UserID,
		Action:       string(a.Action),
		Timestamp:    a.Timestamp,
		IPAddress:    a.IPAddress,
		UserAgent:    a.UserAgent,
		Details:      a.Details,
		ResourceType: a.ResourceType,
		ResourceID:   a.ResourceID,
		Status:       string(a.Status),
	}
}

func NewActivityPageResponse(page *domain.ActivityPage) ActivityPageResponse {
	data := make([]ActivityResponse, 0, len(page.Data))
	for _, a := range page.Data {
		data = append(data, NewActivityResponse(a))
	}
	return ActivityPageResponse{
		Data: data,
		Pagination: PaginationResponse{
			Total:     page.Pagination.Total,
			Page:      page.Pagination.Page,
			PageSize:  page.Pagination.PageSize,
			PageCount: page.Pagination.PageCount,
		},
	}
}

// queryInt reads an integer query parameter. Missing or non-numeric values
// read as 0 so the service applies its defaults.
func queryInt(r *http.Request, name string) int {
	v, err := strconv.Atoi(strings.TrimSpace(r.URL.Query().Get(name)))
	if err != nil {
		return 0
	}
	return v
}

// parseDate accepts RFC3339 (optionally with fractional seconds) or YYYY-MM-DD in UTC.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t.UTC(), nil
	}
	return time.Parse(dateOnlyLayout, value)
}

// CreateActivity godoc
// @Summary Record an activity
// @Description Validates and stores one activity. The client IP and user agent are taken from the request when the body leaves them empty.
// @Tags Activities
// @Accept json
// @Produce json
// @Param request body CreateActivityRequest true "Activity payload"
// @Success 201 {object} ActivityResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/activities [post]
func (h *Handler) CreateActivity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req CreateActivityRequest
	if err := h.JSONBind(r, &req); err != nil {
		h.HandleError(ctx, w, errs.NewHTTPStatusError(http.StatusBadRequest, "Invalid request body", err))
		return
	}

	activity := &domain.Activity{
		UserID:       req.UserID,
		Action:       domain.Action(req.Action),
		IPAddress:    req.IPAddress,
		UserAgent:    req.UserAgent,
		Details:      req.Details,
		ResourceType: req.ResourceType,
		ResourceID:   req.ResourceID,
		Status:       domain.Status(req.Status),
	}
	if req.Timestamp != nil {
		activity.Timestamp = *req.Timestamp
	}
	if activity.IPAddress == "" {
		activity.IPAddress = clientIP(r)
	}
	if activity.UserAgent == "" {
		activity.UserAgent = r.UserAgent()
	}

	if err := h.Svc.CreateActivity(ctx, activity); err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	h.JSONResponse(ctx, w, http.StatusCreated, NewActivityResponse(activity))
}

func (h *Handler) listActivities(w http.ResponseWriter, r *http.Request, filter domain.Filter) {
	ctx := r.Context()
	page, err := h.Svc.ListActivities(ctx, filter, queryInt(r, "page"), queryInt(r, "limit"))
	if err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	h.JSONResponse(ctx, w, http.StatusOK, NewActivityPageResponse(page))
}

// ListActivities godoc
// @Summary List activities
// @Description Lists all activities, newest first.
// @Tags Activities
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 10)"
// @Success 200 {object} ActivityPageResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/activities [get]
func (h *Handler) ListActivities(w http.ResponseWriter, r *http.Request) {
	h.listActivities(w, r, domain.NoFilter())
}

// ListActivitiesByUser godoc
// @Summary List activities of a user
// @Tags Activities
// @Produce json
// @Param userId path string true "User ID"
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 10)"
// @Success 200 {object} ActivityPageResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/activities/user/{userId} [get]
func (h *Handler) ListActivitiesByUser(w http.ResponseWriter, r *http.Request) {
	h.listActivities(w, r, domain.ByUser(h.GetPathParam(r, "userId")))
}

// ListActivitiesByAction godoc
// @Summary List activities of an action type
// @Tags Activities
// @Produce json
// @Param action path string true "Action" Enums(login, logout, profile_update, password_change, account_creation, account_deletion, permission_change, failed_login, other)
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 10)"
// @Success 200 {object} ActivityPageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/activities/action/{action} [get]
func (h *Handler) ListActivitiesByAction(w http.ResponseWriter, r *http.Request) {
	h.listActivities(w, r, domain.ByAction(domain.Action(h.GetPathParam(r, "action"))))
}

// ListActivitiesByDateRange godoc
// @Summary List activities within a date range
// @Description Both bounds are inclusive. Dates are RFC3339 or YYYY-MM-DD (midnight UTC).
// @Tags Activities
// @Produce json
// @Param startDate query string true "Range start"
// @Param endDate query string true "Range end"
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 10)"
// @Success 200 {object} ActivityPageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/activities/range [get]
func (h *Handler) ListActivitiesByDateRange(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query()
	rawStart, rawEnd := strings.TrimSpace(query.Get("startDate")), strings.TrimSpace(query.Get("endDate"))
	if rawStart == "" || rawEnd == "" {
		h.HandleError(ctx, w, domain.NewValidationError("startDate", "startDate and endDate are required query parameters"))
		return
	}
	start, err := parseDate(rawStart)
	if err != nil {
		h.HandleError(ctx, w, domain.NewValidationError("startDate", "startDate must be an RFC3339 timestamp or YYYY-MM-DD date"))
		return
	}
	end, err := parseDate(rawEnd)
	if err != nil {
		h.HandleError(ctx, w, domain.NewValidationError("endDate", "endDate must be an RFC3339 timestamp or YYYY-MM-DD date"))
		return
	}
	h.listActivities(w, r, domain.ByDateRange(start, end))
}

// GetActivity godoc
// @Summary Get an activity
// @Tags Activities
// @Produce json
// @Param id path string true "Activity ID (24 hex characters)"
// @Success 200 {object} ActivityResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/activities/{id} [get]
func (h *Handler) GetActivity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	activity, err := h.Svc.GetActivity(ctx, h.GetPathParam(r, "id"))
	if err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	h.JSONResponse(ctx, w, http.StatusOK, NewActivityResponse(activity))
}

// CleanupActivities godoc
// @Summary Delete old activities
// @Description Deletes every activity older than the given number of days.
// @Tags Activities
// @Produce json
// @Param days path int true "Retention window in days (positive)"
// @Success 200 {object} CleanupResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/activities/cleanup/{days} [delete]
func (h *Handler) CleanupActivities(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	days, err := strconv.Atoi(h.GetPathParam(r, "days"))
	if err != nil {
		h.HandleError(ctx, w, domain.NewValidationError("days", "days must be a positive integer"))
		return
	}

	deleted, err := h.Svc.DeleteActivitiesOlderThan(ctx, days)
	if err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	h.JSONResponse(ctx, w, http.StatusOK, CleanupResponse{
		Message:      "Deleted " + strconv.FormatInt(deleted, 10) + " activity logs older than " + strconv.Itoa(days) + " days",
		DeletedCount: deleted,
	})
}
