package rest_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/activitylog/api/activity/app"
	"github.com/activitylog/api/activity/rest"
	"github.com/activitylog/api/config"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.uber.org/fx"
)

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

type HandlerTestSuite struct {
	suite.Suite
	Handler *rest.Handler
	Ctx     context.Context
	Engine  *echo.Echo
	App     *fx.App
}

func (suite *HandlerTestSuite) SetupTest() {
	suite.Ctx = context.Background()
	handlerModule, err := app.HandlerModule("activity_config.test.toml", config.GetAbsPath("config"))
	suite.Require().NoError(err, "Failed to create handler module")
	opt := fx.Options(
		handlerModule,
		fx.NopLogger,
		fx.Populate(&suite.Handler),
	)

	suite.App = fx.New(opt)
	err = suite.App.Start(suite.Ctx)
	suite.Require().NoError(err, "Failed to start Fx app")
	suite.Require().NotNil(suite.Handler, "Handler should not be nil")
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	suite.Engine = e
	suite.Handler.SetupRoutes(e)
}

func (suite *HandlerTestSuite) TearDownTest() {
	suite.Require().NoError(suite.App.Stop(suite.Ctx))
}

func (suite *HandlerTestSuite) JSONDecode(r *httptest.ResponseRecorder, dst any) {
	decoder := json.NewDecoder(r.Body)
	err := decoder.Decode(dst)
	suite.Require().NoError(err, "Failed to decode JSON response")
}

func (suite *HandlerTestSuite) do(method, target string, body any, headers map[string]string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	suite.Engine.ServeHTTP(rec, req)
	return rec
}

func (suite *HandlerTestSuite) create(body map[string]any) rest.ActivityResponse {
	rec := suite.do(http.MethodPost, "/api/activities", body, nil)
	suite.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	var resp rest.ActivityResponse
	suite.JSONDecode(rec, &resp)
	return resp
}

func (suite *HandlerTestSuite) TestHealthCheck() {
	rec := suite.do(http.MethodGet, "/health", nil, nil)
	suite.Equal(http.StatusOK, rec.Code, "Expected status OK")
	var resp map[string]any
	suite.JSONDecode(rec, &resp)
	suite.Equal("healthy", resp["status"].(string), "Expected status to be healthy")
}

func (suite *HandlerTestSuite) TestRootBanner() {
	rec := suite.do(http.MethodGet, "/", nil, nil)
	suite.Equal(http.StatusOK, rec.Code)
	var resp rest.MessageResponse
	suite.JSONDecode(rec, &resp)
	suite.Equal("Activity Logs Microservice is running", resp.Message)
}

func (suite *HandlerTestSuite) TestCORSPreflight() {
	rec := suite.do(http.MethodOptions, "/api/activities", nil, map[string]string{
		"Origin":                        "http://dashboard.example.com",
		"Access-Control-Request-Method": http.MethodPost,
	})
	suite.Equal(http.StatusNoContent, rec.Code)
	suite.Equal("*", rec.Header().Get("Access-Control-Allow-Origin"))
	suite.Contains(rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
	suite.Contains(rec.Header().Get("Access-Control-Allow-Methods"), http.MethodDelete)

	rec = suite.do(http.MethodGet, "/api/activities", nil, map[string]string{"Origin": "http://dashboard.example.com"})
	suite.Equal(http.StatusOK, rec.Code)
	suite.Equal("*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func (suite *HandlerTestSuite) TestMetricsEndpoint() {
	suite.create(map[string]any{"userId": "user123", "action": "login"})
	rec := suite.do(http.MethodGet, "/metrics", nil, nil)
	suite.Equal(http.StatusOK, rec.Code)
	suite.Contains(rec.Body.String(), "activitylog_activities_created_total")
}

func (suite *HandlerTestSuite) TestCreateActivity() {
	rec := suite.do(http.MethodPost, "/api/activities", map[string]any{
		"userId":  "user123",
		"action":  "login",
		"details": map[string]any{"browser": "firefox"},
	}, map[string]string{
		"X-Forwarded-For": "203.0.113.7, 10.0.0.1",
		"User-Agent":      "activity-test/1.0",
	})
	suite.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	suite.NotEmpty(rec.Header().Get("X-Request-ID"))

	var resp rest.ActivityResponse
	suite.JSONDecode(rec, &resp)
	suite.Len(resp.ID, 24)
	suite.Equal("user123", resp.UserID)
	suite.Equal("login", resp.Action)
	suite.Equal("success", resp.Status)
	suite.Equal("203.0.113.7", resp.IPAddress)
	suite.Equal("activity-test/1.0", resp.UserAgent)
	suite.Equal("firefox", resp.Details["browser"])
	suite.WithinDuration(time.Now(), resp.Timestamp, time.Minute)
}

func (suite *HandlerTestSuite) TestCreateActivityKeepsSuppliedMetadata() {
	resp := suite.create(map[string]any{
		"userId":    "user123",
		"action":    "logout",
		"ipAddress": "198.51.100.2",
		"userAgent": "custom-agent",
		"timestamp": "2024-01-15T10:00:00Z",
		"status":    "pending",
	})
	suite.Equal("198.51.100.2", resp.IPAddress)
	suite.Equal("custom-agent", resp.UserAgent)
	suite.Equal("pending", resp.Status)
	suite.True(time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC).Equal(resp.Timestamp))
}

func (suite *HandlerTestSuite) TestCreateActivityValidation() {
	testCases := []struct {
		name string
		body any
	}{
		{name: "missing user", body: map[string]any{"action": "login"}},
		{name: "missing action", body: map[string]any{"userId": "u"}},
		{name: "unknown action", body: map[string]any{"userId": "u", "action": "dance"}},
		{name: "unknown status", body: map[string]any{"userId": "u", "action": "login", "status": "maybe"}},
		{name: "not an object", body: []string{"x"}},
	}
	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			rec := suite.do(http.MethodPost, "/api/activities", tc.body, nil)
			suite.Equal(http.StatusBadRequest, rec.Code)
			var resp rest.ErrorResponse
			suite.JSONDecode(rec, &resp)
			suite.False(resp.Success)
			suite.Equal("validation_error", resp.Code)
			suite.NotEmpty(resp.Error)
		})
	}

	rec := suite.do(http.MethodGet, "/api/activities", nil, nil)
	var page rest.ActivityPageResponse
	suite.JSONDecode(rec, &page)
	suite.Zero(page.Pagination.Total, "nothing is stored on validation failure")
}

func (suite *HandlerTestSuite) TestListActivitiesPagination() {
	for i := 0; i < 12; i++ {
		suite.create(map[string]any{
			"userId":    "user123",
			"action":    "login",
			"timestamp": time.Date(2024, 1, 1, 0, i, 0, 0, time.UTC).Format(time.RFC3339),
		})
	}

	rec := suite.do(http.MethodGet, "/api/activities?page=2&limit=5", nil, nil)
	suite.Require().Equal(http.StatusOK, rec.Code)
	var page rest.ActivityPageResponse
	suite.JSONDecode(rec, &page)
	suite.Equal(rest.PaginationResponse{Total: 12, Page: 2, PageSize: 5, PageCount: 3}, page.Pagination)
	suite.Require().Len(page.Data, 5)
	suite.True(time.Date(2024, 1, 1, 0, 6, 0, 0, time.UTC).Equal(page.Data[0].Timestamp))

	rec = suite.do(http.MethodGet, "/api/activities?page=abc&limit=xyz", nil, nil)
	suite.JSONDecode(rec, &page)
	suite.Equal(1, page.Pagination.Page)
	suite.Equal(10, page.Pagination.PageSize)
	suite.Len(page.Data, 10)

	rec = suite.do(http.MethodGet, "/api/activities?page=9", nil, nil)
	suite.Equal(http.StatusOK, rec.Code)
	suite.JSONDecode(rec, &page)
	suite.Empty(page.Data)
	suite.Equal(int64(12), page.Pagination.Total)
}

func (suite *HandlerTestSuite) TestListByUserAndAction() {
	suite.create(map[string]any{"userId": "alice", "action": "login"})
	suite.create(map[string]any{"userId": "alice", "action": "logout"})
	suite.create(map[string]any{"userId": "bob", "action": "login"})

	rec := suite.do(http.MethodGet, "/api/activities/user/alice", nil, nil)
	suite.Require().Equal(http.StatusOK, rec.Code)
	var page rest.ActivityPageResponse
	suite.JSONDecode(rec, &page)
	suite.Equal(int64(2), page.Pagination.Total)

	rec = suite.do(http.MethodGet, "/api/activities/action/login", nil, nil)
	suite.Require().Equal(http.StatusOK, rec.Code)
	suite.JSONDecode(rec, &page)
	suite.Equal(int64(2), page.Pagination.Total)

	rec = suite.do(http.MethodGet, "/api/activities/action/dance", nil, nil)
	suite.Equal(http.StatusBadRequest, rec.Code)
}

func (suite *HandlerTestSuite) TestListByDateRange() {
	for day := 1; day <= 5; day++ {
		suite.create(map[string]any{
			"userId":    "user123",
			"action":    "login",
			"timestamp": time.Date(2024, 3, day, 0, 0, 0, 0, time.UTC).Format(time.RFC3339),
		})
	}

	rec := suite.do(http.MethodGet, "/api/activities/range?startDate=2024-03-02&endDate=2024-03-04", nil, nil)
	suite.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	var page rest.ActivityPageResponse
	suite.JSONDecode(rec, &page)
	suite.Equal(int64(3), page.Pagination.Total, "both bounds are inclusive")

	rec = suite.do(http.MethodGet, "/api/activities/range?startDate=2024-03-02T00:00:00.000Z&endDate=2024-03-02T00:00:00Z", nil, nil)
	suite.Require().Equal(http.StatusOK, rec.Code)
	suite.JSONDecode(rec, &page)
	suite.Equal(int64(1), page.Pagination.Total)

	for _, target := range []string{
		"/api/activities/range?startDate=2024-03-02",
		"/api/activities/range",
		"/api/activities/range?startDate=yesterday&endDate=2024-03-04",
	} {
		rec = suite.do(http.MethodGet, target, nil, nil)
		suite.Equal(http.StatusBadRequest, rec.Code, target)
		var resp rest.ErrorResponse
		suite.JSONDecode(rec, &resp)
		suite.Equal("validation_error", resp.Code)
	}
}

func (suite *HandlerTestSuite) TestGetActivity() {
	created := suite.create(map[string]any{"userId": "user123", "action": "profile_update"})

	rec := suite.do(http.MethodGet, "/api/activities/"+created.ID, nil, nil)
	suite.Require().Equal(http.StatusOK, rec.Code)
	var resp rest.ActivityResponse
	suite.JSONDecode(rec, &resp)
	suite.Equal(created, resp)

	rec = suite.do(http.MethodGet, "/api/activities/"+bson.NewObjectID().Hex(), nil, nil)
	suite.Equal(http.StatusNotFound, rec.Code)
	var errResp rest.ErrorResponse
	suite.JSONDecode(rec, &errResp)
	suite.Equal("not_found", errResp.Code)

	rec = suite.do(http.MethodGet, "/api/activities/not-an-id", nil, nil)
	suite.Equal(http.StatusBadRequest, rec.Code)
	suite.JSONDecode(rec, &errResp)
	suite.Equal("invalid_id", errResp.Code)
}

func (suite *HandlerTestSuite) TestCleanupActivities() {
	old := suite.create(map[string]any{
		"userId":    "user123",
		"action":    "login",
		"timestamp": time.Now().UTC().Add(-40 * 24 * time.Hour).Format(time.RFC3339),
	})
	fresh := suite.create(map[string]any{"userId": "user123", "action": "login"})

	rec := suite.do(http.MethodDelete, "/api/activities/cleanup/30", nil, nil)
	suite.Require().Equal(http.StatusOK, rec.Code)
	var resp rest.CleanupResponse
	suite.JSONDecode(rec, &resp)
	suite.Equal(int64(1), resp.DeletedCount)
	suite.Equal("Deleted 1 activity logs older than 30 days", resp.Message)

	rec = suite.do(http.MethodGet, "/api/activities/"+old.ID, nil, nil)
	suite.Equal(http.StatusNotFound, rec.Code)
	rec = suite.do(http.MethodGet, "/api/activities/"+fresh.ID, nil, nil)
	suite.Equal(http.StatusOK, rec.Code)

	for _, days := range []string{"0", "-5", "abc"} {
		rec = suite.do(http.MethodDelete, fmt.Sprintf("/api/activities/cleanup/%s", days), nil, nil)
		suite.Equal(http.StatusBadRequest, rec.Code, days)
		suite.True(strings.Contains(rec.Body.String(), "positive integer"))
	}
}
