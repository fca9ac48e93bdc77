package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/activitylog/api/activity/client"
	"github.com/activitylog/api/activity/domain"
	"github.com/activitylog/api/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanupCommand(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"cleanup", "--days", "30", "--config-name", "activity_config.test.toml", "--config-dir", config.GetAbsPath("config")})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "Deleted 0 activity logs older than 30 days\n", out.String())
}

func TestCleanupCommandRejectsNonPositiveDays(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"cleanup", "--days", "0", "--config-name", "activity_config.test.toml", "--config-dir", config.GetAbsPath("config")})

	assert.Error(t, cmd.Execute())
}

func TestSeedOverHTTP(t *testing.T) {
	var posted atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.NotEmpty(t, body["timestamp"])
		if posted.Add(1) == 2 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"65a1b2c3d4e5f6a7b8c9d0e1"}`))
	}))
	defer server.Close()

	now := time.Now().UTC()
	activities := []*domain.Activity{
		{UserID: "user123", Action: domain.ActionLogin, Timestamp: now, Status: domain.StatusSuccess},
		{UserID: "admin456", Action: domain.ActionLogout, Timestamp: now, Status: domain.StatusFailure},
		{UserID: "guest789", Action: domain.ActionFailedLogin, Timestamp: now, Status: domain.StatusSuccess},
	}
	require.NoError(t, seedOverHTTP(context.Background(), client.NewActivityClient(server.URL, nil), activities))
	assert.EqualValues(t, 3, posted.Load())
}
