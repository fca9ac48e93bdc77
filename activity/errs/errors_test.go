package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/activitylog/api/activity/domain"
	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromError(t *testing.T) {
	testCases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "validation", err: domain.NewValidationError("userId", "userId is required"), wantStatus: http.StatusBadRequest, wantCode: CodeValidation},
		{name: "wrapped validation", err: fmt.Errorf("create: %w", domain.NewValidationError("action", "bad")), wantStatus: http.StatusBadRequest, wantCode: CodeValidation},
		{name: "invalid id", err: domain.ErrInvalidID, wantStatus: http.StatusBadRequest, wantCode: CodeInvalidID},
		{name: "not found", err: domain.ErrNotFound, wantStatus: http.StatusNotFound, wantCode: CodeNotFound},
		{name: "store", err: domain.NewStoreError("list", errors.New("timeout")), wantStatus: http.StatusInternalServerError, wantCode: CodeStore},
		{name: "unknown", err: errors.New("boom"), wantStatus: http.StatusInternalServerError, wantCode: CodeInternal},
		{name: "explicit status", err: pkgerrors.WithStack(NewHTTPStatusError(http.StatusNotFound, "gone", nil)), wantStatus: http.StatusNotFound, wantCode: CodeNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			httpErr := FromError(tc.err)
			require.NotNil(t, httpErr)
			assert.Equal(t, tc.wantStatus, httpErr.StatusCode)
			assert.Equal(t, tc.wantCode, httpErr.Code)
			assert.NotEmpty(t, httpErr.Message)
		})
	}
}

func TestStoreErrorMessageHidesCause(t *testing.T) {
	httpErr := FromError(domain.NewStoreError("get", errors.New("password=hunter2")))
	assert.NotContains(t, httpErr.Message, "hunter2")
	assert.ErrorContains(t, httpErr, "hunter2")
}

func TestIsHTTPStatusError(t *testing.T) {
	_, ok := IsHTTPStatusError(nil)
	assert.False(t, ok)

	_, ok = IsHTTPStatusError(errors.New("plain"))
	assert.False(t, ok)

	orig := NewHTTPStatusError(http.StatusBadRequest, "bad", errors.New("cause"))
	got, ok := IsHTTPStatusError(pkgerrors.Wrap(orig, "context"))
	require.True(t, ok)
	assert.Same(t, orig, got)
	assert.Equal(t, "(status 400) bad: cause", orig.Error())
}
