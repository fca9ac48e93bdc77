package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"net/http"
	"strings"
	"time"

	"github.com/activitylog/api/activity/domain"
	"github.com/activitylog/api/activity/rest"
	"github.com/activitylog/api/pkg/logger"
)

const (
	DefaultTimeout = 5 * time.Second
	DefaultUserID  = "SYSTEM"
	// DetailsActionKey holds the caller's own action name when it maps to "other".
	DetailsActionKey = "rbac_action"
)

// RBACActionMap translates access-control events onto activity actions.
var RBACActionMap = map[string]domain.Action{
	"CREATE_ROLE":                 domain.ActionOther,
	"UPDATE_ROLE":                 domain.ActionOther,
	"DELETE_ROLE":                 domain.ActionOther,
	"CREATE_PERMISSION":           domain.ActionOther,
	"UPDATE_PERMISSION":           domain.ActionPermissionChange,
	"DELETE_PERMISSION":           domain.ActionOther,
	"ASSIGN_PERMISSION_TO_ROLE":   domain.ActionPermissionChange,
	"REMOVE_PERMISSION_FROM_ROLE": domain.ActionPermissionChange,
	"ASSIGN_ROLE_TO_USER":         domain.ActionOther,
	"REMOVE_ROLE_FROM_USER":       domain.ActionOther,
	"CHECK_PERMISSION":            domain.ActionOther,
}

// Entry is one activity as a calling service describes it.
type Entry struct {
	Action       string
	UserID       string
	Status       domain.Status
	ResourceType string
	ResourceID   string
	Details      map[string]any
	Timestamp    *time.Time
}

type ActivityClient struct {
	*http.Client

	baseURL   string
	actionMap map[string]domain.Action
}

// NewActivityClient talks to the service rooted at baseURL, e.g. http://activity-logs:3000.
// actionMap may be nil, in which case only names that already are activity
// actions pass through unchanged.
func NewActivityClient(baseURL string, actionMap map[string]domain.Action) *ActivityClient {
	return &ActivityClient{
		Client:    &http.Client{Timeout: DefaultTimeout},
		baseURL:   strings.TrimRight(baseURL, "/"),
		actionMap: actionMap,
	}
}

// MapAction resolves name to an activity action. Unknown names become
// "other" and report false.
func (c *ActivityClient) MapAction(name string) (domain.Action, bool) {
	if action, ok := c.actionMap[name]; ok {
		return action, action != domain.ActionOther
	}
	if action := domain.Action(name); action.IsValid() {
		return action, action != domain.ActionOther
	}
	return domain.ActionOther, false
}

func (c *ActivityClient) buildRequest(entry Entry) rest.CreateActivityRequest {
	action, exact := c.MapAction(entry.Action)
	details := maps.Clone(entry.Details)
	if !exact && entry.Action != string(domain.ActionOther) {
		if details == nil {
			details = map[string]any{}
		}
		details[DetailsActionKey] = entry.Action
	}
	userID := entry.UserID
	if userID == "" {
		userID = DefaultUserID
	}
	status := entry.Status
	if status == "" {
		status = domain.StatusSuccess
	}
	return rest.CreateActivityRequest{
		UserID:       userID,
		Action:       string(action),
		Timestamp:    entry.Timestamp,
		Details:      details,
		ResourceType: entry.ResourceType,
		ResourceID:   entry.ResourceID,
		Status:       string(status),
	}
}

// LogActivity records entry and returns the stored record.
func (c *ActivityClient) LogActivity(ctx context.Context, entry Entry) (*rest.ActivityResponse, error) {
	payload := c.buildRequest(entry)
	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/activities", bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	var created rest.ActivityResponse
	if err := c.do(req, http.StatusCreated, &created); err != nil {
		logger.Logger(ctx).Error().Err(err).Str("action", entry.Action).Msg("log activity failed")
		return nil, err
	}
	logger.Logger(ctx).Debug().Str("action", entry.Action).Str("user_id", payload.UserID).Msg("activity logged")
	return &created, nil
}

func (c *ActivityClient) GetActivity(ctx context.Context, id string) (*rest.ActivityResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/activities/"+id, nil)
	if err != nil {
		return nil, err
	}
	var activity rest.ActivityResponse
	if err := c.do(req, http.StatusOK, &activity); err != nil {
		return nil, err
	}
	return &activity, nil
}

func (c *ActivityClient) do(req *http.Request, wantStatus int, dst any) error {
	resp, err := c.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		var errResp rest.ErrorResponse
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		if json.Unmarshal(body, &errResp) == nil && errResp.Error != "" {
			return fmt.Errorf("activity service returned %s (%s): %s", resp.Status, errResp.Code, errResp.Error)
		}
		return fmt.Errorf("activity service returned non-OK status: %s", resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(dst)
}
