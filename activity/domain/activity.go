package domain

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Activity is one logged event. Records are write-once: there is no update path.
type Activity struct {
	ID           bson.ObjectID  `bson:"_id,omitempty"`
	UserID       string         `bson:"userId" validate:"required"`
	Action       Action         `bson:"action" validate:"required,activity_action"`
	Timestamp    time.Time      `bson:"timestamp"`
	IPAddress    string         `bson:"ipAddress,omitempty"`
	UserAgent    string         `bson:"userAgent,omitempty"`
	Details      map[string]any `bson:"details,omitempty"`
	ResourceType string         `bson:"resourceType,omitempty"`
	ResourceID   string         `bson:"resourceId,omitempty"`
	Status       Status         `bson:"status" validate:"omitempty,activity_status"`
}

// Normalize trims identifiers and fills the defaults applied on creation.
// It never overrides a value the caller supplied.
func (a *Activity) Normalize(now time.Time) {
	a.UserID = strings.TrimSpace(a.UserID)
	a.Action = Action(strings.TrimSpace(string(a.Action)))
	if a.Timestamp.IsZero() {
		a.Timestamp = now
	}
	// stores keep millisecond precision
	a.Timestamp = a.Timestamp.UTC().Truncate(time.Millisecond)
	if a.Status == "" {
		a.Status = StatusSuccess
	}
}

// Validate checks the required fields and enum membership.
func (a *Activity) Validate() error {
	if err := GetValidator().Struct(a); err != nil {
		return FormatValidationError(err)
	}
	return nil
}

// ParseID converts the external hex form of an activity id.
func ParseID(id string) (bson.ObjectID, error) {
	oid, err := bson.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return bson.NilObjectID, ErrInvalidID
	}
	return oid, nil
}
