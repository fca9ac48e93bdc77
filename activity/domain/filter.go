package domain

import "time"

type FilterKind int8

const (
	FilterNone FilterKind = iota
	FilterByUser
	FilterByAction
	FilterByDateRange
)

func (k FilterKind) String() string {
	switch k {
	case FilterNone:
		return "none"
	case FilterByUser:
		return "by_user"
	case FilterByAction:
		return "by_action"
	case FilterByDateRange:
		return "by_date_range"
	}
	return "unknown"
}

// Filter selects the records a List call works on. Exactly one view is
// active, chosen by Kind; the other fields are ignored.
type Filter struct {
	Kind   FilterKind
	UserID string
	Action Action
	Start  time.Time
	End    time.Time
}

func NoFilter() Filter {
	return Filter{Kind: FilterNone}
}

func ByUser(userID string) Filter {
	return Filter{Kind: FilterByUser, UserID: userID}
}

func ByAction(action Action) Filter {
	return Filter{Kind: FilterByAction, Action: action}
}

func ByDateRange(start, end time.Time) Filter {
	return Filter{Kind: FilterByDateRange, Start: start, End: end}
}

func (f Filter) Validate() error {
	switch f.Kind {
	case FilterNone:
		return nil
	case FilterByUser:
		if f.UserID == "" {
			return NewValidationError("userId", "userId is required")
		}
		return nil
	case FilterByAction:
		if f.Action == "" {
			return NewValidationError("action", "action is required")
		}
		if !f.Action.IsValid() {
			return NewValidationError("action", "invalid action: "+string(f.Action))
		}
		return nil
	case FilterByDateRange:
		if f.Start.IsZero() || f.End.IsZero() {
			return NewValidationError("startDate", "startDate and endDate are required query parameters")
		}
		return nil
	}
	return NewValidationError("filter", "unknown filter kind")
}

// Match reports whether a record belongs to the filtered view.
// Date ranges are inclusive on both ends.
func (f Filter) Match(a *Activity) bool {
	switch f.Kind {
	case FilterByUser:
		return a.UserID == f.UserID
	case FilterByAction:
		return a.Action == f.Action
	case FilterByDateRange:
		return !a.Timestamp.Before(f.Start) && !a.Timestamp.After(f.End)
	}
	return true
}
