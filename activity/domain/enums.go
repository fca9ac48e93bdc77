package domain

// Action is the closed set of activity kinds accepted by the service.
type Action string

const (
	ActionLogin            Action = "login"
	ActionLogout           Action = "logout"
	ActionProfileUpdate    Action = "profile_update"
	ActionPasswordChange   Action = "password_change"
	ActionAccountCreation  Action = "account_creation"
	ActionAccountDeletion  Action = "account_deletion"
	ActionPermissionChange Action = "permission_change"
	ActionFailedLogin      Action = "failed_login"
	ActionOther            Action = "other"
)

var actions = []Action{
	ActionLogin,
	ActionLogout,
	ActionProfileUpdate,
	ActionPasswordChange,
	ActionAccountCreation,
	ActionAccountDeletion,
	ActionPermissionChange,
	ActionFailedLogin,
	ActionOther,
}

// Actions returns every valid action in declaration order.
func Actions() []Action {
	out := make([]Action, len(actions))
	copy(out, actions)
	return out
}

func (a Action) IsValid() bool {
	for _, v := range actions {
		if a == v {
			return true
		}
	}
	return false
}

type Status string

const (
	StatusSuccess Status = "success"
	StatusFailure Status = "failure"
	StatusPending Status = "pending"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusSuccess, StatusFailure, StatusPending:
		return true
	}
	return false
}
