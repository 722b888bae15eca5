// Package swap encodes the swap-request lifecycle. The backend is the
// authority on transitions; this package only decides which actions a
// given viewer should be offered for a request in a given state.
package swap

// Status values as the backend reports them.
const (
	StatusPending   = "PENDING"
	StatusAccepted  = "ACCEPTED"
	StatusRejected  = "REJECTED"
	StatusCompleted = "COMPLETED"
	StatusCancelled = "CANCELLED"
)

// Statuses lists every status, in lifecycle order. Used for filter
// dropdowns.
var Statuses = []string{
	StatusPending, StatusAccepted, StatusRejected, StatusCompleted, StatusCancelled,
}

// ValidStatus reports whether s is a known status value.
func ValidStatus(s string) bool {
	for _, v := range Statuses {
		if v == s {
			return true
		}
	}
	return false
}

// Terminal reports whether no further transition exists from s.
func Terminal(s string) bool {
	switch s {
	case StatusRejected, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

type Action string

const (
	ActionAccept        Action = "accept"
	ActionReject        Action = "reject"
	ActionCancel        Action = "cancel"
	ActionComplete      Action = "complete"
	ActionLeaveFeedback Action = "feedback"
)

// AllowedActions returns the actions viewerID may take on a request
// between requesterID and providerID currently in status.
//
// PENDING:   provider may accept or reject, requester may cancel.
// ACCEPTED:  either participant may complete or cancel.
// COMPLETED: either participant may leave feedback.
// REJECTED and CANCELLED are dead ends; non-participants get nothing.
func AllowedActions(status string, viewerID, requesterID, providerID int64) []Action {
	isRequester := viewerID == requesterID
	isProvider := viewerID == providerID
	if !isRequester && !isProvider {
		return nil
	}

	var actions []Action
	switch status {
	case StatusPending:
		if isProvider {
			actions = append(actions, ActionAccept, ActionReject)
		}
		if isRequester {
			actions = append(actions, ActionCancel)
		}
	case StatusAccepted:
		actions = append(actions, ActionComplete, ActionCancel)
	case StatusCompleted:
		actions = append(actions, ActionLeaveFeedback)
	}
	return actions
}

// Allowed reports whether action is in AllowedActions for the viewer.
func Allowed(action Action, status string, viewerID, requesterID, providerID int64) bool {
	for _, a := range AllowedActions(status, viewerID, requesterID, providerID) {
		if a == action {
			return true
		}
	}
	return false
}
