package models

import "time"

// AccountEventType names a lifecycle event of an account.
type AccountEventType string

const (
	EventUserRegistered      AccountEventType = "user.registered"
	EventUserLoggedIn        AccountEventType = "user.logged_in"
	EventUserLoggedOut       AccountEventType = "user.logged_out"
	EventUserPasswordChanged AccountEventType = "user.password_changed"
	EventUserDeleted         AccountEventType = "user.deleted"
)

// AccountEvent is published to the event bus after a state change of an
// account has been persisted.
type AccountEvent struct {
	Type       AccountEventType `json:"type"`
	UserID     string           `json:"userId"`
	Username   string           `json:"username,omitempty"`
	OccurredAt time.Time        `json:"occurredAt"`
}

// NewAccountEvent builds an event for user u stamped with at.
func NewAccountEvent(eventType AccountEventType, u User, at time.Time) AccountEvent {
	return AccountEvent{
		Type:       eventType,
		UserID:     u.UserID,
		Username:   u.Username,
		OccurredAt: at.UTC(),
	}
}
