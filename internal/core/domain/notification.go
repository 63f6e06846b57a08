package domain

import "time"

// NotificationType is the severity shown to the user.
type NotificationType string

const (
	NotifyInfo    NotificationType = "info"
	NotifySuccess NotificationType = "success"
	NotifyWarning NotificationType = "warning"
	NotifyError   NotificationType = "error"
)

// Notification is created as a side effect of engine operations and at
// session initialization. The only mutation is marking it read, one-way.
type Notification struct {
	NotificationID string           `json:"id"`
	UserID         string           `json:"userId"`
	Title          string           `json:"title"`
	Message        string           `json:"message"`
	Type           NotificationType `json:"type"`
	Read           bool             `json:"read"`
	CreatedAt      time.Time        `json:"createdAt"`
}
