package domain

import "time"

// NotificationType distinguishes notification categories.
type NotificationType string

const (
	NotificationApproval NotificationType = "approval"
	NotificationSystem   NotificationType = "system"
	NotificationInfo     NotificationType = "info"
)

// Notification is an in-app message to one recipient identity.
type Notification struct {
	NotificationID string           `json:"notificationID"`
	User           string           `json:"user"` // recipient username
	Title          string           `json:"title"`
	Message        string           `json:"message"`
	Link           string           `json:"link,omitempty"`
	Type           NotificationType `json:"type"`
	IsRead         bool             `json:"isRead"`
	CreatedBy      string           `json:"createdBy"`
	CreatedAt      time.Time        `json:"createdAt"`
}
