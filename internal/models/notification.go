package models

import "time"

// Notification is the database representation of an in-app notification.
type Notification struct {
	NotificationID string    `db:"notification_id"`
	Username       string    `db:"username"`
	Title          string    `db:"title"`
	Message        string    `db:"message"`
	Link           string    `db:"link"`
	Type           string    `db:"type"`
	IsRead         bool      `db:"is_read"`
	CreatedBy      string    `db:"created_by"`
	CreatedAt      time.Time `db:"created_at"`
}
