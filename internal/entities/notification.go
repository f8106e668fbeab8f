package entities

import "frontdesk/internal/db"

type NotificationsList struct {
	Unread        int               `json:"unread"`
	Notifications []db.Notification `json:"notifications"`
}
