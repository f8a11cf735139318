package models

import "gorm.io/gorm"

// Alert is a per-user event row, mirrored to connected websocket
// clients by the realtime hub.
type Alert struct {
	gorm.Model
	UserID  uint   `gorm:"index;not null"`
	Type    string // e.g. "plan.created", "plan.regenerated"
	Message string
}
