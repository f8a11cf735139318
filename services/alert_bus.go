package services

import (
	"log"

	"github.com/ayiqazmi/MyCalorie/models"

	"gorm.io/gorm"
)

type alertDeps struct {
	db *gorm.DB
	rt *RealtimeHub
}

var _alert alertDeps

func InitAlertDeps(db *gorm.DB, rt *RealtimeHub) {
	_alert = alertDeps{db: db, rt: rt}
}

// EmitAlert records a per-user event and mirrors it to any connected
// websocket clients. Best effort on both sides: a failed insert is
// logged, not raised, and the broadcast still goes out. Safe to call
// before InitAlertDeps (no-op).
func EmitAlert(userID uint, typ, message string) {
	a := &models.Alert{UserID: userID, Type: typ, Message: message}

	if _alert.db != nil {
		if err := _alert.db.Create(a).Error; err != nil {
			log.Printf("[alerts] failed to record %s for user %d: %v", typ, userID, err)
		}
	}
	if _alert.rt != nil {
		_alert.rt.BroadcastToUser(userID, map[string]any{
			"kind":  "alert.created",
			"alert": a,
		})
	}
}
