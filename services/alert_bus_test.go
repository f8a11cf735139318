package services

import (
	"encoding/json"
	"testing"
	"time"
)

func TestEmitAlertMirrorsToHub(t *testing.T) {
	hub := NewRealtimeHub()
	client := dialHubClient(t, hub, 3)

	InitAlertDeps(nil, hub)
	t.Cleanup(func() { InitAlertDeps(nil, nil) })

	EmitAlert(3, "plan.created", "Your meal plan for 2025-01-01 is ready")

	_ = client.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := client.ReadMessage()
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}

	var got struct {
		Kind  string `json:"kind"`
		Alert struct {
			UserID  uint
			Type    string
			Message string
		} `json:"alert"`
	}
	if err := json.Unmarshal(msg, &got); err != nil {
		t.Fatalf("bad payload %s: %v", msg, err)
	}
	if got.Kind != "alert.created" {
		t.Errorf("kind = %q, want alert.created", got.Kind)
	}
	if got.Alert.UserID != 3 || got.Alert.Type != "plan.created" {
		t.Errorf("alert = %+v", got.Alert)
	}
}

func TestEmitAlertNoopBeforeInit(t *testing.T) {
	InitAlertDeps(nil, nil)
	EmitAlert(1, "plan.created", "x") // must not panic
}
