package usecase

import (
	"testing"

	"smartbuddy/model"
)

func TestTimerRegistryReturnsSameTimerPerUser(t *testing.T) {
	registry := NewTimerRegistry(NewFocusService(nil, nil))

	if _, ok := registry.Get("user-1"); ok {
		t.Fatal("expected no timer before first use")
	}

	first := registry.TimerFor("user-1", model.FocusModeMedium, "Chrome on Mac")
	second := registry.TimerFor("user-1", model.FocusModeLight, "Firefox on Linux")
	if first != second {
		t.Error("expected the same timer instance on repeat lookups")
	}

	other := registry.TimerFor("user-2", model.FocusModeMedium, "Chrome on Mac")
	if other == first {
		t.Error("expected distinct timers for distinct users")
	}

	got, ok := registry.Get("user-1")
	if !ok || got != first {
		t.Error("Get should return the created timer")
	}
}
