package usecase

import (
	"sync"

	"smartbuddy/model"
)

// TimerRegistry holds one Pomodoro timer per user so the server stays the
// authority on phase and remaining time. Timers are created lazily on the
// first start and live for the process lifetime.
type TimerRegistry struct {
	mu     sync.Mutex
	focus  *FocusService
	timers map[string]*PomodoroTimer
}

func NewTimerRegistry(focus *FocusService) *TimerRegistry {
	return &TimerRegistry{
		focus:  focus,
		timers: make(map[string]*PomodoroTimer),
	}
}

// TimerFor returns the user's timer, creating one bound to their session
// recorder if none exists yet. Mode and device info only apply at creation;
// an existing timer keeps the recorder it started with.
func (r *TimerRegistry) TimerFor(userID string, mode model.FocusMode, deviceInfo string) *PomodoroTimer {
	r.mu.Lock()
	defer r.mu.Unlock()
	if timer, ok := r.timers[userID]; ok {
		return timer
	}
	timer := NewPomodoroTimer(r.focus.RecorderFor(userID, mode, deviceInfo))
	r.timers[userID] = timer
	return timer
}

// Get returns the user's timer without creating one.
func (r *TimerRegistry) Get(userID string) (*PomodoroTimer, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	timer, ok := r.timers[userID]
	return timer, ok
}
