package usecase

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"
)

type TimerPhase string

const (
	PhaseFocus    TimerPhase = "focus"
	PhaseBreak    TimerPhase = "break"
	PhaseLongRest TimerPhase = "long_rest"
)

const (
	MinFocusMinutes = 25
	MaxFocusMinutes = 60
	MinBreakMinutes = 5
	MaxBreakMinutes = 10

	// LongRest is fixed and not user-configurable.
	LongRestMinutes = 25

	// Every third completed focus session earns a long rest.
	SessionsPerLongRest = 3
)

// SessionRecorder persists the focus-session record a running timer opens at
// start and closes with elapsed seconds.
type SessionRecorder interface {
	OpenSession(ctx context.Context, start time.Time) (string, error)
	CloseSession(ctx context.Context, sessionID string, end time.Time, elapsedSeconds int) error
}

// PomodoroTimer is the three-phase focus timer. One timer per instance; the
// 1-second tick runs only while the timer is running, and pausing stops the
// tick without losing remaining time or closing the open session record.
type PomodoroTimer struct {
	mu sync.Mutex

	phase        TimerPhase
	running      bool
	remaining    int // seconds left in the current phase
	phaseLength  int // seconds the current phase started with
	focusMinutes int
	breakMinutes int
	sessionCount int
	sessionID    string

	recorder     SessionRecorder
	now          func() time.Time
	tickInterval time.Duration
	stopTick     chan struct{}
}

func NewPomodoroTimer(recorder SessionRecorder) *PomodoroTimer {
	return &PomodoroTimer{
		phase:        PhaseFocus,
		remaining:    MinFocusMinutes * 60,
		phaseLength:  MinFocusMinutes * 60,
		focusMinutes: MinFocusMinutes,
		breakMinutes: MinBreakMinutes,
		recorder:     recorder,
		now:          time.Now,
		tickInterval: time.Second,
	}
}

// SetFocusDuration configures the focus length, 25-60 minutes in 5-minute
// increments. Takes effect the next time a focus phase starts.
func (t *PomodoroTimer) SetFocusDuration(minutes int) error {
	if minutes < MinFocusMinutes || minutes > MaxFocusMinutes || minutes%5 != 0 {
		return errors.New("focus duration must be 25-60 minutes in 5-minute increments")
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.focusMinutes = minutes
	if t.phase == PhaseFocus && !t.running && t.sessionID == "" {
		t.remaining = minutes * 60
		t.phaseLength = minutes * 60
	}
	return nil
}

// SetBreakDuration configures the short break length, 5-10 minutes.
func (t *PomodoroTimer) SetBreakDuration(minutes int) error {
	if minutes < MinBreakMinutes || minutes > MaxBreakMinutes {
		return errors.New("break duration must be 5-10 minutes")
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.breakMinutes = minutes
	return nil
}

// Start begins or resumes the countdown. Starting a fresh focus phase opens
// a session record; resuming after a pause reuses the one already open.
func (t *PomodoroTimer) Start(ctx context.Context) error {
	t.mu.Lock()
	if t.running {
		t.mu.Unlock()
		return nil
	}
	if t.phase == PhaseFocus && t.sessionID == "" && t.recorder != nil {
		id, err := t.recorder.OpenSession(ctx, t.now())
		if err != nil {
			t.mu.Unlock()
			return err
		}
		t.sessionID = id
	}
	t.running = true
	t.stopTick = make(chan struct{})
	stop := t.stopTick
	t.mu.Unlock()

	go t.tickLoop(ctx, stop)
	return nil
}

// Pause stops the tick, keeping remaining time. An open focus session stays
// open until resumed or explicitly ended.
func (t *PomodoroTimer) Pause() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.pauseLocked()
}

// Reset ends the current phase, closing any open focus session with the
// elapsed seconds, and returns to a full focus countdown.
func (t *PomodoroTimer) Reset(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.pauseLocked()

	var err error
	if t.sessionID != "" {
		elapsed := t.phaseLength - t.remaining
		err = t.closeSessionLocked(ctx, elapsed)
	}

	t.phase = PhaseFocus
	t.remaining = t.focusMinutes * 60
	t.phaseLength = t.remaining
	return err
}

// CompleteEarly ends a running focus phase now, reporting the configured
// duration minus the remaining time, and moves on to the earned break.
func (t *PomodoroTimer) CompleteEarly(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.phase != PhaseFocus || !t.running {
		return errors.New("no running focus session to complete")
	}
	t.pauseLocked()

	elapsed := t.phaseLength - t.remaining
	err := t.closeSessionLocked(ctx, elapsed)
	t.finishFocusLocked()
	return err
}

// Skip ends a break or long rest immediately and returns to focus.
func (t *PomodoroTimer) Skip() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.phase == PhaseFocus {
		return errors.New("cannot skip a focus phase")
	}
	t.pauseLocked()
	t.startFocusLocked()
	return nil
}

func (t *PomodoroTimer) Phase() TimerPhase {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.phase
}

func (t *PomodoroTimer) Remaining() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.remaining
}

func (t *PomodoroTimer) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running
}

func (t *PomodoroTimer) SessionCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.sessionCount
}

func (t *PomodoroTimer) tickLoop(ctx context.Context, stop chan struct{}) {
	ticker := time.NewTicker(t.tickInterval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			if done := t.tick(ctx); done {
				return
			}
		}
	}
}

// tick advances the countdown by one second and drives phase transitions
// when it reaches zero. Returns true once the current run is over.
func (t *PomodoroTimer) tick(ctx context.Context) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.running {
		return true
	}

	t.remaining--
	if t.remaining > 0 {
		return false
	}
	t.remaining = 0
	t.pauseLocked()

	switch t.phase {
	case PhaseFocus:
		// Natural completion reports the full configured duration.
		if err := t.closeSessionLocked(ctx, t.phaseLength); err != nil {
			log.Printf("Failed to close focus session: %v", err)
		}
		t.finishFocusLocked()
	case PhaseBreak, PhaseLongRest:
		t.startFocusLocked()
	}
	return true
}

// finishFocusLocked counts the completed focus session and enters the earned
// rest phase: every third session a fixed long rest, otherwise a short break.
func (t *PomodoroTimer) finishFocusLocked() {
	t.sessionCount++
	if t.sessionCount >= SessionsPerLongRest {
		t.sessionCount = 0
		t.phase = PhaseLongRest
		t.remaining = LongRestMinutes * 60
	} else {
		t.phase = PhaseBreak
		t.remaining = t.breakMinutes * 60
	}
	t.phaseLength = t.remaining
}

func (t *PomodoroTimer) startFocusLocked() {
	t.phase = PhaseFocus
	t.remaining = t.focusMinutes * 60
	t.phaseLength = t.remaining
}

func (t *PomodoroTimer) pauseLocked() {
	t.running = false
	if t.stopTick != nil {
		close(t.stopTick)
		t.stopTick = nil
	}
}

func (t *PomodoroTimer) closeSessionLocked(ctx context.Context, elapsedSeconds int) error {
	if t.sessionID == "" || t.recorder == nil {
		return nil
	}
	id := t.sessionID
	t.sessionID = ""
	if elapsedSeconds < 0 {
		elapsedSeconds = 0
	}
	return t.recorder.CloseSession(ctx, id, t.now(), elapsedSeconds)
}
