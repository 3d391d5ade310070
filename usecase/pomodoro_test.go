package usecase

import (
	"context"
	"testing"
	"time"
)

type fakeRecorder struct {
	opened int
	closed []int // elapsed seconds per closed session
	nextID string
}

func (f *fakeRecorder) OpenSession(ctx context.Context, start time.Time) (string, error) {
	f.opened++
	if f.nextID == "" {
		f.nextID = "session-1"
	}
	return f.nextID, nil
}

func (f *fakeRecorder) CloseSession(ctx context.Context, sessionID string, end time.Time, elapsedSeconds int) error {
	f.closed = append(f.closed, elapsedSeconds)
	return nil
}

func TestTimerDefaults(t *testing.T) {
	timer := NewPomodoroTimer(nil)
	if timer.Phase() != PhaseFocus {
		t.Errorf("initial phase = %s", timer.Phase())
	}
	if timer.Remaining() != MinFocusMinutes*60 {
		t.Errorf("initial remaining = %d", timer.Remaining())
	}
	if timer.Running() {
		t.Error("timer running before Start")
	}
}

func TestSetFocusDuration(t *testing.T) {
	timer := NewPomodoroTimer(nil)

	for _, minutes := range []int{24, 61, 27, 0} {
		if err := timer.SetFocusDuration(minutes); err == nil {
			t.Errorf("SetFocusDuration(%d) accepted", minutes)
		}
	}

	if err := timer.SetFocusDuration(45); err != nil {
		t.Fatalf("SetFocusDuration(45): %v", err)
	}
	if timer.Remaining() != 45*60 {
		t.Errorf("remaining = %d after reconfiguring a fresh timer", timer.Remaining())
	}
}

func TestSetBreakDuration(t *testing.T) {
	timer := NewPomodoroTimer(nil)
	if err := timer.SetBreakDuration(4); err == nil {
		t.Error("SetBreakDuration(4) accepted")
	}
	if err := timer.SetBreakDuration(11); err == nil {
		t.Error("SetBreakDuration(11) accepted")
	}
	if err := timer.SetBreakDuration(10); err != nil {
		t.Errorf("SetBreakDuration(10): %v", err)
	}
}

func TestStartOpensSessionOnce(t *testing.T) {
	rec := &fakeRecorder{}
	timer := NewPomodoroTimer(rec)
	ctx := context.Background()

	if err := timer.Start(ctx); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if rec.opened != 1 {
		t.Fatalf("opened = %d, want 1", rec.opened)
	}

	// Pause then resume: the open session is reused, not reopened.
	timer.Pause()
	if timer.Running() {
		t.Error("running after Pause")
	}
	if len(rec.closed) != 0 {
		t.Error("pause closed the session")
	}
	if err := timer.Start(ctx); err != nil {
		t.Fatalf("resume: %v", err)
	}
	if rec.opened != 1 {
		t.Errorf("opened = %d after resume, want 1", rec.opened)
	}
	timer.Pause()
}

func TestNaturalFocusCompletion(t *testing.T) {
	rec := &fakeRecorder{}
	timer := NewPomodoroTimer(rec)
	ctx := context.Background()

	if err := timer.Start(ctx); err != nil {
		t.Fatalf("Start: %v", err)
	}

	// Drive the countdown to its last second and tick it over.
	timer.mu.Lock()
	timer.remaining = 1
	timer.mu.Unlock()
	if done := timer.tick(ctx); !done {
		t.Error("tick at zero did not stop the run")
	}

	if timer.Phase() != PhaseBreak {
		t.Errorf("phase after focus = %s, want break", timer.Phase())
	}
	if timer.Remaining() != MinBreakMinutes*60 {
		t.Errorf("break remaining = %d", timer.Remaining())
	}
	if timer.SessionCount() != 1 {
		t.Errorf("session count = %d", timer.SessionCount())
	}
	// Natural completion reports the full configured duration.
	if len(rec.closed) != 1 || rec.closed[0] != MinFocusMinutes*60 {
		t.Errorf("closed = %v, want [%d]", rec.closed, MinFocusMinutes*60)
	}
}

func TestThirdSessionEarnsLongRest(t *testing.T) {
	timer := NewPomodoroTimer(nil)

	timer.mu.Lock()
	timer.sessionCount = 2
	timer.finishFocusLocked()
	phase, remaining, count := timer.phase, timer.remaining, timer.sessionCount
	timer.mu.Unlock()

	if phase != PhaseLongRest {
		t.Errorf("phase = %s, want long_rest", phase)
	}
	if remaining != LongRestMinutes*60 {
		t.Errorf("long rest remaining = %d, want %d", remaining, LongRestMinutes*60)
	}
	if count != 0 {
		t.Errorf("session counter = %d, want reset to 0", count)
	}
}

func TestCompleteEarlyReportsElapsed(t *testing.T) {
	rec := &fakeRecorder{}
	timer := NewPomodoroTimer(rec)
	ctx := context.Background()

	if err := timer.CompleteEarly(ctx); err == nil {
		t.Error("CompleteEarly accepted while idle")
	}

	if err := timer.Start(ctx); err != nil {
		t.Fatalf("Start: %v", err)
	}

	// 10 minutes in.
	timer.mu.Lock()
	timer.remaining = timer.phaseLength - 600
	timer.mu.Unlock()

	if err := timer.CompleteEarly(ctx); err != nil {
		t.Fatalf("CompleteEarly: %v", err)
	}
	if len(rec.closed) != 1 || rec.closed[0] != 600 {
		t.Errorf("closed = %v, want [600]", rec.closed)
	}
	if timer.Phase() != PhaseBreak {
		t.Errorf("phase = %s, want break", timer.Phase())
	}
	if timer.SessionCount() != 1 {
		t.Errorf("session count = %d, want 1", timer.SessionCount())
	}
}

func TestSkip(t *testing.T) {
	timer := NewPomodoroTimer(nil)
	if err := timer.Skip(); err == nil {
		t.Error("Skip accepted during focus")
	}

	timer.mu.Lock()
	timer.phase = PhaseBreak
	timer.remaining = 200
	timer.mu.Unlock()

	if err := timer.Skip(); err != nil {
		t.Fatalf("Skip: %v", err)
	}
	if timer.Phase() != PhaseFocus {
		t.Errorf("phase after skip = %s", timer.Phase())
	}
	if timer.Remaining() != MinFocusMinutes*60 {
		t.Errorf("remaining after skip = %d", timer.Remaining())
	}
}

func TestResetClosesOpenSession(t *testing.T) {
	rec := &fakeRecorder{}
	timer := NewPomodoroTimer(rec)
	ctx := context.Background()

	if err := timer.SetFocusDuration(30); err != nil {
		t.Fatalf("SetFocusDuration: %v", err)
	}
	if err := timer.Start(ctx); err != nil {
		t.Fatalf("Start: %v", err)
	}

	timer.mu.Lock()
	timer.remaining = timer.phaseLength - 90
	timer.mu.Unlock()

	if err := timer.Reset(ctx); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if len(rec.closed) != 1 || rec.closed[0] != 90 {
		t.Errorf("closed = %v, want [90]", rec.closed)
	}
	if timer.Phase() != PhaseFocus || timer.Remaining() != 30*60 {
		t.Errorf("after reset: phase %s remaining %d", timer.Phase(), timer.Remaining())
	}
	if timer.Running() {
		t.Error("running after Reset")
	}
}

func TestBreakEndReturnsToFocus(t *testing.T) {
	timer := NewPomodoroTimer(nil)
	ctx := context.Background()

	timer.mu.Lock()
	timer.phase = PhaseBreak
	timer.remaining = 1
	timer.phaseLength = MinBreakMinutes * 60
	timer.running = true
	timer.mu.Unlock()

	timer.tick(ctx)

	if timer.Phase() != PhaseFocus {
		t.Errorf("phase after break = %s, want focus", timer.Phase())
	}
	if timer.Remaining() != MinFocusMinutes*60 {
		t.Errorf("remaining = %d", timer.Remaining())
	}
}
