package health

import (
	"testing"
	"time"
)

func newTestManager() *AdaptiveBreakManager {
	return NewAdaptiveBreakManager(25, 5, 15, 4)
}

func TestRecommendedBreakLongBySessionCount(t *testing.T) {
	m := newTestManager()
	m.currentSession = 4

	duration, kind := m.RecommendedBreak()
	if kind != BreakLong || duration != 15 {
		t.Fatalf("RecommendedBreak() = (%d, %q), want (15, long)", duration, kind)
	}

	// правило по счётчику сессий выигрывает даже при большом рабочем времени
	m.totalWorkTime = 300
	duration, kind = m.RecommendedBreak()
	if kind != BreakLong || duration != 15 {
		t.Fatalf("RecommendedBreak() with 300 min = (%d, %q), want (15, long)", duration, kind)
	}
}

func TestRecommendedBreakAdaptiveLong(t *testing.T) {
	m := newTestManager()
	m.currentSession = 1
	m.totalWorkTime = 125

	duration, kind := m.RecommendedBreak()
	if kind != BreakAdaptiveLong || duration != 15 {
		t.Fatalf("RecommendedBreak() = (%d, %q), want (15, adaptive_long)", duration, kind)
	}
}

func TestRecommendedBreakShort(t *testing.T) {
	m := newTestManager()
	m.currentSession = 1
	m.totalWorkTime = 30

	duration, kind := m.RecommendedBreak()
	if kind != BreakShort || duration != 5 {
		t.Fatalf("RecommendedBreak() = (%d, %q), want (5, short)", duration, kind)
	}
}

func TestRecommendedBreakThresholdBoundary(t *testing.T) {
	m := newTestManager()
	m.totalWorkTime = 119.9
	if _, kind := m.RecommendedBreak(); kind != BreakShort {
		t.Fatalf("119.9 min: got %q, want short", kind)
	}

	m.totalWorkTime = 120
	if _, kind := m.RecommendedBreak(); kind != BreakAdaptiveLong {
		t.Fatalf("120 min: got %q, want adaptive_long", kind)
	}
}

func TestSessionLifecycle(t *testing.T) {
	m := newTestManager()

	if m.SessionActive() {
		t.Fatal("new manager reports active session")
	}

	m.StartSession()
	if !m.SessionActive() {
		t.Fatal("session not active after StartSession")
	}

	// подменяем старт, чтобы получить детерминированную длительность
	start := time.Now().Add(-30 * time.Minute)
	m.sessionStart = &start

	duration, ok := m.EndSession()
	if !ok {
		t.Fatal("EndSession returned ok=false for active session")
	}
	if duration < 29.9 || duration > 30.1 {
		t.Fatalf("EndSession duration = %v, want ~30", duration)
	}
	if m.SessionActive() {
		t.Fatal("session still active after EndSession")
	}
	if got := m.SessionsCompleted(); got != 1 {
		t.Fatalf("SessionsCompleted() = %d, want 1", got)
	}
	if got := m.TotalWorkMinutes(); got < 29.9 || got > 30.1 {
		t.Fatalf("TotalWorkMinutes() = %v, want ~30", got)
	}
}

func TestEndSessionWithoutStartIsNoop(t *testing.T) {
	m := newTestManager()

	duration, ok := m.EndSession()
	if ok {
		t.Fatal("EndSession without StartSession returned ok=true")
	}
	if duration != 0 {
		t.Fatalf("EndSession duration = %v, want 0", duration)
	}
	if m.SessionsCompleted() != 0 || m.TotalWorkMinutes() != 0 {
		t.Fatalf("state changed: sessions=%d work=%v", m.SessionsCompleted(), m.TotalWorkMinutes())
	}
}

func TestShouldRemindBreak(t *testing.T) {
	m := newTestManager()

	if m.ShouldRemindBreak(24) {
		t.Fatal("reminded before workDuration elapsed")
	}
	if !m.ShouldRemindBreak(25) {
		t.Fatal("no reminder at exactly workDuration")
	}
	if !m.ShouldRemindBreak(90) {
		t.Fatal("no reminder well past workDuration")
	}
}

func TestTakeBreakResetsWorkTimeOnly(t *testing.T) {
	m := newTestManager()
	m.currentSession = 3
	m.totalWorkTime = 80

	m.TakeBreak()

	if got := m.TotalWorkMinutes(); got != 0 {
		t.Fatalf("TotalWorkMinutes() after break = %v, want 0", got)
	}
	if got := m.SessionsCompleted(); got != 3 {
		t.Fatalf("SessionsCompleted() after break = %d, want 3", got)
	}
}

func TestBreakStatsSnapshot(t *testing.T) {
	m := newTestManager()
	m.currentSession = 4
	m.totalWorkTime = 95.5

	stats := m.Stats()
	if stats.SessionsCompleted != 4 {
		t.Fatalf("SessionsCompleted = %d, want 4", stats.SessionsCompleted)
	}
	if stats.TotalWorkMinutes != 95.5 {
		t.Fatalf("TotalWorkMinutes = %v, want 95.5", stats.TotalWorkMinutes)
	}
	if stats.NextBreakType != BreakLong {
		t.Fatalf("NextBreakType = %q, want long", stats.NextBreakType)
	}
}
