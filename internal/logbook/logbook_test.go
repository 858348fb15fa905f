package logbook

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"health-assistant/internal/health"
)

func setupLogger(t *testing.T) *ActivityLogger {
	t.Helper()
	logger, err := New(filepath.Join(t.TempDir(), "logs"))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return logger
}

func TestNewFailsWhenDirUncreatable(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatalf("write blocker failed: %v", err)
	}

	if _, err := New(filepath.Join(blocker, "logs")); err == nil {
		t.Fatal("expected error when log dir cannot be created")
	}
}

func TestLogEventAndReadBack(t *testing.T) {
	logger := setupLogger(t)

	logger.LogEvent(EventWaterIntake, "Consumed 250ml water", "Logged", "Amount: 250ml")
	logger.LogWaterReminder(312, false)

	today := time.Now().Format("2006-01-02")
	entries := logger.LogsForDate(today)
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].EventType != EventWaterIntake || entries[0].ActionTaken != "Logged" {
		t.Fatalf("unexpected first entry: %+v", entries[0])
	}
	if entries[1].EventType != EventWaterReminder || entries[1].ActionTaken != "Ignored" {
		t.Fatalf("unexpected second entry: %+v", entries[1])
	}
}

func TestTodaySummaryCounts(t *testing.T) {
	logger := setupLogger(t)

	logger.LogWaterReminder(312, false)
	logger.LogWaterReminder(312, true)
	logger.LogBreakReminder(health.BreakShort, 5, false)
	logger.LogWaterIntake(250)
	logger.LogWaterIntake(500)
	logger.LogWaterIntake(250)
	logger.LogSessionStart()
	logger.LogSessionEnd(24.5)
	logger.LogTelegramNotification("Water reminder: 312ml", true)
	logger.LogTelegramNotification("Break reminder: short", false)

	summary := logger.TodaySummary()
	if summary.WaterReminders != 2 {
		t.Fatalf("WaterReminders = %d, want 2", summary.WaterReminders)
	}
	if summary.BreakReminders != 1 {
		t.Fatalf("BreakReminders = %d, want 1", summary.BreakReminders)
	}
	if summary.WaterIntakes != 3 {
		t.Fatalf("WaterIntakes = %d, want 3", summary.WaterIntakes)
	}
	if summary.Sessions != 1 {
		t.Fatalf("Sessions = %d, want 1", summary.Sessions)
	}
	// учитываются только успешные отправки
	if summary.TelegramSent != 1 {
		t.Fatalf("TelegramSent = %d, want 1", summary.TelegramSent)
	}
	if summary.TotalEvents != 10 {
		t.Fatalf("TotalEvents = %d, want 10", summary.TotalEvents)
	}
}

func TestLogsForDateSkipsMalformedRows(t *testing.T) {
	logger := setupLogger(t)
	logger.LogWaterIntake(250)

	today := time.Now().Format("2006-01-02")
	path := logger.csvPath(today)

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		t.Fatalf("open log failed: %v", err)
	}
	// строки с неправильным числом полей
	if _, err := f.WriteString("broken,row\njust-garbage\n"); err != nil {
		t.Fatalf("append garbage failed: %v", err)
	}
	f.Close()

	logger.LogSessionStart()

	entries := logger.LogsForDate(today)
	for _, entry := range entries {
		if entry.EventType != EventWaterIntake && entry.EventType != EventSessionStart {
			t.Fatalf("malformed row leaked through: %+v", entry)
		}
	}

	summary := logger.TodaySummary()
	if summary.WaterIntakes != 1 || summary.Sessions != 1 {
		t.Fatalf("summary wrong after malformed rows: %+v", summary)
	}
}

func TestLogsForDateMissingFile(t *testing.T) {
	logger := setupLogger(t)
	if entries := logger.LogsForDate("1999-01-01"); entries != nil {
		t.Fatalf("expected nil for missing file, got %d entries", len(entries))
	}
}

func TestGenerateDailySummary(t *testing.T) {
	logger := setupLogger(t)
	logger.LogWaterIntake(500)

	water := health.WaterStats{ConsumedML: 500, TargetML: 2500, RemainingML: 2000, ProgressPercent: 20}
	breaks := health.BreakStats{SessionsCompleted: 2, TotalWorkMinutes: 48.3, NextBreakType: health.BreakShort}

	text := logger.GenerateDailySummary(water, breaks)
	if !strings.Contains(text, "Consumed: 500 ml") {
		t.Fatalf("summary missing water line:\n%s", text)
	}
	if !strings.Contains(text, "Sessions Completed: 2") {
		t.Fatalf("summary missing sessions line:\n%s", text)
	}

	data, err := os.ReadFile(logger.summaryFile)
	if err != nil {
		t.Fatalf("summary.txt not written: %v", err)
	}
	if !strings.Contains(string(data), "DAILY HEALTH ASSISTANT SUMMARY") {
		t.Fatal("summary.txt missing header")
	}
}
