package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"health-assistant/internal/config"
)

func testPaths(t *testing.T) Paths {
	t.Helper()
	dir := t.TempDir()
	return Paths{
		Database: filepath.Join(dir, "data", "health.db"),
		Logs:     filepath.Join(dir, "logs"),
		Sounds:   filepath.Join(dir, "sounds"),
	}
}

func TestNewCreatesWorkingTree(t *testing.T) {
	paths := testPaths(t)

	a, err := New(config.Default(), paths)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer a.Stop()

	if _, err := os.Stat(paths.Logs); err != nil {
		t.Fatalf("каталог журнала не создан: %v", err)
	}
	if _, err := os.Stat(paths.Database); err != nil {
		t.Fatalf("файл БД не создан: %v", err)
	}
	if a.bot.Enabled() {
		t.Fatal("бот без токена должен быть отключён")
	}
}

func TestStartStopLifecycle(t *testing.T) {
	a, err := New(config.Default(), testPaths(t))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if err := a.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if err := a.Stop(); err != nil {
		t.Fatalf("Stop failed: %v", err)
	}

	summary := a.services.Logbook.TodaySummary()
	if summary.TotalEvents < 2 {
		t.Fatalf("журнал должен содержать события запуска и остановки, всего %d", summary.TotalEvents)
	}
}

func TestStopAppendsSummaryOnce(t *testing.T) {
	paths := testPaths(t)

	a, err := New(config.Default(), paths)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := a.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if err := a.Stop(); err != nil {
		t.Fatalf("Stop failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(paths.Logs, "summary.txt"))
	if err != nil {
		t.Fatalf("summary.txt не записан: %v", err)
	}

	if got := strings.Count(string(data), "DAILY HEALTH ASSISTANT SUMMARY"); got != 1 {
		t.Fatalf("блоков сводки после одной остановки = %d, want 1", got)
	}
}

func TestNewFailsWhenLogDirUncreatable(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	paths := testPaths(t)
	paths.Logs = filepath.Join(blocker, "logs")

	if _, err := New(config.Default(), paths); err == nil {
		t.Fatal("ожидалась ошибка при недоступном каталоге журнала")
	}
}
