package database

import (
	"path/filepath"
	"testing"
)

func setupRepo(t *testing.T) *Repository {
	t.Helper()
	db, err := New(filepath.Join(t.TempDir(), "health.db"))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("db close failed: %v", err)
		}
	})
	return NewRepository(db)
}

func TestAddIntakeAndDailyTotals(t *testing.T) {
	repo := setupRepo(t)

	for _, amount := range []int{250, 500, 250} {
		if err := repo.AddIntake("2026-08-30", amount); err != nil {
			t.Fatalf("AddIntake failed: %v", err)
		}
	}
	if err := repo.AddIntake("2026-08-29", 300); err != nil {
		t.Fatalf("AddIntake failed: %v", err)
	}

	totals, err := repo.GetDailyTotals("2026-08-30")
	if err != nil {
		t.Fatalf("GetDailyTotals failed: %v", err)
	}
	if totals.WaterML != 1000 {
		t.Fatalf("WaterML = %d, want 1000", totals.WaterML)
	}
	if totals.IntakeCount != 3 {
		t.Fatalf("IntakeCount = %d, want 3", totals.IntakeCount)
	}
}

func TestDailyTotalsEmptyDay(t *testing.T) {
	repo := setupRepo(t)

	totals, err := repo.GetDailyTotals("2026-01-01")
	if err != nil {
		t.Fatalf("GetDailyTotals failed: %v", err)
	}
	if totals.WaterML != 0 || totals.Sessions != 0 || totals.WorkMinutes != 0 {
		t.Fatalf("empty day totals not zero: %+v", totals)
	}
}

func TestAddSessionAndTotals(t *testing.T) {
	repo := setupRepo(t)

	if err := repo.AddSession("2026-08-30", 25.5); err != nil {
		t.Fatalf("AddSession failed: %v", err)
	}
	if err := repo.AddSession("2026-08-30", 30); err != nil {
		t.Fatalf("AddSession failed: %v", err)
	}

	totals, err := repo.GetDailyTotals("2026-08-30")
	if err != nil {
		t.Fatalf("GetDailyTotals failed: %v", err)
	}
	if totals.Sessions != 2 {
		t.Fatalf("Sessions = %d, want 2", totals.Sessions)
	}
	if totals.WorkMinutes != 55.5 {
		t.Fatalf("WorkMinutes = %v, want 55.5", totals.WorkMinutes)
	}
}

func TestGetIntakesByDateOrdered(t *testing.T) {
	repo := setupRepo(t)

	if err := repo.AddIntake("2026-08-30", 250); err != nil {
		t.Fatalf("AddIntake failed: %v", err)
	}
	if err := repo.AddIntake("2026-08-30", 500); err != nil {
		t.Fatalf("AddIntake failed: %v", err)
	}

	records, err := repo.GetIntakesByDate("2026-08-30")
	if err != nil {
		t.Fatalf("GetIntakesByDate failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].ID == records[1].ID {
		t.Fatal("intake ids must be unique")
	}
}

func TestWeeklyStats(t *testing.T) {
	repo := setupRepo(t)

	days := map[string][]int{
		"2026-08-24": {500, 500},
		"2026-08-25": {250},
		"2026-08-30": {1000},
	}
	for date, amounts := range days {
		for _, amount := range amounts {
			if err := repo.AddIntake(date, amount); err != nil {
				t.Fatalf("AddIntake failed: %v", err)
			}
		}
	}
	if err := repo.AddSession("2026-08-24", 50); err != nil {
		t.Fatalf("AddSession failed: %v", err)
	}
	if err := repo.AddSession("2026-08-25", 25); err != nil {
		t.Fatalf("AddSession failed: %v", err)
	}
	// вне диапазона
	if err := repo.AddIntake("2026-09-10", 999); err != nil {
		t.Fatalf("AddIntake failed: %v", err)
	}

	stats, err := repo.GetWeeklyStats("2026-08-24", "2026-08-30")
	if err != nil {
		t.Fatalf("GetWeeklyStats failed: %v", err)
	}
	if stats.TotalWaterML != 2250 {
		t.Fatalf("TotalWaterML = %d, want 2250", stats.TotalWaterML)
	}
	if stats.DaysWithIntake != 3 {
		t.Fatalf("DaysWithIntake = %d, want 3", stats.DaysWithIntake)
	}
	if stats.TotalSessions != 2 || stats.TotalWorkMin != 75 {
		t.Fatalf("sessions = %d work = %v, want 2 and 75", stats.TotalSessions, stats.TotalWorkMin)
	}
	if day := stats.PerDay["2026-08-24"]; day.WaterML != 1000 || day.Sessions != 1 {
		t.Fatalf("per-day 2026-08-24 wrong: %+v", day)
	}
}
