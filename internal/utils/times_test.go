package utils

import (
	"testing"
	"time"
)

func TestWeekRange(t *testing.T) {
	tests := []struct {
		name       string
		day        string
		wantMonday string
		wantSunday string
	}{
		{"среда", "2026-08-26", "2026-08-24", "2026-08-30"},
		{"понедельник", "2026-08-24", "2026-08-24", "2026-08-30"},
		{"воскресенье в конце недели", "2026-08-30", "2026-08-24", "2026-08-30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			day, err := time.Parse("2006-01-02", tt.day)
			if err != nil {
				t.Fatal(err)
			}

			monday, sunday := WeekRange(day)
			if monday != tt.wantMonday || sunday != tt.wantSunday {
				t.Fatalf("WeekRange(%s) = %s..%s, want %s..%s",
					tt.day, monday, sunday, tt.wantMonday, tt.wantSunday)
			}
		})
	}
}

func TestFormatMinutes(t *testing.T) {
	tests := []struct {
		minutes float64
		want    string
	}{
		{0, "0 мин"},
		{45, "45 мин"},
		{59.9, "59 мин"},
		{60, "1 ч 00 мин"},
		{125, "2 ч 05 мин"},
	}

	for _, tt := range tests {
		if got := FormatMinutes(tt.minutes); got != tt.want {
			t.Errorf("FormatMinutes(%v) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}

func TestMinutesSince(t *testing.T) {
	start := time.Now().Add(-30 * time.Minute)
	got := MinutesSince(start)
	if got < 29 || got > 31 {
		t.Fatalf("MinutesSince = %d, want ~30", got)
	}
}

func TestBreakLabels(t *testing.T) {
	if GetBreakLabel("short") == GetBreakLabel("long") {
		t.Fatal("короткий и длинный перерыв должны различаться")
	}
	if GetBreakLabel("unknown") != "Перерыв" {
		t.Fatalf("неизвестный тип: %q", GetBreakLabel("unknown"))
	}
	if GetBreakEmoji("short") != "☕" || GetBreakEmoji("long") != "🌟" {
		t.Fatal("эмодзи перерывов перепутаны")
	}
}
