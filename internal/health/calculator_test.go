package health

import "testing"

func TestDailyWaterTarget(t *testing.T) {
	tests := []struct {
		name     string
		weight   float64
		activity string
		want     int
	}{
		{"sedentary", 70, "sedentary", 2100},
		{"light", 70, "light", 2450},
		{"moderate", 70, "moderate", 2800},
		{"active", 70, "active", 3150},
		{"very_active", 70, "very_active", 3500},
		{"unknown defaults to light", 70, "extreme", 2450},
		{"empty defaults to light", 70, "", 2450},
		{"fractional weight truncates", 62.5, "moderate", 2500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DailyWaterTarget(tt.weight, tt.activity)
			if got != tt.want {
				t.Fatalf("DailyWaterTarget(%v, %q) = %d, want %d", tt.weight, tt.activity, got, tt.want)
			}
		})
	}
}

func TestDailyWaterTargetMonotonic(t *testing.T) {
	order := []string{"sedentary", "light", "moderate", "active", "very_active"}
	weights := []float64{45, 60, 70.5, 88, 120}

	for _, w := range weights {
		prev := -1
		for _, level := range order {
			got := DailyWaterTarget(w, level)
			if got < prev {
				t.Fatalf("target not monotonic at weight %v: %q gives %d after %d", w, level, got, prev)
			}
			prev = got
		}
	}
}

func TestWaterPerReminder(t *testing.T) {
	if got := WaterPerReminder(2500, 16); got != 312 {
		t.Fatalf("WaterPerReminder(2500, 16) = %d, want 312", got)
	}
	if got := WaterPerReminder(2000, 16); got != 250 {
		t.Fatalf("WaterPerReminder(2000, 16) = %d, want 250", got)
	}
	// целочисленное деление на обоих шагах: 15 // 2 = 7 окон
	if got := WaterPerReminder(2100, 15); got != 300 {
		t.Fatalf("WaterPerReminder(2100, 15) = %d, want 300", got)
	}
	// деление на ноль окон не допускается
	if got := WaterPerReminder(2500, 1); got != 2500 {
		t.Fatalf("WaterPerReminder(2500, 1) = %d, want 2500", got)
	}
}

func TestBMI(t *testing.T) {
	tests := []struct {
		weight, height float64
		wantCategory   string
	}{
		{45, 175, "Недостаточный вес"},
		{70, 175, "Норма"},
		{85, 175, "Избыточный вес"},
		{100, 175, "Ожирение"},
	}

	for _, tt := range tests {
		_, category := BMI(tt.weight, tt.height)
		if category != tt.wantCategory {
			t.Fatalf("BMI(%v, %v) category = %q, want %q", tt.weight, tt.height, category, tt.wantCategory)
		}
	}

	value, _ := BMI(70, 175)
	if value != 22.86 {
		t.Fatalf("BMI(70, 175) = %v, want 22.86", value)
	}
}
