package database

import "time"

type IntakeRecord struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"`
	AmountML  int       `json:"amount_ml"`
	CreatedAt time.Time `json:"created_at"`
}

type SessionRecord struct {
	ID          string    `json:"id"`
	Date        string    `json:"date"`
	DurationMin float64   `json:"duration_min"`
	CreatedAt   time.Time `json:"created_at"`
}

// DailyTotals — агрегаты по одному дню
type DailyTotals struct {
	Date           string  `json:"date"`
	WaterML        int     `json:"water_ml"`
	IntakeCount    int     `json:"intake_count"`
	Sessions       int     `json:"sessions"`
	WorkMinutes    float64 `json:"work_minutes"`
	TargetML       int     `json:"target_ml"`
	TargetProgress float64 `json:"target_progress"`
}

// WeeklyStats — агрегаты за диапазон дат для недельной аналитики
type WeeklyStats struct {
	StartDate      string                 `json:"start_date"`
	EndDate        string                 `json:"end_date"`
	WeekNumber     int                    `json:"week_number"`
	TotalWaterML   int                    `json:"total_water_ml"`
	TotalSessions  int                    `json:"total_sessions"`
	TotalWorkMin   float64                `json:"total_work_min"`
	DaysWithIntake int                    `json:"days_with_intake"`
	PerDay         map[string]DailyTotals `json:"per_day"`
	Insights       string                 `json:"insights"`
}
