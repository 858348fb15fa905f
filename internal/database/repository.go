package database

import (
	"database/sql"

	"github.com/google/uuid"
)

type Repository struct {
	Db *Database
}

func NewRepository(db *Database) *Repository {
	return &Repository{Db: db}
}

// AddIntake сохраняет запись о выпитой воде
func (r *Repository) AddIntake(date string, amountML int) error {
	_, err := r.Db.db.Exec(`
		INSERT INTO water_intake (id, date, amount_ml)
		VALUES (?, ?, ?)
	`, uuid.NewString(), date, amountML)
	return err
}

// AddSession сохраняет завершённую рабочую сессию
func (r *Repository) AddSession(date string, durationMin float64) error {
	_, err := r.Db.db.Exec(`
		INSERT INTO work_sessions (id, date, duration_min)
		VALUES (?, ?, ?)
	`, uuid.NewString(), date, durationMin)
	return err
}

// GetIntakesByDate возвращает записи о воде за день в порядке добавления
func (r *Repository) GetIntakesByDate(date string) ([]IntakeRecord, error) {
	rows, err := r.Db.db.Query(`
		SELECT id, date, amount_ml, created_at
		FROM water_intake
		WHERE date = ?
		ORDER BY created_at, rowid
	`, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []IntakeRecord
	for rows.Next() {
		var record IntakeRecord
		err := rows.Scan(
			&record.ID,
			&record.Date,
			&record.AmountML,
			&record.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, rows.Err()
}

// GetDailyTotals возвращает агрегаты по одному дню
func (r *Repository) GetDailyTotals(date string) (*DailyTotals, error) {
	totals := &DailyTotals{Date: date}

	var waterML, intakeCount sql.NullInt64
	err := r.Db.db.QueryRow(`
		SELECT SUM(amount_ml), COUNT(*)
		FROM water_intake
		WHERE date = ?
	`, date).Scan(&waterML, &intakeCount)
	if err != nil {
		return nil, err
	}
	if waterML.Valid {
		totals.WaterML = int(waterML.Int64)
	}
	if intakeCount.Valid {
		totals.IntakeCount = int(intakeCount.Int64)
	}

	var sessions sql.NullInt64
	var workMin sql.NullFloat64
	err = r.Db.db.QueryRow(`
		SELECT COUNT(*), SUM(duration_min)
		FROM work_sessions
		WHERE date = ?
	`, date).Scan(&sessions, &workMin)
	if err != nil {
		return nil, err
	}
	if sessions.Valid {
		totals.Sessions = int(sessions.Int64)
	}
	if workMin.Valid {
		totals.WorkMinutes = workMin.Float64
	}

	return totals, nil
}

// GetWeeklyStats возвращает агрегаты за диапазон дат
func (r *Repository) GetWeeklyStats(startDate, endDate string) (*WeeklyStats, error) {
	stats := &WeeklyStats{
		StartDate: startDate,
		EndDate:   endDate,
		PerDay:    make(map[string]DailyTotals),
	}

	rows, err := r.Db.db.Query(`
		SELECT date, SUM(amount_ml), COUNT(*)
		FROM water_intake
		WHERE date BETWEEN ? AND ?
		GROUP BY date
	`, startDate, endDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var date string
		var waterML, count int
		if err := rows.Scan(&date, &waterML, &count); err != nil {
			return nil, err
		}
		day := stats.PerDay[date]
		day.Date = date
		day.WaterML = waterML
		day.IntakeCount = count
		stats.PerDay[date] = day

		stats.TotalWaterML += waterML
		stats.DaysWithIntake++
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	sessionRows, err := r.Db.db.Query(`
		SELECT date, COUNT(*), SUM(duration_min)
		FROM work_sessions
		WHERE date BETWEEN ? AND ?
		GROUP BY date
	`, startDate, endDate)
	if err != nil {
		return nil, err
	}
	defer sessionRows.Close()

	for sessionRows.Next() {
		var date string
		var sessions int
		var workMin float64
		if err := sessionRows.Scan(&date, &sessions, &workMin); err != nil {
			return nil, err
		}
		day := stats.PerDay[date]
		day.Date = date
		day.Sessions = sessions
		day.WorkMinutes = workMin
		stats.PerDay[date] = day

		stats.TotalSessions += sessions
		stats.TotalWorkMin += workMin
	}

	return stats, sessionRows.Err()
}
