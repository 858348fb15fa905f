package logbook

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"health-assistant/internal/health"
)

// Типы событий в журнале активности
const (
	EventAppStart          = "APP_START"
	EventAppStop           = "APP_STOP"
	EventWaterReminder     = "WATER_REMINDER"
	EventBreakReminder     = "BREAK_REMINDER"
	EventWaterIntake       = "WATER_INTAKE"
	EventSessionStart      = "SESSION_START"
	EventSessionEnd        = "SESSION_END"
	EventSessionEndIgnored = "SESSION_END_IGNORED"
	EventTelegram          = "TELEGRAM_NOTIFICATION"
	EventDailyReset        = "DAILY_RESET"
)

var csvHeader = []string{"Timestamp", "Event Type", "Description", "Action Taken", "Additional Data"}

// Entry — одна строка журнала
type Entry struct {
	Timestamp      string
	EventType      string
	Description    string
	ActionTaken    string
	AdditionalData string
}

// DaySummary — счётчики событий за день по категориям
type DaySummary struct {
	TotalEvents    int
	WaterReminders int
	BreakReminders int
	WaterIntakes   int
	Sessions       int
	TelegramSent   int
}

// ActivityLogger пишет события в дневной CSV-файл, по одной строке на событие.
// Ошибки записи не поднимаются к вызывающему — они уходят в лог процесса,
// а напоминания продолжают работать.
type ActivityLogger struct {
	mu          sync.Mutex
	dir         string
	summaryFile string
}

// New создаёт журнал в каталоге dir. Невозможность создать каталог —
// единственная фатальная ошибка инициализации.
func New(dir string) (*ActivityLogger, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("ошибка создания каталога журнала %s: %v", dir, err)
	}

	return &ActivityLogger{
		dir:         dir,
		summaryFile: filepath.Join(dir, "summary.txt"),
	}, nil
}

func (l *ActivityLogger) csvPath(date string) string {
	return filepath.Join(l.dir, fmt.Sprintf("activity_log_%s.csv", date))
}

// LogEvent добавляет одну запись в журнал за сегодня
func (l *ActivityLogger) LogEvent(eventType, description, actionTaken, additionalData string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	today := time.Now().Format("2006-01-02")
	path := l.csvPath(today)

	_, statErr := os.Stat(path)
	needHeader := os.IsNotExist(statErr)

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		log.Printf("⚠️ Журнал недоступен: %v", err)
		return
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if needHeader {
		if err := w.Write(csvHeader); err != nil {
			log.Printf("⚠️ Ошибка записи заголовка журнала: %v", err)
			return
		}
	}

	record := []string{
		time.Now().Format("2006-01-02 15:04:05"),
		eventType,
		description,
		actionTaken,
		additionalData,
	}
	if err := w.Write(record); err != nil {
		log.Printf("⚠️ Ошибка записи в журнал: %v", err)
		return
	}
	w.Flush()
	if err := w.Error(); err != nil {
		log.Printf("⚠️ Ошибка сброса журнала: %v", err)
	}
}

// LogWaterReminder фиксирует отправленное напоминание о воде
func (l *ActivityLogger) LogWaterReminder(amountML int, responded bool) {
	action := "Ignored"
	if responded {
		action = "Drank water"
	}
	l.LogEvent(
		EventWaterReminder,
		fmt.Sprintf("Reminder to drink %dml water", amountML),
		action,
		fmt.Sprintf("Amount: %dml", amountML),
	)
}

// LogBreakReminder фиксирует отправленное напоминание о перерыве
func (l *ActivityLogger) LogBreakReminder(breakType health.BreakType, durationMin int, responded bool) {
	action := "Continued working"
	if responded {
		action = "Took break"
	}
	l.LogEvent(
		EventBreakReminder,
		fmt.Sprintf("%s break reminder (%d min)", breakType, durationMin),
		action,
		fmt.Sprintf("Type: %s, Duration: %dmin", breakType, durationMin),
	)
}

// LogSessionStart фиксирует начало рабочей сессии
func (l *ActivityLogger) LogSessionStart() {
	l.LogEvent(EventSessionStart, "Work session started", "Started", "")
}

// LogSessionEnd фиксирует конец рабочей сессии
func (l *ActivityLogger) LogSessionEnd(durationMin float64) {
	l.LogEvent(
		EventSessionEnd,
		"Work session ended",
		"Completed",
		fmt.Sprintf("Duration: %.1f minutes", durationMin),
	)
}

// LogSessionEndIgnored фиксирует попытку завершить сессию, которой не было.
// Состояние не менялось, но событие должно быть видно в журнале.
func (l *ActivityLogger) LogSessionEndIgnored() {
	l.LogEvent(EventSessionEndIgnored, "End session requested with no active session", "No-op", "")
}

// LogWaterIntake фиксирует выпитую воду
func (l *ActivityLogger) LogWaterIntake(amountML int) {
	l.LogEvent(
		EventWaterIntake,
		fmt.Sprintf("Consumed %dml water", amountML),
		"Logged",
		fmt.Sprintf("Amount: %dml", amountML),
	)
}

// LogTelegramNotification фиксирует исход отправки в Telegram
func (l *ActivityLogger) LogTelegramNotification(message string, success bool) {
	action := "Failed"
	if success {
		action = "Sent"
	}
	l.LogEvent(EventTelegram, message, action, "")
}

// TodaySummary пересчитывает счётчики событий за сегодня полным
// сканированием дневного файла. Повреждённые строки пропускаются
// по одной, чтение не падает.
func (l *ActivityLogger) TodaySummary() DaySummary {
	today := time.Now().Format("2006-01-02")
	entries := l.LogsForDate(today)

	var summary DaySummary
	for _, entry := range entries {
		summary.TotalEvents++
		switch entry.EventType {
		case EventWaterReminder:
			summary.WaterReminders++
		case EventBreakReminder:
			summary.BreakReminders++
		case EventWaterIntake:
			summary.WaterIntakes++
		case EventSessionStart:
			summary.Sessions++
		case EventTelegram:
			if entry.ActionTaken == "Sent" {
				summary.TelegramSent++
			}
		}
	}

	return summary
}

// LogsForDate возвращает записи журнала за дату (формат YYYY-MM-DD)
func (l *ActivityLogger) LogsForDate(date string) []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.Open(l.csvPath(date))
	if err != nil {
		return nil
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	var entries []Entry
	first := true
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// повреждённая строка — пропускаем и читаем дальше
			continue
		}
		if first {
			first = false
			if len(record) > 0 && record[0] == csvHeader[0] {
				continue
			}
		}
		if len(record) < 5 {
			continue
		}
		entries = append(entries, Entry{
			Timestamp:      record[0],
			EventType:      record[1],
			Description:    record[2],
			ActionTaken:    record[3],
			AdditionalData: record[4],
		})
	}

	return entries
}

// GenerateDailySummary собирает текстовую сводку дня, дописывает её в
// summary.txt и возвращает текст.
func (l *ActivityLogger) GenerateDailySummary(water health.WaterStats, breaks health.BreakStats) string {
	events := l.TodaySummary()

	text := fmt.Sprintf(`
========================================
DAILY HEALTH ASSISTANT SUMMARY
Date: %s
========================================

📊 EVENT STATISTICS:
- Total Events Logged: %d
- Water Reminders Sent: %d
- Break Reminders Sent: %d
- Water Intake Logged: %d times
- Work Sessions: %d
- Telegram Notifications: %d

💧 WATER INTAKE:
- Consumed: %d ml
- Target: %d ml
- Progress: %.1f%%
- Remaining: %d ml

⏰ WORK & BREAK:
- Sessions Completed: %d
- Total Work Time: %.1f minutes
- Next Break Type: %s

========================================
`,
		time.Now().Format("2006-01-02 15:04:05"),
		events.TotalEvents,
		events.WaterReminders,
		events.BreakReminders,
		events.WaterIntakes,
		events.Sessions,
		events.TelegramSent,
		water.ConsumedML,
		water.TargetML,
		water.ProgressPercent,
		water.RemainingML,
		breaks.SessionsCompleted,
		breaks.TotalWorkMinutes,
		breaks.NextBreakType,
	)

	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.OpenFile(l.summaryFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		log.Printf("⚠️ Файл сводки недоступен: %v", err)
		return text
	}
	defer f.Close()

	if _, err := f.WriteString(text); err != nil {
		log.Printf("⚠️ Ошибка записи сводки: %v", err)
	}

	return text
}
