package utils

import (
	"fmt"
	"time"
)

// TodayDate возвращает сегодняшнюю дату в локальной зоне пользователя.
// Приложение настольное, поэтому всё время локальное, не UTC.
func TodayDate() string {
	return time.Now().Format("2006-01-02")
}

// CurrentClock возвращает текущее время ЧЧ:ММ
func CurrentClock() string {
	return time.Now().Format("15:04")
}

// WeekRange возвращает понедельник и воскресенье недели, в которую входит t
func WeekRange(t time.Time) (string, string) {
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7 // воскресенье в конец недели
	}
	monday := t.AddDate(0, 0, -(weekday - 1))
	sunday := monday.AddDate(0, 0, 6)
	return monday.Format("2006-01-02"), sunday.Format("2006-01-02")
}

// FormatMinutes форматирует минуты для отображения: "45 мин" или "2 ч 05 мин"
func FormatMinutes(minutes float64) string {
	total := int(minutes)
	if total < 60 {
		return fmt.Sprintf("%d мин", total)
	}
	return fmt.Sprintf("%d ч %02d мин", total/60, total%60)
}

// MinutesSince возвращает целые минуты, прошедшие с момента t
func MinutesSince(t time.Time) int {
	return int(time.Since(t).Minutes())
}
