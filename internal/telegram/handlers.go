package telegram

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"health-assistant/internal/health"
	"health-assistant/internal/utils"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// handlers.go - обработчики команд Telegram-бота

func (b *Bot) handleStart(msg *tgbotapi.Message) {
	message := `💙 <b>Health Assistant</b>

Удалённое управление помощником:
/stats - статистика за сегодня
/water [мл] - отметить выпитую воду
/history - записи о воде за сегодня
/session - старт/стоп рабочей сессии
/summary - сводка дня
/week - аналитика за неделю
/profile [вес уровень] - профиль и дневная норма
/reset - сбросить дневной счётчик воды
/help - справка

Пример:
/water 250`

	b.SendMessageOrLogError(message)
}

func (b *Bot) handleHelp(msg *tgbotapi.Message) {
	b.handleStart(msg)
}

func (b *Bot) handleStats(msg *tgbotapi.Message) {
	stats := b.services.Stats()

	sessionStatus := "🔴 нет"
	if stats.SessionActive {
		sessionStatus = "🟢 идёт"
	}

	message := fmt.Sprintf(
		"📊 <b>Статистика за %s</b>\n\n"+
			"💧 Вода: <b>%d / %d мл</b> (%.1f%%)\n"+
			"Осталось: %d мл\n\n"+
			"⏰ Сессий завершено: <b>%d</b>\n"+
			"Рабочее время: %s\n"+
			"Сессия сейчас: %s\n\n"+
			"📝 Событий в журнале: %d",
		utils.TodayDate(),
		stats.Water.ConsumedML,
		stats.Water.TargetML,
		stats.Water.ProgressPercent,
		stats.Water.RemainingML,
		stats.Breaks.SessionsCompleted,
		utils.FormatMinutes(stats.Breaks.TotalWorkMinutes),
		sessionStatus,
		stats.Events.TotalEvents,
	)

	profile := b.services.Profile()
	if profile.HeightCm > 0 && profile.WeightKg > 0 {
		bmi, category := health.BMI(profile.WeightKg, profile.HeightCm)
		message += fmt.Sprintf("\n⚖️ ИМТ: <b>%.2f</b> (%s)", bmi, category)
	}

	b.SendMessageOrLogError(message)
}

func (b *Bot) handleWater(msg *tgbotapi.Message) {
	parts := strings.Fields(msg.Text)

	amount := 250
	if len(parts) > 1 {
		parsed, err := strconv.Atoi(parts[1])
		if err != nil || parsed <= 0 || parsed > 2000 {
			b.SendMessageOrLogError("❌ Укажите объём в мл от 1 до 2000, например: /water 250")
			return
		}
		amount = parsed
	}

	b.services.AddWaterIntake(amount)
	stats := b.services.Stats()

	b.SendMessageOrLogError(fmt.Sprintf(
		"✅ Записано %d мл\n\n💧 Прогресс: %d / %d мл (%.1f%%)",
		amount,
		stats.Water.ConsumedML,
		stats.Water.TargetML,
		stats.Water.ProgressPercent,
	))
}

func (b *Bot) handleSession(msg *tgbotapi.Message) {
	if b.services.ToggleSession() {
		b.SendMessageOrLogError("▶️ Рабочая сессия начата. Продуктивной работы!")
		return
	}

	stats := b.services.Stats()
	b.SendMessageOrLogError(fmt.Sprintf(
		"⏸️ Сессия завершена.\n\nСессий за день: %d\nРабочее время: %s",
		stats.Breaks.SessionsCompleted,
		utils.FormatMinutes(stats.Breaks.TotalWorkMinutes),
	))
}

func (b *Bot) handleSummary(msg *tgbotapi.Message) {
	text := b.services.DailySummaryText()
	formatted := strings.ReplaceAll(text,
		"========================================", "━━━━━━━━━━━━━━━━━━━━━━")
	b.SendMessageOrLogError(fmt.Sprintf("<pre>%s</pre>", formatted))
}

func (b *Bot) handleWeek(msg *tgbotapi.Message) {
	target := b.services.Water.Target()
	stats, err := b.services.Analytics.GetWeeklyStats(target)
	if err != nil {
		b.SendMessageOrLogError("❌ Ошибка получения недельной аналитики")
		return
	}

	message := fmt.Sprintf(
		"📈 <b>Неделя %d (%s — %s)</b>\n\n"+
			"💧 Всего воды: <b>%d мл</b>\n"+
			"Дней с записями: %d\n\n"+
			"⏰ Сессий: <b>%d</b>\n"+
			"Рабочее время: %s\n\n"+
			"%s",
		stats.WeekNumber,
		stats.StartDate,
		stats.EndDate,
		stats.TotalWaterML,
		stats.DaysWithIntake,
		stats.TotalSessions,
		utils.FormatMinutes(stats.TotalWorkMin),
		stats.Insights,
	)

	b.SendMessageOrLogError(message)
}

func (b *Bot) handleReset(msg *tgbotapi.Message) {
	b.services.ResetDaily()
	b.SendMessageOrLogError("🔄 Дневной счётчик воды сброшен")
}

func (b *Bot) handleHistory(msg *tgbotapi.Message) {
	records, err := b.services.TodayIntakes()
	if err != nil {
		b.SendMessageOrLogError("❌ Ошибка чтения истории")
		return
	}
	if len(records) == 0 {
		b.SendMessageOrLogError("💧 Сегодня записей о воде ещё нет")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("💧 <b>Вода за %s</b>\n\n", utils.TodayDate()))
	total := 0
	for _, r := range records {
		sb.WriteString(fmt.Sprintf("%s — %d мл\n", r.CreatedAt.Format("15:04"), r.AmountML))
		total += r.AmountML
	}
	sb.WriteString(fmt.Sprintf("\nИтого: <b>%d мл</b>", total))

	b.SendMessageOrLogError(sb.String())
}

// handleProfile без аргументов показывает профиль, с аргументами
// "/profile <вес> <уровень>" обновляет его и пересчитывает норму
func (b *Bot) handleProfile(msg *tgbotapi.Message) {
	parts := strings.Fields(msg.Text)

	if len(parts) == 1 {
		profile := b.services.Profile()
		b.SendMessageOrLogError(fmt.Sprintf(
			"⚙️ <b>Профиль</b>\n\n"+
				"Вес: %.0f кг\nРост: %.0f см\n"+
				"Активность: %s\n"+
				"Дневная норма: <b>%d мл</b>\n\n"+
				"Изменить: /profile вес уровень\n"+
				"Уровни: sedentary, light, moderate, active, very_active",
			profile.WeightKg,
			profile.HeightCm,
			utils.GetActivityName(profile.ActivityLevel),
			profile.DailyWaterTargetML,
		))
		return
	}

	if len(parts) != 3 {
		b.SendMessageOrLogError("❌ Формат: /profile вес уровень, например: /profile 80 active")
		return
	}

	weight, err := strconv.ParseFloat(parts[1], 64)
	if err != nil || weight <= 0 || weight > 300 {
		b.SendMessageOrLogError("❌ Вес должен быть числом от 1 до 300 кг")
		return
	}

	level := parts[2]
	if _, ok := health.ActivityMultipliers[level]; !ok {
		b.SendMessageOrLogError("❌ Уровень: sedentary, light, moderate, active или very_active")
		return
	}

	target, err := b.services.UpdateProfile(weight, level)
	if err != nil {
		log.Printf("⚠️ Ошибка сохранения конфигурации: %v", err)
	}

	b.SendMessageOrLogError(fmt.Sprintf(
		"✅ Профиль обновлён\n\nВес: %.0f кг · активность: %s\nНовая дневная норма: <b>%d мл</b>",
		weight,
		utils.GetActivityName(level),
		target,
	))
}
