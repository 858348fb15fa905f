package telegram

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	"health-assistant/internal/config"
	"health-assistant/internal/health"
	"health-assistant/internal/services"
	"health-assistant/internal/utils"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Bot шлёт уведомления в Telegram и принимает команды удалённого
// управления. Не настроен или недоступен — работает как выключенный:
// все отправки возвращают false, приложение живёт дальше.
type Bot struct {
	bot      *tgbotapi.BotAPI
	chatID   int64
	enabled  bool
	services *services.ServiceManager
	handlers map[string]func(*tgbotapi.Message)
}

// NewBot создаёт бота. Ошибка подключения к API — это не фатально:
// возвращается выключенный бот.
func NewBot(cfg *config.Config, serviceManager *services.ServiceManager) *Bot {
	bot := &Bot{
		services: serviceManager,
		handlers: make(map[string]func(*tgbotapi.Message)),
	}
	bot.registerHandlers()

	if !cfg.TelegramReady() {
		log.Println("ℹ️ Telegram не настроен, уведомления отключены")
		return bot
	}

	chatID, err := strconv.ParseInt(strings.TrimSpace(cfg.Telegram.ChatID), 10, 64)
	if err != nil {
		log.Printf("⚠️ Неверный chat_id %q: %v", cfg.Telegram.ChatID, err)
		return bot
	}

	botAPI, err := tgbotapi.NewBotAPI(cfg.Telegram.BotToken)
	if err != nil {
		log.Printf("⚠️ Ошибка подключения к Telegram: %v", err)
		return bot
	}

	bot.bot = botAPI
	bot.chatID = chatID
	bot.enabled = true
	log.Printf("🤖 Telegram-бот подключён: @%s", botAPI.Self.UserName)

	return bot
}

func (b *Bot) registerHandlers() {
	b.handlers["/start"] = b.handleStart
	b.handlers["/stats"] = b.handleStats
	b.handlers["/water"] = b.handleWater
	b.handlers["/session"] = b.handleSession
	b.handlers["/summary"] = b.handleSummary
	b.handlers["/week"] = b.handleWeek
	b.handlers["/history"] = b.handleHistory
	b.handlers["/profile"] = b.handleProfile
	b.handlers["/reset"] = b.handleReset
	b.handlers["/help"] = b.handleHelp
}

// Enabled сообщает, готов ли бот к отправке
func (b *Bot) Enabled() bool {
	return b.enabled
}

// GetUsername возвращает имя бота (для логов при запуске)
func (b *Bot) GetUsername() string {
	if !b.enabled {
		return ""
	}
	return b.bot.Self.UserName
}

// SendMessage отправляет произвольный HTML-текст в настроенный чат
func (b *Bot) SendMessage(text string) error {
	if !b.enabled {
		return fmt.Errorf("telegram отключён")
	}

	msg := tgbotapi.NewMessage(b.chatID, text)
	msg.ParseMode = "HTML"
	_, err := b.bot.Send(msg)
	return err
}

// sendOrFalse — общий исход для типизированных отправок: true при успехе
func (b *Bot) sendOrFalse(text string) bool {
	if err := b.SendMessage(text); err != nil {
		if b.enabled {
			log.Printf("❌ Ошибка отправки в Telegram: %v", err)
		}
		return false
	}
	return true
}

// SendWaterReminder отправляет напоминание о воде
func (b *Bot) SendWaterReminder(amountML int, progressPct float64) bool {
	message := fmt.Sprintf(
		"💧 <b>Пора выпить воды!</b>\n\n"+
			"Выпейте <b>%d мл</b> 🥤\n\n"+
			"Прогресс за день: <b>%.1f%%</b>\n\n"+
			"Не забывайте про гидратацию! 💙",
		amountML, progressPct,
	)
	return b.sendOrFalse(message)
}

// SendBreakReminder отправляет напоминание о перерыве
func (b *Bot) SendBreakReminder(breakType health.BreakType, durationMin, sessionsCompleted int) bool {
	message := fmt.Sprintf(
		"%s <b>%s</b>\n\n"+
			"Вы хорошо поработали! Отдохните <b>%d минут</b>.\n\n"+
			"Сессий завершено: <b>%d</b>\n\n"+
			"Совет: отойдите от экрана, разомнитесь или пройдитесь 🚶",
		utils.GetBreakEmoji(string(breakType)),
		utils.GetBreakLabel(string(breakType)),
		durationMin,
		sessionsCompleted,
	)
	return b.sendOrFalse(message)
}

// SendDailySummary отправляет текстовую сводку дня
func (b *Bot) SendDailySummary(summaryText string) bool {
	formatted := strings.ReplaceAll(summaryText,
		"========================================", "━━━━━━━━━━━━━━━━━━━━━━")
	formatted = strings.ReplaceAll(formatted,
		"DAILY HEALTH ASSISTANT SUMMARY", "📊 СВОДКА ДНЯ")
	return b.sendOrFalse(fmt.Sprintf("<pre>%s</pre>", formatted))
}

// SendAchievement отправляет уведомление о достижении
func (b *Bot) SendAchievement(achievement string) bool {
	return b.sendOrFalse(fmt.Sprintf("🏆 <b>Достижение!</b>\n\n%s", achievement))
}

// Start запускает цикл обработки входящих команд. Блокируется до отмены
// контекста, запускать в отдельной горутине.
func (b *Bot) Start(ctx context.Context) {
	if !b.enabled {
		return
	}

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30

	updates := b.bot.GetUpdatesChan(u)
	log.Println("🤖 Бот слушает команды")

	for {
		select {
		case <-ctx.Done():
			b.bot.StopReceivingUpdates()
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			if update.Message == nil {
				continue
			}
			// команды принимаются только из настроенного чата
			if update.Message.Chat.ID != b.chatID {
				continue
			}
			b.dispatch(update.Message)
		}
	}
}

func (b *Bot) dispatch(msg *tgbotapi.Message) {
	command := strings.Fields(msg.Text)
	if len(command) == 0 {
		return
	}

	handler, ok := b.handlers[command[0]]
	if !ok {
		return
	}

	log.Printf("📨 Команда: %s", command[0])
	handler(msg)
}
