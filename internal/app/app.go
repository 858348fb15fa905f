package app

import (
	"context"
	"log"
	"path/filepath"

	"health-assistant/internal/config"
	"health-assistant/internal/database"
	"health-assistant/internal/logbook"
	"health-assistant/internal/services"
	"health-assistant/internal/sound"
	"health-assistant/internal/telegram"
	"health-assistant/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/robfig/cron/v3"
)

// Paths рассказывает приложению, где лежат его файлы. Нулевое значение
// дополняется значениями по умолчанию относительно рабочей директории.
type Paths struct {
	Database string
	Logs     string
	Sounds   string
}

func (p Paths) withDefaults() Paths {
	if p.Database == "" {
		p.Database = filepath.Join("data", "health.db")
	}
	if p.Logs == "" {
		p.Logs = "logs"
	}
	if p.Sounds == "" {
		p.Sounds = "sounds"
	}
	return p
}

type Application struct {
	config     *config.Config
	db         *database.Database
	bot        *telegram.Bot
	services   *services.ServiceManager
	program    *tea.Program
	cron       *cron.Cron
	cancelFunc context.CancelFunc
	ctx        context.Context
}

func New(cfg *config.Config, paths Paths) (*Application, error) {
	paths = paths.withDefaults()

	logb, err := logbook.New(paths.Logs)
	if err != nil {
		// единственная фатальная ошибка запуска: некуда писать журнал
		return nil, err
	}

	db, err := database.New(paths.Database)
	if err != nil {
		return nil, err
	}

	player := sound.New(paths.Sounds, bool(cfg.Sound.Enabled), cfg.Sound.Volume)

	serviceManager := services.NewServiceManager(cfg, database.NewRepository(db), logb, player)

	bot := telegram.NewBot(cfg, serviceManager)
	serviceManager.SetMessageSender(bot)

	program := tea.NewProgram(tui.NewDashboardModel(serviceManager), tea.WithAltScreen())
	serviceManager.SetNotifier(tui.NewNotifier(program))

	ctx, cancel := context.WithCancel(context.Background())

	app := &Application{
		config:     cfg,
		db:         db,
		bot:        bot,
		services:   serviceManager,
		program:    program,
		cron:       cron.New(),
		cancelFunc: cancel,
		ctx:        ctx,
	}

	app.setupCronJobs()

	return app, nil
}

// Start поднимает фоновые контуры: Telegram-бота и cron-циклы.
// Интерфейс запускается отдельно через Run.
func (a *Application) Start() error {
	log.Println("🚀 Запуск приложения...")

	a.services.Logbook.LogEvent(logbook.EventAppStart, "Приложение запущено", "", "")

	go a.bot.Start(a.ctx)
	a.cron.Start()

	if a.bot.Enabled() {
		a.sendWelcomeMessage()
		log.Printf("✅ Приложение запущено. Бот: @%s", a.bot.GetUsername())
	} else {
		log.Println("✅ Приложение запущено. Telegram отключён")
	}

	return nil
}

// Run запускает интерфейс и блокируется до выхода пользователя
func (a *Application) Run() error {
	_, err := a.program.Run()
	return err
}

func (a *Application) Stop() error {
	log.Println("🛑 Остановка приложения...")

	a.cancelFunc()
	a.cron.Stop()

	// закрывающая сводка дня: в файл всегда, в Telegram если настроен
	a.services.SendDailySummary()
	a.services.Logbook.LogEvent(logbook.EventAppStop, "Приложение остановлено", "", "")

	if err := a.db.Close(); err != nil {
		log.Printf("⚠️ Ошибка закрытия БД: %v", err)
	}

	log.Println("✅ Приложение остановлено")
	return nil
}

func (a *Application) setupCronJobs() {
	// Проверка напоминаний о воде и перерывах каждую минуту
	_, err := a.cron.AddFunc("* * * * *", func() {
		a.services.Reminder.CheckAndSendReminders()
	})
	if err != nil {
		panic(err)
	}

	// Сводка дня в 23:55 локального времени
	_, err = a.cron.AddFunc("55 23 * * *", func() {
		a.services.SendDailySummary()
	})
	if err != nil {
		panic(err)
	}
}

func (a *Application) sendWelcomeMessage() {
	message := `💙 <b>Помощник здоровья</b>

Трекер воды и перерывов успешно запущен!

Используйте команды:
/stats - текущий прогресс
/water [мл] - записать выпитую воду
/history - записи о воде за сегодня
/session - начать/завершить рабочую сессию
/summary - сводка дня
/week - аналитика за неделю
/profile [вес уровень] - профиль и дневная норма
/reset - сбросить дневной счётчик воды
/help - справка по командам`

	if err := a.bot.SendMessage(message); err != nil {
		log.Printf("⚠️ Ошибка отправки приветствия: %v", err)
	}
}
