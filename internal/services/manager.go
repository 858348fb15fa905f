package services

import (
	"log"
	"sync"
	"time"

	"health-assistant/internal/config"
	"health-assistant/internal/database"
	"health-assistant/internal/health"
	"health-assistant/internal/logbook"
	"health-assistant/internal/utils"
)

// SoundPlayer — узкий контракт звуковых сигналов; сбои глотаются внутри
type SoundPlayer interface {
	PlayWater()
	PlayBreak()
	PlaySuccess()
	SetEnabled(enabled bool)
	Enabled() bool
}

// Notifier показывает диалог пользователю. Реализация обязана доставить
// показ в основной поток интерфейса, отсюда вызывает фоновый цикл.
type Notifier interface {
	Show(title, body string)
}

// MessageSender — контракт отправки сообщений (Telegram). Все методы
// возвращают успех/неуспех, повторов нет.
type MessageSender interface {
	SendWaterReminder(amountML int, progressPct float64) bool
	SendBreakReminder(breakType health.BreakType, durationMin, sessionsCompleted int) bool
	SendDailySummary(text string) bool
	SendAchievement(text string) bool
	Enabled() bool
}

// DashboardStats — всё, что нужно дашборду за один вызов
type DashboardStats struct {
	Water         health.WaterStats
	Breaks        health.BreakStats
	Events        logbook.DaySummary
	SessionActive bool
	SoundEnabled  bool
}

// ServiceManager владеет трекерами и коллабораторами. Единственный
// владелец состояния: и TUI, и Telegram-обработчики, и цикл напоминаний
// ходят через него, никаких глобальных синглтонов.
type ServiceManager struct {
	Water     *health.WaterIntakeTracker
	Breaks    *health.AdaptiveBreakManager
	Logbook   *logbook.ActivityLogger
	Reminder  *ReminderService
	Analytics *AnalyticsService

	config     *config.Config
	repository *database.Repository
	sound      SoundPlayer
	notifier   Notifier
	messenger  MessageSender

	// mu защищает achievementSent и изменения конфигурации: сюда ходят
	// и горутина интерфейса, и горутина Telegram-бота
	mu              sync.Mutex
	achievementSent bool
}

func NewServiceManager(cfg *config.Config, repo *database.Repository, logb *logbook.ActivityLogger, snd SoundPlayer) *ServiceManager {
	water := health.NewWaterIntakeTracker(cfg.UserProfile.DailyWaterTargetML)
	breaks := health.NewAdaptiveBreakManager(
		cfg.Pomodoro.WorkDurationMinutes,
		cfg.Pomodoro.ShortBreakMinutes,
		cfg.Pomodoro.LongBreakMinutes,
		cfg.Pomodoro.SessionsBeforeLongBreak,
	)

	sm := &ServiceManager{
		Water:      water,
		Breaks:     breaks,
		Logbook:    logb,
		config:     cfg,
		repository: repo,
		sound:      snd,
	}

	sm.Reminder = NewReminderService(sm, 2*time.Hour)
	sm.Analytics = NewAnalyticsService(repo)

	return sm
}

// SetNotifier подключает диалоговые уведомления. Второй фазой, потому что
// TUI создаётся после сервисов.
func (sm *ServiceManager) SetNotifier(n Notifier) {
	sm.notifier = n
}

// SetMessageSender подключает отправку в Telegram
func (sm *ServiceManager) SetMessageSender(m MessageSender) {
	sm.messenger = m
}

// AddWaterIntake фиксирует выпитую воду: трекер, журнал, история в БД,
// звук успеха и разовая ачивка при достижении нормы.
func (sm *ServiceManager) AddWaterIntake(amountML int) {
	if amountML <= 0 {
		return
	}

	sm.Water.AddIntake(amountML)
	sm.Logbook.LogWaterIntake(amountML)
	sm.sound.PlaySuccess()

	if err := sm.repository.AddIntake(utils.TodayDate(), amountML); err != nil {
		log.Printf("⚠️ Ошибка записи воды в БД: %v", err)
	}

	sm.mu.Lock()
	announce := sm.Water.ProgressPercentage() >= 100 && !sm.achievementSent
	if announce {
		sm.achievementSent = true
	}
	sm.mu.Unlock()

	if announce {
		if sm.notifier != nil {
			sm.notifier.Show("🎉 Достижение!", "Поздравляем! Дневная норма воды выполнена! 💧")
		}
		if sm.messenger != nil && sm.messenger.Enabled() {
			success := sm.messenger.SendAchievement("Дневная норма воды выполнена! 🎉💧")
			sm.Logbook.LogTelegramNotification("Achievement: daily water target reached", success)
		}
	}
}

// StartSession начинает рабочую сессию
func (sm *ServiceManager) StartSession() {
	sm.Breaks.StartSession()
	sm.Logbook.LogSessionStart()
	sm.Reminder.MarkBreakCheck()
}

// EndSession завершает рабочую сессию. Завершение без активной сессии —
// no-op, но он фиксируется в журнале, а не глотается молча.
func (sm *ServiceManager) EndSession() {
	duration, ok := sm.Breaks.EndSession()
	if !ok {
		log.Println("⚠️ Завершение сессии без активной сессии — игнорирую")
		sm.Logbook.LogSessionEndIgnored()
		return
	}

	sm.Logbook.LogSessionEnd(duration)
	if err := sm.repository.AddSession(utils.TodayDate(), duration); err != nil {
		log.Printf("⚠️ Ошибка записи сессии в БД: %v", err)
	}
}

// ToggleSession переключает сессию и возвращает новое состояние
func (sm *ServiceManager) ToggleSession() bool {
	if sm.Breaks.SessionActive() {
		sm.EndSession()
		return false
	}
	sm.StartSession()
	return true
}

// TakeBreak фиксирует, что пользователь ушёл на перерыв
func (sm *ServiceManager) TakeBreak() {
	sm.Breaks.TakeBreak()
}

// ResetDaily сбрасывает дневные счётчики воды. Вызывается явно.
func (sm *ServiceManager) ResetDaily() {
	sm.Water.ResetDaily()
	sm.mu.Lock()
	sm.achievementSent = false
	sm.mu.Unlock()
	sm.Logbook.LogEvent(logbook.EventDailyReset, "Daily water counters reset", "Reset", "")
}

// UpdateProfile пересчитывает дневную норму и сохраняет конфигурацию
func (sm *ServiceManager) UpdateProfile(weightKg float64, activityLevel string) (int, error) {
	target := health.DailyWaterTarget(weightKg, activityLevel)

	sm.mu.Lock()
	sm.config.UserProfile.WeightKg = weightKg
	sm.config.UserProfile.ActivityLevel = activityLevel
	sm.config.UserProfile.DailyWaterTargetML = target
	err := sm.config.Save()
	sm.mu.Unlock()

	sm.Water.SetDailyTarget(target)

	return target, err
}

// Profile возвращает копию текущего профиля пользователя
func (sm *ServiceManager) Profile() config.UserProfile {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.config.UserProfile
}

// ToggleSound переключает звуковые сигналы и сохраняет конфигурацию.
// Возвращает новое состояние.
func (sm *ServiceManager) ToggleSound() bool {
	enabled := !sm.sound.Enabled()
	sm.sound.SetEnabled(enabled)

	sm.mu.Lock()
	sm.config.Sound.Enabled = config.FlexBool(enabled)
	if err := sm.config.Save(); err != nil {
		log.Printf("⚠️ Ошибка сохранения конфигурации: %v", err)
	}
	sm.mu.Unlock()

	return enabled
}

// TodayIntakes возвращает записи о воде за сегодня из истории
func (sm *ServiceManager) TodayIntakes() ([]database.IntakeRecord, error) {
	return sm.repository.GetIntakesByDate(utils.TodayDate())
}

// PerReminderAmount — порция воды на одно напоминание при текущей норме
func (sm *ServiceManager) PerReminderAmount() int {
	return health.WaterPerReminder(sm.Water.Target(), health.DefaultHoursAwake)
}

// Stats собирает снимок состояния для дашборда
func (sm *ServiceManager) Stats() DashboardStats {
	return DashboardStats{
		Water:         sm.Water.Stats(),
		Breaks:        sm.Breaks.Stats(),
		Events:        sm.Logbook.TodaySummary(),
		SessionActive: sm.Breaks.SessionActive(),
		SoundEnabled:  sm.sound.Enabled(),
	}
}

// DailySummaryText собирает текстовую сводку дня и пишет её в summary.txt
func (sm *ServiceManager) DailySummaryText() string {
	return sm.Logbook.GenerateDailySummary(sm.Water.Stats(), sm.Breaks.Stats())
}

// SendDailySummary отправляет сводку дня в Telegram (если настроен)
func (sm *ServiceManager) SendDailySummary() {
	text := sm.DailySummaryText()
	if sm.messenger != nil && sm.messenger.Enabled() {
		success := sm.messenger.SendDailySummary(text)
		sm.Logbook.LogTelegramNotification("Daily summary", success)
	}
}

// Config возвращает текущую конфигурацию
func (sm *ServiceManager) Config() *config.Config {
	return sm.config
}
