package services

import (
	"fmt"
	"log"
	"sync"
	"time"

	"health-assistant/internal/utils"
)

// ReminderService — фоновый цикл напоминаний. Вызывается раз в минуту
// по крону; сверяет время с маркерами последних напоминаний и при
// пересечении порога рассылает событие по всем каналам. Любая ошибка
// коллаборатора логируется, цикл продолжает работать без эскалации.
type ReminderService struct {
	mu sync.Mutex

	manager       *ServiceManager
	waterInterval time.Duration

	lastWaterReminder time.Time
	lastBreakCheck    time.Time
}

func NewReminderService(manager *ServiceManager, waterInterval time.Duration) *ReminderService {
	now := time.Now()
	return &ReminderService{
		manager:           manager,
		waterInterval:     waterInterval,
		lastWaterReminder: now,
		lastBreakCheck:    now,
	}
}

// CheckAndSendReminders — один тик цикла. Паника коллаборатора не должна
// уронить крон, поэтому тик обёрнут в recover.
func (rs *ReminderService) CheckAndSendReminders() {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("❌ Ошибка в цикле напоминаний: %v", r)
		}
	}()

	rs.checkWater(time.Now())
	rs.checkBreak()
}

func (rs *ReminderService) checkWater(now time.Time) {
	rs.mu.Lock()
	due := now.Sub(rs.lastWaterReminder) >= rs.waterInterval
	if due {
		rs.lastWaterReminder = now
	}
	rs.mu.Unlock()

	if !due {
		return
	}

	rs.sendWaterReminder()
}

func (rs *ReminderService) sendWaterReminder() {
	sm := rs.manager

	remaining := sm.Water.Remaining()
	amount := sm.PerReminderAmount()
	if remaining < amount {
		amount = remaining
	}
	progress := sm.Water.ProgressPercentage()

	log.Printf("💧 Напоминание о воде: %d мл, прогресс %.1f%%", amount, progress)

	sm.sound.PlayWater()

	if sm.notifier != nil {
		sm.notifier.Show(
			"💧 Пора выпить воды",
			fmt.Sprintf("Выпейте %d мл воды.\nПрогресс за день: %.1f%%", amount, progress),
		)
	}

	if sm.messenger != nil && sm.messenger.Enabled() {
		success := sm.messenger.SendWaterReminder(amount, progress)
		sm.Logbook.LogTelegramNotification(fmt.Sprintf("Water reminder: %dml", amount), success)
	}

	sm.Logbook.LogWaterReminder(amount, false)
}

func (rs *ReminderService) checkBreak() {
	sm := rs.manager

	if !sm.Breaks.SessionActive() {
		return
	}

	rs.mu.Lock()
	due := sm.Breaks.ShouldRemindBreak(utils.MinutesSince(rs.lastBreakCheck))
	if due {
		rs.lastBreakCheck = time.Now()
	}
	rs.mu.Unlock()

	if !due {
		return
	}

	rs.sendBreakReminder()
}

func (rs *ReminderService) sendBreakReminder() {
	sm := rs.manager

	duration, breakType := sm.Breaks.RecommendedBreak()
	sessions := sm.Breaks.SessionsCompleted()

	log.Printf("⏰ Напоминание о перерыве: %s, %d мин", breakType, duration)

	sm.sound.PlayBreak()

	if sm.notifier != nil {
		sm.notifier.Show(
			"⏰ Пора сделать перерыв",
			fmt.Sprintf("%s\nДлительность: %d мин\nСессий завершено: %d",
				utils.GetBreakLabel(string(breakType)), duration, sessions),
		)
	}

	if sm.messenger != nil && sm.messenger.Enabled() {
		success := sm.messenger.SendBreakReminder(breakType, duration, sessions)
		sm.Logbook.LogTelegramNotification(fmt.Sprintf("Break reminder: %s", breakType), success)
	}

	sm.Logbook.LogBreakReminder(breakType, duration, false)
}

// MarkBreakCheck сбрасывает маркер перерыва (при старте сессии)
func (rs *ReminderService) MarkBreakCheck() {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.lastBreakCheck = time.Now()
}

// MarkWaterReminder сбрасывает маркер напоминания о воде
func (rs *ReminderService) MarkWaterReminder() {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.lastWaterReminder = time.Now()
}
