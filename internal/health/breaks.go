package health

import (
	"sync"
	"time"
)

// BreakType — тип рекомендованного перерыва
type BreakType string

const (
	BreakShort        BreakType = "short"
	BreakLong         BreakType = "long"
	BreakAdaptiveLong BreakType = "adaptive_long"
)

// adaptiveLongThreshold — суммарная работа в минутах, после которой
// положен длинный перерыв независимо от числа сессий
const adaptiveLongThreshold = 120.0

// BreakStats — снимок состояния менеджера перерывов
type BreakStats struct {
	SessionsCompleted int
	TotalWorkMinutes  float64
	NextBreakType     BreakType
}

// AdaptiveBreakManager управляет рабочими сессиями и перерывами по технике
// Pomodoro с адаптивным выбором длинного перерыва.
type AdaptiveBreakManager struct {
	mu sync.Mutex

	workDuration       int // минуты
	shortBreak         int
	longBreak          int
	sessionsBeforeLong int

	currentSession int
	totalWorkTime  float64 // минуты
	sessionStart   *time.Time
	lastBreakTime  *time.Time
}

func NewAdaptiveBreakManager(workDuration, shortBreak, longBreak, sessionsBeforeLong int) *AdaptiveBreakManager {
	return &AdaptiveBreakManager{
		workDuration:       workDuration,
		shortBreak:         shortBreak,
		longBreak:          longBreak,
		sessionsBeforeLong: sessionsBeforeLong,
	}
}

// StartSession начинает рабочую сессию
func (m *AdaptiveBreakManager) StartSession() {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now()
	m.sessionStart = &now
}

// EndSession завершает сессию: добавляет отработанные минуты и увеличивает
// счётчик сессий. Без активной сессии состояние не меняется, а ok=false —
// вызывающая сторона фиксирует это в журнале.
func (m *AdaptiveBreakManager) EndSession() (durationMin float64, ok bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.sessionStart == nil {
		return 0, false
	}

	durationMin = time.Since(*m.sessionStart).Minutes()
	m.totalWorkTime += durationMin
	m.currentSession++
	m.sessionStart = nil
	return durationMin, true
}

// SessionActive сообщает, идёт ли сейчас рабочая сессия
func (m *AdaptiveBreakManager) SessionActive() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sessionStart != nil
}

// RecommendedBreak возвращает длительность и тип рекомендованного перерыва.
// Правило по счётчику сессий имеет приоритет над адаптивным правилом.
func (m *AdaptiveBreakManager) RecommendedBreak() (int, BreakType) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.recommendedLocked()
}

func (m *AdaptiveBreakManager) recommendedLocked() (int, BreakType) {
	if m.currentSession > 0 && m.sessionsBeforeLong > 0 && m.currentSession%m.sessionsBeforeLong == 0 {
		return m.longBreak, BreakLong
	}
	if m.totalWorkTime >= adaptiveLongThreshold {
		return m.longBreak, BreakAdaptiveLong
	}
	return m.shortBreak, BreakShort
}

// ShouldRemindBreak — пора ли напоминать о перерыве. Чистый порог, без гистерезиса.
func (m *AdaptiveBreakManager) ShouldRemindBreak(minutesSinceLast int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return minutesSinceLast >= m.workDuration
}

// TakeBreak фиксирует перерыв: сбрасывает накопленное рабочее время,
// счётчик сессий не трогает.
func (m *AdaptiveBreakManager) TakeBreak() {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now()
	m.lastBreakTime = &now
	m.totalWorkTime = 0
}

// SessionsCompleted возвращает число завершённых сессий
func (m *AdaptiveBreakManager) SessionsCompleted() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.currentSession
}

// TotalWorkMinutes возвращает накопленное рабочее время в минутах
func (m *AdaptiveBreakManager) TotalWorkMinutes() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.totalWorkTime
}

// Stats возвращает снимок состояния
func (m *AdaptiveBreakManager) Stats() BreakStats {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, nextType := m.recommendedLocked()
	return BreakStats{
		SessionsCompleted: m.currentSession,
		TotalWorkMinutes:  m.totalWorkTime,
		NextBreakType:     nextType,
	}
}
