package health

import (
	"sync"
	"time"
)

// IntakeEntry — одна запись о выпитой воде
type IntakeEntry struct {
	Timestamp time.Time
	AmountML  int
}

// WaterStats — снимок состояния трекера для дашборда и сводок
type WaterStats struct {
	ConsumedML      int
	TargetML        int
	RemainingML     int
	ProgressPercent float64
	IntakeCount     int
}

// WaterIntakeTracker ведёт учёт выпитой воды за день.
// Доступ защищён мьютексом: трекер читают и TUI, и фоновый цикл напоминаний.
type WaterIntakeTracker struct {
	mu             sync.Mutex
	dailyTarget    int
	consumedToday  int
	lastIntakeTime time.Time
	history        []IntakeEntry
}

func NewWaterIntakeTracker(dailyTargetML int) *WaterIntakeTracker {
	return &WaterIntakeTracker{
		dailyTarget: dailyTargetML,
	}
}

// AddIntake добавляет запись о выпитой воде
func (w *WaterIntakeTracker) AddIntake(amountML int) {
	w.mu.Lock()
	defer w.mu.Unlock()

	now := time.Now()
	w.consumedToday += amountML
	w.lastIntakeTime = now
	w.history = append(w.history, IntakeEntry{Timestamp: now, AmountML: amountML})
}

// ProgressPercentage возвращает процент от дневной нормы, не больше 100
func (w *WaterIntakeTracker) ProgressPercentage() float64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.progressLocked()
}

func (w *WaterIntakeTracker) progressLocked() float64 {
	if w.dailyTarget <= 0 {
		return 0
	}
	progress := float64(w.consumedToday) / float64(w.dailyTarget) * 100
	if progress > 100 {
		return 100
	}
	return progress
}

// Remaining возвращает, сколько мл осталось до нормы (не меньше 0)
func (w *WaterIntakeTracker) Remaining() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.remainingLocked()
}

func (w *WaterIntakeTracker) remainingLocked() int {
	remaining := w.dailyTarget - w.consumedToday
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Consumed возвращает выпитое за день в мл
func (w *WaterIntakeTracker) Consumed() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.consumedToday
}

// Target возвращает текущую дневную норму
func (w *WaterIntakeTracker) Target() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.dailyTarget
}

// SetDailyTarget меняет дневную норму (после обновления профиля)
func (w *WaterIntakeTracker) SetDailyTarget(targetML int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.dailyTarget = targetML
}

// ResetDaily сбрасывает счётчик и историю. Вызывается явно на границе дня.
func (w *WaterIntakeTracker) ResetDaily() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.consumedToday = 0
	w.history = nil
}

// Stats возвращает снимок состояния
func (w *WaterIntakeTracker) Stats() WaterStats {
	w.mu.Lock()
	defer w.mu.Unlock()

	return WaterStats{
		ConsumedML:      w.consumedToday,
		TargetML:        w.dailyTarget,
		RemainingML:     w.remainingLocked(),
		ProgressPercent: w.progressLocked(),
		IntakeCount:     len(w.history),
	}
}
