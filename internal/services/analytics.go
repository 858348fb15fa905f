package services

import (
	"fmt"
	"strings"
	"time"

	"health-assistant/internal/database"
	"health-assistant/internal/utils"
)

type AnalyticsService struct {
	repository *database.Repository
}

func NewAnalyticsService(repo *database.Repository) *AnalyticsService {
	return &AnalyticsService{
		repository: repo,
	}
}

// GetWeeklyStats возвращает агрегаты за текущую неделю с инсайтами
func (as *AnalyticsService) GetWeeklyStats(dailyTargetML int) (*database.WeeklyStats, error) {
	now := time.Now()
	startDate, endDate := utils.WeekRange(now)

	stats, err := as.repository.GetWeeklyStats(startDate, endDate)
	if err != nil {
		return nil, err
	}

	_, week := now.ISOWeek()
	stats.WeekNumber = week
	stats.Insights = as.generateInsights(stats, dailyTargetML)

	return stats, nil
}

func (as *AnalyticsService) generateInsights(stats *database.WeeklyStats, dailyTargetML int) string {
	if stats.DaysWithIntake == 0 && stats.TotalSessions == 0 {
		return "📊 Данных для анализа недостаточно. Продолжайте отмечать воду и сессии!"
	}

	var insights []string

	if stats.DaysWithIntake > 0 && dailyTargetML > 0 {
		avgPerDay := float64(stats.TotalWaterML) / float64(stats.DaysWithIntake)
		rate := avgPerDay / float64(dailyTargetML) * 100

		switch {
		case rate < 50:
			insights = append(insights, fmt.Sprintf(
				"💪 Гидратация хромает: в среднем %.0f%% нормы в день", rate))
		case rate > 90:
			insights = append(insights, "🎯 Отличная гидратация! Продолжайте в том же духе")
		default:
			insights = append(insights, fmt.Sprintf(
				"📈 Хороший прогресс по воде: %.0f%% нормы в день, есть куда расти", rate))
		}
	}

	if stats.TotalSessions > 0 {
		avgSession := stats.TotalWorkMin / float64(stats.TotalSessions)
		insights = append(insights, fmt.Sprintf(
			"⏰ Рабочих сессий за неделю: %d, средняя длительность %.0f мин",
			stats.TotalSessions, avgSession))

		if avgSession > 50 {
			insights = append(insights, "⚠️ Сессии затягиваются. Не пропускайте перерывы")
		}
	}

	if len(insights) == 0 {
		return "📊 Данных для анализа недостаточно. Продолжайте отмечать воду и сессии!"
	}

	return strings.Join(insights, "\n")
}
