package utils

// Вспомогательные функции для названий уровней активности и типов перерывов

func GetActivityName(level string) string {
	switch level {
	case "sedentary":
		return "🪑 Сидячий"
	case "light":
		return "🚶 Лёгкая активность"
	case "moderate":
		return "🏃 Умеренная активность"
	case "active":
		return "💪 Активный"
	case "very_active":
		return "🔥 Очень активный"
	default:
		return level
	}
}

func GetBreakLabel(breakType string) string {
	switch breakType {
	case "short":
		return "☕ Короткий перерыв"
	case "long":
		return "🌟 Длинный перерыв"
	case "adaptive_long":
		return "🌟 Длинный перерыв (накопленная усталость)"
	default:
		return "Перерыв"
	}
}

func GetBreakEmoji(breakType string) string {
	if breakType == "short" {
		return "☕"
	}
	return "🌟"
}
