package health

import "math"

// ActivityMultipliers — мл воды на кг веса для каждого уровня активности
var ActivityMultipliers = map[string]int{
	"sedentary":   30,
	"light":       35,
	"moderate":    40,
	"active":      45,
	"very_active": 50,
}

// DefaultHoursAwake — сколько часов в сутки пользователь бодрствует
const DefaultHoursAwake = 16

// DailyWaterTarget считает дневную норму воды в мл: вес × множитель активности.
// Неизвестный уровень активности трактуется как "light" (35 мл/кг).
func DailyWaterTarget(weightKg float64, activityLevel string) int {
	multiplier, ok := ActivityMultipliers[activityLevel]
	if !ok {
		multiplier = ActivityMultipliers["light"]
	}
	return int(weightKg * float64(multiplier))
}

// WaterPerReminder считает порцию воды на одно напоминание.
// Напоминания идут каждые 2 часа бодрствования, деление целочисленное.
func WaterPerReminder(dailyTargetML, hoursAwake int) int {
	remindersPerDay := hoursAwake / 2
	if remindersPerDay <= 0 {
		return dailyTargetML
	}
	return dailyTargetML / remindersPerDay
}

// BMI возвращает индекс массы тела и его категорию.
func BMI(weightKg, heightCm float64) (float64, string) {
	heightM := heightCm / 100
	bmi := weightKg / (heightM * heightM)

	var category string
	switch {
	case bmi < 18.5:
		category = "Недостаточный вес"
	case bmi < 25:
		category = "Норма"
	case bmi < 30:
		category = "Избыточный вес"
	default:
		category = "Ожирение"
	}

	return math.Round(bmi*100) / 100, category
}
