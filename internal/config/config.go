package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// FlexBool — булево значение, принимающее из JSON также строки
// "true"/"1"/"yes" и числа. Нормализация происходит один раз на границе
// парсинга, дальше по коду ходит обычный bool.
type FlexBool bool

func (b *FlexBool) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	var asBool bool
	if err := json.Unmarshal(data, &asBool); err == nil {
		*b = FlexBool(asBool)
		return nil
	}

	var asString string
	if err := json.Unmarshal(data, &asString); err == nil {
		switch strings.ToLower(strings.TrimSpace(asString)) {
		case "true", "1", "yes":
			*b = true
		default:
			*b = false
		}
		return nil
	}

	var asNumber float64
	if err := json.Unmarshal(data, &asNumber); err == nil {
		*b = asNumber != 0
		return nil
	}

	return fmt.Errorf("неверное булево значение: %s", string(data))
}

func (b FlexBool) Bool() bool {
	return bool(b)
}

type UserProfile struct {
	WeightKg           float64 `json:"weight_kg"`
	HeightCm           float64 `json:"height_cm"`
	ActivityLevel      string  `json:"activity_level"`
	DailyWaterTargetML int     `json:"daily_water_target_ml"`
}

type Telegram struct {
	BotToken string   `json:"bot_token"`
	ChatID   string   `json:"chat_id"`
	Enabled  FlexBool `json:"enabled"`
}

type Sound struct {
	Enabled FlexBool `json:"enabled"`
	Volume  float64  `json:"volume"`
}

type Pomodoro struct {
	WorkDurationMinutes     int `json:"work_duration_minutes"`
	ShortBreakMinutes       int `json:"short_break_minutes"`
	LongBreakMinutes        int `json:"long_break_minutes"`
	SessionsBeforeLongBreak int `json:"sessions_before_long_break"`
}

type Config struct {
	UserProfile UserProfile `json:"user_profile"`
	Telegram    Telegram    `json:"telegram"`
	Sound       Sound       `json:"sound"`
	Pomodoro    Pomodoro    `json:"pomodoro"`

	path string
}

// Default возвращает конфигурацию по умолчанию
func Default() *Config {
	return &Config{
		UserProfile: UserProfile{
			WeightKg:           70,
			HeightCm:           175,
			ActivityLevel:      "moderate",
			DailyWaterTargetML: 2500,
		},
		Telegram: Telegram{
			BotToken: "",
			ChatID:   "",
			Enabled:  false,
		},
		Sound: Sound{
			Enabled: true,
			Volume:  0.8,
		},
		Pomodoro: Pomodoro{
			WorkDurationMinutes:     25,
			ShortBreakMinutes:       5,
			LongBreakMinutes:        15,
			SessionsBeforeLongBreak: 4,
		},
	}
}

// Load читает конфигурацию из файла. Любая ошибка — это не фатально:
// возвращаются значения по умолчанию, приложение продолжает работу.
// Токен и chat_id Telegram можно переопределить переменными окружения.
func Load(path string) *Config {
	cfg := Default()
	cfg.path = path

	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("⚠️ Конфигурация не прочитана (%v), использую значения по умолчанию", err)
	} else if err := json.Unmarshal(data, cfg); err != nil {
		log.Printf("⚠️ Конфигурация повреждена (%v), использую значения по умолчанию", err)
		cfg = Default()
		cfg.path = path
	} else {
		log.Printf("✅ Конфигурация загружена: %s", path)
	}

	if token := getEnv("TG_TOKEN", ""); token != "" {
		cfg.Telegram.BotToken = token
	}
	if chatID := getEnv("TG_CHAT_ID", ""); chatID != "" {
		cfg.Telegram.ChatID = chatID
	}

	return cfg
}

// Save записывает конфигурацию обратно в файл. Вызывается при каждом
// изменении настроек.
func (c *Config) Save() error {
	if c.path == "" {
		return fmt.Errorf("путь к файлу конфигурации не задан")
	}

	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return fmt.Errorf("ошибка создания каталога конфигурации: %v", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("ошибка сериализации конфигурации: %v", err)
	}

	if err := os.WriteFile(c.path, data, 0o644); err != nil {
		return fmt.Errorf("ошибка записи конфигурации: %v", err)
	}

	return nil
}

// TelegramReady сообщает, можно ли слать уведомления в Telegram
func (c *Config) TelegramReady() bool {
	return c.Telegram.Enabled.Bool() && c.Telegram.BotToken != "" && c.Telegram.ChatID != ""
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
