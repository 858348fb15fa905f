package main

import (
	"log"
	"path/filepath"

	"health-assistant/internal/app"
	"health-assistant/internal/config"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("📋 Файл .env не найден, используем переменные окружения")
	}

	cfg := config.Load(filepath.Join("config", "config.json"))

	application, err := app.New(cfg, app.Paths{})
	if err != nil {
		log.Fatalf("❌ Ошибка создания приложения: %v", err)
	}

	if err := application.Start(); err != nil {
		log.Fatalf("❌ Ошибка запуска приложения: %v", err)
	}

	// интерфейс занимает главную горутину до выхода пользователя
	if err := application.Run(); err != nil {
		log.Printf("⚠️ Ошибка интерфейса: %v", err)
	}

	if err := application.Stop(); err != nil {
		log.Printf("⚠️ Ошибка остановки: %v", err)
	}

	log.Println("👋 Приложение завершает работу")
}
