package tui

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"health-assistant/internal/health"

	tea "github.com/charmbracelet/bubbletea"
)

func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		target := 40
		if m.width > 0 && m.width < 60 {
			target = m.width / 2
		}
		m.progress.Width = target
		return m, nil

	case TickMsg:
		m.refresh()
		return m, tickCmd()

	case NotifyMsg:
		// уведомление из фонового цикла: показываем поверх дашборда
		m.mode = modeNotification
		m.notifyTitle = msg.Title
		m.notifyBody = msg.Body
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeNotification:
			return m.updateNotification(msg)
		case modeCustomAmount:
			return m.updateCustomAmount(msg)
		case modeSettings:
			return m.updateSettings(msg)
		default:
			return m.updateDashboard(msg)
		}
	}

	return m, nil
}

func (m DashboardModel) updateDashboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.message = ""

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "1":
		m.services.AddWaterIntake(250)
		m.refresh()
		m.message = "✅ Записано 250 мл"
		return m, nil

	case "2":
		m.services.AddWaterIntake(500)
		m.refresh()
		m.message = "✅ Записано 500 мл"
		return m, nil

	case "a":
		m.mode = modeCustomAmount
		m.amountInput.Reset()
		m.amountInput.Focus()
		return m, nil

	case "s":
		if m.services.ToggleSession() {
			m.message = "▶️ Сессия начата"
		} else {
			m.message = "⏸️ Сессия завершена"
		}
		m.refresh()
		return m, nil

	case "b":
		m.services.TakeBreak()
		m.refresh()
		m.message = "☕ Перерыв отмечен, счётчик рабочего времени сброшен"
		return m, nil

	case "r":
		m.services.ResetDaily()
		m.refresh()
		m.message = "🔄 Дневной счётчик воды сброшен"
		return m, nil

	case "p":
		m.mode = modeSettings
		m.profileInput.Reset()
		m.profileInput.Focus()
		return m, nil

	case "m":
		if m.services.ToggleSound() {
			m.message = "🔊 Звук включён"
		} else {
			m.message = "🔇 Звук выключен"
		}
		m.refresh()
		return m, nil
	}

	return m, nil
}

func (m DashboardModel) updateCustomAmount(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = modeDashboard
		m.amountInput.Blur()
		return m, nil

	case tea.KeyEnter:
		amount, err := strconv.Atoi(m.amountInput.Value())
		if err != nil || amount <= 0 || amount > 2000 {
			m.message = "❌ Введите объём от 1 до 2000 мл"
			return m, nil
		}

		m.services.AddWaterIntake(amount)
		m.mode = modeDashboard
		m.amountInput.Blur()
		m.refresh()
		m.message = fmt.Sprintf("✅ Записано %d мл", amount)
		return m, nil
	}

	var cmd tea.Cmd
	m.amountInput, cmd = m.amountInput.Update(msg)
	return m, cmd
}

func (m DashboardModel) updateSettings(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = modeDashboard
		m.profileInput.Blur()
		return m, nil

	case tea.KeyEnter:
		parts := strings.Fields(m.profileInput.Value())
		if len(parts) != 2 {
			m.message = "❌ Введите вес и уровень активности, например: 80 active"
			return m, nil
		}

		weight, err := strconv.ParseFloat(parts[0], 64)
		if err != nil || weight <= 0 || weight > 300 {
			m.message = "❌ Вес должен быть числом от 1 до 300 кг"
			return m, nil
		}

		level := parts[1]
		if _, ok := health.ActivityMultipliers[level]; !ok {
			m.message = "❌ Уровень: sedentary, light, moderate, active или very_active"
			return m, nil
		}

		target, err := m.services.UpdateProfile(weight, level)
		if err != nil {
			log.Printf("⚠️ Ошибка сохранения конфигурации: %v", err)
		}

		m.mode = modeDashboard
		m.profileInput.Blur()
		m.refresh()
		m.message = fmt.Sprintf("✅ Профиль обновлён, новая норма: %d мл", target)
		return m, nil
	}

	var cmd tea.Cmd
	m.profileInput, cmd = m.profileInput.Update(msg)
	return m, cmd
}

func (m DashboardModel) updateNotification(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// любая клавиша закрывает уведомление
	m.mode = modeDashboard
	m.notifyTitle = ""
	m.notifyBody = ""
	return m, nil
}
