package tui

import (
	"fmt"
	"strings"

	"health-assistant/internal/utils"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginBottom(1)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 2).
			MarginBottom(1)

	panelTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("252"))

	activeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("42"))

	inactiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	messageStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("228"))

	notifyStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("39")).
			Padding(1, 4).
			Align(lipgloss.Center)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

func (m DashboardModel) View() string {
	if m.mode == modeNotification {
		return m.notificationView()
	}

	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("💙 Health Assistant · %s", utils.CurrentClock())))
	b.WriteString("\n")

	if m.mode == modeSettings {
		b.WriteString(m.settingsPanel())
		b.WriteString("\n")
		if m.message != "" {
			b.WriteString(messageStyle.Render(m.message))
			b.WriteString("\n")
		}
		b.WriteString(helpStyle.Render("enter — сохранить · esc — отмена"))
		return b.String()
	}

	b.WriteString(m.waterPanel())
	b.WriteString("\n")
	b.WriteString(m.sessionPanel())
	b.WriteString("\n")
	b.WriteString(m.statsPanel())
	b.WriteString("\n")

	if m.mode == modeCustomAmount {
		b.WriteString(fmt.Sprintf("Объём воды (мл): %s\n", m.amountInput.View()))
		b.WriteString(helpStyle.Render("enter — записать · esc — отмена"))
		return b.String()
	}

	if m.message != "" {
		b.WriteString(messageStyle.Render(m.message))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render(
		"1 — +250 мл · 2 — +500 мл · a — свой объём · s — сессия · b — перерыв · r — сброс дня · p — профиль · m — звук · q — выход"))

	return b.String()
}

func (m DashboardModel) settingsPanel() string {
	profile := m.services.Profile()

	soundState := "🔇 выключен"
	if m.stats.SoundEnabled {
		soundState = "🔊 включён"
	}

	var b strings.Builder
	b.WriteString(panelTitleStyle.Render("⚙️ Профиль"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Вес: %.0f кг · рост: %.0f см\n", profile.WeightKg, profile.HeightCm))
	b.WriteString(fmt.Sprintf("Активность: %s\n", utils.GetActivityName(profile.ActivityLevel)))
	b.WriteString(fmt.Sprintf("Дневная норма: %d мл · звук: %s\n\n", profile.DailyWaterTargetML, soundState))
	b.WriteString(fmt.Sprintf("Вес и активность: %s\n", m.profileInput.View()))
	b.WriteString(dimStyle.Render("уровни: sedentary · light · moderate · active · very_active"))

	return panelStyle.Render(b.String())
}

func (m DashboardModel) waterPanel() string {
	water := m.stats.Water

	var b strings.Builder
	b.WriteString(panelTitleStyle.Render("💧 Вода"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%d / %d мл (%.1f%%)\n",
		water.ConsumedML, water.TargetML, water.ProgressPercent))
	b.WriteString(m.progress.ViewAs(water.ProgressPercent / 100))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Осталось: %d мл · записей: %d",
		water.RemainingML, water.IntakeCount)))

	return panelStyle.Render(b.String())
}

func (m DashboardModel) sessionPanel() string {
	breaks := m.stats.Breaks

	status := inactiveStyle.Render("Сессия: неактивна 🔴")
	if m.stats.SessionActive {
		status = activeStyle.Render("Сессия: идёт 🟢")
	}

	var b strings.Builder
	b.WriteString(panelTitleStyle.Render("⏰ Работа (Pomodoro)"))
	b.WriteString("\n")
	b.WriteString(status)
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Сессий: %d · рабочее время: %s · следующий перерыв: %s",
		breaks.SessionsCompleted,
		utils.FormatMinutes(breaks.TotalWorkMinutes),
		utils.GetBreakLabel(string(breaks.NextBreakType)))))

	return panelStyle.Render(b.String())
}

func (m DashboardModel) statsPanel() string {
	events := m.stats.Events

	var b strings.Builder
	b.WriteString(panelTitleStyle.Render("📈 Сегодня"))
	b.WriteString("\n")
	soundMark := "🔇"
	if m.stats.SoundEnabled {
		soundMark = "🔊"
	}
	b.WriteString(fmt.Sprintf("Событий: %d · напоминаний о воде: %d · о перерывах: %d · отправок в Telegram: %d · %s\n",
		events.TotalEvents, events.WaterReminders, events.BreakReminders, events.TelegramSent, soundMark))

	if len(m.recentLogs) == 0 {
		b.WriteString(dimStyle.Render("Журнал пока пуст"))
	} else {
		for i, entry := range m.recentLogs {
			b.WriteString(dimStyle.Render(fmt.Sprintf("[%s] %s", entry.Timestamp, entry.EventType)))
			if i < len(m.recentLogs)-1 {
				b.WriteString("\n")
			}
		}
	}

	return panelStyle.Render(b.String())
}

func (m DashboardModel) notificationView() string {
	content := fmt.Sprintf("%s\n\n%s\n\n%s",
		m.notifyTitle,
		m.notifyBody,
		helpStyle.Render("нажмите любую клавишу"))

	box := notifyStyle.Render(content)
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
	}
	return box
}
