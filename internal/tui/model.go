package tui

import (
	"time"

	"health-assistant/internal/logbook"
	"health-assistant/internal/services"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// viewMode — текущий режим дашборда
type viewMode int

const (
	modeDashboard viewMode = iota
	modeCustomAmount
	modeSettings
	modeNotification
)

// TickMsg — периодическое обновление дашборда
type TickMsg time.Time

// NotifyMsg — диалоговое уведомление. Фоновый цикл напоминаний доставляет
// его через tea.Program.Send, так что показ всегда происходит в основном
// цикле интерфейса, а не из горутины таймера.
type NotifyMsg struct {
	Title string
	Body  string
}

const refreshInterval = 5 * time.Second

func tickCmd() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// DashboardModel — корневая модель интерфейса
type DashboardModel struct {
	services *services.ServiceManager

	mode         viewMode
	progress     progress.Model
	amountInput  textinput.Model
	profileInput textinput.Model

	stats      services.DashboardStats
	recentLogs []logbook.Entry

	notifyTitle string
	notifyBody  string
	message     string

	width  int
	height int
}

func NewDashboardModel(sm *services.ServiceManager) DashboardModel {
	ti := textinput.New()
	ti.Placeholder = "мл"
	ti.CharLimit = 4
	ti.Width = 10

	pi := textinput.New()
	pi.Placeholder = "вес уровень"
	pi.CharLimit = 24
	pi.Width = 24

	m := DashboardModel{
		services:     sm,
		progress:     progress.New(progress.WithDefaultGradient()),
		amountInput:  ti,
		profileInput: pi,
	}
	m.refresh()

	return m
}

func (m *DashboardModel) refresh() {
	m.stats = m.services.Stats()

	logs := m.services.Logbook.LogsForDate(today())
	if len(logs) > 8 {
		logs = logs[len(logs)-8:]
	}
	m.recentLogs = logs
}

func today() string {
	return time.Now().Format("2006-01-02")
}

func (m DashboardModel) Init() tea.Cmd {
	return tickCmd()
}
