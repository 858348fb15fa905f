package tui

import tea "github.com/charmbracelet/bubbletea"

// Notifier доставляет диалоговые уведомления в основной цикл интерфейса.
// Program.Send безопасен из любой горутины, поэтому фоновый цикл
// напоминаний никогда не трогает состояние модели напрямую.
type Notifier struct {
	program *tea.Program
}

func NewNotifier(p *tea.Program) *Notifier {
	return &Notifier{program: p}
}

// Show показывает диалог. Fire-and-forget: результата нет, ошибок нет.
func (n *Notifier) Show(title, body string) {
	if n.program == nil {
		return
	}
	n.program.Send(NotifyMsg{Title: title, Body: body})
}
