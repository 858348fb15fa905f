package telegram

import "log"

// SendMessageOrLogError отправляет сообщение; ошибка доставки логируется,
// но не эскалируется — сбой уведомления не повод останавливать приложение.
func (b *Bot) SendMessageOrLogError(message string) {
	if err := b.SendMessage(message); err != nil {
		log.Printf("❌ Ошибка отправки в Telegram: %v", err)
	}
}
