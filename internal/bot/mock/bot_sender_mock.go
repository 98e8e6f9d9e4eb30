package mock_bot

import (
	"errors"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

var ErrSendFailed = errors.New("send failed")

// MockBot records every message passed to Send.
type MockBot struct {
	SentMessages []tgbotapi.Chattable
	Fail         bool
}

func (m *MockBot) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	m.SentMessages = append(m.SentMessages, c)
	if m.Fail {
		return tgbotapi.Message{}, ErrSendFailed
	}
	return tgbotapi.Message{Chat: &tgbotapi.Chat{ID: 123}}, nil
}

func ClearSentMessages(bot *MockBot) {
	bot.SentMessages = nil
}
