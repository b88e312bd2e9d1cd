package mock_bot

import tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

type MockBot struct {
	SentMessages []tgbotapi.Chattable
	Requests     []tgbotapi.Chattable
}

func (m *MockBot) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	m.SentMessages = append(m.SentMessages, c)
	return tgbotapi.Message{
		Chat: &tgbotapi.Chat{ID: 123},
		Poll: &tgbotapi.Poll{ID: "poll-1"},
	}, nil
}

func (m *MockBot) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	m.Requests = append(m.Requests, c)
	return &tgbotapi.APIResponse{Ok: true}, nil
}

func ClearSentMessages(bot *MockBot) {
	bot.SentMessages = nil
	bot.Requests = nil
}
