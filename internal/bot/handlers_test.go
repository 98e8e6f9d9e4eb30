package bot

import (
	"context"
	"errors"
	"testing"
	"time"

	mock_bot "github.com/DanRulev/vocabquiz/internal/bot/mock"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testWebAppURL = "https://quiz.example.com"

func newTelegramMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_bot.MockStatsSI, *mock_bot.MockBot)) (*TelegramAPI, *mock_bot.MockBot) {
	t.Helper()

	mockService := mock_bot.NewMockStatsSI(ctrl)
	mockBot := &mock_bot.MockBot{}

	if setupMock != nil {
		setupMock(mockService, mockBot)
	}

	return newTelegramAPI(mockBot, testWebAppURL, time.Second, mockService, zap.NewNop()), mockBot
}

func commandMessage(text string, from *tgbotapi.User) *tgbotapi.Message {
	length := len(text)
	for i, r := range text {
		if r == ' ' {
			length = i
			break
		}
	}

	return &tgbotapi.Message{
		Chat: &tgbotapi.Chat{ID: 123},
		From: from,
		Text: text,
		Entities: []tgbotapi.MessageEntity{
			{Type: "bot_command", Offset: 0, Length: length},
		},
	}
}

func sentText(t *testing.T, mb *mock_bot.MockBot) tgbotapi.MessageConfig {
	t.Helper()

	require.Len(t, mb.SentMessages, 1)
	msg, ok := mb.SentMessages[0].(tgbotapi.MessageConfig)
	require.True(t, ok)
	assert.Equal(t, int64(123), msg.ChatID)

	return msg
}

func TestTelegramAPI_handleUpdate(t *testing.T) {
	t.Parallel()

	user := &tgbotapi.User{ID: 456}

	tests := []struct {
		name       string
		message    *tgbotapi.Message
		f          func(*mock_bot.MockStatsSI, *mock_bot.MockBot)
		assertFunc func(*testing.T, *mock_bot.MockBot)
	}{
		{
			name:    "start sends welcome with app button",
			message: commandMessage("/start", user),
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				msg := sentText(t, mb)
				assert.Equal(t, welcomeText, msg.Text)
				assert.Contains(t, msg.Text, "Xush kelibsiz!")
				assert.Equal(t, tgbotapi.ModeMarkdown, msg.ParseMode)

				kb, ok := msg.ReplyMarkup.(tgbotapi.InlineKeyboardMarkup)
				require.True(t, ok)
				require.Len(t, kb.InlineKeyboard, 1)
				require.Len(t, kb.InlineKeyboard[0], 1)

				button := kb.InlineKeyboard[0][0]
				assert.Equal(t, ButtonOpenApp, button.Text)
				require.NotNil(t, button.URL)
				assert.Equal(t, testWebAppURL, *button.URL)
			},
		},
		{
			name:    "start with payload and anonymous sender",
			message: commandMessage("/start ref123", nil),
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				msg := sentText(t, mb)
				assert.Equal(t, welcomeText, msg.Text)
			},
		},
		{
			name:    "help",
			message: commandMessage("/help", user),
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				msg := sentText(t, mb)
				assert.Equal(t, helpText, msg.Text)
			},
		},
		{
			name:    "stats",
			message: commandMessage("/stats", user),
			f: func(ms *mock_bot.MockStatsSI, mb *mock_bot.MockBot) {
				ms.EXPECT().StatsMessage(gomock.Any(), int64(456)).Return("📊 *Statistika*", nil)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				msg := sentText(t, mb)
				assert.Equal(t, "📊 *Statistika*", msg.Text)
				assert.Equal(t, tgbotapi.ModeMarkdown, msg.ParseMode)
			},
		},
		{
			name:    "stats service error",
			message: commandMessage("/stats", user),
			f: func(ms *mock_bot.MockStatsSI, mb *mock_bot.MockBot) {
				ms.EXPECT().StatsMessage(gomock.Any(), int64(456)).Return("", errors.New("db error"))
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				msg := sentText(t, mb)
				assert.Equal(t, statsErrorText, msg.Text)
			},
		},
		{
			name:    "stats without sender is ignored",
			message: commandMessage("/stats", nil),
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				assert.Empty(t, mb.SentMessages)
			},
		},
		{
			name:    "unknown command",
			message: commandMessage("/quiz", user),
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				msg := sentText(t, mb)
				assert.Equal(t, unknownCommandText, msg.Text)
			},
		},
		{
			name: "plain text",
			message: &tgbotapi.Message{
				Chat: &tgbotapi.Chat{ID: 123},
				From: user,
				Text: "hello",
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				msg := sentText(t, mb)
				assert.Equal(t, plainTextReply, msg.Text)
			},
		},
		{
			name: "send failure is swallowed",
			message: commandMessage("/help", user),
			f: func(ms *mock_bot.MockStatsSI, mb *mock_bot.MockBot) {
				mb.Fail = true
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				assert.Len(t, mb.SentMessages, 1)
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			tAPI, mockBot := newTelegramMock(t, ctrl, tt.f)

			tAPI.handleUpdate(context.Background(), tgbotapi.Update{Message: tt.message})

			tt.assertFunc(t, mockBot)
		})
	}
}

func TestTelegramAPI_handleUpdateWithoutMessage(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tAPI, mockBot := newTelegramMock(t, ctrl, nil)

	tAPI.handleUpdate(context.Background(), tgbotapi.Update{CallbackQuery: &tgbotapi.CallbackQuery{ID: "1"}})

	assert.Empty(t, mockBot.SentMessages)
}
