package bot

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const (
	ButtonOpenApp = "🚀 Ilovani ochish"

	welcomeText = "Xush kelibsiz! *ProSkill English Quiz* botiga a'zo bo'ldingiz. 📚\n\n" +
		"O'zingiz so'z qo'shing va o'sha so'zlar bo'yicha test ishlang.\n" +
		"Boshlash uchun pastdagi tugmani bosing!"

	helpText = "📚 Buyruqlar:\n" +
		"/start - ilovani ochish\n" +
		"/stats - natijalaringiz\n" +
		"/help - shu xabar"

	unknownCommandText = "Noma'lum buyruq. /help ni bosing"
	plainTextReply     = "So'z qo'shish va test ishlash uchun ilovani oching: /start"
	statsErrorText     = "Statistikani olib bo'lmadi. Keyinroq urinib ko'ring."
)

func (t *TelegramAPI) handleCommand(ctx context.Context, message *tgbotapi.Message) {
	switch message.Command() {
	case "start":
		t.handleStartCommand(message)
	case "help":
		t.handleHelpCommand(message)
	case "stats":
		t.handleStatsCommand(ctx, message)
	default:
		t.sendMessage(tgbotapi.NewMessage(message.Chat.ID, unknownCommandText))
	}
}

func (t *TelegramAPI) handleStartCommand(message *tgbotapi.Message) {
	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL(ButtonOpenApp, t.webAppURL),
		),
	)

	msg := tgbotapi.NewMessage(message.Chat.ID, welcomeText)
	msg.ParseMode = tgbotapi.ModeMarkdown
	msg.ReplyMarkup = keyboard

	t.sendMessage(msg)
}

func (t *TelegramAPI) handleHelpCommand(message *tgbotapi.Message) {
	t.sendMessage(tgbotapi.NewMessage(message.Chat.ID, helpText))
}

func (t *TelegramAPI) handleStatsCommand(ctx context.Context, message *tgbotapi.Message) {
	if message.From == nil {
		t.log.Warn("stats command without sender", zap.Int64("chat_id", message.Chat.ID))
		return
	}

	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	text, err := t.stats.StatsMessage(ctx, message.From.ID)
	if err != nil {
		t.log.Error("failed to build stats message", zap.Int64("user_id", message.From.ID), zap.Error(err))
		t.sendMessage(tgbotapi.NewMessage(message.Chat.ID, statsErrorText))
		return
	}

	msg := tgbotapi.NewMessage(message.Chat.ID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	t.sendMessage(msg)
}

func (t *TelegramAPI) handleMessage(message *tgbotapi.Message) {
	if message.From == nil {
		t.log.Debug("message without sender", zap.Int64("chat_id", message.Chat.ID))
		return
	}

	t.sendMessage(tgbotapi.NewMessage(message.Chat.ID, plainTextReply))
}
