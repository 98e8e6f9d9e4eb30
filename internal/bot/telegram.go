package bot

import (
	"context"
	"time"

	"github.com/DanRulev/vocabquiz/internal/config"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

//go:generate mockgen -destination=mock/stats_service_mock.go github.com/DanRulev/vocabquiz/internal/bot StatsSI

type StatsSI interface {
	StatsMessage(ctx context.Context, userID int64) (string, error)
}

type BotSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type TelegramAPI struct {
	bot       *tgbotapi.BotAPI
	sender    BotSender
	webAppURL string
	timeout   time.Duration
	stats     StatsSI
	log       *zap.Logger
}

func NewTelegramAPI(cfg *config.Config, service StatsSI, log *zap.Logger) (*TelegramAPI, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, err
	}

	bot.Debug = cfg.Env == config.EnvDevelopment

	t := newTelegramAPI(bot, cfg.WebAppURL, cfg.App.Timeout, service, log)
	t.bot = bot

	return t, nil
}

func newTelegramAPI(sender BotSender, webAppURL string, timeout time.Duration, service StatsSI, log *zap.Logger) *TelegramAPI {
	return &TelegramAPI{
		sender:    sender,
		webAppURL: webAppURL,
		timeout:   timeout,
		stats:     service,
		log:       log.Named("bot"),
	}
}

// Start polls for updates until ctx is cancelled.
func (t *TelegramAPI) Start(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := t.bot.GetUpdatesChan(u)
	t.log.Info("bot polling started", zap.String("username", t.bot.Self.UserName))

	for {
		select {
		case <-ctx.Done():
			t.bot.StopReceivingUpdates()
			t.log.Info("bot polling stopped")
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			t.handleUpdate(ctx, update)
		}
	}
}

func (t *TelegramAPI) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.Message == nil {
		return
	}

	if update.Message.IsCommand() {
		t.handleCommand(ctx, update.Message)
	} else {
		t.handleMessage(update.Message)
	}
}

func (t *TelegramAPI) sendMessage(msg tgbotapi.Chattable) {
	sentMsg, err := t.sender.Send(msg)
	if err != nil {
		t.log.Warn("failed to send message", zap.Error(err))
		return
	}

	t.log.Debug("sent message", zap.Int64("chat_id", sentMsg.Chat.ID))
}
