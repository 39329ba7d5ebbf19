package tgbot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goserg/cricketboard/internal/config"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

var ErrBadRequest = errors.New("unknown command, try /help")

type Bot struct {
	bot *tgbotapi.BotAPI
	log *logrus.Entry

	// stopped is done once Stop is called, Run may start before or after.
	stopped context.Context
	cancel  context.CancelFunc

	commands *Commands
}

func New(ps Players, cfg config.Config, l *logrus.Logger) (*Bot, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.TgBot.TelegramApiToken)
	if err != nil {
		return nil, fmt.Errorf("env TELEGRAM_APITOKEN: %w", err)
	}
	bot.Debug = cfg.Server.Debug
	if _, err := bot.GetMe(); err != nil {
		return nil, err
	}
	return newBot(bot, l, NewCommands(ps)), nil
}

func newBot(api *tgbotapi.BotAPI, l *logrus.Logger, commands *Commands) *Bot {
	stopped, cancel := context.WithCancel(context.Background())
	return &Bot{
		bot:      api,
		log:      l.WithField("from", "tg-bot"),
		stopped:  stopped,
		cancel:   cancel,
		commands: commands,
	}
}

// Run polls for updates until ctx is done or Stop is called.
func (b *Bot) Run(ctx context.Context) {
	if b.stopped.Err() != nil {
		return
	}
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.bot.GetUpdatesChan(u)
	defer b.bot.StopReceivingUpdates()

	b.log.Info("bot started")
	for {
		select {
		case <-ctx.Done():
			b.log.Info("bot stopped")
			return
		case <-b.stopped.Done():
			b.log.Info("bot stopped")
			return
		case update := <-updates:
			b.handleMessage(ctx, update)
		}
	}
}

func (b *Bot) handleMessage(ctx context.Context, update tgbotapi.Update) {
	if update.Message == nil || !update.Message.IsCommand() {
		return
	}
	log := b.log.WithFields(map[string]interface{}{
		"chat_id": update.Message.Chat.ID,
		"text":    update.Message.Text,
	})

	msg := tgbotapi.NewMessage(update.Message.Chat.ID, "")
	text, err := b.commands.RunCommand(ctx, chatKind(update.Message.Chat), update.Message.Command(), strings.TrimSpace(update.Message.CommandArguments()))
	if err != nil {
		if !errors.Is(err, ErrBadRequest) {
			log.WithError(err).Error("command failed")
		}
		text = err.Error()
	}
	msg.Text = text
	if _, err := b.bot.Send(msg); err != nil {
		log.WithError(err).Error("send error")
	}
}

// Stop ends Run. It is safe to call from any goroutine, more than once.
func (b *Bot) Stop() {
	b.cancel()
}

func chatKind(c *tgbotapi.Chat) ChatKind {
	if c == nil || c.IsPrivate() {
		return ChatPrivate
	}
	return ChatGroup
}
