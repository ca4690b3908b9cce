package taketurns

import (
	"context"
	"errors"
	"fmt"

	botgolang "github.com/mail-ru-im/bot-golang"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	log "github.com/sirupsen/logrus"
)

var (
	ErrNoRotations = errors.New("no rotation store configured")
)

// Bot keeps one rotation per chat and answers the rotation commands
// (/join, /next, /queue, /reset) sent to it.
type Bot struct {
	bot       *botgolang.Bot
	cfg       Config
	localizer *i18n.Localizer
	logger    *log.Logger
}

// NewBot connects to the chat API. cfg.Rotations must be set; every
// scheduler access goes through it.
func NewBot(cfg Config) (*Bot, error) {
	if cfg.Rotations == nil {
		return nil, ErrNoRotations
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.StandardLogger()
	}

	var opts []botgolang.BotOption
	if cfg.APIURL != "" {
		opts = append(opts, botgolang.BotApiURL(cfg.APIURL))
	}

	api, err := botgolang.NewBot(cfg.Token, opts...)
	if err != nil {
		return nil, fmt.Errorf("cant create botgolang bot: %w", err)
	}

	return &Bot{
		bot:       api,
		cfg:       cfg,
		localizer: i18n.NewLocalizer(cfg.Bundle, cfg.Language),
		logger:    logger,
	}, nil
}

func (b *Bot) BotInfo() *botgolang.BotInfo {
	return b.bot.Info
}

// StartPolling handles incoming events until ctx is done. Each event gets
// its own goroutine, so handlers only touch rotations through
// cfg.Rotations.
func (b *Bot) StartPolling(ctx context.Context) error {
	events := b.bot.GetUpdatesChannel(ctx)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case e := <-events:
			go b.handleSafely(ctx, e)
		}
	}
}

func (b *Bot) handleSafely(ctx context.Context, e botgolang.Event) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.WithFields(log.Fields{
				"error":    r,
				"event_id": e.EventID,
			}).Error("panic during event handling")
		}
	}()

	b.handleApiEvent(ctx, &e)
}
