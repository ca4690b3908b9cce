package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/caarlos0/env"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"taketurns"
	"taketurns/store"
	"taketurns/turns"
)

func Bot() *cobra.Command {
	return &cobra.Command{
		Use:   "bot",
		Short: "Run the chat bot keeping one rotation per chat",
		Args:  cobra.NoArgs,
		Long: heredoc.Doc(`bot connects to the chat API and keeps a rotation for
			every chat it is in. It is configured from the environment:

			API_TOKEN      bot token (required)
			API_URL        API endpoint override
			LOG_LEVEL      logrus level, default info
			DEFAULT_TURNS  turns for /join without a count, default 1
			LANGUAGE       message language, default en
			I18N_DIR       directory with <language>.toml message files`),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := botConfig()
			if err != nil {
				return err
			}
			return runBot(cfg)
		},
	}
}

func botConfig() (taketurns.Config, error) {
	cfg := taketurns.Config{
		Rotations: store.NewMemStore[*turns.Scheduler](),
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("cant parse config: %w", err)
	}

	logger := log.New()
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse log level: %w", err)
	}
	logger.Level = level
	cfg.Logger = logger

	bundle, err := loadBundle(cfg.I18nDir, cfg.Language)
	if err != nil {
		return cfg, err
	}
	cfg.Bundle = bundle

	return cfg, nil
}

// loadBundle loads English messages plus the configured language, if it
// is a different one.
func loadBundle(dir, lang string) (*i18n.Bundle, error) {
	tag, err := language.Parse(lang)
	if err != nil {
		return nil, fmt.Errorf("invalid language %q: %w", lang, err)
	}

	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files := []string{"en.toml"}
	if base, _ := tag.Base(); base.String() != "en" {
		files = append(files, base.String()+".toml")
	}

	for _, f := range files {
		if _, err := bundle.LoadMessageFile(filepath.Join(dir, f)); err != nil {
			return nil, fmt.Errorf("cant load messages: %w", err)
		}
	}

	return bundle, nil
}

func runBot(cfg taketurns.Config) error {
	logger := cfg.Logger

	bot, err := taketurns.NewBot(cfg)
	if err != nil {
		return fmt.Errorf("cant create bot: %w", err)
	}

	botInfo := bot.BotInfo()
	logger.WithFields(log.Fields{
		"bot_nick": botInfo.Nick,
		"bot_name": botInfo.FirstName,
	}).Info("starting bot")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	stop := make(chan struct{})

	// written before stop is closed
	var pollErr error

	go func() {
		pollErr = bot.StartPolling(ctx)
		if !errors.Is(pollErr, context.Canceled) && !errors.Is(pollErr, context.DeadlineExceeded) {
			logger.WithFields(log.Fields{
				"err": pollErr,
			}).Error("error from StartPolling")
		}
		close(stop)
	}()

	sigStop := make(chan os.Signal, 1)
	signal.Notify(sigStop, os.Interrupt)
	select {
	case <-sigStop:
		logger.Info("stopping bot by signal")
		cancel()
		<-stop
		logger.Info("stopped bot by signal")
	case <-stop:
		logger.Info("stopped bot by unknown reason")
		return pollStopped(pollErr)
	}

	return nil
}

// pollStopped turns the result of a polling loop that ended on its own
// into the command's error.
func pollStopped(err error) error {
	if err == nil {
		return errors.New("polling stopped unexpectedly")
	}
	return fmt.Errorf("polling stopped: %w", err)
}
