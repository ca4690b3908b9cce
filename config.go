package taketurns

import (
	"taketurns/store"
	"taketurns/turns"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	log "github.com/sirupsen/logrus"
)

type Config struct {
	Token    string `env:"API_TOKEN,required"`
	APIURL   string `env:"API_URL"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// DefaultTurns is used by /join without an argument, <= 0 is unlimited
	DefaultTurns int    `env:"DEFAULT_TURNS" envDefault:"1"`
	Language     string `env:"LANGUAGE" envDefault:"en"`
	I18nDir      string `env:"I18N_DIR" envDefault:"i18n"`

	// Rotations holds one scheduler per chat
	Rotations store.Store[*turns.Scheduler] `env:"-"`

	Bundle *i18n.Bundle `env:"-"`
	Logger *log.Logger  `env:"-"`
}
