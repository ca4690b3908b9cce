package taketurns

import (
	"fmt"
	"strconv"
	"strings"

	botgolang "github.com/mail-ru-im/bot-golang"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	log "github.com/sirupsen/logrus"
)

// l renders a message from the bundle in the configured language.
func (b *Bot) l(key string, data map[string]interface{}) string {
	return b.localizer.MustLocalize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
}

// sendLog sends m to its chat. Failures are logged with the event they
// answer and then returned; handlers usually ignore them.
func (b *Bot) sendLog(eID int, m *botgolang.Message) error {
	if err := m.Send(); err != nil {
		b.logger.WithFields(log.Fields{
			"event_id": eID,
			"chat_id":  m.Chat.ID,
			"error":    err,
		}).Error("cant send message")
		return err
	}
	return nil
}

// parseTurns reads the optional budget after a command, e.g. "/join 3".
func parseTurns(text string, def int) (int, error) {
	fields := strings.Fields(text)
	if len(fields) < 2 {
		return def, nil
	}

	n, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, fmt.Errorf("invalid turn count %q", fields[1])
	}
	return n, nil
}
