package taketurns

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"taketurns/store"
	"taketurns/turns"

	botgolang "github.com/mail-ru-im/bot-golang"
	log "github.com/sirupsen/logrus"
)

var (
	botCmdRegexp = regexp.MustCompile("^/[a-zA-Z0-9_]+")
)

func (b *Bot) handleApiEvent(ctx context.Context, e *botgolang.Event) {
	b.logger.WithFields(log.Fields{
		"event_id":   e.EventID,
		"event_type": e.Type,
	}).Debug("handling event")

	switch e.Type {
	case botgolang.NEW_MESSAGE:
		msg := e.Payload.Message()

		cmd := botCmdRegexp.FindString(msg.Text)
		if cmd != "" {
			cmd = strings.ToLower(cmd[1:])
			b.handleCommand(e, cmd)
			break
		}

		rmsg := b.bot.NewTextMessage(e.Payload.Chat.ID, b.l("NotACommand", nil))
		b.sendLog(e.EventID, rmsg)
	}
}

func (b *Bot) handleCommand(e *botgolang.Event, cmd string) {
	b.logger.WithFields(log.Fields{
		"event_id": e.EventID,
		"command":  cmd,
	}).Debug("handling command")

	msg := e.Payload.Message()
	chatID := e.Payload.Chat.ID

	reply := func(text string) {
		b.sendLog(e.EventID, b.bot.NewTextMessage(chatID, text))
	}

	switch cmd {
	case "start", "help":
		reply(b.l("HelpMessage", map[string]interface{}{
			"Name": e.Payload.From.FirstName,
		}))

	case "join":
		n, err := parseTurns(msg.Text, b.cfg.DefaultTurns)
		if err != nil {
			reply(b.l("Join_InvalidTurns", map[string]interface{}{
				"Error": err,
			}))
			break
		}

		name := e.Payload.From.FirstName
		length, err := b.join(e.EventID, chatID, name, n)
		if err != nil {
			reply(b.l("UnknownError", map[string]interface{}{
				"Error": err,
			}))
			break
		}

		key := "Join_Added"
		if turns.BudgetOf(n).IsUnlimited() {
			key = "Join_AddedUnlimited"
		}
		reply(b.l(key, map[string]interface{}{
			"Name":   name,
			"Turns":  n,
			"Length": length,
		}))

	case "next":
		p, err := b.nextTurn(e.EventID, chatID)
		if errors.Is(err, turns.ErrNoParticipants) {
			reply(b.l("Next_NoParticipants", nil))
			break
		}
		if err != nil {
			reply(b.l("UnknownError", map[string]interface{}{
				"Error": err,
			}))
			break
		}

		reply(b.announce(p))

	case "queue":
		rotation, length, err := b.rotation(chatID)
		if errors.Is(err, store.ErrNotFound) {
			reply(b.l("Next_NoParticipants", nil))
			break
		}
		if err != nil {
			reply(b.l("UnknownError", map[string]interface{}{
				"Error": err,
			}))
			break
		}

		reply(b.l("Queue_Rotation", map[string]interface{}{
			"Rotation": rotation,
			"Length":   length,
		}))

	case "reset":
		if err := b.reset(e.EventID, chatID); errors.Is(err, store.ErrNotFound) {
			reply(b.l("Next_NoParticipants", nil))
			break
		}

		reply(b.l("Reset_Done", nil))

	default:
		reply(b.l("UnknownCommand", map[string]interface{}{
			"Command": cmd,
		}))
	}
}

// join adds name to the chat's rotation, creating the rotation on first
// use, and returns the rotation length.
func (b *Bot) join(eID int, chatID, name string, n int) (int, error) {
	var length int
	err := b.cfg.Rotations.Update(chatID, func(s *turns.Scheduler, found bool) (*turns.Scheduler, error) {
		if !found {
			s = turns.New(turns.WithLogger(b.logger.WithField("chat_id", chatID)))
		}

		s.AddParticipant(name, n)
		length = s.Len()
		return s, nil
	})
	if err != nil {
		return 0, err
	}

	b.logger.WithFields(log.Fields{
		"event_id": eID,
		"chat_id":  chatID,
		"name":     name,
		"turns":    n,
	}).Debug("joined rotation")

	return length, nil
}

func (b *Bot) nextTurn(eID int, chatID string) (turns.Participant, error) {
	var p turns.Participant
	err := b.cfg.Rotations.Update(chatID, func(s *turns.Scheduler, found bool) (*turns.Scheduler, error) {
		if !found {
			return nil, turns.ErrNoParticipants
		}

		var err error
		p, err = s.NextTurn()
		if err != nil {
			return s, err
		}

		// the last participant retired, forget the rotation
		if s.Len() == 0 {
			return nil, store.ErrDelete
		}
		return s, nil
	})
	if err != nil {
		return turns.Participant{}, err
	}

	b.logger.WithFields(log.Fields{
		"event_id": eID,
		"chat_id":  chatID,
		"name":     p.Name,
		"retired":  p.Retired,
	}).Debug("turn served")

	return p, nil
}

// rotation renders the chat's rotation. Scheduler reads go through
// Update as well, since the bot handles events concurrently.
func (b *Bot) rotation(chatID string) (string, int, error) {
	var (
		rendered string
		length   int
	)
	err := b.cfg.Rotations.Update(chatID, func(s *turns.Scheduler, found bool) (*turns.Scheduler, error) {
		if !found {
			return nil, store.ErrNotFound
		}

		rendered, length = s.String(), s.Len()
		return s, nil
	})
	return rendered, length, err
}

// reset drops the chat's rotation altogether.
func (b *Bot) reset(eID int, chatID string) error {
	if _, err := b.cfg.Rotations.Pop(chatID); err != nil {
		return err
	}

	b.logger.WithFields(log.Fields{
		"event_id": eID,
		"chat_id":  chatID,
	}).Info("rotation reset")

	return nil
}

// announce words a served turn for the chat.
func (b *Bot) announce(p turns.Participant) string {
	if p.Retired {
		return b.l("Next_LastTurn", map[string]interface{}{
			"Name": p.Name,
		})
	}

	left, limited := p.Budget.Left()
	if !limited {
		return b.l("Next_Unlimited", map[string]interface{}{
			"Name": p.Name,
		})
	}

	return b.l("Next_TurnsLeft", map[string]interface{}{
		"Name":  p.Name,
		"Turns": left,
	})
}
