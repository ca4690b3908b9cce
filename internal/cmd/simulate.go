package cmd

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/adrg/xdg"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"taketurns/turns"
)

var DefaultRoster = filepath.Join(xdg.ConfigHome, "taketurns", "roster.toml")

func Simulate() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate [roster-file]",
		Short: "Play out a rotation described by a roster file",
		Args:  cobra.MaximumNArgs(1),
		Long: heredoc.Doc(`simulate loads a TOML roster and serves turns from it,
			printing whose turn each one is.

			Every participant has a name and a number of turns. Zero or
			fewer turns means the participant never leaves the rotation.
			With --order priority, higher priority participants are served
			first and equal priorities take turns.

			Without a roster argument the roster is read from
			$XDG_CONFIG_HOME/taketurns/roster.toml.`),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := DefaultRoster
			if len(args) == 1 {
				path = args[0]
			}

			roster, err := turns.LoadRoster(path)
			if err != nil {
				return err
			}

			if order, _ := cmd.Flags().GetString("order"); order != "" {
				roster.Order = order
			}
			if roster.Order != turns.OrderFIFO && roster.Order != turns.OrderPriority {
				return fmt.Errorf("%w %q", turns.ErrUnknownOrder, roster.Order)
			}

			limit, _ := cmd.Flags().GetInt("turns")
			if limit <= 0 && roster.Unlimited() {
				return errors.New("roster has participants with unlimited turns, pass --turns")
			}

			s := roster.Scheduler(turns.WithLogger(log.StandardLogger()))
			return simulate(cmd.OutOrStdout(), s, limit)
		},
	}

	cmd.Flags().IntP("turns", "n", 0, "Number of turns to serve, 0 serves until the rotation is empty")
	cmd.Flags().StringP("order", "o", "", "Override the roster's order (fifo or priority)")

	return cmd
}

// simulate serves up to limit turns, or until the rotation empties when
// limit is 0 or less.
func simulate(w io.Writer, s *turns.Scheduler, limit int) error {
	for i := 1; limit <= 0 || i <= limit; i++ {
		p, err := s.NextTurn()
		if errors.Is(err, turns.ErrNoParticipants) {
			fmt.Fprintf(w, "rotation empty after %d turns\n", i-1)
			return nil
		}
		if err != nil {
			return err
		}

		status := p.Budget.String()
		if p.Retired {
			status = "retires"
		}
		fmt.Fprintf(w, "%3d. %s (%s)\n", i, p.Name, status)
	}

	fmt.Fprintf(w, "rotation: %s\n", s)
	return nil
}
