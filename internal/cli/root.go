// Package cli wires the game engine to cobra commands.
package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/samdwyer/warband/internal/game"
	"github.com/samdwyer/warband/internal/ui"
)

// NewRootCmd builds the warband command tree around engine.
func NewRootCmd(engine *game.Engine) *cobra.Command {
	root := &cobra.Command{
		Use:   "warband",
		Short: "A turn-based warband game played one command at a time",
		Long: `Warband keeps a single saved game. Recruit units, explore in a
compass direction, and fight or flee the enemy bands you meet.

Start with "warband config", then check "warband status".`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newConfigCmd(engine),
		newStatusCmd(engine),
		newBuyCmd(engine),
		newMoveCmd(engine),
		newFightCmd(engine),
		newFleeCmd(engine),
		newRestartCmd(engine),
	)
	return root
}

// report prints an applied outcome, or a rejection with an optional
// suggestion. Only store and I/O failures are returned.
func report(cmd *cobra.Command, out game.Outcome, err error, suggestion string) error {
	r := ui.NewRenderer(cmd.OutOrStdout())
	switch {
	case err == nil:
		r.Outcome(out)
		return nil
	case errors.Is(err, game.ErrNoActiveGame):
		r.NoGame()
		return nil
	case game.IsRejection(err):
		r.Rejection(err, suggestion)
		return nil
	default:
		return err
	}
}
