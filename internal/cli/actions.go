package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/samdwyer/warband/internal/game"
	"github.com/samdwyer/warband/internal/ui"
)

func newBuyCmd(engine *game.Engine) *cobra.Command {
	return &cobra.Command{
		Use:   "buy <warrior|hunter|wizard>",
		Short: "Recruit one unit with loot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := engine.Buy(cmd.Context(), args[0])
			var hint string
			if errors.Is(err, game.ErrUnknownUnit) {
				hint = Suggest(args[0], unitNames())
			}
			return report(cmd, out, err, hint)
		},
	}
}

func newMoveCmd(engine *game.Engine) *cobra.Command {
	return &cobra.Command{
		Use:   "move <north|south|east|west>",
		Short: "Explore in a direction",
		Long: `Explore in a direction. The road may hold loot, a wandering
recruit or an enemy band. The larger your warband, the likelier each is.

Directions may be abbreviated to n, s, e or w.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := engine.Move(cmd.Context(), args[0])
			var hint string
			if errors.Is(err, game.ErrInvalidDirection) {
				hint = Suggest(args[0], directionNames())
			}
			return report(cmd, out, err, hint)
		},
	}
}

func newFightCmd(engine *game.Engine) *cobra.Command {
	return &cobra.Command{
		Use:   "fight",
		Short: "Fight the enemy band blocking the way",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := engine.Fight(cmd.Context())
			return report(cmd, out, err, "")
		},
	}
}

func newFleeCmd(engine *game.Engine) *cobra.Command {
	return &cobra.Command{
		Use:   "flee",
		Short: "Run from the enemy band, possibly losing units",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := engine.Flee(cmd.Context())
			return report(cmd, out, err, "")
		},
	}
}

func newRestartCmd(engine *game.Engine) *cobra.Command {
	return &cobra.Command{
		Use:   "restart",
		Short: "Start over, keeping the player name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := engine.Restart(cmd.Context())
			if err != nil {
				return err
			}
			r := ui.NewRenderer(cmd.OutOrStdout())
			r.Outcome(out)
			r.Status(out.State)
			return nil
		},
	}
}
