package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/samdwyer/warband/internal/game"
	"github.com/samdwyer/warband/internal/ui"
)

func newConfigCmd(engine *game.Engine) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Start a new game, replacing any saved one",
		Long: `Start a new game with 40 loot and an empty warband.

Without --name the player name is read from stdin. A blank name becomes
"Player".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("name") {
				var err error
				if name, err = prompt(cmd.InOrStdin(), cmd.OutOrStdout(), "Player name: "); err != nil {
					return err
				}
			}

			out, err := engine.Configure(cmd.Context(), name)
			if err != nil {
				return err
			}
			r := ui.NewRenderer(cmd.OutOrStdout())
			r.Outcome(out)
			r.Status(out.State)
			return nil
		},
	}
	cmd.Flags().StringVarP(&name, "name", "n", "", "player name")
	return cmd
}

// prompt writes label and reads one line. End of input yields "".
func prompt(in io.Reader, out io.Writer, label string) (string, error) {
	fmt.Fprint(out, label)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read player name: %w", err)
	}
	return strings.TrimSpace(line), nil
}
