package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/samdwyer/warband/internal/game"
	"github.com/samdwyer/warband/internal/ui"
)

// Status output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

func newStatusCmd(engine *game.Engine) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the saved game",
		Long: `Show the saved game.

Output formats:
  text - human-readable summary (default)
  json - the stored snapshot
  yaml - the stored snapshot as YAML`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			switch format {
			case FormatText, FormatJSON, FormatYAML:
			default:
				return fmt.Errorf("unknown format %q (want text, json or yaml)", format)
			}

			st, err := engine.Status(cmd.Context())
			if errors.Is(err, game.ErrNoActiveGame) {
				ui.NewRenderer(cmd.OutOrStdout()).NoGame()
				return nil
			}
			if err != nil {
				return err
			}
			return writeStatus(cmd.OutOrStdout(), format, st)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", FormatText, "output format (text, json, yaml)")
	return cmd
}

func writeStatus(w io.Writer, format string, st game.State) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(st.Snapshot())
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(st.Snapshot()); err != nil {
			return err
		}
		return enc.Close()
	default:
		ui.NewRenderer(w).Status(st)
		return nil
	}
}
