// Package ui renders game state and action outcomes as plain text.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/samdwyer/warband/internal/entity"
	"github.com/samdwyer/warband/internal/game"
)

// NoGameText is shown when there is no saved game.
const NoGameText = "No game found. Run config."

// Renderer writes human-readable game text to w.
type Renderer struct {
	w      io.Writer
	color  bool
	title  cases.Caser
	numfmt *message.Printer
}

// NewRenderer creates a renderer for w. Colors are enabled when w is a
// terminal and NO_COLOR is unset.
func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{
		w:      w,
		color:  isTerminal(w) && os.Getenv("NO_COLOR") == "",
		title:  cases.Title(language.English),
		numfmt: message.NewPrinter(language.English),
	}
}

// SetColor forces colors on or off.
func (r *Renderer) SetColor(on bool) {
	r.color = on
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}

// Status prints the saved game.
func (r *Renderer) Status(st game.State) {
	var b strings.Builder

	if st.Phase() == game.PhaseGameOver {
		fmt.Fprintln(&b, r.paint("GAME OVER", tcell.ColorRed))
	}
	fmt.Fprintf(&b, "Player:  %s\n", st.PlayerName)
	fmt.Fprintf(&b, "Loot:    %s\n", r.loot(st.Loot))
	fmt.Fprintf(&b, "Team:    %s\n", r.team(st.Roster))
	fmt.Fprintf(&b, "Stats:   damage %d, flee %d\n", st.Stats.Damage, st.Stats.Flee)
	fmt.Fprintf(&b, "Context: %s\n", r.title.String(st.Mode.String()))

	if st.HasEnemy() {
		enemy := "unknown"
		if st.EnemyRoster != nil {
			enemy = r.team(*st.EnemyRoster)
		}
		fmt.Fprintf(&b, "Enemy:   %s\n", enemy)
		if st.EnemyStats != nil {
			fmt.Fprintf(&b, "         damage %d, loot %d, flee %d\n",
				st.EnemyStats.Damage, st.EnemyStats.Loot, st.EnemyStats.Flee)
		}
	}

	fmt.Fprintf(&b, "Actions: %s\n", strings.Join(Actions(st.Phase()), ", "))
	io.WriteString(r.w, b.String())
}

// NoGame prints the missing-game hint.
func (r *Renderer) NoGame() {
	fmt.Fprintln(r.w, NoGameText)
}

// Outcome prints the result of an applied action.
func (r *Renderer) Outcome(out game.Outcome) {
	fmt.Fprintln(r.w, out.Message)

	if f := out.Flee; f != nil && f.Lost() > 0 {
		fmt.Fprintf(r.w, "Survivors: %s\n", r.team(f.Survivors))
	}
	switch out.State.Phase() {
	case game.PhaseCombat:
		fmt.Fprintln(r.w, "Run fight or flee.")
	case game.PhaseGameOver:
		fmt.Fprintln(r.w, "Run restart or config to play again.")
	}
}

// Rejection prints why an action was refused, with an optional suggestion.
func (r *Renderer) Rejection(err error, suggestion string) {
	fmt.Fprintln(r.w, r.paint(capitalize(err.Error()), tcell.ColorYellow))
	if suggestion != "" {
		fmt.Fprintf(r.w, "Did you mean %q?\n", suggestion)
	}
}

// Actions lists the commands that make sense in phase p.
func Actions(p game.Phase) []string {
	switch p {
	case game.PhaseMovement:
		return []string{"buy", "move", "restart"}
	case game.PhaseCombat:
		return []string{"fight", "flee", "restart"}
	default:
		return []string{"restart", "config"}
	}
}

func (r *Renderer) loot(v float64) string {
	return r.numfmt.Sprintf("%.1f", v)
}

func (r *Renderer) team(roster entity.Roster) string {
	parts := make([]string, 0, len(entity.Kinds()))
	for _, k := range entity.Kinds() {
		def := k.Def()
		if def == nil {
			continue
		}
		n := roster.Count(k)
		name := def.Name
		if n != 1 {
			name += "s"
		}
		parts = append(parts, fmt.Sprintf("%d %s", n, r.paint(name, def.TCellColor())))
	}
	return strings.Join(parts, ", ")
}

// paint wraps s in a 24-bit ANSI foreground sequence.
func (r *Renderer) paint(s string, c tcell.Color) string {
	if !r.color || c == tcell.ColorDefault {
		return s
	}
	red, green, blue := c.RGB()
	if red < 0 {
		return s
	}
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm%s\x1b[0m", red, green, blue, s)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
