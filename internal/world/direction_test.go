package world

import (
	"errors"
	"testing"
)

func TestParseDirection(t *testing.T) {
	tests := []struct {
		input string
		want  Direction
	}{
		{"north", North},
		{"n", North},
		{"South", South},
		{" S ", South},
		{"east", East},
		{"e", East},
		{"WEST", West},
		{"w", West},
	}

	for _, tt := range tests {
		got, err := ParseDirection(tt.input)
		if err != nil {
			t.Errorf("ParseDirection(%q) unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDirection(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestParseDirectionInvalid(t *testing.T) {
	for _, input := range []string{"", "up", "nw", "northeast", "x"} {
		if _, err := ParseDirection(input); !errors.Is(err, ErrInvalidDirection) {
			t.Errorf("ParseDirection(%q) error = %v, want ErrInvalidDirection", input, err)
		}
	}
}

func TestDirectionString(t *testing.T) {
	tests := []struct {
		dir   Direction
		name  string
		alias rune
	}{
		{North, "north", 'n'},
		{South, "south", 's'},
		{East, "east", 'e'},
		{West, "west", 'w'},
		{Direction(9), "unknown", '?'},
	}

	for _, tt := range tests {
		if got := tt.dir.String(); got != tt.name {
			t.Errorf("Direction(%d).String() = %q, want %q", tt.dir, got, tt.name)
		}
		if got := tt.dir.Alias(); got != tt.alias {
			t.Errorf("Direction(%d).Alias() = %q, want %q", tt.dir, got, tt.alias)
		}
	}
}
