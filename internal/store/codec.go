// Package store persists the game snapshot: a JSON file, an SQLite row, or
// process memory.
package store

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/samdwyer/warband/internal/game"
)

// EncodeJSON renders the snapshot with two-space indentation.
func EncodeJSON(st game.State) ([]byte, error) {
	b, err := json.MarshalIndent(st.Snapshot(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return b, nil
}

// DecodeJSON parses a stored snapshot. Empty or whitespace-only input means
// no game has been saved.
func DecodeJSON(data []byte) (game.State, bool, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return game.State{}, false, nil
	}

	var snap game.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return game.State{}, false, fmt.Errorf("decode snapshot: %w", err)
	}
	st, err := game.FromSnapshot(snap)
	if err != nil {
		return game.State{}, false, err
	}
	return st, true, nil
}
