package store

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/samdwyer/warband/internal/game"
)

// FileStore keeps the game as a JSON file on an afero filesystem.
type FileStore struct {
	fs   afero.Fs
	path string
}

// NewFileStore creates a store for the file at path.
func NewFileStore(fsys afero.Fs, path string) *FileStore {
	return &FileStore{fs: fsys, path: filepath.Clean(path)}
}

// Path returns the save file location.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the save file. A missing or empty file means no game.
func (s *FileStore) Load(ctx context.Context) (game.State, bool, error) {
	if err := ctx.Err(); err != nil {
		return game.State{}, false, err
	}

	data, err := afero.ReadFile(s.fs, s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return game.State{}, false, nil
	}
	if err != nil {
		return game.State{}, false, err
	}
	return DecodeJSON(data)
}

// Save writes the snapshot to a temporary file and renames it into place,
// so a failed write never leaves a half-written save.
func (s *FileStore) Save(ctx context.Context, st game.State) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := EncodeJSON(st)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := s.fs.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	tmp := s.path + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, data, 0o644); err != nil {
		return err
	}
	if err := s.fs.Rename(tmp, s.path); err != nil {
		_ = s.fs.Remove(tmp)
		return err
	}
	return nil
}
