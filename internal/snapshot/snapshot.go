// Package snapshot saves and loads boards as flat text files in the
// snapshot format, one digit per cell and one line per row.
package snapshot

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/vancomm/minesweeper-board/internal/mines"
)

var Log = logrus.New()

// Save writes the board to path. The file is replaced atomically, so a reader
// never sees a half-written snapshot.
func Save(path string, b *mines.Board) error {
	f, err := os.CreateTemp(filepath.Dir(path), ".snapshot-*")
	if err != nil {
		return fmt.Errorf("unable to create snapshot file: %w", err)
	}
	defer os.Remove(f.Name())

	if _, err := f.WriteString(b.String()); err != nil {
		f.Close()
		return fmt.Errorf("unable to write snapshot %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("unable to write snapshot %s: %w", path, err)
	}
	if err := os.Rename(f.Name(), path); err != nil {
		return fmt.Errorf("unable to write snapshot %s: %w", path, err)
	}

	Log.WithField("path", path).Debug("saved snapshot")
	return nil
}

// Load reads a board from a file written by [Save] or holding the compact
// 256-digit form. Cells come back hidden and unflagged.
func Load(path string) (*mines.Board, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open snapshot: %w", err)
	}
	defer f.Close()

	b, err := mines.ReadBoard(f)
	if err != nil {
		return nil, fmt.Errorf("unable to load snapshot %s: %w", path, err)
	}

	Log.WithFields(logrus.Fields{
		"path":  path,
		"bombs": b.Bombs(),
	}).Debug("loaded snapshot")
	return b, nil
}
