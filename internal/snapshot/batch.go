package snapshot

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minesweeper-board/internal/mines"
)

func defaultRand() mines.Source {
	return mines.NewRand()
}

// GenerateAll generates n random boards and saves each one into dir under a
// fresh board-<uuid>.txt name. Every board draws from its own source built by
// newRand (nil means freshly seeded generators). The returned paths follow
// generation order. Once ctx is done no further boards are started.
func GenerateAll(
	ctx context.Context, dir string, n int, newRand func() mines.Source,
) ([]string, error) {
	if n < 0 {
		return nil, fmt.Errorf("board count must not be negative, got %d", n)
	}
	if newRand == nil {
		newRand = defaultRand
	}

	paths := make([]string, n)
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i := range n {
		if gCtx.Err() != nil {
			break
		}
		r := newRand()
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			path := filepath.Join(dir, "board-"+uuid.NewString()+".txt")
			if err := Save(path, mines.NewBoardWithRand(r)); err != nil {
				return err
			}
			paths[i] = path
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	Log.WithFields(logrus.Fields{
		"dir":    dir,
		"boards": n,
	}).Info("generated boards")
	return paths, nil
}
