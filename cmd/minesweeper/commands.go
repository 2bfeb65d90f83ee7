package main

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/vancomm/minesweeper-board/internal/mines"
	"github.com/vancomm/minesweeper-board/internal/snapshot"
)

var ErrUsage = errors.New("wrong usage")

func (app *application) newBoard() *mines.Board {
	if app.newRand != nil {
		return mines.NewBoardWithRand(app.newRand())
	}
	return mines.NewBoard()
}

func (app *application) newBoards(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("new", flag.ContinueOnError)
	out := fs.String("o", "", "write the board to this file instead of stdout")
	count := fs.Int("n", 1, "number of boards to generate into -dir")
	dir := fs.String("dir", "", "directory for generated boards (default: config output_dir)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 0 {
		return fmt.Errorf("%w: new takes no positional arguments", ErrUsage)
	}

	if *count != 1 || *dir != "" {
		if *out != "" {
			return fmt.Errorf("%w: -o cannot be combined with -n or -dir", ErrUsage)
		}
		if *dir == "" {
			*dir = app.config.OutputDir
		}
		paths, err := snapshot.GenerateAll(ctx, *dir, *count, app.newRand)
		if err != nil {
			return err
		}
		for _, path := range paths {
			fmt.Fprintln(app.out, path)
		}
		return nil
	}

	b := app.newBoard()
	if *out == "" {
		_, err := fmt.Fprint(app.out, b)
		return err
	}
	if err := snapshot.Save(*out, b); err != nil {
		return err
	}
	app.logger.WithField("path", *out).Info("saved board")
	return nil
}

func (app *application) showBoard(_ context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: show takes exactly one path", ErrUsage)
	}
	b, err := snapshot.Load(args[0])
	if err != nil {
		return err
	}
	fmt.Fprint(app.out, b)
	fmt.Fprintf(app.out, "bombs: %d\n", b.Bombs())
	return nil
}

func (app *application) inspectCell(_ context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: cell takes a path and x=, y= arguments", ErrUsage)
	}
	var p point
	if err := decodeArgs(&p, args[1:]); err != nil {
		return err
	}
	if !p.inBounds() {
		return fmt.Errorf("%w: cell (%d, %d) is off the board", mines.ErrInvalidArgument, p.X, p.Y)
	}

	b, err := snapshot.Load(args[0])
	if err != nil {
		return err
	}
	n, err := b.NumSurroundingBombs(p.X, p.Y)
	if err != nil {
		return err
	}
	fmt.Fprintf(app.out, "cell (%d, %d): value %d\n", p.X, p.Y, b.NumOfCell(p.X, p.Y))
	fmt.Fprintf(app.out, "bomb: %t\n", b.IsBomb(p.X, p.Y))
	fmt.Fprintf(app.out, "neighbouring bombs: %d\n", n)
	return nil
}

func (app *application) buildMove(_ context.Context, args []string) error {
	var a moveArgs
	if err := decodeArgs(&a, args); err != nil {
		return err
	}
	t, err := mines.ParseMoveType(a.Type)
	if err != nil {
		return err
	}
	m, err := mines.NewMove(a.X, a.Y, t)
	if err != nil {
		return err
	}
	fmt.Fprintln(app.out, m)
	return nil
}
