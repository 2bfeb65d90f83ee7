package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-board/internal/config"
	"github.com/vancomm/minesweeper-board/internal/mines"
)

type command func(app *application, ctx context.Context, args []string) error

var commands = map[string]command{
	"new":  (*application).newBoards,
	"show": (*application).showBoard,
	"cell": (*application).inspectCell,
	"move": (*application).buildMove,
}

var ErrUnknownCommand = errors.New("unknown command")

type application struct {
	logger *logrus.Logger
	config *config.Config
	out    io.Writer

	// newRand overrides the freshly seeded generator of each new board.
	newRand func() mines.Source
}

func (app *application) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: none given", ErrUnknownCommand)
	}
	cmd, ok := commands[args[0]]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCommand, args[0])
	}
	app.logger.WithField("args", args).Debug("running command")
	return cmd(app, ctx, args[1:])
}
