package main

import (
	"fmt"
	"strings"

	"github.com/gorilla/schema"

	"github.com/vancomm/minesweeper-board/internal/mines"
)

type point struct {
	X int `schema:"x,required"`
	Y int `schema:"y,required"`
}

func (p point) inBounds() bool {
	return 0 <= p.X && p.X < mines.Rows && 0 <= p.Y && p.Y < mines.Columns
}

type moveArgs struct {
	X    int    `schema:"x,required"`
	Y    int    `schema:"y,required"`
	Type string `schema:"type,required"`
}

// keyValues turns key=value arguments into the form values schema decodes.
func keyValues(args []string) (map[string][]string, error) {
	src := make(map[string][]string, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("argument %q is not of the form key=value", arg)
		}
		src[key] = append(src[key], value)
	}
	return src, nil
}

func decodeArgs(dst any, args []string) error {
	src, err := keyValues(args)
	if err != nil {
		return err
	}
	dec := schema.NewDecoder()
	if err := dec.Decode(dst, src); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}
