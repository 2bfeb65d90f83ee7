package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-board/internal/config"
	"github.com/vancomm/minesweeper-board/internal/mines"
	"github.com/vancomm/minesweeper-board/internal/snapshot"
)

var (
	log = logrus.New()

	configPath string
)

func init() {
	const usage = "config file path"
	flag.StringVar(&configPath, "config", "", usage)
	flag.StringVar(&configPath, "c", "", usage+" (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), `usage: %s [-config path] <command> [args]

commands:
  new [-o path] [-n count] [-dir dir]   generate random boards
  show <path>                           print a saved board
  cell <path> x=<x> y=<y>               inspect one cell of a saved board
  move x=<x> y=<y> type=<type>          build a move record

flags:
`, os.Args[0])
		flag.PrintDefaults()
	}
}

func main() {
	mainCtx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	flag.Parse()

	cfg := config.Default()
	if configPath != "" {
		if err := config.ReadConfig(configPath, cfg); err != nil {
			log.Fatalf("unable to read config %s: %s", configPath, err.Error())
		}
	}

	if err := config.SetupLogging(log, cfg); err != nil {
		log.Fatal("unable to set up logging: ", err)
	}
	mines.Log = log
	snapshot.Log = log

	log.WithFields(cfg.Fields()).Debug("config")

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	app := &application{
		logger: log,
		config: cfg,
		out:    os.Stdout,
	}
	if err := app.run(mainCtx, flag.Args()); err != nil {
		log.Fatal(err)
	}
}
