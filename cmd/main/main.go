package main

import (
	"context"
	"io/fs"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/animaart/planner/pkg/config"
	"github.com/animaart/planner/pkg/controller"
	"github.com/animaart/planner/pkg/ideas"
	"github.com/animaart/planner/pkg/planner"
	"github.com/animaart/planner/pkg/store"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	filePerms := 0o666

	// the TUI owns the terminal, so logs go to a file
	logFile, err := os.OpenFile(cfg.LogFilename, os.O_RDWR|os.O_CREATE|os.O_APPEND, fs.FileMode(filePerms))
	if err != nil {
		panic(err)
	}

	defer logFile.Close()

	log.Logger = log.With().Caller().Logger().Output(zerolog.ConsoleWriter{
		Out: logFile, TimeFormat: "2006-01-02_15:04:05",
	})

	log.Info().Msg("starting application...")

	st, err := store.NewStore(ctx, cfg.DBFilename)
	if err != nil {
		panic(err)
	}

	defer st.Close()

	pl, err := planner.NewPlanner(ctx, st)
	if err != nil {
		panic(err)
	}

	gen, err := ideas.NewGenerator(ctx, cfg.GeminiAPIKey)
	if err != nil {
		panic(err)
	}

	c, err := controller.NewController(ctx, pl, gen)
	if err != nil {
		panic(err)
	}

	c.Go()
}
