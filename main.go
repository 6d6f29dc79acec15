package main

import (
	"context"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordscramble/internal/config"
	"github.com/robalobadob/wordscramble/internal/console"
	"github.com/robalobadob/wordscramble/internal/daily"
	"github.com/robalobadob/wordscramble/internal/dictstore"
	"github.com/robalobadob/wordscramble/internal/game"
	"github.com/robalobadob/wordscramble/internal/words"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	setupLogging(cfg)

	ctx := log.Logger.WithContext(context.Background())

	dict, closeDict, err := buildDictionary(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load dictionary")
	}
	defer closeDict()

	engine := game.NewEngine(
		game.WithPicker(picker(cfg, time.Now)),
		game.WithLocale(cfg.Locale),
		game.WithDebugBypass(cfg.DebugBypass),
		game.WithLogger(log.Logger),
	)
	g, err := game.New(engine, words.StartList{Path: cfg.StartFile}, dict)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load root words")
	}
	log.Info().Int("roots", g.WordCount()).Str("backend", cfg.DictionaryBackend).Msg("starting wordscramble")

	if err := console.Run(ctx, os.Stdin, os.Stdout, g); err != nil {
		log.Fatal().Err(err).Msg("console exited")
	}
}

func setupLogging(cfg config.Config) {
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if cfg.LogFormat == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
}

func picker(cfg config.Config, now func() time.Time) game.Picker {
	switch cfg.PickMode {
	case config.PickSeeded:
		return game.SeededPicker(cfg.Seed)
	case config.PickDaily:
		return daily.Picker(now, cfg.DailySalt)
	}
	return game.RandomPicker()
}

// buildDictionary returns the configured dictionary backend and a close func.
func buildDictionary(ctx context.Context, cfg config.Config) (game.Dictionary, func(), error) {
	list, err := words.DictionaryList(cfg.DictionaryFile)
	if err != nil {
		return nil, nil, err
	}
	if cfg.DictionaryBackend != config.BackendSQLite {
		d := words.NewDictionary()
		d.Add(cfg.Locale, list...)
		return d, func() {}, nil
	}

	db, err := openDB(cfg.DictionaryDSN)
	if err != nil {
		return nil, nil, err
	}
	closeDB := func() { _ = db.Close() }
	if err := migrate(db); err != nil {
		closeDB()
		return nil, nil, err
	}

	store := dictstore.NewStore(db, dictstore.WithLogger(log.Logger))
	if err := seedDictionary(ctx, store, cfg.Locale, list); err != nil {
		closeDB()
		return nil, nil, err
	}
	return store, closeDB, nil
}
