package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"

	"github.com/marioamitrano01/Mario-s-Pac-Man/internal/config"
	"github.com/marioamitrano01/Mario-s-Pac-Man/internal/game"
	"github.com/marioamitrano01/Mario-s-Pac-Man/internal/highscore"
	"github.com/marioamitrano01/Mario-s-Pac-Man/internal/log"
)

var (
	version   = "v0.1.0"
	commit    = "none"
	buildDate = "unknown"
)

func main() {
	_ = godotenv.Load()

	showVersion := flag.Bool("version", false, "print version and exit")
	configPath := flag.String("config", "", "path to config file (YAML)")
	showScores := flag.Bool("scores", false, "print the leaderboard and exit")
	dumpConfig := flag.Bool("dump-config", false, "print the effective configuration and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("%s (commit: %s, built: %s)\n", version, commit, buildDate)
		os.Exit(0)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Configure(log.Config{})
		base := log.Base()
		base.Fatal().Err(err).Str("path", *configPath).Msg("load config")
	}
	log.Configure(log.Config{Level: cfg.Log.Level})
	logger := log.WithComponent("main")

	switch {
	case *dumpConfig:
		out, err := cfg.YAML()
		if err != nil {
			logger.Fatal().Err(err).Msg("encode config")
		}
		os.Stdout.Write(out)
		return
	case *showScores:
		if err := printScores(cfg); err != nil {
			logger.Fatal().Err(err).Msg("read leaderboard")
		}
		return
	}

	g, err := game.New(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("create game")
	}
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizable(false)
	ebiten.SetWindowSize(g.WindowSize())
	ebiten.SetTPS(cfg.Window.TPS)

	logger.Info().Str("version", version).Int("tps", cfg.Window.TPS).Msg("starting")
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal().Err(err).Msg("run game")
	}
	logger.Info().Msg("bye")
}

func printScores(cfg config.Config) error {
	store, err := highscore.Open(cfg.Scores.Dir, cfg.Scores.Limit)
	if err != nil {
		return err
	}
	list, err := store.Load()
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Println("no scores yet")
		return nil
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tNAME\tSCORE\tWON\tDATE")
	for i, rec := range list {
		fmt.Fprintf(w, "%d\t%s\t%d\t%t\t%s\n", i+1, rec.Name, rec.Score, rec.Won, recordDate(rec))
	}
	return w.Flush()
}

// recordDate is blank for legacy records saved without a timestamp.
func recordDate(rec highscore.Record) string {
	if rec.At.IsZero() {
		return ""
	}
	return rec.At.Local().Format("2006-01-02 15:04")
}
