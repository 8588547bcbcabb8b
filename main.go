package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"scavenger-board/config"
	"scavenger-board/data"
	"scavenger-board/systems"
)

func main() {
	cfg := config.Default()

	var (
		tty    bool
		schema bool
	)
	flag.BoolVar(&tty, "tty", false, "draw the board in the terminal instead of a window")
	flag.BoolVar(&schema, "schema", false, "print the board configuration JSON schema and exit")
	flag.StringVar(&cfg.BoardConfigPath, "config", "", "path to a JSON board configuration")
	flag.Int64Var(&cfg.Seed, "seed", 0, "seed for board generation (0 picks one)")
	flag.Float64Var(&cfg.TransitionDelay, "delay", cfg.TransitionDelay, "seconds shown between levels")
	flag.Parse()

	if schema {
		if err := writeSchema(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write schema: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// The terminal viewer owns stdout and stderr while it runs
	logOutput := io.Writer(os.Stderr)
	if tty {
		logOutput = io.Discard
	}
	logger := log.New(logOutput, "board: ", log.LstdFlags)
	logFunc := func(msg string) {
		systems.GetMessageLog().AddLevel(msg)
		logger.Print(msg)
	}

	cfg.Seed = cfg.ResolveSeed()
	logSeed(cfg.Seed, logger)

	session, err := NewSession(cfg, logFunc)
	if err != nil {
		log.Fatal(err)
	}

	if tty {
		viewer, err := NewTTYViewer(session)
		if err != nil {
			log.Fatal(err)
		}
		if err := viewer.Run(); err != nil {
			log.Fatal(err)
		}
		return
	}

	game := NewGame(session)
	windowWidth, windowHeight := config.GetWindowSize(session.LevelSystem().Board(session.World()))
	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle("Scavenger Board")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

// logSeed records the seed on screen and in the log so a session can be replayed
func logSeed(seed int64, logger *log.Logger) {
	msg := fmt.Sprintf("seed %d", seed)
	systems.GetMessageLog().AddSystem(msg)
	logger.Print(msg)
}

func writeSchema(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data.BoardConfigSchema())
}
