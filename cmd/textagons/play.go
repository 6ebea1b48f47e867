package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/shadowFAQs/textagons/internal/core"
	"github.com/shadowFAQs/textagons/internal/game/session"
	"github.com/shadowFAQs/textagons/internal/platform/tui"
	"github.com/shadowFAQs/textagons/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of textagons.

Mouse:
  Left click   - Select a tile; click the last tile again to submit
  Right click  - Mark or unmark a tile

Keyboard:
  Arrows/hjkl  - Move the cursor
  Enter/Space  - Select the tile under the cursor
  M            - Mark the tile under the cursor
  S            - Scramble the board
  U            - Unmark all tiles
  H            - Word history
  R            - Restart
  Y / N        - Answer the open menu
  Ctrl+S       - Save a text screenshot
  ?            - More help
  Q/Ctrl+C     - Quit

Examples:
  textagons play
  textagons play --seed 42
  textagons play --dict ./words.txt --config ./textagons.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	dict, err := loadDictionary()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading dictionary: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := openLogger(flagLogFile, flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	// Use time-based seed if not specified
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	sess, err := session.New(cfg, dict, rt)
	if err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error starting game: %v\n", err)
		os.Exit(1)
	}
	logger.Info("game started", "seed", rt.Seed, "words", dict.Len(), "bonus", sess.Bonus())

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(sess, store, logger, rt)

	if store != nil {
		store.Close()
	}
	if runErr != nil {
		logger.Error("game ended with error", "error", runErr)
	}
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
