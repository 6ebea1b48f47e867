// textagons is a hex-tile word game for the terminal.
//
// Usage:
//
//	textagons                     - Play (same as "textagons play")
//	textagons play                - Play a game
//	textagons scores              - Show finished games, best first
//	textagons dict check [file]   - Check a dictionary covers every bonus length
//	textagons dict annotate [file] - Turn a plain word list into "word,rarity" lines
//	textagons config              - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible boards
//	--db <path>           - Set database path (default: ~/.textagons/scores.db)
//	--config <path>       - Use a custom config YAML
//	--dict <path>         - Use a custom "word,rarity" dictionary
//	--log-file <path>     - Write the event log here (default: ~/.textagons/textagons.log)
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shadowFAQs/textagons/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagDict     string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "textagons",
	Short: "Textagons - spell words on a board of falling hexagons",
	Long: `Textagons is a word game played on a board of hexagonal letter tiles.

Click a chain of touching tiles to spell a word, then click the last tile
again to submit it. Used tiles drop out and new ones fall in from the top.
Long words may leave crystal tiles worth double; short ones may leave fire
tiles that burn through their column. The game ends when fire reaches the
bottom of the board.

Available commands:
  play     - Play a game (default)
  scores   - View finished games
  dict     - Check or build dictionaries
  config   - Print the effective configuration`,
	Run: runPlay,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	pf.StringVar(&flagDict, "dict", "", "Path to a word,rarity dictionary (default: built in)")
	pf.StringVar(&flagLogFile, "log-file", defaultLogPath, "Path to the event log")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(dictCmd)
	rootCmd.AddCommand(configCmd)
}
