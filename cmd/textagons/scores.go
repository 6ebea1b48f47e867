package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/shadowFAQs/textagons/internal/platform/tui"
	"github.com/shadowFAQs/textagons/internal/storage"
)

var (
	flagLimit int
	flagPlain bool
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show finished games",
	Long: `Display finished games, best score first.

On a terminal this opens a scrollable table; when the output is piped, or
with --plain, the top games are printed as text.

Examples:
  textagons scores
  textagons scores --plain --limit 5
  textagons scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of games to print with --plain")
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print text instead of opening the table")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every recorded game")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearGames(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Scores cleared.")
		return
	}

	fd := int(os.Stdout.Fd())
	if !flagPlain && term.IsTerminal(fd) {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(fd); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	games, err := store.TopGames(flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores - Textagons")
	fmt.Println()

	if len(games) == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Println("Play 'textagons play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-7s  %-5s  %-20s  %-14s  %s\n", "Rank", "Score", "Words", "Best word", "Longest", "Date")
	fmt.Printf("  %-4s  %-7s  %-5s  %-20s  %-14s  %s\n", "----", "-----", "-----", "---------", "-------", "----")

	for i, g := range games {
		best := g.BestWord
		if best != "" {
			best = fmt.Sprintf("%s (%d)", best, g.BestScore)
		}
		fmt.Printf("  %-4d  %-7d  %-5d  %-20s  %-14s  %s\n",
			i+1, g.Score, g.Words, best, g.Longest, g.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if longest, err := store.LongestWord(); err == nil && longest != "" {
		fmt.Printf("Longest word ever: %s\n", longest)
	}
}
