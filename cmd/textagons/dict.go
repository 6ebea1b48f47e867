package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/shadowFAQs/textagons/internal/dictionary"
)

var flagMinLength int

var dictCmd = &cobra.Command{
	Use:   "dict",
	Short: "Check or build dictionaries",
	Long: `Tools for the "word,rarity" dictionaries textagons plays with.

Examples:
  textagons dict check
  textagons dict check ./words.txt
  textagons dict annotate ./plain-words.txt > words.txt
  cat plain-words.txt | textagons dict annotate`,
}

var dictCheckCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Check a dictionary covers every bonus word length",
	Long: `Load a dictionary (the file given, --dict, or the built-in list) and
check that every bonus word length in the configuration has at least one
word rare enough to be chosen. Prints the word count per length.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runDictCheck,
}

var dictAnnotateCmd = &cobra.Command{
	Use:   "annotate [file]",
	Short: "Compute rarities for a plain word list",
	Long: `Read words from a file (or stdin) and print "word,rarity" lines.

Rarity is the sum over the word's letters of how much less common each
letter is than the most common one; "qu" counts as a single letter.
Duplicates, short words and words with non-letters are skipped.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runDictAnnotate,
}

func init() {
	dictAnnotateCmd.Flags().IntVar(&flagMinLength, "min-length", 3, "Skip words shorter than this")

	dictCmd.AddCommand(dictCheckCmd)
	dictCmd.AddCommand(dictAnnotateCmd)
}

func runDictCheck(cmd *cobra.Command, args []string) {
	if len(args) == 1 {
		flagDict = args[0]
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	dict, err := loadDictionary()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	thresholds := cfg.Words.RarityThresholds
	fmt.Printf("%d words\n\n", dict.Len())
	fmt.Printf("  %-6s  %-7s  %-9s  %s\n", "Length", "Words", "Threshold", "Bonus candidates")
	fmt.Printf("  %-6s  %-7s  %-9s  %s\n", "------", "-----", "---------", "----------------")
	for _, row := range dict.Stats() {
		if row.Length < len(thresholds) && row.Length >= cfg.Words.BaseBonusLength {
			th := thresholds[row.Length]
			fmt.Printf("  %-6d  %-7d  %-9.2f  %d\n", row.Length, row.Words, th, len(dict.Candidates(row.Length, th)))
			continue
		}
		fmt.Printf("  %-6d  %-7d  %-9s  %s\n", row.Length, row.Words, "-", "-")
	}
	fmt.Println()

	if err := dict.CheckCoverage(cfg.Words.BaseBonusLength, thresholds); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("OK: bonus words available for lengths %d-%d\n",
		cfg.Words.BaseBonusLength, cfg.Words.MaxBonusLength())
}

func runDictAnnotate(cmd *cobra.Command, args []string) {
	var r io.Reader = os.Stdin
	if len(args) == 1 {
		path, err := expandHome(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		f, err := os.Open(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		r = f
	}

	n, err := dictionary.Annotate(r, os.Stdout, flagMinLength)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "%d words written\n", n)
}
