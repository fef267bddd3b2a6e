package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

const (
	gameID    = "flappy"
	gameTitle = "Flappy Bird"
)

var (
	flagLimit  int
	flagBrowse bool
	flagClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the score history",
	Long: `Display the best recorded runs and the stored best score.

Examples:
  flappy scores
  flappy scores --limit 25
  flappy scores --browse
  flappy scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagBrowse, "browse", false, "Open the interactive scoreboard")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the score history (the best score is kept)")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening scores database: %w", err)
	}
	defer store.Close()

	switch {
	case flagClear:
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Println("Score history cleared.")
		return nil

	case flagBrowse:
		cfg := core.DefaultConfig()
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			cfg.ScreenW, cfg.ScreenH = w, h
		}
		return tui.RunScoreboard(store, gameID, gameTitle, flappy.BestScoreKey, cfg.ScreenW, cfg.ScreenH)
	}

	return printScores(os.Stdout, store, flagLimit)
}

// printScores writes the top runs, the best run in the history and the
// stored best score.
func printScores(w io.Writer, store *storage.Store, limit int) error {
	scores, err := store.TopScores(gameID, limit)
	if err != nil {
		return fmt.Errorf("error retrieving scores: %w", err)
	}

	best, err := store.LoadBestScore(flappy.BestScoreKey)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	fmt.Fprintf(w, "High Scores - %s\n\n", gameTitle)

	if len(scores) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'flappy play' to set the first high score!")
		if best > 0 {
			fmt.Fprintf(w, "\nBest: %d\n", best)
		}
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Fprintf(w, "  %-4s  %-10s  %s\n", "----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Fprintf(w, "  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}

	fmt.Fprintln(w)
	if high, err := store.HighScore(gameID); err == nil {
		fmt.Fprintf(w, "Best run: %d\n", high)
	}
	fmt.Fprintf(w, "Best: %d\n", best)
	return nil
}
