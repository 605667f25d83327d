package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-runner/internal/platform/tui"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

// gameID is the score history key for runner runs.
const gameID = "runner"

var (
	flagBoard bool
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the run history",
	Long: `Display the top 10 runs, the persisted high score and overall stats.

Examples:
  runner scores
  runner scores --board   # Interactive scoreboard
  runner scores --clear   # Wipe the history and the high score`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagBoard, "board", false, "Open the interactive scoreboard")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the run history and the persisted high score")
}

func runScores(_ *cobra.Command, _ []string) {
	runnerCfg := loadConfig()
	key := runnerCfg.Session.HighScoreKey

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			return
		}
		if err := store.DeleteHighScore(key); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing high score: %v\n", err)
			return
		}
		fmt.Println("Run history and high score cleared.")
		return
	}

	if flagBoard {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, gameID, key, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
		}
		return
	}

	if err := printScores(os.Stdout, store, key); err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
	}
}

// printScores writes the top 10 runs followed by the best scores and stats.
func printScores(w io.Writer, store *storage.Store, key string) error {
	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "High Scores - Cat Runner")
	fmt.Fprintln(w)

	if len(scores) == 0 {
		fmt.Fprintln(w, "No runs recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'runner play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-8s  %-5s  %-12s  %s\n", "Rank", "Score", "Level", "Player", "Date")
	fmt.Fprintf(w, "  %-4s  %-8s  %-5s  %-12s  %s\n", "----", "-----", "-----", "------", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Fprintf(w, "  %-4d  %-8d  %-5d  %-12s  %s\n", i+1, entry.Score, entry.Level, entry.Player, dateStr)
	}

	fmt.Fprintln(w)
	if high, err := store.GetHighScore(key); err == nil {
		fmt.Fprintf(w, "Best: %d\n", high)
	}
	if best, err := store.BestScore(gameID); err == nil {
		fmt.Fprintf(w, "Best recorded run: %d\n", best)
	}
	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Fprintf(w, "Runs: %d  Avg: %.0f  Max level: %d\n", stats.RunsCount, stats.AvgScore, stats.MaxLevel)
	}
	return nil
}
