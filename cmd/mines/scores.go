package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-mines/internal/registry"
	"github.com/vovakirdan/tui-mines/internal/storage"
)

var (
	flagByScore  bool
	flagClear    bool
	flagResultID int64
)

var scoresCmd = &cobra.Command{
	Use:   "scores [preset]",
	Short: "Show best times for a board",
	Long: `Display the ten fastest wins for a board, or the ten best scores with
--by-score. Without arguments the beginner board is shown.

Examples:
  mines scores
  mines scores expert
  mines scores custom --by-score
  mines scores --id 42          # show one result
  mines scores expert --clear   # delete every expert result`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagByScore, "by-score", false, "Rank by score instead of time")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all results for the board")
	scoresCmd.Flags().Int64Var(&flagResultID, "id", 0, "Show a single result by its ID")
}

func runScores(_ *cobra.Command, args []string) error {
	id := "mines_beginner"
	if len(args) > 0 {
		id = gameID(args[0])
	}
	if !registered(id) && id != "mines_custom" {
		return fmt.Errorf("unknown board %q (run 'mines list')", id)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening results database: %w", err)
	}
	defer store.Close()

	switch {
	case flagResultID != 0:
		return showResult(os.Stdout, store, flagResultID)
	case flagClear:
		return clearResults(os.Stdout, store, id)
	}

	var results []storage.Result
	if flagByScore {
		results, err = store.TopScores(id, 10)
	} else {
		results, err = store.BestTimes(id, 10)
	}
	if err != nil {
		return fmt.Errorf("retrieving results: %w", err)
	}

	title := registry.Title(id)
	if flagByScore {
		fmt.Printf("Top Scores - %s\n\n", title)
	} else {
		fmt.Printf("Best Times - %s\n\n", title)
	}

	if len(results) == 0 {
		fmt.Println("No results recorded yet.")
		return nil
	}

	fmt.Printf("  %-4s  %-6s  %-6s  %-6s  %-6s  %s\n", "Rank", "ID", "Time", "Score", "Result", "Date")
	fmt.Printf("  %-4s  %-6s  %-6s  %-6s  %-6s  %s\n", "----", "--", "----", "-----", "------", "----")
	for i, r := range results {
		fmt.Printf("  %-4d  %-6d  %-6s  %-6d  %-6s  %s\n",
			i+1, r.ID, formatSeconds(r.Duration), r.Score, outcome(r), r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats(id)
	if err == nil && stats.Played > 0 {
		fmt.Println()
		fmt.Printf("Played %d, won %d (%.0f%%), high score %d\n",
			stats.Played, stats.Wins, stats.WinRate()*100, stats.HighScore)
	}
	return nil
}

func outcome(r storage.Result) string {
	if r.Won {
		return "won"
	}
	return "lost"
}

// showResult prints one stored result.
func showResult(w io.Writer, store *storage.Store, id int64) error {
	r, err := store.ResultByID(id)
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("no result with ID %d", id)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Result %d - %s\n\n", r.ID, registry.Title(r.GameID))
	fmt.Fprintf(w, "  Outcome:   %s\n", outcome(*r))
	fmt.Fprintf(w, "  Time:      %s\n", formatSeconds(r.Duration))
	fmt.Fprintf(w, "  Score:     %d\n", r.Score)
	fmt.Fprintf(w, "  Revealed:  %d\n", r.Revealed)
	fmt.Fprintf(w, "  Played:    %s\n", r.CreatedAt.Format("2006-01-02 15:04"))
	return nil
}

// clearResults deletes every result of a board.
func clearResults(w io.Writer, store *storage.Store, gameID string) error {
	if err := store.ClearResults(gameID); err != nil {
		return err
	}
	fmt.Fprintf(w, "Cleared results for %s.\n", registry.Title(gameID))
	return nil
}

func formatSeconds(secs int) string {
	d := time.Duration(secs) * time.Second
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), secs%60)
}
