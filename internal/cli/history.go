package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ppiankov/rssmon/internal/config"
	"github.com/ppiankov/rssmon/internal/journal"
)

var (
	historyLimit int
	historyPrune int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent runs from the journal",
	RunE:  historyAction,
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "number of runs to show")
	historyCmd.Flags().IntVar(&historyPrune, "prune", 0, "first delete runs older than this many days")
	rootCmd.AddCommand(historyCmd)
}

func historyAction(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	db, err := journal.Open(cfg.JournalDB)
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	defer func() {
		_ = db.Close()
	}()

	ctx := cmd.Context()

	if historyPrune > 0 {
		n, err := db.Prune(ctx, historyPrune)
		if err != nil {
			return fmt.Errorf("prune journal: %w", err)
		}
		if n > 0 {
			fmt.Printf("Pruned %d run(s) older than %d days.\n", n, historyPrune)
		}
	}

	runs, err := db.Recent(ctx, historyLimit)
	if err != nil {
		return fmt.Errorf("read journal: %w", err)
	}

	printHistory(os.Stdout, runs)
	return nil
}

func printHistory(w io.Writer, runs []journal.Run) {
	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded yet. Run 'rssmon run' first.")
		return
	}

	for _, run := range runs {
		line := fmt.Sprintf("%s  %-6s  %3d item(s)  %s",
			run.StartedAt.Local().Format("2006-01-02 15:04:05"),
			run.Outcome,
			run.NewItems,
			run.FinishedAt.Sub(run.StartedAt).Round(time.Millisecond),
		)
		if run.Error != "" {
			line += "  " + run.Error
		}
		fmt.Fprintln(w, line)
	}
}
