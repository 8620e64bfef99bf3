package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ppiankov/rssmon/internal/config"
	"github.com/ppiankov/rssmon/internal/feed"
	"github.com/ppiankov/rssmon/internal/journal"
	"github.com/ppiankov/rssmon/internal/notify"
	"github.com/ppiankov/rssmon/internal/pipeline"
	"github.com/ppiankov/rssmon/internal/snapshot"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Fetch the feed, mail new items, update the snapshot",
	RunE:  runAction,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

// newMailer builds the SMTP sender; swapped out in tests.
var newMailer = func(cfg *config.Config) pipeline.Mailer {
	return notify.NewSMTPMailer(cfg)
}

func runAction(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	p, err := buildPipeline(cfg)
	if err != nil {
		return err
	}

	started := time.Now()
	res, runErr := p.Run(cmd.Context())
	recordRun(cfg, started, res, runErr)
	if runErr != nil {
		return runErr
	}

	if !res.Sent {
		fmt.Println("No new items.")
		return nil
	}
	fmt.Printf("Sent %d new item(s) to %s.\n", len(res.Items), cfg.To)
	return nil
}

func buildPipeline(cfg *config.Config) (*pipeline.Pipeline, error) {
	renderer, err := notify.NewRenderer()
	if err != nil {
		return nil, err
	}
	return pipeline.New(cfg, feed.NewFetcher(), snapshot.FileStore{}, renderer, newMailer(cfg), logger), nil
}

// recordRun appends the pass to the journal. Journal trouble is logged
// and swallowed: history must never change the outcome of a run.
func recordRun(cfg *config.Config, started time.Time, res pipeline.Result, runErr error) {
	db, err := journal.Open(cfg.JournalDB)
	if err != nil {
		logger.Warn("journal unavailable", "error", err)
		return
	}
	defer func() {
		_ = db.Close()
	}()

	run := journal.Run{
		StartedAt:  started,
		FinishedAt: time.Now(),
		Outcome:    journal.OutcomeNoop,
		NewItems:   len(res.Items),
	}
	if res.Sent {
		run.Outcome = journal.OutcomeSent
	}
	if runErr != nil {
		run.Outcome = journal.OutcomeFailed
		run.Error = runErr.Error()
	}

	if err := db.Record(context.Background(), run); err != nil {
		logger.Warn("journal record failed", "error", err)
	}
}
