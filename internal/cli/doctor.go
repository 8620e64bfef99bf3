package cli

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/ppiankov/rssmon/internal/config"
	"github.com/ppiankov/rssmon/internal/journal"
	"github.com/ppiankov/rssmon/internal/notify"
	"github.com/ppiankov/rssmon/internal/snapshot"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check config, snapshot, template, and journal health",
	RunE:  doctorAction,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func doctorAction(_ *cobra.Command, _ []string) error {
	ok := true

	cfg, err := config.Load(configPath)
	if err != nil {
		printCheck(false, "config %s: %v", configPath, err)
		ok = false
	} else {
		printCheck(true, "config %s", configPath)
	}

	if cfg != nil {
		if u, err := url.Parse(cfg.RemoteRSS); err != nil || (u.Scheme != "http" && u.Scheme != "https") {
			printCheck(false, "remote feed %s: not an http(s) URL", cfg.RemoteRSS)
			ok = false
		} else {
			printCheck(true, "remote feed %s", cfg.RemoteRSS)
		}

		if doc, err := (snapshot.FileStore{}).Load(cfg.LocalRSS); err != nil {
			printCheck(false, "snapshot %s: %v (seed with 'rssmon init --seed')", cfg.LocalRSS, err)
			ok = false
		} else {
			printCheck(true, "snapshot %s (%d items)", cfg.LocalRSS, len(doc.Items))
		}
	}

	if renderer, err := notify.NewRenderer(); err != nil {
		printCheck(false, "mail template: %v", err)
		ok = false
	} else if _, err := renderer.Render(sampleItems()); err != nil {
		printCheck(false, "mail template: %v", err)
		ok = false
	} else {
		printCheck(true, "mail template")
	}

	if cfg != nil {
		db, err := journal.Open(cfg.JournalDB)
		if err != nil {
			printCheck(false, "journal %s: %v", cfg.JournalDB, err)
			ok = false
		} else {
			_ = db.Close()
			printCheck(true, "journal %s", cfg.JournalDB)
		}
	}

	if !ok {
		return fmt.Errorf("some checks failed")
	}
	fmt.Println("\nAll checks passed.")
	return nil
}

func sampleItems() []notify.Item {
	return []notify.Item{{
		Title:   "Sample item",
		Link:    "https://example.com/sample",
		Author:  "doctor",
		PubDate: "2026-01-02 15:04:05",
	}}
}

func printCheck(pass bool, format string, args ...any) {
	mark := "FAIL"
	if pass {
		mark = " OK "
	}
	fmt.Printf("[%s] %s\n", mark, fmt.Sprintf(format, args...))
}
