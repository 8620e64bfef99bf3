package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ppiankov/rssmon/internal/config"
	"github.com/ppiankov/rssmon/internal/feed"
	"github.com/ppiankov/rssmon/internal/snapshot"
)

var initSeed bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a starter config and optionally seed the first snapshot",
	RunE:  initAction,
}

func init() {
	initCmd.Flags().BoolVar(&initSeed, "seed", false, "fetch the remote feed once and write the baseline snapshot")
	rootCmd.AddCommand(initCmd)
}

func initAction(cmd *cobra.Command, _ []string) error {
	wrote, err := writeIfNotExists(configPath, []byte(exampleConfig))
	if err != nil {
		return err
	}
	if wrote {
		fmt.Printf("Created %s. Fill in your feed and mail settings.\n", configPath)
	} else {
		fmt.Printf("Config %s already exists.\n", configPath)
	}

	if !initSeed {
		return nil
	}
	if wrote {
		fmt.Println("Edit the config first, then run 'rssmon init --seed' to write the baseline snapshot.")
		return nil
	}
	return seedSnapshot(cmd)
}

// seedSnapshot fetches the remote feed once and stores it as the
// baseline, so the next run only reports entries that appear later.
func seedSnapshot(cmd *cobra.Command) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if _, err := os.Stat(cfg.LocalRSS); err == nil {
		fmt.Printf("Snapshot %s already exists, not overwriting.\n", cfg.LocalRSS)
		return nil
	}

	doc, err := feed.NewFetcher().Fetch(cmd.Context(), cfg.RemoteRSS)
	if err != nil {
		return err
	}
	if err := (snapshot.FileStore{}).Save(cfg.LocalRSS, doc); err != nil {
		return err
	}

	fmt.Printf("Seeded snapshot %s with %d item(s).\n", cfg.LocalRSS, len(doc.Items))
	return nil
}

// writeIfNotExists writes data to path if the file does not exist.
// Returns true if the file was created.
func writeIfNotExists(path string, data []byte) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return false, fmt.Errorf("write %s: %w", path, err)
	}
	return true, nil
}

const exampleConfig = `{
  "local_rss": "feed.xml",
  "remote_rss": "https://example.com/feed.xml",
  "subject": "New feed items",
  "from": "rssmon@example.com",
  "to": "you@example.com",
  "password": "app-password",
  "server": "smtp.example.com"
}
`
