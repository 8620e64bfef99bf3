// Package cli provides the command-line interface for rssmon.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ppiankov/rssmon/internal/config"
)

// Version and Commit are set via ldflags at build time.
var (
	Version = "dev"
	Commit  = "none"
)

// configPath is fixed by convention rather than a flag; tests point it
// at a temp directory.
var configPath = config.DefaultConfigFile

// logger carries diagnostics on stderr. Results go to stdout.
var logger = slog.New(slog.NewTextHandler(os.Stderr, nil))

var rootCmd = &cobra.Command{
	Use:          "rssmon",
	Short:        "Watch one RSS feed and mail new items",
	Long:         "rssmon fetches a remote RSS feed, compares it against the last mailed snapshot, sends newly appeared items as an HTML mail, and persists the feed state for the next run.",
	SilenceUsage: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("rssmon %s (%s)\n", Version, Commit)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
