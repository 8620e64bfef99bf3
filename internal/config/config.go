// Package config loads and validates the rssmon.json settings file.
package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/ppiankov/rssmon/internal/errs"
)

const (
	DefaultConfigFile  = "rssmon.json"
	DefaultJournalPath = ".rssmon/rssmon.db"
)

// Config holds the feed and mail settings. All fields except JournalDB
// are required.
type Config struct {
	LocalRSS  string `json:"local_rss"`  // path of the snapshot file
	RemoteRSS string `json:"remote_rss"` // URL of the remote feed
	Subject   string `json:"subject"`
	From      string `json:"from"` // sender address, doubles as SMTP username
	To        string `json:"to"`
	Password  string `json:"password"`
	Server    string `json:"server"` // SMTP server hostname

	// JournalDB is where run history is kept; empty means DefaultJournalPath.
	JournalDB string `json:"journal_db,omitempty"`
}

// Load reads the config file at path, applies defaults, and validates.
// Unknown keys are rejected so typos surface instead of silently leaving
// a field empty.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.Wrap(errs.KindConfig, fmt.Errorf("read config: %w", err))
	}

	var cfg Config
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return nil, errs.Wrap(errs.KindConfig, fmt.Errorf("parse config %s: %w", path, err))
	}
	if dec.More() {
		return nil, errs.Errorf(errs.KindConfig, "parse config %s: trailing data after top-level object", path)
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, errs.Wrap(errs.KindConfig, fmt.Errorf("validate config: %w", err))
	}

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.JournalDB == "" {
		cfg.JournalDB = DefaultJournalPath
	}
}

func validate(cfg *Config) error {
	required := []struct {
		key   string
		value string
	}{
		{"local_rss", cfg.LocalRSS},
		{"remote_rss", cfg.RemoteRSS},
		{"subject", cfg.Subject},
		{"from", cfg.From},
		{"to", cfg.To},
		{"password", cfg.Password},
		{"server", cfg.Server},
	}
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			return fmt.Errorf("%s is required", field.key)
		}
	}
	return nil
}
