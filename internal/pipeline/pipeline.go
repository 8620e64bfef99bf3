// Package pipeline wires one fetch, diff, mail, persist pass over a
// single feed.
package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/ppiankov/rssmon/internal/config"
	"github.com/ppiankov/rssmon/internal/feed"
	"github.com/ppiankov/rssmon/internal/notify"
)

// Fetcher retrieves the remote feed.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*feed.Document, error)
}

// SnapshotStore loads and saves the last mailed feed state.
type SnapshotStore interface {
	Load(path string) (*feed.Document, error)
	Save(path string, doc *feed.Document) error
}

// Renderer produces the mail body for the given items.
type Renderer interface {
	Render(items []notify.Item) (string, error)
}

// Mailer delivers one rendered message.
type Mailer interface {
	Send(body string) error
}

// Result summarizes a completed pass.
type Result struct {
	FeedTitle string
	Items     []notify.Item // what was (or would be) mailed
	Sent      bool
}

// Pipeline runs the monitor pass against one remote feed.
type Pipeline struct {
	cfg       *config.Config
	fetcher   Fetcher
	snapshots SnapshotStore
	renderer  Renderer
	mailer    Mailer
	logger    *slog.Logger
	location  *time.Location
}

// New assembles a pipeline. A nil logger discards diagnostics.
func New(cfg *config.Config, fetcher Fetcher, snapshots SnapshotStore, renderer Renderer, mailer Mailer, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Pipeline{
		cfg:       cfg,
		fetcher:   fetcher,
		snapshots: snapshots,
		renderer:  renderer,
		mailer:    mailer,
		logger:    logger,
		location:  time.Local,
	}
}

// Run executes one full pass. The first failing stage aborts the run.
// The snapshot is written only after the mail went out, and never when
// the diff is empty, so a failed delivery is retried by the next run.
func (p *Pipeline) Run(ctx context.Context) (Result, error) {
	res, current, err := p.collect(ctx)
	if err != nil {
		return Result{}, err
	}

	if len(res.Items) == 0 {
		p.logger.Info("no new items", "feed", res.FeedTitle)
		return res, nil
	}

	body, err := p.renderer.Render(res.Items)
	if err != nil {
		return Result{}, err
	}

	if err := p.mailer.Send(body); err != nil {
		return Result{}, err
	}
	p.logger.Info("mail sent", "to", p.cfg.To, "items", len(res.Items))

	if err := p.snapshots.Save(p.cfg.LocalRSS, current); err != nil {
		return Result{}, err
	}
	p.logger.Info("snapshot updated", "path", p.cfg.LocalRSS)

	res.Sent = true
	return res, nil
}

// Preview computes what Run would mail without rendering, sending, or
// writing anything.
func (p *Pipeline) Preview(ctx context.Context) (Result, error) {
	res, _, err := p.collect(ctx)
	return res, err
}

// collect fetches the remote feed, loads the snapshot, and diffs them.
// The remote fetch comes first: there is no point reading local state
// when the feed is unreachable.
func (p *Pipeline) collect(ctx context.Context) (Result, *feed.Document, error) {
	p.logger.Info("fetching feed", "url", p.cfg.RemoteRSS)
	current, err := p.fetcher.Fetch(ctx, p.cfg.RemoteRSS)
	if err != nil {
		return Result{}, nil, err
	}
	p.logger.Info("fetched feed", "feed", current.Title, "items", len(current.Items))

	previous, err := p.snapshots.Load(p.cfg.LocalRSS)
	if err != nil {
		return Result{}, nil, err
	}

	fresh := feed.Diff(current, previous)
	res := Result{
		FeedTitle: current.Title,
		Items:     notify.Transform(fresh, p.location),
	}
	return res, current, nil
}
