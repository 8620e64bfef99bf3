package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ppiankov/rssmon/internal/errs"
)

const (
	fetchTimeout = 30 * time.Second
	userAgent    = "rssmon/1.0 (+https://github.com/ppiankov/rssmon)"
)

// Fetcher retrieves feed documents over HTTP.
type Fetcher struct {
	client *http.Client
}

func NewFetcher() *Fetcher {
	return &Fetcher{client: &http.Client{Timeout: fetchTimeout}}
}

// Fetch downloads and parses the feed at url. The returned document keeps
// the response body verbatim in Raw. Transport failures and non-200
// responses are network errors; an unparsable body is a parse error.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errs.Wrap(errs.KindNetwork, fmt.Errorf("build request for %s: %w", url, err))
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, errs.Wrap(errs.KindNetwork, fmt.Errorf("fetch %s: %w", url, err))
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, errs.Errorf(errs.KindNetwork, "fetch %s: unexpected status %s", url, resp.Status)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errs.Wrap(errs.KindNetwork, fmt.Errorf("read response from %s: %w", url, err))
	}

	return Parse(raw)
}
