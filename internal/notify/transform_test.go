package notify

import (
	"testing"
	"time"

	"github.com/ppiankov/rssmon/internal/feed"
)

func TestFormatPubDate(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)

	cases := []struct {
		name string
		raw  string
		want string
	}{
		{"numeric offset", "Mon, 02 Jan 2006 15:04:05 +0000", "2006-01-02 18:04:05"},
		{"negative offset", "Mon, 02 Jan 2006 15:04:05 -0700", "2006-01-03 01:04:05"},
		{"gmt zone name", "Mon, 02 Jan 2006 15:04:05 GMT", "2006-01-02 18:04:05"},
		{"single digit day", "Mon, 2 Jan 2006 15:04:05 +0000", "2006-01-02 18:04:05"},
		{"no weekday", "02 Jan 2006 15:04:05 +0000", "2006-01-02 18:04:05"},
		{"no weekday zone name", "2 Jan 2006 15:04:05 GMT", "2006-01-02 18:04:05"},
		{"est obsolete zone", "Mon, 02 Jan 2006 15:04:05 EST", "2006-01-02 23:04:05"},
		{"pdt obsolete zone", "Mon, 02 Jan 2006 15:04:05 PDT", "2006-01-03 01:04:05"},
		{"unknown zone passes through", "Mon, 02 Jan 2006 15:04:05 CEST", "Mon, 02 Jan 2006 15:04:05 CEST"},
		{"unparsable passes through", "sometime last Tuesday", "sometime last Tuesday"},
		{"iso date passes through", "2006-01-02T15:04:05Z", "2006-01-02T15:04:05Z"},
		{"absent stays absent", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := formatPubDate(tc.raw, loc); got != tc.want {
				t.Errorf("formatPubDate(%q) = %q, want %q", tc.raw, got, tc.want)
			}
		})
	}
}

func TestTransform(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	items := []feed.Item{
		{
			Title:       "First post",
			Link:        "https://example.com/posts/1",
			Description: "The first post",
			Author:      "Alice",
			PubDate:     "Mon, 02 Jan 2006 15:04:05 +0000",
		},
		{Title: "Second post", Link: "https://example.com/posts/2"},
	}

	got := Transform(items, loc)
	if len(got) != 2 {
		t.Fatalf("transformed %d items, want 2", len(got))
	}

	first := got[0]
	if first.Title != "First post" || first.Link != "https://example.com/posts/1" ||
		first.Description != "The first post" || first.Author != "Alice" {
		t.Errorf("fields should pass through verbatim, got %+v", first)
	}
	if first.PubDate != "2006-01-02 18:04:05" {
		t.Errorf("pub date = %q, want 2006-01-02 18:04:05", first.PubDate)
	}

	second := got[1]
	if second.PubDate != "" {
		t.Errorf("absent pub date became %q, want empty", second.PubDate)
	}
	if second.Title != "Second post" {
		t.Errorf("order not preserved, second item = %+v", second)
	}
}

func TestTransform_Empty(t *testing.T) {
	if got := Transform(nil, time.UTC); len(got) != 0 {
		t.Errorf("Transform(nil) = %v, want empty", got)
	}
}
