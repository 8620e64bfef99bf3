// Package notify prepares new feed items for presentation, renders the
// mail body, and delivers it over SMTP.
package notify

import (
	"time"

	"github.com/ppiankov/rssmon/internal/feed"
)

// Item is a feed entry prepared for the mail template.
type Item struct {
	Title       string
	Link        string
	Description string
	Author      string
	PubDate     string
}

// pubDateNumericLayouts covers the RFC 2822 shapes with a numeric zone
// offset: with and without the weekday, one- and two-digit days.
var pubDateNumericLayouts = []string{
	time.RFC1123Z, // Mon, 02 Jan 2006 15:04:05 -0700
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"02 Jan 2006 15:04:05 -0700",
	"2 Jan 2006 15:04:05 -0700",
}

// pubDateZoneNameLayouts covers the same shapes with a named zone.
// time.Parse resolves the abbreviation against the host zone database,
// or invents a zero offset when it is unknown there; formatPubDate
// re-resolves the name through rfc2822Zones before trusting the instant.
var pubDateZoneNameLayouts = []string{
	time.RFC1123, // Mon, 02 Jan 2006 15:04:05 MST
	"Mon, 2 Jan 2006 15:04:05 MST",
	"02 Jan 2006 15:04:05 MST",
	"2 Jan 2006 15:04:05 MST",
}

// rfc2822Zones holds the obsolete zone names RFC 2822 defines and their
// UTC offsets in seconds. A date naming any other zone has no defined
// offset and passes through verbatim.
var rfc2822Zones = map[string]int{
	"GMT": 0,
	"EST": -5 * 3600,
	"EDT": -4 * 3600,
	"CST": -6 * 3600,
	"CDT": -5 * 3600,
	"MST": -7 * 3600,
	"MDT": -6 * 3600,
	"PST": -8 * 3600,
	"PDT": -7 * 3600,
}

const displayTime = "2006-01-02 15:04:05"

// Transform copies items for presentation. Publication dates are
// rewritten into loc-local "YYYY-MM-DD HH:MM:SS"; a date that does not
// parse passes through untouched, and an absent date stays absent.
func Transform(items []feed.Item, loc *time.Location) []Item {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		out = append(out, Item{
			Title:       it.Title,
			Link:        it.Link,
			Description: it.Description,
			Author:      it.Author,
			PubDate:     formatPubDate(it.PubDate, loc),
		})
	}
	return out
}

func formatPubDate(raw string, loc *time.Location) string {
	if raw == "" {
		return ""
	}
	for _, layout := range pubDateNumericLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.In(loc).Format(displayTime)
		}
	}
	for _, layout := range pubDateZoneNameLayouts {
		t, err := time.Parse(layout, raw)
		if err != nil {
			continue
		}
		name, offset := t.Zone()
		want, ok := rfc2822Zones[name]
		if !ok {
			return raw
		}
		if offset != want {
			// Shift the wall clock onto the zone's defined offset.
			t = t.Add(time.Duration(offset-want) * time.Second)
		}
		return t.In(loc).Format(displayTime)
	}
	return raw
}
