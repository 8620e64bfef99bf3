// Package feed models RSS documents and computes what changed between
// two fetches of the same feed.
package feed

import (
	"fmt"

	"github.com/mmcdole/gofeed"
	"github.com/ppiankov/rssmon/internal/errs"
)

// Item is one feed entry. Fields that are absent from the source XML are
// empty strings. Items compare by value: two entries are the same entry
// only when all five fields match.
type Item struct {
	Title       string
	Link        string
	Description string
	Author      string
	PubDate     string // publication date as it appears in the feed
}

// Document is a parsed feed plus the exact bytes it was parsed from.
// Raw is what gets written back to disk; it is never re-serialized.
type Document struct {
	Raw   []byte
	Title string
	Items []Item
}

// Parse builds a Document from raw feed bytes.
func Parse(raw []byte) (*Document, error) {
	parsed, err := gofeed.NewParser().ParseString(string(raw))
	if err != nil {
		return nil, errs.Wrap(errs.KindParse, fmt.Errorf("parse feed: %w", err))
	}

	doc := &Document{
		Raw:   raw,
		Title: parsed.Title,
		Items: make([]Item, 0, len(parsed.Items)),
	}
	for _, item := range parsed.Items {
		doc.Items = append(doc.Items, Item{
			Title:       item.Title,
			Link:        item.Link,
			Description: item.Description,
			Author:      itemAuthor(item),
			PubDate:     item.Published,
		})
	}
	return doc, nil
}

// itemAuthor prefers the author's name and falls back to the email.
func itemAuthor(item *gofeed.Item) string {
	if item.Author == nil {
		return ""
	}
	if item.Author.Name != "" {
		return item.Author.Name
	}
	return item.Author.Email
}
