// Package snapshot persists the last mailed feed state on disk.
package snapshot

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ppiankov/rssmon/internal/errs"
	"github.com/ppiankov/rssmon/internal/feed"
)

// FileStore reads and writes feed snapshots on the local filesystem.
type FileStore struct{}

// Load reads and parses the snapshot at path. A missing or unparsable
// snapshot is a storage error; the first snapshot has to be seeded
// explicitly (rssmon init --seed), it is never assumed empty.
func (FileStore) Load(path string) (*feed.Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.Wrap(errs.KindStorage, fmt.Errorf("read snapshot: %w", err))
	}

	doc, err := feed.Parse(raw)
	if err != nil {
		return nil, errs.Wrap(errs.KindStorage, fmt.Errorf("snapshot %s: %w", path, err))
	}
	return doc, nil
}

// Save writes doc.Raw to path byte for byte. The write goes through a
// temp file in the same directory and a rename, so a crash cannot leave
// a half-written snapshot behind.
func (FileStore) Save(path string, doc *feed.Document) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".snapshot-*")
	if err != nil {
		return errs.Wrap(errs.KindStorage, fmt.Errorf("create temp snapshot: %w", err))
	}
	tmpName := tmp.Name()
	_ = tmp.Chmod(0o644)

	if _, err := tmp.Write(doc.Raw); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return errs.Wrap(errs.KindStorage, fmt.Errorf("write snapshot: %w", err))
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return errs.Wrap(errs.KindStorage, fmt.Errorf("close snapshot: %w", err))
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return errs.Wrap(errs.KindStorage, fmt.Errorf("replace snapshot: %w", err))
	}
	return nil
}
