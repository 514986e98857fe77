package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/dmitrymomot/localize/pkg/langtag"
)

// DefaultFilename is the catalog file expected inside each language directory.
const DefaultFilename = "messages.po"

// Store holds one atomically swappable Catalog per application language.
// Readers take a snapshot reference and never block; all mutation happens on
// the reload path, where concurrent reloads of the same language are
// collapsed and serialized through singleflight.
//
// File layout under the locales root: {dir}/{tag}/messages.po, with the
// directory named after the tag's configured (display) form.
type Store struct {
	dir      string
	filename string
	set      *langtag.Set
	logger   *slog.Logger

	// catalogs is built once in NewStore and never resized afterwards;
	// only the pointers inside are swapped.
	catalogs map[string]*atomic.Pointer[Catalog]

	group singleflight.Group

	// pending holds per-language debounce timers for the watcher.
	pendingMu sync.Mutex
	pending   map[string]*time.Timer
}

// StoreOption configures the Store during construction.
type StoreOption func(*Store)

// WithLogger sets the logger for reload and parse diagnostics.
// Defaults to slog.Default().
func WithLogger(l *slog.Logger) StoreOption {
	return func(s *Store) {
		s.logger = l
	}
}

// WithFilename overrides the per-language catalog filename.
func WithFilename(name string) StoreOption {
	return func(s *Store) {
		s.filename = name
	}
}

// NewStore creates a Store for the given locales directory and application
// language set, and performs the initial load of every language. A missing or
// unreadable catalog file is not fatal: that language starts with an empty
// catalog and serves untranslated text until a reload succeeds.
func NewStore(dir string, set *langtag.Set, opts ...StoreOption) (*Store, error) {
	if dir == "" {
		return nil, ErrEmptyDir
	}
	if set == nil {
		return nil, ErrNilLanguageSet
	}

	s := &Store{
		dir:      dir,
		filename: DefaultFilename,
		set:      set,
		logger:   slog.Default(),
		catalogs: make(map[string]*atomic.Pointer[Catalog], set.Len()),
		pending:  make(map[string]*time.Timer),
	}
	for _, opt := range opts {
		opt(s)
	}

	for _, tag := range set.Tags() {
		ptr := &atomic.Pointer[Catalog]{}
		ptr.Store(New(tag, nil))
		s.catalogs[tag.Normalized()] = ptr
	}

	s.LoadAll()

	return s, nil
}

// LoadAll reloads every application language. Per-language failures keep that
// language's last-known-good catalog and are logged, not returned.
func (s *Store) LoadAll() {
	for _, tag := range s.set.Tags() {
		if err := s.Reload(tag); err != nil {
			s.logger.Warn("catalog load failed, keeping previous catalog",
				slog.String("language", tag.String()),
				slog.Any("error", err))
		}
	}
}

// Reload rebuilds the catalog for tag from its file and atomically publishes
// the new instance. In-flight lookups on the old instance are unaffected.
// Concurrent reloads of the same language are collapsed into one file read.
// On I/O failure the previous catalog stays visible and the error is
// returned; a missing file yields an empty catalog (the language is simply
// untranslated).
func (s *Store) Reload(tag langtag.Tag) error {
	key := tag.Normalized()
	ptr, ok := s.catalogs[key]
	if !ok {
		return fmt.Errorf("catalog: language %q is not in the application set", tag.String())
	}

	_, err, _ := s.group.Do(key, func() (any, error) {
		entries, err := s.readFile(tag)
		if err != nil {
			return nil, err
		}
		ptr.Store(New(tag, entries))
		return nil, nil
	})
	return err
}

func (s *Store) readFile(tag langtag.Tag) (map[string]string, error) {
	path := filepath.Join(s.dir, tag.String(), s.filename)

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		s.logger.Debug("no catalog file for language",
			slog.String("language", tag.String()),
			slog.String("path", path))
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("catalog: opening %s: %w", path, err)
	}
	defer f.Close()

	entries, err := ParsePO(f, func(line int, msg string) {
		s.logger.Warn("malformed catalog entry",
			slog.String("path", path),
			slog.Int("line", line),
			slog.String("detail", msg))
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// Snapshot returns the current catalog for tag. Unknown languages get an
// empty catalog, never nil, so the lookup path stays branch-free for callers.
// Capture the snapshot once per request: every lookup through it observes one
// consistent catalog generation.
func (s *Store) Snapshot(tag langtag.Tag) *Catalog {
	if ptr, ok := s.catalogs[tag.Normalized()]; ok {
		return ptr.Load()
	}
	return New(tag, nil)
}

// SnapshotChain returns the fallback chain of catalogs for tag, captured
// atomically in one pass: the exact catalog first, then loosely matching
// application languages, then same-language matches, then the application
// default. Lookups walk the chain in order until a key is found.
func (s *Store) SnapshotChain(tag langtag.Tag) []*Catalog {
	appTags := s.set.Tags()
	chain := make([]*Catalog, 0, len(appTags))
	seen := make(map[string]bool, len(appTags))

	appendTag := func(t langtag.Tag) {
		key := t.Normalized()
		if seen[key] {
			return
		}
		seen[key] = true
		chain = append(chain, s.catalogs[key].Load())
	}

	for _, t := range appTags {
		if t.Equal(tag) {
			appendTag(t)
		}
	}
	for _, t := range appTags {
		if t.LooselyEqual(tag) {
			appendTag(t)
		}
	}
	for _, t := range appTags {
		if t.SameLanguage(tag) {
			appendTag(t)
		}
	}
	appendTag(s.set.Default())

	return chain
}

// Languages returns the application languages this store serves.
func (s *Store) Languages() []langtag.Tag {
	return s.set.Tags()
}

// Stats returns the number of loaded entries per language, keyed by the
// normalized tag. Intended for observability endpoints and logs.
func (s *Store) Stats() map[string]int {
	stats := make(map[string]int, len(s.catalogs))
	for key, ptr := range s.catalogs {
		stats[key] = ptr.Load().Len()
	}
	return stats
}

// resolveLanguage maps a changed file path back to the application language
// owning it, by the name of its parent directory.
func (s *Store) resolveLanguage(path string) (langtag.Tag, bool) {
	dirName := filepath.Base(filepath.Dir(path))
	for _, t := range s.set.Tags() {
		if strings.EqualFold(t.String(), dirName) {
			return t, true
		}
	}
	return langtag.Tag{}, false
}
