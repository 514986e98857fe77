package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/dmitrymomot/localize/pkg/langtag"
)

// debounceDelay suppresses the event bursts editors and atomic-save tools
// produce for a single logical file change.
const debounceDelay = 500 * time.Millisecond

// Watch starts a file-system watch on the locales root and every language
// directory, reloading the affected language's catalog on change. It returns
// after the watcher is running; the watch loop stops and the watcher closes
// when ctx is cancelled.
//
// Reload failures keep the last-known-good catalog and are retried on the
// next change notification. The watch loop never touches the read path:
// results are published through the store's atomic swap only.
func (s *Store) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("catalog: creating watcher: %w", err)
	}

	if err := watcher.Add(s.dir); err != nil {
		watcher.Close()
		return fmt.Errorf("catalog: watching %s: %w", s.dir, err)
	}
	for _, tag := range s.set.Tags() {
		langDir := filepath.Join(s.dir, tag.String())
		if _, statErr := os.Stat(langDir); statErr != nil {
			continue // directory may appear later; the root watch picks it up
		}
		if err := watcher.Add(langDir); err != nil {
			s.logger.Warn("cannot watch language directory",
				slog.String("dir", langDir),
				slog.Any("error", err))
		}
	}

	s.logger.Info("watching locales directory", slog.String("dir", s.dir))
	go s.watchLoop(ctx, watcher)

	return nil
}

func (s *Store) watchLoop(ctx context.Context, watcher *fsnotify.Watcher) {
	defer watcher.Close()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("stopping locales watcher")
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			s.handleEvent(watcher, event)

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			s.logger.Error("locales watcher error", slog.Any("error", err))
		}
	}
}

func (s *Store) handleEvent(watcher *fsnotify.Watcher, event fsnotify.Event) {
	// A new language directory must itself be watched for file changes.
	if event.Op.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if _, ok := s.resolveLanguageDir(event.Name); ok {
				if err := watcher.Add(event.Name); err != nil {
					s.logger.Warn("cannot watch new language directory",
						slog.String("dir", event.Name),
						slog.Any("error", err))
				}
			}
			return
		}
	}

	if filepath.Base(event.Name) != s.filename {
		return
	}
	if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Write) &&
		!event.Op.Has(fsnotify.Remove) && !event.Op.Has(fsnotify.Rename) {
		return
	}

	tag, ok := s.resolveLanguage(event.Name)
	if !ok {
		return
	}

	s.scheduleReload(tag)
}

// scheduleReload debounces on the trailing edge: the reload runs only after
// the language has been quiet for debounceDelay, so event bursts from editor
// saves collapse into one reload of the settled file.
func (s *Store) scheduleReload(tag langtag.Tag) {
	key := tag.Normalized()

	s.pendingMu.Lock()
	defer s.pendingMu.Unlock()

	if timer, ok := s.pending[key]; ok {
		timer.Reset(debounceDelay)
		return
	}

	s.pending[key] = time.AfterFunc(debounceDelay, func() {
		s.pendingMu.Lock()
		delete(s.pending, key)
		s.pendingMu.Unlock()

		if err := s.Reload(tag); err != nil {
			s.logger.Warn("catalog reload failed, keeping previous catalog",
				slog.String("language", tag.String()),
				slog.Any("error", err))
			return
		}

		s.logger.Info("catalog reloaded",
			slog.String("language", tag.String()),
			slog.Int("entries", s.Snapshot(tag).Len()))
	})
}

// resolveLanguageDir matches a directory path against the application
// languages by its base name.
func (s *Store) resolveLanguageDir(path string) (string, bool) {
	base := filepath.Base(path)
	for _, t := range s.set.Tags() {
		if t.String() == base {
			return base, true
		}
	}
	return "", false
}
