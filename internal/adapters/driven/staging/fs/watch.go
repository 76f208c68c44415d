package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/openlegis/lexfeed/internal/logger"
)

// Watch emits the path of every file created under a staging kind
// directory until the context is cancelled. Callers typically coalesce
// bursts of events into a single ingestion run.
func (s *Store) Watch(ctx context.Context) (<-chan string, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}

	// Watch the root for new kind directories, and each existing kind
	// directory for arriving artifacts.
	if err := watcher.Add(s.stagingRoot); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watching staging root: %w", err)
	}
	kinds, err := s.Kinds()
	if err != nil {
		watcher.Close()
		return nil, err
	}
	for _, kind := range kinds {
		if err := watcher.Add(filepath.Join(s.stagingRoot, kind)); err != nil {
			watcher.Close()
			return nil, fmt.Errorf("watching kind %s: %w", kind, err)
		}
	}

	events := make(chan string)
	go func() {
		defer close(events)
		defer watcher.Close()

		for {
			select {
			case <-ctx.Done():
				return

			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !ev.Has(fsnotify.Create) {
					continue
				}
				// A new kind directory joins the watch set; a new
				// file is reported to the caller.
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					if err := watcher.Add(ev.Name); err != nil {
						logger.Warn("Failed to watch new directory %s: %v", ev.Name, err)
					}
					continue
				}
				select {
				case <-ctx.Done():
					return
				case events <- ev.Name:
				}

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("Watcher error: %v", err)
			}
		}
	}()

	return events, nil
}
