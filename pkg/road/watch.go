package road

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/golangdaddy/circuit/log"
)

// WatchFile signals on the returned channel whenever filename is written or
// replaced. Signals are coalesced: a pending signal is not duplicated. The
// watch stops when ctx is done.
func WatchFile(ctx context.Context, filename string) (<-chan struct{}, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("could not create watcher: %w", err)
	}
	// Editors often replace files, so the directory is watched instead of the file.
	if err := watcher.Add(filepath.Dir(filename)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("could not watch %s: %w", filename, err)
	}

	l := log.Default().Named("road.watch")
	target := filepath.Clean(filename)
	changed := make(chan struct{}, 1)

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
					continue
				}
				l.Debug("track file changed", log.String("file", event.Name), log.Stringer("op", event.Op))
				select {
				case changed <- struct{}{}:
				default:
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				l.Error("watcher error", log.ErrorField(err))
			}
		}
	}()
	return changed, nil
}
