package connectivity

import (
	"context"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-inventory-keeper/internal/logger"
	"github.com/fsnotify/fsnotify"
)

// ForceLocalSetter receives the force-local signal.
type ForceLocalSetter interface {
	SetForceLocal(ctx context.Context, force bool) State
}

// FlagWatcher pins the resolver to the local server while a flag file
// exists. Operators (or the packaged launcher) toggle it by creating and
// removing the file.
type FlagWatcher struct {
	path   string
	target ForceLocalSetter
	logger *logger.Logger
}

func NewFlagWatcher(path string, target ForceLocalSetter, log *logger.Logger) *FlagWatcher {
	return &FlagWatcher{path: filepath.Clean(path), target: target, logger: log}
}

// Run applies the current presence of the flag file and then follows
// changes until ctx is cancelled. The parent directory is watched because
// the file itself may not exist yet.
func (w *FlagWatcher) Run(ctx context.Context) {
	if w.path == "" || w.path == "." {
		return
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		w.logger.Err(err).Str("func", "FlagWatcher.Run").Msg("error creating file watcher")
		return
	}
	defer watcher.Close()

	if err = watcher.Add(filepath.Dir(w.path)); err != nil {
		w.logger.Err(err).Str("func", "FlagWatcher.Run").Str("path", w.path).Msg("error watching flag directory")
		return
	}

	w.apply(ctx)
	w.logger.Info().Str("func", "FlagWatcher.Run").Str("path", w.path).Msg("force-local flag watcher started")

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Has(fsnotify.Create) || ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename) {
				w.apply(ctx)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			w.logger.Err(err).Str("func", "FlagWatcher.Run").Msg("file watcher error")
		}
	}
}

func (w *FlagWatcher) apply(ctx context.Context) {
	_, err := os.Stat(w.path)
	present := err == nil

	w.logger.Debug().Str("func", "FlagWatcher.apply").Bool("force_local", present).Msg("force-local flag changed")
	w.target.SetForceLocal(ctx, present)
}
