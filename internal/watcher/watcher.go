// Package watcher revalidates a settings file whenever it changes on disk.
package watcher

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/agentrig/agentrig/internal/logging"
	"github.com/agentrig/agentrig/internal/settings"
)

// Watcher monitors a single settings file and re-runs validation on change.
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string
	strict  bool
	stopCh  chan struct{}
	doneCh  chan struct{}
	started bool
	mu      sync.Mutex
}

// New creates a watcher for the given settings file.
func New(path string, strict bool) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Watch the containing directory rather than the file itself; editors
	// often replace the file on save, which drops a direct file watch.
	if err := w.Add(filepath.Dir(path)); err != nil {
		w.Close()
		return nil, err
	}

	return &Watcher{
		watcher: w,
		path:    path,
		strict:  strict,
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}, nil
}

// Start begins watching. The initial validation runs immediately.
func (w *Watcher) Start() {
	w.mu.Lock()
	if w.started {
		w.mu.Unlock()
		return
	}
	w.started = true
	w.mu.Unlock()

	w.revalidate()
	go w.run()
}

func (w *Watcher) run() {
	defer close(w.doneCh)

	for {
		select {
		case <-w.stopCh:
			return
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(ev.Name) != filepath.Base(w.path) {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				w.revalidate()
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logging.Error().Err(err).Msg("settings watcher error")
		}
	}
}

func (w *Watcher) revalidate() {
	data, err := os.ReadFile(w.path)
	if err != nil {
		logging.Error().Err(err).Str("path", w.path).Msg("reading settings file")
		return
	}

	_, typed, err := settings.ValidateExisting(data, w.path, w.strict)
	switch {
	case err != nil:
		logging.Error().Str("path", w.path).Msg(err.Error())
	case typed != nil:
		logging.Info().Str("path", w.path).Msg("settings valid")
	default:
		// Lenient mode already logged the violations as a warning.
	}
}

// Stop stops watching and waits for the event loop to drain.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.started {
		w.watcher.Close()
		return
	}
	close(w.stopCh)
	w.watcher.Close()
	<-w.doneCh
	w.started = false
}
