// Package filewatch reports changes to a single file on disk.
package filewatch

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce coalesces the bursts of events editors produce when saving a file.
const DefaultDebounce = 200 * time.Millisecond

// Watcher calls OnChange after the watched file was created, written, renamed or removed.
// The parent directory is watched so that atomic replacements are observed.
type Watcher struct {
	path     string
	debounce time.Duration
	onChange func()
	logger   *zap.SugaredLogger

	watcher *fsnotify.Watcher
	closer  chan struct{}
	done    chan struct{}

	mu      sync.Mutex
	timer   *time.Timer
	started bool
	closed  bool
}

// New creates a Watcher for path. It does not observe anything until Start is called.
func New(path string, debounce time.Duration, onChange func(), logger *zap.SugaredLogger) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating file watcher: %w", err)
	}
	return &Watcher{
		path:     filepath.Clean(path),
		debounce: debounce,
		onChange: onChange,
		logger:   logger,
		watcher:  watcher,
		closer:   make(chan struct{}),
		done:     make(chan struct{}),
	}, nil
}

// Start begins watching. The parent directory of the file must exist.
func (w *Watcher) Start() error {
	if err := w.watcher.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("watching %q: %w", filepath.Dir(w.path), err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return errors.New("watcher is closed")
	}
	w.started = true
	go w.handleChanges()
	return nil
}

// Close stops watching and cancels any pending notification.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	started := w.started
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()

	close(w.closer)
	err := w.watcher.Close()
	if started {
		<-w.done
	}
	return err
}

func (w *Watcher) handleChanges() {
	defer close(w.done)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) && !event.Has(fsnotify.Rename) && !event.Has(fsnotify.Remove) {
				continue
			}
			w.handleDebounce()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			if !errors.Is(err, fsnotify.ErrClosed) {
				w.logger.Warnf("failure in file watcher for %q: %v", w.path, err)
			}
		case <-w.closer:
			return
		}
	}
}

func (w *Watcher) handleDebounce() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		closed := w.closed
		w.mu.Unlock()
		if !closed {
			w.onChange()
		}
	})
}
