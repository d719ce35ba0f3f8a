// Package watch reloads a file-backed investor catalog when the file changes.
package watch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/pitchmatch/internal/logger"
)

// DefaultDebounce coalesces the burst of events editors emit on save.
const DefaultDebounce = 100 * time.Millisecond

// Reloader is a catalog that can re-read its backing file.
type Reloader interface {
	Path() string
	Reload(ctx context.Context) error
}

// Watcher watches a catalog file and reloads it after changes settle.
type Watcher struct {
	target   Reloader
	file     string
	debounce time.Duration
	notify   func(error)

	fsw  *fsnotify.Watcher
	wg   sync.WaitGroup
	once sync.Once
	stop chan struct{}
}

// New creates a watcher for target. The parent directory is watched so that
// atomic rename-on-save is picked up.
func New(target Reloader) (*Watcher, error) {
	if target == nil || target.Path() == "" {
		return nil, errors.New("watch: catalog has no backing file")
	}
	file, err := filepath.Abs(target.Path())
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", target.Path(), err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(file)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(file), err)
	}

	return &Watcher{
		target:   target,
		file:     file,
		debounce: DefaultDebounce,
		fsw:      fsw,
		stop:     make(chan struct{}),
	}, nil
}

// SetDebounce overrides the quiet period before a reload. Call before Start.
func (w *Watcher) SetDebounce(d time.Duration) {
	w.debounce = d
}

// SetNotify registers a callback invoked after every reload attempt.
// Call before Start.
func (w *Watcher) SetNotify(fn func(error)) {
	w.notify = fn
}

// Start begins watching until ctx is cancelled or Close is called.
func (w *Watcher) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.loop(ctx)
}

// Close stops the watcher and waits for the loop to exit.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.stop)
		err = w.fsw.Close()
	})
	w.wg.Wait()
	return err
}

func (w *Watcher) loop(ctx context.Context) {
	defer w.wg.Done()

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stop:
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if w.relevant(event) {
				timer.Reset(w.debounce)
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			logger.Warn("catalog watch: %v", err)
		case <-timer.C:
			err := w.target.Reload(ctx)
			if err != nil {
				logger.Warn("catalog reload failed: %v", err)
			} else {
				logger.Info("catalog reloaded from %s", w.file)
			}
			if w.notify != nil {
				w.notify(err)
			}
		}
	}
}

// relevant reports whether event touches the watched file in a way that
// may change its content.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	name, err := filepath.Abs(event.Name)
	if err != nil || name != w.file {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}
