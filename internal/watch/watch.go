// Package watch reloads a layout document whenever it changes on disk.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/alexisbeaulieu97/gridkit/internal/config"
	"github.com/alexisbeaulieu97/gridkit/internal/logger"
	"github.com/alexisbeaulieu97/gridkit/internal/viewport"
)

// Handler receives the reloaded document, or the error that prevented a reload.
type Handler func(doc *config.Document, err error)

// Options tunes a Watcher.
type Options struct {
	// Debounce is the quiet period before a reload. Zero uses viewport.DefaultDebounce.
	Debounce time.Duration
	Logger   *logger.Logger
}

// Watcher watches the directory holding a layout file, since editors often
// replace files by rename, and reloads on events that name the file.
type Watcher struct {
	path     string
	handler  Handler
	fs       *fsnotify.Watcher
	debounce *viewport.Debouncer
	log      *logger.Logger

	closeOnce sync.Once
}

// New starts watching path. Call Run to process events.
func New(path string, handler Handler, opts Options) (*Watcher, error) {
	if handler == nil {
		return nil, fmt.Errorf("watch %s: handler is required", path)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	return &Watcher{
		path:     abs,
		handler:  handler,
		fs:       fsw,
		debounce: viewport.NewDebouncer(opts.Debounce),
		log:      opts.Logger.With("path", abs),
	}, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Run blocks until ctx is cancelled or the watcher is closed.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.debounce.Cancel()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			w.log.WithFields(map[string]any{"op": event.Op.String()}).Debug("layout file changed")
			w.debounce.Trigger(w.reload)

		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			w.log.Error(err, "watcher error")
		}
	}
}

// Close stops the underlying watcher. It is safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		w.debounce.Cancel()
		err = w.fs.Close()
	})
	return err
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}

func (w *Watcher) reload() {
	doc, err := config.Parse(w.path)
	if err != nil {
		w.log.WithFields(map[string]any{"error": err.Error()}).Warn("layout reload failed")
	} else {
		w.log.Info("layout reloaded")
	}
	w.handler(doc, err)
}
