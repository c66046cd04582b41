// Package watch monitors a photo directory and reports debounced change
// notifications whenever photo files appear, change, or disappear. It backs
// the watch command, which re-checks the directory's name status after every
// change.
package watch

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounce = 200 * time.Millisecond

// Change reports one debounced photo file change.
type Change struct {
	Path string // absolute or watch-relative path of the changed file
}

// Watcher monitors a directory for photo file changes using fsnotify.
type Watcher struct {
	Dir     string
	Changes <-chan Change // read-only external channel

	exts    map[string]bool
	changes chan Change // internal write channel
	done    chan struct{}
	watcher *fsnotify.Watcher
}

// New creates a watcher for dir. Only files with one of the given
// extensions (case-insensitive, leading dot) produce changes.
func New(dir string, extensions []string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	exts := make(map[string]bool, len(extensions))
	for _, e := range extensions {
		exts[strings.ToLower(e)] = true
	}

	ch := make(chan Change, 16)
	return &Watcher{
		Dir:     dir,
		Changes: ch,
		exts:    exts,
		changes: ch,
		done:    make(chan struct{}),
		watcher: fw,
	}, nil
}

// Start begins watching the directory.
func (w *Watcher) Start() error {
	if err := w.watcher.Add(w.Dir); err != nil {
		return err
	}
	go w.loop()
	return nil
}

// Stop closes the watcher and the Changes channel.
func (w *Watcher) Stop() {
	w.watcher.Close()
	<-w.done // wait for loop to exit
	close(w.changes)
}

func (w *Watcher) loop() {
	defer close(w.done)

	// Debounce: track last event time per file so a burst of writes for one
	// photo collapses into a single change.
	pending := make(map[string]time.Time)
	ticker := time.NewTicker(debounce)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				for file := range pending {
					w.changes <- Change{Path: file}
				}
				return
			}
			if !w.isPhotoFile(event.Name) {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
				event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				pending[event.Name] = time.Now()
			}

		case _, ok := <-ticker.C:
			if !ok {
				return
			}
			now := time.Now()
			for file, t := range pending {
				if now.Sub(t) >= debounce {
					w.changes <- Change{Path: file}
					delete(pending, file)
				}
			}

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Watch errors are non-fatal; keep going.
		}
	}
}

func (w *Watcher) isPhotoFile(name string) bool {
	return w.exts[strings.ToLower(filepath.Ext(name))]
}
