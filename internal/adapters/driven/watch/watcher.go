// Package watch reports changes to dictionary sources on disk using fsnotify.
//
// The parent directory of every watched file is observed rather than the
// file itself, so files replaced by rename (as editors and importers do)
// keep being tracked. SQLite sidecar files (-wal, -journal) count as
// changes to their database.
package watch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the quiet period after the last event before a change
// is reported.
const DefaultDebounce = 250 * time.Millisecond

// ErrClosed is returned by Watch after Close.
var ErrClosed = errors.New("watch: watcher is closed")

// sidecarSuffixes are the files SQLite writes next to a database.
var sidecarSuffixes = []string{"-wal", "-journal"}

// Change reports that one of the watched files changed.
type Change struct {
	// Path is the watched file the event was attributed to.
	Path string

	// Op is the fsnotify operation of the last event in the burst.
	Op fsnotify.Op
}

// Watcher watches a fixed set of files.
type Watcher struct {
	files    map[string]string // event path -> watched file
	dirs     []string
	debounce time.Duration

	mu      sync.Mutex
	closed  bool
	watcher *fsnotify.Watcher
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets the quiet period. Zero reports every event immediately.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		w.debounce = d
	}
}

// New creates a watcher for paths. Empty paths are ignored.
func New(paths []string, opts ...Option) *Watcher {
	w := &Watcher{
		files:    make(map[string]string),
		debounce: DefaultDebounce,
	}
	seen := make(map[string]bool)
	for _, p := range paths {
		if p == "" {
			continue
		}
		abs, err := filepath.Abs(p)
		if err != nil {
			abs = filepath.Clean(p)
		}
		w.files[abs] = abs
		for _, suffix := range sidecarSuffixes {
			w.files[abs+suffix] = abs
		}
		dir := filepath.Dir(abs)
		if !seen[dir] {
			seen[dir] = true
			w.dirs = append(w.dirs, dir)
		}
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Paths returns the watched files, sorted.
func (w *Watcher) Paths() []string {
	var out []string
	for event, file := range w.files {
		if event == file {
			out = append(out, file)
		}
	}
	slices.Sort(out)
	return out
}

// Watch starts watching and returns a channel of changes. The channel is
// closed when ctx is cancelled or the watcher is closed.
func (w *Watcher) Watch(ctx context.Context) (<-chan Change, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil, ErrClosed
	}
	if len(w.dirs) == 0 {
		return nil, errors.New("watch: no paths to watch")
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	for _, dir := range w.dirs {
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			fsw.Close()
			return nil, fmt.Errorf("watch %s: directory not accessible", dir)
		}
		if err := fsw.Add(dir); err != nil {
			fsw.Close()
			return nil, fmt.Errorf("watch %s: %w", dir, err)
		}
	}
	w.watcher = fsw

	changes := make(chan Change)
	go w.loop(ctx, fsw, changes)
	return changes, nil
}

func (w *Watcher) loop(ctx context.Context, fsw *fsnotify.Watcher, changes chan<- Change) {
	defer close(changes)

	var (
		pending *Change
		timer   *time.Timer
		fire    <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-fsw.Events:
			if !ok {
				return
			}
			change := w.handleFsEvent(event)
			if change == nil {
				continue
			}
			if w.debounce <= 0 {
				if !send(ctx, changes, *change) {
					return
				}
				continue
			}
			pending = change
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			if pending != nil {
				if !send(ctx, changes, *pending) {
					return
				}
				pending = nil
			}

		case _, ok := <-fsw.Errors:
			if !ok {
				return
			}
		}
	}
}

func send(ctx context.Context, changes chan<- Change, c Change) bool {
	select {
	case changes <- c:
		return true
	case <-ctx.Done():
		return false
	}
}

// handleFsEvent maps an fsnotify event to a change of a watched file, or nil
// when the event concerns another file or only changes permissions.
func (w *Watcher) handleFsEvent(event fsnotify.Event) *Change {
	file, ok := w.files[filepath.Clean(event.Name)]
	if !ok {
		return nil
	}
	if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Write) &&
		!event.Op.Has(fsnotify.Remove) && !event.Op.Has(fsnotify.Rename) {
		return nil
	}
	return &Change{Path: file, Op: event.Op}
}

// Close stops watching. It is safe to call more than once.
func (w *Watcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil
	}
	w.closed = true
	if w.watcher != nil {
		return w.watcher.Close()
	}
	return nil
}
