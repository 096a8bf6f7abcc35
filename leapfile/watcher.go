package leapfile

import (
	"errors"
	"log/slog"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/clipperhouse/hifi"
	"github.com/clipperhouse/ntime"
	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long a file must stay quiet before it is reloaded.
const DefaultDebounce = 100 * time.Millisecond

// ErrStopped is returned by Start once the watcher has been stopped.
var ErrStopped = errors.New("leapfile: watcher stopped")

// Watcher keeps the leap seconds of one file current. It is a
// hifi.LeapSecondProvider that always answers with the last good version of
// the file; a version that fails to parse is logged and skipped.
type Watcher struct {
	Path    string
	Updates <-chan *File // Receives every reloaded file

	// Debounce may be changed before Start.
	Debounce time.Duration

	updates chan *File
	current atomic.Pointer[File]
	logger  *slog.Logger
	done    chan struct{}
	watcher *fsnotify.Watcher

	mu      sync.Mutex
	running bool
	stopped bool
}

// NewWatcher loads the file at path and prepares to watch it. A nil logger
// discards log output.
func NewWatcher(path string, logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	path, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	f, err := Load(path)
	if err != nil {
		return nil, err
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	ch := make(chan *File, 1)
	w := &Watcher{
		Path:     path,
		Updates:  ch,
		Debounce: DefaultDebounce,
		updates:  ch,
		logger:   logger.With(slog.String("path", path)),
		done:     make(chan struct{}),
		watcher:  fw,
	}
	w.current.Store(f)
	return w, nil
}

// Start begins watching. The parent directory is watched rather than the
// file, so that files replaced by rename are followed. Starting a running
// watcher does nothing. A watcher that failed to start must still be stopped.
func (w *Watcher) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	switch {
	case w.stopped:
		return ErrStopped
	case w.running:
		return nil
	}
	if err := w.watcher.Add(filepath.Dir(w.Path)); err != nil {
		return err
	}

	w.running = true
	go w.loop()
	return nil
}

// Stop ends watching, releases the underlying watch and closes Updates.
// It may be called whether or not Start succeeded, and more than once.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return
	}
	w.stopped = true

	if err := w.watcher.Close(); err != nil {
		w.logger.Warn("closing watch", slog.Any("error", err))
	}
	if w.running {
		<-w.done
	}
	close(w.updates)
}

// Current returns the last good version of the file.
func (w *Watcher) Current() *File {
	return w.current.Load()
}

// LeapSeconds implements hifi.LeapSecondProvider.
func (w *Watcher) LeapSeconds() []hifi.LeapSecond {
	return w.Current().Records
}

func (w *Watcher) loop() {
	defer close(w.done)

	debounce := w.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	var pending ntime.Time
	dirty := false
	ticker := time.NewTicker(debounce / 2)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.Path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				pending = ntime.Now()
				dirty = true
			}

		case <-ticker.C:
			if dirty && ntime.Now().Sub(pending) >= debounce {
				dirty = false
				w.reload()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watch error", slog.Any("error", err))
		}
	}
}

func (w *Watcher) reload() {
	f, err := Load(w.Path)
	if err != nil {
		w.logger.Warn("keeping previous leap seconds", slog.Any("error", err))
		return
	}
	w.current.Store(f)

	latest := f.Latest()
	w.logger.Info("leap seconds reloaded",
		slog.Int("records", len(f.Records)),
		slog.Float64("tai_utc", latest.DeltaAT),
		slog.String("expires", f.Expires.String()),
	)

	// The channel holds only the newest file.
	select {
	case <-w.updates:
	default:
	}
	select {
	case w.updates <- f:
	default:
	}
}
