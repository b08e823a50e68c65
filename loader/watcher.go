package loader

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/c360studio/semowl/owl"
	"github.com/fsnotify/fsnotify"
)

// WatcherConfig configures the file watcher
type WatcherConfig struct {
	// Paths are the ontology files to watch
	Paths []string

	// DebounceDelay is how long to wait for more changes before reloading
	DebounceDelay time.Duration

	// Logger for logging events
	Logger *slog.Logger
}

// WatchEvent reports the outcome of loading a watched file
type WatchEvent struct {
	// Path is the absolute file path
	Path string

	// Operation is the type of change
	Operation WatchOperation

	// Ontology is the loaded ontology (nil for delete operations and errors)
	Ontology *owl.Ontology

	// Error if loading failed
	Error error
}

// WatchOperation indicates the type of file operation
type WatchOperation string

const (
	OpCreate WatchOperation = "create"
	OpModify WatchOperation = "modify"
	OpDelete WatchOperation = "delete"
)

// Watcher reloads ontology files when they change and emits the results.
// Every watched file is loaded once after Start.
type Watcher struct {
	config  WatcherConfig
	loader  *Loader
	watcher *fsnotify.Watcher
	logger  *slog.Logger

	// Watched files by absolute path
	files map[string]bool

	// Debouncing: collect changes before processing
	pendingMu sync.Mutex
	pending   map[string]fsnotify.Op // path → most recent operation

	// Content checksums of the last successful load
	hashMu sync.RWMutex
	hashes map[string]string

	events  chan WatchEvent
	done    chan struct{}
	started bool
}

// NewWatcher creates a watcher that loads files with loader
func NewWatcher(loader *Loader, config WatcherConfig) (*Watcher, error) {
	if len(config.Paths) == 0 {
		return nil, errors.New("watcher: no paths to watch")
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if config.DebounceDelay <= 0 {
		config.DebounceDelay = 100 * time.Millisecond
	}

	files := make(map[string]bool, len(config.Paths))
	for _, p := range config.Paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, fmt.Errorf("watcher: %w", err)
		}
		files[abs] = true
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &Watcher{
		config:  config,
		loader:  loader,
		watcher: fsw,
		logger:  logger,
		files:   files,
		pending: make(map[string]fsnotify.Op),
		hashes:  make(map[string]string),
		events:  make(chan WatchEvent, 100),
		done:    make(chan struct{}),
	}, nil
}

// Events returns the channel of watch events. It is closed once the watcher
// stops.
func (w *Watcher) Events() <-chan WatchEvent {
	return w.events
}

// Start watches the directories holding the files and queues an initial
// load of every file. Directories are watched rather than files so that
// editors replacing a file do not drop the watch.
func (w *Watcher) Start(ctx context.Context) error {
	dirs := make(map[string]bool)
	for path := range w.files {
		dirs[filepath.Dir(path)] = true
	}
	for dir := range dirs {
		if err := w.watcher.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
		w.logger.Debug("Watching directory", slog.String("path", dir))
	}

	w.pendingMu.Lock()
	for path := range w.files {
		w.pending[path] = fsnotify.Create
	}
	w.pendingMu.Unlock()

	w.started = true
	go w.processEvents(ctx)

	w.logger.Info("File watcher started",
		slog.Int("files", len(w.files)),
		slog.Duration("debounce", w.config.DebounceDelay))

	return nil
}

// Stop stops the watcher and waits for the event loop to exit.
func (w *Watcher) Stop() error {
	err := w.watcher.Close()
	if w.started {
		<-w.done
	}
	return err
}

// processEvents handles fsnotify events with debouncing
func (w *Watcher) processEvents(ctx context.Context) {
	defer close(w.done)
	defer close(w.events)

	ticker := time.NewTicker(w.config.DebounceDelay)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleFSEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("Watcher error", slog.Any("error", err))

		case <-ticker.C:
			w.flushPending(ctx)
		}
	}
}

// handleFSEvent records a change to a watched file
func (w *Watcher) handleFSEvent(event fsnotify.Event) {
	path := filepath.Clean(event.Name)
	if !w.files[path] || event.Op == fsnotify.Chmod {
		return
	}

	w.pendingMu.Lock()
	w.pending[path] = event.Op
	w.pendingMu.Unlock()

	w.logger.Debug("File change detected",
		slog.String("path", path),
		slog.String("op", event.Op.String()))
}

// flushPending reloads accumulated changes in path order
func (w *Watcher) flushPending(ctx context.Context) {
	w.pendingMu.Lock()
	if len(w.pending) == 0 {
		w.pendingMu.Unlock()
		return
	}

	// Copy and clear pending
	toProcess := w.pending
	w.pending = make(map[string]fsnotify.Op)
	w.pendingMu.Unlock()

	paths := make([]string, 0, len(toProcess))
	for path := range toProcess {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	for _, path := range paths {
		if ctx.Err() != nil {
			return
		}
		w.process(ctx, path, toProcess[path])
	}
}

func (w *Watcher) process(ctx context.Context, path string, op fsnotify.Op) {
	event := WatchEvent{Path: path}

	// A removed or renamed file that exists again was replaced and is reloaded
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		w.hashMu.Lock()
		_, had := w.hashes[path]
		delete(w.hashes, path)
		w.hashMu.Unlock()
		if had || op.Has(fsnotify.Remove) || op.Has(fsnotify.Rename) {
			event.Operation = OpDelete
			w.sendEvent(event)
		}
		return
	}

	o, checksum, err := w.loader.load(ctx, path)

	w.hashMu.Lock()
	oldHash, hadHash := w.hashes[path]
	if err == nil {
		w.hashes[path] = checksum
	}
	w.hashMu.Unlock()

	switch {
	case err != nil:
		event.Error = err
		event.Operation = OpModify
		if !hadHash {
			event.Operation = OpCreate
		}
	case hadHash && oldHash == checksum:
		// Content unchanged, skip
		return
	case hadHash:
		event.Operation = OpModify
		event.Ontology = o
	default:
		event.Operation = OpCreate
		event.Ontology = o
	}

	w.sendEvent(event)
}

// sendEvent sends an event to the output channel
func (w *Watcher) sendEvent(event WatchEvent) {
	select {
	case w.events <- event:
		w.logger.Debug("Sent watch event",
			slog.String("path", event.Path),
			slog.String("op", string(event.Operation)))
	default:
		w.logger.Warn("Event channel full, dropping event",
			slog.String("path", event.Path))
	}
}
