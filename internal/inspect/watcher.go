package inspect

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// Change represents a detected snapshot change.
type Change struct {
	// Name is the snapshot name, without the .json extension.
	Name string

	// Removed reports whether the snapshot was deleted rather than
	// written.
	Removed bool
}

// WatcherConfig configures the snapshot watcher.
type WatcherConfig struct {
	// Dir is the snapshot directory to watch.
	Dir string

	// Ignore patterns to skip (globs matched against file names).
	Ignore []string

	// Debounce is the polling interval.
	Debounce time.Duration
}

// DefaultIgnore contains default patterns to ignore.
var DefaultIgnore = []string{
	".git",
	"*.tmp",
	"*.swp",
	"*~",
}

// Watcher polls a snapshot directory for changes.
type Watcher struct {
	config      WatcherConfig
	onChange    func(Change)
	mu          sync.Mutex
	running     bool
	initialized bool
	stopCh      chan struct{}
	timestamps  map[string]time.Time
}

// NewWatcher creates a new snapshot watcher.
func NewWatcher(config WatcherConfig) *Watcher {
	if config.Debounce == 0 {
		config.Debounce = 100 * time.Millisecond
	}
	if len(config.Ignore) == 0 {
		config.Ignore = DefaultIgnore
	}

	return &Watcher{
		config:     config,
		timestamps: make(map[string]time.Time),
	}
}

// OnChange sets the callback for snapshot changes.
func (w *Watcher) OnChange(fn func(Change)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onChange = fn
}

// Start begins watching for snapshot changes. It blocks until the
// context is cancelled or Stop is called.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.stopCh = make(chan struct{})
	w.mu.Unlock()

	w.scanInitial()

	ticker := time.NewTicker(w.config.Debounce)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-w.stopCh:
			return nil
		case <-ticker.C:
			w.checkForChanges()
		}
	}
}

// Stop stops the watcher.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		close(w.stopCh)
		w.running = false
	}
}

// IsRunning returns whether the watcher is running.
func (w *Watcher) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}

// scanInitial builds the initial timestamp map.
func (w *Watcher) scanInitial() {
	snapshots := w.scan()

	w.mu.Lock()
	for name, modTime := range snapshots {
		w.timestamps[name] = modTime
	}
	w.initialized = true
	w.mu.Unlock()
}

// scan reads the snapshot directory. The directory is flat; snapshots
// never nest.
func (w *Watcher) scan() map[string]time.Time {
	entries, err := os.ReadDir(w.config.Dir)
	if err != nil {
		return nil
	}

	snapshots := make(map[string]time.Time)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, ".json") || w.shouldIgnore(name) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		snapshots[snapName(name)] = info.ModTime()
	}
	return snapshots
}

// checkForChanges compares the current directory state against the
// timestamp map and reports new, modified, and removed snapshots.
func (w *Watcher) checkForChanges() {
	w.mu.Lock()
	callback := w.onChange
	initialized := w.initialized
	w.mu.Unlock()

	if callback == nil {
		return
	}

	current := w.scan()

	var changes []Change

	w.mu.Lock()
	for name, modTime := range current {
		lastMod, exists := w.timestamps[name]
		if !exists || modTime.After(lastMod) {
			w.timestamps[name] = modTime
			if exists || initialized {
				changes = append(changes, Change{Name: name})
			}
		}
	}
	for name := range w.timestamps {
		if _, ok := current[name]; !ok {
			delete(w.timestamps, name)
			changes = append(changes, Change{Name: name, Removed: true})
		}
	}
	w.mu.Unlock()

	// Report outside the lock so callbacks can call back into the watcher.
	for _, change := range changes {
		callback(change)
	}
}

// shouldIgnore checks if a file name matches an ignore pattern.
func (w *Watcher) shouldIgnore(name string) bool {
	for _, pattern := range w.config.Ignore {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}
		if name == pattern {
			return true
		}
		if matched, _ := filepath.Match(pattern, name); matched {
			return true
		}
	}
	return false
}

// snapName strips the .json extension from a snapshot file name.
func snapName(file string) string {
	return strings.TrimSuffix(file, ".json")
}
