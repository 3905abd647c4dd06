package watch

import (
	"fmt"
	"os"
	"sort"
	"sync"
	"time"

	"themed/internal/config"
	"themed/internal/log"
	"themed/internal/theme"

	"github.com/fsnotify/fsnotify"
)

// ReloaderStatus represents the current status of the reloader
type ReloaderStatus struct {
	Running          bool      // Whether the reloader is currently active
	WatchDirectories []string  // Directories being watched
	LastActivity     time.Time // Time of last theme file activity
	ThemesReloaded   int       // Total themes reloaded or removed
}

// Reloader keeps a theme registry in sync with the theme files on disk.
// Events are coalesced for a debounce window so an editor's save burst
// produces a single reload. A file that no longer parses is logged and
// skipped; the registry keeps the previous version of that theme.
type Reloader struct {
	// Configuration
	config *config.Config

	// The registry kept in sync
	registry *theme.Registry

	// The file watcher
	watcher *Watcher

	// Quiet period before a batch of events is applied
	debounce time.Duration

	// Paths touched since the last flush, with their accumulated ops
	pending map[string]fsnotify.Op

	// Statistics
	processed    int
	lastActivity time.Time

	// Callback for when a theme is reloaded or removed
	callback func(name string, err error)

	// Lock for modifications
	mutex sync.RWMutex

	// Whether the reloader is running
	running bool
}

// NewReloader creates a reloader for the given registry
func NewReloader(registry *theme.Registry, cfg *config.Config) (*Reloader, error) {
	watcher, err := New()
	if err != nil {
		return nil, err
	}

	debounce := time.Duration(cfg.Watch.DebounceMs) * time.Millisecond
	if debounce <= 0 {
		debounce = 250 * time.Millisecond
	}

	return &Reloader{
		config:       cfg,
		registry:     registry,
		watcher:      watcher,
		debounce:     debounce,
		processed:    0,
		lastActivity: time.Now(),
	}, nil
}

// Start begins watching the configured theme directories
func (r *Reloader) Start() error {
	r.mutex.Lock()
	if r.running {
		r.mutex.Unlock()
		return fmt.Errorf("reloader is already running")
	}
	r.mutex.Unlock()

	// Add the watch directories from config
	for _, dir := range r.config.ThemeDirs {
		if err := r.watcher.AddDirectory(dir); err != nil {
			return fmt.Errorf("error adding watch directory %s: %w", dir, err)
		}
	}

	// Make sure we have directories to watch
	if len(r.watcher.GetDirectories()) == 0 {
		return fmt.Errorf("no directories to watch")
	}

	// Start the watcher
	if err := r.watcher.Start(); err != nil {
		return fmt.Errorf("error starting watcher: %w", err)
	}

	r.mutex.Lock()
	r.running = true
	r.mutex.Unlock()

	// Start processing theme file events
	go r.processEvents()

	return nil
}

// Stop halts the reloader
func (r *Reloader) Stop() {
	r.mutex.Lock()
	if !r.running {
		r.mutex.Unlock()
		return
	}
	r.running = false
	r.mutex.Unlock()

	// Stopping the watcher closes its event channel, which ends the
	// processing goroutine after a final flush.
	r.watcher.Stop()
}

// AddWatchDirectory adds a directory to be watched
func (r *Reloader) AddWatchDirectory(dir string) error {
	return r.watcher.AddDirectory(dir)
}

// SetCallback sets a function to be called when a theme is reloaded
// or removed. The error argument carries the parse failure, if any.
func (r *Reloader) SetCallback(cb func(name string, err error)) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.callback = cb
}

// Status returns the current status of the reloader
func (r *Reloader) Status() ReloaderStatus {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return ReloaderStatus{
		Running:          r.running,
		WatchDirectories: r.watcher.GetDirectories(),
		LastActivity:     r.lastActivity,
		ThemesReloaded:   r.processed,
	}
}

// processEvents batches theme file events and applies them after the
// debounce window passes without further activity
func (r *Reloader) processEvents() {
	timer := time.NewTimer(r.debounce)
	if !timer.Stop() {
		<-timer.C
	}

	events := r.watcher.EventChannel()
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				// Watcher stopped; apply whatever is still pending
				r.flush()
				return
			}

			r.mutex.Lock()
			r.lastActivity = ev.Timestamp
			if r.pending == nil {
				r.pending = make(map[string]fsnotify.Op)
			}
			r.pending[ev.Path] |= ev.Op
			r.mutex.Unlock()

			// Drain a tick that may have fired while we were handling
			// the event, otherwise the stale tick cuts the next window
			// short.
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(r.debounce)

		case <-timer.C:
			r.flush()
		}
	}
}

// flush applies all pending events in path order
func (r *Reloader) flush() {
	r.mutex.Lock()
	pending := r.pending
	r.pending = nil
	r.mutex.Unlock()

	if len(pending) == 0 {
		return
	}

	paths := make([]string, 0, len(pending))
	for path := range pending {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	for _, path := range paths {
		r.apply(path, pending[path])
	}
}

// apply handles the accumulated ops for a single theme file
func (r *Reloader) apply(path string, op fsnotify.Op) {
	name := theme.NameFromPath(path)

	if op.Has(fsnotify.Remove) || op.Has(fsnotify.Rename) {
		if _, err := os.Stat(path); err == nil {
			// The file reappeared within the debounce window; editors
			// often save through a rename dance. Treat it as a change.
			r.reload(path, name)
			return
		}

		if name == r.registry.Active() {
			// The active theme keeps its loaded copy so widgets stay styled
			log.LogWithFields(log.F("theme", name), log.F("file", path)).Warn("Active theme file removed, keeping loaded copy")
			return
		}
		if !r.registry.Has(name) {
			return
		}
		if err := r.registry.Remove(name); err != nil {
			log.LogWithError(err).Warn("Could not remove theme")
			return
		}

		r.bump()
		log.LogWithFields(log.F("theme", name), log.F("file", path)).Info("Theme removed")
		r.notify(name, nil)
		return
	}

	r.reload(path, name)
}

// reload re-registers a theme file, keeping the previous version when
// the new content fails to parse
func (r *Reloader) reload(path, name string) {
	if _, err := r.registry.RegisterFile(path); err != nil {
		log.LogWithError(err).Warn("Theme reload failed, keeping previous version")
		r.notify(name, err)
		return
	}

	r.bump()
	log.LogWithFields(log.F("theme", name), log.F("file", path)).Info("Theme reloaded")

	// Re-activating the current theme pushes the new rules to observers
	if name == r.registry.Active() {
		if err := r.registry.SetActive(name); err != nil {
			log.LogWithError(err).Warn("Could not re-apply active theme")
		}
	}

	r.notify(name, nil)
}

func (r *Reloader) bump() {
	r.mutex.Lock()
	r.processed++
	r.mutex.Unlock()
}

func (r *Reloader) notify(name string, err error) {
	r.mutex.RLock()
	cb := r.callback
	r.mutex.RUnlock()

	if cb != nil {
		cb(name, err)
	}
}
