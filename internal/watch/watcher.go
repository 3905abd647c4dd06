package watch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"themed/internal/log"
	"themed/internal/theme"

	"github.com/fsnotify/fsnotify"
)

// ThemeFileEvent represents a theme file change detected by the watcher
type ThemeFileEvent struct {
	Path      string
	Op        fsnotify.Op
	Timestamp time.Time
}

// Watcher monitors directories for theme file changes using fsnotify.
// Only *.qss files are reported.
type Watcher struct {
	// Directories being watched
	directories []string

	// Channel delivering theme file events
	eventChan chan ThemeFileEvent

	// Channel to signal stop
	stopChan chan struct{}

	// fsnotify watcher instance
	fsWatcher *fsnotify.Watcher

	// Lock for running state and the directories list
	mutex sync.RWMutex

	// Whether the watcher is running
	running bool
}

// New creates a new theme directory watcher using fsnotify
func New() (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	return &Watcher{
		directories: []string{},
		eventChan:   make(chan ThemeFileEvent, 16),
		stopChan:    make(chan struct{}),
		fsWatcher:   fsWatcher,
		running:     false,
	}, nil
}

// AddDirectory adds a directory to watch for theme file changes
func (w *Watcher) AddDirectory(dir string) error {
	// Check if directory exists
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("error accessing directory: %w", err)
	}

	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}

	// Add directory to fsnotify watcher
	err = w.fsWatcher.Add(dir)
	if err != nil {
		return fmt.Errorf("failed to add directory %s to watcher: %w", dir, err)
	}

	// Keep track of directories added (fsnotify handles duplicates itself)
	w.mutex.Lock()
	found := false
	for _, existingDir := range w.directories {
		if existingDir == dir {
			found = true
			break
		}
	}
	if !found {
		w.directories = append(w.directories, dir)
	}
	w.mutex.Unlock()
	log.LogWithFields(log.F("directory", dir)).Info("Watching directory for theme changes")
	return nil
}

// EventChannel returns the channel that delivers theme file events
func (w *Watcher) EventChannel() <-chan ThemeFileEvent {
	return w.eventChan
}

// Start begins the file watching process
func (w *Watcher) Start() error {
	w.mutex.Lock()
	if w.running {
		w.mutex.Unlock()
		return fmt.Errorf("watcher already running")
	}
	w.running = true
	// Create a new stop channel each time Start is called
	w.stopChan = make(chan struct{})
	w.mutex.Unlock()

	// Start the event processing loop in a separate goroutine. The loop
	// is the only sender on eventChan, so it is also the one that closes
	// it; closing from Stop could race a send in flight.
	go func() {
		defer close(w.eventChan)
		log.Debug("Watcher event loop started")

		for {
			select {
			case event, ok := <-w.fsWatcher.Events:
				if !ok {
					log.Debug("fsnotify events channel closed")
					return
				}

				if !isThemeFile(event.Name) {
					continue
				}

				if event.Op.Has(fsnotify.Create) || event.Op.Has(fsnotify.Write) {
					// The file may already be gone again; skip events we
					// cannot stat and directory-level noise.
					info, err := os.Stat(event.Name)
					if err != nil {
						if !os.IsNotExist(err) {
							log.LogWithFields(log.F("file", event.Name), log.F("error", err)).Error("Error stating file")
						}
						continue
					}
					if info.IsDir() {
						continue
					}
				} else if !event.Op.Has(fsnotify.Remove) && !event.Op.Has(fsnotify.Rename) {
					// Chmod-only events carry no content change
					continue
				}

				ev := ThemeFileEvent{
					Path:      event.Name,
					Op:        event.Op,
					Timestamp: time.Now(),
				}

				// Send non-blockingly so the loop never wedges on a full channel
				select {
				case w.eventChan <- ev:
				default:
					log.LogWithFields(log.F("file", event.Name)).Warn("Event channel is full, dropped event")
				}

			case err, ok := <-w.fsWatcher.Errors:
				if !ok {
					log.Debug("fsnotify errors channel closed")
					return
				}
				log.LogWithFields(log.F("error", err)).Error("fsnotify watcher error")

			case <-w.stopChan:
				log.Debug("Watcher event loop received stop signal")
				return
			}
		}
	}()

	log.Info("Watcher started")
	return nil
}

// Stop halts the file watching process
func (w *Watcher) Stop() {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if !w.running {
		return // Already stopped
	}

	// Signal the event processing goroutine to stop
	close(w.stopChan)

	// Close the underlying fsnotify watcher. The event loop closes the
	// public event channel on its way out.
	if err := w.fsWatcher.Close(); err != nil {
		log.LogWithFields(log.F("error", err)).Error("Error closing fsnotify watcher")
	}

	w.running = false

	log.Info("Watcher stopped")
}

// IsRunning returns whether the watcher is currently active
func (w *Watcher) IsRunning() bool {
	w.mutex.RLock()
	defer w.mutex.RUnlock()
	return w.running
}

// GetDirectories returns the list of directories being watched
func (w *Watcher) GetDirectories() []string {
	w.mutex.RLock()
	defer w.mutex.RUnlock()
	dirsCopy := make([]string, len(w.directories))
	copy(dirsCopy, w.directories)
	return dirsCopy
}

// isThemeFile reports whether path names a theme stylesheet file
func isThemeFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), theme.FileExt)
}
