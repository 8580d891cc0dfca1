package watch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/zeusync/colliders/internal/core/observability/log"
)

// Watcher reports collider documents that changed on disk. Bursts of events
// for one file are collapsed into a single notification sent once the file
// has been quiet for the debounce interval.
type Watcher struct {
	watcher  *fsnotify.Watcher
	logger   log.Log
	debounce time.Duration
	// files restricts notifications to these paths. Empty means any
	// document in a watched directory.
	files map[string]struct{}

	Events chan string
	Errors chan error

	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// New watches each path. A directory reports every document inside it; a
// file reports only itself.
func New(logger log.Log, debounce time.Duration, paths ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: %w", err)
	}

	w := &Watcher{
		watcher:  fw,
		logger:   logger,
		debounce: debounce,
		files:    make(map[string]struct{}),
		Events:   make(chan string, 16),
		Errors:   make(chan error, 1),
		closeCh:  make(chan struct{}),
		done:     make(chan struct{}),
	}

	dirs := make(map[string]struct{})
	for _, path := range paths {
		path = filepath.Clean(path)
		info, err := os.Stat(path)
		if err != nil {
			_ = fw.Close()
			return nil, fmt.Errorf("watch: %w", err)
		}
		dir := path
		if !info.IsDir() {
			dir = filepath.Dir(path)
			w.files[path] = struct{}{}
		}
		if _, ok := dirs[dir]; ok {
			continue
		}
		if err := fw.Add(dir); err != nil {
			_ = fw.Close()
			return nil, fmt.Errorf("watch %s: %w", dir, err)
		}
		dirs[dir] = struct{}{}
	}

	go w.run()
	return w, nil
}

// Close stops the watcher. Events and Errors are closed once it has stopped.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.done)
	defer close(w.Errors)
	defer close(w.Events)

	pending := make(map[string]time.Time)
	var flush <-chan time.Time

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !w.wants(event.Name) {
				continue
			}
			pending[filepath.Clean(event.Name)] = time.Now()
			if flush == nil {
				flush = time.After(w.debounce)
			}
		case <-flush:
			flush = nil
			now := time.Now()
			for name, last := range pending {
				if now.Sub(last) < w.debounce {
					continue
				}
				delete(pending, name)
				w.logger.Debug("collider document changed", log.String("path", name))
				select {
				case w.Events <- name:
				case <-w.closeCh:
					return
				}
			}
			if len(pending) > 0 {
				flush = time.After(w.debounce)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
				w.logger.Warn("watch error dropped", log.Error(err))
			}
		case <-w.closeCh:
			return
		}
	}
}

func (w *Watcher) wants(path string) bool {
	if len(w.files) > 0 {
		_, ok := w.files[filepath.Clean(path)]
		return ok
	}
	return IsDocument(path)
}

// IsDocument reports whether path has a collider document extension.
func IsDocument(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json", ".toml":
		return true
	default:
		return false
	}
}
