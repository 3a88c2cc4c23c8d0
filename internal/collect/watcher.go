package collect

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/standardbeagle/jsem/internal/config"
	"github.com/standardbeagle/jsem/internal/debug"
	jsemerrors "github.com/standardbeagle/jsem/internal/errors"
)

// DefaultDebounce batches bursts of file events (editors often fire
// several per save) into one re-collection.
const DefaultDebounce = 250 * time.Millisecond

// Watcher monitors the source tree and re-collects when Java files
// change, handing each fresh graph to the onUpdate callback.
type Watcher struct {
	watcher   *fsnotify.Watcher
	collector *Collector
	cfg       *config.Config
	debounce  time.Duration
	onUpdate  func(*Graph)

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewWatcher creates a watcher around an existing collector. onUpdate
// runs on the watcher goroutine after every successful re-collection.
func NewWatcher(cfg *config.Config, collector *Collector, onUpdate func(*Graph)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, jsemerrors.NewCollectError("watch", err)
	}
	return &Watcher{
		watcher:   fsw,
		collector: collector,
		cfg:       cfg,
		debounce:  DefaultDebounce,
		onUpdate:  onUpdate,
	}, nil
}

// Start registers every directory under the project root and begins
// processing events until ctx is canceled or Stop is called.
func (w *Watcher) Start(ctx context.Context) error {
	if err := w.addDirs(w.cfg.Project.Root); err != nil {
		w.watcher.Close()
		return err
	}

	ctx, w.cancel = context.WithCancel(ctx)
	w.wg.Add(1)
	go w.run(ctx)
	return nil
}

// Stop shuts the watcher down and waits for the event loop to exit.
func (w *Watcher) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	w.watcher.Close()
	w.wg.Wait()
}

func (w *Watcher) addDirs(root string) error {
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if name := d.Name(); name != "." && strings.HasPrefix(name, ".") {
			return filepath.SkipDir
		}
		return w.watcher.Add(path)
	})
	if err != nil {
		return jsemerrors.NewCollectError("watch", err)
	}
	return nil
}

func (w *Watcher) run(ctx context.Context) {
	defer w.wg.Done()

	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			debug.Printf("watch: %s %s\n", event.Op, event.Name)
			if event.Op&(fsnotify.Remove|fsnotify.Rename) != 0 {
				w.collector.Invalidate(event.Name)
			}
			if event.Op&fsnotify.Create != 0 {
				// New directories need watching for nested files.
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					_ = w.watcher.Add(event.Name)
				}
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				timerC = timer.C
			} else {
				timer.Reset(w.debounce)
			}

		case <-timerC:
			timer = nil
			timerC = nil
			graph, err := w.collector.Collect(ctx)
			if err != nil {
				debug.Printf("watch: re-collection failed: %v\n", err)
				continue
			}
			if w.onUpdate != nil {
				w.onUpdate(graph)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			debug.Printf("watch: error: %v\n", err)
		}
	}
}

// relevant filters events down to Java sources and new directories.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	if strings.HasSuffix(event.Name, ".java") {
		return true
	}
	if event.Op&fsnotify.Create != 0 {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			return true
		}
	}
	return false
}
