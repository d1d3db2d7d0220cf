package assets

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// settleDelay is how long a file must go without writes before it is
// reported. Editors save in several writes; only the last one is complete.
const settleDelay = 100 * time.Millisecond

// Watcher reports png files in the watched directories once they stop
// changing. Events carries base file names.
type Watcher struct {
	Events chan string
	Errors chan error

	fsw    *fsnotify.Watcher
	settle time.Duration
	stop   chan struct{}
	done   chan struct{}
	once   sync.Once
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			_ = fsw.Close()
			return nil, err
		}
	}

	w := &Watcher{
		Events: make(chan string, 16),
		Errors: make(chan error, 1),
		fsw:    fsw,
		settle: settleDelay,
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Close stops the watcher and closes Events and Errors. It is safe to call
// more than once.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.stop)
		err = w.fsw.Close()
		<-w.done
		close(w.Events)
		close(w.Errors)
	})
	return err
}

func (w *Watcher) loop() {
	defer close(w.done)

	// lastWrite holds files with writes not yet reported.
	lastWrite := make(map[string]time.Time)
	timer := time.NewTimer(w.settle)
	timer.Stop()

	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 || !isImageFile(ev.Name) {
				continue
			}
			lastWrite[filepath.Base(ev.Name)] = time.Now()
			timer.Reset(w.settle)

		case <-timer.C:
			now := time.Now()
			var wait time.Duration
			for name, at := range lastWrite {
				if left := w.settle - now.Sub(at); left > 0 {
					if wait == 0 || left < wait {
						wait = left
					}
					continue
				}
				delete(lastWrite, name)
				select {
				case w.Events <- name:
				case <-w.stop:
					return
				}
			}
			if wait > 0 {
				timer.Reset(wait)
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}

		case <-w.stop:
			timer.Stop()
			return
		}
	}
}

func isImageFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".png")
}
