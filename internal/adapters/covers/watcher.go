package covers

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher reports cover keys whose files changed in the covers directory
type Watcher struct {
	fs     *fsnotify.Watcher
	events chan string
	log    *zap.Logger
}

// NewWatcher starts watching dir
func NewWatcher(dir string, log *zap.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, err
	}

	w := &Watcher{
		fs:     fw,
		events: make(chan string, 16),
		log:    log,
	}
	go w.run()
	return w, nil
}

// Events delivers changed cover keys. It is closed by Close.
func (w *Watcher) Events() <-chan string {
	return w.events
}

// Close stops the watcher
func (w *Watcher) Close() error {
	return w.fs.Close()
}

func (w *Watcher) run() {
	defer close(w.events)
	for {
		select {
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			key, ok := coverKey(ev)
			if !ok {
				continue
			}
			select {
			case w.events <- key:
			default:
				w.log.Debug("cover event dropped", zap.String("key", key))
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.log.Warn("cover watcher error", zap.Error(err))
		}
	}
}

// coverKey maps a filesystem event to the cover key it touches
func coverKey(ev fsnotify.Event) (string, bool) {
	if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Write) &&
		!ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
		return "", false
	}
	key := filepath.Base(ev.Name)
	if key == "" || key[0] == '.' {
		return "", false
	}
	return key, true
}
