package assets

import (
	"errors"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spaghettifunk/prism/engine/core"
)

// ShaderWatcher observes compiled shader files and remembers that at least
// one of them changed. The render loop drains the flag at a safe point; the
// watcher itself never touches GPU state.
type ShaderWatcher struct {
	fsnotify *fsnotify.Watcher

	mutex    sync.Mutex
	dirty    bool
	isClosed bool
	done     chan struct{}
}

func NewShaderWatcher(paths ...string) (*ShaderWatcher, error) {
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	sw := &ShaderWatcher{
		fsnotify: fsWatch,
		done:     make(chan struct{}),
	}

	for _, p := range paths {
		if err := fsWatch.Add(p); err != nil {
			fsWatch.Close()
			return nil, err
		}
	}

	go sw.run()
	return sw, nil
}

func (sw *ShaderWatcher) run() {
	for {
		select {
		case <-sw.done:
			return
		case event, ok := <-sw.fsnotify.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				core.LogInfo("shader changed on disk: %s", event.Name)
				sw.mutex.Lock()
				sw.dirty = true
				sw.mutex.Unlock()
			}
		case err, ok := <-sw.fsnotify.Errors:
			if !ok {
				return
			}
			core.LogWarn("shader watcher: %s", err)
		}
	}
}

// ConsumeDirty reports whether a change was seen since the last call and
// clears the flag.
func (sw *ShaderWatcher) ConsumeDirty() bool {
	sw.mutex.Lock()
	defer sw.mutex.Unlock()
	d := sw.dirty
	sw.dirty = false
	return d
}

func (sw *ShaderWatcher) Close() error {
	sw.mutex.Lock()
	defer sw.mutex.Unlock()
	if sw.isClosed {
		return errors.New("shader watcher already closed")
	}
	sw.isClosed = true
	close(sw.done)
	return sw.fsnotify.Close()
}
