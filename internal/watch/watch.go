package watch

import (
	"context"
	"path/filepath"

	"github.com/admpub/log"
	"github.com/fsnotify/fsnotify"
)

// Watch calls onChange whenever the file at path is written, created or
// renamed into place. The directory is watched so editors that replace the
// file keep being tracked. It returns when ctx is done.
func Watch(ctx context.Context, path string, onChange func()) error {
	path, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	if err = watcher.Add(filepath.Dir(path)); err != nil {
		return err
	}
	log.Debugf(`[watch] watching %s`, path)
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				log.Debugf(`[watch] %s: %s`, event.Op, path)
				onChange()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warnf(`[watch] %s: %v`, path, err)
		}
	}
}
