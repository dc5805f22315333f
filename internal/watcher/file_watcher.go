package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/aleister1102/docdiff/internal/common"
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// DefaultDebounce is the quiet period awaited after the last change event.
const DefaultDebounce = 500 * time.Millisecond

// Options holds options for creating a FileWatcher
type Options struct {
	Logger   zerolog.Logger
	Debounce time.Duration
}

// DefaultOptions returns default options for FileWatcher
func DefaultOptions() Options {
	return Options{
		Logger:   zerolog.Nop(),
		Debounce: DefaultDebounce,
	}
}

type fileState struct {
	modTime time.Time
	size    int64
}

// FileWatcher reports content changes to a fixed set of files.
//
// The parent directories are watched rather than the files so editors that
// replace a file on save are still observed.
type FileWatcher struct {
	watcher   *fsnotify.Watcher
	logger    zerolog.Logger
	debounce  time.Duration
	files     map[string]fileState
	stopChan  chan struct{}
	closeOnce sync.Once
}

// NewFileWatcher starts watching paths. Every path must exist.
func NewFileWatcher(paths []string, opts Options) (*FileWatcher, error) {
	if len(paths) == 0 {
		return nil, common.NewValidationError("paths", paths, "at least one file to watch is required")
	}
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}

	fw := &FileWatcher{
		logger:   opts.Logger.With().Str("component", "FileWatcher").Logger(),
		debounce: opts.Debounce,
		files:    make(map[string]fileState, len(paths)),
		stopChan: make(chan struct{}),
	}

	dirs := make(map[string]struct{})
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, common.WrapError(err, "failed to resolve path: "+p)
		}
		state, err := statFile(abs)
		if err != nil {
			return nil, err
		}
		fw.files[abs] = state
		dirs[filepath.Dir(abs)] = struct{}{}
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, common.WrapError(err, "failed to create file watcher")
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			_ = watcher.Close()
			return nil, common.WrapError(err, "failed to watch directory: "+dir)
		}
		fw.logger.Debug().Str("directory", dir).Msg("Watching directory")
	}
	fw.watcher = watcher
	return fw, nil
}

// Close stops the watcher. Run returns once Close has been called.
func (fw *FileWatcher) Close() error {
	var err error
	fw.closeOnce.Do(func() {
		close(fw.stopChan)
		err = fw.watcher.Close()
	})
	return err
}

// Run blocks, calling onChange with the changed paths after each debounced
// burst of events, until ctx is cancelled or Close is called.
func (fw *FileWatcher) Run(ctx context.Context, onChange func(changed []string)) error {
	timer := time.NewTimer(0)
	if !timer.Stop() {
		<-timer.C
	}
	pending := make(map[string]struct{})

	for {
		select {
		case <-ctx.Done():
			fw.logger.Debug().Msg("Watch loop stopped due to context cancellation")
			return nil

		case <-fw.stopChan:
			fw.logger.Debug().Msg("Watch loop stopped")
			return nil

		case event, ok := <-fw.watcher.Events:
			if !ok {
				return nil
			}
			name := filepath.Clean(event.Name)
			if _, watched := fw.files[name]; !watched {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			fw.logger.Debug().Str("file", name).Str("op", event.Op.String()).Msg("File change detected")
			pending[name] = struct{}{}
			timer.Reset(fw.debounce)

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return nil
			}
			fw.logger.Error().Err(err).Msg("File watcher error")

		case <-timer.C:
			changed := fw.collectChanged(pending)
			pending = make(map[string]struct{})
			if len(changed) > 0 {
				onChange(changed)
			}
		}
	}
}

// collectChanged keeps only pending files whose size or mtime moved since the
// last notification.
func (fw *FileWatcher) collectChanged(pending map[string]struct{}) []string {
	var changed []string
	for name := range pending {
		state, err := statFile(name)
		if err != nil {
			fw.logger.Warn().Err(err).Str("file", name).Msg("Changed file is not readable")
			continue
		}
		prev := fw.files[name]
		if state.size == prev.size && state.modTime.Equal(prev.modTime) {
			continue
		}
		fw.files[name] = state
		changed = append(changed, name)
	}
	sort.Strings(changed)
	return changed
}

func statFile(path string) (fileState, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fileState{}, common.WrapError(common.ErrNotFound, "file not found: "+path)
		}
		return fileState{}, common.WrapError(err, "failed to stat file: "+path)
	}
	if info.IsDir() {
		return fileState{}, common.NewValidationError("path", path, "is a directory, not a file")
	}
	return fileState{modTime: info.ModTime(), size: info.Size()}, nil
}
