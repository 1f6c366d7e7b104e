// Package watcher polls a directory and reports incremental changes.
// Polling keeps the behavior identical across local and SMB paths, where
// no portable notification mechanism exists.
package watcher

import (
	"sync"
	"time"

	"dpfm/internal/constants"
	"dpfm/internal/fileinfo"
)

// Changes is one batch of detected differences since the last poll.
type Changes struct {
	Added    []fileinfo.FileInfo
	Deleted  []fileinfo.FileInfo
	Modified []fileinfo.FileInfo
}

// DirectoryWatcher polls one directory on a fixed interval and hands
// change batches to a callback on a dedicated goroutine. Retarget it with
// SetPath when the observed pane navigates.
type DirectoryWatcher struct {
	mu       sync.RWMutex // protects path and previous
	path     string
	previous map[string]fileinfo.FileInfo

	ticker     *time.Ticker
	stopChan   chan struct{}
	changeChan chan *Changes
	stopped    bool

	onChanges  func(*Changes)
	debugPrint func(format string, args ...interface{})
}

// NewDirectoryWatcher creates a watcher delivering batches to onChanges.
func NewDirectoryWatcher(onChanges func(*Changes), debugPrint func(format string, args ...interface{})) *DirectoryWatcher {
	if debugPrint == nil {
		debugPrint = func(string, ...interface{}) {}
	}
	return &DirectoryWatcher{
		previous:   make(map[string]fileinfo.FileInfo),
		stopChan:   make(chan struct{}),
		changeChan: make(chan *Changes, constants.WatcherBufferSize),
		onChanges:  onChanges,
		debugPrint: debugPrint,
	}
}

// SetPath retargets the watcher at a new directory and takes a fresh
// snapshot, so the next poll reports only changes relative to now.
func (dw *DirectoryWatcher) SetPath(path string) {
	snapshot := dw.scan(path)
	dw.mu.Lock()
	dw.path = path
	dw.previous = snapshot
	dw.mu.Unlock()
}

// Start begins polling. Calling Start on a running watcher is a no-op.
func (dw *DirectoryWatcher) Start() {
	if dw.ticker != nil && !dw.stopped {
		return
	}

	dw.stopped = false
	if dw.stopChan == nil {
		dw.stopChan = make(chan struct{})
	}
	if dw.changeChan == nil {
		dw.changeChan = make(chan *Changes, constants.WatcherBufferSize)
	}

	dw.ticker = time.NewTicker(constants.WatcherInterval)

	ticker := dw.ticker
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				dw.checkForChanges()
			case <-dw.stopChan:
				return
			}
		}
	}()

	go func() {
		for {
			select {
			case changes, ok := <-dw.changeChan:
				if !ok {
					return
				}
				if dw.onChanges != nil {
					dw.onChanges(changes)
				}
			case <-dw.stopChan:
				return
			}
		}
	}()
}

// Stop halts polling and change delivery. Safe to call more than once.
func (dw *DirectoryWatcher) Stop() {
	if dw.stopped {
		return
	}

	dw.stopped = true
	dw.ticker = nil

	close(dw.stopChan)
	dw.stopChan = nil
	close(dw.changeChan)
	dw.changeChan = nil
}

// scan reads the directory into a path-keyed map. Hidden entries are
// included; visibility filtering belongs to the pane, not the watcher.
func (dw *DirectoryWatcher) scan(path string) map[string]fileinfo.FileInfo {
	files := make(map[string]fileinfo.FileInfo)
	if path == "" {
		return files
	}
	entries, err := fileinfo.ReadDirPortable(path)
	if err != nil {
		dw.debugPrint("watcher: scan %s failed: %v", path, err)
		return files
	}
	for _, entry := range entries {
		name := entry.Name()
		if name == "." || name == ".." {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		fullPath := fileinfo.JoinPath(path, name)
		files[fullPath] = fileinfo.FileInfo{
			Name:     name,
			Path:     fullPath,
			IsDir:    entry.IsDir(),
			Size:     info.Size(),
			Modified: info.ModTime(),
			Category: fileinfo.Classify(fullPath, entry.IsDir()),
			Hidden:   fileinfo.IsHiddenName(fullPath, name),
		}
	}
	return files
}

// checkForChanges reads the current state, diffs it against the snapshot
// and queues a change batch when anything differs.
func (dw *DirectoryWatcher) checkForChanges() {
	dw.mu.RLock()
	path := dw.path
	dw.mu.RUnlock()
	if path == "" {
		return
	}

	current := dw.scan(path)
	added, deleted, modified := dw.detectChanges(current)
	if len(added) == 0 && len(deleted) == 0 && len(modified) == 0 {
		return
	}

	// snapshot advances even if delivery is skipped, so a full channel
	// drops one batch instead of re-reporting the same diff forever
	dw.mu.Lock()
	dw.previous = current
	dw.mu.Unlock()

	if !dw.stopped && dw.changeChan != nil {
		select {
		case dw.changeChan <- &Changes{Added: added, Deleted: deleted, Modified: modified}:
		default:
			dw.debugPrint("watcher: change channel full, skipping update")
		}
	}
}

// detectChanges compares current and previous states to find differences.
func (dw *DirectoryWatcher) detectChanges(current map[string]fileinfo.FileInfo) (added, deleted, modified []fileinfo.FileInfo) {
	dw.mu.RLock()
	defer dw.mu.RUnlock()

	for path, file := range current {
		prev, exists := dw.previous[path]
		if !exists {
			added = append(added, file)
			continue
		}
		if !file.Modified.Equal(prev.Modified) || file.Size != prev.Size {
			modified = append(modified, file)
		}
	}
	for path, file := range dw.previous {
		if _, exists := current[path]; !exists {
			deleted = append(deleted, file)
		}
	}
	return added, deleted, modified
}
