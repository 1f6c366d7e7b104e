package preview

import (
	"sync"

	"dpfm/internal/constants"
	"dpfm/internal/fileinfo"
)

// Limits carries the tunable bounds for preview generation.
type Limits struct {
	TextMaxChars      int
	ArchiveMaxEntries int
	VideoScanFrames   int
	VideoMinMean      float64
	VideoMinStdDev    float64
}

// DefaultLimits returns the stock policy bounds.
func DefaultLimits() Limits {
	return Limits{
		TextMaxChars:      constants.TextPreviewMaxChars,
		ArchiveMaxEntries: constants.ArchivePreviewMaxEntries,
		VideoScanFrames:   constants.VideoScanFrameLimit,
		VideoMinMean:      constants.VideoMinMeanIntensity,
		VideoMinStdDev:    constants.VideoMinStdDev,
	}
}

type job struct {
	path string
	size int
}

// Resolver produces thumbnails asynchronously on a worker pool.
//
// Concurrency contract: at most one in-flight job per distinct path; a
// request arriving while that path's job runs attaches to the same result.
// Completed results (successes and failures alike) are cached until
// explicitly invalidated; cached results are returned synchronously from
// Request without touching the pool. Completions are delivered on the
// Events channel; workers block rather than drop events.
type Resolver struct {
	mu       sync.Mutex
	cond     *sync.Cond
	queue    []job
	inflight map[string]bool
	cache    map[string]Result
	closed   bool

	events chan Event
	wg     sync.WaitGroup

	limits Limits

	// swapped in tests to count and pace decode work
	resolveFn func(path string, size int) (*Thumbnail, error)

	debugPrint func(format string, args ...interface{})
}

// NewResolver starts a resolver with the given worker count. A nil
// debugPrint disables debug output.
func NewResolver(workers int, limits Limits, debugPrint func(format string, args ...interface{})) *Resolver {
	if workers <= 0 {
		workers = constants.PreviewWorkers
	}
	if debugPrint == nil {
		debugPrint = func(string, ...interface{}) {}
	}
	r := &Resolver{
		inflight:   make(map[string]bool),
		cache:      make(map[string]Result),
		events:     make(chan Event, constants.PreviewEventBuffer),
		limits:     limits,
		debugPrint: debugPrint,
	}
	r.cond = sync.NewCond(&r.mu)
	r.resolveFn = r.resolve
	for i := 0; i < workers; i++ {
		r.wg.Add(1)
		go r.worker()
	}
	return r
}

// Events returns the completion channel. It is closed by Close after the
// last worker exits.
func (r *Resolver) Events() <-chan Event { return r.events }

// Request asks for a thumbnail of path bounded to size x size pixels.
// When the path has a cached completed result it is returned immediately
// with ok=true and no event follows. Otherwise ok=false: a job is queued
// unless one is already in flight for the path, and the completion arrives
// on Events.
func (r *Resolver) Request(path string, size int) (res Result, ok bool) {
	if size <= 0 {
		size = constants.DefaultThumbnailSize
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if res, ok := r.cache[path]; ok {
		return res, true
	}
	if r.closed {
		return Result{Err: ErrIoFailed}, true
	}
	if r.inflight[path] {
		// attach to the running job; its single event serves everyone
		return Result{}, false
	}
	r.inflight[path] = true
	r.queue = append(r.queue, job{path: path, size: size})
	r.cond.Signal()
	return Result{}, false
}

// Cached returns the cached result for path, if any.
func (r *Resolver) Cached(path string) (Result, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	res, ok := r.cache[path]
	return res, ok
}

// Invalidate drops the cached result for path. In-flight work is not
// affected; its completion will repopulate the cache.
func (r *Resolver) Invalidate(path string) {
	r.mu.Lock()
	delete(r.cache, path)
	r.mu.Unlock()
}

// EvictMissing lazily drops cache entries for direct children of dir that
// are no longer present. Entries elsewhere are untouched; re-enumeration
// of a directory never invalidates unrelated paths.
func (r *Resolver) EvictMissing(dir string, present map[string]bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for p := range r.cache {
		if fileinfo.ParentPath(p) == dir && !present[p] {
			delete(r.cache, p)
			r.debugPrint("preview: evicted stale cache entry %s", p)
		}
	}
}

// Close stops the workers; queued jobs that have not started are dropped.
// Events is closed once the pool drains.
func (r *Resolver) Close() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.closed = true
	r.queue = nil
	r.cond.Broadcast()
	r.mu.Unlock()
	go func() {
		r.wg.Wait()
		close(r.events)
	}()
}

func (r *Resolver) worker() {
	defer r.wg.Done()
	for {
		r.mu.Lock()
		for len(r.queue) == 0 && !r.closed {
			r.cond.Wait()
		}
		if r.closed {
			r.mu.Unlock()
			return
		}
		j := r.queue[0]
		r.queue = r.queue[1:]
		r.mu.Unlock()

		thumb, err := r.resolveFn(j.path, j.size)
		if err != nil {
			r.debugPrint("preview: %s failed: %v", j.path, err)
		}

		r.mu.Lock()
		r.cache[j.path] = Result{Thumb: thumb, Err: err}
		delete(r.inflight, j.path)
		closed := r.closed
		r.mu.Unlock()
		if !closed {
			r.events <- Event{Path: j.path, Thumb: thumb, Err: err}
		}
	}
}

// resolve runs one job according to the per-category policy.
func (r *Resolver) resolve(path string, size int) (*Thumbnail, error) {
	switch fileinfo.Classify(path, false) {
	case fileinfo.CategoryImage, fileinfo.CategoryGIF:
		// a gif resolves to its static first frame; animation belongs to
		// the playback path, not the resolver
		return r.resolveImage(path, size)
	case fileinfo.CategoryVideo:
		return r.resolveVideo(path, size)
	case fileinfo.CategoryArchive:
		return r.resolveArchive(path)
	case fileinfo.CategoryText:
		return r.resolveText(path)
	default:
		// other/document/html/audio: placeholder plus "open with default
		// handler" is the caller's job
		return nil, ErrNoPreviewAvailable
	}
}
