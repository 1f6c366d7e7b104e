package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"dpfm/internal/config"
	"dpfm/internal/fileinfo"
	"dpfm/internal/jobs"
	"dpfm/internal/listing"
	"dpfm/internal/media"
	"dpfm/internal/pane"
	"dpfm/internal/preview"
	"dpfm/internal/secret"
	"dpfm/internal/watcher"
)

// Global debug flag
var debugMode bool

// debugPrint prints debug messages only when debug mode is enabled
func debugPrint(format string, args ...interface{}) {
	if debugMode {
		log.Printf("DEBUG: "+format, args...)
	}
}

// Browser wires both panes to the shared services: preview resolver,
// job manager, media arbiter and one directory watcher per pane.
type Browser struct {
	config        *config.Config
	configManager *config.Manager

	left  *pane.State
	right *pane.State

	resolver *preview.Resolver
	jobs     *jobs.Manager
	arbiter  *media.Arbiter

	leftWatcher  *watcher.DirectoryWatcher
	rightWatcher *watcher.DirectoryWatcher
}

func newBrowser(cfg *config.Config, cm *config.Manager) *Browser {
	limits := preview.Limits{
		TextMaxChars:      cfg.Preview.TextMaxChars,
		ArchiveMaxEntries: cfg.Preview.ArchiveMaxEntries,
		VideoScanFrames:   cfg.Preview.VideoScanFrames,
		VideoMinMean:      cfg.Preview.VideoMinMean,
		VideoMinStdDev:    cfg.Preview.VideoMinStdDev,
	}
	b := &Browser{
		config:        cfg,
		configManager: cm,
		left:          newPane(cfg.Left, cfg.UI.ShowHiddenFiles),
		right:         newPane(cfg.Right, cfg.UI.ShowHiddenFiles),
		resolver:      preview.NewResolver(cfg.Preview.Workers, limits, debugPrint),
		jobs:          jobs.NewManager(),
		arbiter:       media.NewArbiter(debugPrint),
	}
	b.leftWatcher = newPaneWatcher(b.left, b.resolver)
	b.rightWatcher = newPaneWatcher(b.right, b.resolver)
	return b
}

func newPane(pc config.PaneConfig, showHidden bool) *pane.State {
	return pane.New(pane.Options{
		SortKey:    listing.ParseSortKey(pc.SortBy),
		SortOrder:  listing.ParseSortOrder(pc.SortOrder),
		ShowHidden: showHidden,
		View:       pane.ParseViewMode(pc.ViewMode),
		Bookmarks:  pc.Bookmarks,
	}, nil)
}

// newPaneWatcher refreshes the pane and drops stale preview cache entries
// whenever the watched directory changes.
func newPaneWatcher(p *pane.State, resolver *preview.Resolver) *watcher.DirectoryWatcher {
	return watcher.NewDirectoryWatcher(func(changes *watcher.Changes) {
		for _, f := range changes.Modified {
			resolver.Invalidate(f.Path)
		}
		for _, f := range changes.Deleted {
			resolver.Invalidate(f.Path)
		}
		if err := p.Refresh(); err != nil {
			debugPrint("watcher refresh failed: %v", err)
		}
	}, debugPrint)
}

// saveState writes pane settings and history back to the config file.
func (b *Browser) saveState() {
	left := b.left.Settings()
	b.config.Left = config.PaneConfig{
		Path:      b.left.Current(),
		SortBy:    left.SortKey.String(),
		SortOrder: left.SortOrder.String(),
		ViewMode:  left.View.String(),
		Bookmarks: left.Bookmarks,
	}
	right := b.right.Settings()
	b.config.Right = config.PaneConfig{
		Path:      b.right.Current(),
		SortBy:    right.SortKey.String(),
		SortOrder: right.SortOrder.String(),
		ViewMode:  right.View.String(),
		Bookmarks: right.Bookmarks,
	}
	if err := b.configManager.Save(b.config); err != nil {
		debugPrint("Error saving config: %v", err)
	}
}

func printListing(l *listing.Listing) {
	if l == nil {
		return
	}
	fmt.Printf("%s (%d folders, %d files)\n", l.Path, len(l.Folders), len(l.Files))
	for _, e := range l.Folders {
		fmt.Printf("  %-40s %10s  %s\n", e.Name, "<DIR>", e.Modified.Format("2006-01-02 15:04"))
	}
	for _, e := range l.Files {
		fmt.Printf("  %-40s %10s  %s  %s\n", e.Name,
			fileinfo.FormatFileSize(e.Size), e.Modified.Format("2006-01-02 15:04"),
			fileinfo.TypeLabel(e))
	}
}

func printPreview(b *Browser, target string, size int) {
	res, ok := b.resolver.Request(target, size)
	if !ok {
		select {
		case ev := <-b.resolver.Events():
			res = preview.Result{Thumb: ev.Thumb, Err: ev.Err}
		case <-time.After(30 * time.Second):
			fmt.Fprintln(os.Stderr, "preview timed out")
			return
		}
	}
	if res.Err != nil {
		fmt.Fprintf(os.Stderr, "preview %s: %v\n", target, res.Err)
		return
	}
	t := res.Thumb
	switch t.Kind {
	case preview.KindImage:
		bounds := t.Image.Bounds()
		fmt.Printf("%s: %dx%d thumbnail\n", target, bounds.Dx(), bounds.Dy())
	case preview.KindText:
		fmt.Print(t.Text)
		if t.TextTruncated {
			fmt.Println("\n...")
		}
	case preview.KindArchive:
		for _, name := range t.Entries {
			fmt.Println(name)
		}
		if t.MoreEntries > 0 {
			fmt.Printf("... and %d more files\n", t.MoreEntries)
		}
	}
}

// runJobs enqueues the requested transfers and waits for them to finish,
// reporting progress on stderr.
func runJobs(m *jobs.Manager, copyList, moveList, deleteList, destDir string) {
	var queued []*jobs.Job
	if copyList != "" {
		if destDir == "" {
			log.Fatal("-copy requires -dest")
		}
		queued = append(queued, m.EnqueueCopy(splitPaths(copyList), destDir))
	}
	if moveList != "" {
		if destDir == "" {
			log.Fatal("-move requires -dest")
		}
		queued = append(queued, m.EnqueueMove(splitPaths(moveList), destDir))
	}
	if deleteList != "" {
		queued = append(queued, m.EnqueueDelete(splitPaths(deleteList)))
	}
	for _, j := range queued {
		for {
			snap := j.Snapshot()
			switch snap.Status {
			case jobs.StatusCompleted:
				fmt.Fprintf(os.Stderr, "%s: %d/%d done\n", snap.Type, snap.DoneFiles, snap.TotalFiles)
			case jobs.StatusFailed:
				log.Fatalf("%s failed: %s", snap.Type, snap.Error)
			case jobs.StatusCanceled:
				fmt.Fprintf(os.Stderr, "%s canceled\n", snap.Type)
			default:
				time.Sleep(50 * time.Millisecond)
				continue
			}
			break
		}
	}
}

func splitPaths(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func resolveStartPath(cfg *config.Config, flagPath string) string {
	path := flagPath
	if path == "" {
		path = cfg.Left.Path
	}
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "."
		}
		return home
	}
	if !fileinfo.IsSMBDisplay(path) {
		if abs, err := filepath.Abs(path); err == nil {
			return abs
		}
	}
	return path
}

func main() {
	var (
		startPath   string
		rightPath   string
		sortBy      string
		sortOrder   string
		filterGlob  string
		showHidden  bool
		previewPath string
		openPath    string
		watchFor    time.Duration
		copyList    string
		moveList    string
		deleteList  string
		destDir     string
	)
	flag.BoolVar(&debugMode, "d", false, "Enable debug mode")
	flag.StringVar(&startPath, "path", "", "Starting directory path")
	flag.StringVar(&rightPath, "path2", "", "Right pane directory path")
	flag.StringVar(&sortBy, "sort", "", "Sort key: name, size, type, date")
	flag.StringVar(&sortOrder, "order", "", "Sort order: asc, desc")
	flag.StringVar(&filterGlob, "filter", "", "Wildcard filter pattern")
	flag.BoolVar(&showHidden, "hidden", false, "Show hidden files")
	flag.StringVar(&previewPath, "preview", "", "Generate a preview for the given file and exit")
	flag.StringVar(&openPath, "open", "", "Open the given path with the default application")
	flag.DurationVar(&watchFor, "watch", 0, "Watch the directory for changes for the given duration")
	flag.StringVar(&copyList, "copy", "", "Comma-separated paths to copy into -dest")
	flag.StringVar(&moveList, "move", "", "Comma-separated paths to move into -dest")
	flag.StringVar(&deleteList, "delete", "", "Comma-separated paths to delete")
	flag.StringVar(&destDir, "dest", "", "Destination directory for -copy/-move")
	flag.Parse()

	// Support directory as positional argument
	if startPath == "" && flag.NArg() > 0 {
		startPath = flag.Arg(0)
	}

	jobs.SetDebug(debugPrint)

	// SMB credentials persist in the OS keyring when available
	if store, err := secret.NewKeyringStore(); err != nil {
		debugPrint("keyring unavailable, credentials stay in memory: %v", err)
		fileinfo.SetSecretStore(secret.NewMemoryStore())
	} else {
		fileinfo.SetSecretStore(store)
	}

	configManager := config.NewManager()
	cfg, err := configManager.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if sortBy != "" {
		cfg.Left.SortBy = sortBy
	}
	if sortOrder != "" {
		cfg.Left.SortOrder = sortOrder
	}
	if showHidden {
		cfg.UI.ShowHiddenFiles = true
	}

	browser := newBrowser(cfg, configManager)
	defer browser.resolver.Close()
	defer browser.arbiter.StopCurrent()

	if openPath != "" {
		if err := fileinfo.OpenWithDefaultApp(openPath); err != nil {
			log.Fatalf("Failed to open %s: %v", openPath, err)
		}
		return
	}

	if previewPath != "" {
		printPreview(browser, previewPath, cfg.Preview.ThumbnailSize)
		return
	}

	if copyList != "" || moveList != "" || deleteList != "" {
		runJobs(browser.jobs, copyList, moveList, deleteList, destDir)
		return
	}

	path := resolveStartPath(cfg, startPath)
	if err := browser.left.Navigate(path); err != nil {
		log.Fatalf("Failed to open %s: %v", path, err)
	}
	cfg.AddToHistory(path)

	if rightPath != "" {
		if err := browser.right.Navigate(rightPath); err != nil {
			log.Fatalf("Failed to open %s: %v", rightPath, err)
		}
		cfg.AddToHistory(rightPath)
	} else if cfg.Right.Path != "" {
		if err := browser.right.Navigate(cfg.Right.Path); err != nil {
			debugPrint("right pane restore failed: %v", err)
		}
	}

	if filterGlob != "" {
		browser.left.SetFilter(filterGlob, nil)
	}
	printListing(browser.left.Entries())

	if watchFor > 0 {
		browser.leftWatcher.SetPath(browser.left.Current())
		browser.leftWatcher.Start()
		debugPrint("watching %s for %s", browser.left.Current(), watchFor)
		time.Sleep(watchFor)
		browser.leftWatcher.Stop()
		printListing(browser.left.Entries())
	}

	browser.saveState()
}
