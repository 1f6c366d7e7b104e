package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGetDefaultConfig(t *testing.T) {
	config := getDefaultConfig()

	// Test pane defaults
	for _, pane := range []PaneConfig{config.Left, config.Right} {
		if pane.SortBy != "name" {
			t.Errorf("Expected default sort by 'name', got '%s'", pane.SortBy)
		}
		if pane.SortOrder != "asc" {
			t.Errorf("Expected default sort order 'asc', got '%s'", pane.SortOrder)
		}
		if pane.ViewMode != "icon" {
			t.Errorf("Expected default view mode 'icon', got '%s'", pane.ViewMode)
		}
		if pane.Bookmarks == nil {
			t.Error("Expected bookmarks to be initialized")
		}
	}

	// Test UI defaults
	if config.UI.ShowHiddenFiles {
		t.Error("Expected ShowHiddenFiles to be false by default")
	}

	// Test preview defaults
	if config.Preview.ThumbnailSize != 128 {
		t.Errorf("Expected default thumbnail size 128, got %d", config.Preview.ThumbnailSize)
	}
	if config.Preview.TextMaxChars != 1000 {
		t.Errorf("Expected default text preview limit 1000, got %d", config.Preview.TextMaxChars)
	}
	if config.Preview.ArchiveMaxEntries != 20 {
		t.Errorf("Expected default archive preview limit 20, got %d", config.Preview.ArchiveMaxEntries)
	}
	if config.Preview.VideoScanFrames != 30 {
		t.Errorf("Expected default video scan limit 30, got %d", config.Preview.VideoScanFrames)
	}

	// Test history defaults
	if config.History.MaxEntries != 50 {
		t.Errorf("Expected default history max entries 50, got %d", config.History.MaxEntries)
	}
	if config.History.Entries == nil {
		t.Error("Expected history entries to be initialized")
	}
}

func TestMergeConfigs(t *testing.T) {
	defaultConfig := getDefaultConfig()
	fileConfig := &Config{
		Left: PaneConfig{
			Path:      "/home/user/pictures",
			SortBy:    "size",
			SortOrder: "desc",
			ViewMode:  "thumbnail",
			Bookmarks: []string{"/home/user/music"},
		},
		UI: UIConfig{
			ShowHiddenFiles: true,
		},
		Preview: PreviewConfig{
			ThumbnailSize: 256,
		},
	}

	mergeConfigs(defaultConfig, fileConfig)

	if defaultConfig.Left.Path != "/home/user/pictures" {
		t.Errorf("Expected merged left path, got '%s'", defaultConfig.Left.Path)
	}
	if defaultConfig.Left.SortBy != "size" || defaultConfig.Left.SortOrder != "desc" {
		t.Errorf("Expected merged left sort size/desc, got %s/%s",
			defaultConfig.Left.SortBy, defaultConfig.Left.SortOrder)
	}
	if defaultConfig.Left.ViewMode != "thumbnail" {
		t.Errorf("Expected merged view mode 'thumbnail', got '%s'", defaultConfig.Left.ViewMode)
	}
	if len(defaultConfig.Left.Bookmarks) != 1 {
		t.Errorf("Expected 1 merged bookmark, got %d", len(defaultConfig.Left.Bookmarks))
	}
	if !defaultConfig.UI.ShowHiddenFiles {
		t.Error("Expected merged ShowHiddenFiles to be true")
	}
	if defaultConfig.Preview.ThumbnailSize != 256 {
		t.Errorf("Expected merged thumbnail size 256, got %d", defaultConfig.Preview.ThumbnailSize)
	}

	// Untouched fields keep their defaults
	if defaultConfig.Right.SortBy != "name" {
		t.Errorf("Expected right pane to keep defaults, got '%s'", defaultConfig.Right.SortBy)
	}
	if defaultConfig.Preview.TextMaxChars != 1000 {
		t.Errorf("Expected default text limit to survive merge, got %d", defaultConfig.Preview.TextMaxChars)
	}
}

func TestConfigSerialization(t *testing.T) {
	config := getDefaultConfig()

	// Test JSON marshaling
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal config: %v", err)
	}

	// Test JSON unmarshaling
	var unmarshaledConfig Config
	err = json.Unmarshal(data, &unmarshaledConfig)
	if err != nil {
		t.Fatalf("Failed to unmarshal config: %v", err)
	}

	// Check that key values are preserved
	if config.Preview.ThumbnailSize != unmarshaledConfig.Preview.ThumbnailSize {
		t.Errorf("Thumbnail size not preserved: expected %d, got %d",
			config.Preview.ThumbnailSize, unmarshaledConfig.Preview.ThumbnailSize)
	}
	if config.Left.SortBy != unmarshaledConfig.Left.SortBy {
		t.Errorf("Sort key not preserved: expected %s, got %s",
			config.Left.SortBy, unmarshaledConfig.Left.SortBy)
	}
}

func TestGetConfigPath(t *testing.T) {
	path := getConfigPath()

	// Should return a non-empty path
	if path == "" {
		t.Error("Config path should not be empty")
	}

	// Should end with config.json
	if !strings.HasSuffix(path, "config.json") {
		t.Errorf("Config path should end with 'config.json', got '%s'", path)
	}
}

func TestManagerLoadNonExistentFile(t *testing.T) {
	manager := &Manager{configPath: "/non/existent/path/config.json"}

	config, err := manager.Load()

	// Should not return an error, but should return default config
	if err != nil {
		t.Errorf("Load should not return error for non-existent file, got: %v", err)
	}
	if config == nil {
		t.Fatal("Load should return default config for non-existent file")
	}
	if config.Preview.ThumbnailSize != 128 {
		t.Errorf("Should return default config with thumbnail size 128, got %d", config.Preview.ThumbnailSize)
	}
}

func TestManagerSaveAndLoad(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "test_config.json")
	manager := &Manager{configPath: configPath}

	testConfig := &Config{
		Left: PaneConfig{
			Path:      "/data/photos",
			SortBy:    "date",
			SortOrder: "desc",
			ViewMode:  "thumbnail",
			Bookmarks: []string{"/data/photos", "/data/photos"},
		},
		Right: PaneConfig{
			Path:   "/data/inbox",
			SortBy: "type",
		},
		UI: UIConfig{ShowHiddenFiles: true},
	}

	// Save the config
	if err := manager.Save(testConfig); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Fatal("Config file was not created")
	}

	// Load the config
	loadedConfig, err := manager.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// Verify loaded values match saved values (merged with defaults)
	if loadedConfig.Left.Path != "/data/photos" {
		t.Errorf("Expected loaded left path '/data/photos', got '%s'", loadedConfig.Left.Path)
	}
	// duplicate bookmarks survive the round trip
	if len(loadedConfig.Left.Bookmarks) != 2 {
		t.Errorf("Expected 2 bookmarks, got %d", len(loadedConfig.Left.Bookmarks))
	}
	if loadedConfig.Right.SortBy != "type" {
		t.Errorf("Expected loaded right sort 'type', got '%s'", loadedConfig.Right.SortBy)
	}
	// unspecified fields fall back to defaults
	if loadedConfig.Right.SortOrder != "asc" {
		t.Errorf("Expected default right sort order 'asc', got '%s'", loadedConfig.Right.SortOrder)
	}
	if !loadedConfig.UI.ShowHiddenFiles {
		t.Error("Expected loaded ShowHiddenFiles to be true")
	}
}

func TestAddToHistory(t *testing.T) {
	config := getDefaultConfig()
	config.History.MaxEntries = 3

	for _, p := range []string{"/a", "/b", "/c"} {
		config.AddToHistory(p)
	}
	if len(config.History.Entries) != 3 || config.History.Entries[0] != "/c" {
		t.Fatalf("unexpected history: %v", config.History.Entries)
	}

	// revisiting moves the entry to the front without duplicating it
	config.AddToHistory("/a")
	if len(config.History.Entries) != 3 || config.History.Entries[0] != "/a" {
		t.Fatalf("revisit should promote /a: %v", config.History.Entries)
	}

	// exceeding the limit evicts the oldest entry
	config.AddToHistory("/d")
	if len(config.History.Entries) != 3 {
		t.Fatalf("history exceeded max: %v", config.History.Entries)
	}
	for _, p := range config.History.Entries {
		if p == "/b" {
			t.Error("oldest entry /b should have been evicted")
		}
	}
	if _, ok := config.History.LastUsed["/b"]; ok {
		t.Error("evicted entry should leave the LastUsed map")
	}
}

func TestFilterHistory(t *testing.T) {
	config := getDefaultConfig()
	for _, p := range []string{"/home/user/Music", "/home/user/docs", "/var/log"} {
		config.AddToHistory(p)
	}

	got := config.FilterHistory("music")
	if len(got) != 1 || got[0] != "/home/user/Music" {
		t.Errorf("FilterHistory(music) = %v", got)
	}
	if got := config.FilterHistory(""); len(got) != 3 {
		t.Errorf("empty query should return all entries, got %v", got)
	}
}
