package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"dpfm/internal/constants"
)

// Config represents the application configuration
type Config struct {
	Left    PaneConfig    `json:"left"`
	Right   PaneConfig    `json:"right"`
	UI      UIConfig      `json:"ui"`
	Preview PreviewConfig `json:"preview"`
	History HistoryConfig `json:"history"`
}

// PaneConfig holds the persisted state of one pane
type PaneConfig struct {
	Path      string   `json:"path"`      // last visited directory
	SortBy    string   `json:"sortBy"`    // "name", "size", "type", "date"
	SortOrder string   `json:"sortOrder"` // "asc", "desc"
	ViewMode  string   `json:"viewMode"`  // "icon", "list", "thumbnail"
	Bookmarks []string `json:"bookmarks"`
}

// UIConfig represents settings shared by both panes
type UIConfig struct {
	ShowHiddenFiles bool `json:"showHiddenFiles"`
}

// PreviewConfig tunes thumbnail and preview generation
type PreviewConfig struct {
	ThumbnailSize     int     `json:"thumbnailSize"`
	Workers           int     `json:"workers"`
	TextMaxChars      int     `json:"textMaxChars"`
	ArchiveMaxEntries int     `json:"archiveMaxEntries"`
	VideoScanFrames   int     `json:"videoScanFrames"`
	VideoMinMean      float64 `json:"videoMinMean"`
	VideoMinStdDev    float64 `json:"videoMinStdDev"`
}

// HistoryConfig represents persisted visited-directory history
type HistoryConfig struct {
	MaxEntries int                  `json:"maxEntries"` // Maximum number of paths to remember
	Entries    []string             `json:"entries"`    // Path history (newest first)
	LastUsed   map[string]time.Time `json:"lastUsed"`   // LRU management
}

// Manager provides configuration management functionality
type Manager struct {
	configPath string
}

// NewManager creates a new configuration manager
func NewManager() *Manager {
	return &Manager{
		configPath: getConfigPath(),
	}
}

// Load loads configuration from file and merges with defaults
func (m *Manager) Load() (*Config, error) {
	// Start with default configuration
	config := getDefaultConfig()

	data, err := os.ReadFile(m.configPath)
	if err != nil {
		log.Printf("Config file not found, using defaults: %v", err)
		return config, nil
	}

	// Parse config file into a temporary config
	var fileConfig Config
	if err := json.Unmarshal(data, &fileConfig); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	// Merge file config with defaults
	mergeConfigs(config, &fileConfig)
	return config, nil
}

// Save saves configuration to file
func (m *Manager) Save(config *Config) error {
	// Create the config directory if it doesn't exist
	configDir := filepath.Dir(m.configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}

	if err := os.WriteFile(m.configPath, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}

// getDefaultConfig returns the default configuration
func getDefaultConfig() *Config {
	pane := PaneConfig{
		SortBy:    constants.DefaultSortBy,
		SortOrder: constants.DefaultSortOrder,
		ViewMode:  constants.DefaultViewMode,
		Bookmarks: make([]string, 0),
	}
	return &Config{
		Left:  pane,
		Right: pane,
		UI: UIConfig{
			ShowHiddenFiles: constants.DefaultShowHiddenFiles,
		},
		Preview: PreviewConfig{
			ThumbnailSize:     constants.DefaultThumbnailSize,
			Workers:           constants.PreviewWorkers,
			TextMaxChars:      constants.TextPreviewMaxChars,
			ArchiveMaxEntries: constants.ArchivePreviewMaxEntries,
			VideoScanFrames:   constants.VideoScanFrameLimit,
			VideoMinMean:      constants.VideoMinMeanIntensity,
			VideoMinStdDev:    constants.VideoMinStdDev,
		},
		History: HistoryConfig{
			MaxEntries: 50,
			Entries:    make([]string, 0),
			LastUsed:   make(map[string]time.Time),
		},
	}
}

// getConfigPath returns the path to the configuration file following OS conventions
func getConfigPath() string {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		// Windows: %APPDATA%\dpfm\config.json
		appData := os.Getenv("APPDATA")
		if appData == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "config.json"
			}
			appData = filepath.Join(home, "AppData", "Roaming")
		}
		configDir = filepath.Join(appData, "dpfm")

	case "darwin":
		// macOS: ~/Library/Application Support/dpfm/config.json
		home, err := os.UserHomeDir()
		if err != nil {
			return "config.json"
		}
		configDir = filepath.Join(home, "Library", "Application Support", "dpfm")

	default:
		// Linux/Unix: $XDG_CONFIG_HOME/dpfm/config.json or ~/.config/dpfm/config.json
		xdgConfigHome := os.Getenv("XDG_CONFIG_HOME")
		if xdgConfigHome == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "config.json"
			}
			xdgConfigHome = filepath.Join(home, ".config")
		}
		configDir = filepath.Join(xdgConfigHome, "dpfm")
	}

	return filepath.Join(configDir, "config.json")
}

// mergeConfigs merges file config values into default config
func mergeConfigs(defaultConfig *Config, fileConfig *Config) {
	mergePane(&defaultConfig.Left, &fileConfig.Left)
	mergePane(&defaultConfig.Right, &fileConfig.Right)

	// Note: for bool values, we can't distinguish between false and unset, so we always use file value
	defaultConfig.UI.ShowHiddenFiles = fileConfig.UI.ShowHiddenFiles

	if fileConfig.Preview.ThumbnailSize != 0 {
		defaultConfig.Preview.ThumbnailSize = fileConfig.Preview.ThumbnailSize
	}
	if fileConfig.Preview.Workers != 0 {
		defaultConfig.Preview.Workers = fileConfig.Preview.Workers
	}
	if fileConfig.Preview.TextMaxChars != 0 {
		defaultConfig.Preview.TextMaxChars = fileConfig.Preview.TextMaxChars
	}
	if fileConfig.Preview.ArchiveMaxEntries != 0 {
		defaultConfig.Preview.ArchiveMaxEntries = fileConfig.Preview.ArchiveMaxEntries
	}
	if fileConfig.Preview.VideoScanFrames != 0 {
		defaultConfig.Preview.VideoScanFrames = fileConfig.Preview.VideoScanFrames
	}
	if fileConfig.Preview.VideoMinMean != 0 {
		defaultConfig.Preview.VideoMinMean = fileConfig.Preview.VideoMinMean
	}
	if fileConfig.Preview.VideoMinStdDev != 0 {
		defaultConfig.Preview.VideoMinStdDev = fileConfig.Preview.VideoMinStdDev
	}

	if fileConfig.History.MaxEntries != 0 {
		defaultConfig.History.MaxEntries = fileConfig.History.MaxEntries
	}
	if fileConfig.History.Entries != nil {
		defaultConfig.History.Entries = fileConfig.History.Entries
	}
	if fileConfig.History.LastUsed != nil {
		defaultConfig.History.LastUsed = fileConfig.History.LastUsed
	}
}

func mergePane(def *PaneConfig, file *PaneConfig) {
	if file.Path != "" {
		def.Path = file.Path
	}
	if file.SortBy != "" {
		def.SortBy = file.SortBy
	}
	if file.SortOrder != "" {
		def.SortOrder = file.SortOrder
	}
	if file.ViewMode != "" {
		def.ViewMode = file.ViewMode
	}
	if file.Bookmarks != nil {
		def.Bookmarks = file.Bookmarks
	}
}

// AddToHistory adds a path to the visited-directory history
func (c *Config) AddToHistory(path string) {
	now := time.Now()

	// Remove existing entry if it exists
	for i, entry := range c.History.Entries {
		if entry == path {
			c.History.Entries = append(
				c.History.Entries[:i],
				c.History.Entries[i+1:]...,
			)
			break
		}
	}

	// Add to beginning of slice (newest first)
	c.History.Entries = append([]string{path}, c.History.Entries...)

	// Update last used time
	c.History.LastUsed[path] = now

	// Enforce max entries limit
	if len(c.History.Entries) > c.History.MaxEntries {
		// Remove oldest entry
		oldestPath := c.History.Entries[c.History.MaxEntries]
		c.History.Entries = c.History.Entries[:c.History.MaxEntries]
		delete(c.History.LastUsed, oldestPath)
	}
}

// FilterHistory filters history entries by query (case-insensitive partial match)
func (c *Config) FilterHistory(query string) []string {
	if query == "" {
		return c.History.Entries
	}

	query = strings.ToLower(query)
	var filtered []string

	for _, path := range c.History.Entries {
		if strings.Contains(strings.ToLower(path), query) {
			filtered = append(filtered, path)
		}
	}

	return filtered
}
