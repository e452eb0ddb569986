package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/sift-dev/sift/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "sift.json"

	// DefaultPort is the default inspector server port.
	DefaultPort = 4680

	// DefaultHost is the default inspector server host.
	DefaultHost = "localhost"

	// DefaultSnapshotDir is the default snapshot directory.
	DefaultSnapshotDir = "snapshots"

	// DefaultDebounceMS is the default watcher poll interval in milliseconds.
	DefaultDebounceMS = 100
)

// Config represents the complete sift.json configuration.
type Config struct {
	// Name is the project name.
	Name string `json:"name,omitempty"`

	// Snapshots contains snapshot file configuration.
	Snapshots SnapshotsConfig `json:"snapshots,omitempty"`

	// Serve contains inspector server configuration.
	Serve ServeConfig `json:"serve,omitempty"`

	// Watch contains snapshot watcher configuration.
	Watch WatchConfig `json:"watch,omitempty"`

	// Store contains remote snapshot store configuration.
	Store StoreConfig `json:"store,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// SnapshotsConfig contains snapshot file configuration.
type SnapshotsConfig struct {
	// Dir is the directory holding snapshot files.
	Dir string `json:"dir,omitempty"`

	// Pretty enables indented JSON when writing snapshots.
	Pretty bool `json:"pretty,omitempty"`
}

// ServeConfig contains inspector server configuration.
type ServeConfig struct {
	// Host is the host the inspector binds to.
	Host string `json:"host,omitempty"`

	// Port is the port the inspector binds to.
	Port int `json:"port,omitempty"`
}

// WatchConfig contains snapshot watcher configuration.
type WatchConfig struct {
	// Ignore contains glob patterns the watcher skips.
	Ignore []string `json:"ignore,omitempty"`

	// DebounceMS is the watcher poll interval in milliseconds.
	DebounceMS int `json:"debounceMs,omitempty"`
}

// StoreConfig contains remote S3 snapshot store configuration.
type StoreConfig struct {
	// Bucket is the S3 bucket for shared snapshots.
	Bucket string `json:"bucket,omitempty"`

	// Prefix is the key prefix inside the bucket.
	Prefix string `json:"prefix,omitempty"`

	// Region is the AWS region for the bucket.
	Region string `json:"region,omitempty"`

	// Endpoint overrides the S3 endpoint for compatible services.
	Endpoint string `json:"endpoint,omitempty"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		Snapshots: SnapshotsConfig{
			Dir:    DefaultSnapshotDir,
			Pretty: true,
		},
		Serve: ServeConfig{
			Host: DefaultHost,
			Port: DefaultPort,
		},
		Watch: WatchConfig{
			DebounceMS: DefaultDebounceMS,
		},
	}
}

// Load reads configuration from the specified directory.
// It looks for sift.json in the directory.
func Load(dir string) (*Config, error) {
	configPath := filepath.Join(dir, ConfigFileName)
	return LoadFile(configPath)
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E101").
				WithDetail("No sift.json found in " + filepath.Dir(path)).
				WithSuggestion("Run 'sift init' to set up a project or create sift.json manually")
		}
		return nil, errors.New("E100").Wrap(err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		se := errors.New("E100").
			WithDetail("Failed to parse sift.json: " + err.Error()).
			WithSuggestion("Check that sift.json is valid JSON")
		if syn, ok := err.(*json.SyntaxError); ok {
			line, col := lineColFromOffset(data, syn.Offset)
			se = se.WithLocation(path, line, col)
		}
		return nil, se
	}

	cfg.configPath = path
	cfg.applyDefaults()

	return cfg, nil
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New("E100").Wrap(err)
	}

	// Add newline at end of file
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("E100").Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Snapshots.Dir == "" {
		c.Snapshots.Dir = DefaultSnapshotDir
	}
	if c.Serve.Host == "" {
		c.Serve.Host = DefaultHost
	}
	if c.Serve.Port == 0 {
		c.Serve.Port = DefaultPort
	}
	if c.Watch.DebounceMS == 0 {
		c.Watch.DebounceMS = DefaultDebounceMS
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Serve.Port < 1 || c.Serve.Port > 65535 {
		return errors.New("E102").
			WithDetail("Port must be between 1 and 65535, got " + strconv.Itoa(c.Serve.Port))
	}
	return nil
}

// ServeAddress returns the address string for the inspector server.
func (c *Config) ServeAddress() string {
	return c.Serve.Host + ":" + strconv.Itoa(c.Serve.Port)
}

// ServeURL returns the full URL for the inspector server.
func (c *Config) ServeURL() string {
	return "http://" + c.ServeAddress()
}

// SnapshotsDir returns the absolute path to the snapshot directory.
func (c *Config) SnapshotsDir() string {
	if filepath.IsAbs(c.Snapshots.Dir) {
		return c.Snapshots.Dir
	}
	return filepath.Join(c.Dir(), c.Snapshots.Dir)
}

// DebounceDuration returns the watcher poll interval as a time.Duration.
func (c *Config) DebounceDuration() time.Duration {
	return time.Duration(c.Watch.DebounceMS) * time.Millisecond
}

// Exists reports whether a sift.json exists in the directory.
func Exists(dir string) bool {
	path := filepath.Join(dir, ConfigFileName)
	_, err := os.Stat(path)
	return err == nil
}

// FindProjectRoot walks up directories to find the project root.
// Returns the directory containing sift.json, or an error if not found.
func FindProjectRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		if Exists(dir) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("E101").
				WithDetail("No sift.json found in " + startDir + " or any parent directory").
				WithSuggestion("Run 'sift init' to set up a project")
		}
		dir = parent
	}
}

// LoadFromWorkingDir loads configuration from the current working directory.
func LoadFromWorkingDir() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	root, err := FindProjectRoot(wd)
	if err != nil {
		return nil, err
	}

	return Load(root)
}

// lineColFromOffset converts a byte offset in data to a 1-based line and
// column for error display.
func lineColFromOffset(data []byte, off int64) (int, int) {
	line, col := 1, 1
	for i := int64(0); i < off && i < int64(len(data)); i++ {
		if data[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}
