package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.Serve.Port != DefaultPort {
		t.Errorf("Serve.Port = %d, want %d", cfg.Serve.Port, DefaultPort)
	}
	if cfg.Serve.Host != DefaultHost {
		t.Errorf("Serve.Host = %q, want %q", cfg.Serve.Host, DefaultHost)
	}
	if cfg.Snapshots.Dir != DefaultSnapshotDir {
		t.Errorf("Snapshots.Dir = %q, want %q", cfg.Snapshots.Dir, DefaultSnapshotDir)
	}
	if cfg.Watch.DebounceMS != DefaultDebounceMS {
		t.Errorf("Watch.DebounceMS = %d, want %d", cfg.Watch.DebounceMS, DefaultDebounceMS)
	}
}

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()

	// Test loading non-existent config
	_, err := Load(tmpDir)
	if err == nil {
		t.Error("Expected error for missing config")
	}

	// Create a config file
	configPath := filepath.Join(tmpDir, ConfigFileName)
	configJSON := `{
  "name": "myapp",
  "snapshots": {
    "dir": "renders",
    "pretty": false
  },
  "serve": {
    "port": 8080,
    "host": "0.0.0.0"
  },
  "watch": {
    "ignore": ["*.bak"],
    "debounceMs": 250
  },
  "store": {
    "bucket": "team-snapshots",
    "prefix": "myapp/",
    "region": "eu-west-1"
  }
}
`
	if err := os.WriteFile(configPath, []byte(configJSON), 0644); err != nil {
		t.Fatal(err)
	}

	// Load the config
	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Name != "myapp" {
		t.Errorf("Name = %q, want %q", cfg.Name, "myapp")
	}
	if cfg.Serve.Port != 8080 {
		t.Errorf("Serve.Port = %d, want %d", cfg.Serve.Port, 8080)
	}
	if cfg.Serve.Host != "0.0.0.0" {
		t.Errorf("Serve.Host = %q, want %q", cfg.Serve.Host, "0.0.0.0")
	}
	if cfg.Snapshots.Dir != "renders" {
		t.Errorf("Snapshots.Dir = %q, want %q", cfg.Snapshots.Dir, "renders")
	}
	if cfg.Watch.DebounceMS != 250 {
		t.Errorf("Watch.DebounceMS = %d, want %d", cfg.Watch.DebounceMS, 250)
	}
	if len(cfg.Watch.Ignore) != 1 || cfg.Watch.Ignore[0] != "*.bak" {
		t.Errorf("Watch.Ignore = %v, want [*.bak]", cfg.Watch.Ignore)
	}
	if cfg.Store.Bucket != "team-snapshots" {
		t.Errorf("Store.Bucket = %q, want %q", cfg.Store.Bucket, "team-snapshots")
	}
	if cfg.Store.Region != "eu-west-1" {
		t.Errorf("Store.Region = %q, want %q", cfg.Store.Region, "eu-west-1")
	}
}

func TestLoad_AppliesDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, ConfigFileName)

	if err := os.WriteFile(configPath, []byte(`{"name": "sparse"}`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Serve.Port != DefaultPort {
		t.Errorf("Serve.Port = %d, want default %d", cfg.Serve.Port, DefaultPort)
	}
	if cfg.Snapshots.Dir != DefaultSnapshotDir {
		t.Errorf("Snapshots.Dir = %q, want default %q", cfg.Snapshots.Dir, DefaultSnapshotDir)
	}
}

func TestLoadFile_InvalidJSON(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, ConfigFileName)

	// Write invalid JSON
	if err := os.WriteFile(configPath, []byte("{\n  \"name\": oops\n}"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadFile(configPath)
	if err == nil {
		t.Fatal("Expected error for invalid JSON")
	}
	if !strings.Contains(err.Error(), "E100") {
		t.Errorf("error = %v, want E100", err)
	}
}

func TestLoadFile_MissingReportsE101(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), ConfigFileName))
	if err == nil {
		t.Fatal("Expected error for missing config")
	}
	if !strings.Contains(err.Error(), "E101") {
		t.Errorf("error = %v, want E101", err)
	}
}

func TestSave(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, ConfigFileName)

	cfg := New()
	cfg.Name = "saved"
	cfg.Serve.Port = 9999

	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatalf("SaveTo error: %v", err)
	}

	loaded, err := LoadFile(configPath)
	if err != nil {
		t.Fatalf("LoadFile error: %v", err)
	}
	if loaded.Name != "saved" {
		t.Errorf("Name = %q, want %q", loaded.Name, "saved")
	}
	if loaded.Serve.Port != 9999 {
		t.Errorf("Serve.Port = %d, want %d", loaded.Serve.Port, 9999)
	}

	// Save without a path set
	if err := New().Save(); err == nil {
		t.Error("Save without a config path should fail")
	}
}

func TestValidate(t *testing.T) {
	cfg := New()
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config failed validation: %v", err)
	}

	cfg.Serve.Port = 99999
	err := cfg.Validate()
	if err == nil {
		t.Fatal("out-of-range port passed validation")
	}
	if !strings.Contains(err.Error(), "E102") {
		t.Errorf("error = %v, want E102", err)
	}
}

func TestServeAddress(t *testing.T) {
	cfg := New()
	cfg.Serve.Host = "0.0.0.0"
	cfg.Serve.Port = 8080

	if got := cfg.ServeAddress(); got != "0.0.0.0:8080" {
		t.Errorf("ServeAddress = %q, want %q", got, "0.0.0.0:8080")
	}
	if got := cfg.ServeURL(); got != "http://0.0.0.0:8080" {
		t.Errorf("ServeURL = %q, want %q", got, "http://0.0.0.0:8080")
	}
}

func TestSnapshotsDir(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, ConfigFileName)

	cfg := New()
	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatalf("SaveTo error: %v", err)
	}

	want := filepath.Join(tmpDir, DefaultSnapshotDir)
	if got := cfg.SnapshotsDir(); got != want {
		t.Errorf("SnapshotsDir = %q, want %q", got, want)
	}

	cfg.Snapshots.Dir = "/abs/snapshots"
	if got := cfg.SnapshotsDir(); got != "/abs/snapshots" {
		t.Errorf("SnapshotsDir = %q, want the absolute path back", got)
	}
}

func TestDebounceDuration(t *testing.T) {
	cfg := New()
	cfg.Watch.DebounceMS = 250

	if got := cfg.DebounceDuration(); got != 250*time.Millisecond {
		t.Errorf("DebounceDuration = %v, want 250ms", got)
	}
}

func TestFindProjectRoot(t *testing.T) {
	tmpDir := t.TempDir()
	nested := filepath.Join(tmpDir, "a", "b", "c")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}

	configPath := filepath.Join(tmpDir, ConfigFileName)
	if err := os.WriteFile(configPath, []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}

	root, err := FindProjectRoot(nested)
	if err != nil {
		t.Fatalf("FindProjectRoot error: %v", err)
	}
	if root != tmpDir {
		t.Errorf("FindProjectRoot = %q, want %q", root, tmpDir)
	}
}

func TestFindProjectRoot_NotFound(t *testing.T) {
	tmpDir := t.TempDir()

	_, err := FindProjectRoot(tmpDir)
	if err == nil {
		t.Skip("a parent directory carries a sift.json")
	}
	if !strings.Contains(err.Error(), "E101") {
		t.Errorf("error = %v, want E101", err)
	}
}

func TestLineColFromOffset(t *testing.T) {
	data := []byte("{\n  \"name\": oops\n}")

	line, col := lineColFromOffset(data, 12)
	if line != 2 {
		t.Errorf("line = %d, want 2", line)
	}
	if col < 1 {
		t.Errorf("col = %d, want >= 1", col)
	}

	line, col = lineColFromOffset(data, 0)
	if line != 1 || col != 1 {
		t.Errorf("offset 0 = %d:%d, want 1:1", line, col)
	}
}

func TestExists(t *testing.T) {
	tmpDir := t.TempDir()

	if Exists(tmpDir) {
		t.Error("Exists = true for an empty directory")
	}

	if err := os.WriteFile(filepath.Join(tmpDir, ConfigFileName), []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}
	if !Exists(tmpDir) {
		t.Error("Exists = false after writing sift.json")
	}
}
