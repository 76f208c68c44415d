package file

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config is the full lexfeed configuration.
type Config struct {
	Staging   StagingConfig   `toml:"staging"`
	Ingest    IngestConfig    `toml:"ingest"`
	Scheduler SchedulerConfig `toml:"scheduler"`
}

// StagingConfig locates the filesystem roots the pipeline moves files
// between.
type StagingConfig struct {
	Root           string `toml:"root"`
	ArchiveRoot    string `toml:"archive_root"`
	QuarantineRoot string `toml:"quarantine_root"`
	DataDir        string `toml:"data_dir"`
}

// IngestConfig tunes the worker pool and retry behaviour.
type IngestConfig struct {
	Workers                int `toml:"workers"`
	ArtifactTimeoutSeconds int `toml:"artifact_timeout_seconds"`
	PersistRetryAttempts   int `toml:"persist_retry_attempts"`
}

// SchedulerConfig controls periodic background ingestion.
type SchedulerConfig struct {
	Enabled         bool `toml:"enabled"`
	IntervalMinutes int  `toml:"interval_minutes"`
}

// ArtifactTimeout returns the per-artifact processing deadline.
func (c IngestConfig) ArtifactTimeout() time.Duration {
	return time.Duration(c.ArtifactTimeoutSeconds) * time.Second
}

// Interval returns the scheduler tick interval.
func (c SchedulerConfig) Interval() time.Duration {
	return time.Duration(c.IntervalMinutes) * time.Minute
}

// DefaultConfig returns the configuration used when no file exists. Paths
// are resolved relative to baseDir.
func DefaultConfig(baseDir string) Config {
	return Config{
		Staging: StagingConfig{
			Root:           filepath.Join(baseDir, "staging"),
			ArchiveRoot:    filepath.Join(baseDir, "archive"),
			QuarantineRoot: filepath.Join(baseDir, "quarantine"),
			DataDir:        filepath.Join(baseDir, "data"),
		},
		Ingest: IngestConfig{
			Workers:                4,
			ArtifactTimeoutSeconds: 30,
			PersistRetryAttempts:   3,
		},
		Scheduler: SchedulerConfig{
			Enabled:         false,
			IntervalMinutes: 15,
		},
	}
}

// ConfigStore is a file-based configuration store using TOML.
type ConfigStore struct {
	mu       sync.RWMutex
	filePath string
	config   Config
}

// NewConfigStore creates a TOML config store rooted at configDir.
// If configDir is empty, defaults to ~/.lexfeed.
func NewConfigStore(configDir string) (*ConfigStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		configDir = filepath.Join(home, ".lexfeed")
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, fmt.Errorf("creating config directory: %w", err)
	}

	s := &ConfigStore{
		filePath: filepath.Join(configDir, "config.toml"),
		config:   DefaultConfig(configDir),
	}

	if err := s.Load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Config returns a copy of the current configuration.
func (s *ConfigStore) Config() Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.config
}

// Update applies fn to the configuration and persists the result.
func (s *ConfigStore) Update(fn func(*Config)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.config)
	return s.save()
}

// Save persists the current configuration to disk.
func (s *ConfigStore) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save()
}

// save writes configuration to the TOML file (caller must hold lock).
func (s *ConfigStore) save() error {
	data, err := toml.Marshal(s.config)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return os.WriteFile(s.filePath, data, 0600)
}

// Load reads configuration from the TOML file. A missing file keeps the
// defaults; set keys override them, unset keys keep their default value.
func (s *ConfigStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &s.config); err != nil {
		return fmt.Errorf("parsing config: %w", err)
	}
	return nil
}

// Path returns the configuration file path.
func (s *ConfigStore) Path() string {
	return s.filePath
}
