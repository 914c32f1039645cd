package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// GeminiConfig holds the AI insight credentials.
type GeminiConfig struct {
	// APIKey authenticates against the Gemini API. Usually supplied via the
	// GEMINI_API_KEY environment variable rather than the file.
	APIKey string `yaml:"api_key"`
	// Model overrides the default generation model.
	Model string `yaml:"model"`
}

// Config is the top-level application configuration.
type Config struct {
	// DBPath is the SQLite database location.
	DBPath string `yaml:"db_path"`

	// TickSeconds is the reminder evaluation cadence. The notification rules
	// assume 60; changing it weakens exact-minute firing.
	TickSeconds int `yaml:"tick_seconds"`

	// SchedulerBuffer sizes the engine's output channel.
	SchedulerBuffer int `yaml:"scheduler_buffer"`

	// DesktopNotifications enables best-effort native alerts alongside the
	// in-app reminder stack.
	DesktopNotifications bool `yaml:"desktop_notifications"`

	Gemini GeminiConfig `yaml:"gemini"`
}

func DefaultConfig() *Config {
	return &Config{
		DBPath:               defaultDBPath(),
		TickSeconds:          60,
		SchedulerBuffer:      64,
		DesktopNotifications: false,
		Gemini:               GeminiConfig{},
	}
}

// Normalize fills missing or nonsensical values with defaults so partially
// filled config files still behave.
func (c *Config) Normalize() {
	if strings.TrimSpace(c.DBPath) == "" {
		c.DBPath = defaultDBPath()
	}
	if c.TickSeconds <= 0 {
		c.TickSeconds = 60
	}
	if c.SchedulerBuffer <= 0 {
		c.SchedulerBuffer = 64
	}
}

func (c *Config) TickInterval() time.Duration {
	return time.Duration(c.TickSeconds) * time.Second
}

// ApplyEnv overlays ZENFLOW_* environment variables on the loaded file. The
// bare GEMINI_API_KEY is honored as a fallback for the key.
func (c *Config) ApplyEnv() {
	if v := strings.TrimSpace(os.Getenv("ZENFLOW_DB_PATH")); v != "" {
		c.DBPath = v
	}
	if v, ok := getEnvInt("ZENFLOW_TICK_SECONDS"); ok && v > 0 {
		c.TickSeconds = v
	}
	if v, ok := getEnvInt("ZENFLOW_SCHEDULER_BUFFER"); ok && v > 0 {
		c.SchedulerBuffer = v
	}
	if v, ok := getEnvBool("ZENFLOW_DESKTOP_NOTIFICATIONS"); ok {
		c.DesktopNotifications = v
	}
	if v := strings.TrimSpace(os.Getenv("ZENFLOW_GEMINI_API_KEY")); v != "" {
		c.Gemini.APIKey = v
	} else if v := strings.TrimSpace(os.Getenv("GEMINI_API_KEY")); v != "" && c.Gemini.APIKey == "" {
		c.Gemini.APIKey = v
	}
	if v := strings.TrimSpace(os.Getenv("ZENFLOW_GEMINI_MODEL")); v != "" {
		c.Gemini.Model = v
	}
}

// Load reads configuration from the given YAML path. A missing file is first
// run: the default config is written with 0600 perms and returned.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config: path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := DefaultConfig()
			if err := Save(path, cfg); err != nil {
				return cfg, err
			}
			return cfg, nil
		}
		return nil, err
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	cfg.Normalize()
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errors.New("config: nil config")
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o600)
}

// DefaultPath is ~/.config/zenflow/config.yaml, or a relative fallback when
// the home directory cannot be resolved.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "zenflow.yaml"
	}
	return filepath.Join(home, ".config", "zenflow", "config.yaml")
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "zenflow.db"
	}
	return filepath.Join(home, ".local", "share", "zenflow", "zenflow.db")
}

func getEnvInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return false, false
	}
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
