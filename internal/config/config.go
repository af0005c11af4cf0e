package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// DocStoreConfig holds connection details for the document store's query
// API.
type DocStoreConfig struct {
	URL         string  `yaml:"url"`
	Database    string  `yaml:"database"`
	APIKeyEnv   string  `yaml:"api_key_env"`
	TimeoutSecs int     `yaml:"timeout_secs"`
	Similarity  float64 `yaml:"similarity"`
}

// AgentConfig configures the shopping agent.
type AgentConfig struct {
	CustomerName string `yaml:"customer_name"`
	ReplyDelayMs int    `yaml:"reply_delay_ms"`
}

// SummaryConfig configures the local ticket-summary fallback.
type SummaryConfig struct {
	MaxSentences int `yaml:"max_sentences"`
}

// LogConfig selects the log file and level. Logs go to a file because
// stdout belongs to the terminal UI.
type LogConfig struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	DocStore DocStoreConfig `yaml:"docstore"`
	Agent    AgentConfig    `yaml:"agent"`
	Summary  SummaryConfig  `yaml:"summary"`
	Log      LogConfig      `yaml:"log"`
}

// envOverrides are applied on top of the file config; set
// SHOPDESK_DOCSTORE_URL etc. to override without editing YAML.
type envOverrides struct {
	DocstoreURL      string `envconfig:"DOCSTORE_URL"`
	DocstoreDatabase string `envconfig:"DOCSTORE_DATABASE"`
	LogLevel         string `envconfig:"LOG_LEVEL"`
	LogFile          string `envconfig:"LOG_FILE"`
}

// Load reads a config from a specified path. If the file does not exist,
// returns defaults. Environment overrides apply either way.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := defaultConfig()
			return cfg, applyEnvOverrides(cfg)
		}
		return nil, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	applyConfigDefaults(&cfg)
	return &cfg, applyEnvOverrides(&cfg)
}

// LoadDefault tries ./config.yaml first, then
// ~/.config/shopdesk/config.yaml. If neither exists, it writes defaults
// to the user path and returns them.
func LoadDefault() (*AppConfig, string, error) {
	cwdPath := "config.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := defaultUserConfigPath()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(userPath); err == nil {
		cfg, err := Load(userPath)
		return cfg, userPath, err
	}
	cfg := defaultConfig()
	if err := Save(userPath, cfg); err != nil {
		return nil, "", err
	}
	return cfg, userPath, applyEnvOverrides(cfg)
}

// Save writes the config to the given path, creating directories as
// needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "shopdesk", "config.yaml"), nil
}

func defaultConfig() *AppConfig {
	return &AppConfig{
		DocStore: DocStoreConfig{
			URL:         "http://127.0.0.1:8080",
			Database:    "genai",
			APIKeyEnv:   "DOCSTORE_API_KEY",
			TimeoutSecs: 15,
			Similarity:  0.6,
		},
		Agent:   AgentConfig{CustomerName: "Current User", ReplyDelayMs: 600},
		Summary: SummaryConfig{MaxSentences: 2},
		Log:     LogConfig{File: "shopdesk.log", Level: "info"},
	}
}

func applyConfigDefaults(cfg *AppConfig) {
	def := defaultConfig()
	if cfg.DocStore.URL == "" {
		cfg.DocStore.URL = def.DocStore.URL
	}
	if cfg.DocStore.Database == "" {
		cfg.DocStore.Database = def.DocStore.Database
	}
	if cfg.DocStore.APIKeyEnv == "" {
		cfg.DocStore.APIKeyEnv = def.DocStore.APIKeyEnv
	}
	if cfg.DocStore.TimeoutSecs == 0 {
		cfg.DocStore.TimeoutSecs = def.DocStore.TimeoutSecs
	}
	if cfg.DocStore.Similarity == 0 {
		cfg.DocStore.Similarity = def.DocStore.Similarity
	}
	if cfg.Agent.CustomerName == "" {
		cfg.Agent.CustomerName = def.Agent.CustomerName
	}
	if cfg.Agent.ReplyDelayMs == 0 {
		cfg.Agent.ReplyDelayMs = def.Agent.ReplyDelayMs
	}
	if cfg.Summary.MaxSentences == 0 {
		cfg.Summary.MaxSentences = def.Summary.MaxSentences
	}
	if cfg.Log.File == "" {
		cfg.Log.File = def.Log.File
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = def.Log.Level
	}
}

func applyEnvOverrides(cfg *AppConfig) error {
	var env envOverrides
	if err := envconfig.Process("shopdesk", &env); err != nil {
		return err
	}
	if env.DocstoreURL != "" {
		cfg.DocStore.URL = env.DocstoreURL
	}
	if env.DocstoreDatabase != "" {
		cfg.DocStore.Database = env.DocstoreDatabase
	}
	if env.LogLevel != "" {
		cfg.Log.Level = env.LogLevel
	}
	if env.LogFile != "" {
		cfg.Log.File = env.LogFile
	}
	return nil
}
