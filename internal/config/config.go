package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	API     APIConfig     `yaml:"api"`
	Session SessionConfig `yaml:"session"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
}

// APIConfig holds word-list service settings.
type APIConfig struct {
	BaseURL            string        `yaml:"base_url"             env:"KNOWNWORDS_API_URL"              env-default:"https://api.openrussian.org/api"`
	Language           string        `yaml:"language"             env:"KNOWNWORDS_LANGUAGE"             env-default:"en"`
	Timeout            time.Duration `yaml:"timeout"              env:"KNOWNWORDS_API_TIMEOUT"          env-default:"10s"`
	MaxConcurrentPages int           `yaml:"max_concurrent_pages" env:"KNOWNWORDS_MAX_CONCURRENT_PAGES" env-default:"4"`
	Retry              RetryConfig   `yaml:"retry"`
}

// RetryConfig holds page request retry settings.
type RetryConfig struct {
	MaxAttempts int           `yaml:"max_attempts" env:"KNOWNWORDS_RETRY_ATTEMPTS"     env-default:"3"`
	InitialWait time.Duration `yaml:"initial_wait" env:"KNOWNWORDS_RETRY_INITIAL_WAIT" env-default:"500ms"`
	MaxWait     time.Duration `yaml:"max_wait"     env:"KNOWNWORDS_RETRY_MAX_WAIT"     env-default:"5s"`
}

// SessionConfig holds session behavior settings.
type SessionConfig struct {
	Levels         []string      `yaml:"levels"          env:"KNOWNWORDS_LEVELS"          env-default:"A1,A2,B1,B2,C1,C2" env-separator:","`
	DecisionDelay  time.Duration `yaml:"decision_delay"  env:"KNOWNWORDS_DECISION_DELAY"  env-default:"300ms"`
	SettleDelay    time.Duration `yaml:"settle_delay"    env:"KNOWNWORDS_SETTLE_DELAY"    env-default:"500ms"`
	PreviewLimit   int           `yaml:"preview_limit"   env:"KNOWNWORDS_PREVIEW_LIMIT"   env-default:"10"`
	RedrawInterval time.Duration `yaml:"redraw_interval" env:"KNOWNWORDS_REDRAW_INTERVAL" env-default:"100ms"`
}

// StorageConfig holds file locations. Empty paths resolve to XDG defaults.
type StorageConfig struct {
	SaveFile string `yaml:"save_file" env:"KNOWNWORDS_SAVE_FILE" env-default:"./known_words.json"`
	DBPath   string `yaml:"db_path"   env:"KNOWNWORDS_DB"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level" env:"KNOWNWORDS_LOG_LEVEL" env-default:"info"`
	File  string `yaml:"file"  env:"KNOWNWORDS_LOG_FILE"`
}
