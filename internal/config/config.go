// File: internal/config/config.go
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type RuntimeConfig struct {
	Dev bool
}

type ServerConfig struct {
	Port   int    `yaml:"port"`
	APIKey string `yaml:"api_key"` // bearer key for resource administration
}

type LogConfig struct {
	Level    string `yaml:"level"`    // trace|debug|info|warn|error
	Format   string `yaml:"format"`   // json|console
	Sampling bool   `yaml:"sampling"` // enable sampling in prod
}

type DatabaseConfig struct {
	URL string `yaml:"url"`
}

type RedisConfig struct {
	URL      string        `yaml:"url"`
	Password string        `yaml:"password"`
	DB       int           `yaml:"db"`
	TTL      time.Duration `yaml:"ttl"`
}

type AIConfig struct {
	GeminiKey       string `yaml:"gemini_key"`
	OpenAIKey       string `yaml:"openai_key"`
	OpenAIBaseURL   string `yaml:"openai_base_url"`
	DefaultModel    string `yaml:"default_model"`
	ConcurrentLimit int    `yaml:"concurrent_limit"` // max concurrent AI calls
}

type ChatConfig struct {
	CacheEnabled     bool          `yaml:"cache_enabled"`
	CacheTTL         time.Duration `yaml:"cache_ttl"`
	CacheSize        int           `yaml:"cache_size"`
	MaxRequestsDaily int           `yaml:"max_requests_per_day"`
	MaxRequestsMin   int           `yaml:"max_requests_per_minute"`
}

type SentimentConfig struct {
	CloudEnabled bool `yaml:"cloud_enabled"`
	DailyCap     int  `yaml:"daily_cap"`
}

type TranslationConfig struct {
	Enabled  bool `yaml:"enabled"`
	MaxChars int  `yaml:"max_chars"`
}

type SecurityConfig struct {
	// EncryptionKey enables at-rest encryption of journal content when set.
	// Must be 16, 24, or 32 bytes.
	EncryptionKey string `yaml:"encryption_key"`
}

type RetentionConfig struct {
	SessionIdle   time.Duration `yaml:"session_idle"`
	SweepInterval time.Duration `yaml:"sweep_interval"`
}

type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Log         LogConfig         `yaml:"log"`
	Database    DatabaseConfig    `yaml:"database"`
	Redis       RedisConfig       `yaml:"redis"`
	AI          AIConfig          `yaml:"ai"`
	Chat        ChatConfig        `yaml:"chat"`
	Sentiment   SentimentConfig   `yaml:"sentiment"`
	Translation TranslationConfig `yaml:"translation"`
	Security    SecurityConfig    `yaml:"security"`
	Retention   RetentionConfig   `yaml:"retention"`

	Runtime RuntimeConfig `yaml:"-"`
}

func LoadConfig() (*Config, error) {
	var configPath string = ""
	var dev bool
	flag.StringVar(&configPath, "config", "config.yaml", "path to config yaml")
	flag.BoolVar(&dev, "dev", false, "development mode")
	flag.Parse()

	b, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	// defaults
	if cfg.Server.Port <= 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "json"
	}
	if cfg.AI.ConcurrentLimit <= 0 {
		cfg.AI.ConcurrentLimit = 16
	}
	if cfg.AI.DefaultModel == "" {
		cfg.AI.DefaultModel = "gemini-2.0-flash"
	}
	cfg.Redis.TTL = normalizeTTL(cfg.Redis.TTL)

	if cfg.Chat.CacheTTL <= 0 {
		cfg.Chat.CacheTTL = 5 * time.Minute
	}
	if cfg.Chat.CacheSize <= 0 {
		cfg.Chat.CacheSize = 100
	}
	if cfg.Chat.MaxRequestsDaily <= 0 {
		cfg.Chat.MaxRequestsDaily = 1000
	}
	if cfg.Chat.MaxRequestsMin <= 0 {
		cfg.Chat.MaxRequestsMin = 50
	}
	if cfg.Sentiment.DailyCap <= 0 {
		cfg.Sentiment.DailyCap = 4000
	}
	if cfg.Translation.MaxChars <= 0 {
		cfg.Translation.MaxChars = 5000
	}
	if cfg.Retention.SessionIdle <= 0 {
		cfg.Retention.SessionIdle = 30 * 24 * time.Hour
	}
	if cfg.Retention.SweepInterval <= 0 {
		cfg.Retention.SweepInterval = time.Hour
	}

	// Minimal validation
	if cfg.Database.URL == "" {
		return nil, errors.New("database.url is required")
	}
	if !dev && cfg.AI.GeminiKey == "" && cfg.AI.OpenAIKey == "" {
		return nil, errors.New("at least one of ai.gemini_key or ai.openai_key is required")
	}

	cfg.Runtime.Dev = dev
	return &cfg, nil
}

func normalizeTTL(d time.Duration) time.Duration {
	if d <= 0 {
		return time.Hour
	}
	return d
}
