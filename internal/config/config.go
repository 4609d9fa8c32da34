// Package config は環境変数と .env ファイルから photokit の設定を読み込みます。
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// ErrMissingAPIKey は GEMINI_API_KEY が設定されていない場合に返されます。
var ErrMissingAPIKey = errors.New("GEMINI_API_KEY is required")

// Config holds the environment driven configuration for photokit.
type Config struct {
	// Gemini
	APIKey         string        `env:"GEMINI_API_KEY"`
	Model          string        `env:"PHOTOKIT_MODEL" envDefault:"gemini-2.5-flash-image-preview"`
	RequestTimeout time.Duration `env:"PHOTOKIT_REQUEST_TIMEOUT" envDefault:"120s"`
	MaxImages      int           `env:"PHOTOKIT_MAX_IMAGES" envDefault:"10"`

	// Input images
	FetchTimeout   time.Duration `env:"PHOTOKIT_FETCH_TIMEOUT" envDefault:"30s"`
	MaxInputBytes  int64         `env:"PHOTOKIT_MAX_INPUT_BYTES" envDefault:"20971520"`
	CompressInputs bool          `env:"PHOTOKIT_COMPRESS_INPUTS" envDefault:"false"`
	JPEGQuality    int           `env:"PHOTOKIT_JPEG_QUALITY" envDefault:"75"`

	// Output / server
	OutputDir  string `env:"PHOTOKIT_OUTPUT_DIR" envDefault:"."`
	ListenAddr string `env:"PHOTOKIT_LISTEN_ADDR" envDefault:":8080"`

	// Logging
	LogLevel  string `env:"PHOTOKIT_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"PHOTOKIT_LOG_FORMAT" envDefault:"text"` // "text" or "json"
}

// Load は .env を読み込んだうえで環境変数を Config に変換します。
// APIキーの有無は検証しません。生成を行う処理の直前で RequireAPIKey を呼び出してください。
func Load() (*Config, error) {
	loadEnvFiles(".env")

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env config: %w", err)
	}

	cfg.APIKey = strings.TrimSpace(cfg.APIKey)
	cfg.Model = strings.TrimSpace(cfg.Model)
	if cfg.MaxImages <= 0 {
		return nil, fmt.Errorf("PHOTOKIT_MAX_IMAGES must be positive: %d", cfg.MaxImages)
	}
	if cfg.MaxInputBytes <= 0 {
		cfg.MaxInputBytes = 20 * 1024 * 1024
	}
	if cfg.JPEGQuality < 1 || cfg.JPEGQuality > 100 {
		return nil, fmt.Errorf("PHOTOKIT_JPEG_QUALITY must be between 1 and 100: %d", cfg.JPEGQuality)
	}
	if _, err := cfg.SlogLevel(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// RequireAPIKey は APIキーが設定されていることを確認します。
func (c *Config) RequireAPIKey() error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	return nil
}

// SlogLevel は LogLevel を slog.Level に変換します。
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid PHOTOKIT_LOG_LEVEL %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// IsJSONLog returns true if JSON log output is configured.
func (c *Config) IsJSONLog() bool {
	return strings.EqualFold(strings.TrimSpace(c.LogFormat), "json")
}

// loadEnvFiles は存在する .env ファイルのみを読み込みます。既存の環境変数は上書きしません。
func loadEnvFiles(paths ...string) {
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to load %s: %v\n", path, err)
		}
	}
}
