package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/danmuck/telestamp/internal/protocol/cp56"
	"github.com/joho/godotenv"
)

const (
	DefaultName           = "stampd"
	DefaultAddr           = ":9300"
	DefaultFormat         = "%Y-%m-%d %H:%M:%S.%ms"
	DefaultRenderLocation = "UTC"

	// EnvAuthToken overrides auth_token so secrets can stay in .env.
	EnvAuthToken = "TELESTAMP_AUTH_TOKEN"
)

type StampdConfig struct {
	Name           string   `toml:"name"`
	Addr           string   `toml:"addr"`
	CorsOrigins    []string `toml:"cors_origins"`
	DefaultFormat  string   `toml:"default_format"`
	RenderLocation string   `toml:"render_location"`
	Metrics        bool     `toml:"metrics"`
	AuthToken      string   `toml:"auth_token"`
}

type StampctlConfig struct {
	Format  string `toml:"format"`
	Offset  int    `toml:"offset"`
	Verbose bool   `toml:"verbose"`
}

func DefaultStampdConfig() StampdConfig {
	return StampdConfig{
		Name:           DefaultName,
		Addr:           DefaultAddr,
		DefaultFormat:  DefaultFormat,
		RenderLocation: DefaultRenderLocation,
		Metrics:        true,
	}
}

func DefaultStampctlConfig() StampctlConfig {
	return StampctlConfig{Format: DefaultFormat}
}

func LoadStampdConfig(path string) (StampdConfig, error) {
	cfg := DefaultStampdConfig()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return StampdConfig{}, fmt.Errorf("config load failed (%s): %w", path, err)
	}
	cfg.Name = strings.TrimSpace(cfg.Name)
	cfg.Addr = strings.TrimSpace(cfg.Addr)
	if !meta.IsDefined("name") || cfg.Name == "" {
		cfg.Name = DefaultName
	}
	if !meta.IsDefined("addr") || cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	if !meta.IsDefined("default_format") || cfg.DefaultFormat == "" {
		cfg.DefaultFormat = DefaultFormat
	}
	if v := os.Getenv(EnvAuthToken); v != "" {
		cfg.AuthToken = v
	}
	cfg.AuthToken = strings.TrimSpace(cfg.AuthToken)
	if !meta.IsDefined("render_location") || strings.TrimSpace(cfg.RenderLocation) == "" {
		cfg.RenderLocation = DefaultRenderLocation
	}
	if err := ValidateStampdConfig(cfg); err != nil {
		return StampdConfig{}, err
	}
	return cfg, nil
}

// LoadStampctlConfig reads CLI defaults. A missing file yields the defaults.
func LoadStampctlConfig(path string) (StampctlConfig, error) {
	cfg := DefaultStampctlConfig()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultStampctlConfig(), nil
		}
		return StampctlConfig{}, fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if !meta.IsDefined("format") || cfg.Format == "" {
		cfg.Format = DefaultFormat
	}
	if cfg.Offset < 0 {
		return StampctlConfig{}, fmt.Errorf("stampctl config offset must be >= 0, got %d", cfg.Offset)
	}
	return cfg, nil
}

func ValidateStampdConfig(cfg StampdConfig) error {
	if strings.TrimSpace(cfg.Name) == "" {
		return fmt.Errorf("stampd config missing name")
	}
	if strings.TrimSpace(cfg.Addr) == "" {
		return fmt.Errorf("stampd config missing addr")
	}
	if err := ValidateFormat(cfg.DefaultFormat); err != nil {
		return fmt.Errorf("stampd config default_format: %w", err)
	}
	if _, err := time.LoadLocation(cfg.RenderLocation); err != nil {
		return fmt.Errorf("stampd config render_location: %w", err)
	}
	return nil
}

func ValidateFormat(format string) error {
	if strings.TrimSpace(format) == "" {
		return fmt.Errorf("format is empty")
	}
	return cp56.CheckFormat(format)
}

// LoadEnvFile loads the given .env files, or ./.env when none are named.
// Files that do not exist are skipped.
func LoadEnvFile(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("env load failed (%s): %w", p, err)
		}
	}
	return nil
}
