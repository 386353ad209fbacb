// Package config loads the runtime settings of the payroll tool from an
// optional YAML file, a .env file and the environment, in that order of
// increasing precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/orayew2002/rast-payroll/domain"
	"gopkg.in/yaml.v3"
)

// Config is the whole runtime configuration.
type Config struct {
	Store   StoreConfig   `yaml:"store"`
	Window  WindowConfig  `yaml:"window"`
	Server  ServerConfig  `yaml:"server"`
	Payment PaymentConfig `yaml:"payment"`
}

// StoreConfig locates the SQLite database.
type StoreConfig struct {
	Path string `yaml:"path"`
}

// WindowConfig fixes the processing window. Both dates are YYYY-MM-DD and
// must be set together; when neither is set the window is derived from the
// uploads.
type WindowConfig struct {
	StartRaw string `yaml:"start"`
	EndRaw   string `yaml:"end"`

	Window *domain.Window `yaml:"-"`
}

// ServerConfig configures the HTTP adapter.
type ServerConfig struct {
	ListenAddr string `yaml:"listen_addr"`
}

// PaymentConfig holds the defaults of the bulk-payment file.
type PaymentConfig struct {
	TransactionType string `yaml:"transaction_type"`
	DebitAccount    string `yaml:"debit_account"`
}

const (
	DefaultStorePath       = "data/payroll.db"
	DefaultListenAddr      = ":8080"
	DefaultTransactionType = "NEFT"
)

// environment overrides, applied after the file.
const (
	envStorePath       = "PAYROLL_STORE_PATH"
	envWindowStart     = "PAYROLL_WINDOW_START"
	envWindowEnd       = "PAYROLL_WINDOW_END"
	envListenAddr      = "PAYROLL_LISTEN_ADDR"
	envTransactionType = "PAYROLL_TRANSACTION_TYPE"
	envDebitAccount    = "PAYROLL_DEBIT_ACCOUNT"
)

// Load reads the configuration. An empty path skips the file and starts from
// defaults. A .env file in the working directory is loaded when present.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return nil, fmt.Errorf("config: parse yaml: %w", err)
		}
	}

	_ = godotenv.Load()
	cfg.applyEnv()

	if err := cfg.validateAndNormalize(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyEnv() {
	override(&c.Store.Path, envStorePath)
	override(&c.Window.StartRaw, envWindowStart)
	override(&c.Window.EndRaw, envWindowEnd)
	override(&c.Server.ListenAddr, envListenAddr)
	override(&c.Payment.TransactionType, envTransactionType)
	override(&c.Payment.DebitAccount, envDebitAccount)
}

func override(dst *string, key string) {
	if val := os.Getenv(key); val != "" {
		*dst = val
	}
}

func (c *Config) validateAndNormalize() error {
	if c.Store.Path == "" {
		c.Store.Path = DefaultStorePath
	}
	if c.Server.ListenAddr == "" {
		c.Server.ListenAddr = DefaultListenAddr
	}

	p := &c.Payment
	p.TransactionType = strings.ToUpper(strings.TrimSpace(p.TransactionType))
	if p.TransactionType == "" {
		p.TransactionType = DefaultTransactionType
	}
	if p.TransactionType != "NEFT" && p.TransactionType != "RTGS" {
		return fmt.Errorf("config: payment.transaction_type must be NEFT or RTGS, got %q", p.TransactionType)
	}
	p.DebitAccount = strings.TrimSpace(p.DebitAccount)

	return c.Window.validateAndNormalize()
}

func (w *WindowConfig) validateAndNormalize() error {
	w.StartRaw = strings.TrimSpace(w.StartRaw)
	w.EndRaw = strings.TrimSpace(w.EndRaw)
	if w.StartRaw == "" && w.EndRaw == "" {
		w.Window = nil
		return nil
	}
	if w.StartRaw == "" || w.EndRaw == "" {
		return errors.New("config: window.start and window.end must be set together")
	}

	start, err := time.Parse(domain.DateLayout, w.StartRaw)
	if err != nil {
		return fmt.Errorf("config: window.start: %w", err)
	}
	end, err := time.Parse(domain.DateLayout, w.EndRaw)
	if err != nil {
		return fmt.Errorf("config: window.end: %w", err)
	}

	win, err := domain.NewWindow(start, end)
	if err != nil {
		return fmt.Errorf("config: window: %w", err)
	}
	w.Window = &win
	return nil
}
