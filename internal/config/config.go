package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/arcanaland/mpcfill/internal/order"
)

// DefaultCardBack is written to a fresh config file
const DefaultCardBack = "CARDBACK"

// Config represents the application configuration
type Config struct {
	DefaultStock    string `toml:"default_stock"`
	DefaultCardBack string `toml:"default_cardback"`
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "mpcfill", "config.toml")
}

// LoadConfig loads the config file, creating it with defaults if missing
func LoadConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig()
	}

	var config Config
	if _, err := toml.DecodeFile(configPath, &config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}

	return &config, nil
}

func createDefaultConfig() (*Config, error) {
	config := &Config{
		DefaultStock:    string(order.DefaultStock),
		DefaultCardBack: DefaultCardBack,
	}

	if err := writeConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

func writeConfig(config *Config) error {
	configPath := GetConfigFilePath()

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}

	return nil
}

// Stock returns the configured default stock. An empty value falls back
// to order.DefaultStock, a preset label or code maps to its preset, and
// anything else is returned as written.
func (c *Config) Stock() order.Stock {
	if c.DefaultStock == "" {
		return order.DefaultStock
	}
	if stock, err := order.ParseStock(c.DefaultStock); err == nil {
		return stock
	}
	return order.Stock(c.DefaultStock)
}

// SetDefaultStock stores a stock preset (label or code) as the default
func SetDefaultStock(stock string) (order.Stock, error) {
	parsed, err := order.ParseStock(stock)
	if err != nil {
		return "", err
	}

	config, err := LoadConfig()
	if err != nil {
		return "", err
	}

	config.DefaultStock = string(parsed)
	if err := writeConfig(config); err != nil {
		return "", err
	}

	return parsed, nil
}

// SetDefaultCardBack stores the card back used when a manifest names none
func SetDefaultCardBack(cardBack string) error {
	config, err := LoadConfig()
	if err != nil {
		return err
	}

	config.DefaultCardBack = cardBack
	return writeConfig(config)
}
