package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/mpcfill/internal/order"
)

func TestGetConfigFilePath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	assert.Equal(t, filepath.Join(dir, "mpcfill", "config.toml"), GetConfigFilePath())
}

func TestLoadConfigCreatesDefault(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, string(order.DefaultStock), cfg.DefaultStock)
	assert.Equal(t, DefaultCardBack, cfg.DefaultCardBack)

	_, err = os.Stat(GetConfigFilePath())
	require.NoError(t, err)

	assert.Equal(t, order.DefaultStock, cfg.Stock())
}

func TestSetDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	stock, err := SetDefaultStock("m31")
	require.NoError(t, err)
	assert.Equal(t, order.StockLinen, stock)
	require.NoError(t, SetDefaultCardBack("my-back"))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "(M31) Linen", cfg.DefaultStock)
	assert.Equal(t, "my-back", cfg.DefaultCardBack)
}

func TestSetDefaultStockRejectsUnknown(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	_, err := SetDefaultStock("Glossy")
	require.Error(t, err)
	assert.True(t, errors.Is(err, order.ErrInvalidStock))
}

func TestConfigStock(t *testing.T) {
	tests := []struct {
		value string
		want  order.Stock
	}{
		{"", order.DefaultStock},
		{"p10", order.StockPlastic},
		{"(M31) Linen", order.StockLinen},
		{"Cardboard", order.Stock("Cardboard")},
	}

	for _, tt := range tests {
		cfg := &Config{DefaultStock: tt.value}
		assert.Equal(t, tt.want, cfg.Stock(), "default_stock %q", tt.value)
	}
}

func TestLoadConfigBadFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	path := GetConfigFilePath()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("default_stock = ["), 0644))

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding config file")
}
