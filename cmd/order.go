package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arcanaland/mpcfill/internal/config"
	"github.com/arcanaland/mpcfill/internal/manifest"
	"github.com/arcanaland/mpcfill/internal/order"
)

// addManifestFlags registers the flags shared by commands that read a manifest
func addManifestFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("format", "f", "", "Manifest format (toml or yaml); defaults to the file extension, toml for stdin")
}

// addOrderFlags registers the flags that override manifest order settings
func addOrderFlags(cmd *cobra.Command) {
	addManifestFlags(cmd)
	cmd.Flags().StringP("stock", "s", "", "Card stock label or code (e.g. S30), overrides the manifest")
	cmd.Flags().StringP("cardback", "b", "", "Default card back, overrides the manifest")
}

// readManifest loads the manifest named by args, or stdin for none or "-"
func readManifest(cmd *cobra.Command, args []string) (*manifest.Manifest, error) {
	format, _ := cmd.Flags().GetString("format")

	if len(args) == 0 || args[0] == "-" {
		if format == "" {
			format = string(manifest.FormatTOML)
		}
		m, err := manifest.Read(cmd.InOrStdin(), manifest.Format(format))
		if err != nil {
			return nil, fmt.Errorf("error reading manifest from stdin: %w", err)
		}
		m.Path = "-"
		logger.Debug("Loaded manifest", zap.String("path", m.Path), zap.Int("cards", len(m.Cards)))
		return m, nil
	}

	path := args[0]
	if format == "" {
		format = string(manifest.FormatForPath(path))
	}
	m, err := manifest.LoadFormat(path, manifest.Format(format))
	if err != nil {
		return nil, err
	}

	logger.Debug("Loaded manifest", zap.String("path", m.Path), zap.Int("cards", len(m.Cards)))
	return m, nil
}

// resolveStock picks the stock from the flag, the manifest, then the config.
// Whatever the source, a value outside the presets is kept as written
// with a warning.
func resolveStock(cmd *cobra.Command, m *manifest.Manifest, cfg func() (*config.Config, error)) (order.Stock, error) {
	value, _ := cmd.Flags().GetString("stock")
	source := "flag"
	if value == "" {
		value, source = m.Stock, "manifest"
	}

	if value == "" {
		c, err := cfg()
		if err != nil {
			return "", err
		}
		value, source = string(c.Stock()), "config"
	}

	stock, err := order.ParseStock(value)
	if err != nil {
		logger.Warn("Stock is not a known preset, using it as written",
			zap.String("stock", value), zap.String("source", source))
		return order.Stock(value), nil
	}
	return stock, nil
}

// resolveCardBack picks the card back from the flag, the manifest, then the config
func resolveCardBack(cmd *cobra.Command, m *manifest.Manifest, cfg func() (*config.Config, error)) (string, error) {
	value, _ := cmd.Flags().GetString("cardback")
	if value != "" {
		return value, nil
	}
	if m.CardBack != "" {
		return m.CardBack, nil
	}

	c, err := cfg()
	if err != nil {
		return "", err
	}
	return c.DefaultCardBack, nil
}

// buildOrder reads the manifest and builds its order
func buildOrder(cmd *cobra.Command, args []string) (*manifest.Manifest, *order.OrderDetails, error) {
	m, err := readManifest(cmd, args)
	if err != nil {
		return nil, nil, err
	}

	// The config file is only read (and created) when something falls back to it
	var cached *config.Config
	cfg := func() (*config.Config, error) {
		if cached != nil {
			return cached, nil
		}
		c, err := config.LoadConfig()
		if err != nil {
			return nil, fmt.Errorf("error loading config: %w", err)
		}
		cached = c
		return c, nil
	}

	stock, err := resolveStock(cmd, m, cfg)
	if err != nil {
		return nil, nil, err
	}
	cardBack, err := resolveCardBack(cmd, m, cfg)
	if err != nil {
		return nil, nil, err
	}

	o, err := order.New(m.OrderCards(), stock, cardBack)
	if err != nil {
		return nil, nil, fmt.Errorf("error building order: %w", err)
	}

	logger.Debug("Built order",
		zap.Int("quantity", o.Quantity()),
		zap.Int("bracket", o.Bracket()),
		zap.String("stock", string(o.Stock())))

	return m, o, nil
}
