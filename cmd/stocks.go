package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arcanaland/mpcfill/internal/config"
	"github.com/arcanaland/mpcfill/internal/order"
)

// stocksCmd lists the stock presets
var stocksCmd = &cobra.Command{
	Use:   "stocks",
	Short: "List card stock presets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}

		defaultStock := cfg.Stock()
		if !defaultStock.Valid() {
			logger.Warn("Configured default stock is not a known preset", zap.String("stock", string(defaultStock)))
		}

		out := cmd.OutOrStdout()
		for _, s := range order.Stocks() {
			if s == defaultStock {
				fmt.Fprintf(out, "* %s %s\n", color.CyanString("%-4s", s.Code()), s+" [DEFAULT]")
			} else {
				fmt.Fprintf(out, "  %s %s\n", color.CyanString("%-4s", s.Code()), s)
			}
		}
		return nil
	},
}
