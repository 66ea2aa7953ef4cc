package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcanaland/mpcfill/internal/config"
)

// configCmd represents the config command group
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage default order settings",
	Long:  `Commands for managing the default stock and card back used when a manifest sets none.`,
}

// configInitCmd represents the config init command
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the config file with defaults",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("error initializing config: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Config file initialized at:", config.GetConfigFilePath())
		fmt.Fprintln(out, "Default stock:", cfg.DefaultStock)
		fmt.Fprintln(out, "Default card back:", cfg.DefaultCardBack)
		return nil
	},
}

// configSetStockCmd represents the config set-stock command
var configSetStockCmd = &cobra.Command{
	Use:   "set-stock [stock]",
	Short: "Set the default card stock (label or code, e.g. S30)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		stock, err := config.SetDefaultStock(args[0])
		if err != nil {
			return fmt.Errorf("error setting default stock: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Default stock set to: %s\n", stock)
		return nil
	},
}

// configSetCardBackCmd represents the config set-cardback command
var configSetCardBackCmd = &cobra.Command{
	Use:   "set-cardback [cardback]",
	Short: "Set the default card back",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.SetDefaultCardBack(args[0]); err != nil {
			return fmt.Errorf("error setting default card back: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Default card back set to: %s\n", args[0])
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configSetStockCmd)
	configCmd.AddCommand(configSetCardBackCmd)
}
