package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/mpcfill/internal/validator"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [manifest]",
	Short: "Check an order manifest",
	Long: `Validate checks an order manifest more strictly than xml does: the stock
must be a known preset, every card needs at least one slot and a unique id,
and the order must fit in a bracket. Slot sharing problems are reported as
warnings.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := readManifest(cmd, args)
		if err != nil {
			return err
		}

		results := validator.NewValidator(m).Validate()

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Validation Results:")
		fmt.Fprintln(out, "-------------------")

		if results.Valid() {
			fmt.Fprintf(out, "%s Manifest '%s' is valid (%d cards).\n", color.GreenString("✔"), m.Path, len(m.Cards))
		} else {
			fmt.Fprintf(out, "%s Manifest '%s' has %d validation errors:\n", color.RedString("✘"), m.Path, len(results.Errors))
			for i, err := range results.Errors {
				fmt.Fprintf(out, "%d. %s\n", i+1, err)
			}
		}

		if len(results.Warnings) > 0 {
			fmt.Fprintln(out, "\nWarnings:")
			for i, warn := range results.Warnings {
				fmt.Fprintf(out, "%d. %s\n", i+1, color.YellowString("%s", warn))
			}
		}

		if !results.Valid() {
			return fmt.Errorf("validation failed")
		}
		return nil
	},
}

func init() {
	addManifestFlags(validateCmd)
}
