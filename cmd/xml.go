package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/arcanaland/mpcfill/internal/validator"
)

var xmlCmd = &cobra.Command{
	Use:   "xml [manifest]",
	Short: "Print the autofill order XML for a manifest",
	Long: `Xml reads an order manifest and prints the XML order file the autofill
tool expects. Read the manifest from stdin by passing "-" or no path.

Stock and card back come from the --stock/--cardback flags, then the
manifest, then your config. Output is indented when printed to a terminal.

Examples:
  mpcfill xml order.toml > cards.xml
  mpcfill xml --stock S33 --compact order.yaml
  cat order.toml | mpcfill xml --strict`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, o, err := buildOrder(cmd, args)
		if err != nil {
			return err
		}

		if strict, _ := cmd.Flags().GetBool("strict"); strict {
			// Check what will be written, after flag and config fallbacks
			resolved := *m
			resolved.Stock = string(o.Stock())
			resolved.CardBack = o.CardBack()

			results := validator.NewValidator(&resolved).Validate()
			if !results.Valid() {
				for _, e := range results.Errors {
					logger.Warn("Manifest check failed", zap.Error(e))
				}
				return fmt.Errorf("manifest has %d validation errors: %w", len(results.Errors), results.Errors[0])
			}
		}

		indent := ""
		if useIndent(cmd) {
			indent = "  "
		}

		out := cmd.OutOrStdout()
		if err := o.WriteXML(out, indent); err != nil {
			return err
		}
		fmt.Fprintln(out)

		logger.Debug("Wrote order XML", zap.Int("fronts", len(o.Fronts())), zap.Int("backs", len(o.Backs())))
		return nil
	},
}

// useIndent honours --indent/--compact and otherwise indents for a terminal
func useIndent(cmd *cobra.Command) bool {
	if compact, _ := cmd.Flags().GetBool("compact"); compact {
		return false
	}
	if indent, _ := cmd.Flags().GetBool("indent"); indent {
		return true
	}
	return cmd.OutOrStdout() == os.Stdout && term.IsTerminal(int(os.Stdout.Fd()))
}

func init() {
	addOrderFlags(xmlCmd)
	xmlCmd.Flags().Bool("indent", false, "Indent the XML")
	xmlCmd.Flags().Bool("compact", false, "Print the XML on one line")
	xmlCmd.Flags().Bool("strict", false, "Refuse manifests that fail validation")
}
