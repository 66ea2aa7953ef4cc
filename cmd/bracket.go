package cmd

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/mpcfill/internal/order"
)

var bracketCmd = &cobra.Command{
	Use:   "bracket <count>",
	Short: "Show the print bracket for a number of cards",
	Long: `Bracket prints the smallest print-run size strictly above the given card
count. Counts of 612 or more do not fit in any bracket.

Use --list to print the full bracket table instead.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if list, _ := cmd.Flags().GetBool("list"); list {
			return cobra.NoArgs(cmd, args)
		}
		return cobra.ExactArgs(1)(cmd, args)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		if list, _ := cmd.Flags().GetBool("list"); list {
			for _, b := range order.Brackets() {
				fmt.Fprintln(out, b)
			}
			return nil
		}

		count, err := strconv.Atoi(args[0])
		if err != nil || count < 0 {
			return fmt.Errorf("invalid card count: %s", args[0])
		}

		bracket, err := order.Bracket(count)
		if err != nil {
			return err
		}

		fmt.Fprintln(out, bracket)
		if count > 0 {
			fmt.Fprintln(cmd.ErrOrStderr(), color.HiBlackString("%d cards, %d spare", count, bracket-count))
		}
		return nil
	},
}

func init() {
	bracketCmd.Flags().BoolP("list", "l", false, "List every bracket")
}
