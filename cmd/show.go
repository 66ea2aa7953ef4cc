package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcanaland/mpcfill/internal/card"
	"github.com/arcanaland/mpcfill/internal/order"
)

var showCmd = &cobra.Command{
	Use:   "show [manifest]",
	Short: "Summarize an order: quantity, bracket, stock and cards",
	Long: `Show prints a summary of the order a manifest describes, the same order
xml would produce, followed by its fronts and backs.

Examples:
  mpcfill show order.toml
  mpcfill show --stock P10 order.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, o, err := buildOrder(cmd, args)
		if err != nil {
			return err
		}

		displayOrder(cmd.OutOrStdout(), m.Path, o, terminalWidth())
		return nil
	},
}

func init() {
	addOrderFlags(showCmd)
}

// terminalWidth returns the stdout width, 80 when it is not a terminal
func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

// displayOrder writes the order summary followed by a table of cards
func displayOrder(w io.Writer, source string, o *order.OrderDetails, width int) {
	label := func(s string) string { return colorize.CyanString("%-10s", s) }

	fmt.Fprintln(w)
	fmt.Fprintln(w, label("Order:")+colorize.HiWhiteString("%s", source))
	fmt.Fprintln(w, label("Quantity:")+colorize.HiWhiteString("%d", o.Quantity()))
	fmt.Fprintln(w, label("Bracket:")+colorize.HiWhiteString("%d", o.Bracket())+
		colorize.HiBlackString(" (%d spare)", o.Bracket()-o.Quantity()))

	stock := o.Stock()
	if stock.Valid() {
		fmt.Fprintln(w, label("Stock:")+colorize.HiWhiteString("%s", stock))
	} else {
		fmt.Fprintln(w, label("Stock:")+colorize.YellowString("%s (not a known preset)", stock))
	}
	fmt.Fprintln(w, label("Foil:")+colorize.HiWhiteString("%t", o.Foil()))
	fmt.Fprintln(w, label("Cardback:")+colorize.HiWhiteString("%s", o.CardBack()))

	displayCards(w, "Fronts", o.Fronts(), width)
	displayCards(w, "Backs", o.Backs(), width)
	fmt.Fprintln(w)
}

// displayCards writes one line per card, cut to fit the width
func displayCards(w io.Writer, title string, cards []card.Card, width int) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, colorize.CyanString("%s (%d):", title, len(cards)))

	if len(cards) == 0 {
		fmt.Fprintln(w, "  none")
		return
	}

	idWidth, slotWidth := 2, 5
	for _, c := range cards {
		idWidth = max(idWidth, len(c.ID))
		slotWidth = max(slotWidth, len(c.SlotList())+2)
	}

	for _, c := range cards {
		line := fmt.Sprintf("  %-*s  %-*s  %s", idWidth, c.ID, slotWidth, "["+c.SlotList()+"]", c.Name)
		if c.Query != "" && c.Query != c.Name {
			line += " · " + c.Query
		}
		fmt.Fprintln(w, truncate(line, width))
	}
}

// truncate cuts s to width runes, marking the cut with an ellipsis
func truncate(s string, width int) string {
	// Ensure width is reasonable
	if width < 10 {
		width = 40
	}

	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return strings.TrimRight(string(runes[:width-1]), " ") + "…"
}
