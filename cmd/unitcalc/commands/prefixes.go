package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/X-Neon/simple-units/unit"
)

// PrefixesCmd represents the prefixes command
var PrefixesCmd = &cobra.Command{
	Use:   "prefixes",
	Short: "List the metric prefixes and their factors",
	Long:  `Display the metric prefixes unitcalc knows, from exa down to atto, with the factor each one applies to a count.`,
	Run: func(cmd *cobra.Command, args []string) {
		pterm.Println(pterm.Gray("PREFIX   SYMBOL  FACTOR"))

		for _, p := range unit.Prefixes() {
			name, symbol := p.Name, p.Symbol
			if name == "" {
				name, symbol = "(base)", "-"
			}
			pterm.Printf("%-8s %-7s %s\n", name, symbol, p.Factor.String())
		}
	},
}
