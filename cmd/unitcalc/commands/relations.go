package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/X-Neon/simple-units/logger"
	"github.com/X-Neon/simple-units/unit"

	// Register the standard SI relations.
	_ "github.com/X-Neon/simple-units/si"
)

// RelationsCmd represents the relations command
var RelationsCmd = &cobra.Command{
	Use:   "relations",
	Short: "List the declared dimensional relations",
	Long:  `Display every declared dimensional product, one line per relation, using the dimension symbols. A dimensionless product prints as 1.`,
	Run: func(cmd *cobra.Command, args []string) {
		rels := unit.Relations()
		logger.Debugw("listing relations", "count", len(rels))

		if len(rels) == 0 {
			pterm.Warning.Println("No dimensional relations are declared")
			return
		}

		for _, r := range rels {
			result := r.ResultSym
			if result == "" {
				result = "1"
			}
			pterm.Printf("%s x %s = %s  (%s x %s = %s)\n",
				r.LeftSym, r.RightSym, result, r.Left, r.Right, r.Result)
		}
	},
}
