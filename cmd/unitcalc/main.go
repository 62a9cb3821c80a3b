package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/X-Neon/simple-units/cmd/unitcalc/commands"
	"github.com/X-Neon/simple-units/config"
	"github.com/X-Neon/simple-units/logger"
)

var rootCmd = &cobra.Command{
	Use:   "unitcalc",
	Short: "unitcalc - Dimensioned quantity calculator",
	Long: `unitcalc - Calculator for dimensioned quantities.

unitcalc works with quantities that carry a physical dimension and a
metric scale, converting between scales exactly and combining
quantities through declared dimensional relations.

Available commands:
  convert   - Convert a count between metric prefixes
  energy    - Compute energy from power and elapsed time
  prefixes  - List the metric prefixes and their factors
  relations - List the declared dimensional relations

Examples:
  unitcalc convert 1500 milli one     # 1500 milli = 1.5 (rejected: not exact)
  unitcalc convert 5 kilo one         # 5 kilo = 5000
  unitcalc energy --kilowatts 2 --watts 500 --seconds 4
  unitcalc relations                  # s x W = J, s x Hz = 1, ...`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		// Flags win over config file and environment.
		verbosity, _ := cmd.Flags().GetCount("verbose")
		if verbosity == 0 {
			verbosity = cfg.Output.Verbosity
		}
		jsonLogs, _ := cmd.Flags().GetBool("json-logs")
		if !cmd.Flags().Changed("json-logs") {
			jsonLogs = cfg.Output.JSON
		}

		if err := logger.Initialize(verbosity, jsonLogs); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger.Debugw("logger initialized",
			"verbosity", logger.LevelName(verbosity),
			"json", jsonLogs)
		return nil
	},
}

func init() {
	// Add global flags
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv)")
	rootCmd.PersistentFlags().Bool("json-logs", false, "Emit logs as JSON")

	// Add commands
	rootCmd.AddCommand(commands.ConvertCmd)
	rootCmd.AddCommand(commands.EnergyCmd)
	rootCmd.AddCommand(commands.PrefixesCmd)
	rootCmd.AddCommand(commands.RelationsCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	defer logger.Cleanup()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
