package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/X-Neon/simple-units/logger"
	"github.com/X-Neon/simple-units/si"
	"github.com/X-Neon/simple-units/unit"
)

var (
	energyWatts     int64
	energyKilowatts int64
	energySeconds   int64
)

// EnergyCmd represents the energy command
var EnergyCmd = &cobra.Command{
	Use:   "energy",
	Short: "Compute energy from power and elapsed time",
	Long: `Compute the energy dissipated by a power draw over an elapsed time.

Power can be given in watts, kilowatts, or both; the contributions are
summed exactly at their finest common scale before multiplying by the
elapsed seconds.

Examples:
  unitcalc energy --watts 500 --seconds 60
  unitcalc energy --kilowatts 2 --watts 500 --seconds 4`,
	RunE: func(cmd *cobra.Command, args []string) error {
		total := unit.Add[int64, unit.One](si.Kilowatts(energyKilowatts), si.Watts(energyWatts))
		elapsed := si.Seconds(energySeconds)
		logger.Debugw("computing energy",
			"power", total.String(),
			"elapsed", elapsed.String())

		joules := unit.Mul[int64, unit.One](si.PowerTime, elapsed, total)

		pterm.Printf("Power:   %s\n", total.String())
		pterm.Printf("Elapsed: %s\n", elapsed.String())
		pterm.Success.Printf("Energy:  %s (%s)\n",
			joules.String(), unit.Cast[float64, unit.Kilo](joules).String())
		return nil
	},
}

func init() {
	EnergyCmd.Flags().Int64Var(&energyWatts, "watts", 0, "Power draw in watts")
	EnergyCmd.Flags().Int64Var(&energyKilowatts, "kilowatts", 0, "Power draw in kilowatts")
	EnergyCmd.Flags().Int64Var(&energySeconds, "seconds", 0, "Elapsed time in seconds")
	EnergyCmd.MarkFlagRequired("seconds")
}
