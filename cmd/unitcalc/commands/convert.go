package commands

import (
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/X-Neon/simple-units/errors"
	"github.com/X-Neon/simple-units/logger"
	"github.com/X-Neon/simple-units/unit"
)

// ConvertCmd represents the convert command
var ConvertCmd = &cobra.Command{
	Use:   "convert <count> <from-prefix> <to-prefix>",
	Short: "Convert a count between metric prefixes",
	Long: `Convert an integral count from one metric prefix to another.

The conversion is exact or it fails: when the scale ratio is not a
whole number the result could truncate, so the conversion is rejected
outright rather than decided per value. Use "one" for the unprefixed
base scale.

Examples:
  unitcalc convert 5 kilo one       # 5000
  unitcalc convert 1500 milli one   # rejected, milli to one can truncate`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		count, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return errors.Wrapf(err, "invalid count %q", args[0])
		}

		from, to := args[1], args[2]
		logger.Debugw("converting", "count", count, "from", from, "to", to)

		result, err := convertPrefix(count, from, to)
		if err != nil {
			return err
		}

		pterm.Success.Printf("%d %s = %s\n", count, prefixLabel(from), result)
		return nil
	},
}

// convertPrefix dispatches the source prefix name to a concrete scale
// type. Scales are types, so the runtime name has to be pinned to a
// static instantiation before the conversion engine can run.
func convertPrefix(count int64, from, to string) (string, error) {
	switch from {
	case "exa":
		return convertTo[unit.Exa](count, to)
	case "peta":
		return convertTo[unit.Peta](count, to)
	case "tera":
		return convertTo[unit.Tera](count, to)
	case "giga":
		return convertTo[unit.Giga](count, to)
	case "mega":
		return convertTo[unit.Mega](count, to)
	case "kilo":
		return convertTo[unit.Kilo](count, to)
	case "one":
		return convertTo[unit.One](count, to)
	case "milli":
		return convertTo[unit.Milli](count, to)
	case "micro":
		return convertTo[unit.Micro](count, to)
	case "nano":
		return convertTo[unit.Nano](count, to)
	case "pico":
		return convertTo[unit.Pico](count, to)
	case "femto":
		return convertTo[unit.Femto](count, to)
	case "atto":
		return convertTo[unit.Atto](count, to)
	}
	return "", errors.Newf("unknown prefix %q", from)
}

func convertTo[S unit.Scale](count int64, to string) (string, error) {
	u := unit.New[unit.Dimensionless, int64, S](count)
	switch to {
	case "exa":
		return render(unit.Convert[int64, unit.Exa](u))
	case "peta":
		return render(unit.Convert[int64, unit.Peta](u))
	case "tera":
		return render(unit.Convert[int64, unit.Tera](u))
	case "giga":
		return render(unit.Convert[int64, unit.Giga](u))
	case "mega":
		return render(unit.Convert[int64, unit.Mega](u))
	case "kilo":
		return render(unit.Convert[int64, unit.Kilo](u))
	case "one":
		return render(unit.Convert[int64, unit.One](u))
	case "milli":
		return render(unit.Convert[int64, unit.Milli](u))
	case "micro":
		return render(unit.Convert[int64, unit.Micro](u))
	case "nano":
		return render(unit.Convert[int64, unit.Nano](u))
	case "pico":
		return render(unit.Convert[int64, unit.Pico](u))
	case "femto":
		return render(unit.Convert[int64, unit.Femto](u))
	case "atto":
		return render(unit.Convert[int64, unit.Atto](u))
	}
	return "", errors.Newf("unknown prefix %q", to)
}

func render[D unit.Dimension, R unit.Rep, S unit.Scale](u unit.Unit[D, R, S], err error) (string, error) {
	if err != nil {
		return "", err
	}
	return u.String(), nil
}

func prefixLabel(name string) string {
	if name == "one" {
		return "(base)"
	}
	return name
}
