package shell

import (
	"fmt"
	"io"
	"strings"

	"unitconverter"
)

func PrintHelp(out io.Writer, name string) {
	fmt.Fprintln(out, "Simple Unit Converter")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Supports length, weight and temperature conversions from CLI or interactively.")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Usage (positional):")
	fmt.Fprintf(out, "  %s <value> <from_unit> <to_unit>\n", name)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Examples:")
	fmt.Fprintf(out, "  %s 100 cm m\n", name)
	fmt.Fprintf(out, "  %s 2 kg lb\n", name)
	fmt.Fprintf(out, "  %s 32 F C\n", name)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run without arguments for interactive mode.")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Supported length units:", strings.Join(unitconverter.LengthUnits.Symbols(), ", "))
	fmt.Fprintln(out, "Supported weight units:", strings.Join(unitconverter.WeightUnits.Symbols(), ", "))
	fmt.Fprintln(out, "Supported temperature units:", strings.Join(unitconverter.TemperatureUnits, ", "))
}
