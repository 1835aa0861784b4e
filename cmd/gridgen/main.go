// Command gridgen generates an exact.GridParameters literal for a given
// world configuration.
//
// The grid constants must be computed with directed rounding so that the
// error bounds they encode are conservative; gridgen uses math/big
// floats at double precision for that. Decimal inputs must either be
// bit-exact in their float64 representation or carry the "inexact:"
// prefix to acknowledge rounding.
//
// Example:
//
//	gridgen -name EPSG3857Grid \
//	    -world-cells 0x1p32 \
//	    -world-size inexact:40075016.68 \
//	    -min-world-coordinate inexact:0.005 \
//	    -max-world-coordinate 0x1p25
//
// This generates the constants necessary for cutting geometries in the
// EPSG:3857 projection on a 2^32 by 2^32 cell grid for coordinates not
// going beyond 2^25.
package main

import (
	"flag"
	"fmt"
	"math"
	"math/big"
	"os"
	"strconv"
	"strings"
)

const inexactPrefix = "inexact:"

// parseInput parses a numeric option. Decimal values must convert to
// float64 exactly unless prefixed with "inexact:"; hex float literals
// are always exact.
func parseInput(name, value string) (float64, error) {
	allowRounding := strings.HasPrefix(value, inexactPrefix)
	literal := strings.TrimPrefix(value, inexactPrefix)

	parsed, err := strconv.ParseFloat(literal, 64)
	if err != nil {
		return 0, fmt.Errorf("-%s: invalid numeric literal %q", name, literal)
	}
	if math.IsInf(parsed, 0) || math.IsNaN(parsed) {
		return 0, fmt.Errorf("-%s: value %q is not finite", name, literal)
	}
	if !allowRounding {
		// Round-trip through big.Rat to detect representation error.
		exactValue, ok := new(big.Rat).SetString(literal)
		if !ok || exactValue.Cmp(new(big.Rat).SetFloat64(parsed)) != 0 {
			return 0, fmt.Errorf(
				"-%s: %q is not exactly representable as float64; prefix with %q to allow rounding",
				name, literal, inexactPrefix)
		}
	}
	return parsed, nil
}

// constants holds the generated grid constants.
type constants struct {
	minGridStep   float64
	minReliable   float64
	maxReliable   float64
	minCoordinate float64
	maxCoordinate float64
}

// newDouble returns a 53-bit float with the given rounding mode.
func newDouble(mode big.RoundingMode) *big.Float {
	return new(big.Float).SetPrec(53).SetMode(mode)
}

// computeConstants derives the grid constants with directed rounding:
//
//	minGridStep = RoundDown(worldSize / worldCells)
//	minReliable = RoundUp(21 * maxCoordinate * 2^-53 / minGridStep)
//	maxReliable = RoundDown(1 - minReliable)
func computeConstants(worldCells, worldSize, minCoordinate, maxCoordinate float64) constants {
	minGridStep := newDouble(big.ToNegativeInf)
	minGridStep.SetFloat64(worldSize)
	minGridStep.Quo(minGridStep, new(big.Float).SetFloat64(worldCells))
	step, _ := minGridStep.Float64()

	const unitRoundoff = 0x1p-53

	minReliable := newDouble(big.ToPositiveInf)
	minReliable.SetFloat64(maxCoordinate)
	minReliable.Mul(minReliable, new(big.Float).SetInt64(21))
	minReliable.Mul(minReliable, new(big.Float).SetFloat64(unitRoundoff))
	minReliable.Quo(minReliable, new(big.Float).SetFloat64(step))
	minRel, _ := minReliable.Float64()

	maxReliable := newDouble(big.ToNegativeInf)
	maxReliable.SetInt64(1)
	maxReliable.Sub(maxReliable, new(big.Float).SetFloat64(minRel))
	maxRel, _ := maxReliable.Float64()

	return constants{
		minGridStep:   step,
		minReliable:   minRel,
		maxReliable:   maxRel,
		minCoordinate: minCoordinate,
		maxCoordinate: maxCoordinate,
	}
}

func hexFloat(v float64) string {
	return strconv.FormatFloat(v, 'x', -1, 64)
}

func writeConstants(name string, c constants, args []string) {
	fmt.Println("// These values are generated by the following command:")
	fmt.Printf("// gridgen %s\n", strings.Join(args, " "))
	fmt.Printf("var %s = exact.GridParameters{\n", name)
	fmt.Printf("\tCellSize:        %s,\n", hexFloat(c.minGridStep))
	fmt.Printf("\tDesiredCellSize: %s,\n", hexFloat(c.minGridStep))
	fmt.Printf("\tMinInput:        %s,\n", hexFloat(c.minCoordinate))
	fmt.Printf("\tMaxInput:        %s,\n", hexFloat(c.maxCoordinate))
	fmt.Println("\tColumnBorderIntersection: exact.ReliableFractionRange{")
	fmt.Printf("\t\tMinReliableFractionalPart: %s,\n", hexFloat(c.minReliable))
	fmt.Printf("\t\tMaxReliableFractionalPart: %s,\n", hexFloat(c.maxReliable))
	fmt.Println("\t},")
	fmt.Println("}")
}

func main() {
	var (
		name          = flag.String("name", "", "name of the generated constant")
		worldCells    = flag.String("world-cells", "", "size of the world in grid cells; with -world-size this sets the minimum allowed cell size")
		worldSize     = flag.String("world-size", "", "physical size of the world, e.g. the equator length in projection units (40075016.68 for EPSG:3857)")
		minCoordinate = flag.String("min-world-coordinate", "", "assume |coordinate| >= MIN or coordinate == 0 for every input coordinate")
		maxCoordinate = flag.String("max-world-coordinate", "", "assume |coordinate| <= MAX for every input coordinate")
	)
	flag.Parse()

	fail := func(err error) {
		fmt.Fprintln(os.Stderr, "gridgen:", err)
		os.Exit(1)
	}

	if *name == "" {
		fail(fmt.Errorf("-name is required"))
	}
	required := []struct {
		flagName string
		value    string
	}{
		{"world-cells", *worldCells},
		{"world-size", *worldSize},
		{"min-world-coordinate", *minCoordinate},
		{"max-world-coordinate", *maxCoordinate},
	}
	values := make([]float64, len(required))
	for i, opt := range required {
		if opt.value == "" {
			fail(fmt.Errorf("-%s is required", opt.flagName))
		}
		parsed, err := parseInput(opt.flagName, opt.value)
		if err != nil {
			fail(err)
		}
		values[i] = parsed
	}
	cells, size, minC, maxC := values[0], values[1], values[2], values[3]
	if cells <= 0 || size <= 0 || minC < 0 || maxC <= 0 {
		fail(fmt.Errorf("world parameters must be positive"))
	}

	writeConstants(*name, computeConstants(cells, size, minC, maxC), os.Args[1:])
}
