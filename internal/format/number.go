package format

import (
	"math"
	"strconv"
)

// integerSnapTolerance is the absolute distance below which a float is
// rendered as the nearest integer. Coefficient extraction and root finding
// go through floating point, so exact answers arrive with tiny residues.
const integerSnapTolerance = 1e-9

// Number formats a float64 deterministically for step formulas.
// Values within integerSnapTolerance of an integer render without a decimal
// part; everything else uses 10 significant digits, which keeps repeated
// Solve calls byte-identical for the same value.
//
// Parameters:
//   - v: The value to format.
//
// Returns:
//   - string: The rendered value.
func Number(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	if math.IsInf(v, 1) {
		return "Infinity"
	}
	if math.IsInf(v, -1) {
		return "-Infinity"
	}
	if v == 0 {
		// Normalizes negative zero.
		return "0"
	}
	if r := math.Round(v); math.Abs(v-r) < integerSnapTolerance && math.Abs(r) < 1e15 {
		return strconv.FormatInt(int64(r), 10)
	}
	return strconv.FormatFloat(v, 'g', 10, 64)
}

// SignedNumber formats v with an explicit leading sign, for use inside
// formulas such as "2x + 3 = 0" versus "2x - 3 = 0".
//
// Parameters:
//   - v: The value to format.
//
// Returns:
//   - string: The rendered value with " + " or " - " prefix.
func SignedNumber(v float64) string {
	if v < 0 {
		return " - " + Number(-v)
	}
	return " + " + Number(v)
}

// Complex formats a complex value using the display convention of the step
// explainer: pure reals drop the imaginary part, pure imaginaries drop the
// real part, and mixed values render as "a + bi" / "a - bi".
//
// Parameters:
//   - re: Real part.
//   - im: Imaginary part.
//
// Returns:
//   - string: The rendered complex value.
func Complex(re, im float64) string {
	if math.Abs(im) < integerSnapTolerance {
		return Number(re)
	}
	imStr := Number(math.Abs(im))
	if imStr == "1" {
		imStr = ""
	}
	if math.Abs(re) < integerSnapTolerance {
		if im < 0 {
			return "-" + imStr + "i"
		}
		return imStr + "i"
	}
	if im < 0 {
		return Number(re) + " - " + imStr + "i"
	}
	return Number(re) + " + " + imStr + "i"
}
