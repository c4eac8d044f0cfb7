package seed

import (
	"math"
	"math/big"
)

var pow10 = [...]float64{1, 10, 100, 1000}

// toFixed rounds x to digits decimals the way a decimal string conversion
// does: the exact binary value is rounded half away from zero, then read back
// as the nearest float64.
func toFixed(x float64, digits int) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	neg := x < 0
	if neg {
		x = -x
	}

	scale := pow10[digits]
	v := new(big.Float).SetPrec(256).SetFloat64(x)
	v.Mul(v, new(big.Float).SetPrec(256).SetFloat64(scale))
	v.Add(v, big.NewFloat(0.5))
	n, _ := v.Int(nil)

	out := float64(n.Int64()) / scale
	if neg && out != 0 {
		out = -out
	}
	return out
}

func toFixed1(x float64) float64 { return toFixed(x, 1) }
func toFixed2(x float64) float64 { return toFixed(x, 2) }

// roundHalfUp rounds to the nearest integer with ties toward +Inf.
func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}
