package economics

import "math"

// DiscountFactor converts a cash flow year years out to present value:
// 1/(1+rate)^year. Fractional years are allowed (hour-based replacement
// schedules land between year boundaries).
func DiscountFactor(rate, year float64) float64 {
	return math.Pow(1+rate, -year)
}

// DiscountFactors returns the end-of-year factors d_1..d_horizon. The
// sequence is strictly decreasing for rate > 0 and constant (=1) at rate 0.
func DiscountFactors(rate float64, horizon int) []float64 {
	out := make([]float64, horizon)
	for i := 1; i <= horizon; i++ {
		out[i-1] = DiscountFactor(rate, float64(i))
	}
	return out
}

// CapitalRecoveryFactor converts a present cost into an equivalent uniform
// annual cost over horizon years: r(1+r)^N / ((1+r)^N - 1). Degenerates to
// 1/N at zero rate.
func CapitalRecoveryFactor(rate float64, horizon int) float64 {
	if rate == 0 {
		return 1 / float64(horizon)
	}
	growth := math.Pow(1+rate, float64(horizon))
	return rate * growth / (growth - 1)
}

func sum(xs []float64) float64 {
	total := 0.0
	for _, x := range xs {
		total += x
	}
	return total
}
