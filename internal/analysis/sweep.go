package analysis

import (
	"sort"
	"sync"

	"microgrid-economics/internal/economics"
	"microgrid-economics/internal/model"
)

// SweepPoint is one discount-rate evaluation of a fixed configuration.
type SweepPoint struct {
	DiscountRate float64                  `json:"discount_rate"`
	Costs        economics.MicrogridCosts `json:"costs"`
}

// SweepDiscountRate evaluates the same microgrid and operating year under
// each of the given discount rates. Every evaluation is pure and independent,
// so they run in parallel; results come back in input order. The first error
// aborts the sweep.
func SweepDiscountRate(mg model.Microgrid, stats model.OperationStats, rates []float64) ([]SweepPoint, error) {
	points := make([]SweepPoint, len(rates))
	errs := make([]error, len(rates))

	var wg sync.WaitGroup
	for i, rate := range rates {
		wg.Add(1)
		go func(i int, rate float64) {
			defer wg.Done()
			// Microgrid is copied by value; Sources is shared but read-only.
			m := mg
			m.Project.DiscountRate = rate
			costs, err := economics.Evaluate(m, stats)
			points[i] = SweepPoint{DiscountRate: rate, Costs: costs}
			errs[i] = err
		}(i, rate)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return points, nil
}

// RankByLCOE sorts sweep points ascending by LCOE (cheapest energy first).
func RankByLCOE(points []SweepPoint) []SweepPoint {
	out := make([]SweepPoint, len(points))
	copy(out, points)
	sort.Slice(out, func(i, j int) bool {
		return out[i].Costs.LCOE < out[j].Costs.LCOE
	})
	return out
}
