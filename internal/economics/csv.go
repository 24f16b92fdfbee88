package economics

import (
	"encoding/csv"
	"os"
	"strconv"
)

// WriteBreakdownCSV writes one row per technology category plus a project
// totals row. This is the primary artifact for "where the money goes" in a
// cost study.
func WriteBreakdownCSV(path string, costs MicrogridCosts) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"category",
		"total",
		"investment",
		"replacement",
		"om",
		"fuel",
		"salvage",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	rows := []struct {
		name  string
		costs ComponentCosts
	}{
		{"generator", costs.Generator},
		{"battery", costs.Battery},
		{"photovoltaic", costs.Photovoltaic},
		{"wind", costs.Wind},
		{"other", costs.Other},
	}
	for _, r := range rows {
		row := []string{
			r.name,
			fmtFloat(r.costs.Total),
			fmtFloat(r.costs.Investment),
			fmtFloat(r.costs.Replacement),
			fmtFloat(r.costs.OM),
			fmtFloat(r.costs.Fuel),
			fmtFloat(r.costs.Salvage),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	totals := []string{
		"project",
		fmtFloat(costs.NPC),
		fmtFloat(costs.TotalInvestment),
		fmtFloat(costs.TotalReplacement),
		fmtFloat(costs.TotalOM),
		fmtFloat(costs.TotalFuel),
		fmtFloat(costs.TotalSalvage),
	}
	if err := w.Write(totals); err != nil {
		return err
	}

	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
