package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"microgrid-economics/internal/analysis"
	"microgrid-economics/internal/config"
	"microgrid-economics/internal/data"
	"microgrid-economics/internal/economics"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "costs":
		cmdCosts(os.Args[2:])
	case "sweep":
		cmdSweep(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli costs --config examples/microgrid.yaml --stats examples/stats/sample_year.json --out results/breakdown.csv")
	fmt.Println("  cli sweep --config examples/microgrid.yaml --stats examples/stats/sample_year.json --rates 0,0.02,0.05,0.08")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - costs prints the per-category NPC breakdown plus NPC/COE/LCOE")
	fmt.Println("  - sweep re-evaluates the same microgrid across discount rates")
}

func cmdCosts(args []string) {
	fs := flag.NewFlagSet("costs", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML microgrid config")
	statsPath := fs.String("stats", "", "Path to yearly operation stats JSON")
	outPath := fs.String("out", "", "Optional output CSV path")
	_ = fs.Parse(args)

	if *cfgPath == "" || *statsPath == "" {
		fmt.Println("--config and --stats are required")
		os.Exit(2)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		panic(err)
	}
	stats, err := data.LoadOperationStatsJSON(*statsPath)
	if err != nil {
		panic(err)
	}
	mg, err := cfg.ToMicrogrid()
	if err != nil {
		panic(err)
	}

	costs, err := economics.Evaluate(mg, stats)
	if err != nil {
		panic(err)
	}

	cur := mg.Project.Currency
	if cur == "" {
		cur = "$"
	}

	fmt.Printf("%-14s %-14s %-14s %-14s %-14s %-14s %-14s\n", "category", "total", "investment", "replacement", "om", "fuel", "salvage")
	printRow("generator", costs.Generator)
	printRow("battery", costs.Battery)
	printRow("photovoltaic", costs.Photovoltaic)
	printRow("wind", costs.Wind)
	printRow("other", costs.Other)
	fmt.Println()
	fmt.Printf("NPC        = %s%.2f\n", cur, costs.NPC)
	fmt.Printf("Annualized = %s%.2f/yr (CRF %.4f)\n", cur, costs.AnnualizedCost, costs.CRF)
	fmt.Printf("COE        = %s%.4f/kWh\n", cur, costs.COE)
	fmt.Printf("LCOE       = %s%.4f/kWh\n", cur, costs.LCOE)

	if *outPath != "" {
		if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
			panic(err)
		}
		if err := economics.WriteBreakdownCSV(*outPath, costs); err != nil {
			panic(err)
		}
		fmt.Printf("Wrote breakdown to %s\n", *outPath)
	}
}

func cmdSweep(args []string) {
	fs := flag.NewFlagSet("sweep", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML microgrid config")
	statsPath := fs.String("stats", "", "Path to yearly operation stats JSON")
	ratesArg := fs.String("rates", "0,0.02,0.05,0.08", "Comma-separated discount rates")
	_ = fs.Parse(args)

	if *cfgPath == "" || *statsPath == "" {
		fmt.Println("--config and --stats are required")
		os.Exit(2)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		panic(err)
	}
	stats, err := data.LoadOperationStatsJSON(*statsPath)
	if err != nil {
		panic(err)
	}
	mg, err := cfg.ToMicrogrid()
	if err != nil {
		panic(err)
	}

	rates := splitRates(*ratesArg)
	points, err := analysis.SweepDiscountRate(mg, stats, rates)
	if err != nil {
		panic(err)
	}

	fmt.Printf("%-8s %-14s %-14s %-12s %-12s\n", "rate", "npc", "annualized", "coe", "lcoe")
	for _, p := range points {
		fmt.Printf(
			"%-8.3f %-14.2f %-14.2f %-12.4f %-12.4f\n",
			p.DiscountRate,
			p.Costs.NPC,
			p.Costs.AnnualizedCost,
			p.Costs.COE,
			p.Costs.LCOE,
		)
	}
}

func printRow(name string, c economics.ComponentCosts) {
	fmt.Printf(
		"%-14s %-14.2f %-14.2f %-14.2f %-14.2f %-14.2f %-14.2f\n",
		name, c.Total, c.Investment, c.Replacement, c.OM, c.Fuel, c.Salvage,
	)
}

func splitRates(s string) []float64 {
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		r, err := strconv.ParseFloat(p, 64)
		if err != nil {
			panic(fmt.Errorf("bad rate %q: %w", p, err))
		}
		out = append(out, r)
	}
	return out
}
