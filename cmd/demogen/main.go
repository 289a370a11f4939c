package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"time"

	"github.com/fatih/color"
	"github.com/jamiealquiza/tachymeter"
	"github.com/rodaine/table"

	"demogen/gen"
	"demogen/sink"
)

func main() {
	var (
		preset     = flag.String("preset", "insurance", "built-in config: insurance or projects")
		configPath = flag.String("config", "", "YAML run config (overrides -preset)")
		seed       = flag.Int64("seed", 0, "seed override (0 keeps the config's seed)")
		outDir     = flag.String("out", "", "write CSVs to this directory")
		preview    = flag.Int("preview", 0, "print the first N rows of each table")
		withRels   = flag.Bool("rels", false, "include the derived relationships table")
		bench      = flag.Int("bench", 1, "regenerate N times and report timing stats")
	)
	flag.Parse()
	slog.SetLogLoggerLevel(slog.LevelDebug)

	cfg, err := resolveConfig(*preset, *configPath)
	if err != nil {
		slog.Error("bad configuration", slog.Any("err", err))
		os.Exit(1)
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	meter := tachymeter.New(&tachymeter.Config{Size: max(*bench, 1)})
	var bundle *gen.Bundle
	for i := 0; i < max(*bench, 1); i++ {
		start := time.Now()
		bundle, err = gen.Generate(*cfg)
		if err != nil {
			slog.Error("generation failed", slog.Any("err", err))
			os.Exit(1)
		}
		meter.AddTime(time.Since(start))
	}
	slog.Info("bundle generated",
		slog.Int64("seed", cfg.Seed),
		slog.Int("tops", len(bundle.Tops)),
		slog.Int("mids", len(bundle.Mids)),
		slog.Int("leafs", len(bundle.Leafs)),
	)

	tables := sink.Tables(bundle, *withRels)

	if *preview > 0 {
		console := sink.NewConsoleSink(os.Stdout, *preview)
		for _, t := range tables {
			if err := console.Write(t); err != nil {
				slog.Error("preview failed", slog.Any("err", err))
				os.Exit(1)
			}
		}
	}

	if *outDir != "" {
		csvs, err := sink.NewCSVSink(*outDir)
		if err != nil {
			slog.Error("sink setup failed", slog.Any("err", err))
			os.Exit(1)
		}
		for _, t := range tables {
			if err := csvs.Write(t); err != nil {
				slog.Error("csv write failed", slog.String("table", t.Name), slog.Any("err", err))
				os.Exit(1)
			}
			slog.Debug("table written", slog.String("table", t.Name), slog.Int("rows", len(t.Rows)))
		}
	}

	printSummary(bundle, tables, meter, *bench)
}

func resolveConfig(preset, path string) (*gen.Config, error) {
	if path != "" {
		return gen.LoadConfig(path)
	}
	switch preset {
	case "insurance":
		cfg := gen.InsuranceConfig()
		return &cfg, nil
	case "projects":
		cfg := gen.ProjectConfig()
		return &cfg, nil
	default:
		return nil, fmt.Errorf("unknown preset %q", preset)
	}
}

func printSummary(bundle *gen.Bundle, tables []sink.Table, meter *tachymeter.Tachymeter, bench int) {
	headerFmt := color.New(color.FgGreen, color.Underline).SprintfFunc()
	columnFmt := color.New(color.FgYellow).SprintfFunc()

	tbl := table.
		New("Table", "Rows", "Columns").
		WithHeaderFormatter(headerFmt).
		WithFirstColumnFormatter(columnFmt)
	for _, t := range tables {
		tbl.AddRow(t.Name, len(t.Rows), len(t.Columns))
	}
	tbl.Print()

	// Status breakdown, like the status histogram the demos lead with. Keys
	// are sorted first, map iteration order is not deterministic.
	counts := make(map[string]int)
	var amountSum, amountMax, scoreSum float64
	for _, l := range bundle.Leafs {
		counts[l.Status]++
		amountSum += l.Amount
		scoreSum += l.Score
		amountMax = max(amountMax, l.Amount)
	}
	statuses := make([]string, 0, len(counts))
	for s := range counts {
		statuses = append(statuses, s)
	}
	slices.Sort(statuses)

	stats := table.
		New("Leaf Status", "Count").
		WithHeaderFormatter(headerFmt).
		WithFirstColumnFormatter(columnFmt)
	for _, s := range statuses {
		stats.AddRow(s, counts[s])
	}
	stats.Print()

	n := float64(len(bundle.Leafs))
	fmt.Printf("avg amount %.2f, max amount %.2f, avg score %.2f\n",
		amountSum/n, amountMax, scoreSum/n)
	if bench > 1 {
		calc := meter.Calc()
		fmt.Printf("generation over %d runs: avg %s, p99 %s\n", bench, calc.Time.Avg, calc.Time.P99)
	}
}
