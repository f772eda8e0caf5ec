package main

import (
	"context"
	"crypto/rand"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/anupsv/nym/keys"
	"github.com/anupsv/nym/nym"
)

type benchResult struct {
	name      string
	perOpMean time.Duration
}

func cmdBench(args []string) error {
	fs := flag.NewFlagSet("bench", flag.ContinueOnError)
	iterations := fs.Int("iterations", 50, "Number of iterations for each benchmarked operation")
	format := fs.String("format", "text", "Output format (text, html)")
	output := fs.String("output", "", "Output file path for -format=html (empty writes nymctl_bench.html)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *iterations < 1 {
		fmt.Fprintln(os.Stderr, "Error: iterations must be at least 1")
		os.Exit(1)
	}

	userSK, err := keys.NewUserSecretKey(rand.Reader)
	if err != nil {
		return fmt.Errorf("generate user key: %w", err)
	}
	orgSK, err := keys.NewOrgSecretKey(rand.Reader)
	if err != nil {
		return fmt.Errorf("generate org key: %w", err)
	}
	user := nym.NewUser(userSK)
	org := nym.NewOrg(orgSK)

	fmt.Println("running nymctl benchmarks...")

	results := []benchResult{
		timeOp("generate_nym", *iterations, func(ctx context.Context) error {
			_, err := runGenerateNym(ctx, user, org)
			return err
		}),
	}

	n, err := runGenerateNym(context.Background(), user, org)
	if err != nil {
		return fmt.Errorf("set up nym for authenticate/issue benchmarks: %w", err)
	}
	results = append(results, timeOp("authenticate_nym", *iterations, func(ctx context.Context) error {
		return runAuthenticateNym(ctx, user, org, n)
	}))
	results = append(results, timeOp("issue_credential", *iterations, func(ctx context.Context) error {
		_, err := runIssueCredential(ctx, user, org, n)
		return err
	}))

	switch strings.ToLower(*format) {
	case "text":
		reportText(results)
	case "html":
		path := *output
		if path == "" {
			path = "nymctl_bench.html"
		}
		if err := reportHTML(results, path); err != nil {
			return fmt.Errorf("render html report: %w", err)
		}
		fmt.Printf("wrote %s\n", path)
	default:
		return fmt.Errorf("unknown output format %q", *format)
	}

	fmt.Println("benchmarks completed successfully!")
	return nil
}

func timeOp(name string, iterations int, op func(ctx context.Context) error) benchResult {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	start := time.Now()
	for i := 0; i < iterations; i++ {
		if err := op(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "warning: %s iteration %d failed: %v\n", name, i, err)
		}
	}
	total := time.Since(start)
	return benchResult{name: name, perOpMean: total / time.Duration(iterations)}
}

func reportText(results []benchResult) {
	fmt.Println()
	for _, r := range results {
		fmt.Printf("%-20s %v/op\n", r.name, r.perOpMean)
	}
}

func reportHTML(results []benchResult, path string) error {
	xValues := make([]float64, len(results))
	yValues := make([]float64, len(results))
	for i, r := range results {
		xValues[i] = float64(i)
		yValues[i] = float64(r.perOpMean.Microseconds())
	}

	ticks := make([]chart.Tick, len(results))
	for i, r := range results {
		ticks[i] = chart.Tick{Value: float64(i), Label: r.name}
	}

	graph := chart.Chart{
		Title: "nymctl operation latency (microseconds/op)",
		XAxis: chart.XAxis{
			Ticks: ticks,
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "mean latency (us)",
				XValues: xValues,
				YValues: yValues,
			},
		},
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return graph.Render(chart.SVG, f)
}
