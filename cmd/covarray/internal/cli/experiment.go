package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/example/covarray/cmd/covarray/internal/ui"
	"github.com/example/covarray/covering"
	"github.com/example/covarray/experiment"
	"github.com/example/covarray/experiment/domain"
	sqlitestore "github.com/example/covarray/experiment/store/sqlite"
	"github.com/example/covarray/pkg/id"
	"github.com/spf13/cobra"
)

var (
	expT          int
	expK          int
	expV          int
	expStrides    string
	expIterations int
	expSeed       int64
	expConcurrent int
	expStore      string
)

var experimentCmd = &cobra.Command{
	Use:   "experiment",
	Short: "Sweep Build across strides and report array sizes",
	Long: `Experiment runs Build repeatedly for a fixed (t, k, v) config across
several strides, reporting the minimum and mean array size each stride
produced. This is the size-vs-configuration sweep used to pick a good
stride for a given (t, k, v).

EXAMPLES:
  covarray experiment --t 2 --k 10 --v 2 --strides 1,2,3,4 --iterations 20
  covarray experiment --t 2 --k 10 --v 2 --strides 1,2 --store results.db`,
	RunE: runExperiment,
}

func init() {
	experimentCmd.Flags().IntVar(&expT, "t", 2, "interaction strength to cover")
	experimentCmd.Flags().IntVar(&expK, "k", 0, "number of parameters (required)")
	experimentCmd.Flags().IntVar(&expV, "v", 2, "alphabet size (values per parameter)")
	experimentCmd.Flags().StringVar(&expStrides, "strides", "1", "comma-separated list of strides to sweep")
	experimentCmd.Flags().IntVar(&expIterations, "iterations", 10, "builds to run per stride")
	experimentCmd.Flags().Int64Var(&expSeed, "seed", 1, "base random seed")
	experimentCmd.Flags().IntVar(&expConcurrent, "concurrency", 4, "max concurrent builds (0 = unbounded)")
	experimentCmd.Flags().StringVar(&expStore, "store", "", "SQLite file to persist the report to (optional)")
	experimentCmd.MarkFlagRequired("k")
}

func runExperiment(cmd *cobra.Command, args []string) error {
	strides, err := parseStrides(expStrides)
	if err != nil {
		return err
	}

	spec := domain.Spec{
		ID:         id.Generate(),
		Configs:    []covering.Config{{T: expT, K: expK, V: expV}},
		Strides:    strides,
		Iterations: expIterations,
		Seed:       expSeed,
	}

	ui.PrintHeader("Running Experiment")
	ui.PrintInfo(fmt.Sprintf("Config: t=%d k=%d v=%d", expT, expK, expV))
	ui.PrintInfo(fmt.Sprintf("Strides: %v", strides))
	ui.PrintInfo(fmt.Sprintf("Iterations per stride: %d", expIterations))

	runner := experiment.NewRunner(expConcurrent, nil)

	start := time.Now()
	report, err := runner.Run(context.Background(), spec)
	if err != nil {
		return fmt.Errorf("run experiment: %w", err)
	}
	elapsed := time.Since(start)

	ui.PrintSuccess(fmt.Sprintf("Completed in %s", ui.FormatDuration(elapsed)))

	headers := []string{"Stride", "Min", "Mean", "Iterations"}
	rows := make([][]string, 0, len(report.Results))
	for _, res := range report.Results {
		rows = append(rows, []string{
			strconv.Itoa(res.Stride),
			strconv.Itoa(res.Min),
			strconv.FormatFloat(res.Mean, 'f', 2, 64),
			strconv.Itoa(len(res.Sizes) + res.Dropped),
		})
	}
	ui.PrintTable(headers, rows)

	if expStore != "" {
		store, err := sqlitestore.Open(context.Background(), expStore)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer store.Close()

		if err := store.SaveReport(context.Background(), report); err != nil {
			return fmt.Errorf("save report: %w", err)
		}
		ui.PrintInfo(fmt.Sprintf("Saved report %s to %s", report.SpecID, expStore))
	}

	return nil
}

func parseStrides(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	strides := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid stride %q: %w", p, err)
		}
		strides = append(strides, n)
	}
	if len(strides) == 0 {
		return nil, fmt.Errorf("no strides given")
	}
	return strides, nil
}
