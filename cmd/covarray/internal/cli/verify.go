package cli

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/example/covarray/cmd/covarray/internal/ui"
	"github.com/example/covarray/covering"
	"github.com/spf13/cobra"
)

var (
	verifyT int
	verifyV int
)

var verifyCmd = &cobra.Command{
	Use:   "verify <array.csv>",
	Short: "Check that a CSV covering array satisfies t-way coverage",
	Long: `Verify reads a comma-separated array (one row per line) and checks,
independently of how it was built, that every combination of t columns
sees every combination of v values at least once.

EXAMPLES:
  covarray verify --t 2 --v 2 array.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runVerify,
}

func init() {
	verifyCmd.Flags().IntVar(&verifyT, "t", 2, "interaction strength to check")
	verifyCmd.Flags().IntVar(&verifyV, "v", 2, "alphabet size (values per parameter)")
}

func runVerify(cmd *cobra.Command, args []string) error {
	rows, err := readCSVArray(args[0])
	if err != nil {
		return fmt.Errorf("read array: %w", err)
	}
	if len(rows) == 0 {
		return fmt.Errorf("array file is empty")
	}

	k := len(rows[0])
	ui.PrintStep(fmt.Sprintf("Verifying %d rows, t=%d k=%d v=%d", len(rows), verifyT, k, verifyV))

	ok := covering.VerifyRows(rows, verifyT, k, verifyV)
	if ok {
		ui.PrintSuccess("Array satisfies t-way coverage")
		return nil
	}

	ui.PrintError("Array does NOT satisfy t-way coverage")
	return fmt.Errorf("verification failed")
}

func readCSVArray(path string) ([][]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var rows [][]int
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Split(line, ",")
		row := make([]int, len(fields))
		for i, field := range fields {
			v, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				return nil, fmt.Errorf("invalid cell %q: %w", field, err)
			}
			row[i] = v
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return rows, nil
}
