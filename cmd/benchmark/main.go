package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/limaJavier/interview-scheduling/pkg/model"
)

const MB float32 = 1024 * 1024

type TestMetadata struct {
	Name  string
	Seed  int64
	Shape model.InstanceShape
}

type BenchmarkResult struct {
	Strategy    model.Strategy
	Test        TestMetadata
	Duration    time.Duration
	Memory      float32 // Allocated during the run, in MB
	Scheduled   int
	Unscheduled int
	Verified    bool
}

func main() {
	var (
		outPath string
		seed    int64
		runs    int
	)

	cmd := &cobra.Command{
		Use:   "benchmark",
		Short: "Compare the scheduling strategies on generated rosters and write the results as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			tests := getTests(seed)
			results := make([]BenchmarkResult, 0, len(tests)*len(model.Strategies)*runs)

			for _, test := range tests {
				for _, strategy := range model.Strategies {
					for run := 0; run < runs; run++ {
						fmt.Printf("Benchmarking test \"%v\" with strategy \"%v\" (run %d)\n", test.Name, strategy, run+1)
						results = append(results, measure(strategy, test))
					}
				}
			}

			file, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("cannot create CSV file: %w", err)
			}
			defer file.Close()
			return toCsv(file, results)
		},
	}
	cmd.Flags().StringVar(&outPath, "out", "benchmark_results.csv", "CSV output file")
	cmd.Flags().Int64Var(&seed, "seed", 1, "Seed of the first generated roster")
	cmd.Flags().IntVar(&runs, "runs", 3, "Runs per strategy and roster")

	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func getTests(seed int64) []TestMetadata {
	shapes := []model.InstanceShape{
		{Professors: 5, Teams: 8, Days: 5, Duration: 120, MaxConcurrent: 2},
		{Professors: 10, Teams: 25, Days: 5, Duration: 60, MaxConcurrent: 2},
		{Professors: 20, Teams: 60, Days: 10, Duration: 90, MaxConcurrent: 3},
		{Professors: 40, Teams: 150, Days: 10, Duration: 60, MaxConcurrent: 4},
		{Professors: 80, Teams: 400, Days: 20, Duration: 60, MaxConcurrent: 6},
		{Professors: 15, Teams: 200, Days: 5, Duration: 120, MaxConcurrent: 2}, // Saturated
	}

	return lo.Map(shapes, func(shape model.InstanceShape, i int) TestMetadata {
		return TestMetadata{
			Name:  fmt.Sprintf("p%d-t%d-d%d", shape.Professors, shape.Teams, shape.Days),
			Seed:  seed + int64(i),
			Shape: shape,
		}
	})
}

func measure(strategy model.Strategy, test TestMetadata) BenchmarkResult {
	config := model.RandomInstance(rand.New(rand.NewSource(test.Seed)), test.Shape)
	scheduler := lo.Must(model.NewScheduler(strategy))

	var before, after runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&before)

	start := time.Now()
	result, err := scheduler.Schedule(config)
	duration := time.Since(start)

	runtime.ReadMemStats(&after)
	if err != nil {
		log.Fatalf("an error occurred at test \"%v\" using strategy \"%v\": %v", test.Name, strategy, err)
	}

	return BenchmarkResult{
		Strategy:    strategy,
		Test:        test,
		Duration:    duration,
		Memory:      float32(after.TotalAlloc-before.TotalAlloc) / MB,
		Scheduled:   len(result.Scheduled),
		Unscheduled: len(result.Unscheduled),
		Verified:    scheduler.Verify(result, config),
	}
}

func toCsv(w io.Writer, results []BenchmarkResult) error {
	writer := csv.NewWriter(w)

	header := []string{"Strategy", "Test", "Seed", "Professors", "Teams", "Days", "Duration(min)", "MaxConcurrent", "Elapsed(ms)", "Memory(MB)", "Scheduled", "Unscheduled", "Verified"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("cannot write CSV header: %w", err)
	}

	for _, result := range results {
		record := []string{
			string(result.Strategy),
			result.Test.Name,
			strconv.FormatInt(result.Test.Seed, 10),
			strconv.Itoa(result.Test.Shape.Professors),
			strconv.Itoa(result.Test.Shape.Teams),
			strconv.Itoa(result.Test.Shape.Days),
			strconv.Itoa(result.Test.Shape.Duration),
			strconv.Itoa(result.Test.Shape.MaxConcurrent),
			fmt.Sprintf("%.3f", float64(result.Duration.Microseconds())/1000),
			fmt.Sprintf("%.2f", result.Memory),
			strconv.Itoa(result.Scheduled),
			strconv.Itoa(result.Unscheduled),
			strconv.FormatBool(result.Verified),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("cannot write CSV record: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
