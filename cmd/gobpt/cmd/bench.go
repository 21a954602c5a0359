package cmd

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Run a scripted insert/delete workload against an index",
	Long: `bench drives a fixed insert/delete/get workload against a
freshly constructed index and reports throughput, exercising the same
code path the HTTP API's handlers use.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		idx, err := indexFromContext(cmd)
		if err != nil {
			return err
		}

		count, _ := cmd.Flags().GetInt("count")
		seed, _ := cmd.Flags().GetInt64("seed")
		rng := rand.New(rand.NewSource(seed))

		keys := make([][]byte, count)
		for i := range keys {
			keys[i] = []byte(fmt.Sprintf("bench-%d-%d", rng.Int63(), i))
		}

		start := time.Now()
		for _, k := range keys {
			if _, err := idx.Put(k, k); err != nil {
				return fmt.Errorf("put failed: %w", err)
			}
		}
		putElapsed := time.Since(start)

		start = time.Now()
		hits := 0
		for _, k := range keys {
			if _, ok := idx.Get(k); ok {
				hits++
			}
		}
		getElapsed := time.Since(start)

		start = time.Now()
		for _, k := range keys {
			if _, err := idx.Delete(k); err != nil {
				return fmt.Errorf("delete failed: %w", err)
			}
		}
		delElapsed := time.Since(start)

		fmt.Printf("puts:    %d in %s (%.0f ops/s)\n", count, putElapsed, float64(count)/putElapsed.Seconds())
		fmt.Printf("gets:    %d in %s (%d hits, %.0f ops/s)\n", count, getElapsed, hits, float64(count)/getElapsed.Seconds())
		fmt.Printf("deletes: %d in %s (%.0f ops/s)\n", count, delElapsed, float64(count)/delElapsed.Seconds())
		fmt.Printf("final height: %d\n", idx.Height())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(benchCmd)
	benchCmd.Flags().Int("count", 10000, "Number of keys to insert/get/delete")
	benchCmd.Flags().Int64("seed", 1, "Random seed for deterministic key generation")
}
