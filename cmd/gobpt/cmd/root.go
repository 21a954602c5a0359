package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ssargent/gobpt/pkg/config"
	"github.com/ssargent/gobpt/pkg/index"
)

type contextKey string

const indexContextKey contextKey = "index"

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "gobpt",
	Short: "gobpt - an embeddable ordered B+ tree index",
	Long: `gobpt wraps an in-memory B+ tree index (pkg/bpt) with a
mutex, Prometheus metrics, and a small HTTP surface for demos and
benchmarking.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if order, _ := cmd.Flags().GetInt("order"); order != 0 {
			cfg.Order = order
		}
		if bind, _ := cmd.Flags().GetString("bind"); bind != "" {
			cfg.Bind = bind
		}
		// serve reads the resolved address back from the bind flag.
		_ = cmd.Flags().Set("bind", cfg.Bind)
		if budget, _ := cmd.Flags().GetInt("node-budget"); budget != 0 {
			cfg.NodeBudget = budget
		}

		idx, err := index.New(index.Config{Order: cfg.Order, NodeBudget: cfg.NodeBudget}, index.NewMetrics())
		if err != nil {
			return fmt.Errorf("failed to construct index: %w", err)
		}

		cmd.SetContext(context.WithValue(cmd.Context(), indexContextKey, idx))
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().Int("order", 0, "B+ tree branching order (overrides config)")
	rootCmd.PersistentFlags().String("bind", "", "HTTP bind address (overrides config)")
	rootCmd.PersistentFlags().Int("node-budget", 0, "Maximum tree node count, 0 for unbounded (overrides config)")
}

func indexFromContext(cmd *cobra.Command) (*index.Index, error) {
	idx, ok := cmd.Context().Value(indexContextKey).(*index.Index)
	if !ok {
		return nil, fmt.Errorf("index not found in command context")
	}
	return idx, nil
}
