package main

import (
	"fmt"

	"github.com/AlexWan0/go-rmq/internal/bench"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newBenchCmd() *cobra.Command {
	benchCmd := &cobra.Command{
		Use:   "bench [flags]",
		Short: "time construction and queries of both structures.",
		Long: `Time construction (median) and queries (mean and standard deviation)
	of the static and dynamic structures over a series of array sizes.
	Sizes and repetition counts default to 10 .. 10^6 and can be given in
	a YAML file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := bench.DefaultConfig()
			if path := getString(cmd, "config"); path != "" {
				var err error
				if cfg, err = bench.LoadConfig(path); err != nil {
					return err
				}
			}
			format := getString(cmd, "format")
			log.Debugf("benchmarking sizes %v (%d builds, %d queries)", cfg.Sizes, cfg.Builds, cfg.Queries)
			tester := bench.NewTester(cfg, newRand(cmd))
			if err := tester.Run(cmd.Context()); err != nil {
				return fmt.Errorf("benchmark: %w", err)
			}
			return tester.Encode(cmd.OutOrStdout(), format)
		},
	}
	benchCmd.Flags().StringP("config", "c", "", "YAML file with sizes, builds, queries and max_value")
	benchCmd.Flags().StringP("format", "f", "text", "report format: text, json or msgpack")
	return benchCmd
}
