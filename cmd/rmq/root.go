package main

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/AlexWan0/go-rmq/internal/console"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// newRootCmd returns the rmq command tree. Without a subcommand it runs the
// interactive console on the command's input and output.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "rmq",
		Short: "Range minimum queries over integer arrays.",
		Long: `Build a static (sparse table) or dynamic (segment tree) range minimum
	query structure and query it interactively, or time both structures
	across growing array sizes.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Configure log level
			if getFlag(cmd, "verbose") {
				log.SetLevel(log.DebugLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ui := console.New(cmd.InOrStdin(), cmd.OutOrStdout(), newRand(cmd))
			err := ui.Run(cmd.Context())
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		},
	}
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
	rootCmd.PersistentFlags().Int64("seed", 0, "seed for random arrays and queries (0 = time based)")
	rootCmd.AddCommand(newBenchCmd())
	return rootCmd
}

func newRand(cmd *cobra.Command) *rand.Rand {
	seed := getInt64(cmd, "seed")
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Debugf("random seed %d", seed)
	return rand.New(rand.NewSource(seed))
}

func getFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	return r
}

func getInt64(cmd *cobra.Command, flag string) int64 {
	r, err := cmd.Flags().GetInt64(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	return r
}

func getString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	return r
}
