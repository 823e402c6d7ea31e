package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rob21runner/induslog/pkg/logger"
)

var version = "0.1.0-dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "induslog",
		Short: "Synthetic e-commerce clickstream log generator",
		Long: `induslog synthesizes plausible e-commerce clickstream logs.

It simulates a day of randomized user journeys over a fixed population of
synthetic users and products and writes the resulting event log as a JSON
array file for downstream exploration.`,
	}

	rootCmd.AddCommand(
		newRunCmd(),
		newStatsCmd(),
		newVersionCmd(),
	)

	defer logger.Sync()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("induslog version %s\n", version)
		},
	}
}
