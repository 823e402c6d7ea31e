package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/rob21runner/induslog/internal/sim"
	"github.com/rob21runner/induslog/internal/storage"
)

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats <file>",
		Short: "Summarize a saved log file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := storage.ReadLogFile(args[0])
			if err != nil {
				return err
			}
			report := sim.BuildReport(entries)

			if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}

			printReport(report)
			return nil
		},
	}
	cmd.Flags().Bool("json", false, "Output as JSON")
	return cmd
}

func printReport(r *sim.Report) {
	fmt.Printf("Entries: %d\n", r.Total)

	fmt.Println("\nBy event type:")
	for _, k := range sortedKeys(r.ByType) {
		fmt.Printf("  %-14s %d\n", k, r.ByType[sim.EventType(k)])
	}

	fmt.Println("\nBy hour:")
	for h := 0; h < 24; h++ {
		if n, ok := r.ByHour[h]; ok {
			fmt.Printf("  %02d:00  %d\n", h, n)
		}
	}

	fmt.Println("\nBy country:")
	for _, k := range sortedKeys(r.ByCountry) {
		fmt.Printf("  %-8s %d\n", k, r.ByCountry[k])
	}

	fmt.Println("\nBy device:")
	for _, k := range sortedKeys(r.ByDevice) {
		fmt.Printf("  %-8s %d\n", k, r.ByDevice[sim.DeviceType(k)])
	}

	if len(r.TopProducts) > 0 {
		fmt.Println("\nTop viewed products:")
		for _, p := range r.TopProducts {
			fmt.Printf("  %-10s %d\n", p.ProductID, p.Views)
		}
	}

	fmt.Printf("\nSessions: %d (avg span %s)\n", r.Sessions, r.AvgSession.Round(time.Second))
}

func sortedKeys[K ~string, V any](m map[K]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, string(k))
	}
	sort.Strings(keys)
	return keys
}
