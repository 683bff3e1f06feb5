// Command driftlens scans a frontend project for design tokens and web
// components and reports them as human-readable tables, JSON, or drift
// signals. It can also serve the engine over MCP or watch for changes.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

var (
	projectRoot string
	cssPrefix   string
	framework   string
	concurrency int
	cacheSize   int
	jsonOutput  bool
	verbose     bool
	debounceMs  int
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "driftlens",
		Short:         "Extract design tokens and web components from frontend sources",
		Long:          "driftlens scans CSS, SCSS, JSON, and TS/JS sources for design tokens and web-component definitions, producing the raw signals a design-drift comparator consumes.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&projectRoot, "root", "r", ".", "project root to scan")
	rootCmd.PersistentFlags().IntVar(&concurrency, "concurrency", 0, "worker pool size (0 = auto)")
	rootCmd.PersistentFlags().IntVar(&cacheSize, "cache-size", 0, "result cache capacity in files (0 = disabled)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "emit raw JSON instead of tables")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(
		tokensCmd(),
		componentsCmd(),
		signalsCmd(),
		watchCmd(),
		serveCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("driftlens version %s\n", version)
		},
	}
}
