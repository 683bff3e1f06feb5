package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/driftlens/driftlens/pkg/cache"
	"github.com/driftlens/driftlens/pkg/mcp"
	"github.com/driftlens/driftlens/pkg/parser"
	"github.com/driftlens/driftlens/pkg/scan"
	"github.com/driftlens/driftlens/pkg/util"
	"github.com/driftlens/driftlens/pkg/watch"
)

// newEngine wires logger, parser pool, and optional cache. The returned
// cleanup releases the parser pool.
func newEngine() (*scan.Engine, func(), error) {
	logCfg := util.DefaultLoggerConfig()
	if verbose {
		logCfg.Level = "debug"
	}
	logger := util.NewLogger(logCfg)

	pm := parser.NewManager(logger)

	var store *cache.Store
	if cacheSize > 0 {
		var err error
		store, err = cache.New(cacheSize)
		if err != nil {
			pm.Close()
			return nil, nil, err
		}
	}
	return scan.NewEngine(pm, store, logger), pm.Close, nil
}

func scanConfig() (scan.Config, error) {
	root, err := filepath.Abs(projectRoot)
	if err != nil {
		return scan.Config{}, fmt.Errorf("resolving project root: %w", err)
	}
	return scan.Config{
		ProjectRoot:       root,
		CSSVariablePrefix: cssPrefix,
		Framework:         framework,
		Concurrency:       concurrency,
	}, nil
}

func tokensCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokens",
		Short: "Extract design tokens from CSS, SCSS, JSON, and TS/JS sources",
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, cleanup, err := newEngine()
			if err != nil {
				return err
			}
			defer cleanup()

			cfg, err := scanConfig()
			if err != nil {
				return err
			}
			res, err := eng.ScanTokens(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			if jsonOutput {
				return printJSON(res)
			}
			printTokens(res)
			return nil
		},
	}
	cmd.Flags().StringVar(&cssPrefix, "prefix", "", "only keep CSS/SCSS variables with this name prefix")
	return cmd
}

func componentsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "components",
		Short: "Detect web components and their props in TS/JS sources",
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, cleanup, err := newEngine()
			if err != nil {
				return err
			}
			defer cleanup()

			cfg, err := scanConfig()
			if err != nil {
				return err
			}
			res, err := eng.ScanComponents(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			if jsonOutput {
				return printJSON(res)
			}
			printComponents(res)
			return nil
		},
	}
	cmd.Flags().StringVar(&framework, "framework", "", "force a framework: lit, stencil, fast, haunted, hybrids")
	return cmd
}

func signalsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "signals",
		Short: "Run both scans and emit the combined drift signals as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, cleanup, err := newEngine()
			if err != nil {
				return err
			}
			defer cleanup()

			cfg, err := scanConfig()
			if err != nil {
				return err
			}
			tokens, err := eng.ScanTokens(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			comps, err := eng.ScanComponents(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			return printJSON(append(tokens.Signals, comps.Signals...))
		},
	}
}

func watchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-scan on file changes and print fresh results",
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, cleanup, err := newEngine()
			if err != nil {
				return err
			}
			defer cleanup()

			cfg, err := scanConfig()
			if err != nil {
				return err
			}

			// Initial scan before entering the event loop.
			res, err := eng.ScanTokens(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			printTokens(res)

			w, err := watch.New(eng, watch.Options{
				DebounceMs: debounceMs,
				Scan:       cfg,
				OnTokens:   printTokens,
			}, nil)
			if err != nil {
				return err
			}
			if err := w.Start(); err != nil {
				return err
			}
			defer w.Stop() //nolint:errcheck

			stop := make(chan os.Signal, 1)
			signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
			<-stop
			return nil
		},
	}
	cmd.Flags().IntVar(&debounceMs, "debounce", 200, "debounce window in milliseconds")
	return cmd
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the scan engine over MCP on stdin/stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, cleanup, err := newEngine()
			if err != nil {
				return err
			}
			defer cleanup()

			logCfg := util.DefaultLoggerConfig()
			if verbose {
				logCfg.Level = "debug"
			}
			return mcp.NewServer(eng, version, util.NewLogger(logCfg)).Serve()
		},
	}
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printTokens(res *scan.TokenResult) {
	cyan := color.New(color.FgCyan, color.Bold)
	cyan.Printf("Design tokens (%d)\n", len(res.Items))
	for _, tok := range res.Items {
		fmt.Printf("  %-32s %-12s %s\n", tok.Name, tok.Category, tok.Value.String())
	}
	printFooter(res.Errors, res.Stats)
}

func printComponents(res *scan.ComponentResult) {
	cyan := color.New(color.FgCyan, color.Bold)
	cyan.Printf("Components (%d)\n", len(res.Items))
	for _, comp := range res.Items {
		fmt.Printf("  %-24s %-10s <%s> props=%d\n",
			comp.Name, comp.Source.Framework, comp.Source.TagName, len(comp.Props))
	}
	printFooter(res.Errors, res.Stats)
}

func printFooter(errs []scan.FileError, stats scan.Stats) {
	red := color.New(color.FgRed)
	for _, fe := range errs {
		red.Printf("  ! %s [%s]: %s\n", fe.File, fe.Code, fe.Message)
	}
	fmt.Printf("Scanned %d files in %dms\n", stats.FilesScanned, stats.DurationMs)
}
