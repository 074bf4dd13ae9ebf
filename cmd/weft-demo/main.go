// Weft-demo showcases the weft terminal UI runtime.
//
// Each subcommand runs one small interactive program built on the
// runtime: a counter, a stopwatch, a live mDNS service browser, and a
// websocket message tail.
//
// Usage:
//
//	weft-demo [command] [flags]
//
// Running without arguments launches the counter.
// See 'weft-demo --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/weftlabs/weft/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "weft-demo",
	Short: "Demos for the weft terminal UI runtime",
	Long: `Interactive demos for the weft terminal UI runtime.

Each subcommand is a small Model/Update/View program: a counter, a
stopwatch, a live mDNS service browser, and a websocket tail.

If no command is specified, the counter demo runs.`,
	Version: version.Version,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCounter(cmd, args)
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("weft-demo %s (commit: %s)\n", version.Version, version.Commit)
	},
}
