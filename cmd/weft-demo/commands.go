package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/weftlabs/weft/internal/config"
	"github.com/weftlabs/weft/internal/demo/counter"
	"github.com/weftlabs/weft/internal/demo/scan"
	"github.com/weftlabs/weft/internal/demo/stopwatch"
	"github.com/weftlabs/weft/internal/demo/tail"
	"github.com/weftlabs/weft/internal/logging"
)

// Demo command flags
var (
	altScreen   bool
	logLevel    string
	tickMillis  int
	scanService string
	scanDomain  string
	scanTimeout int
)

func init() {
	rootCmd.PersistentFlags().BoolVar(&altScreen, "alt-screen", false, "Render into the alternate screen buffer")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log verbosity (debug, info, warn, error); logs go to a file, see WEFT_LOG_FILE")

	rootCmd.AddCommand(counterCmd)
	rootCmd.AddCommand(stopwatchCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(tailCmd)
}

// setup loads the user config and initializes logging. Flag values
// override whatever the config file says.
func setup(cmd *cobra.Command) (config.Config, error) {
	if err := logging.Initialize(logLevel); err != nil {
		return config.Config{}, err
	}

	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	if cmd.Flags().Changed("alt-screen") {
		cfg.AltScreen = altScreen
	}
	return cfg, nil
}

var counterCmd = &cobra.Command{
	Use:   "counter",
	Short: "A keyboard-driven counter",
	Long: `The smallest possible weft program: a counter driven by + and -.

Useful for watching render coalescing: hold a key down and the display
still repaints once per event-loop pass, not once per keypress.`,
	RunE: runCounter,
}

func runCounter(cmd *cobra.Command, args []string) error {
	cfg, err := setup(cmd)
	if err != nil {
		return err
	}
	defer logging.Sync()
	return counter.Run(cfg.AltScreen)
}

var stopwatchCmd = &cobra.Command{
	Use:   "stopwatch",
	Short: "A tick-driven stopwatch with laps",
	Long: `A stopwatch advanced by a chain of single-shot tick commands.

Space pauses, l records a lap, r resets.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := setup(cmd)
		if err != nil {
			return err
		}
		defer logging.Sync()

		interval := time.Duration(cfg.Stopwatch.TickMillis) * time.Millisecond
		if cmd.Flags().Changed("tick") {
			interval = time.Duration(tickMillis) * time.Millisecond
		}
		return stopwatch.Run(interval, cfg.AltScreen)
	},
}

func init() {
	stopwatchCmd.Flags().IntVar(&tickMillis, "tick", 100, "Timer resolution in milliseconds")
}

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Browse mDNS services on the local network",
	Long: `Browse for DNS-SD service instances and list them as they appear.

Discoveries stream into the UI live; the browse window closes after the
timeout but results stay on screen until you quit.`,
	Example: `  # Browse for HTTP services (default)
  weft-demo scan

  # Browse for workstations for one minute
  weft-demo scan --service _workstation._tcp --timeout 60`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := setup(cmd)
		if err != nil {
			return err
		}
		defer logging.Sync()

		service, domain, timeout := cfg.Scan.Service, cfg.Scan.Domain, cfg.Scan.TimeoutSeconds
		if cmd.Flags().Changed("service") {
			service = scanService
		}
		if cmd.Flags().Changed("domain") {
			domain = scanDomain
		}
		if cmd.Flags().Changed("timeout") {
			timeout = scanTimeout
		}
		return scan.Run(service, domain, time.Duration(timeout)*time.Second, cfg.AltScreen)
	},
}

func init() {
	scanCmd.Flags().StringVar(&scanService, "service", "_http._tcp", "DNS-SD service type to browse for")
	scanCmd.Flags().StringVar(&scanDomain, "domain", "local.", "Browse domain")
	scanCmd.Flags().IntVar(&scanTimeout, "timeout", 30, "Browse window in seconds")
}

var tailCmd = &cobra.Command{
	Use:   "tail [url]",
	Short: "Tail messages from a websocket",
	Long: `Connect to a websocket endpoint and display messages as they arrive.

The url argument may be omitted when tail.url is set in the config file.`,
	Example: `  weft-demo tail ws://127.0.0.1:9000/feed`,
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := setup(cmd)
		if err != nil {
			return err
		}
		defer logging.Sync()

		url := cfg.Tail.URL
		if len(args) > 0 {
			url = args[0]
		}
		if url == "" {
			return fmt.Errorf("no websocket url given (pass one or set tail.url in the config file)")
		}
		return tail.Run(url, cfg.AltScreen)
	},
}
