// Command lvroute answers shortest-route questions over a road network, from
// the terminal or over HTTP.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvroute/internal/config"
	"github.com/katalvlaran/lvroute/internal/logging"
	"github.com/katalvlaran/lvroute/internal/metrics"
	"github.com/katalvlaran/lvroute/internal/network"
)

// Build-time variables set via ldflags.
var (
	version = "0.1.0"
	commit  = ""
)

func versionString() string {
	if commit != "" {
		return fmt.Sprintf("lvroute version %s (commit: %s)", version, commit)
	}
	return fmt.Sprintf("lvroute version %s-dev", version)
}

// app carries state shared by subcommands.
type app struct {
	flagNetwork  string
	flagLogLevel string
	flagFormat   string

	cfg *config.Config
	log *logrus.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:          "lvroute",
		Short:        "lvroute - fastest routes across a road network",
		Version:      versionString(),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&a.flagNetwork, "network", "", "YAML network file (env: "+config.EnvNetworkFile+"; default: built-in Maricá–Niterói network)")
	rootCmd.PersistentFlags().StringVar(&a.flagLogLevel, "log-level", "", "Log level (env: "+config.EnvLogLevel+")")
	rootCmd.PersistentFlags().StringVar(&a.flagFormat, "format", formatText, "Output format: text|json")

	rootCmd.AddCommand(newRouteCmd(a))
	rootCmd.AddCommand(newNodesCmd(a))
	rootCmd.AddCommand(newServeCmd(a))
	rootCmd.AddCommand(newGenerateCmd(a))

	return rootCmd
}

// setup resolves configuration: flag takes precedence, then env, then defaults.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("network") {
		cfg.NetworkFile = a.flagNetwork
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = a.flagLogLevel
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	if a.flagFormat != formatText && a.flagFormat != formatJSON {
		return fmt.Errorf("--format must be %q or %q, got %q", formatText, formatJSON, a.flagFormat)
	}

	a.cfg = cfg
	a.log = logging.NewWithOutput(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)

	return nil
}

// loadNetwork reads and builds the configured road network.
func (a *app) loadNetwork() (*network.Network, error) {
	nf, err := config.LoadNetwork(a.cfg.NetworkFile)
	if err != nil {
		return nil, err
	}

	return nf.Build(network.WithLogger(a.log), network.WithObserver(metrics.Recorder{}))
}
