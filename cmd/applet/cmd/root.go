// Package cmd implements the applet CLI commands.
//
// The root command dispatches to subcommands (run, table, dispatch, version).
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-drift/applet/internal/logging"
	"github.com/go-drift/applet/pkg/errors"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

var (
	logLevel string
	verbose  bool
)

var rootCmd = &cobra.Command{
	Use:   "applet",
	Short: "Host and inspect set-top-box applets",
	Long: `applet hosts a single set-top-box applet in memory. It drives the
applet through its lifecycle (load, start, pause, destroy) and feeds it
remote-control key codes, the way a middleware runtime would.

Use "applet <command> --help" for more information about a command.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		errors.SetHandler(&errors.LogHandler{Verbose: verbose})
		if !logLevelSet(cmd) {
			return nil
		}
		level, err := logging.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		logging.SetLevel(level)
		return nil
	},
}

func init() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate(fmt.Sprintf("applet version {{.Version}} (built %s)\n", BuildTime))
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error); overrides the manifest")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "V", false, "include stack traces in error reports")
}

func logLevelSet(cmd *cobra.Command) bool {
	return cmd.Flags().Changed("log-level")
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}
