// Package cli implements the cmd/slip39 command tree: a thin cobra
// front-end over pkg/slip39's Generate and Combine. It contains no
// cryptographic logic of its own, only flag parsing, config loading,
// logging, and metrics around the two entry points.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/xecrets/slip39/internal/config"
	"github.com/xecrets/slip39/pkg/logging"
)

var (
	configFile string
	debug      bool

	cfg    config.Config
	logger *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "slip39",
	Short: "SLIP-39 mnemonic sharing for a master secret",
	Long: `slip39 splits a master secret into a two-level Shamir hierarchy of
mnemonic-encoded shares, and recombines a qualifying set of shares back
into the original secret.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configFile)
		if err != nil {
			return err
		}
		if debug {
			loaded.Logging.Debug = true
		}
		cfg = loaded
		logger = logging.NewLogger(cfg.Logging.Debug)
		return nil
	},
}

// Execute runs the root command, returning the first error any
// subcommand produces.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "",
		"config file (default is $HOME/.slip39.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(combineCmd)
}

func fail(err error) error {
	logger.Error(err)
	return err
}
