// Package commands wires the aidcycle CLI.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reliefops/aidcycle/pkg/infrastructure/config"
)

// Version is stamped at build time via -ldflags
var Version = "dev"

var cfgFile string

// NewRootCommand builds the aidcycle command tree
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "aidcycle",
		Short: "Humanitarian aid distribution cycle engine",
		Long: `aidcycle plans and simulates humanitarian aid distribution cycles:
needs assessment, resource allocation, logistics planning, delivery
execution and outcome analysis, with optional LLM advisory support.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "path to config file (YAML)")

	root.AddCommand(newRunCommand())
	root.AddCommand(newZonesCommand())
	root.AddCommand(newVersionCommand())

	return root
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the aidcycle version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "aidcycle %s\n", Version)
		},
	}
}

// loadConfig reads configuration from the --config file, env and defaults
func loadConfig() (*config.Config, error) {
	return config.Load(cfgFile)
}
