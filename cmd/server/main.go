package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"recruit/internal/platform/config"
)

type rootOptions struct {
	configFile string
	inMemory   bool
}

// loadConfig prefers --config over CONFIG_FILE.
func (o *rootOptions) loadConfig() (config.Server, error) {
	if o.configFile != "" {
		return config.Load(o.configFile)
	}
	return config.FromEnv()
}

// main wires the command tree. Business logic lives in internal packages.
func main() {
	opts := &rootOptions{}
	rootCmd := &cobra.Command{
		Use:   "recruit",
		Short: "Teacher recruitment application service",
		Long: `recruit accepts teaching applications per specialty, assigns evaluators
and lets reviewers list and decide applications within their scope.
Running without a subcommand starts the HTTP API.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), opts)
		},
	}
	rootCmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "path to a YAML config file (defaults to $CONFIG_FILE)")
	rootCmd.Flags().BoolVar(&opts.inMemory, "in-memory", false, "use seeded in-memory stores instead of PostgreSQL")

	rootCmd.AddCommand(serveCmd(opts))
	rootCmd.AddCommand(migrateCmd(opts))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
