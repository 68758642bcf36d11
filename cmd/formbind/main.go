package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	return newRootCommandWith(newHost)
}

// newRootCommandWith builds the command tree with hosts as the source of
// edit surfaces.
func newRootCommandWith(hosts hostFactory) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "formbind",
		Short:        "Edit collections of Go values through generated forms",
		Long:         "formbind generates input forms from Go types and collects the values a user submits.",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().String("log-level", envOr("FORMBIND_LOG_LEVEL", "warn"), "log level (debug, info, warn, error)")

	rootCmd.AddCommand(newEditCommand(hosts))
	rootCmd.AddCommand(newSchemaCommand())
	rootCmd.AddCommand(newTypesCommand())
	return rootCmd
}

func envOr(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
