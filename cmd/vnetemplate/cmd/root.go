package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vertexnova/vnetemplate/internal/service/greeter"
	"github.com/vertexnova/vnetemplate/internal/version"
)

var (
	// configPath stores the path to the configuration YAML file.
	configPath string
	// logLevel overrides the level from the configuration file.
	logLevel string

	// rootCmd prints the library greeting and version through the logger.
	rootCmd = &cobra.Command{
		Use:   "vnetemplate",
		Short: "Print the VneTemplate greeting and version.",
		Long: `Configures console logging and prints the VneTemplate greeting followed by the library version.

Logging settings (name, pattern, level, async) are read from a YAML file when --config is given,
otherwise built-in defaults are used.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			return greeter.Run(ctx, &greeter.Options{
				ConfigPath: configPath,
				LogLevel:   logLevel,
			})
		},
	}
)

// Execute runs the vnetemplate CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "path to configuration file")
	rootCmd.Flags().StringVarP(&logLevel, "log-level", "l", "", "override the configured log level")
}
