package main

import (
	"fmt"
	"os"
	"runtime"

	"solarsystem/internal/app"
	"solarsystem/internal/config"
	"solarsystem/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configPath string
	verbose    bool

	// exitCode is the payload of the close event that ended the loop.
	exitCode int
)

var rootCmd = &cobra.Command{
	Use:           "solarsystem",
	Short:         "Render the Earth orbiting the Sun",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	// GLFW and the GL context must stay on the main OS thread.
	runtime.LockOSThread()

	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a YAML config file (optional)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}

	logger, err := logging.New(cfg.Logging.Level)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	a, err := app.Open(cfg, logger)
	if err != nil {
		logger.Error("bootstrap failed", zap.Error(err))
		return err
	}
	defer a.Close()

	exitCode, err = a.Run()
	if err != nil {
		logger.Error("event loop failed", zap.Error(err))
		return err
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "solarsystem:", err)
		os.Exit(1)
	}
	os.Exit(exitCode)
}
