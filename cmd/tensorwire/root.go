package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "tensorwire",
	Short: "Encode, decode and inspect wire tensors",
	Long: `TensorWire converts between the compact protobuf tensor format used by
model serving systems and dense in-memory tensors. It narrows payloads on
encode and assembles per-feature columns into sample matrices on decode.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// setupLogger returns a development logger when --verbose is set and a
// no-op logger otherwise.
func setupLogger() *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
