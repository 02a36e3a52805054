package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var logLevel string

// rootCmd - корневая команда трекера
var rootCmd = &cobra.Command{
	Use:   "safewalk-tracker",
	Short: "SafeWalk tracker: safe mode, location tracking and checkpoint alerts",
	Long: `safewalk-tracker is the foreground side of SafeWalk. It follows the
location of a device, warns when you are near a checkpoint and keeps the
background monitor informed so alerts continue while the tracker is idle.

Examples:
  # Follow a phone over MQTT and talk to the server
  safewalk-tracker track --device phone-1

  # Replay a recorded walk without a server
  safewalk-tracker track --replay walk.yaml --standalone`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (default: LOG_LEVEL or info)")
	rootCmd.AddCommand(trackCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "safewalk-tracker: %v\n", err)
		os.Exit(1)
	}
}
