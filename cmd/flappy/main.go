// flappy is a Flappy Bird clone for the terminal.
//
// Usage:
//
//	flappy play              - Play in this terminal
//	flappy scores            - Show the score history
//	flappy serve             - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>   - Custom game config YAML
//	--fps <rate>      - Set tick rate (default: 60)
//	--seed <value>    - Set RNG seed for reproducible gameplay
//	--db <path>       - Set database path (default: ~/.flappy/scores.db)
//	--log-file <path> - Set log file (default: ~/.flappy/flappy.log)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy Bird in your terminal",
	Long: `Flappy Bird for the terminal. Flap through the gaps between the pipes,
every pipe you clear is a point, touching a pipe or the ground ends the run.

Available commands:
  play     - Play in this terminal
  scores   - View the score history
  serve    - Start SSH server for remote play

Examples:
  flappy play
  flappy play --seed 42 --fps 30
  flappy scores --browse
  flappy serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.flappy/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.flappy/flappy.log", "Path to log file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
