// tetromino is a TUI falling-block game playable locally or over SSH.
//
// Usage:
//
//	tetromino play              - Play (interactive mode picker)
//	tetromino play <mode>       - Play a specific mode directly
//	tetromino list              - List available game modes
//	tetromino serve             - Start SSH server for remote play
//	tetromino scores <mode>     - Show high scores for a mode
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.tetromino/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import game modes to register them
	_ "github.com/vovakirdan/tui-tetromino/internal/games/tetromino"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetromino",
	Short: "Falling blocks in your terminal",
	Long: `tetromino is a terminal falling-block game with marathon and
sprint modes, playable locally or served over SSH.

Available commands:
  list     - Show all available game modes
  play     - Play (mode picker, or a specific mode)
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  tetromino play
  tetromino play tetromino_sprint
  tetromino serve --ssh :2222
  tetromino scores tetromino`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tetromino/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
