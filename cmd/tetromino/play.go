package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetromino/internal/core"
	"github.com/vovakirdan/tui-tetromino/internal/games/tetromino"
	"github.com/vovakirdan/tui-tetromino/internal/platform/tui"
	"github.com/vovakirdan/tui-tetromino/internal/registry"
	"github.com/vovakirdan/tui-tetromino/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play the game",
	Long: `Start playing. Without an argument an interactive mode picker is shown.

Controls:
  A/D, Left/Right - Shift piece
  W/Up/X          - Rotate clockwise
  Z               - Rotate counter-clockwise
  S/Down          - Soft drop
  Space           - Hard drop
  E/C             - Hold piece
  P/Esc           - Pause
  R               - Restart (after game over)
  Q/Ctrl+C        - Quit

Difficulty options:
  easy   - Slow start, long lock delay, gravity rises every 4 lines
  normal - Default pacing
  hard   - Fast start, short lock delay
  fixed  - Gravity never speeds up

Examples:
  tetromino play
  tetromino play tetromino_sprint
  tetromino play tetromino --difficulty hard
  tetromino play --config ./my-tetromino.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Get terminal size early for the mode selector
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	tetromino.SetConfigPath(flagConfig)
	tetromino.SetDifficultyPreset(flagDifficulty)

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	var gameID string
	if len(args) == 1 {
		gameID = args[0]
		if !registry.Exists(gameID) {
			fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
			fmt.Fprintln(os.Stderr, "Run 'tetromino list' to see available modes.")
			os.Exit(1)
		}
	} else {
		// Menu loop: the selector can detour through the scoreboard
		for {
			result, selErr := tui.RunModeSelector(cfg)
			if selErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
				os.Exit(1)
			}

			if result.WantsScoreboard {
				goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
				if sbErr != nil {
					fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
				}
				if goBack {
					continue // Back to menu
				}
				return // User quit from scoreboard
			}

			// User pressed back or quit
			if result.Quit || result.Selection == nil {
				return
			}

			gameID = "tetromino"
			if result.Selection.Mode == tui.GameModeSprint {
				gameID = "tetromino_sprint"
			}
			if result.Selection.Difficulty != "" {
				tetromino.SetDifficultyPreset(result.Selection.Difficulty)
			}
			break
		}
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	if runErr := tui.Run(game, store, cfg); runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
