package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play the campaign",
	Long: `Play every level in order, or start the campaign at the given level.
The level may also be a path to a level YAML file.

Controls:
  Left/Right, A/D  - Run
  Space/Up/W       - Jump
  P/Esc            - Pause
  B/Esc            - Back (when paused or finished)
  R                - Restart (after game over)
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - 5 lives
  normal - 3 lives
  hard   - 1 life

Examples:
  platformer play
  platformer play 03-drip
  platformer play ./my-level.yaml
  platformer play --difficulty hard
  platformer play --config ./my-physics.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	levelID := ""
	if len(args) == 1 {
		entry, err := resolveLevel(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		levelID = entry.ID
	}

	store := openStore()
	game := newGame(levelID, store)

	_, _, runErr := tui.Run(game, store, runtimeConfig(), gameCfg.Controls.HoldTicks)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
