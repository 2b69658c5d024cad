package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-cube/internal/games/cube"
	"github.com/vovakirdan/tui-cube/internal/platform/tui"
	"github.com/vovakirdan/tui-cube/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play in the terminal",
	Long: `Start a round in the terminal. The variant defaults to "cube".

Terminals do not report key releases, so a direction stays held for a
short window after each key press (input.hold_ms in the config).

Controls:
  W/A/S/D, arrows, h/j/k/l  - Move
  R                         - Restart (after the round is over)
  Ctrl+S                    - Save a screenshot
  Q/Ctrl+C                  - Quit

Examples:
  cube play
  cube play cube_walled
  cube play --seed 42 --config ./my-cube.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := string(cube.VariantClassic)
	if len(args) > 0 {
		gameID = args[0]
	}
	if _, ok := registry.Lookup(gameID); !ok {
		return fmt.Errorf("unknown variant %q (run 'cube list' to see available variants)", gameID)
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	svc := tui.Services{
		Store:  s.store,
		Sound:  s.sound,
		Logger: s.logger,
		Player: s.player,
		Hold:   s.hold(),
	}
	if err := tui.Run(game, svc, s.runtimeConfig()); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
