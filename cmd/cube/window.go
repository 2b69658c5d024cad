package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-cube/internal/games/cube"
	"github.com/vovakirdan/tui-cube/internal/platform/window"
	"github.com/vovakirdan/tui-cube/internal/registry"
)

var windowCmd = &cobra.Command{
	Use:   "window [variant]",
	Short: "Play in a desktop window",
	Long: `Open a window and play there. Unlike the terminal, a window reports
real key releases, so movement follows the keys exactly.

Controls:
  W/A/S/D, arrows  - Move
  R                - Restart (after the round is over)
  Esc              - Quit

Examples:
  cube window
  cube window cube_walled --sound`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWindow,
}

func runWindow(_ *cobra.Command, args []string) error {
	gameID := string(cube.VariantClassic)
	if len(args) > 0 {
		gameID = args[0]
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	created, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("%w (run 'cube list' to see available variants)", err)
	}
	game, ok := created.(*cube.Game)
	if !ok {
		return fmt.Errorf("variant %q cannot run in a window", gameID)
	}

	rc := s.runtimeConfig()
	opts := window.Options{
		Store:  s.store,
		Sound:  s.sound,
		Logger: s.logger,
		Player: s.player,
	}
	if err := window.Run(game, rc, opts); err != nil {
		return fmt.Errorf("error running window: %w", err)
	}
	return nil
}
