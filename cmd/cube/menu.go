package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-cube/internal/platform/tui"
	"github.com/vovakirdan/tui-cube/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a variant from a menu",
	Long: `Start in interactive menu mode. After a round you return to the menu.
Scores of every round played are kept until the program exits.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select variant
  Tab          - Scoreboard
  Q            - Quit`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	cfg := s.runtimeConfig()
	svc := tui.Services{
		Store:  s.store,
		Sound:  s.sound,
		Logger: s.logger,
		Player: s.player,
		Hold:   s.hold(),
	}

	for {
		res, err := tui.RunMenu(s.store, cfg)
		if err != nil {
			return err
		}
		cfg = res.Config

		if res.Quit {
			return nil
		}

		if res.WantsScoreboard {
			goBack, err := tui.RunScoreboard(s.store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}
			continue
		}

		if res.GameID == "" {
			return nil
		}
		game, err := registry.Create(res.GameID)
		if err != nil {
			return err
		}

		back, err := tui.RunFromMenu(game, svc, cfg)
		if err != nil {
			return err
		}
		if !back {
			return nil
		}
	}
}
