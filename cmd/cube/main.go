// cube is a terminal arcade game: steer a square into every target of a wave
// before the countdown runs out.
//
// Usage:
//
//	cube list               - List available variants
//	cube play [variant]     - Play in the terminal
//	cube window [variant]   - Play in a desktop window
//	cube menu               - Pick a variant interactively
//	cube serve              - Start SSH server for remote play
//
// Global flags:
//
//	--seed <value>     - Set RNG seed for reproducible spawns
//	--config <path>    - Load a custom cube.yaml
//	--log-file <path>  - Write structured logs to a file
//	--sound            - Enable sound effects
package main

import (
	"fmt"
	"io"
	"os"
	"os/user"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-cube/internal/audio"
	"github.com/vovakirdan/tui-cube/internal/config"
	"github.com/vovakirdan/tui-cube/internal/core"
	"github.com/vovakirdan/tui-cube/internal/games/cube"
	"github.com/vovakirdan/tui-cube/internal/storage"
)

var (
	// Global flags
	flagSeed    int64
	flagConfig  string
	flagLogFile string
	flagSound   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cube",
	Short: "Cube - collect the targets before time runs out",
	Long: `Cube is a small arcade game. Move the square into every target of
the wave before the ten second countdown reaches zero. Clearing a wave
spawns the next one and refills the timer.

Available commands:
  list     - Show all variants
  play     - Play a variant in the terminal
  window   - Play a variant in a desktop window
  menu     - Interactive variant picker with scoreboard
  serve    - Start SSH server for remote play

Examples:
  cube play
  cube play cube_walled --seed 42
  cube window
  cube serve --ssh :2222`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom cube config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagSound, "sound", false, "Enable sound effects")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
}

// session holds everything a local frontend needs for one run.
type session struct {
	cfg    config.CubeConfig
	logger *log.Logger
	store  *storage.Store
	sound  audio.Player
	player string

	closers []func()
}

// openSession validates the config, then opens logging, the scoreboard and
// sound. Call close when done.
func openSession() (*session, error) {
	cfg, err := config.LoadCube(flagConfig)
	if err != nil {
		return nil, err
	}
	cube.SetConfigPath(flagConfig)

	s := &session{cfg: cfg, player: playerName()}

	var out io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		s.closers = append(s.closers, func() { f.Close() })
	}
	s.logger = log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "cube",
	})
	if flagLogFile != "" {
		s.logger.SetLevel(log.DebugLevel)
	}

	store, err := storage.Open()
	if err != nil {
		// The game still works without a scoreboard.
		s.logger.Warn("scoreboard unavailable", "err", err)
	} else {
		s.store = store
		s.closers = append(s.closers, func() { store.Close() })
	}

	s.sound = audio.Silent{}
	if flagSound {
		sm := audio.NewSoundManager()
		if err := sm.Initialize(); err != nil {
			s.logger.Warn("sound disabled", "err", err)
		} else {
			s.sound = sm
			s.closers = append(s.closers, sm.Cleanup)
		}
	}
	return s, nil
}

func (s *session) close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
}

// runtimeConfig sizes the screen from the terminal when there is one.
func (s *session) runtimeConfig() core.RuntimeConfig {
	rc := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	rc.TickRate = s.cfg.Round.TickRate
	rc.Seed = flagSeed
	return rc
}

func (s *session) hold() time.Duration {
	return time.Duration(s.cfg.Input.HoldMillis) * time.Millisecond
}

func playerName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "player"
}
