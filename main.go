// coolgame is a small arcade loop: move with WASD, fire lasers with F.
//
// Usage:
//
//	coolgame [--config path] [--resources dir] [--watch] [--debug]
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rbgames/coolgame/assets"
	"github.com/rbgames/coolgame/config"
	"github.com/spf13/cobra"
)

var (
	flagConfig    string
	flagResources string
	flagWatch     bool
	flagDebug     bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error("coolgame", "err", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "coolgame",
	Short: "COOLGAME - move, shoot, score",
	Long: `COOLGAME opens a window with a player sprite you can move and shoot with.

Controls:
  W/A/S/D  - Move
  F        - Fire a laser (one per press)

The player sprite is read from <resources>/goodpixelguy.png and the game
will not start without it. Pass --resources "" to use the copy built into
the binary instead.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to config YAML (default: ./coolgame.yaml, then built-in)")
	rootCmd.Flags().StringVar(&flagResources, "resources", "", "Directory to load sprites from (empty: use the built-in sprite)")
	rootCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the player sprite when it changes on disk")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	applyFlags(cmd, &cfg)

	if err := setupLogging(cfg.LogLevel); err != nil {
		return err
	}

	log.Info("starting", "title", cfg.Window.Title, "width", cfg.Window.Width, "height", cfg.Window.Height, "resources", cfg.Resources)

	game, err := NewGame(cfg)
	if err != nil {
		return err
	}

	if cfg.Watch && cfg.Resources == "" {
		log.Warn("sprite reload disabled, no resources directory")
	} else if cfg.Watch {
		w, err := assets.NewWatcher(cfg.Resources)
		if err != nil {
			log.Warn("sprite reload disabled", "dir", cfg.Resources, "err", err)
		} else {
			defer w.Close()
			game.WatchResources(w)
			log.Debug("watching resources", "dir", cfg.Resources)
		}
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)

	if err := ebiten.RunGame(game); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}

// applyFlags lets explicitly set flags override file values.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("resources") {
		cfg.Resources = flagResources
	}
	if flags.Changed("watch") {
		cfg.Watch = flagWatch
	}
	if flagDebug {
		cfg.LogLevel = "debug"
	}
}

func setupLogging(level string) error {
	if level == "" {
		level = "info"
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	log.SetLevel(lvl)
	log.SetReportTimestamp(true)
	return nil
}
