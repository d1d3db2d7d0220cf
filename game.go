package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rbgames/coolgame/assets"
	"github.com/rbgames/coolgame/component"
	"github.com/rbgames/coolgame/config"
	"github.com/rbgames/coolgame/system"
)

type Game struct {
	state *component.GameState

	input  *system.InputSystem
	player *system.PlayerControllerSystem
	lasers *system.LaserSystem
	render *system.RenderSystem

	screenW   int
	screenH   int
	resources string

	reloads     <-chan string
	watchErrors <-chan error
}

// NewGame loads the player sprite and builds the initial state. A sprite that
// cannot be loaded is fatal to the caller.
func NewGame(cfg config.Config) (*Game, error) {
	playerImg, err := assets.LoadPlayer(cfg.Resources)
	if err != nil {
		return nil, fmt.Errorf("load player sprite: %w", err)
	}
	render, err := system.NewRenderSystem(playerImg)
	if err != nil {
		return nil, err
	}

	b := playerImg.Bounds()
	state := component.NewGameState(
		float64(cfg.Window.Width), float64(cfg.Window.Height),
		float64(b.Dx()), float64(b.Dy()),
	)

	return &Game{
		state:     state,
		input:     system.NewInputSystem(),
		player:    system.NewPlayerControllerSystem(),
		lasers:    system.NewLaserSystem(),
		render:    render,
		screenW:   cfg.Window.Width,
		screenH:   cfg.Window.Height,
		resources: cfg.Resources,
	}, nil
}

// WatchResources reloads the player sprite whenever w reports a change.
func (g *Game) WatchResources(w *assets.Watcher) {
	if g == nil || w == nil {
		return
	}
	g.reloads = w.Events
	g.watchErrors = w.Errors
}

func (g *Game) Update() error {
	g.lasers.Update(g.state)
	g.player.Update(g.state, g.input.Sample())
	g.applyReloads()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.render.Draw(screen, g.state, ebiten.ActualFPS())
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// applyReloads drains pending watcher events without blocking the frame.
func (g *Game) applyReloads() {
	for {
		select {
		case name, ok := <-g.reloads:
			if !ok {
				g.reloads = nil
				continue
			}
			if name != assets.PlayerSprite {
				continue
			}
			img, err := assets.LoadPlayer(g.resources)
			if err != nil {
				log.Warn("sprite reload failed, keeping previous", "file", name, "err", err)
				continue
			}
			g.render.SetPlayerImage(img)
			b := img.Bounds()
			g.state.SetSpriteSize(float64(b.Dx()), float64(b.Dy()))
			log.Info("reloaded sprite", "file", name, "width", b.Dx(), "height", b.Dy())
		case err, ok := <-g.watchErrors:
			if !ok {
				g.watchErrors = nil
				continue
			}
			log.Warn("resource watcher", "err", err)
		default:
			return
		}
	}
}
