package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rbgames/coolgame/component"
)

const (
	keyFire  = ebiten.KeyF
	keyLeft  = ebiten.KeyA
	keyRight = ebiten.KeyD
	keyUp    = ebiten.KeyW
	keyDown  = ebiten.KeyS
)

// KeySource reports whether a key is currently held down.
type KeySource func(key ebiten.Key) bool

type InputSystem struct {
	pressed KeySource
}

func NewInputSystem() *InputSystem {
	return NewInputSystemWithSource(ebiten.IsKeyPressed)
}

// NewInputSystemWithSource samples keys from src instead of the live keyboard.
func NewInputSystemWithSource(src KeySource) *InputSystem {
	if src == nil {
		src = ebiten.IsKeyPressed
	}
	return &InputSystem{pressed: src}
}

// Sample reads the fixed key map fresh. No edge detection happens here.
func (i *InputSystem) Sample() component.Input {
	return component.Input{
		Fire:  i.pressed(keyFire),
		Left:  i.pressed(keyLeft),
		Right: i.pressed(keyRight),
		Up:    i.pressed(keyUp),
		Down:  i.pressed(keyDown),
	}
}
