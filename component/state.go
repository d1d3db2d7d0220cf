// Package component holds the plain data the game systems operate on.
package component

const (
	// PlayerSpeed is the per-frame movement step on either axis.
	PlayerSpeed = 10.0

	PlayerStartX = 50.0
	PlayerStartY = 50.0
)

// Player is the controllable sprite. Width and Height are the source image
// dimensions in pixels and drive the screen bounds checks.
type Player struct {
	X           float64
	Y           float64
	FacingRight bool
	Width       float64
	Height      float64
}

// GameState is the single mutable aggregate owned by the game loop.
type GameState struct {
	Score int
	// FireHeld is true while the fire key has stayed down since the last shot.
	FireHeld bool

	Player Player
	Lasers []Laser

	ScreenWidth  float64
	ScreenHeight float64
}

// NewGameState returns the initial state for a screen and sprite size.
func NewGameState(screenW, screenH, spriteW, spriteH float64) *GameState {
	return &GameState{
		Player: Player{
			X:           PlayerStartX,
			Y:           PlayerStartY,
			FacingRight: true,
			Width:       spriteW,
			Height:      spriteH,
		},
		ScreenWidth:  screenW,
		ScreenHeight: screenH,
	}
}

// SetSpriteSize updates the player dimensions after the sprite changes.
func (s *GameState) SetSpriteSize(w, h float64) {
	if s == nil {
		return
	}
	s.Player.Width = w
	s.Player.Height = h
}

// Fire spawns a laser from the player's position and scores it.
func (s *GameState) Fire() {
	s.Score++
	s.Lasers = append(s.Lasers, NewLaser(s.Player.X, s.Player.Y+s.Player.Height/6, s.Player.FacingRight))
}
