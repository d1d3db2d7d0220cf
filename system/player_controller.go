package system

import "github.com/rbgames/coolgame/component"

type PlayerControllerSystem struct{}

func NewPlayerControllerSystem() *PlayerControllerSystem {
	return &PlayerControllerSystem{}
}

// Update applies one frame of input. The branch order is observable: fire
// reads the facing left over from the previous frame, and when left and right
// are both held the left branch writes facing last.
func (p *PlayerControllerSystem) Update(s *component.GameState, in component.Input) {
	if s == nil {
		return
	}

	if in.Fire && !s.FireHeld {
		s.Fire()
		s.FireHeld = true
	}
	if !in.Fire {
		s.FireHeld = false
	}

	pl := &s.Player
	if in.Right {
		if pl.X+pl.Width/4 < s.ScreenWidth {
			pl.X += component.PlayerSpeed
		}
		pl.FacingRight = true
	}
	if in.Left {
		if pl.X-pl.Width/4 > 0 {
			pl.X -= component.PlayerSpeed
		}
		pl.FacingRight = false
	}
	if in.Up {
		if pl.Y > 0 {
			pl.Y -= component.PlayerSpeed
		}
	}
	if in.Down {
		if pl.Y+pl.Height/2 < s.ScreenHeight {
			pl.Y += component.PlayerSpeed
		}
	}
}
