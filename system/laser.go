package system

import "github.com/rbgames/coolgame/component"

// LaserSystem moves lasers that were drawn last frame and drops the ones that
// left the screen. It runs before input so a laser fired this frame is neither
// moved nor removed until the next update.
type LaserSystem struct{}

func NewLaserSystem() *LaserSystem {
	return &LaserSystem{}
}

func (l *LaserSystem) Update(s *component.GameState) {
	if s == nil || len(s.Lasers) == 0 {
		return
	}

	writeIdx := 0
	for _, laser := range s.Lasers {
		laser.Step()
		if !laser.InBounds(s.ScreenWidth) {
			continue
		}
		s.Lasers[writeIdx] = laser
		writeIdx++
	}
	s.Lasers = s.Lasers[:writeIdx]
}
