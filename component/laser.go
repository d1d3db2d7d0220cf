package component

const (
	// LaserSpeed is how far a laser travels along X each frame.
	LaserSpeed = 50.0
	// LaserSize is the side length of the solid laser square.
	LaserSize = 20
	// LaserDrawOffset shifts a laser ahead of (or behind) its stored X when drawn.
	LaserDrawOffset = 40.0
)

// Laser is a horizontal projectile. RightFacing is fixed at creation.
type Laser struct {
	X           float64
	Y           float64
	RightFacing bool
}

func NewLaser(x, y float64, rightFacing bool) Laser {
	return Laser{X: x, Y: y, RightFacing: rightFacing}
}

// Step advances the laser one frame along its travel direction.
func (l *Laser) Step() {
	if l.RightFacing {
		l.X += LaserSpeed
		return
	}
	l.X -= LaserSpeed
}

// InBounds reports whether the laser lies strictly inside (0, width).
func (l Laser) InBounds(width float64) bool {
	return l.X > 0 && l.X < width
}
