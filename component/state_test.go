package component

import "testing"

func TestNewGameStateDefaults(t *testing.T) {
	s := NewGameState(800, 600, 64, 96)
	if s.Score != 0 {
		t.Fatalf("expected score 0, got %d", s.Score)
	}
	if s.Player.X != PlayerStartX || s.Player.Y != PlayerStartY {
		t.Fatalf("expected start (%v,%v), got (%v,%v)", PlayerStartX, PlayerStartY, s.Player.X, s.Player.Y)
	}
	if !s.Player.FacingRight {
		t.Fatalf("expected player to start facing right")
	}
	if len(s.Lasers) != 0 {
		t.Fatalf("expected no lasers, got %d", len(s.Lasers))
	}
	if s.FireHeld {
		t.Fatalf("expected fire not held")
	}
}

func TestFireSpawnsLaserAtSpriteSixth(t *testing.T) {
	s := NewGameState(800, 600, 64, 96)
	s.Player.FacingRight = false
	s.Fire()
	if s.Score != 1 {
		t.Fatalf("expected score 1, got %d", s.Score)
	}
	if len(s.Lasers) != 1 {
		t.Fatalf("expected 1 laser, got %d", len(s.Lasers))
	}
	l := s.Lasers[0]
	if l.X != 50 || l.Y != 50+16 || l.RightFacing {
		t.Fatalf("unexpected laser %+v", l)
	}
}

func TestLaserStepAndBounds(t *testing.T) {
	cases := []struct {
		name  string
		laser Laser
		wantX float64
	}{
		{"right", NewLaser(100, 0, true), 150},
		{"left", NewLaser(100, 0, false), 50},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			l := c.laser
			l.Step()
			if l.X != c.wantX {
				t.Fatalf("expected x=%v, got %v", c.wantX, l.X)
			}
		})
	}

	bounds := []struct {
		x    float64
		want bool
	}{
		{-1, false},
		{0, false},
		{1, true},
		{799, true},
		{800, false},
		{850, false},
	}
	for _, b := range bounds {
		if got := NewLaser(b.x, 0, true).InBounds(800); got != b.want {
			t.Fatalf("InBounds(%v) = %v, want %v", b.x, got, b.want)
		}
	}
}

func TestSetSpriteSize(t *testing.T) {
	s := NewGameState(800, 600, 64, 96)
	s.SetSpriteSize(32, 48)
	if s.Player.Width != 32 || s.Player.Height != 48 {
		t.Fatalf("expected 32x48, got %vx%v", s.Player.Width, s.Player.Height)
	}
	var nilState *GameState
	nilState.SetSpriteSize(1, 1)
}
