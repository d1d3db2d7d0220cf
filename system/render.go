package system

import (
	"bytes"
	"fmt"
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/rbgames/coolgame/component"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	playerDrawScale = 0.5
	hudX            = 25.0
	hudY            = 25.0
	hudFontSize     = 35.0
)

var backgroundColor = color.RGBA{R: 0x80, G: 0x00, B: 0x80, A: 0xff}

// Canvas is the draw target for one frame.
type Canvas interface {
	Fill(clr color.Color)
	DrawImage(img *ebiten.Image, op *ebiten.DrawImageOptions)
	DrawText(s string, face text.Face, op *text.DrawOptions)
}

type screenCanvas struct {
	*ebiten.Image
}

func (c screenCanvas) DrawText(s string, face text.Face, op *text.DrawOptions) {
	text.Draw(c.Image, s, face, op)
}

type RenderSystem struct {
	player  *ebiten.Image
	playerW float64
	laser   *ebiten.Image
	face    text.Face
}

// NewRenderSystem builds the laser square and the HUD face around the given
// player sprite.
func NewRenderSystem(player *ebiten.Image) (*RenderSystem, error) {
	if player == nil {
		return nil, fmt.Errorf("render: nil player image")
	}
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("render: load hud font: %w", err)
	}

	laser := ebiten.NewImage(component.LaserSize, component.LaserSize)
	laser.Fill(colornames.Red)

	return &RenderSystem{
		player:  player,
		playerW: float64(player.Bounds().Dx()),
		laser:   laser,
		face:    &text.GoTextFace{Source: src, Size: hudFontSize},
	}, nil
}

// SetPlayerImage swaps the player sprite, e.g. after a reload from disk.
func (r *RenderSystem) SetPlayerImage(img *ebiten.Image) {
	if r == nil || img == nil {
		return
	}
	r.player = img
	r.playerW = float64(img.Bounds().Dx())
}

// Draw renders one frame to screen. It never mutates state.
func (r *RenderSystem) Draw(screen *ebiten.Image, s *component.GameState, fps float64) {
	if screen == nil {
		return
	}
	r.DrawTo(screenCanvas{screen}, s, fps)
}

// DrawTo renders in a fixed order: clear, player, HUD, then lasers in slice
// order.
func (r *RenderSystem) DrawTo(c Canvas, s *component.GameState, fps float64) {
	if r == nil || c == nil || s == nil {
		return
	}

	c.Fill(backgroundColor)

	op := &ebiten.DrawImageOptions{}
	op.GeoM = PlayerGeoM(r.playerW, s.Player.X, s.Player.Y, s.Player.FacingRight)
	c.DrawImage(r.player, op)

	top := &text.DrawOptions{}
	top.GeoM.Translate(hudX, hudY)
	top.ColorScale.ScaleWithColor(colornames.White)
	c.DrawText(HUDText(s.Score, fps), r.face, top)

	for _, l := range s.Lasers {
		lop := &ebiten.DrawImageOptions{}
		lop.GeoM = LaserGeoM(l)
		c.DrawImage(r.laser, lop)
	}
}

// PlayerGeoM places a sprite of source width w at half scale with its
// top-center on (x, y). Facing right mirrors it horizontally.
func PlayerGeoM(w, x, y float64, facingRight bool) ebiten.GeoM {
	var g ebiten.GeoM
	g.Translate(-w/2, 0)
	sx := playerDrawScale
	if facingRight {
		sx = -sx
	}
	g.Scale(sx, playerDrawScale)
	g.Translate(x, y)
	return g
}

// LaserGeoM places a laser square ahead of its position when right-facing and
// behind it otherwise.
func LaserGeoM(l component.Laser) ebiten.GeoM {
	var g ebiten.GeoM
	x := l.X - component.LaserDrawOffset
	if l.RightFacing {
		x = l.X + component.LaserDrawOffset
	}
	g.Translate(x, l.Y)
	return g
}

func HUDText(score int, fps float64) string {
	return fmt.Sprintf("Score: %d (FPS: %s)", score, strconv.FormatFloat(fps, 'f', -1, 64))
}
