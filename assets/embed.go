package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// PlayerSprite is the file name of the player sprite inside the resources dir.
const PlayerSprite = "goodpixelguy.png"

//go:embed *.png
var assetsFS embed.FS

// LoadImage decodes name from dir. The file must exist there; the embedded
// copy is used only when dir is empty.
func LoadImage(dir, name string) (image.Image, error) {
	clean := cleanAssetPath(name)
	if clean == "" {
		return nil, fmt.Errorf("empty image name")
	}

	if dir == "" {
		b, err := assetsFS.ReadFile(clean)
		if err != nil {
			return nil, fmt.Errorf("load embedded image %s: %w", clean, err)
		}
		img, _, err := image.Decode(bytes.NewReader(b))
		if err != nil {
			return nil, fmt.Errorf("decode embedded %s: %w", clean, err)
		}
		return img, nil
	}

	path := filepath.Join(dir, filepath.FromSlash(clean))
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// LoadPlayer loads the player sprite as an *ebiten.Image.
func LoadPlayer(dir string) (*ebiten.Image, error) {
	img, err := LoadImage(dir, PlayerSprite)
	if err != nil {
		return nil, err
	}
	return ebiten.NewImageFromImage(img), nil
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	s = strings.TrimPrefix(s, "/")
	if after, ok := strings.CutPrefix(s, "resources/"); ok {
		return after
	}
	return s
}
