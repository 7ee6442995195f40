package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"log"
	"path"

	"github.com/automoto/fruitrang/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lafriks/go-tiled"
	"github.com/lafriks/go-tiled/render"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// LevelsDir is the directory of arena maps inside the embedded assets.
const LevelsDir = "levels"

// FS exposes the embedded assets for headless loaders.
func FS() fs.FS {
	return assetFS
}

// Arena is a parsed arena map plus its pre-rendered background.
type Arena struct {
	*leveldata.ArenaData
	Name       string
	Background *ebiten.Image
}

// ArenaPath returns the embedded path of the named arena map.
func ArenaPath(name string) string {
	return path.Join(LevelsDir, name+".tmx")
}

// LoadArenaData parses the named arena without touching the GPU.
func LoadArenaData(name string) (*leveldata.ArenaData, error) {
	return leveldata.LoadArena(assetFS, ArenaPath(name))
}

// MustLoadArena parses the named arena and renders its background. It panics
// if the embedded map is broken.
func MustLoadArena(name string) *Arena {
	data, err := LoadArenaData(name)
	if err != nil {
		panic(err)
	}
	bg, err := RenderBackground(ArenaPath(name))
	if err != nil {
		panic(err)
	}
	return &Arena{ArenaData: data, Name: name, Background: bg}
}

// RenderBackground draws every tile layer marked with the "render" property
// into one image.
func RenderBackground(tmxPath string) (*ebiten.Image, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(assetFS))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	background := ebiten.NewImage(levelMap.Width*levelMap.TileWidth, levelMap.Height*levelMap.TileHeight)

	renderer, err := render.NewRendererWithFileSystem(levelMap, assetFS)
	if err != nil {
		return nil, fmt.Errorf("create renderer: %w", err)
	}

	for i, layer := range levelMap.Layers {
		if !layer.Properties.GetBool("render") {
			continue
		}
		if err := renderer.RenderLayer(i); err != nil {
			log.Printf("Warning: failed to render layer %s: %v", layer.Name, err)
			continue
		}
		opacity := layer.Opacity
		if opacity <= 0 {
			renderer.Clear()
			continue
		}
		layerImage := ebiten.NewImageFromImage(renderer.Result)
		op := &ebiten.DrawImageOptions{}
		op.ColorScale.ScaleAlpha(float32(opacity))
		background.DrawImage(layerImage, op)
		layerImage.Deallocate()
		renderer.Clear()
	}

	return background, nil
}
