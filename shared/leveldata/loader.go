package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Layer and object group names read from the TMX file.
const (
	WallLayer         = "walls"
	PlayerSpawnGroup  = "PlayerSpawn"
	FruitSpawnGroup   = "FruitSpawn"
	TeleportGroup     = "Teleport"
	OutOfBoundsGroup  = "OutOfBounds"
	defaultRestOffset = 10
)

// LoadArena parses a TMX file into ArenaData. It takes an fs.FS so callers
// can pass the embedded assets or os.DirFS for maps on disk.
func LoadArena(fsys fs.FS, tmxPath string) (*ArenaData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	data := &ArenaData{
		Width:      levelMap.Width * levelMap.TileWidth,
		Height:     levelMap.Height * levelMap.TileHeight,
		RestOffset: defaultRestOffset,
	}

	for _, layer := range levelMap.Layers {
		if layer.Name != WallLayer {
			continue
		}
		walls, err := wallRects(layer, levelMap.Width, levelMap.Height,
			float64(levelMap.TileWidth), float64(levelMap.TileHeight))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", tmxPath, err)
		}
		data.Walls = walls
		break
	}

	foundSpawn := false
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case PlayerSpawnGroup:
			if len(og.Objects) == 0 {
				continue
			}
			o := og.Objects[0]
			data.PlayerSpawn = Point{X: o.X, Z: o.Y}
			if offset := o.Properties.GetFloat("restOffset"); offset > 0 {
				data.RestOffset = offset
			}
			foundSpawn = true
		case FruitSpawnGroup:
			for _, o := range og.Objects {
				kind := o.Properties.GetString("kind")
				if kind == "" {
					kind = o.Class
				}
				data.FruitSpawns = append(data.FruitSpawns, FruitSpawn{X: o.X, Z: o.Y, Kind: kind})
			}
		case TeleportGroup:
			for _, o := range og.Objects {
				data.TeleportPoints = append(data.TeleportPoints, Point{X: o.X, Z: o.Y})
			}
		case OutOfBoundsGroup:
			for _, o := range og.Objects {
				data.OutOfBounds = append(data.OutOfBounds, Rect{X: o.X, Z: o.Y, W: o.Width, H: o.Height})
			}
		}
	}

	if !foundSpawn {
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrNoArena)
	}
	return data, nil
}

// wallRects turns every non-empty tile of a width×height layer into a wall.
func wallRects(layer *tiled.Layer, width, height int, tileW, tileH float64) ([]Rect, error) {
	if len(layer.Tiles) < width*height {
		return nil, fmt.Errorf("layer %q has %d tiles, want %d (infinite maps are not supported)",
			layer.Name, len(layer.Tiles), width*height)
	}
	var walls []Rect
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			tile := layer.Tiles[y*width+x]
			if tile == nil || tile.IsNil() {
				continue
			}
			walls = append(walls, Rect{
				X: float64(x) * tileW,
				Z: float64(y) * tileH,
				W: tileW,
				H: tileH,
			})
		}
	}
	return walls, nil
}

// LoadAllArenas discovers every .tmx file in dir within fsys and returns the
// parsed arenas keyed by stem name plus the sorted list of names.
func LoadAllArenas(fsys fs.FS, dir string) (map[string]*ArenaData, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	arenas := make(map[string]*ArenaData, len(matches))
	names := make([]string, 0, len(matches))
	for _, path := range matches {
		data, err := LoadArena(fsys, path)
		if err != nil {
			return nil, nil, err
		}
		stem := strings.TrimSuffix(filepath.Base(path), ".tmx")
		arenas[stem] = data
		names = append(names, stem)
	}

	sort.Strings(names)
	return arenas, names, nil
}
