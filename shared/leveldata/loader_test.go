package leveldata

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/lafriks/go-tiled"
)

const testArena = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="4" height="3" tilewidth="16" tileheight="16" infinite="0">
 <tileset firstgid="1" name="arena" tilewidth="16" tileheight="16" tilecount="1" columns="1">
  <image source="arena_tiles.png" width="16" height="16"/>
 </tileset>
 <layer id="1" name="walls" width="4" height="3">
  <data encoding="csv">
1,1,1,1,
1,0,0,1,
1,1,1,1
</data>
 </layer>
 <objectgroup id="2" name="PlayerSpawn">
  <object id="1" x="24" y="24">
   <properties>
    <property name="restOffset" type="float" value="6"/>
   </properties>
   <point/>
  </object>
 </objectgroup>
 <objectgroup id="3" name="FruitSpawn">
  <object id="2" x="20" y="20">
   <properties>
    <property name="kind" value="apple"/>
   </properties>
   <point/>
  </object>
 </objectgroup>
 <objectgroup id="4" name="Teleport">
  <object id="3" x="40" y="20">
   <point/>
  </object>
 </objectgroup>
 <objectgroup id="5" name="OutOfBounds">
  <object id="4" x="16" y="16" width="8" height="4"/>
 </objectgroup>
</map>
`

const noSpawnArena = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="1" height="1" tilewidth="16" tileheight="16" infinite="0">
 <layer id="1" name="walls" width="1" height="1">
  <data encoding="csv">
0
</data>
 </layer>
</map>
`

func TestLoadArena(t *testing.T) {
	fsys := fstest.MapFS{"levels/test.tmx": {Data: []byte(testArena)}}

	data, err := LoadArena(fsys, "levels/test.tmx")
	if err != nil {
		t.Fatalf("LoadArena: %v", err)
	}

	if data.Width != 64 || data.Height != 48 {
		t.Errorf("size = %dx%d, want 64x48", data.Width, data.Height)
	}
	if len(data.Walls) != 10 {
		t.Errorf("walls = %d, want 10", len(data.Walls))
	}
	if data.PlayerSpawn != (Point{X: 24, Z: 24}) {
		t.Errorf("spawn = %+v", data.PlayerSpawn)
	}
	if data.RestOffset != 6 {
		t.Errorf("rest offset = %v, want 6", data.RestOffset)
	}
	if len(data.FruitSpawns) != 1 || data.FruitSpawns[0].Kind != "apple" {
		t.Errorf("fruit spawns = %+v", data.FruitSpawns)
	}
	if len(data.TeleportPoints) != 1 || data.TeleportPoints[0].X != 40 {
		t.Errorf("teleport points = %+v", data.TeleportPoints)
	}
	if len(data.OutOfBounds) != 1 || data.OutOfBounds[0] != (Rect{X: 16, Z: 16, W: 8, H: 4}) {
		t.Errorf("out of bounds = %+v", data.OutOfBounds)
	}
}

func TestLoadArenaWithoutSpawn(t *testing.T) {
	fsys := fstest.MapFS{"empty.tmx": {Data: []byte(noSpawnArena)}}

	_, err := LoadArena(fsys, "empty.tmx")
	if !errors.Is(err, ErrNoArena) {
		t.Fatalf("err = %v, want ErrNoArena", err)
	}
}

func TestWallRectsRejectsShortLayer(t *testing.T) {
	short := &tiled.Layer{Name: WallLayer, Tiles: make([]*tiled.LayerTile, 3)}
	if _, err := wallRects(short, 4, 3, 16, 16); err == nil {
		t.Fatal("layer with 3 of 12 tiles accepted")
	}

	tiles := []*tiled.LayerTile{{Nil: true}, {ID: 0}, nil, {Nil: true}}
	walls, err := wallRects(&tiled.Layer{Name: WallLayer, Tiles: tiles}, 2, 2, 16, 16)
	if err != nil {
		t.Fatalf("wallRects: %v", err)
	}
	if len(walls) != 1 || walls[0] != (Rect{X: 16, Z: 0, W: 16, H: 16}) {
		t.Errorf("walls = %+v, want one wall at (16, 0)", walls)
	}
}

func TestLoadAllArenas(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/b.tmx": {Data: []byte(testArena)},
		"levels/a.tmx": {Data: []byte(testArena)},
	}

	arenas, names, err := LoadAllArenas(fsys, "levels")
	if err != nil {
		t.Fatalf("LoadAllArenas: %v", err)
	}
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Errorf("names = %v", names)
	}
	if arenas["a"] == nil {
		t.Error("arena a missing")
	}

	if _, _, err := LoadAllArenas(fstest.MapFS{}, "levels"); err == nil {
		t.Error("expected error for empty directory")
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Z: 10, W: 5, H: 5}
	tests := []struct {
		x, z float64
		want bool
	}{
		{10, 10, true},
		{14.9, 14.9, true},
		{15, 12, false},
		{9, 12, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.z); got != tt.want {
			t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.z, got, tt.want)
		}
	}
}
