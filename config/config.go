package config

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/automoto/fruitrang/shared/flight"
	"github.com/yohamta/donburi/ecs"
)

// Render layers.
const (
	Default ecs.LayerID = iota
	HUD
)

// BoomerangConfig contains the flight constants plus the host-side sizes.
type BoomerangConfig struct {
	flight.Config

	Size              float64 // Square hit volume edge in pixels
	SpawnOffset       float64 // Distance in front of the player where a throw starts
	Height            float64 // World Y of a thrown boomerang
	OpenTweenDuration float64 // Seconds the unfold animation takes after the first bounce
	SpinSpeed         float64 // Radians per tick while flying
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	Speed            float64 // Pixels per tick
	SprintMultiplier float64

	// Stamina
	MaxStamina              float64
	StaminaConsumption      float64 // Per second while sprinting
	StaminaRegenerationRate float64 // Per second otherwise
	SprintCooldown          float64 // Seconds of lockout after running dry

	// Cooldowns (seconds)
	BoomerangCooldown float64
	SwordCooldown     float64
	BowlCooldown      float64

	// Slicing
	SliceActiveTime float64
	KnifeReach      float64
	KnifeWidth      float64

	// Dimensions
	CollisionWidth  float64
	CollisionHeight float64
}

// FruitKind describes one fruit type. A kind is either splittable (it has
// SplitInto children) or collectable (it has Points).
type FruitKind struct {
	Name          string
	Points        int
	SplitInto     []string
	MinSplitForce float64 // Pixels per tick
	MaxSplitForce float64
	Size          float64
	Color         color.RGBA
}

// Splittable reports whether the kind breaks into children.
func (k FruitKind) Splittable() bool { return len(k.SplitInto) > 0 }

// Collectable reports whether the kind can be scooped into a bowl.
func (k FruitKind) Collectable() bool { return k.Points > 0 }

// FruitConfig contains every fruit kind keyed by name.
type FruitConfig struct {
	Kinds map[string]FruitKind
}

// BowlConfig contains the bowl swing and rating values.
type BowlConfig struct {
	Count      int     // Filled bowls that end the round
	SwingTime  float64 // Seconds the bowl collects
	Radius     float64 // Reach of the swing around the player
	MassBonus  int     // Every MassBonus fruits in one bowl earn MassPoints
	MassPoints int
}

// ArenaConfig contains round configuration.
type ArenaConfig struct {
	Name          string
	RoundDuration float64 // Seconds, 0 disables the timer
	Seed          uint64  // 0 picks a random seed
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	TickRate  int
	DeltaTime float64
	CellSize  int
}

// PersistenceConfig names the gdata storage.
type PersistenceConfig struct {
	AppName    string
	BestKey    string
	ResultsKey string
}

type DebugConfig struct {
	LogEvents    bool   // Log controller events and ignored calls
	HotReload    bool   // Watch the prefab directory for changes
	DrawHitboxes bool   // Outline collision objects
	PrefabDir    string // Directory checked for prefab overrides
}

// UIConfig contains HUD and post-game screen values.
type UIConfig struct {
	HUDFontSize     float64
	TitleFontSize   float64
	HUDTextColor    color.RGBA
	HUDTextBgColor  color.RGBA
	BackgroundColor color.RGBA
	ButtonIdle      color.RGBA
	ButtonHover     color.RGBA
	ButtonPressed   color.RGBA
}

type Config struct {
	Width  int
	Height int
}

var C *Config
var Boomerang BoomerangConfig
var Player PlayerConfig
var Fruit FruitConfig
var Bowl BowlConfig
var Arena ArenaConfig
var Physics PhysicsConfig
var Persistence PersistenceConfig
var Debug DebugConfig
var UI UIConfig

var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Purple       = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
	}

	Physics = PhysicsConfig{
		TickRate:  60,
		DeltaTime: 1.0 / 60.0,
		CellSize:  16,
	}

	Boomerang = BoomerangConfig{
		Config:            flight.DefaultConfig(),
		Size:              10,
		SpawnOffset:       14,
		Height:            2,
		OpenTweenDuration: 0.25,
		SpinSpeed:         0.3,
	}

	Player = PlayerConfig{
		Speed:            2.0,
		SprintMultiplier: 1.35,

		MaxStamina:              100,
		StaminaConsumption:      5.0,
		StaminaRegenerationRate: 3.7,
		SprintCooldown:          1.0,

		BoomerangCooldown: 5.0,
		SwordCooldown:     0.2,
		BowlCooldown:      10.0,

		SliceActiveTime: 0.05,
		KnifeReach:      14,
		KnifeWidth:      16,

		CollisionWidth:  12,
		CollisionHeight: 12,
	}

	Fruit = FruitConfig{
		Kinds: map[string]FruitKind{
			"watermelon": {
				Name:          "watermelon",
				SplitInto:     []string{"melon slice", "melon slice", "melon slice", "melon slice"},
				MinSplitForce: 0.5,
				MaxSplitForce: 1.5,
				Size:          20,
				Color:         color.RGBA{R: 40, G: 160, B: 60, A: 255},
			},
			"pineapple": {
				Name:          "pineapple",
				SplitInto:     []string{"pineapple chunk", "pineapple chunk", "pineapple chunk"},
				MinSplitForce: 0.4,
				MaxSplitForce: 1.2,
				Size:          16,
				Color:         color.RGBA{R: 230, G: 190, B: 40, A: 255},
			},
			"apple": {
				Name:          "apple",
				SplitInto:     []string{"apple half", "apple half"},
				MinSplitForce: 0.3,
				MaxSplitForce: 1.0,
				Size:          12,
				Color:         color.RGBA{R: 210, G: 40, B: 40, A: 255},
			},
			"banana": {
				Name:   "banana",
				Points: 5,
				Size:   10,
				Color:  color.RGBA{R: 250, G: 225, B: 80, A: 255},
			},
			"melon slice": {
				Name:   "melon slice",
				Points: 3,
				Size:   8,
				Color:  color.RGBA{R: 240, G: 80, B: 90, A: 255},
			},
			"pineapple chunk": {
				Name:   "pineapple chunk",
				Points: 4,
				Size:   7,
				Color:  color.RGBA{R: 250, G: 220, B: 90, A: 255},
			},
			"apple half": {
				Name:   "apple half",
				Points: 2,
				Size:   7,
				Color:  color.RGBA{R: 245, G: 235, B: 200, A: 255},
			},
		},
	}

	Bowl = BowlConfig{
		Count:      5,
		SwingTime:  0.5,
		Radius:     18,
		MassBonus:  10,
		MassPoints: 10,
	}

	Arena = ArenaConfig{
		Name:          "arena",
		RoundDuration: 120,
	}

	Persistence = PersistenceConfig{
		AppName:    "fruitrang",
		BestKey:    "best_score",
		ResultsKey: "last_results",
	}

	Debug = DebugConfig{
		PrefabDir: "prefabs",
	}

	UI = UIConfig{
		HUDFontSize:     10,
		TitleFontSize:   20,
		HUDTextColor:    White,
		HUDTextBgColor:  BlackOverlay,
		BackgroundColor: color.RGBA{R: 20, G: 24, B: 32, A: 255},
		ButtonIdle:      DarkBlue,
		ButtonHover:     LightBlue,
		ButtonPressed:   Purple,
	}
}

// Validate checks the global configuration and reports every problem found.
func Validate() error {
	var problems []error
	positive := func(name string, v float64) {
		if !(v > 0) || math.IsInf(v, 1) {
			problems = append(problems, fmt.Errorf("%s must be finite and > 0, got %v", name, v))
		}
	}

	if err := Boomerang.Config.Validate(); err != nil {
		problems = append(problems, fmt.Errorf("boomerang: %w", err))
	}
	positive("boomerang size", Boomerang.Size)
	positive("player speed", Player.Speed)
	positive("player max stamina", Player.MaxStamina)
	positive("physics delta time", Physics.DeltaTime)

	if Bowl.Count <= 0 {
		problems = append(problems, fmt.Errorf("bowl count must be > 0, got %d", Bowl.Count))
	}
	if Arena.RoundDuration < 0 {
		problems = append(problems, fmt.Errorf("round duration must be >= 0, got %v", Arena.RoundDuration))
	}

	for name, kind := range Fruit.Kinds {
		if kind.Splittable() && kind.Collectable() {
			problems = append(problems, fmt.Errorf("fruit %q is both splittable and collectable", name))
		}
		if !kind.Splittable() && !kind.Collectable() {
			problems = append(problems, fmt.Errorf("fruit %q is neither splittable nor collectable", name))
		}
		for _, child := range kind.SplitInto {
			if _, ok := Fruit.Kinds[child]; !ok {
				problems = append(problems, fmt.Errorf("fruit %q splits into unknown kind %q", name, child))
			}
		}
		if kind.MinSplitForce > kind.MaxSplitForce {
			problems = append(problems, fmt.Errorf("fruit %q min split force %v > max %v", name, kind.MinSplitForce, kind.MaxSplitForce))
		}
	}

	return errors.Join(problems...)
}
