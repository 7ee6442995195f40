// Command arenasim runs an arena round without a window and logs the
// boomerang events, for tuning the prefab values.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/fruitrang/assets"
	cfg "github.com/automoto/fruitrang/config"
	"github.com/automoto/fruitrang/prefabs"
)

func main() {
	arena := flag.String("arena", cfg.Arena.Name, "arena map to simulate")
	ticks := flag.Int("ticks", 60*cfg.Physics.TickRate, "frames to simulate")
	seed := flag.Uint64("seed", 1, "random seed")
	tickRate := flag.Int("tickrate", 0, "pace the simulation at this many ticks per second, 0 runs flat out")
	throwEvery := flag.Int("throw-every", 90, "ticks between scripted throws")
	sliceEvery := flag.Int("slice-every", 45, "ticks between scripted slices")
	bowlEvery := flag.Int("bowl-every", 700, "ticks between scripted bowl swings")
	quiet := flag.Bool("quiet", false, "only log the summary")
	flag.StringVar(&prefabs.Dir, "prefabs", cfg.Debug.PrefabDir, "directory checked for prefab overrides")
	flag.Parse()

	if err := prefabs.LoadAll(); err != nil {
		log.Fatalf("Failed to load prefabs: %v", err)
	}
	cfg.Debug.LogEvents = !*quiet

	level, err := assets.LoadArenaData(*arena)
	if err != nil {
		log.Fatalf("Failed to load arena %q: %v", *arena, err)
	}

	sim, err := NewSim(level, *seed, Script{
		ThrowEvery: *throwEvery,
		SliceEvery: *sliceEvery,
		BowlEvery:  *bowlEvery,
	})
	if err != nil {
		log.Fatalf("Failed to build arena: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("Simulating %q for %d ticks (seed %d)", *arena, *ticks, *seed)
	sum := sim.Run(ctx, *ticks, *tickRate)
	log.Printf("%.1fs simulated: %d throws, %d catches, %d splits, %d bowls, score %d, %d fruit left (%s)",
		sum.Seconds(), sum.Throws, sum.Catches, sum.Splits, sum.Bowls, sum.Score, sum.Fruit, sum.End)
}
