package arena

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-arena/internal/config"
	"github.com/vovakirdan/tui-arena/internal/core"
)

func TestSpawnerRespectsExclusion(t *testing.T) {
	cfg := config.DefaultArenaConfig().Spawn
	g := NewTileGrid(40, 40, 64)
	g.Generate(StrategyCave, rand.New(rand.NewSource(7)), GenParams{WallChance: 0.4, SmoothPasses: 5})
	player := core.V(1280, 1280)

	sp := NewSpawner(g, rand.New(rand.NewSource(99)), cfg)
	placed := 0
	for i := 0; i < 500; i++ {
		pos, ok := sp.FindSpot(player)
		if !ok {
			continue
		}
		placed++
		if d := core.Dist(pos, player); d < cfg.Exclusion {
			t.Fatalf("spawned at %v, %.1f from player, want >= %v", pos, d, cfg.Exclusion)
		}
		if g.CheckCollision(pos, cfg.ProbeRadius) {
			t.Fatalf("spawned inside a wall at %v", pos)
		}
	}
	if placed == 0 {
		t.Fatal("no spawns succeeded")
	}
}

func TestSpawnerShortfall(t *testing.T) {
	cfg := config.DefaultArenaConfig().Spawn
	g := openGrid(40, 40)
	// Every draw lands at the world center, right on top of the player.
	rng := newScriptedRNG(0.5)
	sp := NewSpawner(g, rng, cfg)

	center := g.WorldSize().Scale(0.5)
	if _, ok := sp.FindSpot(center); ok {
		t.Fatal("FindSpot should fail when every candidate is too close")
	}
	if want := cfg.Attempts * 2; rng.calls != want {
		t.Errorf("rng calls = %d, want %d (one full set of attempts)", rng.calls, want)
	}
}

func TestSpawnerRejectsWalls(t *testing.T) {
	cfg := config.DefaultArenaConfig().Spawn
	g := NewTileGrid(10, 10, 64)
	for cy := 0; cy < 10; cy++ {
		for cx := 0; cx < 10; cx++ {
			g.SetTile(cx, cy, Wall)
		}
	}
	sp := NewSpawner(g, rand.New(rand.NewSource(1)), cfg)
	if pos, ok := sp.FindSpot(core.V(-5000, -5000)); ok {
		t.Errorf("FindSpot on a solid grid returned %v", pos)
	}
}

func TestLevelSpawnShortfallIsSkipped(t *testing.T) {
	cfg := boxConfig()
	cfg.Spawn.Exclusion = 1e9 // nothing can be placed
	s := newPlaying(cfg, 1)

	sum := s.Summary()
	if sum.Spawned != 0 || sum.Requested == 0 {
		t.Errorf("summary = %+v, want requests with zero spawns", sum)
	}
	if len(s.Enemies()) != 0 || len(s.Collectibles()) != 0 || len(s.PowerUps()) != 0 {
		t.Error("collections should be empty when every spawn fails")
	}
	if s.Phase() != StatePlaying {
		t.Errorf("phase = %s, want PLAYING", s.Phase())
	}
}
