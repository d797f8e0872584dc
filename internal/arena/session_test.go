package arena

import (
	"testing"

	"github.com/vovakirdan/tui-arena/internal/config"
	"github.com/vovakirdan/tui-arena/internal/core"
	"github.com/vovakirdan/tui-arena/internal/registry"
)

func hasCue(events []core.Event, cue core.Cue) bool {
	for _, ev := range events {
		if ev.Kind == core.EventSound && ev.Cue == cue {
			return true
		}
	}
	return false
}

func confirmFrame() core.InputFrame {
	f := core.NewInputFrame()
	f.Set(core.ActionConfirm)
	return f
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{"arena", "arena_classic"} {
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q): %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("ID() = %q, want %q", g.ID(), id)
		}
	}
}

func TestSessionStartsInMenu(t *testing.T) {
	s := New(WithConfig(boxConfig()))
	s.Reset(core.DefaultConfig())

	if s.Phase() != StateMenu {
		t.Fatalf("phase = %s, want MENU", s.Phase())
	}
	for i := 0; i < 10; i++ {
		s.Step(idle())
	}
	if s.Ticks() != 0 {
		t.Errorf("menu advanced the simulation: ticks = %d", s.Ticks())
	}

	res := s.Step(confirmFrame())
	if s.Phase() != StatePlaying {
		t.Fatalf("phase = %s after confirm, want PLAYING", s.Phase())
	}
	if !hasCue(res.Events, core.CueCollect) {
		t.Error("start should emit the collect cue")
	}
	if res.State.Level != 1 || res.State.Score != 0 {
		t.Errorf("state = %+v, want level 1 score 0", res.State)
	}
}

func TestLevelOneSetup(t *testing.T) {
	s := newPlaying(boxConfig(), 3)
	sum := s.Summary()
	if sum.GridW != 60 || sum.GridH != 60 {
		t.Errorf("grid = %dx%d, want 60x60", sum.GridW, sum.GridH)
	}
	if sum.Enemies != 13 {
		t.Errorf("enemies = %d, want 13", sum.Enemies)
	}
	if sum.Pickups != 15 || sum.PowerUps != 4 {
		t.Errorf("pickups = %d powerups = %d, want 15 and 4", sum.Pickups, sum.PowerUps)
	}
	if sum.HasBoss {
		t.Error("level 1 should not have a boss")
	}
	if p := s.Player().Pos; p.X != 352 || p.Y != 352 {
		t.Errorf("player at %v, want (352,352)", p)
	}
	if g := s.Goal().Pos; g.X != 55*64+32 || g.Y != 55*64+32 {
		t.Errorf("goal at %v, want center of tile (55,55)", g)
	}
}

func TestGoalAdvancesLevel(t *testing.T) {
	s := newPlaying(boxConfig(), 42)
	clearEntities(s)
	s.Teleport(s.Goal().Pos)

	res := s.Step(idle())

	if s.Phase() != StatePlaying {
		t.Fatalf("phase = %s, want PLAYING", s.Phase())
	}
	if s.Level() != 2 {
		t.Fatalf("level = %d, want 2", s.Level())
	}
	if w := s.Grid().Width(); w != 70 {
		t.Errorf("grid width = %d, want 70", w)
	}
	if n := len(s.Enemies()); n != 2*8+5 {
		t.Errorf("enemies = %d, want %d", n, 2*8+5)
	}
	if p := s.Player().Pos; p.X != 352 || p.Y != 352 {
		t.Errorf("player at %v, want start tile center (352,352)", p)
	}
	if s.Score() != 500 {
		t.Errorf("score = %d, want 500", s.Score())
	}
	if !hasCue(res.Events, core.CueLevelUp) {
		t.Error("level transition should emit the levelup cue")
	}
	for _, e := range s.Enemies() {
		if core.Dist(e.Pos, s.Player().Pos) < 500 {
			t.Errorf("enemy spawned %.0f from the player", core.Dist(e.Pos, s.Player().Pos))
		}
	}
}

func TestFinalLevelGoalWins(t *testing.T) {
	cfg := boxConfig()
	s := newPlaying(cfg, 5)
	s.setupLevel(cfg.Levels.Max)

	if !s.Summary().HasBoss {
		t.Fatal("final level should spawn a boss")
	}
	if got := s.HUD().Objective; got != "DEFEAT THE BOSS!" {
		t.Errorf("objective = %q", got)
	}

	clearEntities(s)
	s.Teleport(s.Goal().Pos)
	res := s.Step(idle())
	if s.Phase() != StateWin {
		t.Fatalf("phase = %s, want WIN", s.Phase())
	}
	if !res.State.GameOver || !res.State.Won {
		t.Errorf("state = %+v, want game over and won", res.State)
	}

	ticks := s.Ticks()
	pos := s.Player().Pos
	for i := 0; i < 30; i++ {
		s.Step(idle())
	}
	if s.Ticks() != ticks || s.Player().Pos != pos {
		t.Error("gameplay should halt after WIN")
	}
}

func TestDeathOverridesGoal(t *testing.T) {
	cfg := boxConfig()
	s := newPlaying(cfg, 5)
	s.setupLevel(cfg.Levels.Max)
	clearEntities(s)
	s.Teleport(s.Goal().Pos)
	s.Player().HP = 0

	s.Step(idle())
	if s.Phase() != StateGameOver {
		t.Errorf("phase = %s, want GAMEOVER", s.Phase())
	}
}

func TestRestartFromTerminal(t *testing.T) {
	s := newPlaying(boxConfig(), 8)
	s.Player().GainXP(150)
	s.Player().HP = 0
	s.Step(idle())
	if s.Phase() != StateGameOver {
		t.Fatalf("phase = %s, want GAMEOVER", s.Phase())
	}

	res := s.Step(confirmFrame())
	if s.Phase() != StatePlaying {
		t.Fatalf("phase = %s after restart, want PLAYING", s.Phase())
	}
	p := s.Player()
	if p.Level != 1 || p.HP != p.MaxHP || p.MaxHP != 100 || p.XP != 0 {
		t.Errorf("player not reset: %+v", p)
	}
	if s.Level() != 1 || s.Score() != 0 || s.Ticks() != 0 {
		t.Errorf("level = %d score = %d ticks = %d, want 1, 0, 0", s.Level(), s.Score(), s.Ticks())
	}
	if !hasCue(res.Events, core.CueCollect) {
		t.Error("restart should emit the collect cue")
	}
}

func TestPauseHaltsSimulation(t *testing.T) {
	s := newPlaying(boxConfig(), 1)
	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)

	s.Step(pause)
	if !s.State().Paused {
		t.Fatal("expected paused")
	}
	ticks := s.Ticks()
	move := core.NewInputFrame()
	move.SetMove(1, 0)
	pos := s.Player().Pos
	for i := 0; i < 10; i++ {
		s.Step(move)
	}
	if s.Ticks() != ticks || s.Player().Pos != pos {
		t.Error("paused session advanced")
	}

	s.Step(pause)
	s.Step(move)
	if s.Player().Pos == pos {
		t.Error("unpaused session did not move the player")
	}
}

func TestDeterminism(t *testing.T) {
	run := func(seed int64) uint64 {
		s := New(WithConfig(config.DefaultArenaConfig()))
		rc := core.DefaultConfig()
		rc.Seed = seed
		s.Reset(rc)
		s.Step(confirmFrame())
		for i := 0; i < 600; i++ {
			in := core.NewInputFrame()
			switch (i / 90) % 4 {
			case 0:
				in.SetMove(1, 0.3)
			case 1:
				in.SetMove(0.2, 1)
			case 2:
				in.SetMove(-1, 0)
			default:
				in.SetMove(0, -1)
			}
			if i%45 == 0 {
				in.Set(core.ActionDash)
			}
			s.Step(in)
		}
		snap := s.Snapshot()
		return snap.Hash()
	}

	h1, h2 := run(12345), run(12345)
	if h1 != h2 {
		t.Errorf("same seed diverged: %d vs %d", h1, h2)
	}
	if h3 := run(54321); h3 == h1 {
		t.Error("different seeds produced identical runs")
	}
}

func TestScriptedRNGDeterminism(t *testing.T) {
	run := func() Snapshot {
		rng := newScriptedRNG(0.13, 0.71, 0.42, 0.95, 0.08, 0.66, 0.29, 0.87)
		s := New(WithConfig(boxConfig()), WithRNG(rng))
		s.Reset(core.DefaultConfig())
		s.Step(confirmFrame())
		in := core.NewInputFrame()
		in.SetMove(1, 1)
		for i := 0; i < 240; i++ {
			s.Step(in)
		}
		return s.Snapshot()
	}
	a, b := run(), run()
	if a.Hash() != b.Hash() {
		t.Errorf("scripted runs diverged: %d vs %d", a.Hash(), b.Hash())
	}
}

func TestEnemyContactDamagesEveryTick(t *testing.T) {
	s := newPlaying(boxConfig(), 2)
	clearEntities(s)
	p := s.Player()
	s.enemies = []*Enemy{s.table.NewEnemy(EnemyNormal, p.Pos, 1)}

	for i := 0; i < 5; i++ {
		s.Step(idle())
	}
	if p.HP != 95 {
		t.Errorf("HP = %d after 5 ticks of contact, want 95", p.HP)
	}

	p.ApplyBuff(PowerShield, 10)
	s.Step(idle())
	if p.HP != 95 {
		t.Errorf("shielded player took damage, HP = %d", p.HP)
	}
}

func TestDashKillsRegularEnemy(t *testing.T) {
	s := newPlaying(boxConfig(), 2)
	clearEntities(s)
	p := s.Player()
	s.enemies = []*Enemy{s.table.NewEnemy(EnemyNormal, p.Pos, 1)}

	dash := core.NewInputFrame()
	dash.Set(core.ActionDash)
	res := s.Step(dash)

	if len(s.Enemies()) != 0 {
		t.Fatal("dashed enemy should be removed")
	}
	if s.Score() != 100 {
		t.Errorf("score = %d, want 100", s.Score())
	}
	if p.XP != 20 {
		t.Errorf("XP = %d, want 20", p.XP)
	}
	if p.HP != 100 {
		t.Errorf("dashing player took damage, HP = %d", p.HP)
	}
	if !hasCue(res.Events, core.CueDash) || !hasCue(res.Events, core.CueHit) {
		t.Error("expected dash and hit cues")
	}
}

func TestDashKnocksBackTank(t *testing.T) {
	s := newPlaying(boxConfig(), 2)
	clearEntities(s)
	p := s.Player()
	tank := s.table.NewEnemy(EnemyTank, p.Pos.Add(core.V(10, 0)), 1)
	s.enemies = []*Enemy{tank}

	dash := core.NewInputFrame()
	dash.Set(core.ActionDash)
	s.Step(dash)

	if tank.HP != 2 {
		t.Errorf("tank HP = %d, want 2", tank.HP)
	}
	if dx := tank.Pos.X - p.Pos.X; dx < 25 {
		t.Errorf("tank %.1f from player after knockback, want pushed back about 20", dx)
	}
	if len(s.Enemies()) != 1 {
		t.Error("surviving tank should stay")
	}
}

func TestBossDashDamageAndKill(t *testing.T) {
	cfg := boxConfig()
	s := newPlaying(cfg, 2)
	clearEntities(s)
	p := s.Player()
	boss := s.table.NewEnemy(EnemyBoss, p.Pos, 1)
	boss.HP = 60
	boss.AttackCooldown = 100
	s.enemies = []*Enemy{boss}

	dash := core.NewInputFrame()
	dash.Set(core.ActionDash)
	s.Step(dash)
	if boss.HP != 10 {
		t.Fatalf("boss HP = %d, want 10", boss.HP)
	}
	res := s.Step(idle()) // still dashing
	if len(s.Enemies()) != 0 {
		t.Fatal("boss should be dead")
	}
	if s.Score() != 1000 {
		t.Errorf("score = %d, want 1000", s.Score())
	}
	if !hasCue(res.Events, core.CueLevelUp) {
		t.Error("boss kill should emit the levelup cue")
	}
}

func TestBossFiresRadialBurst(t *testing.T) {
	s := newPlaying(boxConfig(), 2)
	clearEntities(s)
	boss := s.table.NewEnemy(EnemyBoss, s.Player().Pos.Add(core.V(150, 0)), 1)
	s.enemies = []*Enemy{boss}

	s.Step(idle())
	if n := len(s.Projectiles()); n != 8 {
		t.Fatalf("projectiles = %d, want 8", n)
	}
	if boss.AttackCooldown != 2.0 {
		t.Errorf("cooldown = %v, want 2.0", boss.AttackCooldown)
	}
}

func TestRadialBurst(t *testing.T) {
	cfg := config.DefaultArenaConfig().Boss
	shots := radialBurst(core.V(0, 0), cfg)
	if len(shots) != 8 {
		t.Fatalf("len = %d, want 8", len(shots))
	}
	if v := shots[0].Vel; v.X != 200 || v.Y != 0 {
		t.Errorf("first shot velocity = %v, want (200,0)", v)
	}
	var sum core.Vec2
	for _, p := range shots {
		if d := p.Vel.Len() - 200; d > 1e-9 || d < -1e-9 {
			t.Errorf("speed = %v, want 200", p.Vel.Len())
		}
		if p.Radius != 8 || p.Life != 3 {
			t.Errorf("radius/life = %v/%v, want 8/3", p.Radius, p.Life)
		}
		sum = sum.Add(p.Vel)
	}
	if sum.Len() > 1e-9 {
		t.Errorf("burst is not symmetric, velocity sum = %v", sum)
	}
}

func TestProjectileHitsPlayer(t *testing.T) {
	tests := []struct {
		name   string
		shield bool
		wantHP int
	}{
		{"vulnerable", false, 90},
		{"shielded", true, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newPlaying(boxConfig(), 4)
			clearEntities(s)
			p := s.Player()
			if tt.shield {
				p.ApplyBuff(PowerShield, 10)
			}
			s.projectiles = []*Projectile{{Pos: p.Pos, Radius: 8, Life: 3}}

			s.Step(idle())
			if p.HP != tt.wantHP {
				t.Errorf("HP = %d, want %d", p.HP, tt.wantHP)
			}
			if len(s.Projectiles()) != 0 {
				t.Error("projectile should be removed on contact")
			}
		})
	}
}

func TestProjectileExpiresAndStopsAtWalls(t *testing.T) {
	s := newPlaying(boxConfig(), 4)
	clearEntities(s)
	far := s.Player().Pos.Add(core.V(300, 0))
	s.projectiles = []*Projectile{
		{Pos: far, Radius: 8, Life: 0.01},
		{Pos: core.V(70, 400), Vel: core.V(-200, 0), Radius: 8, Life: 3},
		{Pos: far.Add(core.V(0, 100)), Radius: 8, Life: 3},
	}
	s.Step(idle())
	if n := len(s.Projectiles()); n != 1 {
		t.Errorf("projectiles = %d, want only the idle one left", n)
	}
}

func TestPickups(t *testing.T) {
	s := newPlaying(boxConfig(), 6)
	clearEntities(s)
	p := s.Player()
	pc := s.cfg.Pickups
	p.HP = 50
	s.collectibles = []*Collectible{
		NewCollectible(CollectXP, p.Pos, pc),
		NewCollectible(CollectHealth, p.Pos, pc),
	}
	s.powerups = []*PowerUp{NewPowerUp(PowerSpeed, p.Pos, pc.PowerUpRadius)}

	res := s.Step(idle())
	if p.XP != 10 || s.Score() != 10 {
		t.Errorf("XP = %d score = %d, want 10 and 10", p.XP, s.Score())
	}
	if p.HP != 70 {
		t.Errorf("HP = %d, want 70", p.HP)
	}
	if !p.SpeedBoosted || p.SpeedBuff != 5 {
		t.Errorf("speed buff = %v/%v, want active with 5s", p.SpeedBoosted, p.SpeedBuff)
	}
	if len(s.Collectibles()) != 0 || len(s.PowerUps()) != 0 {
		t.Error("pickups should be consumed")
	}
	if !hasCue(res.Events, core.CueCollect) {
		t.Error("expected collect cue")
	}
}

func TestInvalidKindsPanic(t *testing.T) {
	table, err := NewEnemyTable(config.DefaultArenaConfig().Enemies)
	if err != nil {
		t.Fatal(err)
	}
	pc := config.DefaultArenaConfig().Pickups
	tests := map[string]func(){
		"enemy":       func() { table.NewEnemy(EnemyKind(42), core.Vec2{}, 1) },
		"collectible": func() { NewCollectible(CollectibleKind(7), core.Vec2{}, pc) },
		"powerup":     func() { NewPowerUp(PowerUpKind(3), core.Vec2{}, 12) },
	}
	for name, fn := range tests {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			fn()
		})
	}
}

func TestEnemyTableUnknownColor(t *testing.T) {
	cfg := config.DefaultArenaConfig().Enemies
	cfg.Fast.Color = "ultraviolet"
	if _, err := NewEnemyTable(cfg); err == nil {
		t.Error("expected error for unknown color")
	}
}

func TestRadarAndHUD(t *testing.T) {
	s := newPlaying(boxConfig(), 9)
	clearEntities(s)
	p := s.Player()
	s.enemies = []*Enemy{
		s.table.NewEnemy(EnemyNormal, p.Pos.Add(core.V(300, 0)), 1),
		s.table.NewEnemy(EnemyFast, p.Pos.Add(core.V(5000, 0)), 1),
	}

	blips := s.Radar(600)
	var enemies, goals int
	for _, b := range blips {
		switch b.Kind {
		case BlipEnemy:
			enemies++
			if b.X != 0.5 || b.Y != 0 {
				t.Errorf("enemy blip at (%v,%v), want (0.5,0)", b.X, b.Y)
			}
		case BlipGoal:
			goals++
			if l := core.V(b.X, b.Y).Len(); l > 1+1e-9 {
				t.Errorf("goal blip outside radar: %v", l)
			}
		}
	}
	if enemies != 1 || goals != 1 {
		t.Errorf("blips: %d enemies %d goals, want 1 and 1", enemies, goals)
	}

	hud := s.HUD()
	if hud.Enemies != 2 || hud.HP != 100 || hud.Level != 1 {
		t.Errorf("HUD = %+v", hud)
	}
	if hud.Objective != "Find the Yellow Goal" {
		t.Errorf("objective = %q", hud.Objective)
	}
}

func TestRenderDrawsPlayerAndHUD(t *testing.T) {
	s := newPlaying(boxConfig(), 11)
	screen := core.NewScreen(80, 24)
	s.Render(screen)

	vp := s.Viewport(80, 24, core.Vec2{})
	x, y, ok := vp.ToScreen(s.Player().Pos)
	if !ok {
		t.Fatal("player should be on screen")
	}
	if got := screen.Get(x, y); got != '@' {
		t.Errorf("player cell = %q, want '@'", got)
	}
	if row := screen.Row(0); len(row) < 2 || row[:2] != "HP" {
		t.Errorf("HUD row = %q", row)
	}

	small := core.NewScreen(20, 5)
	s.Render(small)
	if small.String() == "" {
		t.Error("expected a message on a small screen")
	}
}

func TestLoadLevelClamps(t *testing.T) {
	cfg := boxConfig()
	s := newPlaying(cfg, 3)

	s.LoadLevel(99)
	if s.Level() != cfg.Levels.Max {
		t.Fatalf("level = %d, want %d", s.Level(), cfg.Levels.Max)
	}
	sum := s.Summary()
	if !sum.HasBoss || !s.IsFinalLevel() {
		t.Error("clamped level should be the boss level")
	}
	if want := cfg.Map.BaseSize + cfg.Levels.Max*cfg.Map.SizePerLevel; sum.GridW != want {
		t.Errorf("grid = %d, want %d", sum.GridW, want)
	}

	s.LoadLevel(0)
	if s.Level() != 1 {
		t.Errorf("level = %d, want 1", s.Level())
	}
}
