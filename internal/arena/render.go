package arena

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-arena/internal/core"
)

// World pixels covered by one terminal character. Characters are roughly twice
// as tall as wide, so a 64px tile draws as 4x2 characters.
const (
	CellW = 16.0
	CellH = 32.0
)

// Smallest screen Render draws the arena on.
const (
	MinScreenW = 40
	MinScreenH = 12
)

const (
	hudRows     = 2
	radarW      = 15
	radarH      = 9
	radarRange  = 1500.0
	bossGlyphsW = 3
)

// Viewport maps world coordinates to screen cells around a camera position.
type Viewport struct {
	Center core.Vec2
	W, H   int // screen size in cells
	Top    int // first row used by the map
}

// ToScreen converts a world position to a screen cell. ok is false when the
// position falls outside the map area.
func (v Viewport) ToScreen(p core.Vec2) (x, y int, ok bool) {
	rows := v.H - v.Top
	x = int(math.Floor((p.X-v.Center.X)/CellW)) + v.W/2
	y = int(math.Floor((p.Y-v.Center.Y)/CellH)) + v.Top + rows/2
	ok = x >= 0 && x < v.W && y >= v.Top && y < v.H
	return x, y, ok
}

// ToWorld returns the world position at the center of a screen cell.
func (v Viewport) ToWorld(x, y int) core.Vec2 {
	rows := v.H - v.Top
	return core.V(
		v.Center.X+float64(x-v.W/2)*CellW+CellW/2,
		v.Center.Y+float64(y-v.Top-rows/2)*CellH+CellH/2,
	)
}

// Viewport returns the view for a w x h screen. offset shifts the camera,
// e.g. for screen shake.
func (s *Session) Viewport(w, h int, offset core.Vec2) Viewport {
	return Viewport{Center: s.Camera().Add(offset), W: w, H: h, Top: hudRows}
}

// SetCameraOffset shifts the camera for the next Render. It is cosmetic and
// not part of the simulation state.
func (s *Session) SetCameraOffset(off core.Vec2) {
	s.camOffset = off
}

// Render draws the current state into dst.
func (s *Session) Render(dst *core.Screen) {
	dst.Clear()
	w, h := dst.Width(), dst.Height()
	if w < MinScreenW || h < MinScreenH {
		dst.DrawTextCentered(h/2, "Window too small", core.ColorYellow)
		return
	}

	vp := s.Viewport(w, h, s.camOffset)
	s.renderTiles(dst, vp)
	s.renderEntities(dst, vp)
	s.renderHUD(dst)
	if s.state == StatePlaying {
		s.renderRadar(dst)
	}

	switch s.state {
	case StateMenu:
		s.renderOverlay(dst, "ARENA", "Press ENTER to start", "WASD/arrows move, SPACE dash")
	case StateGameOver:
		s.renderOverlay(dst, "GAME OVER", fmt.Sprintf("Score: %d", s.score), "Press ENTER to restart")
	case StateWin:
		s.renderOverlay(dst, "YOU WIN!", fmt.Sprintf("Score: %d", s.score), "Press ENTER to play again")
	case StatePlaying:
		if s.paused {
			s.renderOverlay(dst, "Paused", "Press P to continue", "")
		}
	}
}

func (s *Session) renderTiles(dst *core.Screen, vp Viewport) {
	for y := vp.Top; y < vp.H; y++ {
		for x := 0; x < vp.W; x++ {
			cx, cy := s.grid.CellAt(vp.ToWorld(x, y))
			if s.grid.GetTile(cx, cy) != Wall {
				continue
			}
			c := core.ColorBlue
			if (cx+cy)%2 == 0 {
				c = core.ColorBrightBlue
			}
			dst.SetColored(x, y, '█', c)
		}
	}
}

func (s *Session) renderEntities(dst *core.Screen, vp Viewport) {
	plot := func(p core.Vec2, r rune, c core.Color) {
		if x, y, ok := vp.ToScreen(p); ok {
			dst.SetColored(x, y, r, c)
		}
	}

	if x, y, ok := vp.ToScreen(s.goal.Pos); ok {
		dst.SetColored(x, y, '◎', core.ColorBrightYellow)
		dst.SetColored(x-1, y, '(', core.ColorYellow)
		dst.SetColored(x+1, y, ')', core.ColorYellow)
	}

	for _, c := range s.collectibles {
		switch c.Kind {
		case CollectXP:
			plot(c.Pos, '+', core.ColorGreen)
		case CollectHealth:
			plot(c.Pos, '♥', core.ColorPink)
		}
	}
	for _, pu := range s.powerups {
		switch pu.Kind {
		case PowerSpeed:
			plot(pu.Pos, '»', core.ColorCyan)
		case PowerShield:
			plot(pu.Pos, 'Ø', core.ColorOrange)
		}
	}

	for _, e := range s.enemies {
		switch e.Kind {
		case EnemyBoss:
			x, y, _ := vp.ToScreen(e.Pos)
			for dy := -1; dy <= 1; dy++ {
				for dx := -bossGlyphsW / 2; dx <= bossGlyphsW/2; dx++ {
					if y+dy >= vp.Top {
						dst.SetColored(x+dx, y+dy, 'B', e.Color)
					}
				}
			}
		case EnemyFast:
			plot(e.Pos, 'f', e.Color)
		case EnemyTank:
			plot(e.Pos, 'T', e.Color)
		default:
			plot(e.Pos, 'e', e.Color)
		}
	}

	for _, pr := range s.projectiles {
		plot(pr.Pos, '*', core.ColorYellow)
	}

	p := s.player
	switch {
	case p.Dashing:
		plot(p.Pos, '@', core.ColorBrightWhite)
	case p.Shielded:
		plot(p.Pos, '@', core.ColorOrange)
	default:
		plot(p.Pos, '@', core.ColorBrightCyan)
	}
}

func (s *Session) renderHUD(dst *core.Screen) {
	hud := s.HUD()
	dash := "READY"
	if !hud.DashReady {
		dash = "----"
	}
	line := fmt.Sprintf("HP %s %d/%d  XP %d/%d  LV %d  Dungeon %d/%d  Score %d  Dash %s",
		bar(hud.HP, hud.MaxHP, 10), hud.HP, hud.MaxHP,
		hud.XP, hud.MaxXP, hud.PlayerLevel,
		hud.Level, hud.MaxLevel, hud.Score, dash)
	dst.DrawTextColored(0, 0, line, core.ColorBrightWhite)

	var status []string
	status = append(status, fmt.Sprintf("Enemies %d", hud.Enemies))
	if hud.SpeedBuff > 0 {
		status = append(status, fmt.Sprintf("SPEED %.1fs", hud.SpeedBuff))
	}
	if hud.ShieldBuff > 0 {
		status = append(status, fmt.Sprintf("SHIELD %.1fs", hud.ShieldBuff))
	}
	if hud.BossMaxHP > 0 {
		status = append(status, fmt.Sprintf("BOSS %s", bar(hud.BossHP, hud.BossMaxHP, 20)))
	}
	status = append(status, hud.Objective)
	dst.DrawTextColored(0, 1, strings.Join(status, "  "), core.ColorGray)
}

// bar renders a fixed-width gauge like [#####-----].
func bar(v, maxV, width int) string {
	if maxV <= 0 {
		return "[" + strings.Repeat("-", width) + "]"
	}
	filled := core.Clamp(v*width/maxV, 0, width)
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

func (s *Session) renderRadar(dst *core.Screen) {
	box := core.NewRect(dst.Width()-radarW, hudRows, radarW, radarH)
	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorGray)

	cx := box.X + radarW/2
	cy := box.Y + radarH/2
	halfW := float64(radarW/2 - 1)
	halfH := float64(radarH/2 - 1)

	for _, b := range s.Radar(radarRange) {
		x := cx + int(math.Round(b.X*halfW))
		y := cy + int(math.Round(b.Y*halfH))
		switch b.Kind {
		case BlipGoal:
			dst.SetColored(x, y, '◎', core.ColorYellow)
		case BlipBoss:
			dst.SetColored(x, y, 'B', core.ColorBrightRed)
		default:
			dst.SetColored(x, y, '·', core.ColorRed)
		}
	}
	dst.SetColored(cx, cy, '@', core.ColorBrightCyan)
}

func (s *Session) renderOverlay(dst *core.Screen, title, line1, line2 string) {
	width := max(len([]rune(title)), len([]rune(line1)), len([]rune(line2))) + 6
	height := 7
	box := core.NewRect((dst.Width()-width)/2, (dst.Height()-height)/2, width, height)
	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorBrightWhite)
	dst.DrawTextCentered(box.Y+2, title, core.ColorBrightYellow)
	dst.DrawTextCentered(box.Y+3, line1, core.ColorWhite)
	if line2 != "" {
		dst.DrawTextCentered(box.Y+4, line2, core.ColorGray)
	}
}
