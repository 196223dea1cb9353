package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vr-range/component"
	"github.com/lixenwraith/vr-range/game"
	"github.com/lixenwraith/vr-range/parameter"
	"github.com/lixenwraith/vr-range/vmath"
)

// Radar draws a top-down view of the arena with a status HUD
// Rows [0, RadarHUDRows) hold the HUD; the rest is the field, player centered, -Z up
type Radar struct {
	screen tcell.Screen
	base   tcell.Style
}

// NewRadar creates a radar drawing on screen
func NewRadar(screen tcell.Screen) *Radar {
	return &Radar{
		screen: screen,
		base:   tcell.StyleDefault.Background(RgbBackground.Tcell()).Foreground(RgbStatusText.Tcell()),
	}
}

// Draw renders one frame from snap and shows it; notes fill the bottom rows
func (r *Radar) Draw(snap game.Snapshot, notes ...string) {
	r.screen.SetStyle(r.base)
	r.screen.Clear()
	w, h := r.screen.Size()
	if w <= 0 || h <= parameter.RadarHUDRows {
		r.screen.Show()
		return
	}

	r.drawField(w, h)
	origin := snap.Pose.Head
	for i := range snap.Telegraphs {
		r.drawEntity(&snap.Telegraphs[i], origin, w, h)
	}
	for i := range snap.Entities {
		r.drawEntity(&snap.Entities[i], origin, w, h)
	}
	if x, y, ok := Project(origin, origin, w, h); ok {
		r.screen.SetContent(x, y, glyphPlayer, nil, r.base.Foreground(RgbPlayer.Tcell()).Bold(true))
	}

	r.drawStatus(snap, w)
	noteStyle := r.base.Foreground(RgbStatusDim.Tcell())
	for i, note := range notes {
		y := h - len(notes) + i
		if y < parameter.RadarHUDRows {
			continue
		}
		r.putString(0, y, note, noteStyle, w)
	}
	r.screen.Show()
}

// Project maps a world position to a field cell relative to origin
// ok is false outside RadarRange or off screen
func Project(pos, origin vmath.Vec3F, w, h int) (x, y int, ok bool) {
	fieldH := h - parameter.RadarHUDRows
	if w <= 0 || fieldH <= 0 {
		return 0, 0, false
	}
	dx := (pos.X - origin.X) / parameter.RadarRange
	dz := (pos.Z - origin.Z) / parameter.RadarRange
	if dx < -1 || dx > 1 || dz < -1 || dz > 1 {
		return 0, 0, false
	}
	cx := w / 2
	cy := parameter.RadarHUDRows + fieldH/2
	x = cx + int(dx*float64(w/2))
	y = cy + int(dz*float64(fieldH/2))
	if x < 0 || x >= w || y < parameter.RadarHUDRows || y >= h {
		return 0, 0, false
	}
	return x, y, true
}

// drawField marks the lateral and depth axes through the player
func (r *Radar) drawField(w, h int) {
	st := r.base.Foreground(RgbGrid.Tcell())
	fieldH := h - parameter.RadarHUDRows
	cx := w / 2
	cy := parameter.RadarHUDRows + fieldH/2
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, cy, '·', nil, st)
	}
	for y := parameter.RadarHUDRows; y < h; y++ {
		r.screen.SetContent(cx, y, '·', nil, st)
	}
}

func (r *Radar) drawEntity(e *component.Entity, origin vmath.Vec3F, w, h int) {
	x, y, ok := Project(e.Position, origin, w, h)
	if !ok {
		return
	}
	ch, col := EntityGlyph(e)
	st := r.base.Foreground(col.Tcell())
	if e.Boss {
		st = st.Bold(true)
	}
	r.screen.SetContent(x, y, ch, nil, st)
}

// drawStatus renders the two HUD rows
func (r *Radar) drawStatus(snap game.Snapshot, w int) {
	st := r.base.Foreground(RgbStatusText.Tcell())
	if !snap.Running {
		st = r.base.Foreground(RgbStatusDim.Tcell())
	}
	x := r.putString(0, 0, StatusLine(snap), st, w)
	if !snap.Running {
		r.putString(x, 0, "  [ROUND OVER]", r.base.Foreground(RgbWarning.Tcell()), w)
	}

	x = 0
	if snap.BossMaxHP > 0 {
		x = r.putString(x, 1, "BOSS ", r.base.Foreground(RgbBossBar.Tcell()), w)
		x = r.putString(x, 1, HealthBar(snap.BossHP, snap.BossMaxHP, parameter.BossBarWidth), r.base.Foreground(RgbBossBar.Tcell()), w)
		x = r.putString(x, 1, " ", st, w)
	}
	if snap.RhythmActive {
		x = r.putString(x, 1, fmt.Sprintf("♪%d ", snap.BPM), r.base.Foreground(RgbRhythm.Tcell()), w)
	}
	if snap.ActiveColor != component.ColorNone {
		if col, ok := matchColors[snap.ActiveColor]; ok {
			x = r.putString(x, 1, "■ "+snap.ActiveColor.String()+" ", r.base.Foreground(col.Tcell()), w)
		}
	}
	if len(snap.PowerUps) > 0 {
		names := make([]string, len(snap.PowerUps))
		for i, p := range snap.PowerUps {
			names[i] = string(p)
		}
		r.putString(x, 1, strings.Join(names, " "), r.base.Foreground(kindColors[component.KindPowerUp].Tcell()), w)
	}
}

// putString writes s from x on row y, clipped at w, and returns the next column
func (r *Radar) putString(x, y int, s string, st tcell.Style, w int) int {
	for _, ch := range s {
		if x >= w {
			return x
		}
		r.screen.SetContent(x, y, ch, nil, st)
		x++
	}
	return x
}

// StatusLine formats the primary HUD row
func StatusLine(snap game.Snapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  SCORE %d  COMBO x%d  BEST %d  WAVE %d", snap.Mode, snap.Score, snap.Combo, snap.BestCombo, snap.Wave)
	if snap.BossWave > 0 {
		fmt.Fprintf(&b, "  BOSS WAVE %d", snap.BossWave)
	}
	if snap.Infinite {
		b.WriteString("  LIVES ∞")
	} else {
		fmt.Fprintf(&b, "  LIVES %d", snap.Lives)
	}
	if snap.Timed {
		fmt.Fprintf(&b, "  TIME %s", FormatRemaining(snap.Remaining))
	}
	return b.String()
}

// FormatRemaining renders a countdown as m:ss.t
func FormatRemaining(d time.Duration) string {
	d = max(d, 0)
	tenths := int(d / (100 * time.Millisecond))
	return fmt.Sprintf("%d:%02d.%d", tenths/600, (tenths/10)%60, tenths%10)
}

// HealthBar renders hp of maxHP as a fixed width bar
func HealthBar(hp, maxHP, width int) string {
	if maxHP <= 0 || width <= 0 {
		return ""
	}
	filled := min(max(hp*width/maxHP, 0), width)
	if hp > 0 && filled == 0 {
		filled = 1
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
