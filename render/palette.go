package render

import (
	"github.com/lixenwraith/vr-range/component"
)

// Base colors (Tokyo Night)
var (
	RgbBackground = RGB{26, 27, 38}
	RgbGrid       = RGB{41, 46, 66}
	RgbPlayer     = RGB{255, 255, 255}
	RgbStatusText = RGB{192, 202, 245}
	RgbStatusDim  = RGB{86, 95, 137}
	RgbWarning    = RGB{247, 118, 142}
	RgbBossBar    = RGB{255, 80, 80}
	RgbRhythm     = RGB{187, 154, 247}
)

// Entity colors by kind
var kindColors = map[component.Kind]RGB{
	component.KindStandard:       {100, 150, 255},
	component.KindSpeed:          {0, 200, 200},
	component.KindHeavy:          {180, 120, 60},
	component.KindBonus:          {255, 215, 0},
	component.KindDecoy:          {255, 80, 80},
	component.KindPowerUp:        {50, 255, 50},
	component.KindBlink:          {200, 200, 255},
	component.KindPeripheral:     {255, 165, 0},
	component.KindCharger:        {255, 60, 0},
	component.KindProjectile:     {255, 120, 120},
	component.KindDangerZone:     {200, 50, 50},
	component.KindScareBall:      {160, 80, 200},
	component.KindLaserSweep:     {255, 0, 128},
	component.KindMultiplierZone: {120, 255, 160},
	component.KindMelee:          {255, 192, 203},
}

var matchColors = map[component.Color]RGB{
	component.ColorRed:    {255, 60, 60},
	component.ColorGreen:  {60, 220, 60},
	component.ColorBlue:   {80, 120, 255},
	component.ColorYellow: {255, 230, 60},
}

var kindGlyphs = map[component.Kind]rune{
	component.KindStandard:       'o',
	component.KindSpeed:          '>',
	component.KindHeavy:          'O',
	component.KindBonus:          '$',
	component.KindDecoy:          'x',
	component.KindPowerUp:        '+',
	component.KindBlink:          '?',
	component.KindPeripheral:     '@',
	component.KindCharger:        'C',
	component.KindProjectile:     '*',
	component.KindDangerZone:     '#',
	component.KindScareBall:      'S',
	component.KindLaserSweep:     '=',
	component.KindMultiplierZone: '%',
	component.KindMelee:          'M',
	component.KindColorMatch:     'c',
}

const (
	glyphBoss      = 'B'
	glyphTelegraph = '.'
	glyphPlayer    = '^'
)

// EntityGlyph returns the rune and color used to draw e
func EntityGlyph(e *component.Entity) (rune, RGB) {
	ch, ok := kindGlyphs[e.Kind]
	if !ok {
		ch = 'o'
	}
	if e.Boss {
		ch = glyphBoss
	}

	col, ok := kindColors[e.Kind]
	if e.Kind == component.KindColorMatch {
		col, ok = matchColors[e.Color]
	}
	if !ok {
		col = RgbStatusText
	}
	if e.Phase == component.PhaseTelegraphing {
		return glyphTelegraph, RgbBackground.Blend(col, 0.5)
	}
	// Hidden blink phase
	if !e.Visible {
		col = RgbBackground.Blend(col, 0.3)
	}
	return ch, col
}
