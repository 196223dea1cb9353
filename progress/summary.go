package progress

import (
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/lixenwraith/vr-range/game"
	"github.com/lixenwraith/vr-range/mode"
)

// XPScoreDivisor converts score into base XP
const XPScoreDivisor = 5

// Summary is the post-round digest shown to the player
type Summary struct {
	Mode        string
	ModeName    string
	Score       int
	TargetsHit  int
	BestCombo   int
	ShotsFired  int
	Accuracy    int // percent
	IsNewHigh   bool
	VsBest      int
	XPEarned    int
	ChallengeXP int
}

// Accuracy is hits over shots as a rounded percentage, zero without shots
func Accuracy(hits, shots int) int {
	if shots <= 0 {
		return 0
	}
	return int(math.Round(float64(hits) / float64(shots) * 100))
}

// RoundXP is floor(floor(score/5) * multiplier); negative scores earn nothing
func RoundXP(score int, multiplier float64) int {
	if score <= 0 {
		return 0
	}
	return int(math.Floor(float64(score/XPScoreDivisor) * multiplier))
}

// Summarize digests a report against the best score held before the round
// A completed challenge round with a positive score earns the challenge bonus
func Summarize(rep game.Report, m mode.Config, highScore int) Summary {
	s := Summary{
		Mode:       m.ID,
		ModeName:   m.Name,
		Score:      rep.Score,
		TargetsHit: rep.TargetsHit,
		BestCombo:  rep.BestCombo,
		ShotsFired: rep.ShotsFired,
		Accuracy:   Accuracy(rep.TargetsHit, rep.ShotsFired),
		IsNewHigh:  rep.Score > highScore && rep.Score > 0,
		VsBest:     rep.Score - highScore,
		XPEarned:   RoundXP(rep.Score, m.XPMultiplier),
	}
	if ch, ok := mode.LookupChallenge(rep.Challenge); ok && rep.Score > 0 {
		s.ChallengeXP = ch.XPBonus
	}
	return s
}

// FormatShareText renders the shareable result with locale number grouping
func FormatShareText(s Summary, lang language.Tag) string {
	p := message.NewPrinter(lang)
	lines := []string{
		"VR Range | " + s.ModeName,
		p.Sprintf("Score: %d | Combo: x%d", s.Score, s.BestCombo),
		p.Sprintf("Accuracy: %d%%", s.Accuracy),
	}
	if s.IsNewHigh {
		lines = append(lines, "New High Score!")
	}
	lines = append(lines, "Can you beat my score?")
	return strings.Join(lines, "\n")
}
