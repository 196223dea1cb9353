package progress

import (
	"slices"

	"github.com/lixenwraith/vr-range/game"
	"github.com/lixenwraith/vr-range/mode"
)

// RecentLimit bounds the stored round history
const RecentLimit = 10

// Profile is the persistent player record
type Profile struct {
	Name            string         `yaml:"name"`
	Level           int            `yaml:"level"`
	XP              int            `yaml:"xp"` // toward the next level
	TotalXP         int            `yaml:"totalXp"`
	GamesPlayed     int            `yaml:"gamesPlayed"`
	TotalTargetsHit int            `yaml:"totalTargetsHit"`
	TotalShotsFired int            `yaml:"totalShotsFired"`
	BestCombo       int            `yaml:"bestCombo"`
	BestAccuracy    int            `yaml:"bestAccuracy"`
	Coins           int            `yaml:"coins"`
	HighScores      map[string]int `yaml:"highScores"`
	ModeGames       map[string]int `yaml:"modeGames"`
	WeaponUsage     map[string]int `yaml:"weaponUsage"`
	Achievements    []string       `yaml:"achievements"`
	Recent          []game.Report  `yaml:"recent"`

	Daily mode.DailyProgress `yaml:"dailyChallenge"`
}

// NewProfile creates a level 1 profile
func NewProfile(name string) *Profile {
	p := &Profile{Name: name, Level: 1}
	p.ensureMaps()
	return p
}

func (p *Profile) ensureMaps() {
	if p.Level < 1 {
		p.Level = 1
	}
	if p.HighScores == nil {
		p.HighScores = make(map[string]int)
	}
	if p.ModeGames == nil {
		p.ModeGames = make(map[string]int)
	}
	if p.WeaponUsage == nil {
		p.WeaponUsage = make(map[string]int)
	}
}

// Rank returns the tier for the lifetime XP
func (p *Profile) Rank() RankStatus {
	return RankFor(p.TotalXP)
}

// Unlocked reports whether an achievement id is held
func (p *Profile) Unlocked(id string) bool {
	return slices.Contains(p.Achievements, id)
}

// AddXP credits XP and levels up while the level threshold is met
func (p *Profile) AddXP(amount int) (leveledUp bool) {
	if amount <= 0 {
		return false
	}
	old := p.Level
	p.XP += amount
	p.TotalXP += amount
	for p.XP >= XPForLevel(p.Level) {
		p.XP -= XPForLevel(p.Level)
		p.Level++
	}
	return p.Level > old
}

// Outcome is everything a finished round changed on the profile
type Outcome struct {
	Summary   Summary
	Unlocked  []Achievement
	XPTotal   int // round, challenge, daily and achievement XP
	LeveledUp bool

	Daily      mode.Daily
	DailyState mode.DailyProgress
	DailyDone  bool // this round completed the daily
	OldLevel  int
	NewLevel  int
	Rank      RankStatus
}

// Apply folds a round report into the profile
func (p *Profile) Apply(rep game.Report, m mode.Config) Outcome {
	p.ensureMaps()
	out := Outcome{OldLevel: p.Level}

	out.Summary = Summarize(rep, m, p.HighScores[rep.Mode])
	if out.Summary.IsNewHigh {
		p.HighScores[rep.Mode] = rep.Score
	}

	p.GamesPlayed++
	p.TotalTargetsHit += rep.TargetsHit
	p.TotalShotsFired += rep.ShotsFired
	p.BestCombo = max(p.BestCombo, rep.BestCombo)
	p.BestAccuracy = max(p.BestAccuracy, out.Summary.Accuracy)
	p.Coins += rep.CoinsEarned
	p.ModeGames[rep.Mode]++
	if rep.Weapon != "" {
		p.WeaponUsage[rep.Weapon]++
	}

	p.Recent = append(p.Recent, rep)
	if len(p.Recent) > RecentLimit {
		p.Recent = slices.Clone(p.Recent[len(p.Recent)-RecentLimit:])
	}

	out.Unlocked = p.checkAchievements()
	out.XPTotal = out.Summary.XPEarned + out.Summary.ChallengeXP
	for _, a := range out.Unlocked {
		out.XPTotal += a.RewardXP
	}

	out.Daily, p.Daily, out.DailyDone = mode.CheckDaily(p.Daily, rep.EndedAt, mode.DailyResult{
		Mode:       rep.Mode,
		Weapon:     rep.Weapon,
		Score:      rep.Score,
		TargetsHit: rep.TargetsHit,
		BestCombo:  rep.BestCombo,
	})
	out.DailyState = p.Daily
	if out.DailyDone {
		out.XPTotal += out.Daily.RewardXP
		p.Coins += out.Daily.RewardCoins
	}
	out.LeveledUp = p.AddXP(out.XPTotal)
	out.NewLevel = p.Level
	out.Rank = p.Rank()
	return out
}

// checkAchievements unlocks every newly satisfied achievement
func (p *Profile) checkAchievements() []Achievement {
	var unlocked []Achievement
	for _, a := range Achievements {
		if p.Unlocked(a.ID) || !a.check(p) {
			continue
		}
		p.Achievements = append(p.Achievements, a.ID)
		unlocked = append(unlocked, a)
	}
	return unlocked
}
