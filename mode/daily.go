package mode

import "time"

// DailyKind selects which round figure a daily challenge measures
type DailyKind string

const (
	DailyScore       DailyKind = "score"          // best score, optionally in one mode
	DailyScoreWeapon DailyKind = "scoreWeapon"    // best score with one weapon
	DailyTargetsHit  DailyKind = "targetsHit"     // best hits in a single round
	DailyCombo       DailyKind = "combo"          // best combo in a single round
	DailyGamesPlayed DailyKind = "gamesPlayed"    // rounds finished today
	DailyHitsToday   DailyKind = "totalHitsToday" // hits summed over today's rounds
)

// Daily is one goal of the date-seeded daily rotation
type Daily struct {
	ID          string
	Description string
	Kind        DailyKind
	Mode        string // score goals only; empty matches any mode
	Weapon      string // scoreWeapon goals only
	Target      int
	RewardXP    int
	RewardCoins int
}

// Dailies is the daily rotation, indexed by the date seed modulo its length
var Dailies = []Daily{
	{ID: "score500_ta", Description: "Score 500+ in Time Attack", Kind: DailyScore, Mode: "timeAttack",
		Target: 500, RewardXP: 100, RewardCoins: 20},
	{ID: "hit50", Description: "Hit 50 targets in one round", Kind: DailyTargetsHit,
		Target: 50, RewardXP: 75, RewardCoins: 15},
	{ID: "combo5", Description: "Get a x5 combo", Kind: DailyCombo,
		Target: 5, RewardXP: 80, RewardCoins: 15},
	{ID: "play3", Description: "Play 3 rounds today", Kind: DailyGamesPlayed,
		Target: 3, RewardXP: 50, RewardCoins: 10},
	{ID: "score200_sniper", Description: "Score 200+ with the Longshot", Kind: DailyScoreWeapon, Weapon: "sniper",
		Target: 200, RewardXP: 120, RewardCoins: 25},
	{ID: "survive300", Description: "Score 300+ in Survival", Kind: DailyScore, Mode: "survival",
		Target: 300, RewardXP: 150, RewardCoins: 30},
	{ID: "hit100_total", Description: "Hit 100 targets today", Kind: DailyHitsToday,
		Target: 100, RewardXP: 100, RewardCoins: 20},
	{ID: "combo8", Description: "Get a x8 combo", Kind: DailyCombo,
		Target: 8, RewardXP: 120, RewardCoins: 25},
	{ID: "play5", Description: "Play 5 rounds today", Kind: DailyGamesPlayed,
		Target: 5, RewardXP: 80, RewardCoins: 15},
	{ID: "score1000_ta", Description: "Score 1000+ in Time Attack", Kind: DailyScore, Mode: "timeAttack",
		Target: 1000, RewardXP: 200, RewardCoins: 50},
}

// DailyKey is the calendar date of t in t's location
func DailyKey(t time.Time) string {
	return t.Format(time.DateOnly)
}

// CurrentDaily picks the daily for t's date from the seed yyyymmdd
func CurrentDaily(t time.Time) Daily {
	y, m, d := t.Date()
	seed := y*10000 + int(m)*100 + d
	return Dailies[seed%len(Dailies)]
}

// DailyResult is what one finished round contributes to a daily
type DailyResult struct {
	Mode       string
	Weapon     string
	Score      int
	TargetsHit int
	BestCombo  int
}

// DailyProgress is the persisted state of one day's challenge
type DailyProgress struct {
	ID         string `yaml:"id"`
	Date       string `yaml:"date"`
	Progress   int    `yaml:"progress"`
	Completed  bool   `yaml:"completed"`
	HitsToday  int    `yaml:"hitsToday"`
	GamesToday int    `yaml:"gamesPlayedToday"`
}

// Record folds r into p; the bool is true only on the round that completes the goal.
// A completed day ignores further rounds
func (d Daily) Record(p DailyProgress, r DailyResult) (DailyProgress, bool) {
	if p.Completed {
		return p, false
	}
	p.HitsToday += r.TargetsHit
	p.GamesToday++

	switch d.Kind {
	case DailyScore:
		if d.Mode == "" || r.Mode == d.Mode {
			p.Progress = max(p.Progress, r.Score)
		}
	case DailyScoreWeapon:
		if r.Weapon == d.Weapon {
			p.Progress = max(p.Progress, r.Score)
		}
	case DailyTargetsHit:
		p.Progress = max(p.Progress, r.TargetsHit)
	case DailyCombo:
		p.Progress = max(p.Progress, r.BestCombo)
	case DailyGamesPlayed:
		p.Progress = p.GamesToday
	case DailyHitsToday:
		p.Progress = p.HitsToday
	}

	if p.Progress >= d.Target {
		p.Completed = true
		return p, true
	}
	return p, false
}

// CheckDaily records r against the daily of now, starting fresh when the stored day is stale
func CheckDaily(p DailyProgress, now time.Time, r DailyResult) (Daily, DailyProgress, bool) {
	d := CurrentDaily(now)
	if key := DailyKey(now); p.Date != key || p.ID != d.ID {
		p = DailyProgress{ID: d.ID, Date: key}
	}
	p, done := d.Record(p, r)
	return d, p, done
}
