package progress

import "math"

// Rank is a lifetime XP tier
type Rank struct {
	Tier  string
	MinXP int
}

// Ranks are ordered by threshold
var Ranks = []Rank{
	{Tier: "Bronze", MinXP: 0},
	{Tier: "Silver", MinXP: 5000},
	{Tier: "Gold", MinXP: 15000},
	{Tier: "Platinum", MinXP: 40000},
	{Tier: "Diamond", MinXP: 100000},
	{Tier: "Legend", MinXP: 250000},
}

// RankStatus places total XP on the tier ladder
type RankStatus struct {
	Rank
	Next     string // empty at the top tier
	XPToNext int
	Progress float64 // percent toward Next, 100 at the top tier
}

// RankFor resolves the tier and the progress to the next one
func RankFor(totalXP int) RankStatus {
	idx := 0
	for i := len(Ranks) - 1; i >= 0; i-- {
		if totalXP >= Ranks[i].MinXP {
			idx = i
			break
		}
	}
	st := RankStatus{Rank: Ranks[idx], Progress: 100}
	if idx+1 < len(Ranks) {
		next := Ranks[idx+1]
		st.Next = next.Tier
		st.XPToNext = next.MinXP - totalXP
		p := float64(totalXP-st.MinXP) / float64(next.MinXP-st.MinXP) * 100
		st.Progress = min(max(p, 0), 100)
	}
	return st
}

// XPForLevel is the XP needed to clear level
func XPForLevel(level int) int {
	if level < 1 {
		level = 1
	}
	return int(math.Floor(100 * math.Pow(1.15, float64(level-1))))
}
