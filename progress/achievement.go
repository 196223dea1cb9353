package progress

// Achievement is a one-time unlock checked after every round
type Achievement struct {
	ID          string
	Name        string
	Description string
	RewardXP    int
	check       func(p *Profile) bool
}

// Achievements is the unlock table in evaluation order
var Achievements = []Achievement{
	{ID: "first_blood", Name: "First Blood", Description: "Hit your first target", RewardXP: 10,
		check: func(p *Profile) bool { return p.TotalTargetsHit >= 1 }},
	{ID: "sharpshooter", Name: "Sharpshooter", Description: "Get a x10 combo", RewardXP: 50,
		check: func(p *Profile) bool { return p.BestCombo >= 10 }},
	{ID: "combo_king", Name: "Combo King", Description: "Get a x15 combo", RewardXP: 75,
		check: func(p *Profile) bool { return p.BestCombo >= 15 }},
	{ID: "combo_legend", Name: "Combo Legend", Description: "Get a x25 combo", RewardXP: 150,
		check: func(p *Profile) bool { return p.BestCombo >= 25 }},
	{ID: "centurion", Name: "Centurion", Description: "Hit 100 total targets", RewardXP: 25,
		check: func(p *Profile) bool { return p.TotalTargetsHit >= 100 }},
	{ID: "perfectionist", Name: "Perfectionist", Description: "Achieve 90%+ accuracy in a game", RewardXP: 100,
		check: func(p *Profile) bool { return p.BestAccuracy >= 90 }},
	{ID: "high_roller", Name: "High Roller", Description: "Earn 500 coins total", RewardXP: 75,
		check: func(p *Profile) bool { return p.Coins >= 500 }},
	{ID: "boss_slayer", Name: "Boss Slayer", Description: "Score 300 in Boss Rush", RewardXP: 100,
		check: func(p *Profile) bool { return p.HighScores["bossRush"] >= 300 }},
	{ID: "survivor", Name: "Survivor", Description: "Score 500 in Survival", RewardXP: 50,
		check: func(p *Profile) bool { return p.HighScores["survival"] >= 500 }},
	{ID: "reflex_god", Name: "Reflex God", Description: "Score 1000 in Reflex Rush", RewardXP: 150,
		check: func(p *Profile) bool { return p.HighScores["reflexRush"] >= 1000 }},
}

// LookupAchievement finds an achievement by id
func LookupAchievement(id string) (Achievement, bool) {
	for _, a := range Achievements {
		if a.ID == id {
			return a, true
		}
	}
	return Achievement{}, false
}
