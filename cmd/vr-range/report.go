package main

import (
	"fmt"
	"io"
	"sync"
	"text/tabwriter"
	"time"

	"golang.design/x/clipboard"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/lixenwraith/vr-range/event"
	"github.com/lixenwraith/vr-range/game"
	"github.com/lixenwraith/vr-range/mode"
	"github.com/lixenwraith/vr-range/progress"
)

// tally counts routed notifications for the headless summary
type tally struct {
	mu     sync.Mutex
	counts map[event.EventType]int
}

func newTally() *tally {
	return &tally{counts: make(map[event.EventType]int)}
}

func (t *tally) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventHit,
		event.EventMiss,
		event.EventDodge,
		event.EventBlock,
		event.EventPlayerDamage,
		event.EventBossKilled,
		event.EventWaveEvent,
		event.EventPowerUpActivate,
	}
}

func (t *tally) HandleEvent(ev event.GameEvent) {
	t.mu.Lock()
	t.counts[ev.Type]++
	t.mu.Unlock()
}

// take returns the count for typ and clears it
func (t *tally) take(typ event.EventType) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	n := t.counts[typ]
	delete(t.counts, typ)
	return n
}

// printCatalog lists modes in unlock order, marks the weekly challenge and names today's daily
func printCatalog(w io.Writer, c *mode.Catalog, now time.Time) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "MODE\tNAME\tLEVEL\tLIVES\tDURATION\tXP")
	for _, id := range c.IDs() {
		m := c.Lookup(id)
		lives := "inf"
		if !m.InfiniteLives() {
			lives = fmt.Sprint(m.Lives)
		}
		dur := "-"
		if m.Timed() {
			dur = m.Duration.String()
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\tx%.1f\n", m.ID, m.Name, m.UnlockLevel, lives, dur, m.XPMultiplier)
	}
	tw.Flush()

	weekly := mode.CurrentChallenge(now)
	fmt.Fprintln(w)
	tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CHALLENGE\tNAME\tXP\t")
	for _, ch := range mode.Challenges {
		mark := ""
		if ch.ID == weekly.ID {
			mark = "this week"
		}
		fmt.Fprintf(tw, "%s\t%s\t+%d\t%s\n", ch.ID, ch.Name, ch.XPBonus, mark)
	}
	tw.Flush()

	daily := mode.CurrentDaily(now)
	fmt.Fprintf(w, "\ndaily %s: %s (+%d xp, +%d coins)\n", daily.ID, daily.Description, daily.RewardXP, daily.RewardCoins)
}

// printOutcome writes the round summary and progression
func printOutcome(w io.Writer, rep game.Report, out progress.Outcome) {
	p := message.NewPrinter(language.English)
	s := out.Summary
	p.Fprintf(w, "%s round %s ended (%s) after %v\n", s.ModeName, rep.RoundID, rep.Reason, rep.Duration.Round(time.Millisecond))
	p.Fprintf(w, "  score %d  hits %d/%d shots  accuracy %d%%  best combo x%d  wave %d\n",
		s.Score, s.TargetsHit, s.ShotsFired, s.Accuracy, s.BestCombo, rep.Wave)
	if s.IsNewHigh {
		p.Fprintf(w, "  new high score (+%d)\n", s.VsBest)
	}
	p.Fprintf(w, "  xp +%d", out.XPTotal)
	if s.ChallengeXP > 0 {
		p.Fprintf(w, " (challenge +%d)", s.ChallengeXP)
	}
	p.Fprintf(w, "  level %d", out.NewLevel)
	if out.LeveledUp {
		p.Fprintf(w, " (up from %d)", out.OldLevel)
	}
	p.Fprintf(w, "  rank %s\n", out.Rank.Tier)
	for _, a := range out.Unlocked {
		p.Fprintf(w, "  achievement: %s (+%d xp)\n", a.Name, a.RewardXP)
	}
	switch d := out.Daily; {
	case out.DailyDone:
		p.Fprintf(w, "  daily complete: %s (+%d xp, +%d coins)\n", d.Description, d.RewardXP, d.RewardCoins)
	case d.ID != "":
		p.Fprintf(w, "  daily: %s %d/%d\n", d.Description, out.DailyState.Progress, d.Target)
	}
}

// printTally writes hazard and event counts gathered by the router
func printTally(w io.Writer, t *tally) {
	fmt.Fprintf(w, "  events: %d hits, %d misses, %d dodges, %d blocks, %d damage, %d bosses, %d wave events, %d power-ups\n",
		t.take(event.EventHit), t.take(event.EventMiss), t.take(event.EventDodge), t.take(event.EventBlock),
		t.take(event.EventPlayerDamage), t.take(event.EventBossKilled), t.take(event.EventWaveEvent),
		t.take(event.EventPowerUpActivate))
}

// copyShareText places text on the system clipboard
func copyShareText(text string) error {
	if err := clipboard.Init(); err != nil {
		return fmt.Errorf("clipboard unavailable: %w", err)
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}
