package main

import (
	"context"
	"math/rand"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/vr-range/component"
	"github.com/lixenwraith/vr-range/engine"
	"github.com/lixenwraith/vr-range/parameter"
	"github.com/lixenwraith/vr-range/system"
)

// runHeadless lets the bot play in simulated time, as fast as the host allows
func (a *app) runHeadless(ctx context.Context) error {
	tp := engine.NewMockTimeProvider(time.Now())
	pose := system.NewPoseHolder(component.DefaultPose())
	session := a.newSession(tp, pose)
	bot := NewBot(session, pose, rand.New(rand.NewSource(a.opts.seed)))

	g, gctx := errgroup.WithContext(ctx)
	a.watchModes(g, gctx)

	g.Go(func() error {
		defer a.stopWatch()
		defer a.logMetrics()
		for round := 0; round < a.opts.rounds; round++ {
			if err := a.startRound(session); err != nil {
				return err
			}
			deadline := tp.Now().Add(a.opts.limit)
			for session.Running() && tp.Now().Before(deadline) {
				if err := gctx.Err(); err != nil {
					session.Stop()
					return nil
				}
				now := tp.Advance(parameter.GameUpdateInterval)
				session.Tick(now)
				bot.Step(now)
				a.router.DispatchAll()
			}
			// Untimed modes without lives end at the cap
			session.Stop()
			a.router.DispatchAll()
			printTally(a.out, a.tally)
		}
		return nil
	})
	return g.Wait()
}
