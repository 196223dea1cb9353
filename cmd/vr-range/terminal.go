package main

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"

	"github.com/lixenwraith/vr-range/audio"
	"github.com/lixenwraith/vr-range/component"
	"github.com/lixenwraith/vr-range/core"
	"github.com/lixenwraith/vr-range/engine"
	"github.com/lixenwraith/vr-range/game"
	"github.com/lixenwraith/vr-range/parameter"
	"github.com/lixenwraith/vr-range/progress"
	"github.com/lixenwraith/vr-range/render"
	"github.com/lixenwraith/vr-range/system"
	"github.com/lixenwraith/vr-range/vmath"
	"github.com/lixenwraith/vr-range/weapon"
)

// Keyboard aiming
const (
	aimStep       = 0.05 // radians per arrow press
	maxPitch      = 1.2
	shieldReach   = 0.4
	punchReach    = 0.5
	punchVelocity = 3.0
)

const helpLine = "arrows aim  space fire  s shield  f punch  p pause  r restart  a autopilot  m mute  c share  1-5 weapon  q quit"

// action is what a key asks of the app beyond pose and pause
type action int

const (
	actNone action = iota
	actQuit
	actRestart
	actMute
	actShare
)

// controller turns key presses into a pose and trigger pulls
type controller struct {
	session *game.Session
	pose    *system.PoseHolder
	clock   *engine.PausableClock
	weapons []weapon.Spec

	yaw, pitch float64
	shield     bool
	autopilot  bool
}

func newController(session *game.Session, pose *system.PoseHolder, clock *engine.PausableClock, level int) *controller {
	return &controller{
		session: session,
		pose:    pose,
		clock:   clock,
		weapons: weapon.Unlocked(level),
	}
}

// forward is the look direction for the current yaw and pitch
func (c *controller) forward() vmath.Vec3F {
	flat := vmath.FromYaw(c.yaw)
	cp := math.Cos(c.pitch)
	return vmath.Vec3F{X: flat.X * cp, Y: math.Sin(c.pitch), Z: flat.Z * cp}
}

// current builds the pose the keyboard describes
func (c *controller) current() component.Pose {
	p := component.DefaultPose()
	p.Forward = c.forward()
	if c.shield {
		p.ShieldUp = true
		p.LeftHand = vmath.V3FAdd(p.Head, vmath.V3FScale(p.Forward, shieldReach))
	}
	return p
}

// handleKey applies ev and returns what the app must do next
func (c *controller) handleKey(ev *tcell.EventKey) action {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return actQuit
	case tcell.KeyLeft:
		c.yaw += aimStep
	case tcell.KeyRight:
		c.yaw -= aimStep
	case tcell.KeyUp:
		c.pitch = vmath.Clamp(c.pitch+aimStep, -maxPitch, maxPitch)
	case tcell.KeyDown:
		c.pitch = vmath.Clamp(c.pitch-aimStep, -maxPitch, maxPitch)
	case tcell.KeyRune:
		return c.handleRune(ev.Rune())
	}
	return actNone
}

func (c *controller) handleRune(r rune) action {
	switch r {
	case 'q':
		return actQuit
	case 'r':
		return actRestart
	case 'm':
		return actMute
	case 'c':
		return actShare
	case 'p':
		c.clock.Toggle()
	case 'a':
		c.autopilot = !c.autopilot
	case 's':
		c.shield = !c.shield
	case ' ':
		c.fire()
	case 'f':
		c.punch()
	case '1', '2', '3', '4', '5':
		if i := int(r - '1'); i < len(c.weapons) {
			c.session.SelectWeapon(c.weapons[i].ID)
		}
	}
	return actNone
}

func (c *controller) fire() {
	if c.autopilot || c.clock.IsPaused() {
		return
	}
	p := c.current()
	c.pose.Set(p)
	c.session.Fire(game.FireIntent{
		Origin:    p.Head,
		Direction: p.Forward,
		Charge:    c.session.Weapon().Charge,
	})
}

func (c *controller) punch() {
	if c.autopilot || c.clock.IsPaused() {
		return
	}
	p := c.current()
	hand := vmath.V3FAdd(p.Head, vmath.V3FScale(p.Forward, punchReach))
	c.session.Punch(hand, vmath.V3FScale(p.Forward, punchVelocity))
}

// runTerminal plays in real time on a tcell screen
func (a *app) runTerminal(ctx context.Context) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	core.SetCrashHandler(func(r any) {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "vr-range crashed: %v\n", r)
		os.Exit(1)
	})

	clock := engine.NewPausableClock(engine.NewMonotonicTimeProvider())
	pose := system.NewPoseHolder(component.DefaultPose())
	session := a.newSession(clock, pose)
	radar := render.NewRadar(screen)
	ctl := newController(session, pose, clock, a.level())
	bot := NewBot(session, pose, rand.New(rand.NewSource(a.opts.seed)))

	if !a.opts.mute {
		cfg := audio.LoadConfig()
		spk := audio.NewSpeaker()
		if err := spk.Init(beep.SampleRate(cfg.SampleRate)); err != nil {
			a.log.Warn().Err(err).Msg("audio unavailable")
		} else {
			defer spk.Close()
		}
		a.cues = audio.NewCuePlayer(cfg, spk, a.status, a.log)
		a.router.Register(a.cues)
	}

	sched, _ := engine.NewClockScheduler(session, clock, parameter.GameUpdateInterval, a.status)
	if err := a.startRound(session); err != nil {
		screen.Fini()
		return err
	}
	sched.Start()
	defer sched.Stop()

	ctx, cancel := context.WithCancel(ctx)
	g, gctx := errgroup.WithContext(ctx)
	a.watchModes(g, gctx)

	keys := make(chan *tcell.EventKey, 16)
	g.Go(func() error {
		for {
			switch ev := screen.PollEvent().(type) {
			case nil:
				return nil
			case *tcell.EventKey:
				select {
				case keys <- ev:
				case <-gctx.Done():
					return nil
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		}
	})

	g.Go(func() error {
		defer a.stopWatch()
		defer a.logMetrics()
		defer screen.Fini()
		defer cancel()

		ticker := time.NewTicker(parameter.FrameUpdateInterval)
		defer ticker.Stop()
		var note string
		for {
			select {
			case <-gctx.Done():
				session.Stop()
				return nil
			case ev := <-keys:
				switch ctl.handleKey(ev) {
				case actQuit:
					session.Stop()
					return nil
				case actRestart:
					session.Stop()
					if err := a.startRound(session); err != nil {
						return err
					}
					note = ""
				case actMute:
					if a.cues != nil {
						a.cues.SetMuted(!a.cues.Muted())
					}
				case actShare:
					note = a.shareLast()
				}
			case <-ticker.C:
				if ctl.autopilot {
					bot.Step(clock.Now())
				} else {
					pose.Set(ctl.current())
				}
				a.router.DispatchAll()
				radar.Draw(session.Snapshot(), a.notes(session, clock, note)...)
			}
		}
	})
	return g.Wait()
}

// notes are the bottom rows under the radar
func (a *app) notes(session *game.Session, clock *engine.PausableClock, note string) []string {
	var out []string
	if clock.IsPaused() {
		out = append(out, "PAUSED")
	}
	if !session.Running() {
		if o, ok := a.lastOutcome(); ok {
			s := o.Summary
			out = append(out, fmt.Sprintf("final %d  hits %d  accuracy %d%%  +%d xp  level %d  rank %s",
				s.Score, s.TargetsHit, s.Accuracy, o.XPTotal, o.NewLevel, o.Rank.Tier))
		}
	}
	if note != "" {
		out = append(out, note)
	}
	return append(out, fmt.Sprintf("%s  [%s]", helpLine, session.Weapon().Name))
}

// shareLast copies the last round's share text and reports the result
func (a *app) shareLast() string {
	o, ok := a.lastOutcome()
	if !ok {
		return "no finished round to share"
	}
	if err := copyShareText(progress.FormatShareText(o.Summary, language.English)); err != nil {
		return err.Error()
	}
	return "share text copied to clipboard"
}
