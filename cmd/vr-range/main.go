package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/text/language"

	"github.com/lixenwraith/vr-range/audio"
	"github.com/lixenwraith/vr-range/engine"
	"github.com/lixenwraith/vr-range/event"
	"github.com/lixenwraith/vr-range/game"
	"github.com/lixenwraith/vr-range/mode"
	"github.com/lixenwraith/vr-range/progress"
	"github.com/lixenwraith/vr-range/status"
	"github.com/lixenwraith/vr-range/system"
	"github.com/lixenwraith/vr-range/weapon"
)

// options are the parsed command-line flags
type options struct {
	mode      string
	modesFile string
	weapon    string
	challenge string
	profile   string
	seed      int64
	rounds    int
	limit     time.Duration
	headless  bool
	share     bool
	mute      bool
	debug     bool
	list      bool
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("vr-range", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.mode, "mode", mode.DefaultMode, "game mode id")
	fs.StringVar(&o.modesFile, "modes", "", "YAML mode override file, reloaded on change")
	fs.StringVar(&o.weapon, "weapon", weapon.DefaultWeapon, "weapon id: pistol, shotgun, sniper, smg, railgun")
	fs.StringVar(&o.challenge, "challenge", "", "challenge id, or 'weekly' for this week's challenge")
	fs.StringVar(&o.profile, "profile", "player", "profile name")
	fs.Int64Var(&o.seed, "seed", 0, "random seed, 0 picks one from the clock")
	fs.IntVar(&o.rounds, "rounds", 1, "rounds to play in headless mode")
	fs.DurationVar(&o.limit, "limit", 3*time.Minute, "game-time cap per headless round")
	fs.BoolVar(&o.headless, "headless", false, "let the bot play in simulated time and print the summary")
	fs.BoolVar(&o.share, "share", false, "copy the round share text to the clipboard")
	fs.BoolVar(&o.mute, "mute", false, "disable audio cues")
	fs.BoolVar(&o.debug, "debug", false, "write logs to "+logDir+"/"+logFileName)
	fs.BoolVar(&o.list, "list", false, "list modes and challenges, then exit")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if o.rounds < 1 {
		return o, fmt.Errorf("rounds must be positive, got %d", o.rounds)
	}
	if o.limit <= 0 {
		return o, fmt.Errorf("limit must be positive, got %v", o.limit)
	}
	if o.seed == 0 {
		o.seed = time.Now().UnixNano()
	}
	return o, nil
}

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		os.Exit(2)
	}

	logFile := setupLogging(opts.debug)
	log := newLogger(logFile)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = run(ctx, opts, log, os.Stdout)
	stop()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "vr-range: %v\n", err)
		os.Exit(1)
	}
}

// app holds what outlives a single session: catalog, profile and event plumbing
type app struct {
	opts      options
	log       zerolog.Logger
	out       io.Writer
	catalog   *mode.Catalog
	challenge string
	store     *progress.Store
	status    *status.Registry

	queue  *event.EventQueue
	router *event.Router
	cues   *audio.CuePlayer
	tally  *tally

	mu      sync.Mutex
	profile *progress.Profile
	last    *progress.Outcome
	reload  atomic.Bool
	watcher *mode.Watcher
}

// openStore is replaced in tests with an in-memory store
var openStore = func() (*progress.Store, error) {
	return progress.OpenStore(progress.AppName)
}

func run(ctx context.Context, opts options, log zerolog.Logger, out io.Writer) error {
	catalog := mode.NewCatalog()
	if opts.modesFile != "" {
		ids, err := catalog.LoadFile(opts.modesFile)
		if err != nil {
			return err
		}
		log.Info().Strs("modes", ids).Str("file", opts.modesFile).Msg("mode overrides loaded")
	}
	if opts.list {
		printCatalog(out, catalog, time.Now())
		return nil
	}
	if !catalog.Known(opts.mode) {
		return fmt.Errorf("unknown mode %q", opts.mode)
	}
	challenge, err := resolveChallenge(opts.challenge, time.Now())
	if err != nil {
		return err
	}

	store, err := openStore()
	if err != nil {
		log.Warn().Err(err).Msg("profile store unavailable, progress kept in memory")
		store = progress.NewStore(nil)
	}
	profile, err := store.Load(opts.profile)
	if err != nil {
		return err
	}
	if !opts.headless && !catalog.Unlocked(opts.mode, profile.Level) {
		return fmt.Errorf("mode %s unlocks at level %d, profile %s is level %d",
			opts.mode, catalog.Lookup(opts.mode).UnlockLevel, profile.Name, profile.Level)
	}

	a := &app{
		opts:      opts,
		log:       log,
		out:       out,
		catalog:   catalog,
		challenge: challenge,
		store:     store,
		status:    status.NewRegistry(),
		queue:     event.NewEventQueue(),
		profile:   profile,
		tally:     newTally(),
	}
	a.router = event.NewRouter(a.queue)
	a.router.Register(a.tally)

	if opts.headless {
		return a.runHeadless(ctx)
	}
	return a.runTerminal(ctx)
}

// resolveChallenge maps the flag to a challenge id; "weekly" picks the rotation for now
func resolveChallenge(flagValue string, now time.Time) (string, error) {
	switch flagValue {
	case "":
		return "", nil
	case "weekly":
		return mode.CurrentChallenge(now).ID, nil
	}
	if _, ok := mode.LookupChallenge(flagValue); !ok {
		return "", fmt.Errorf("unknown challenge %q", flagValue)
	}
	return flagValue, nil
}

// newSession wires a session to the shared event bus
func (a *app) newSession(clock engine.TimeProvider, pose *system.PoseHolder) *game.Session {
	s := game.NewSession(game.Config{
		Mode:      a.catalog.Lookup(a.opts.mode),
		Challenge: a.challenge,
		Weapon:    a.opts.weapon,
		Clock:     clock,
		Emit:      event.NewBus(a.queue, clock.Now),
		Pose:      pose,
		Seed:      a.opts.seed,
		Status:    a.status,
		Log:       a.log,
	})
	s.OnEnd(func(rep game.Report) {
		a.finishRound(rep, s.Mode())
	})
	return s
}

// startRound applies a pending mode reload, then starts the next round
func (a *app) startRound(s *game.Session) error {
	if a.reload.Swap(false) {
		ids, err := a.catalog.LoadFile(a.opts.modesFile)
		if err != nil {
			a.log.Warn().Err(err).Msg("mode reload")
		}
		if len(ids) > 0 {
			if err := s.SetMode(a.catalog.Lookup(a.opts.mode)); err != nil {
				a.log.Warn().Err(err).Msg("mode reload rejected")
			} else {
				a.log.Info().Strs("modes", ids).Msg("mode overrides reloaded")
			}
		}
	}
	return s.Start()
}

// finishRound folds a report into the profile, saves it and prints the summary
func (a *app) finishRound(rep game.Report, m mode.Config) {
	a.mu.Lock()
	defer a.mu.Unlock()

	outcome := a.profile.Apply(rep, m)
	if err := a.store.Save(a.profile); err != nil {
		a.log.Error().Err(err).Msg("profile save")
	}
	a.log.Info().
		Str("round", rep.RoundID).
		Int("score", rep.Score).
		Int("xp", outcome.XPTotal).
		Int("level", outcome.NewLevel).
		Msg("progress applied")

	a.last = &outcome
	if !a.opts.headless {
		return
	}
	printOutcome(a.out, rep, outcome)
	if a.opts.share {
		if err := copyShareText(progress.FormatShareText(outcome.Summary, language.English)); err != nil {
			fmt.Fprintf(a.out, "share: %v\n", err)
		} else {
			fmt.Fprintln(a.out, "share text copied to clipboard")
		}
	}
}

// lastOutcome returns the most recent round's progression, if any
func (a *app) lastOutcome() (progress.Outcome, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.last == nil {
		return progress.Outcome{}, false
	}
	return *a.last, true
}

// level returns the profile's current level
func (a *app) level() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.profile.Level
}

// logMetrics writes every status metric as one debug record
func (a *app) logMetrics() {
	d := zerolog.Dict()
	for _, m := range a.status.Snapshot() {
		d.Str(m.Key, m.Value)
	}
	a.log.Debug().Dict("metrics", d).Msg("engine metrics")
}
