package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/sandstorm/audio"
	"github.com/lixenwraith/sandstorm/config"
	"github.com/lixenwraith/sandstorm/constants"
	"github.com/lixenwraith/sandstorm/engine"
	"github.com/lixenwraith/sandstorm/game"
	"github.com/lixenwraith/sandstorm/input"
	"github.com/lixenwraith/sandstorm/status"
	"golang.org/x/sync/errgroup"
)

// options are the resolved command-line settings
type options struct {
	debug       bool
	mute        bool
	wavesPath   string
	trackerAddr string
	seed        int64
	fps         int
}

// parseFlags resolves flags over environment defaults
func parseFlags(args []string, env config.Env) (options, error) {
	var opts options
	fs := flag.NewFlagSet("sandstorm", flag.ContinueOnError)
	fs.BoolVar(&opts.debug, "debug", false, "write logs to "+logDir+"/"+logFileName)
	fs.BoolVar(&opts.mute, "mute", env.Mute, "start with audio muted")
	fs.StringVar(&opts.wavesPath, "waves", env.WavesPath, "wave file (YAML), embedded waves when empty")
	fs.StringVar(&opts.trackerAddr, "tracker", env.TrackerAddr, "hand-tracker websocket listen address, disabled when empty")
	fs.Int64Var(&opts.seed, "seed", 0, "random seed, time-based when 0")
	fs.IntVar(&opts.fps, "fps", constants.TicksPerSecond, "frames per second")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if opts.fps <= 0 || opts.fps > 240 {
		return options{}, fmt.Errorf("fps %d out of range 1-240", opts.fps)
	}
	if opts.seed == 0 {
		opts.seed = time.Now().UnixNano()
	}
	return opts, nil
}

func main() {
	os.Exit(realMain())
}

func realMain() int {
	env, err := config.LoadEnv(".env")
	if err != nil {
		fmt.Fprintf(os.Stderr, "sandstorm: %v\n", err)
		return 1
	}

	opts, err := parseFlags(os.Args[1:], env)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "sandstorm: %v\n", err)
		return 2
	}

	if logFile := setupLogging(opts.debug); logFile != nil {
		defer logFile.Close()
	}

	if err := run(opts); err != nil {
		log.Printf("exit: %v", err)
		fmt.Fprintf(os.Stderr, "sandstorm: %v\n", err)
		return 1
	}
	return 0
}

func run(opts options) error {
	waves, err := config.LoadWaves(opts.wavesPath)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	defer screen.Fini()

	defer crashGuard(screen)

	screen.EnableMouse(tcell.MouseButtonEvents | tcell.MouseDragEvents | tcell.MouseMotionEvents)
	screen.HideCursor()

	sound := audio.NewService(opts.mute)
	sound.Start()
	defer sound.Stop()

	sim, err := game.New(screen, waves, sound.Notifier(), opts.seed)
	if err != nil {
		return fmt.Errorf("failed to start simulation: %w", err)
	}
	reg := sim.Status()
	reg.Bools.Get(status.KeyAudio).Store(!sound.IsDisabled())

	tracker := input.NewTracker(reg)
	width, _ := screen.Size()
	term := input.NewTerminalSource(tracker, width)
	keys := input.DefaultKeyTable()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, gctx := errgroup.WithContext(ctx)

	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	g.Go(func() error {
		screen.ChannelEvents(events, quit)
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		close(quit)
		return nil
	})

	if opts.trackerAddr != "" {
		server := input.NewTrackerServer(opts.trackerAddr, tracker, reg)
		g.Go(func() error {
			if err := server.Run(gctx); err != nil {
				return fmt.Errorf("tracker server: %w", err)
			}
			return nil
		})
	}

	onEvent := func(ev tcell.Event) bool {
		switch ev := ev.(type) {
		case *tcell.EventResize:
			w, h := ev.Size()
			sim.Resize(w, h)
			term.Resize(w)

		case *tcell.EventMouse:
			term.HandleMouse(ev)

		case *tcell.EventKey:
			switch keys.Resolve(ev) {
			case input.IntentQuit:
				return false
			case input.IntentPause:
				sim.SetPaused(!sim.Paused())
			case input.IntentDebug:
				sim.SetDebug(!sim.Debug())
			case input.IntentMute:
				log.Printf("[Audio] muted: %v", sound.ToggleMute())
			case input.IntentRestart:
				tracker.Reset()
				sim.Reset()
			case input.IntentSpreadTighter:
				term.AdjustSpread(-constants.TerminalSpreadStep)
			case input.IntentSpreadWider:
				term.AdjustSpread(constants.TerminalSpreadStep)
			}
		}
		return true
	}

	onFrame := func() {
		term.Frame()
		tracker.Advance()
		sim.Feed(tracker)
		sim.Tick()
	}

	interval := constants.FrameUpdateInterval
	if opts.fps != constants.TicksPerSecond {
		interval = time.Second / time.Duration(opts.fps)
	}
	loop := engine.NewFrameLoop(interval, events, onEvent, onFrame)
	g.Go(func() error {
		defer crashGuard(screen)
		// Quitting from the loop stops every sibling
		defer stop()
		if err := loop.Run(gctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})

	return g.Wait()
}

// crashGuard resets the terminal before reporting a panic, deferred on every goroutine touching the screen
func crashGuard(screen tcell.Screen) {
	if r := recover(); r != nil {
		screen.Fini()
		log.Printf("panic: %v\n%s", r, debug.Stack())
		fmt.Fprintf(os.Stderr, "\n\x1b[31mSANDSTORM CRASHED: %v\x1b[0m\n", r)
		fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
		os.Exit(1)
	}
}
