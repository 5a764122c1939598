package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/HJXCODE-810/Lode-runner-CG/audio"
	"github.com/HJXCODE-810/Lode-runner-CG/config"
	"github.com/HJXCODE-810/Lode-runner-CG/constants"
	"github.com/HJXCODE-810/Lode-runner-CG/core"
	"github.com/HJXCODE-810/Lode-runner-CG/engine"
	"github.com/HJXCODE-810/Lode-runner-CG/input"
	"github.com/HJXCODE-810/Lode-runner-CG/render"
	"github.com/HJXCODE-810/Lode-runner-CG/spectate"
	"github.com/HJXCODE-810/Lode-runner-CG/status"
)

var (
	configFlag   = flag.String("config", "", "YAML configuration file")
	debugFlag    = flag.Bool("debug", false, "Write a debug log to logs/lode-runner.log")
	seedFlag     = flag.Int64("seed", 0, "Seed for enemy kick directions (0 = time based)")
	spectateFlag = flag.String("spectate", "", "Serve a read-only websocket feed on this address")
	muteFlag     = flag.Bool("mute", false, "Start with audio muted")
)

func main() {
	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}
	if *spectateFlag != "" {
		cfg.Spectate.Enabled = true
		cfg.Spectate.Addr = *spectateFlag
	}

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	sim, err := engine.New(cfg.Definition(), cfg.Rules(), seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load level: %v\n", err)
		os.Exit(1)
	}
	log.Printf("session start: level %q seed %d", cfg.Definition().Name, seed)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	// Panic recovery: restore the terminal even if the game crashes
	core.RegisterTerminal(screen)
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()
	defer screen.Fini()
	screen.SetStyle(render.StyleBackground)
	screen.HideCursor()

	// Audio failures leave the game silent, never stopped
	sounds := audio.NewSoundManager(cfg.AudioConfig())
	if err := sounds.Initialize(); err != nil {
		log.Printf("audio init failed: %v (continuing without audio)", err)
	} else {
		defer sounds.Cleanup()
	}
	sounds.SetMuted(*muteFlag)

	clock := engine.NewTimeProvider()
	tracker := input.NewTracker(input.DefaultKeyTable(), constants.InputHoldWindow)
	sess := newSession(sim, clock, tracker)

	statusLine := render.NewStatusLine()
	sess.router.Register(audio.NewCueHandler(sounds))
	sess.router.Register(statusLine)

	if cfg.Spectate.Enabled {
		hub := spectate.NewHub(spectate.DefaultConfig(cfg.Spectate.Addr))
		if err := hub.Start(); err != nil {
			log.Printf("spectate disabled: %v", err)
		} else {
			sess.feed = hub
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), time.Second)
				defer cancel()
				log.Printf("spectate: %d frames queued to viewers", hub.FramesSent())
				if err := hub.Close(ctx); err != nil {
					log.Printf("spectate close: %v", err)
				}
			}()
		}
	}

	renderer := render.NewTerminalRenderer(screen, statusLine, sounds)

	scheduler, updateDone := engine.NewClockScheduler(clock, cfg.Gameplay.TickInterval, sess.tick)
	scheduler.Start()
	defer scheduler.Stop()

	// Input polling runs on its own goroutine since PollEvent blocks
	eventChan := make(chan tcell.Event, 256)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	})

	keys := input.DefaultKeyTable()
	rendered := sess.metrics.Ints.Get(status.FramesRendered)
	defer func() { log.Printf("session metrics: %s", sess.metrics) }()
	renderer.RenderFrame(sess.snapshot(), clock.Now())

	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if k, ok := keys.Lookup(ev); ok && k == input.KeyQuit {
					log.Printf("quit at frame %d", sess.snapshot().Frame)
					return
				}
				if ev.Key() == tcell.KeyRune && (ev.Rune() == 'm' || ev.Rune() == 'M') {
					sounds.SetMuted(!sounds.Muted())
					continue
				}
				tracker.HandleEvent(ev, clock.Now())
			case *tcell.EventResize:
				screen.Sync()
				renderer.RenderFrame(sess.snapshot(), clock.Now())
			}

		case <-updateDone:
			renderer.RenderFrame(sess.snapshot(), clock.Now())
			rendered.Add(1)
		}
	}
}
