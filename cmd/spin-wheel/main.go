package main

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/spin-wheel/audio"
	"github.com/lixenwraith/spin-wheel/config"
	"github.com/lixenwraith/spin-wheel/constants"
	"github.com/lixenwraith/spin-wheel/engine"
	"github.com/lixenwraith/spin-wheel/modes"
	"github.com/lixenwraith/spin-wheel/render"
	"github.com/lixenwraith/spin-wheel/session"
)

func main() {
	cfg, err := config.Load(os.Args[0], os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "spin-wheel: %v\n", err)
		os.Exit(2)
	}

	logger, logFile := setupLogging(cfg.LogDir, cfg.Debug)
	if logFile != nil {
		defer logFile.Close()
	}

	if err := run(cfg, logger); err != nil {
		logger.Error("exit", "err", err)
		fmt.Fprintf(os.Stderr, "spin-wheel: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *slog.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}

	// Normal exit terminal cleanup
	defer screen.Fini()

	// Panic Recovery: Ensure terminal is reset even if the program crashes
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			logger.Error("panic", "value", r, "stack", string(debug.Stack()))
			fmt.Fprintf(os.Stderr, "\n\x1b[31mSPIN-WHEEL CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	sess := session.New(session.Options{
		Rand:   newRand(cfg.Seed),
		Logger: logger,
	})
	for _, label := range cfg.Choices {
		if _, err := sess.AddChoice(label); err != nil {
			logger.Warn("initial choice skipped", "label", label, "err", err)
		}
	}

	ctx := engine.NewGameContext(screen, sess, logger)
	ctx.SoundEnabled.Store(cfg.Sound)

	// Audio is optional, the wheel runs silently without a device
	audioCfg := audio.DefaultAudioConfig()
	audioCfg.SetMasterPercent(cfg.Volume)
	soundManager := audio.NewSoundManager(audioCfg)
	if err := soundManager.Initialize(); err != nil {
		logger.Warn("audio initialization failed, continuing without sound", "err", err)
	} else {
		ctx.Sound = soundManager
		defer soundManager.Cleanup()
	}

	inputHandler := modes.NewInputHandler(ctx)
	renderer := render.NewTerminalRenderer(screen)

	eventChan := make(chan tcell.Event, constants.EventQueueSize)
	go func() {
		for {
			ev := screen.PollEvent()
			// PollEvent returns nil once the screen is finalized
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	frameTicker := time.NewTicker(cfg.FrameInterval)
	defer frameTicker.Stop()

	logger.Info("started", "choices", sess.Len(), "frame", cfg.FrameInterval, "sound", cfg.Sound)

	// Draw once up front, then only when input arrives, the wheel is moving, or a status message expires
	statusTimer := time.NewTimer(time.Hour)
	statusTimer.Stop()
	defer statusTimer.Stop()

	dirty := false
	redraw := func() {
		ctx.Update()
		renderer.RenderFrame(ctx)
		dirty = false
		if remaining, ok := ctx.StatusRemaining(); ok {
			statusTimer.Reset(remaining)
		}
	}
	redraw()

	for {
		select {
		case ev := <-eventChan:
			if !inputHandler.HandleEvent(ev) {
				logger.Info("quit")
				return nil
			}
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
			}
			dirty = true

		case <-frameTicker.C:
			if !ctx.NeedsFrame(dirty) {
				continue
			}
			redraw()

		case <-statusTimer.C:
			redraw()
		}
	}
}

// newRand seeds the spin velocity source, 0 seeds from the clock
func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		return nil
	}
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))
}
