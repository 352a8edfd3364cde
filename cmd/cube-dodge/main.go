package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/lixenwraith/cube-dodge/audio"
	"github.com/lixenwraith/cube-dodge/config"
	"github.com/lixenwraith/cube-dodge/game"
	"github.com/lixenwraith/cube-dodge/logging"
	"github.com/lixenwraith/cube-dodge/terminal"
	"github.com/lixenwraith/cube-dodge/window"
)

var (
	configFlag   = flag.String("config", "", "YAML settings file (defaults built in)")
	frontendFlag = flag.String("frontend", "terminal", "Frontend: terminal, window")
	seedFlag     = flag.Int64("seed", 0, "Enemy placement seed, 0 picks one from the clock")
	muteFlag     = flag.Bool("mute", false, "Start with sound muted")
	debugFlag    = flag.Bool("debug", false, "Write a JSON log file")
	logDirFlag   = flag.String("log-dir", "", "Directory for the debug log (default logs)")
)

func main() {
	flag.Parse()

	// Panic Recovery: the terminal must be usable before the trace is printed
	defer func() {
		if r := recover(); r != nil {
			if *frontendFlag == "terminal" {
				terminal.ReportCrash(os.Stdout, os.Stderr, r, debug.Stack())
			} else {
				fmt.Fprintf(os.Stderr, "cube-dodge crashed: %v\n%s\n", r, debug.Stack())
			}
			os.Exit(1)
		}
	}()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "cube-dodge: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	log, err := logging.New(*debugFlag, *logDirFlag)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		return err
	}
	if *muteFlag {
		cfg.Audio.Muted = true
	}

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Info("starting",
		zap.String("frontend", *frontendFlag),
		zap.String("config", *configFlag),
		zap.Int64("seed", seed),
		zap.Any("tuning", cfg.Tuning),
	)

	sound := audio.NewSoundManager(cfg.Audio.Volume)
	sound.SetMuted(cfg.Audio.Muted)
	if err := sound.Initialize(); err != nil {
		log.Warn("audio unavailable, continuing without sound", zap.Error(err))
	} else {
		defer sound.Cleanup()
	}

	session := game.NewSession(game.NewWorld(cfg.Tuning, seed), sound, log)

	switch *frontendFlag {
	case "terminal":
		return runTerminal(session, cfg, sound, log)
	case "window":
		return window.Run(window.New(session, cfg, sound, log))
	default:
		return errors.Errorf("unknown frontend %q", *frontendFlag)
	}
}

func runTerminal(session *game.Session, cfg config.Config, sound *audio.SoundManager, log *zap.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "create screen")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "init screen")
	}
	// Normal exit terminal cleanup
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return terminal.New(screen, session, cfg, sound, log).Run(ctx)
}
