// Command poke3d walks a tile map in a textured first-person view.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/trvswgnr/poke3d/internal/config"
	"github.com/trvswgnr/poke3d/internal/host"
	_ "github.com/trvswgnr/poke3d/internal/host/ebitenhost"
	_ "github.com/trvswgnr/poke3d/internal/host/termhost"
	"github.com/trvswgnr/poke3d/internal/level"
	"github.com/trvswgnr/poke3d/internal/logger"
	"github.com/trvswgnr/poke3d/internal/session"
	"github.com/trvswgnr/poke3d/internal/texture"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := config.NewFlagSet("poke3d")
	list := fs.Bool("list", false, "list built-in maps, textures, presets and hosts, then exit")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}
	if *list {
		printBuiltins()
		return nil
	}

	cfg, err := config.Load(fs)
	if err != nil {
		logrus.WithError(err).Error("load config")
		return err
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		logrus.WithError(err).Error("create logger")
		return err
	}
	log.WithFields(logrus.Fields{
		"preset": cfg.Preset,
		"map":    cfg.Map.Source,
		"host":   cfg.Host.Backend,
		"size":   fmt.Sprintf("%dx%d", cfg.Screen.Width, cfg.Screen.Height),
	}).Debug("config resolved")

	h, err := host.New(cfg.Host.Backend, log)
	if err != nil {
		log.WithError(err).Error("select host")
		return err
	}

	s, err := session.New(cfg, log)
	if err != nil {
		log.WithError(err).Error("start session")
		return err
	}
	defer s.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := h.Run(ctx, s); err != nil {
		log.WithError(err).Error("host stopped")
		return err
	}
	return nil
}

func printBuiltins() {
	fmt.Println("maps:    ", level.BuiltinNames())
	fmt.Println("textures:", texture.BuiltinNames())
	fmt.Println("presets: ", config.PresetNames())
	fmt.Println("hosts:   ", host.Names())
}
