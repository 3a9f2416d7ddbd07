//go:build ebiten

package main

import (
	"errors"
	"flag"

	log "github.com/golang/glog"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Freblyhet/Wave-Simulator/internal/app"
	"github.com/Freblyhet/Wave-Simulator/internal/preset"
	"github.com/Freblyhet/Wave-Simulator/internal/sim"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	defer log.Flush()

	simCfg := sim.DefaultConfig()
	if cfg.Width > 0 {
		simCfg.Width = cfg.Width
	}
	if cfg.Height > 0 {
		simCfg.Height = cfg.Height
	}
	s := sim.New(simCfg)

	switch {
	case cfg.Scene != "":
		scene, err := preset.LoadFile(cfg.Scene)
		if err != nil {
			log.Exitf("failed to load scene: %v", err)
		}
		scene.Apply(s)
		log.Infof("loaded scene %q from %s", scene.Name, cfg.Scene)
	case cfg.Preset != "":
		if err := preset.Apply(s, cfg.Preset); err != nil {
			log.Exitf("%v (available: %v)", err, preset.Names())
		}
		log.Infof("loaded preset %q", cfg.Preset)
	}

	game := app.New(s, cfg.Scale)
	size := s.Size()

	ebiten.SetWindowTitle("wave simulator")
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Exit(err)
	}
}
