package main

import (
	"os"

	"github.com/charmbracelet/log"

	"bitsycart/pkg/game/cli"
	"bitsycart/pkg/game/renderer"
	ebitenrenderer "bitsycart/pkg/game/renderer/ebiten"
	"bitsycart/pkg/game/renderer/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.SetVersion(version, commit, date)
	hosts := cli.Hosts{
		Window: func(logger *log.Logger, opts cli.HostOptions) renderer.Renderer {
			return ebitenrenderer.New(logger, opts.Scale, opts.Lines)
		},
		Terminal: func(logger *log.Logger, opts cli.HostOptions) renderer.Renderer {
			r := tui.New(logger)
			r.LinesPerPage = opts.Lines
			return r
		},
	}
	if err := cli.Execute(hosts); err != nil {
		os.Exit(1)
	}
}
