// Package cli implements the bitsycart command-line interface.
//
// Commands:
//   - play: run a cartridge in a window
//   - preview: run a cartridge in the terminal
//   - pages: print how a dialogue is split into pages
//
// Hosts are passed in by the main package so that this package does not
// depend on a graphics driver.
package cli

import (
	"context"
	"fmt"

	charmlog "github.com/charmbracelet/log"
	"github.com/leonelquinteros/gotext"
	"github.com/spf13/cobra"

	"bitsycart/pkg/game/cartridge"
	"bitsycart/pkg/game/renderer"
	"bitsycart/pkg/game/state"
)

var (
	version string
	commit  string
	date    string
)

// SetVersion sets the version information displayed by --version.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// HostOptions are the host settings taken from the command line.
type HostOptions struct {
	Scale int
	Lines int
}

// HostFactory builds a game host.
type HostFactory func(logger *charmlog.Logger, opts HostOptions) renderer.Renderer

// Hosts lists the hosts the commands can run on.
type Hosts struct {
	Window   HostFactory
	Terminal HostFactory
}

// Execute runs the bitsycart CLI.
func Execute(hosts Hosts) error {
	return newRootCmd(hosts).ExecuteContext(context.Background())
}

func newRootCmd(hosts Hosts) *cobra.Command {
	var (
		verbose   bool
		localeDir string
		lang      string
	)

	root := &cobra.Command{
		Use:          "bitsycart",
		Short:        "bitsycart plays tile-grid adventure cartridges",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			gotext.Configure(localeDir, lang, "default")
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(withLogger(ctx, newLogger(cmd.ErrOrStderr(), level)))
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("bitsycart %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&localeDir, "locale", "locales", "directory holding translations")
	root.PersistentFlags().StringVar(&lang, "lang", "en_US", "translation language")

	root.AddCommand(newPlayCmd(hosts.Window))
	root.AddCommand(newPreviewCmd(hosts.Terminal))
	root.AddCommand(newPagesCmd(hosts.Window))
	return root
}

// loadGame loads the cartridge at path and starts it on host.
func loadGame(ctx context.Context, path string, host renderer.Renderer) (*state.Game, error) {
	logger := loggerFromContext(ctx)

	cart, warnings, err := cartridge.Load(path)
	if err != nil {
		return nil, err
	}
	for _, w := range warnings {
		logger.Warn(w)
	}
	logger.Debug("cartridge loaded", "path", path, "rooms", len(cart.Rooms), "dialogues", len(cart.Dialogues))

	renderer.SetRenderer(host)
	opts := renderer.Options()
	opts.Logger = logger
	return state.New(cart, opts), nil
}

func addHostFlags(cmd *cobra.Command, opts *HostOptions) {
	cmd.Flags().IntVar(&opts.Lines, "lines", 0, "dialog lines per page (0 fits the box)")
}
