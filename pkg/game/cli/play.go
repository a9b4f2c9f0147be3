package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPlayCmd(factory HostFactory) *cobra.Command {
	opts := HostOptions{Scale: 3}
	cmd := &cobra.Command{
		Use:   "play <cart.toml>",
		Short: "Play a cartridge in a window",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if factory == nil {
				return fmt.Errorf("no window host available")
			}
			host := factory(loggerFromContext(cmd.Context()), opts)
			g, err := loadGame(cmd.Context(), args[0], host)
			if err != nil {
				return err
			}
			return host.Run(g)
		},
	}
	cmd.Flags().IntVar(&opts.Scale, "scale", opts.Scale, "window scale factor")
	addHostFlags(cmd, &opts)
	return cmd
}

func newPreviewCmd(factory HostFactory) *cobra.Command {
	var opts HostOptions
	cmd := &cobra.Command{
		Use:   "preview <cart.toml> [dialogue]",
		Short: "Play a cartridge in the terminal, optionally opening a dialogue first",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if factory == nil {
				return fmt.Errorf("no terminal host available")
			}
			host := factory(loggerFromContext(cmd.Context()), opts)
			g, err := loadGame(cmd.Context(), args[0], host)
			if err != nil {
				return err
			}
			if len(args) == 2 {
				if err := g.ShowDialogue(args[1]); err != nil {
					return err
				}
			}
			return host.Run(g)
		},
	}
	addHostFlags(cmd, &opts)
	return cmd
}
