//go:build ebiten

package main

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"oled-life/internal/app"
	"oled-life/internal/display"
	"oled-life/internal/sched"
)

func newPreviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "preview",
		Short: "run the scene cycle in a desktop window",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, rng, err := loadOptions()
			if err != nil {
				return err
			}

			emu := display.NewEmulator()
			s := sched.New(emu, rng, opts)
			game := app.New(s, emu, scale, previewFPS())

			ebiten.SetWindowTitle("oled-life — " + s.Scene().String())
			ebiten.SetWindowSize(game.Layout(0, 0))

			if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
				return err
			}
			return nil
		},
	}
}
