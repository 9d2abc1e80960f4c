//go:build !ebiten

package main

import (
	"errors"

	"github.com/spf13/cobra"
)

func newPreviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "preview",
		Short: "run the scene cycle in a desktop window",
		RunE: func(cmd *cobra.Command, args []string) error {
			return errors.New("the preview window requires the ebiten build tag; rebuild with `go build -tags ebiten ./cmd/oled-life`")
		},
	}
}
