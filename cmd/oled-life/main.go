package main

import (
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"oled-life/internal/config"
	"oled-life/internal/core"
	"oled-life/internal/sched"
	"oled-life/internal/scene"
	"oled-life/internal/term"
)

var (
	configFile  string
	seed        uint32
	fps         int
	generations int
	sceneName   string
	scale       int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "oled-life",
		Short: "Conway's Game of Life for a 128x64 monochrome panel",
		RunE:  runPanel,
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().Uint32Var(&seed, "seed", 0, "PRNG seed (0 = derive from clock)")
	rootCmd.PersistentFlags().IntVar(&fps, "fps", 0, "generations per second")
	rootCmd.PersistentFlags().IntVar(&generations, "generations", 0, "generations per scene")
	rootCmd.PersistentFlags().StringVar(&sceneName, "scene", "", "run a single scene instead of the cycle")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run the scene cycle in the terminal",
		RunE:  runPanel,
	}

	scenesCmd := &cobra.Command{
		Use:   "scenes",
		Short: "list the scene catalogue",
		RunE:  listScenes,
	}

	previewCmd := newPreviewCmd()
	previewCmd.Flags().IntVar(&scale, "scale", 4, "pixel scale multiplier")

	rootCmd.AddCommand(runCmd, scenesCmd, previewCmd)
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

// loadOptions merges the config file with flag overrides.
func loadOptions() (sched.Options, *core.Xorshift32, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return sched.Options{}, nil, err
		}
		cfg = loaded
	}
	if fps > 0 {
		cfg.FPS = fps
	}
	if generations > 0 {
		cfg.GenerationsPerScene = generations
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	if sceneName != "" {
		cfg.Scenes = []string{sceneName}
	}
	if err := cfg.Validate(); err != nil {
		return sched.Options{}, nil, err
	}

	scenes, err := cfg.SceneList()
	if err != nil {
		return sched.Options{}, nil, err
	}
	s := cfg.Seed
	if s == 0 {
		s = core.TimeSeed()
	}
	opts := sched.Options{
		Scenes:              scenes,
		FrameInterval:       cfg.FrameInterval(),
		GenerationsPerScene: cfg.GenerationsPerScene,
		ReseedEachScene:     cfg.ReseedEachScene,
		HaltOnDisplayError:  cfg.OnDisplayError == config.OnErrorHalt,
	}
	return opts, core.NewXorshift32(s), nil
}

func runPanel(cmd *cobra.Command, args []string) error {
	opts, rng, err := loadOptions()
	if err != nil {
		return err
	}

	panel, err := term.New()
	if err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	defer panel.Close()

	s := sched.New(panel, rng, opts)
	s.SetAfterFrame(func() {
		eng := s.Engine()
		panel.SetStatus(fmt.Sprintf(" %s  gen %d  pop %d  [q to quit]",
			s.Scene(), eng.Generation(), eng.Population()))
	})
	return s.Run(panel.Done())
}

func listScenes(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tDESCRIPTION")
	for _, s := range scene.All() {
		fmt.Fprintf(w, "%s\t%s\n", s, s.Description())
	}
	return w.Flush()
}

// previewFPS returns the generation rate for the preview pacer.
func previewFPS() int {
	if fps > 0 {
		return fps
	}
	return config.DefaultFPS
}
