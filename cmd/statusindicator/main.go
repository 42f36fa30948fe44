package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/danmichaelo/statusindicator/internal/command"
	"github.com/danmichaelo/statusindicator/internal/config"
	"github.com/danmichaelo/statusindicator/internal/model"
	"github.com/danmichaelo/statusindicator/internal/overlay"
	"github.com/danmichaelo/statusindicator/internal/sim"
	"github.com/danmichaelo/statusindicator/internal/ui"
)

// version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

func main() {
	if err := buildRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func buildRootCmd() *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:           "statusindicator",
		Short:         "Trajectory progress overlay for a 3D viewport",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level: debug|info|warn|error")

	logger := func() zerolog.Logger {
		level, err := zerolog.ParseLevel(logLevel)
		if err != nil {
			level = zerolog.InfoLevel
		}
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(level).With().Timestamp().Logger()
	}

	var (
		configPath string
		frames     int
	)

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "Run the reference host application",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadOptionalConfig(configPath)
			if err != nil {
				return err
			}
			ui.RunApp(cfg, frames, logger())
			return nil
		},
	}
	guiCmd.Flags().StringVar(&configPath, "config", "", "Indicator config file (.yaml/.json/.toml)")
	guiCmd.Flags().IntVar(&frames, "frames", ui.DefaultTotalFrames, "Number of trajectory frames to simulate")
	root.AddCommand(guiCmd)

	var (
		headlessConfig string
		headlessFrames int
		timestep       float64
		header         string
		unit           string
	)

	headlessCmd := &cobra.Command{
		Use:   "headless [\"command args\"...]",
		Short: "Play a simulated trajectory without a GUI and report overlay activity",
		Long: "Plays a simulated trajectory against the overlay engine. Positional\n" +
			"arguments are indicator commands applied before playback, e.g.\n" +
			"  statusindicator headless \"timestep 0.002\" \"header production run\"",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadOptionalConfig(headlessConfig)
			if err != nil {
				return err
			}
			resolved := model.DefaultConfig()
			if cfg != nil {
				resolved = *cfg
			}
			if cmd.Flags().Changed("timestep") {
				resolved.Timestep = timestep
			}
			if cmd.Flags().Changed("header") {
				resolved.Header = header
			}
			if cmd.Flags().Changed("unit") {
				u := model.TimeUnit(unit)
				if !u.IsValid() {
					return fmt.Errorf("unsupported time unit: %q", unit)
				}
				resolved.Unit = u
			}
			return runHeadless(cmd.OutOrStdout(), resolved, headlessFrames, args, logger())
		},
	}
	headlessCmd.Flags().StringVar(&headlessConfig, "config", "", "Indicator config file (.yaml/.json/.toml)")
	headlessCmd.Flags().IntVar(&headlessFrames, "frames", ui.DefaultTotalFrames, "Number of trajectory frames to simulate")
	headlessCmd.Flags().Float64Var(&timestep, "timestep", model.DefaultTimestep, "Physical time per frame")
	headlessCmd.Flags().StringVar(&header, "header", "", "Header text")
	headlessCmd.Flags().StringVar(&unit, "unit", model.DefaultUnit.String(), "Time unit: fs|ps|ns")
	root.AddCommand(headlessCmd)

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	})

	return root
}

func loadOptionalConfig(path string) (*model.IndicatorConfig, error) {
	if path == "" {
		return nil, nil
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// runHeadless attaches the overlay to a scripted host, applies any indicator
// commands, plays the whole trajectory, and prints per-run totals
func runHeadless(out io.Writer, cfg model.IndicatorConfig, frames int, commands []string, log zerolog.Logger) error {
	h := sim.New(frames)
	svc := overlay.NewService(h, cfg, log)
	svc.Enable()
	if !svc.Enabled() {
		return fmt.Errorf("overlay failed to attach")
	}

	dispatcher := command.NewDispatcher(svc, log)
	for _, raw := range commands {
		if err := dispatcher.Dispatch(strings.Fields(raw)); err != nil {
			return err
		}
	}

	redraws := 1 // the enable redraw
	for i := 1; i < frames; i++ {
		h.Seek(i)
		redraws++
	}

	st := svc.State()
	fmt.Fprintf(out, "frames: %d\nredraws: %d\n", frames, redraws)
	if st.Renderable() {
		fmt.Fprintf(out, "final: %s (%.0f%%)\n", st.TimeLabel, st.Percentage*100)
	} else {
		fmt.Fprintf(out, "suppressed: %s\n", st.ErrorMessage)
	}

	h.Quit()
	if svc.Enabled() {
		return fmt.Errorf("overlay still attached after host quit")
	}
	return nil
}
