package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/san-kum/constellation/internal/config"
	"github.com/san-kum/constellation/internal/export"
	"github.com/san-kum/constellation/internal/field"
	"github.com/san-kum/constellation/internal/gui"
	"github.com/san-kum/constellation/internal/metrics"
	"github.com/san-kum/constellation/internal/store"
	"github.com/san-kum/constellation/internal/theme"
	"github.com/san-kum/constellation/internal/viz"
	"github.com/san-kum/constellation/internal/window"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	configFile string
	preset     string
	seed       int64
	logJSON    bool
	verbose    bool
	// Window hosts and headless runs
	width  int
	height int
	fps    int
	frames int
	runs   int
	// Snapshot output
	outFile   string
	themeName string
	chart     bool
)

// main registers the commands and runs the terminal page when no subcommand is given.
func main() {
	rootCmd := &cobra.Command{
		Use:           "constellation",
		Short:         "portfolio page with an interactive particle field",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runTUI,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", config.DefaultDataDir, "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "random seed (0 uses the clock)")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "log as JSON")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "show the portfolio page in the terminal",
		RunE:  runTUI,
	}

	windowCmd := &cobra.Command{
		Use:   "window",
		Short: "show the particle field in an Ebitengine window",
		RunE:  runWindow,
	}
	addWindowFlags(windowCmd)

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "show the particle field in a raylib window",
		RunE:  runGUI,
	}
	addWindowFlags(guiCmd)

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark the particle field headlessly",
		RunE:  runBench,
	}
	addSurfaceFlags(benchCmd, 600)
	benchCmd.Flags().BoolVar(&chart, "chart", true, "plot kinetic energy")
	benchCmd.Flags().IntVar(&runs, "runs", 1, "parallel runs over consecutive seeds")

	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "run the field and save a frame as SVG plus a particle CSV",
		RunE:  runSnapshot,
	}
	addSurfaceFlags(snapshotCmd, 120)
	snapshotCmd.Flags().StringVarP(&outFile, "out", "o", "", "SVG output path (default: inside the snapshot directory)")
	snapshotCmd.Flags().StringVar(&themeName, "theme", "", "light or dark (default: saved preference)")

	snapshotsCmd := &cobra.Command{
		Use:   "snapshots",
		Short: "list saved snapshots",
		RunE:  listSnapshots,
	}

	themeCmd := &cobra.Command{
		Use:   "theme",
		Short: "show or change the saved theme",
		RunE:  themeGet,
	}
	themeCmd.AddCommand(
		&cobra.Command{Use: "get", Short: "print the saved theme", RunE: themeGet},
		&cobra.Command{Use: "set [light|dark]", Short: "save a theme", Args: cobra.ExactArgs(1), RunE: themeSet},
		&cobra.Command{Use: "toggle", Short: "switch between light and dark", RunE: themeToggle},
	)

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list configuration presets",
		RunE:  listPresets,
	}

	rootCmd.AddCommand(tuiCmd, windowCmd, guiCmd, benchCmd, snapshotCmd, snapshotsCmd, themeCmd, presetsCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}

func addWindowFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&width, "width", config.DefaultWidth, "window width")
	cmd.Flags().IntVar(&height, "height", config.DefaultHeight, "window height")
	cmd.Flags().IntVar(&fps, "fps", config.DefaultFPS, "frames per second")
}

func addSurfaceFlags(cmd *cobra.Command, defaultFrames int) {
	cmd.Flags().IntVar(&width, "width", config.DefaultWidth, "surface width")
	cmd.Flags().IntVar(&height, "height", config.DefaultHeight, "surface height")
	cmd.Flags().IntVar(&frames, "frames", defaultFrames, "frames to simulate")
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	if logJSON {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

// loadConfig layers defaults, the config file, the preset and changed flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}
	if preset != "" {
		if err := config.ApplyPreset(cfg, preset); err != nil {
			return nil, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("data") || cfg.DataDir == "" {
		cfg.DataDir = dataDir
	}
	if flags.Lookup("width") != nil && (flags.Changed("width") || configFile == "") {
		cfg.Window.Width = width
	}
	if flags.Lookup("height") != nil && (flags.Changed("height") || configFile == "") {
		cfg.Window.Height = height
	}
	if flags.Changed("fps") {
		cfg.FPS = fps
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setup loads the configuration and the theme manager backed by the
// preference file.
func setup(cmd *cobra.Command) (*config.Config, *theme.Manager, *store.Store, *slog.Logger, error) {
	logger := newLogger()
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	st := store.New(cfg.DataDir)
	themes := theme.NewManager(st, logger)
	logger.Debug("configuration loaded", "data", cfg.DataDir, "seed", cfg.Seed, "theme", themes.Current())
	return cfg, themes, st, logger, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, themes, _, logger, err := setup(cmd)
	if err != nil {
		return err
	}
	// The terminal owns stdout and stderr while the page is up.
	quiet := slog.New(slog.DiscardHandler)
	if verbose {
		quiet = logger
	}
	return viz.Run(cfg, themes, quiet)
}

func runWindow(cmd *cobra.Command, args []string) error {
	cfg, themes, _, logger, err := setup(cmd)
	if err != nil {
		return err
	}
	return window.Run(cfg, themes, logger)
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, themes, _, logger, err := setup(cmd)
	if err != nil {
		return err
	}
	return gui.Run(cfg, themes, logger)
}

func runBench(cmd *cobra.Command, args []string) error {
	cfg, themes, _, logger, err := setup(cmd)
	if err != nil {
		return err
	}

	if err := checkRunFlags(frames, runs); err != nil {
		return err
	}
	if runs > 1 {
		return benchEnsemble(cmd, cfg, themes, logger)
	}

	w, h := cfg.Window.Width, cfg.Window.Height
	f, err := field.New(benchSurface(w, h), themes, field.Config{Params: cfg.Field, Seed: cfg.Seed, Logger: logger})
	if err != nil {
		return err
	}
	rec := metrics.NewRecorder(frames)
	f.AddObserver(rec)

	fmt.Printf("benchmarking %d particles on %dx%d for %d frames\n\n", f.Len(), w, h, frames)
	start := time.Now()
	for i := 0; i < frames; i++ {
		if err := cmd.Context().Err(); err != nil {
			return err
		}
		t := time.Now()
		f.Frame()
		rec.ObserveDuration(time.Since(t))
	}
	elapsed := time.Since(start)

	sum := rec.Summary()
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "FRAMES\tPARTICLES\tMEAN LINKS\tMAX LINKS\tMEAN MS\tSTD MS\tP95 MS\tFPS")
	fmt.Fprintf(tw, "%d\t%d\t%.1f\t%.0f\t%.3f\t%.3f\t%.3f\t%.0f\n",
		sum.Frames,
		sum.Particles,
		sum.MeanLinks,
		sum.MaxLinks,
		sum.MeanFrameMs,
		sum.StdFrameMs,
		sum.P95FrameMs,
		float64(sum.Frames)/elapsed.Seconds(),
	)
	if err := tw.Flush(); err != nil {
		return err
	}

	if chart {
		fmt.Println()
		fmt.Println(rec.EnergyChart(70, 12))
	}
	logger.Info("benchmark finished", "summary", sum, "elapsed", elapsed)
	return nil
}

// benchSurface draws nothing, so single and ensemble benchmarks both time
// the simulation alone.
func benchSurface(w, h int) field.Surface {
	return field.Discard{Width: w, Height: h}
}

// checkRunFlags rejects frame and run counts a headless run cannot use.
func checkRunFlags(frames, runs int) error {
	if frames < 0 {
		return fmt.Errorf("--frames must not be negative, got %d", frames)
	}
	if runs < 1 {
		return fmt.Errorf("--runs must be at least 1, got %d", runs)
	}
	return nil
}

func benchEnsemble(cmd *cobra.Command, cfg *config.Config, themes *theme.Manager, logger *slog.Logger) error {
	seedStart := cfg.Seed
	if seedStart == 0 {
		seedStart = time.Now().UnixNano()
	}
	e := &metrics.Ensemble{
		Params:    cfg.Field,
		Width:     cfg.Window.Width,
		Height:    cfg.Window.Height,
		Frames:    frames,
		Runs:      runs,
		SeedStart: seedStart,
		Theme:     themes.Current(),
	}

	fmt.Printf("benchmarking %d runs on %dx%d for %d frames\n\n", runs, e.Width, e.Height, frames)
	results, err := e.Run(cmd.Context())
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SEED\tPARTICLES\tMEAN ENERGY\tMEAN LINKS\tMEAN MS\tP95 MS\tTIME")
	for _, r := range results {
		s := r.Summary
		fmt.Fprintf(w, "%d\t%d\t%.4f\t%.1f\t%.3f\t%.3f\t%v\n",
			r.Seed,
			s.Particles,
			s.MeanEnergy,
			s.MeanLinks,
			s.MeanFrameMs,
			s.P95FrameMs,
			r.Elapsed.Round(time.Millisecond),
		)
	}
	logger.Debug("ensemble finished", "runs", len(results))
	return w.Flush()
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	cfg, themes, st, logger, err := setup(cmd)
	if err != nil {
		return err
	}
	if err := checkRunFlags(frames, 1); err != nil {
		return err
	}

	t := themes.Current()
	if themeName != "" {
		if t, err = theme.Parse(themeName); err != nil {
			return err
		}
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	w, h := cfg.Window.Width, cfg.Window.Height
	svg := export.NewSVG(w, h, theme.PaletteFor(t).Background)
	f, err := field.New(svg, theme.Static(t), field.Config{Params: cfg.Field, Seed: cfg.Seed, Logger: logger})
	if err != nil {
		return err
	}

	ticks := make(chan time.Time)
	go func() {
		defer close(ticks)
		for i := 0; i < frames; i++ {
			select {
			case ticks <- time.Now():
			case <-cmd.Context().Done():
				return
			}
		}
	}()
	if err := f.Run(cmd.Context(), ticks); err != nil {
		return err
	}

	id, err := st.SaveSnapshot(store.SnapshotMetadata{
		Width:  w,
		Height: h,
		Frames: f.Frames(),
		Seed:   cfg.Seed,
		Theme:  t.String(),
		Params: f.Params(),
	}, f.Particles())
	if err != nil {
		return fmt.Errorf("saving snapshot: %w", err)
	}

	path := outFile
	if path == "" {
		path = filepath.Join(st.Dir(), id, "frame.svg")
	}
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()
	if _, err := svg.WriteTo(out); err != nil {
		return err
	}

	logger.Info("snapshot saved", "id", id, "svg", path, "particles", f.Len(), "links", svg.Lines())
	fmt.Println(id)
	return nil
}

func listSnapshots(cmd *cobra.Command, args []string) error {
	cfg, _, st, _, err := setup(cmd)
	if err != nil {
		return err
	}
	snaps, err := st.ListSnapshots()
	if err != nil {
		return err
	}
	if len(snaps) == 0 {
		fmt.Printf("no snapshots in %s\n", cfg.DataDir)
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tSIZE\tFRAMES\tPARTICLES\tTHEME\tSEED")
	for _, s := range snaps {
		fmt.Fprintf(w, "%s\t%s\t%dx%d\t%d\t%d\t%s\t%d\n",
			s.ID,
			s.Timestamp.Format("2006-01-02 15:04:05"),
			s.Width, s.Height,
			s.Frames,
			s.Count,
			s.Theme,
			s.Seed,
		)
	}
	return w.Flush()
}

func themeGet(cmd *cobra.Command, args []string) error {
	_, themes, _, _, err := setup(cmd)
	if err != nil {
		return err
	}
	t := themes.Current()
	fmt.Printf("%s (toggle shows %s)\n", t, t.Icon())
	return nil
}

func themeSet(cmd *cobra.Command, args []string) error {
	_, themes, _, _, err := setup(cmd)
	if err != nil {
		return err
	}
	t, err := theme.Parse(args[0])
	if err != nil {
		return err
	}
	if err := themes.Set(t); err != nil {
		return err
	}
	fmt.Println(t)
	return nil
}

func themeToggle(cmd *cobra.Command, args []string) error {
	_, themes, _, _, err := setup(cmd)
	if err != nil {
		return err
	}
	t, err := themes.Toggle()
	if err != nil {
		return err
	}
	fmt.Println(t)
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tDENSITY\tSPEED\tPOINTER\tFORCE\tFRICTION\tLINK")
	for _, name := range config.ListPresets() {
		cfg, err := config.GetPreset(name)
		if err != nil {
			return err
		}
		p := cfg.Field
		fmt.Fprintf(w, "%s\t%.0f\t%.2f\t%.0f\t%.3f\t%.3f\t%.0f\n",
			name, p.Density, p.Speed, p.PointerRadius, p.PointerForce, p.Friction, p.LinkDistance)
	}
	return w.Flush()
}
