package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jask/colorletter/core"
	"github.com/jask/colorletter/internal/config"
	"github.com/jask/colorletter/internal/logging"
	"github.com/jask/colorletter/internal/random"
)

var (
	version = "0.1.0"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type flags struct {
	configPath  string
	seed        uint64
	palette     string
	logFile     string
	logLevel    string
	noAltScreen bool
	noMouse     bool
}

func newRootCmd() *cobra.Command {
	var f flags
	root := &cobra.Command{
		Use:   "colorletter",
		Short: "Show a letter in a color and re-roll either one",
		Long: `colorletter shows a heading whose text is the current letter and whose
color is the current color. Two controls replace the color or the letter with
a fresh random value; the two never affect each other.

Keys:
  c        new color
  l        new letter
  q        quit

Both controls can also be clicked.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, f)
			if err != nil {
				return err
			}
			return runTUI(cmd.Context(), cfg, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&f.configPath, "config", "c", "", "config file (default is $XDG_CONFIG_HOME/colorletter/config.toml)")
	pf.Uint64Var(&f.seed, "seed", 0, "seed for the color and letter generators (0 picks a random seed)")
	pf.StringVar(&f.palette, "palette", "", "color palette: happy, warm or any")
	pf.StringVar(&f.logFile, "log-file", "", `log file path ("-" disables logging)`)
	pf.StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn or error")
	pf.BoolVar(&f.noAltScreen, "no-alt-screen", false, "render inline instead of in the alternate screen")
	pf.BoolVar(&f.noMouse, "no-mouse", false, "disable mouse clicks on the controls")

	root.AddCommand(newConfigCmd(&f))
	return root
}

func newConfigCmd(f *flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the configuration file",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, *f)
			if err != nil {
				return err
			}
			return config.Encode(cmd.OutOrStdout(), cfg)
		},
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a default configuration file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := f.configPath
			if len(args) > 0 {
				path = args[0]
			}
			if path == "" {
				p, err := config.DefaultPath()
				if err != nil {
					return err
				}
				path = p
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			if err := config.Save(config.Default(), path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	cmd.AddCommand(show, initCmd)
	return cmd
}

// loadConfig reads the config file and applies the flags the user set.
func loadConfig(cmd *cobra.Command, f flags) (config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return config.Config{}, err
	}
	changed := cmd.Flags().Changed
	if changed("seed") {
		cfg.Random.Seed = f.seed
	}
	if changed("palette") {
		cfg.Random.Palette = f.palette
	}
	if changed("log-file") {
		cfg.Log.Path = f.logFile
	}
	if changed("log-level") {
		cfg.Log.Level = f.logLevel
	}
	if f.noAltScreen {
		cfg.UI.AltScreen = false
	}
	if f.noMouse {
		cfg.UI.Mouse = false
	}
	return cfg, nil
}

func runTUI(ctx context.Context, cfg config.Config, in io.Reader, out io.Writer) error {
	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	logger, closer, err := logging.Open(cfg.Log.Path, level)
	if err != nil {
		return err
	}
	defer closer.Close()
	logger = logger.With("session", uuid.NewString())

	model, err := buildModel(cfg, logger)
	if err != nil {
		logger.Error("startup failed", "error", err)
		return err
	}

	return runProgram(ctx, model, cfg.UI, logger,
		tea.WithInput(in),
		tea.WithOutput(out),
	)
}

// runProgram runs model until it quits. A provider panic surfaces as an error
// wrapping tea.ErrProgramPanic once Bubble Tea has restored the terminal.
func runProgram(ctx context.Context, model tea.Model, ui config.UIConfig, logger *slog.Logger, extra ...tea.ProgramOption) error {
	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, extra...)
	if ui.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if ui.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	if _, err := tea.NewProgram(model, opts...).Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			logger.Info("interrupted")
			return nil
		}
		logger.Error("program exited", "error", err)
		return fmt.Errorf("run program: %w", err)
	}
	logger.Info("exit")
	return nil
}

// buildModel wires the seeded providers and key overrides into the app model.
func buildModel(cfg config.Config, logger *slog.Logger) (core.Model, error) {
	seed := cfg.Random.Seed
	if seed == 0 {
		s, err := random.NewSeed()
		if err != nil {
			return core.Model{}, err
		}
		seed = s
	}
	palette, err := random.ParsePalette(cfg.Random.Palette)
	if err != nil {
		return core.Model{}, err
	}
	rng := random.NewSource(seed)
	colors := random.Colors(rng, palette)
	letters, err := random.Letters(rng, cfg.Random.Alphabet)
	if err != nil {
		return core.Model{}, err
	}

	keys := core.NewKeyRegistry()
	overrides := make([]core.KeyOverride, 0, len(cfg.Keys))
	for _, k := range cfg.Keys {
		overrides = append(overrides, core.KeyOverride{Scope: k.Scope, Action: k.Action, Keys: k.Keys})
	}
	if err := keys.ApplyOverrides(overrides); err != nil {
		return core.Model{}, fmt.Errorf("keys: %w", err)
	}

	logger.Info("starting", "version", version, "seed", seed, "palette", palette)
	return core.NewModel(colors, letters, core.Options{
		Initial: core.State{Color: cfg.UI.InitialColor, Letter: cfg.UI.InitialLetter},
		Keys:    keys,
		Logger:  logger,
	}), nil
}
