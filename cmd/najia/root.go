package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/aretw0/najia"
	"github.com/aretw0/najia/internal/config"
	"github.com/aretw0/najia/internal/logging"
	"github.com/aretw0/najia/internal/presentation"
	"github.com/aretw0/najia/pkg/adapters/file"
	"github.com/aretw0/najia/pkg/domain"
)

var (
	cfgPath string
	cfg     = config.Default()
	logger  = logging.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "najia",
	Short: "Najia compiles six-line hexagrams",
	Long: `Najia turns six line values (bottom to top) into a fully annotated hexagram:
palace, world and response, stems and branches, six relatives, six spirits,
hidden and transformed hexagrams, and month/day annotations.

Without a subcommand it reads casts from stdin, one per line.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load(cfgPath)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("log-level") {
			c.LogLevel, _ = cmd.Flags().GetString("log-level")
		}
		level, err := logging.ParseLevel(c.LogLevel)
		if err != nil {
			return err
		}
		cfg = c
		logger = logging.New(level)
		slog.SetDefault(logger)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}
		render, err := newRenderer(cfg.Output, cfg.Verbose)
		if err != nil {
			return err
		}

		runner := najia.NewRunner()
		runner.Input = cmd.InOrStdin()
		runner.Output = cmd.OutOrStdout()
		runner.Headless = !term.IsTerminal(int(os.Stdin.Fd()))
		runner.Renderer = render
		if !runner.Headless {
			presentation.PrintBanner(runner.Output, najia.Version)
		}
		return runner.Run(cmd.Context(), eng)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "Config file (default $XDG_CONFIG_HOME/najia/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn, error")
}

// newEngine builds the engine from the loaded config.
func newEngine() (*najia.Engine, error) {
	loc, err := cfg.TimeLocation()
	if err != nil {
		return nil, err
	}
	opts := []najia.Option{
		najia.WithLogger(logger),
		najia.WithLocation(loc),
	}
	if cfg.CommentaryPath != "" {
		texts, err := file.Load(cfg.CommentaryPath)
		if err != nil {
			return nil, err
		}
		logger.Debug("commentary loaded", "path", texts.Path(), "entries", texts.Len())
		opts = append(opts, najia.WithCommentary(texts))
	}
	return najia.New(opts...), nil
}

// newRenderer picks the output format. Text is styled only on a terminal.
func newRenderer(format string, verbose int) (najia.ResultRenderer, error) {
	switch format {
	case config.OutputJSON:
		return func(h domain.Hexagram) (string, error) {
			data, err := json.MarshalIndent(h, "", "  ")
			return string(data), err
		}, nil
	case config.OutputMarkdown:
		return func(h domain.Hexagram) (string, error) {
			return presentation.Markdown(h, verbose)
		}, nil
	case config.OutputText, "":
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return newRenderer(config.OutputMarkdown, verbose)
		}
		t, err := presentation.NewTerminal(verbose)
		if err != nil {
			return nil, err
		}
		return t.Render, nil
	default:
		return nil, fmt.Errorf("unknown format %q (text, json, markdown)", format)
	}
}
