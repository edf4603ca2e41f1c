package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/s-o-l-ar/Neon/internal/config"
)

// errDiagnostics is returned by commands whose input produced diagnostics.
// The diagnostics have already been printed.
var errDiagnostics = errors.New("input has diagnostics")

type rootFlags struct {
	configPath string
	logLevel   string
	logFormat  string
	color      string
}

func newRootCommand(gs *globalState) *cobra.Command {
	root := &cobra.Command{
		Use:   "neon",
		Short: "lex, parse and evaluate arithmetic expressions",
		Long: `neon works on integer expressions built from numbers, + - * /
and parentheses. Input comes from -e, a file, or standard input.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return gs.setup(cmd)
		},
	}
	root.PersistentFlags().AddFlagSet(rootFlagSet(&gs.flags))

	root.AddCommand(
		newTokensCommand(gs),
		newASTCommand(gs),
		newEvalCommand(gs),
		newREPLCommand(gs),
		newVersionCommand(),
	)
	return root
}

func rootFlagSet(f *rootFlags) *pflag.FlagSet {
	flags := pflag.NewFlagSet("", pflag.ContinueOnError)
	flags.StringVarP(&f.configPath, "config", "c", "", "config file (default ./"+config.DefaultFile+")")
	flags.StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn or error")
	flags.StringVar(&f.logFormat, "log-format", "", "log format: text or json")
	flags.StringVar(&f.color, "color", "", "colored output: auto, always or never")
	return flags
}

// setup loads the configuration, lets explicit flags override it and
// configures logging and colors.
func (gs *globalState) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(gs.fs, gs.flags.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = gs.flags.logLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = gs.flags.logFormat
	}
	if flags.Changed("color") {
		cfg.Color = gs.flags.color
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("flags: %w", err)
	}
	gs.cfg = cfg

	colors := useColor(cfg.Color, gs.stderrTTY)
	gs.setColors(colors)
	if err := setupLogger(gs.logger, cfg, colors); err != nil {
		return err
	}
	gs.logger.WithField("config", fmt.Sprintf("%+v", cfg)).Debug("configuration loaded")
	return nil
}

// execute runs the command line args and returns the process exit code.
func execute(gs *globalState, args []string) int {
	root := newRootCommand(gs)
	root.SetArgs(args)
	root.SetIn(gs.stdin)
	root.SetOut(gs.stdout)
	root.SetErr(gs.stderr)

	if err := root.Execute(); err != nil {
		if !errors.Is(err, errDiagnostics) {
			gs.logger.Error(err)
		}
		return 1
	}
	return 0
}
