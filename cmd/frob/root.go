package main

import (
	"io"

	"github.com/sghaida/frob/config"
	"github.com/sghaida/frob/frob"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const version = "v0.1.0"

// app carries what every subcommand shares. It is filled in by
// PersistentPreRunE before any RunE executes.
type app struct {
	stdout io.Writer
	stderr io.Writer

	configPath string
	output     string
	verbose    bool

	cfg      config.Config
	log      *zap.Logger
	registry *frob.MapRegistry
}

// configError marks failures in loading or validating configuration.
type configError struct{ err error }

func (e configError) Error() string { return e.err.Error() }
func (e configError) Unwrap() error { return e.err }

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{
		stdout:   stdout,
		stderr:   stderr,
		log:      zap.NewNop(),
		registry: frob.DefaultRegistry(),
	}

	root := &cobra.Command{
		Use:   "frob",
		Short: "Static versus dynamic dispatch, by example",
		Long: `frob asserts three examples over the Frobber capability:

  static      generic functions, type parameters fixed at build time
  dynamic     interface functions, method resolved per value at run time
  collection  homogeneous []T versus heterogeneous []Frobber and []*Owned

Run without arguments to assert every example.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.log.Sync()
		},
		RunE: func(*cobra.Command, []string) error {
			return a.runExamples(nil)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default: ./.frob.yaml if present)")
	root.PersistentFlags().StringVarP(&a.output, "output", "o", "", "report format: text, json or yaml (overrides config)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newRunCmd(a))
	root.AddCommand(newDescribeCmd(a))
	root.AddCommand(newJoinCmd(a))
	root.AddCommand(newListCmd(a))
	root.AddCommand(newVersionCmd(a))

	return root
}

// setup loads config, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return configError{err}
	}
	if cmd.Flags().Changed("output") {
		cfg.Output = a.output
	}
	if a.verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return configError{err}
	}
	a.cfg = cfg

	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return configError{err}
	}
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(a.stderr),
		level,
	)
	a.log = zap.New(core).With(zap.String("cmd", cmd.Name()))
	return nil
}
