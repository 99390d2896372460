package main

import (
	"errors"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/HendryAvila/bulletcheck/internal/config"
)

// globalOptions are the persistent flags shared by every subcommand.
type globalOptions struct {
	configPath  string
	strict      bool
	noCitations bool
	noColor     bool
	verbose     bool
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:   "bulletcheck",
		Short: "Readability analysis for bulleted lists",
		Long: "bulletcheck scores bulleted lists against seven research-backed readability rules " +
			"and reports a 0-100 score, a letter grade, issues by severity and the top improvements.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "Path to a YAML config file (default $"+config.EnvConfigPath+")")
	flags.BoolVar(&opts.strict, "strict", false, "Treat warnings as errors")
	flags.BoolVar(&opts.noCitations, "no-citations", false, "Omit research citations from issues")
	flags.BoolVar(&opts.noColor, "no-color", false, "Disable colored output")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Log debug output to stderr")

	root.AddCommand(
		newServeCmd(opts),
		newAnalyzeCmd(opts),
		newRulesCmd(opts),
		newVersionCmd(),
	)
	return root
}

// load resolves configuration and applies flags on top. Flags only ever
// tighten or disable, so an unset flag leaves the loaded value alone.
func (o *globalOptions) load() (config.BulletConfig, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return config.BulletConfig{}, err
	}
	if o.strict {
		cfg.Validation.StrictMode = true
	}
	if o.noCitations {
		cfg.Validation.EnableResearchCitations = false
	}
	if o.noColor {
		cfg.Display.ColorOutput = false
	}
	return cfg, nil
}

// newLogger builds a production JSON logger on stderr. stdout carries the
// MCP transport and CLI reports, so logs never go there.
func (o *globalOptions) newLogger() (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	zcfg.OutputPaths = []string{"stderr"}
	zcfg.ErrorOutputPaths = []string{"stderr"}
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if o.verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return zcfg.Build()
}

// useColor reports whether output to w should be colored.
func useColor(cfg config.BulletConfig, w io.Writer) bool {
	if !cfg.Display.ColorOutput {
		return false
	}
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

// exitError carries a specific process exit code.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func exitCode(err error) int {
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return 1
}
