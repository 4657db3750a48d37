// Package main provides the CLI entrypoint for calct.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zephyrtronium/calct"
	"github.com/zephyrtronium/calct/internal/config"
	"github.com/zephyrtronium/calct/internal/logging"
)

const defaultLogLevel = "warning"

var errNoExpression = errors.New("no time expression in command arguments")

// options holds the values of the root command's flags.
type options struct {
	logLevel    string
	separator   string
	configPath  string
	interactive bool
	license     bool
}

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options
	rootCmd := &cobra.Command{
		Use:           "calct [flags] expression...",
		Short:         summary,
		Long:          helpText,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, &opts, args)
		},
	}

	f := rootCmd.Flags()
	// Expressions contain operators like "-" which must not be read as flags.
	f.SetInterspersed(false)
	f.StringVarP(&opts.logLevel, "log-level", "l", defaultLogLevel, "log level (debug, info, warning, error, critical)")
	f.BoolVarP(&opts.interactive, "interactive", "i", false, "run in interactive mode")
	f.StringVarP(&opts.separator, "separator", "s", calct.DefaultSeparator, "separator for hours and minutes used in display, and usable in parsing")
	f.BoolVar(&opts.license, "license", false, "show the license and exit")
	f.StringVar(&opts.configPath, "config", config.DefaultConfigPath(), "path to the TOML config file")

	return rootCmd
}

func run(cmd *cobra.Command, opts *options, args []string) error {
	fileCfg, err := config.LoadConfig(opts.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "log-level", &opts.logLevel, fileCfg.LogLevel)
	applyStringConfig(cmd, "separator", &opts.separator, fileCfg.Separator)

	level, err := logging.ParseLevel(opts.logLevel)
	if err != nil {
		return err
	}
	logger := logging.New(cmd.ErrOrStderr(), level)
	logger.Debug("starting", "args", args, "separator", opts.separator, "interactive", opts.interactive)

	ctx := calct.NewContext(calct.Logger(logger))
	if opts.separator != calct.DefaultSeparator {
		if err := ctx.SetSeparator(opts.separator); err != nil {
			logger.Error(err.Error())
		}
	}

	switch {
	case opts.license:
		fmt.Fprintln(cmd.OutOrStdout(), licenseText)
		return nil
	case opts.interactive:
		return runLoop(ctx, level, fileCfg.REPL)
	case len(args) > 0:
		runOnce(cmd.OutOrStdout(), logger, ctx, args)
		return nil
	default:
		return errNoExpression
	}
}

// runOnce evaluates the arguments as a single expression. Failures are
// logged rather than returned.
func runOnce(w io.Writer, logger *slog.Logger, ctx *calct.Context, args []string) {
	src := strings.Join(args, " ")
	v, err := evaluate(ctx, src)
	if err != nil {
		logger.Error("cannot evaluate expression", "expr", src, "err", err)
		return
	}
	fmt.Fprintln(w, ctx.Format(v))
}

// evaluate runs each stage of evaluation separately so that errors say which
// stage failed.
func evaluate(ctx *calct.Context, src string) (calct.Value, error) {
	tokens, err := ctx.Lex(src)
	if err != nil {
		return nil, fmt.Errorf("lex: %w", err)
	}
	postfix, err := calct.Parse(tokens)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	v, err := ctx.Evaluate(postfix)
	if err != nil {
		return nil, fmt.Errorf("evaluate: %w", err)
	}
	return v, nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}
