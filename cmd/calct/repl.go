package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/zephyrtronium/calct"
	"github.com/zephyrtronium/calct/internal/config"
	"github.com/zephyrtronium/calct/internal/logging"
)

const defaultPrompt = "(calct) > "

var (
	errorColor  = color.New(color.FgRed)
	resultColor = color.New(color.Bold)
)

// repl evaluates expressions and interactive commands one line at a time.
type repl struct {
	ctx    *calct.Context
	log    *slog.Logger
	out    io.Writer
	errOut io.Writer
}

func runLoop(ctx *calct.Context, level slog.Level, cfg config.REPLConfig) error {
	rlc := &readline.Config{
		Prompt:          defaultPrompt,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	}
	if cfg.Prompt != nil {
		rlc.Prompt = *cfg.Prompt
	}
	if cfg.History == nil || *cfg.History {
		path := config.DefaultHistoryPath()
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err == nil {
			rlc.HistoryFile = path
		}
	}
	rl, err := readline.NewEx(rlc)
	if err != nil {
		return fmt.Errorf("failed to create readline: %w", err)
	}
	defer rl.Close()

	// Log through readline so messages don't clobber the prompt.
	log := logging.New(rl.Stderr(), level)
	r := &repl{
		ctx:    ctx.Clone(calct.Logger(log)),
		log:    log,
		out:    rl.Stdout(),
		errOut: rl.Stderr(),
	}
	fmt.Fprintln(r.out, helpText)
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, replCommands)

	for {
		line, err := rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) && line != "" {
				continue
			}
			// EOF or interrupt on an empty line
			return nil
		}
		if !r.handle(line) {
			return nil
		}
	}
}

// handle processes one line of input. It reports whether the loop should
// continue.
func (r *repl) handle(line string) bool {
	input := strings.TrimSpace(line)
	if input == "" {
		return true
	}
	if cmd, ok := strings.CutPrefix(input, "!"); ok {
		r.shell(strings.TrimSpace(cmd))
		return true
	}

	word, rest, _ := strings.Cut(input, " ")
	rest = strings.TrimSpace(rest)
	switch strings.ToLower(word) {
	case "help", "?":
		fmt.Fprintln(r.out, helpText)
		fmt.Fprintln(r.out)
		fmt.Fprintln(r.out, replCommands)
	case "exit", "quit":
		return false
	case "clear":
		fmt.Fprint(r.out, "\033[H\033[2J")
	case "license", "licence":
		fmt.Fprintln(r.out, licenseText)
	case "sep":
		r.separator(rest)
	case "shell":
		r.shell(rest)
	default:
		r.eval(input)
	}
	return true
}

func (r *repl) eval(src string) {
	v, err := evaluate(r.ctx, src)
	if err != nil {
		r.log.Debug("evaluation failed", "expr", src, "err", err)
		errorColor.Fprintf(r.errOut, "error: %v\n", err)
		return
	}
	resultColor.Fprintln(r.out, r.ctx.Format(v))
}

func (r *repl) separator(sep string) {
	if sep == "" {
		fmt.Fprintf(r.out, "`%s` => %s\n", r.ctx.Separator(), r.ctx.FormatDuration(calct.NewDuration(22, 22)))
		return
	}
	if err := r.ctx.SetSeparator(sep); err != nil {
		errorColor.Fprintf(r.errOut, "error: %v\n", err)
		return
	}
	fmt.Fprintf(r.out, "separator set to `%s`\n", r.ctx.Separator())
}

func (r *repl) shell(cmd string) {
	if cmd == "" {
		errorColor.Fprintln(r.errOut, "error: no shell command given")
		return
	}
	var c *exec.Cmd
	if runtime.GOOS == "windows" {
		c = exec.Command("cmd", "/C", cmd)
	} else {
		c = exec.Command("sh", "-c", cmd)
	}
	c.Stdout = r.out
	c.Stderr = r.errOut
	r.log.Debug("running shell command", "cmd", cmd)
	if err := c.Run(); err != nil {
		errorColor.Fprintf(r.errOut, "error: %v\n", err)
	}
}
