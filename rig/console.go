package rig

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"
)

// separatorWidth is the width of the rule lines framing each command's
// transcript in the log.
const separatorWidth = 40

// ConsoleConfig configures a Console. Zero values select the defaults.
type ConsoleConfig struct {
	Out io.Writer // console output (default os.Stdout)
	In  io.Reader // interactive input (default os.Stdin)
	Log *Log      // diagnostic transcript (default: an unopened Log on Out)

	Shell     string   // interpreter override, e.g. "bash"
	ShellArgs []string // run-one-command args for the override (default "-c")

	SpinnerStyle    string        // key into SpinnerFrames
	SpinnerInterval time.Duration // frame cadence (default 100ms)
	SpinnerSettle   time.Duration // stop settle delay (default 300ms)
	NoSpinner       bool          // suppress the busy indicator

	EchoFailures bool // print a failed command's transcript on the console
	UsePicker    bool // offer the full-screen option picker on a terminal
	Debug        bool // emit [DEBUG rig] lines on stderr

	// Exit terminates the process after a failure escalation. It must not
	// return. Defaults to os.Exit.
	Exit func(code int)
}

// Console owns the surfaces an installer run touches: the terminal streams,
// the diagnostic log, the busy indicator, and process termination. One
// Console serves the whole run.
type Console struct {
	cfg ConsoleConfig
	in  *bufio.Reader
}

// NewConsole creates a Console from cfg with defaults applied.
func NewConsole(cfg ConsoleConfig) *Console {
	cfg = normalizeConfig(cfg)
	return &Console{cfg: cfg, in: bufio.NewReader(cfg.In)}
}

// DefaultConsole returns a Console wired to the standard streams with an
// unopened log.
func DefaultConsole() *Console {
	return NewConsole(ConsoleConfig{})
}

func normalizeConfig(cfg ConsoleConfig) ConsoleConfig {
	normalized := cfg
	if normalized.Out == nil {
		normalized.Out = os.Stdout
	}
	if normalized.In == nil {
		normalized.In = os.Stdin
	}
	if normalized.Log == nil {
		normalized.Log = NewLog(normalized.Out)
	}
	if normalized.Exit == nil {
		normalized.Exit = os.Exit
	}
	return normalized
}

// Log returns the diagnostic log this console records to.
func (c *Console) Log() *Log {
	return c.cfg.Log
}

// Out returns the console writer, for callers that print their own status
// lines between operations.
func (c *Console) Out() io.Writer {
	return c.cfg.Out
}

// Section marks the start of an installation phase; see Log.Section.
func (c *Console) Section(title string) {
	c.cfg.Log.Section(title)
}

// Run executes command through the platform shell, shows the busy indicator
// for the duration, and logs the framed transcript plus one outcome line.
// The command's combined stdout and stderr never reach the console; they go
// to the log (and into the Result). A zero exit yields a success Result,
// anything else a failure with detail. Run blocks until the command ends.
func (c *Console) Run(command string) Result {
	return c.RunContext(context.Background(), command)
}

// RunContext is Run with caller-controlled cancellation. Cancelling ctx
// kills the child; the Result then reports failure.
func (c *Console) RunContext(ctx context.Context, command string) Result {
	log := c.cfg.Log
	log.Write(strings.Repeat("_", separatorWidth))
	log.Write("Shell: " + command)

	spin := c.newSpinner()
	if spin != nil {
		if err := spin.Start(); err != nil {
			spin = nil
		} else {
			defer spin.Stop()
		}
	}

	name, args := c.interpreter()
	c.debugf("exec %s %v %q", name, args, command)

	cmd := exec.CommandContext(ctx, name, append(args, command)...)
	cmd.Env = os.Environ()
	out, err := cmd.CombinedOutput()

	if spin != nil {
		spin.Stop()
	}

	transcript := string(out)
	log.Write(transcript)

	var res Result
	if err != nil {
		c.debugf("command failed: %v", err)
		res = newFailure(transcript, err.Error(), getExitCode(err), c.Fail)
	} else {
		res = newSuccess(transcript, c.Fail)
	}
	log.Write("Shell: Exit " + res.String())
	log.Write(strings.Repeat("-", separatorWidth))

	if !res.Succeeded() && c.cfg.EchoFailures && transcript != "" {
		fmt.Fprintln(c.cfg.Out, transcript)
	}
	return res
}

// Fail reports a failed installation and terminates the process with exit
// status 1. The message lands in the log and on the console; a fatal
// failure adds the log-path guidance for bug reports. The log is flushed
// and closed before exit. Fail does not return.
func (c *Console) Fail(message string, fatal bool) {
	log := c.cfg.Log
	log.Write("Installation failed")
	log.Write(message)
	fmt.Fprintf(c.cfg.Out, "%s\n\n", message)

	if fatal {
		log.Write("FATAL!")
		fmt.Fprintln(c.cfg.Out, "Installation failed with unexpected error - This should not have happened.")
		fmt.Fprintf(c.cfg.Out, "Please check logs at %s. If you open a bug report, include this file.\n", log.Path())
	} else {
		fmt.Fprintln(c.cfg.Out, "Installation failed!")
	}

	log.Close()
	c.cfg.Exit(1)
}

// interpreter picks the shell that runs command strings: the configured
// override, else the platform default.
func (c *Console) interpreter() (string, []string) {
	if c.cfg.Shell != "" {
		args := c.cfg.ShellArgs
		if len(args) == 0 {
			args = []string{"-c"}
		}
		return c.cfg.Shell, args
	}
	return defaultInterpreter()
}

// newSpinner builds the per-invocation busy indicator, nil when disabled.
func (c *Console) newSpinner() *Spinner {
	if c.cfg.NoSpinner {
		return nil
	}
	return NewSpinner(SpinnerConfig{
		Style:    c.cfg.SpinnerStyle,
		Interval: c.cfg.SpinnerInterval,
		Settle:   c.cfg.SpinnerSettle,
		Writer:   c.cfg.Out,
	})
}

func (c *Console) debugf(format string, args ...any) {
	if !c.cfg.Debug {
		return
	}
	fmt.Fprintf(os.Stderr, "[DEBUG rig] "+format+"\n", args...)
}

// getExitCode maps a command error to the exit code callers can act on:
// the child's real code when it ran, 127 when the interpreter or executable
// could not be found, 1 otherwise.
func getExitCode(err error) int {
	if err == nil {
		return 0
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if exitErr.ProcessState != nil {
			return exitErr.ProcessState.ExitCode()
		}
		return 1
	}

	if isCommandNotFoundError(err) {
		return 127
	}
	return 1
}

func isCommandNotFoundError(err error) bool {
	if errors.Is(err, exec.ErrNotFound) {
		return true
	}
	// Fallback string matching for wrapped launch failures
	errStr := err.Error()
	if strings.Contains(errStr, "executable file not found") {
		return true
	}
	if runtime.GOOS != "windows" && strings.Contains(errStr, "no such file or directory") {
		return true
	}
	return false
}
