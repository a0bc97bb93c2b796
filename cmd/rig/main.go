// Command rig runs an install manifest: an ordered list of shell steps with
// confirmation gates, a per-run diagnostic log, and a busy indicator while
// each step executes.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/dkoosis/rig/internal/config"
	"github.com/dkoosis/rig/internal/manifest"
	"github.com/dkoosis/rig/internal/version"
	"github.com/dkoosis/rig/pkg/style"
	"github.com/dkoosis/rig/rig"
)

// exitSignal carries a Fail escalation up to run's recover so integration
// tests can invoke the logic without os.Exit() terminating the test runner.
type exitSignal struct {
	code int
}

func main() {
	os.Exit(run(os.Args, os.Stdin, os.Stdout, os.Stderr))
}

// run executes the application logic and returns the exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) (exitCode int) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		sig, ok := r.(exitSignal)
		if !ok {
			panic(r)
		}
		exitCode = sig.code
	}()

	cliFlags, versionFlag, manifestArg, err := parseGlobalFlags(args, stderr)
	if err != nil {
		return 1
	}

	if versionFlag {
		fmt.Fprintf(stdout, "rig version %s\n", version.Version)
		fmt.Fprintf(stdout, "Commit: %s\n", version.CommitHash)
		fmt.Fprintf(stdout, "Built: %s\n", version.BuildDate)
		return 0
	}

	fileAppConfig := config.LoadConfig()
	settings := config.MergeWithFlags(fileAppConfig, cliFlags)

	style.SetEnabled(!settings.NoColor && isTerminal(stdout))
	if settings.Debug {
		fmt.Fprintf(stderr, "[DEBUG rig] styling enabled: %t\n", style.Enabled())
	}

	manifestPath := manifestArg
	if manifestPath == "" {
		manifestPath = settings.Manifest
	}
	if manifestPath == "" {
		fmt.Fprintln(stderr, "Error: No manifest specified")
		fmt.Fprintln(stderr, "Usage: rig [flags] <MANIFEST.yaml>")
		return 1
	}

	m, err := manifest.LoadFile(manifestPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	log := rig.NewLog(stdout)
	if err := log.Open(); err != nil {
		fmt.Fprintf(stderr, "Warning: %v. Continuing without a log file.\n", err)
	}

	console := rig.NewConsole(rig.ConsoleConfig{
		Out:          stdout,
		In:           stdin,
		Log:          log,
		Shell:        settings.Shell,
		SpinnerStyle: settings.Spinner,
		NoSpinner:    settings.NoSpinner,
		EchoFailures: settings.EchoFailures,
		UsePicker:    settings.UsePicker,
		Debug:        settings.Debug,
		Exit:         func(code int) { panic(exitSignal{code: code}) },
	})

	runManifest(console, m, settings.AssumeYes)

	log.Close()
	return 0
}

// runManifest walks the manifest's steps in order. Required steps abort the
// run through the console's failure escalation; anything else is logged and
// survived.
func runManifest(console *rig.Console, m *manifest.Manifest, assumeYes bool) {
	log := console.Log()
	console.Section(style.TitleCase(m.Name))
	if m.Description != "" {
		log.PrintAndLog(m.Description)
	}

	failed := 0
	for i, step := range m.Steps {
		banner := fmt.Sprintf("Step %d/%d: %s", i+1, len(m.Steps), step.Name)
		log.Write(banner)
		fmt.Fprintln(console.Out(), style.Info(banner))

		if step.Confirm != "" && !assumeYes {
			if !console.Confirm(step.Confirm) {
				skipped := "Skipped: " + step.Name
				log.Write(skipped)
				fmt.Fprintln(console.Out(), style.Hint(skipped))
				continue
			}
		}

		res := console.Run(step.Run)
		if step.MustSucceed {
			res.MustSucceed(fmt.Sprintf("Step %q failed: %s", step.Name, res.Detail()))
		}
		if !res.Succeeded() {
			failed++
			warn := fmt.Sprintf("Step failed (continuing): %s [%s]", step.Name, res.Detail())
			log.Write(warn)
			fmt.Fprintln(console.Out(), style.Warn(warn))
			continue
		}
		fmt.Fprintln(console.Out(), style.Success("ok: "+step.Name))
	}

	console.Section("Complete")
	summary := fmt.Sprintf("%d steps, %d failed", len(m.Steps), failed)
	log.PrintAndLog(summary)
	if log.Path() != "" {
		log.PrintAndLog("Log: " + log.Path())
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func parseGlobalFlags(args []string, stderr io.Writer) (config.CliFlags, bool, string, error) {
	var cliFlags config.CliFlags
	var versionFlag bool

	fs := flag.NewFlagSet("rig", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: rig [flags] <MANIFEST.yaml>")
		fs.PrintDefaults()
	}

	fs.BoolVar(&versionFlag, "version", false, "Print rig version and exit.")
	fs.BoolVar(&versionFlag, "v", false, "Print rig version and exit (shorthand).")

	fs.BoolVar(&cliFlags.Debug, "debug", false, "Enable debug output.")
	fs.BoolVar(&cliFlags.Debug, "d", false, "Enable debug output (shorthand).")
	fs.BoolVar(&cliFlags.NoColor, "no-color", false, "Disable ANSI color/styling output.")
	fs.BoolVar(&cliFlags.NoSpinner, "no-spinner", false, "Disable the busy indicator.")
	fs.BoolVar(&cliFlags.CI, "ci", false, "Enable CI-friendly output (implies --no-color --no-spinner).")
	fs.BoolVar(&cliFlags.EchoFailures, "echo-failures", false, "Print a failed step's transcript on the console.")
	fs.BoolVar(&cliFlags.UsePicker, "picker", false, "Use the full-screen option picker on a terminal.")
	fs.BoolVar(&cliFlags.Yes, "yes", false, "Assume yes for confirmation gates.")
	fs.BoolVar(&cliFlags.Yes, "y", false, "Assume yes for confirmation gates (shorthand).")
	fs.StringVar(&cliFlags.Shell, "shell", "", "Interpreter for step commands (default: platform shell).")
	fs.StringVar(&cliFlags.Spinner, "spinner", "", "Busy indicator style (line, dots, grow).")

	if err := fs.Parse(args[1:]); err != nil {
		return cliFlags, false, "", err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "no-color":
			cliFlags.NoColorSet = true
		case "no-spinner":
			cliFlags.NoSpinnerSet = true
		case "echo-failures":
			cliFlags.EchoFailuresSet = true
		case "picker":
			cliFlags.UsePickerSet = true
		case "ci":
			cliFlags.CISet = true
		case "d", "debug":
			cliFlags.DebugSet = true
		}
	})

	return cliFlags, versionFlag, fs.Arg(0), nil
}
