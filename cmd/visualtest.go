//go:build ignore

package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dkoosis/rig/pkg/style"
	"github.com/dkoosis/rig/rig"
)

// Renders every console surface rig draws during an install and saves the
// transcripts to files for design review:
//
//	go run cmd/visualtest.go /tmp/rig-visual
//
// Each file holds the console output followed by the diagnostic log content,
// so prompt wording, section rules, and transcript framing can be eyeballed
// side by side.
func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <output-dir>\n", os.Args[0])
		os.Exit(1)
	}

	outputDir := os.Args[1]
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	scenarios := []struct {
		name     string
		stdin    string
		run      func(*rig.Console)
		filename string
	}{
		{"Sections and Log Lines", "", sectionsAndLogLines, "01_sections.txt"},
		{"Successful Command", "", successfulCommand, "02_run_success.txt"},
		{"Failed Command with Echo", "", failedCommandWithEcho, "03_run_failure.txt"},
		{"Numbered Choice", "0\n2\n", numberedChoice, "04_choose.txt"},
		{"Confirmation", "y\n", confirmation, "05_confirm.txt"},
		{"Non-Fatal Failure", "", nonFatalFailure, "06_fail.txt"},
		{"Fatal Failure", "", fatalFailure, "07_fail_fatal.txt"},
		{"Busy Indicator", "", busyIndicator, "08_spinner.txt"},
	}

	for i, scenario := range scenarios {
		fmt.Printf("[%d/%d] Running: %s\n", i+1, len(scenarios), scenario.name)

		var out bytes.Buffer
		log := rig.NewLog(&out)
		if err := log.Open(); err != nil {
			fmt.Fprintf(os.Stderr, "  Error opening log: %v\n", err)
			continue
		}
		console := rig.NewConsole(rig.ConsoleConfig{
			Out:          &out,
			In:           strings.NewReader(scenario.stdin),
			Log:          log,
			EchoFailures: true,
			Exit:         func(code int) { fmt.Fprintf(&out, "[process would exit %d]\n", code) },
		})

		scenario.run(console)

		transcript := out.Bytes()
		if logged, err := os.ReadFile(log.Path()); err == nil {
			transcript = append(transcript, []byte("\n--- log file ---\n")...)
			transcript = append(transcript, logged...)
		}
		log.Close()

		outputPath := filepath.Join(outputDir, scenario.filename)
		if err := os.WriteFile(outputPath, transcript, 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "  Error writing file: %v\n", err)
			continue
		}
		fmt.Printf("  saved %s\n", scenario.filename)
	}

	fmt.Printf("\nReview outputs in: %s\n", outputDir)
}

func sectionsAndLogLines(console *rig.Console) {
	console.Section("base system")
	console.Log().PrintAndLog("Preparing package lists")
	console.Log().PrintAndLog(style.TitleCase("dotfiles and shells"))
	console.Section("Complete")
}

func successfulCommand(console *rig.Console) {
	console.Section("Run Success")
	console.Run("echo hello from rig")
}

func failedCommandWithEcho(console *rig.Console) {
	console.Section("Run Failure")
	console.Run("echo about to fail; exit 3")
}

func numberedChoice(console *rig.Console) {
	console.Log().PrintAndLog("Pick an editor to install:")
	choice := console.Choose([]rig.Option{
		{Label: "Vim", Value: "vim"},
		{Label: "Emacs", Value: "emacs"},
		{Label: "Nano", Value: "nano"},
	})
	console.Log().PrintAndLog("Chosen value: " + choice)
}

func confirmation(console *rig.Console) {
	if console.Confirm("Overwrite existing .bashrc?") {
		console.Log().PrintAndLog("Proceeding with overwrite")
	} else {
		console.Log().PrintAndLog("Keeping existing file")
	}
}

func nonFatalFailure(console *rig.Console) {
	console.Fail("Could not reach the package mirror.", false)
}

func fatalFailure(console *rig.Console) {
	console.Fail("Checksum mismatch on downloaded archive.", true)
}

func busyIndicator(console *rig.Console) {
	console.Section("Busy Indicator")
	console.Run("sleep 0.3 && echo done waiting")
}
