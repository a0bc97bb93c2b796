package magetasks

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/dkoosis/rig/pkg/style"
)

const headerWidth = 80

// PrintH1Header prints a top-level header with decoration.
func PrintH1Header(title string) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", headerWidth))
	padding := (headerWidth - style.Width(title)) / 2
	if padding < 0 {
		padding = 0
	}
	fmt.Printf("%s%s\n", strings.Repeat(" ", padding), title)
	fmt.Println(strings.Repeat("=", headerWidth))
	fmt.Println()
}

// PrintH2Header prints a section header, drawn the same way rig rules off
// installation phases.
func PrintH2Header(title string) {
	fmt.Println()
	fmt.Println(style.CenterRule(" "+title+" ", 50, '='))
	fmt.Println()
}

// PrintSuccess prints a success message.
func PrintSuccess(msg string) {
	fmt.Println(style.Success("✅ " + msg))
}

// PrintWarning prints a warning message.
func PrintWarning(msg string) {
	fmt.Println(style.Warn("⚠️  " + msg))
}

// PrintError prints an error message.
func PrintError(msg string) {
	fmt.Println(style.Fail("❌ " + msg))
}

// PrintInfo prints an info message.
func PrintInfo(msg string) {
	fmt.Println(style.Info("ℹ️  " + msg))
}

// Run executes a named build tool and streams its output to the console.
func Run(label, name string, args ...string) error {
	PrintInfo(label)
	cmd := exec.Command(name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
