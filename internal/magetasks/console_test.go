package magetasks

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

// captureStdout collects everything fn prints to os.Stdout.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	oldStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}
	os.Stdout = w

	fn()

	w.Close()
	os.Stdout = oldStdout

	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String()
}

func TestPrintH1Header(t *testing.T) {
	output := captureStdout(t, func() { PrintH1Header("Test Title") })

	if !strings.Contains(output, "Test Title") {
		t.Errorf("PrintH1Header output should contain 'Test Title', got: %s", output)
	}
	if !strings.Contains(output, strings.Repeat("=", headerWidth)) {
		t.Errorf("PrintH1Header output should contain a full-width rule, got: %s", output)
	}
}

func TestPrintH2Header(t *testing.T) {
	output := captureStdout(t, func() { PrintH2Header("Build") })

	if !strings.Contains(output, " Build ") {
		t.Errorf("PrintH2Header output should contain the title, got: %s", output)
	}
	if !strings.Contains(output, "==") {
		t.Errorf("PrintH2Header output should rule off the title, got: %s", output)
	}
}

func TestPrintMessages(t *testing.T) {
	tests := []struct {
		name string
		fn   func(string)
		msg  string
	}{
		{"PrintSuccess", PrintSuccess, "Operation completed"},
		{"PrintWarning", PrintWarning, "Warning message"},
		{"PrintError", PrintError, "Error message"},
		{"PrintInfo", PrintInfo, "Info message"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := captureStdout(t, func() { tt.fn(tt.msg) })
			if !strings.Contains(output, tt.msg) {
				t.Errorf("%s output should contain %q, got: %s", tt.name, tt.msg, output)
			}
		})
	}
}

func TestRun_ReturnsError_When_ToolMissing(t *testing.T) {
	var err error
	_ = captureStdout(t, func() {
		err = Run("Missing Tool", "rig-no-such-build-tool")
	})

	if err == nil {
		t.Fatal("Run() should fail for a missing tool")
	}
	if !IsCommandNotFound(err) {
		t.Errorf("Run() error should classify as command-not-found, got: %v", err)
	}
}
