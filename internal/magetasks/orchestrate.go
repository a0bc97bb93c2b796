package magetasks

import (
	"fmt"
	"os"

	"github.com/dkoosis/rig/rig"
)

// RunAll executes the verification pipeline through rig's own console, so
// the build system exercises the same logging, spinner, and failure
// surfaces an install run does.
func RunAll() error {
	log := rig.NewLog(os.Stdout)
	if err := log.Open(); err != nil {
		return err
	}
	defer log.Close()

	console := rig.NewConsole(rig.ConsoleConfig{
		Log:          log,
		EchoFailures: true,
	})

	console.Section("Verify")
	commands := []string{
		"go vet ./...",
		"go test ./...",
		fmt.Sprintf("go build -ldflags \"%s\" -o %s ./cmd/rig", versionLdflags(), BinPath),
	}
	for _, command := range commands {
		if res := console.Run(command); !res.Succeeded() {
			return fmt.Errorf("%s: %s", command, res.Detail())
		}
		PrintSuccess(command)
	}
	console.Section("Complete")
	return nil
}
