//go:build !unix

package rig

// defaultInterpreter returns the platform command interpreter and the
// arguments that make it run one command string.
func defaultInterpreter() (name string, args []string) {
	return "cmd", []string{"/C"}
}
