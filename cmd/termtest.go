//go:build ignore

package main

import (
	"fmt"
	"time"

	"github.com/dkoosis/rig/pkg/style"
)

// Exercises the terminal capabilities rig leans on: ANSI styling for status
// lines, backspace overwrite for the busy indicator, and rune-width-aware
// centering for section rules.
//
//	go run cmd/termtest.go
func main() {
	fmt.Println("--- Terminal Capability Test ---")
	fmt.Println("If you see raw escape codes (like '[1m'), the terminal is not interpreting ANSI.")
	fmt.Println()

	fmt.Println("--- Status Styles ---")
	fmt.Println(style.Success("Success lines look like this."))
	fmt.Println(style.Fail("Failure lines look like this."))
	fmt.Println(style.Warn("Warnings look like this."))
	fmt.Println(style.Info("Info lines look like this."))
	fmt.Println(style.Hint("Hints look like this."))
	fmt.Println()

	fmt.Println("--- Section Rules ---")
	fmt.Println(style.CenterRule("Install", 50, '='))
	fmt.Println(style.CenterRule("日本語タイトル", 50, '='))
	fmt.Println()

	fmt.Println("--- Busy Indicator Cell Overwrite ---")
	fmt.Println("A single cell should cycle through | / - \\ and then vanish:")
	fmt.Print("working ")
	for i := 0; i < 12; i++ {
		frames := []string{"|", "/", "-", "\\"}
		fmt.Print(frames[i%len(frames)] + "\b")
		time.Sleep(100 * time.Millisecond)
	}
	fmt.Print(" \b")
	fmt.Println("done")
	fmt.Println()

	fmt.Println("If the cell flickered in place without leaving characters behind,")
	fmt.Println("the spinner will render correctly on this terminal.")
}
