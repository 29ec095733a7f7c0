// Package console implements the terminal side of the launcher: user-facing
// messages and the pause-for-key-press step of the interactive modes.
package console

import (
	"bufio"
	"fmt"
	"os"

	"golang.org/x/term"
)

// Terminal writes launcher messages to standard output and pauses on request.
type Terminal struct{}

// Print writes a single message line.
func (Terminal) Print(message string) {
	fmt.Println(message)
}

// Pause blocks until a key is pressed. When standard input is not a terminal
// the pause degrades to reading a single line, so piped invocations cannot
// hang on raw mode.
func (Terminal) Pause() {
	fmt.Print("Press any key to continue...")
	defer fmt.Println()

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		previousState, err := term.MakeRaw(fd)
		if err == nil {
			defer term.Restore(fd, previousState)
			buffer := make([]byte, 1)
			os.Stdin.Read(buffer)
			return
		}
	}
	bufio.NewReader(os.Stdin).ReadString('\n')
}
