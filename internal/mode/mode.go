// Package mode resolves the positional command line token into one of the
// launcher startup modes and describes the action each mode performs.
package mode

import "strings"

// Mode identifies one of the launcher startup modes.
type Mode int

const (
	// Editor starts the todo editor in the foreground. It is the default mode.
	Editor Mode = iota
	// Silent starts the todo editor minimized, detached from the launching shell.
	Silent
	// Wallpaper starts the wallpaper generator.
	Wallpaper
	// Setup runs the complete setup of the application suite.
	Setup
	// Config shows the current configuration.
	Config
	// Uninstall removes the application shortcuts and configuration.
	Uninstall
	// Help prints the usage text.
	Help
	// Invalid marks a token that matches no known mode.
	Invalid
)

func (mode Mode) String() string {
	switch mode {
	case Editor:
		return "editor"
	case Silent:
		return "silent"
	case Wallpaper:
		return "wallpaper"
	case Setup:
		return "setup"
	case Config:
		return "config"
	case Uninstall:
		return "uninstall"
	case Help:
		return "help"
	}
	return "invalid"
}

// Selection is the resolution of the command line token. Raw keeps the token
// as typed, so an unrecognized input can be reported verbatim.
type Selection struct {
	Mode Mode
	Raw  string
}

// Parse resolves the positional command line token. An absent or empty token
// selects the editor mode. Matching is case-insensitive.
func Parse(raw string) Selection {
	if raw == "" {
		return Selection{Mode: Editor, Raw: Editor.String()}
	}
	for _, candidate := range []Mode{Editor, Silent, Wallpaper, Setup, Config, Uninstall, Help} {
		if strings.EqualFold(raw, candidate.String()) {
			return Selection{Mode: candidate, Raw: raw}
		}
	}
	return Selection{Mode: Invalid, Raw: raw}
}
