// Package launcher implements the mode dispatcher: it turns a resolved mode
// selection into exactly one launch of the external Todo Editor application.
package launcher

import (
	"strings"

	"github.com/sirupsen/logrus"

	"todoeditor.dev/launcher/internal/mode"
	"todoeditor.dev/launcher/internal/spawner"
)

// Terminal is the user-facing side of the dispatcher.
type Terminal interface {
	Print(message string)
	Pause()
}

// Dispatcher launches the external application according to a mode selection.
// The base directory is the directory containing the launcher executable; the
// application path is resolved against it, so the launcher behaves the same
// regardless of the directory it is invoked from.
type Dispatcher struct {
	baseDirectory   string
	applicationPath string
	attached        spawner.Strategy
	detached        spawner.Strategy
	terminal        Terminal
}

func NewDispatcher(baseDirectory string, applicationPath string, attached spawner.Strategy, detached spawner.Strategy, terminal Terminal) *Dispatcher {
	return &Dispatcher{
		baseDirectory:   baseDirectory,
		applicationPath: applicationPath,
		attached:        attached,
		detached:        detached,
		terminal:        terminal,
	}
}

// Dispatch performs the action of the selected mode. A failure to start or
// run the external application is logged and never propagated: the launcher
// reports the same outcome to its caller in every branch.
func (dispatcher *Dispatcher) Dispatch(selection mode.Selection) {
	plan := selection.Plan()

	switch selection.Mode {
	case mode.Help:
		dispatcher.terminal.Print(usage)
	case mode.Invalid:
		dispatcher.terminal.Print("Invalid mode: " + selection.Raw)
		dispatcher.terminal.Print("Run \"todolauncher help\" for the list of available modes")
	default:
		if plan.Banner != "" {
			dispatcher.terminal.Print(plan.Banner)
		}
	}

	if plan.Spawns() {
		strategy := dispatcher.attached
		if plan.Wait == mode.FireAndForget {
			strategy = dispatcher.detached
		}
		logrus.Debugf("Launching %s %s", dispatcher.applicationPath, strings.Join(plan.Arguments, " "))
		if err := strategy.Spawn(dispatcher.baseDirectory, dispatcher.applicationPath, plan.Arguments...); err != nil {
			logrus.Error("Error starting the application process")
			logrus.Error(err)
		}
	}

	if plan.PauseAfter {
		dispatcher.terminal.Pause()
	}
}
