package main

import (
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/sirupsen/logrus"

	"todoeditor.dev/launcher/internal/configloader"
	"todoeditor.dev/launcher/internal/console"
	"todoeditor.dev/launcher/internal/launcher"
	"todoeditor.dev/launcher/internal/mode"
	"todoeditor.dev/launcher/internal/spawner"
)

// Name of the current application. Used to load the configuration.
const APPLICATION_NAME = "todolauncher"

// The launcher exits 0 in every branch, even when the external application
// cannot be started: callers only use it to hand control over, never to
// observe the outcome.
func main() {
	// Loading application configuration
	configuration, err := configloader.LoadConfiguration(APPLICATION_NAME, "")
	if err != nil {
		logrus.Errorf("%+v", err)
		return
	}
	level, err := logrus.ParseLevel(configuration.LogLevel)
	if err != nil {
		logrus.Errorf("%+v", err)
		return
	}

	// Set log level
	logrus.SetLevel(level)

	if bi, ok := debug.ReadBuildInfo(); ok {
		logrus.Debug("Launching Todo Editor Launcher v.", bi.Main.Version)
	}

	// The external application lives next to the launcher executable, not in
	// the directory the caller happens to invoke the launcher from.
	executablePath, err := os.Executable()
	if err != nil {
		logrus.Errorf("%+v", err)
		return
	}
	baseDirectory := filepath.Dir(executablePath)

	argument := ""
	if len(os.Args) > 1 {
		argument = os.Args[1]
	}
	selection := mode.Parse(argument)
	logrus.Debugf("Resolved mode %s from argument %q", selection.Mode, argument)

	dispatcher := launcher.NewDispatcher(
		baseDirectory,
		configuration.AppPath,
		spawner.Attached{},
		spawner.Detached{},
		console.Terminal{})
	dispatcher.Dispatch(selection)
}
