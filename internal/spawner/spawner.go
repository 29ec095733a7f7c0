// Package spawner starts the external application process. Two strategies
// exist: Attached runs the application in the foreground and waits for it,
// Detached starts it in the background and releases it immediately.
package spawner

import (
	"os/exec"
	"path/filepath"
)

// Strategy launches the application located at path with the given arguments,
// using dir as the working directory of the child process.
type Strategy interface {
	Spawn(dir string, path string, arguments ...string) error
}

// command builds the process shared by both strategies. A relative
// application path is resolved against the working directory, never against
// the directory the caller invoked the launcher from.
func command(dir string, path string, arguments ...string) *exec.Cmd {
	if !filepath.IsAbs(path) {
		path = filepath.Join(dir, path)
	}
	process := exec.Command(path, arguments...)
	process.Dir = dir
	return process
}
