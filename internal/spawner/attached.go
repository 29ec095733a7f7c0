package spawner

import "os"

// Attached runs the application in the foreground with inherited standard
// streams. Spawn returns once the application has terminated.
type Attached struct{}

func (Attached) Spawn(dir string, path string, arguments ...string) error {
	process := command(dir, path, arguments...)
	process.Stdin = os.Stdin
	process.Stdout = os.Stdout
	process.Stderr = os.Stderr
	return process.Run()
}
