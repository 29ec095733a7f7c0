package spawner

// Detached starts the application in the background and releases the process
// handle, so the application keeps running after the launcher has exited.
// The standard streams stay disconnected.
type Detached struct{}

func (Detached) Spawn(dir string, path string, arguments ...string) error {
	process := command(dir, path, arguments...)
	detach(process)
	if err := process.Start(); err != nil {
		return err
	}
	return process.Process.Release()
}
