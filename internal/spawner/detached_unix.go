//go:build !windows

package spawner

import (
	"os/exec"
	"syscall"
)

// detach puts the child in its own session so it does not share the
// controlling terminal and survives the launcher.
func detach(process *exec.Cmd) {
	process.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
}
