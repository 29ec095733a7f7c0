//go:build windows

package spawner

import (
	"os/exec"
	"syscall"
)

const detachedProcess = 0x00000008

// detach starts the child without a console window and outside the launcher
// process group, so the launching shell is freed immediately.
func detach(process *exec.Cmd) {
	process.SysProcAttr = &syscall.SysProcAttr{
		HideWindow:    true,
		CreationFlags: detachedProcess,
	}
}
