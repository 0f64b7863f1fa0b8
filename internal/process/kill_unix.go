//go:build !windows

// Package process terminates the headless Chrome started by the Chrome backend.
package process

import "syscall"

// KillProcessGroup sends SIGKILL to the process group led by pid so Chrome's
// renderer and GPU helpers exit with it.
func KillProcessGroup(pid int) {
	if pid <= 0 {
		return
	}
	// Best effort: launcher.Kill still runs after this.
	_ = syscall.Kill(-pid, syscall.SIGKILL)
}
