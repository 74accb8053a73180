//go:build !windows

package process

import "syscall"

// killTree signals the whole process group led by pid.
func killTree(pid int) {
	_ = syscall.Kill(-pid, syscall.SIGKILL)
}
