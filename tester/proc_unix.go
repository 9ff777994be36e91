//go:build unix

package tester

import (
	"os/exec"
	"syscall"
)

// killGroupOnCancel starts the solver in its own process group and kills
// the whole group on cancellation, so children forked by a wrapper shell
// do not outlive the timeout.
func killGroupOnCancel(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		return syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
	}
}
