//go:build !windows

package runner

import (
	"os/exec"
	"runtime"
)

func openURL(target string) error {
	name := "xdg-open"
	if runtime.GOOS == "darwin" {
		name = "open"
	}
	cmd := exec.Command(name, target)
	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}
