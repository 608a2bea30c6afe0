package assembly

import (
	"bytes"
	"context"
	"os/exec"

	"github.com/pkg/errors"
)

// runCmd executes a compiled ffmpeg command under ctx. On cancellation the
// process is killed and reaped before returning, so encoder resources are
// released synchronously.
func runCmd(ctx context.Context, cmd *exec.Cmd) error {
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	if err := cmd.Start(); err != nil {
		return errors.Wrap(err, "start ffmpeg")
	}

	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()

	select {
	case <-ctx.Done():
		_ = cmd.Process.Kill()
		<-done
		return ctx.Err()
	case err := <-done:
		if err != nil {
			return errors.Wrapf(err, "ffmpeg: %s", out.String())
		}
		return nil
	}
}
