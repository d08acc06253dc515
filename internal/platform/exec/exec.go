package exec

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"
)

// DefaultTimeout bounds helper processes such as clipboard tools.
const DefaultTimeout = 5 * time.Second

type Result struct {
	ExitCode int
	Stderr   string
	TimedOut bool
	StartErr error
}

// OK reports whether the process started and exited zero within its timeout.
func (r Result) OK() bool {
	return r.StartErr == nil && !r.TimedOut && r.ExitCode == 0
}

func Which(name string) (string, bool) {
	p, err := exec.LookPath(name)
	if err == nil && strings.TrimSpace(p) != "" {
		return p, true
	}
	return "", false
}

// RunWithInput executes launchPath (no shell expansion), feeds stdin to it and
// waits up to timeout. exitCode=124 is used for timeout.
func RunWithInput(launchPath string, args []string, stdin string, timeout time.Duration) Result {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, launchPath, args...)
	cmd.Stdin = strings.NewReader(stdin)
	cmd.WaitDelay = time.Second

	var errBuf bytes.Buffer
	cmd.Stderr = &errBuf

	if err := cmd.Start(); err != nil {
		return Result{ExitCode: -1, StartErr: err}
	}
	waitErr := cmd.Wait()

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return Result{ExitCode: 124, Stderr: errBuf.String(), TimedOut: true}
	}

	exitCode := 0
	if waitErr != nil {
		var ee *exec.ExitError
		if errors.As(waitErr, &ee) && ee.ProcessState != nil {
			exitCode = ee.ProcessState.ExitCode()
		} else {
			exitCode = 1
		}
	}
	return Result{ExitCode: exitCode, Stderr: errBuf.String()}
}
