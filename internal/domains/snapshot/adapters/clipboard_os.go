package adapters

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/snapctx/snapctx/internal/platform/exec"
)

// OSClipboard pipes text into the first clipboard tool found on PATH.
type OSClipboard struct{}

func NewOSClipboard() OSClipboard {
	return OSClipboard{}
}

func (c OSClipboard) Copy(text string) (bool, error) {
	type candidate struct {
		cmd  string
		args []string
	}

	candidates := []candidate{
		{cmd: "pbcopy", args: nil},                                // macOS
		{cmd: "wl-copy", args: nil},                               // Wayland
		{cmd: "xclip", args: []string{"-selection", "clipboard"}}, // X11
		{cmd: "xsel", args: []string{"--clipboard", "--input"}},   // X11
	}

	if runtime.GOOS == "windows" {
		candidates = append([]candidate{{cmd: "clip", args: nil}}, candidates...)
	}

	var lastErr error
	for _, cand := range candidates {
		path, ok := exec.Which(cand.cmd)
		if !ok {
			continue
		}

		res := exec.RunWithInput(path, cand.args, text, exec.DefaultTimeout)
		if res.OK() {
			return true, nil
		}
		lastErr = describeFailure(cand.cmd, res)
	}

	return false, lastErr
}

func describeFailure(cmd string, res exec.Result) error {
	switch {
	case res.StartErr != nil:
		return fmt.Errorf("%s: %w", cmd, res.StartErr)
	case res.TimedOut:
		return fmt.Errorf("%s: timed out", cmd)
	default:
		msg := strings.TrimSpace(res.Stderr)
		if msg == "" {
			return fmt.Errorf("%s: exit status %d", cmd, res.ExitCode)
		}
		return fmt.Errorf("%s: exit status %d: %s", cmd, res.ExitCode, msg)
	}
}
