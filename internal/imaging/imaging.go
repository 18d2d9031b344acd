package imaging

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"

	"github.com/alexanderramin/ddi/internal/observe"
)

// ErrCommandFailed indicates dd could not be started or exited non-zero.
var ErrCommandFailed = errors.New("imaging command failed")

// CommandRunner runs the imaging binary attached to the given streams.
type CommandRunner struct {
	path     string
	stdin    io.Reader
	stdout   io.Writer
	stderr   io.Writer
	observer observe.Observer
}

// NewCommandRunner creates a runner for path that inherits the process's
// standard streams.
func NewCommandRunner(path string, observer observe.Observer) *CommandRunner {
	return &CommandRunner{
		path:     path,
		stdin:    os.Stdin,
		stdout:   os.Stdout,
		stderr:   os.Stderr,
		observer: observe.OrNoop(observer),
	}
}

// WithStreams returns a copy of r attached to the given streams.
func (r *CommandRunner) WithStreams(stdin io.Reader, stdout, stderr io.Writer) *CommandRunner {
	cp := *r
	cp.stdin, cp.stdout, cp.stderr = stdin, stdout, stderr
	return &cp
}

// Run executes the binary with args, one argument per token, and waits
// for it to exit.
func (r *CommandRunner) Run(ctx context.Context, args []string) error {
	start := time.Now()

	cmd := exec.CommandContext(ctx, r.path, args...)
	cmd.Stdin = r.stdin
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr

	err := cmd.Run()

	outcome := "exited_0"
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			outcome = fmt.Sprintf("exited_%d", exitErr.ExitCode())
			err = fmt.Errorf("%w: %s exited with status %d", ErrCommandFailed, r.path, exitErr.ExitCode())
		} else {
			outcome = "spawn_failed"
			err = fmt.Errorf("%w: %v", ErrCommandFailed, err)
		}
	}

	r.observer.OnEvent(observe.Event{
		Kind:      observe.KindExec,
		Target:    r.path,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
		Outcome:   outcome,
	})
	return err
}
