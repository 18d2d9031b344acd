package device

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/alexanderramin/ddi/internal/observe"
)

// Lister runs the block device enumeration tool for a single target and
// returns its raw structured output.
type Lister interface {
	List(ctx context.Context, target string) ([]byte, error)
}

// LsblkLister implements Lister by running lsblk.
type LsblkLister struct {
	// Path is the lsblk binary, looked up in PATH when not absolute.
	Path string
	// NotBlockDeviceExit is the exit status lsblk uses for a target that
	// is not a block device.
	NotBlockDeviceExit int
}

// NewLsblkLister creates a Lister for the given binary and exit status.
func NewLsblkLister(path string, notBlockDeviceExit int) *LsblkLister {
	return &LsblkLister{Path: path, NotBlockDeviceExit: notBlockDeviceExit}
}

func (l *LsblkLister) List(ctx context.Context, target string) ([]byte, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, l.Path, "-J", "-O", target)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		return stdout.Bytes(), nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		if code == l.NotBlockDeviceExit {
			return nil, fmt.Errorf("%w: %s", ErrNotABlockDevice, target)
		}
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			return nil, fmt.Errorf("%w: %s exited with status %d", ErrQueryFailed, l.Path, code)
		}
		return nil, fmt.Errorf("%w: %s exited with status %d: %s", ErrQueryFailed, l.Path, code, msg)
	}
	return nil, fmt.Errorf("%w: %v", ErrQueryFailed, err)
}

// Resolver turns a target path into a Snapshot.
type Resolver struct {
	lister   Lister
	observer observe.Observer
}

// NewResolver creates a Resolver backed by lister.
func NewResolver(lister Lister, observer observe.Observer) *Resolver {
	return &Resolver{lister: lister, observer: observe.OrNoop(observer)}
}

// Resolve queries target and parses the result. The returned error wraps
// ErrNotABlockDevice, ErrQueryFailed or ErrMalformedOutput.
func (r *Resolver) Resolve(ctx context.Context, target string) (*Snapshot, error) {
	start := time.Now()

	snap, err := r.resolve(ctx, target)

	r.observer.OnEvent(observe.Event{
		Kind:      observe.KindQuery,
		Target:    target,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
		Outcome:   outcome(err),
	})
	return snap, err
}

func (r *Resolver) resolve(ctx context.Context, target string) (*Snapshot, error) {
	raw, err := r.lister.List(ctx, target)
	if err != nil {
		if errors.Is(err, ErrNotABlockDevice) || errors.Is(err, ErrQueryFailed) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrQueryFailed, err)
	}
	return Parse(raw)
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "resolved"
	case errors.Is(err, ErrNotABlockDevice):
		return "not_block_device"
	case errors.Is(err, ErrMalformedOutput):
		return "malformed_output"
	default:
		return "query_failed"
	}
}
