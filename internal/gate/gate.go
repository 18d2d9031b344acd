package gate

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/alexanderramin/ddi/internal/cli/formatter"
	"github.com/alexanderramin/ddi/internal/device"
	"github.com/alexanderramin/ddi/internal/observe"
)

// ErrPromptIO indicates the warning could not be written or the response
// could not be read.
var ErrPromptIO = errors.New("confirmation prompt i/o failed")

// Resolver produces a snapshot for a target path.
type Resolver interface {
	Resolve(ctx context.Context, target string) (*device.Snapshot, error)
}

// Gate asks the user to confirm a write to a block device.
type Gate struct {
	resolver Resolver
	in       io.Reader
	out      io.Writer
	observer observe.Observer
}

// New creates a Gate that prompts on out and reads the answer from in.
func New(resolver Resolver, in io.Reader, out io.Writer, observer observe.Observer) *Gate {
	return &Gate{
		resolver: resolver,
		in:       in,
		out:      out,
		observer: observe.OrNoop(observer),
	}
}

// Confirm reports whether the write to target may proceed.
//
// Targets that are not block devices proceed without a prompt. Any other
// resolution failure is returned and the write must not happen. For a block
// device the warning is shown and a single line is read; only "y" confirms.
// End of input counts as refusal.
func (g *Gate) Confirm(ctx context.Context, target string) (bool, error) {
	snap, err := g.resolver.Resolve(ctx, target)
	if errors.Is(err, device.ErrNotABlockDevice) {
		g.decided(target, true, "fail_open")
		return true, nil
	}
	if err != nil {
		g.decided(target, false, "resolve_error")
		return false, fmt.Errorf("resolving %s: %w", target, err)
	}

	if _, err := fmt.Fprintln(g.out, formatter.RenderWarning(snap)); err != nil {
		return false, g.ioError(target, "writing warning", err)
	}
	if _, err := io.WriteString(g.out, formatter.RenderDestroyNotice()); err != nil {
		return false, g.ioError(target, "writing prompt", err)
	}

	answer, err := readPromptLine(g.in)
	if err != nil && !errors.Is(err, io.EOF) {
		return false, g.ioError(target, "reading response", err)
	}
	if errors.Is(err, io.EOF) {
		// Keep the shell prompt off the question line.
		fmt.Fprintln(g.out)
	}

	if IsConfirmation(answer) {
		g.decided(target, true, "confirmed")
		return true, nil
	}
	g.decided(target, true, "refused")
	return false, nil
}

func (g *Gate) ioError(target, op string, err error) error {
	g.decided(target, false, "prompt_io")
	return fmt.Errorf("%w: %s: %v", ErrPromptIO, op, err)
}

func (g *Gate) decided(target string, success bool, outcome string) {
	g.observer.OnEvent(observe.Event{
		Kind:    observe.KindDecision,
		Target:  target,
		Success: success,
		Outcome: outcome,
	})
}
