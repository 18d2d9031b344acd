package app

import (
	"context"
	"fmt"
	"io"

	"github.com/alexanderramin/ddi/internal/cli/formatter"
	"github.com/alexanderramin/ddi/internal/plan"
)

// Runner maps raw arguments to a plan, confirms the output target when
// needed and then runs the imaging command.
type Runner struct {
	Gate    ConfirmUseCase
	Imaging ImagingUseCase
	Out     io.Writer
}

// Run executes one invocation. A declined confirmation is not an error.
func (r *Runner) Run(ctx context.Context, raw []string) error {
	p := plan.Build(raw)

	if p.Gated {
		ok, err := r.Gate.Confirm(ctx, p.Target)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(r.Out, formatter.RenderAborted())
			return nil
		}
	}

	return r.Imaging.Run(ctx, p.Args)
}
