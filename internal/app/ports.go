package app

import "context"

// ConfirmUseCase decides whether a write to target may proceed.
type ConfirmUseCase interface {
	Confirm(ctx context.Context, target string) (bool, error)
}

// ImagingUseCase runs the wrapped imaging command.
type ImagingUseCase interface {
	Run(ctx context.Context, args []string) error
}
