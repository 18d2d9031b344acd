package device

import "errors"

var (
	// ErrNotABlockDevice indicates the target exists but is not a block
	// device, e.g. a regular image file.
	ErrNotABlockDevice = errors.New("not a block device")

	// ErrQueryFailed indicates the enumeration tool could not be run or
	// exited with an unexpected status.
	ErrQueryFailed = errors.New("block device query failed")

	// ErrMalformedOutput indicates the enumeration output could not be
	// parsed into a snapshot.
	ErrMalformedOutput = errors.New("malformed block device query output")
)
