package device

import (
	"encoding/json"
	"fmt"
)

// lsblkOutput is the relevant subset of `lsblk --json --output-all`.
// Nullable columns are pointers; null and missing both collapse to "".
type lsblkOutput struct {
	BlockDevices []lsblkDevice `json:"blockdevices"`
}

type lsblkDevice struct {
	Name        *string   `json:"name"`
	Model       *string   `json:"model"`
	Size        *string   `json:"size"`
	FSType      *string   `json:"fstype"`
	MountPoint  *string   `json:"mountpoint"`
	MountPoints []*string `json:"mountpoints"`
	Label       *string   `json:"label"`

	Children []lsblkDevice `json:"children"`
}

// Parse converts raw lsblk JSON output into a Snapshot of the first
// top-level device. Only direct children are reported as partitions.
func Parse(raw []byte) (*Snapshot, error) {
	var out lsblkOutput
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedOutput, err)
	}
	if len(out.BlockDevices) == 0 {
		return nil, fmt.Errorf("%w: no block devices listed", ErrMalformedOutput)
	}

	dev := out.BlockDevices[0]
	if str(dev.Name) == "" {
		return nil, fmt.Errorf("%w: device has no name", ErrMalformedOutput)
	}

	snap := &Snapshot{
		Name:       str(dev.Name),
		Model:      str(dev.Model),
		Size:       str(dev.Size),
		Partitions: make([]Partition, 0, len(dev.Children)),
	}

	for i, child := range dev.Children {
		if str(child.Name) == "" {
			return nil, fmt.Errorf("%w: partition %d of %s has no name", ErrMalformedOutput, i, snap.Name)
		}
		snap.Partitions = append(snap.Partitions, Partition{
			Name:       str(child.Name),
			FSType:     str(child.FSType),
			MountPoint: child.mountPoint(),
			Label:      str(child.Label),
			Size:       str(child.Size),
		})
	}

	return snap, nil
}

// mountPoint prefers the legacy single-value column and falls back to the
// first mounted entry of the list column reported by util-linux >= 2.37.
func (d lsblkDevice) mountPoint() string {
	if mp := str(d.MountPoint); mp != "" {
		return mp
	}
	for _, mp := range d.MountPoints {
		if s := str(mp); s != "" {
			return s
		}
	}
	return ""
}

func str(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
