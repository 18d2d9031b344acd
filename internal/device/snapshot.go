package device

// Snapshot describes one block device as reported at query time.
// Partitions are kept in the order the enumeration tool listed them;
// an empty slice means the device has no partitions.
type Snapshot struct {
	Name       string
	Model      string
	Size       string
	Partitions []Partition
}

// Partition describes a child of a Snapshot. FSType, MountPoint and Label
// are empty for unformatted or unmounted partitions.
type Partition struct {
	Name       string
	FSType     string
	MountPoint string
	Label      string
	Size       string
}

// HasPartitions reports whether any partitions were found.
func (s *Snapshot) HasPartitions() bool {
	return len(s.Partitions) > 0
}
