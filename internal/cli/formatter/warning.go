package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/ddi/internal/device"
	"github.com/charmbracelet/lipgloss"
)

const (
	noPartitionsNotice = "There are no partitions present"
	partitionsHeader   = "The following partitions are present:"
	emptyValue         = "(none)"
)

// RenderWarning renders the device summary shown before a destructive
// write. Output depends only on snap.
func RenderWarning(snap *device.Snapshot) string {
	var b strings.Builder

	b.WriteString(StyleRed.Render("WARNING:"))
	b.WriteString(" ")
	b.WriteString(StyleYellow.Render(fmt.Sprintf(
		"You are about to write data to %s, this device has the following information.", snap.Name)))
	b.WriteString("\n\n")

	writeField(&b, StyleKey, "Name", snap.Name)
	writeField(&b, StyleKey, "Model", snap.Model)
	writeField(&b, StyleKey, "Size", snap.Size)
	b.WriteString("\n")

	if !snap.HasPartitions() {
		b.WriteString(StyleHeader.Render(noPartitionsNotice))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(StyleHeader.Render(partitionsHeader))
	b.WriteString("\n")
	for _, p := range snap.Partitions {
		b.WriteString("\n")
		writeField(&b, StyleKey, "Name", p.Name)
		writeField(&b, StyleField, "File System", p.FSType)
		writeField(&b, StyleField, "Mount Point", p.MountPoint)
		writeField(&b, StyleField, "Label", p.Label)
		writeField(&b, StyleField, "Size", p.Size)
	}

	return b.String()
}

// RenderDestroyNotice renders the irreversibility notice and the
// confirmation prompt. The prompt has no trailing newline.
func RenderDestroyNotice() string {
	var b strings.Builder
	b.WriteString(StyleRed.Render("THIS WILL DESTROY ALL DATA ON THE DEVICE"))
	b.WriteString("\n")
	b.WriteString(StyleRed.Render("THIS ACTION CANNOT BE UNDONE"))
	b.WriteString("\n")
	b.WriteString(StyleYellow.Render("Are you absolutely sure you want to proceed?"))
	b.WriteString(" ")
	b.WriteString(StyleFg.Render("["))
	b.WriteString(StyleRed.Render("y"))
	b.WriteString(StyleFg.Render("/"))
	b.WriteString(StyleGreen.Render("N"))
	b.WriteString(StyleFg.Render("]"))
	b.WriteString(": ")
	return b.String()
}

// RenderAborted renders the message shown when the user declines.
func RenderAborted() string {
	return StyleGreen.Render("Execution aborted")
}

func writeField(b *strings.Builder, style lipgloss.Style, label, value string) {
	if value == "" {
		value = Dim(emptyValue)
	}
	fmt.Fprintf(b, "    %s %s\n", style.Render("* "+label+":"), value)
}
