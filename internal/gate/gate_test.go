package gate

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
	"testing"

	"github.com/alexanderramin/ddi/internal/device"
	"github.com/alexanderramin/ddi/internal/observe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

type fakeResolver struct {
	snap    *device.Snapshot
	err     error
	targets []string
}

func (f *fakeResolver) Resolve(_ context.Context, target string) (*device.Snapshot, error) {
	f.targets = append(f.targets, target)
	return f.snap, f.err
}

type recordingObserver struct {
	events []observe.Event
}

func (r *recordingObserver) OnEvent(e observe.Event) {
	r.events = append(r.events, e)
}

// countingReader records whether the gate tried to read a response.
type countingReader struct {
	reads int
}

func (c *countingReader) Read([]byte) (int, error) {
	c.reads++
	return 0, io.EOF
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("input/output error")
}

func sdxSnapshot() *device.Snapshot {
	return &device.Snapshot{
		Name:  "sdx",
		Size:  "10G",
		Model: "Test Disk",
		Partitions: []device.Partition{
			{Name: "sdx1", FSType: "ext4", MountPoint: "/mnt", Label: "", Size: "10G"},
		},
	}
}

func TestIsConfirmation(t *testing.T) {
	tests := []struct {
		answer string
		want   bool
	}{
		{"y", true},
		{"Y", true},
		{" y ", true},
		{"\ty\r", true},
		{"Y\n\n", true},
		{"", false},
		{"n", false},
		{"N", false},
		{"yes", false},
		{"YES", false},
		{"y y", false},
		{"yy", false},
		{"ye", false},
		{"1", false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.answer), func(t *testing.T) {
			assert.Equal(t, tt.want, IsConfirmation(tt.answer))
		})
	}
}

func TestConfirm_Responses(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "y lf", input: "y\n", want: true},
		{name: "Y lf", input: "Y\n", want: true},
		{name: "y cr", input: "y\r", want: true},
		{name: "y padded", input: "  y  \n", want: true},
		{name: "y without newline", input: "y", want: true},
		{name: "only first line counts", input: "n\ny\n", want: false},
		{name: "N", input: "N\n", want: false},
		{name: "yes", input: "yes\n", want: false},
		{name: "empty line", input: "\n", want: false},
		{name: "end of input", input: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := &fakeResolver{snap: sdxSnapshot()}
			var out bytes.Buffer

			got, err := New(resolver, strings.NewReader(tt.input), &out, nil).
				Confirm(context.Background(), "/dev/sdx")

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, []string{"/dev/sdx"}, resolver.targets)
		})
	}
}

func TestConfirm_ShowsWarningAndPrompt(t *testing.T) {
	resolver := &fakeResolver{snap: sdxSnapshot()}
	var out bytes.Buffer

	_, err := New(resolver, strings.NewReader("N\n"), &out, nil).Confirm(context.Background(), "/dev/sdx")
	require.NoError(t, err)

	text := ansiPattern.ReplaceAllString(out.String(), "")
	assert.Contains(t, text, "WARNING: You are about to write data to sdx")
	assert.Contains(t, text, "* Name: sdx1")
	assert.Contains(t, text, "* File System: ext4")
	assert.Contains(t, text, "* Mount Point: /mnt")
	assert.Contains(t, text, "THIS WILL DESTROY ALL DATA ON THE DEVICE")
	assert.Contains(t, text, "THIS ACTION CANNOT BE UNDONE")
	assert.True(t, strings.HasSuffix(text, "[y/N]: "), "prompt should end the output, got %q", text)
}

func TestConfirm_NotABlockDeviceFailsOpen(t *testing.T) {
	resolver := &fakeResolver{err: fmt.Errorf("%w: /tmp/img.dd", device.ErrNotABlockDevice)}
	in := &countingReader{}
	var out bytes.Buffer
	obs := &recordingObserver{}

	got, err := New(resolver, in, &out, obs).Confirm(context.Background(), "/tmp/img.dd")

	require.NoError(t, err)
	assert.True(t, got)
	assert.Zero(t, in.reads, "no response should be read")
	assert.Empty(t, out.String(), "no prompt should be shown")
	require.Len(t, obs.events, 1)
	assert.Equal(t, "fail_open", obs.events[0].Outcome)
}

func TestConfirm_ResolveErrorsAbort(t *testing.T) {
	for _, sentinel := range []error{device.ErrQueryFailed, device.ErrMalformedOutput} {
		t.Run(sentinel.Error(), func(t *testing.T) {
			resolver := &fakeResolver{err: fmt.Errorf("%w: lsblk exited with status 1", sentinel)}
			in := &countingReader{}
			var out bytes.Buffer

			got, err := New(resolver, in, &out, nil).Confirm(context.Background(), "/dev/sdx")

			assert.False(t, got)
			assert.ErrorIs(t, err, sentinel)
			assert.NotErrorIs(t, err, ErrPromptIO)
			assert.Contains(t, err.Error(), "/dev/sdx")
			assert.Zero(t, in.reads)
			assert.Empty(t, out.String())
		})
	}
}

func TestConfirm_WriteFailure(t *testing.T) {
	resolver := &fakeResolver{snap: sdxSnapshot()}
	in := &countingReader{}

	got, err := New(resolver, in, failingWriter{}, nil).Confirm(context.Background(), "/dev/sdx")

	assert.False(t, got)
	assert.ErrorIs(t, err, ErrPromptIO)
	assert.Zero(t, in.reads)
}

func TestConfirm_ReadFailure(t *testing.T) {
	resolver := &fakeResolver{snap: sdxSnapshot()}
	obs := &recordingObserver{}

	got, err := New(resolver, failingReader{}, io.Discard, obs).Confirm(context.Background(), "/dev/sdx")

	assert.False(t, got)
	assert.ErrorIs(t, err, ErrPromptIO)
	require.Len(t, obs.events, 1)
	assert.Equal(t, "prompt_io", obs.events[0].Outcome)
}

func TestConfirm_RecordsDecision(t *testing.T) {
	tests := []struct {
		input   string
		outcome string
	}{
		{"y\n", "confirmed"},
		{"n\n", "refused"},
	}

	for _, tt := range tests {
		t.Run(tt.outcome, func(t *testing.T) {
			obs := &recordingObserver{}
			_, err := New(&fakeResolver{snap: sdxSnapshot()}, strings.NewReader(tt.input), io.Discard, obs).
				Confirm(context.Background(), "/dev/sdx")
			require.NoError(t, err)

			require.Len(t, obs.events, 1)
			assert.Equal(t, observe.KindDecision, obs.events[0].Kind)
			assert.Equal(t, tt.outcome, obs.events[0].Outcome)
		})
	}
}

func TestReadPromptLine_EOFWithoutNewline(t *testing.T) {
	line, err := readPromptLine(strings.NewReader("y"))
	require.NoError(t, err)
	assert.Equal(t, "y", line)
}

func TestReadPromptLine_NilReader(t *testing.T) {
	line, err := readPromptLine(nil)
	assert.ErrorIs(t, err, io.EOF)
	assert.Empty(t, line)
}
