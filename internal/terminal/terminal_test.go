package terminal

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/shenikar/safewalk/internal/controller"
	"github.com/shenikar/safewalk/internal/terminal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSurface_PrintsChanges(t *testing.T) {
	var out bytes.Buffer
	s := NewSurface(&out)

	s.SetView(37.7749, -122.4194, 15)
	s.PlaceOrMoveMarker(37.7749, -122.4194)
	s.SetCheckpointStatus("Near Store!", controller.StyleSuccess)
	s.SetStatus(controller.StatusActive, controller.StyleSuccess)
	// повтор не печатается
	s.SetStatus(controller.StatusActive, controller.StyleSuccess)
	s.SetCheckpointStatus("Near Store!", controller.StyleSuccess)

	assert.Equal(t,
		"[map] you are here: 37.774900, -122.419400\n"+
			"[checkpoint] Near Store!\n"+
			"[ok] Safe Mode Active - Tracking Location\n",
		out.String())
}

func TestSurface_StatusLevels(t *testing.T) {
	var out bytes.Buffer
	s := NewSurface(&out)

	s.SetStatus("a", controller.StyleInfo)
	s.SetStatus("b", controller.StyleWarning)
	s.SetStatus("c", controller.StyleError)

	assert.Equal(t, "[info] a\n[warn] b\n[error] c\n", out.String())
}

func TestSurface_Snapshot(t *testing.T) {
	var out bytes.Buffer
	s := NewSurface(&out)

	s.SetStatus(controller.StatusInactive, controller.StyleInfo)
	s.RemoveMarker()
	s.SetView(0, 0, 2)

	snap := s.Snapshot()
	assert.Contains(t, snap, "status:     Safe Mode Inactive")
	assert.Contains(t, snap, "checkpoint: -")
	assert.Contains(t, snap, "marker:     none")
	assert.Contains(t, snap, "zoom 2")
	// маркера не было, удалять нечего
	assert.NotContains(t, out.String(), "marker removed")
}

func TestClipboard_WriteText(t *testing.T) {
	var out bytes.Buffer
	c := NewClipboard(&out)

	require.NoError(t, c.WriteText("https://maps.google.com/?q=1,2"))

	assert.Equal(t, "https://maps.google.com/?q=1,2", c.Last())
	assert.True(t, strings.HasPrefix(out.String(), "\x1b]52;c;aHR0cHM6Ly9tYXBzLmdvb2dsZS5jb20vP3E9MSwy\a"))
	assert.Contains(t, out.String(), "[clipboard] https://maps.google.com/?q=1,2\n")
}

func newTestShell(t *testing.T) (*Shell, *mocks.MockTracker, *bytes.Buffer) {
	ctrl := gomock.NewController(t)
	tracker := mocks.NewMockTracker(ctrl)
	var out bytes.Buffer
	return NewShell(tracker, func() string { return "snapshot\n" }, &out), tracker, &out
}

func TestShell_Execute(t *testing.T) {
	shell, tracker, out := newTestShell(t)
	ctx := context.Background()

	tracker.EXPECT().Toggle(ctx).Return(nil)
	assert.False(t, shell.Execute(ctx, "toggle"))

	tracker.EXPECT().SendMessage(controller.MessageSafe).Return(nil)
	assert.False(t, shell.Execute(ctx, "safe"))

	tracker.EXPECT().SendMessage(controller.MessageHelp).Return(nil)
	assert.False(t, shell.Execute(ctx, "  HELP  "))

	tracker.EXPECT().ShareLink().Return("https://maps.google.com/?q=1,2", nil)
	assert.False(t, shell.Execute(ctx, "share"))

	tracker.EXPECT().SetContact("mom@example.com")
	assert.False(t, shell.Execute(ctx, "contact mom@example.com"))

	tracker.EXPECT().SafeMode().Return(controller.Active)
	assert.False(t, shell.Execute(ctx, "status"))

	assert.False(t, shell.Execute(ctx, ""))
	assert.True(t, shell.Execute(ctx, "quit"))

	assert.Contains(t, out.String(), "emergency contact set")
	assert.Contains(t, out.String(), "safe mode:  active\nsnapshot\n")
}

func TestShell_ExecuteErrors(t *testing.T) {
	shell, tracker, out := newTestShell(t)
	ctx := context.Background()

	tracker.EXPECT().SendMessage(controller.MessageSafe).Return(controller.ErrSafeModeInactive)
	shell.Execute(ctx, "safe")
	assert.Contains(t, out.String(), "turn safe mode on first")

	out.Reset()
	tracker.EXPECT().ShareLink().Return("", controller.ErrNoPosition)
	shell.Execute(ctx, "share")
	assert.Empty(t, out.String())

	tracker.EXPECT().Toggle(ctx).Return(errors.New("boom"))
	shell.Execute(ctx, "toggle")
	assert.Contains(t, out.String(), "error: boom")

	out.Reset()
	shell.Execute(ctx, "contact")
	assert.Contains(t, out.String(), "usage: contact <addr>")

	out.Reset()
	shell.Execute(ctx, "dance")
	assert.Contains(t, out.String(), `unknown command "dance"`)
}

func TestShell_RunUntilQuit(t *testing.T) {
	shell, tracker, out := newTestShell(t)

	tracker.EXPECT().Toggle(gomock.Any()).Return(nil).Times(1)

	err := shell.Run(context.Background(), strings.NewReader("toggle\nquit\ntoggle\n"))

	require.NoError(t, err)
	assert.Contains(t, out.String(), "commands:")
}

func TestShell_RunUntilEOF(t *testing.T) {
	shell, tracker, _ := newTestShell(t)

	tracker.EXPECT().SetContact("a@b.c")

	err := shell.Run(context.Background(), strings.NewReader("contact a@b.c"))
	assert.NoError(t, err)
}

func TestShell_RunStopsOnCancel(t *testing.T) {
	shell, _, _ := newTestShell(t)
	ctx, cancel := context.WithCancel(context.Background())

	// ввод, который никогда не заканчивается
	in, w := io.Pipe()
	defer w.Close()
	done := make(chan error, 1)
	go func() { done <- shell.Run(ctx, in) }()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
