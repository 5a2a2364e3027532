package ui

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"modalpage/internal/logger"
	"modalpage/internal/trace"
)

const dialogTitle = "Important Update"

// newTestApp returns a mounted app on a 100x40 screen.
func newTestApp(t *testing.T, opts Options) (*AppModel, *appModelAdapter) {
	t.Helper()
	a := NewAppModel(opts)
	adapter := a.AsTeaModel().(*appModelAdapter)
	adapter.Init()
	adapter.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return a, adapter
}

func staticOptions() Options {
	return Options{Animate: false, CloseOnBackdrop: true}
}

func leftClick(adapter *appModelAdapter, x, y int) tea.Cmd {
	_, cmd := adapter.Update(tea.MouseMsg{
		X:      x,
		Y:      y,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
	return cmd
}

// regionCenter returns the middle cell of a region in the current frame.
func regionCenter(t *testing.T, a *AppModel, id string) (int, int) {
	t.Helper()
	_, hits := a.compose()
	r, ok := hits.Find(id)
	require.True(t, ok, "region %q not in current frame", id)
	return r.Rect.X + r.Rect.W/2, r.Rect.Y + r.Rect.H/2
}

func clickRegion(t *testing.T, a *AppModel, adapter *appModelAdapter, id string) tea.Cmd {
	t.Helper()
	x, y := regionCenter(t, a, id)
	return leftClick(adapter, x, y)
}

// runCmd feeds the message produced by cmd back into the adapter.
func runCmd(adapter *appModelAdapter, cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	if msg := cmd(); msg != nil {
		adapter.Update(msg)
	}
}

func TestApp_InitialRender(t *testing.T) {
	a, adapter := newTestApp(t, staticOptions())

	assert.False(t, a.Visible())
	view := adapter.View()
	assert.Contains(t, view, "Interactive Modal")
	assert.Contains(t, view, "Open Modal")
	assert.NotContains(t, view, dialogTitle)
}

func TestApp_OpenShowsDialogAndBackdrop(t *testing.T) {
	a, adapter := newTestApp(t, staticOptions())

	a.Open()
	require.True(t, a.Visible())

	view := adapter.View()
	assert.Contains(t, view, dialogTitle)
	assert.Contains(t, view, "Got it, thanks!")
	assert.Contains(t, view, "Remind me later")

	_, hits := a.compose()
	_, ok := hits.Find(RegionBackdrop)
	assert.True(t, ok, "backdrop region should be live while open")
	_, ok = hits.Find(RegionOpen)
	assert.False(t, ok, "page button is covered by the backdrop")
}

func TestApp_CloseTriggers(t *testing.T) {
	tests := []struct {
		name  string
		close func(t *testing.T, a *AppModel, adapter *appModelAdapter)
	}{
		{"close button", func(t *testing.T, a *AppModel, adapter *appModelAdapter) {
			runCmd(adapter, clickRegion(t, a, adapter, RegionClose))
		}},
		{"backdrop", func(t *testing.T, a *AppModel, adapter *appModelAdapter) {
			runCmd(adapter, leftClick(adapter, 0, 0))
		}},
		{"primary button", func(t *testing.T, a *AppModel, adapter *appModelAdapter) {
			runCmd(adapter, clickRegion(t, a, adapter, RegionPrimary))
		}},
		{"secondary button", func(t *testing.T, a *AppModel, adapter *appModelAdapter) {
			runCmd(adapter, clickRegion(t, a, adapter, RegionSecondary))
		}},
		{"escape key", func(t *testing.T, a *AppModel, adapter *appModelAdapter) {
			_, cmd := adapter.Update(keyMsg("esc"))
			runCmd(adapter, cmd)
		}},
		{"enter on focused primary", func(t *testing.T, a *AppModel, adapter *appModelAdapter) {
			_, cmd := adapter.Update(keyMsg("enter"))
			runCmd(adapter, cmd)
		}},
		{"tab then enter on secondary", func(t *testing.T, a *AppModel, adapter *appModelAdapter) {
			adapter.Update(keyMsg("tab"))
			require.Equal(t, RegionSecondary, a.Dialog.Focus.Current)
			_, cmd := adapter.Update(keyMsg("enter"))
			runCmd(adapter, cmd)
		}},
		{"shift+tab then space on close", func(t *testing.T, a *AppModel, adapter *appModelAdapter) {
			adapter.Update(keyMsg("shift+tab"))
			require.Equal(t, RegionClose, a.Dialog.Focus.Current)
			_, cmd := adapter.Update(keyMsg(" "))
			runCmd(adapter, cmd)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, adapter := newTestApp(t, staticOptions())
			a.Open()
			require.True(t, a.Visible())

			tt.close(t, a, adapter)

			assert.False(t, a.Visible())
			assert.NotContains(t, adapter.View(), dialogTitle)
		})
	}
}

func TestApp_Idempotence(t *testing.T) {
	a, _ := newTestApp(t, staticOptions())

	assert.Nil(t, a.Close(), "close while closed is a no-op")
	assert.False(t, a.Visible())

	a.Open()
	assert.Nil(t, a.Open(), "open while open is a no-op")
	assert.True(t, a.Visible())

	a.Close()
	a.Close()
	assert.False(t, a.Visible())
}

func TestApp_EscapeWhileClosedDoesNothing(t *testing.T) {
	a, adapter := newTestApp(t, staticOptions())

	_, cmd := adapter.Update(keyMsg("esc"))
	assert.Nil(t, cmd, "esc must not quit or schedule anything while closed")
	assert.False(t, a.Visible())
	assert.Contains(t, adapter.View(), "Open Modal")
}

func TestApp_OpenCloseScenario(t *testing.T) {
	a, adapter := newTestApp(t, staticOptions())

	runCmd(adapter, clickRegion(t, a, adapter, RegionOpen))
	require.True(t, a.Visible())
	assert.Contains(t, adapter.View(), dialogTitle)

	_, cmd := adapter.Update(keyMsg("esc"))
	runCmd(adapter, cmd)
	assert.False(t, a.Visible())
	assert.NotContains(t, adapter.View(), dialogTitle)
}

func TestApp_KeyboardOpen(t *testing.T) {
	for _, k := range []string{"enter", " ", "o"} {
		t.Run(k, func(t *testing.T) {
			a, adapter := newTestApp(t, staticOptions())
			_, cmd := adapter.Update(keyMsg(k))
			require.NotNil(t, cmd)
			runCmd(adapter, cmd)
			assert.True(t, a.Visible())
			assert.Equal(t, RegionPrimary, a.Dialog.Focus.Current, "primary is focused on open")
		})
	}
}

func TestApp_FocusResetsOnReopen(t *testing.T) {
	a, adapter := newTestApp(t, staticOptions())
	a.Open()
	adapter.Update(keyMsg("tab"))
	require.Equal(t, RegionSecondary, a.Dialog.Focus.Current)
	a.Close()
	a.Open()
	assert.Equal(t, RegionPrimary, a.Dialog.Focus.Current)
}

func TestApp_DialogBodyClickKeepsOpen(t *testing.T) {
	a, adapter := newTestApp(t, staticOptions())
	a.Open()

	_, hits := a.compose()
	body, ok := hits.Find(RegionDialog)
	require.True(t, ok)
	// Title row, away from every button.
	x, y := body.Rect.X+2, body.Rect.Y+6
	require.Equal(t, RegionDialog, hits.Test(x, y).ID)

	assert.Nil(t, leftClick(adapter, x, y))
	assert.True(t, a.Visible())
}

func TestApp_BackdropClickDisabled(t *testing.T) {
	a, adapter := newTestApp(t, Options{Animate: false, CloseOnBackdrop: false})
	a.Open()

	leftClick(adapter, 0, 0)
	assert.True(t, a.Visible())

	runCmd(adapter, clickRegion(t, a, adapter, RegionClose))
	assert.False(t, a.Visible())
}

func TestApp_NonLeftClicksIgnored(t *testing.T) {
	a, adapter := newTestApp(t, staticOptions())
	x, y := regionCenter(t, a, RegionOpen)

	adapter.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})
	adapter.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	assert.False(t, a.Visible())
}

func TestApp_Hover(t *testing.T) {
	a, adapter := newTestApp(t, staticOptions())

	x, y := regionCenter(t, a, RegionOpen)
	adapter.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion})
	assert.True(t, a.Page.Hovered)

	adapter.Update(tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionMotion})
	assert.False(t, a.Page.Hovered)

	a.Open()
	x, y = regionCenter(t, a, RegionSecondary)
	adapter.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion})
	assert.Equal(t, RegionSecondary, a.Dialog.Hover)

	adapter.Update(tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionMotion})
	assert.Empty(t, a.Dialog.Hover)
}

func TestApp_EscapeListenerLifecycle(t *testing.T) {
	a := NewAppModel(staticOptions())
	adapter := a.AsTeaModel().(*appModelAdapter)

	// Not mounted yet: the listener is detached.
	a.Open()
	adapter.Update(keyMsg("esc"))
	assert.True(t, a.Visible(), "esc before mount should not close")

	adapter.Init()
	require.True(t, a.Escape.Attached())
	adapter.Update(keyMsg("esc"))
	assert.False(t, a.Visible())

	a.Unmount()
	assert.False(t, a.Escape.Attached())
	a.Open()
	adapter.Update(keyMsg("esc"))
	assert.True(t, a.Visible(), "esc after unmount should not close")
}

func TestApp_Quit(t *testing.T) {
	a, adapter := newTestApp(t, staticOptions())

	_, cmd := adapter.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	// q belongs to the page; while the dialog is open it is ignored.
	a.Open()
	_, cmd = adapter.Update(keyMsg("q"))
	assert.Nil(t, cmd)
	assert.True(t, a.Visible())

	_, cmd = adapter.Update(keyMsg("ctrl+c"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestApp_DefaultSizeBeforeWindowMsg(t *testing.T) {
	a := NewAppModel(staticOptions())
	adapter := a.AsTeaModel().(*appModelAdapter)

	lines := strings.Split(adapter.View(), "\n")
	assert.Len(t, lines, defaultHeight)
}

func TestApp_ExitTransition(t *testing.T) {
	a, adapter := newTestApp(t, Options{Animate: true, CloseOnBackdrop: true})

	cmd := a.Open()
	require.NotNil(t, cmd, "animated open schedules frames")
	settle(t, a, adapter)
	assert.Equal(t, 1.0, a.Transition.Progress())
	assert.Equal(t, 0, a.Transition.Rise())

	a.Close()
	assert.False(t, a.Visible(), "visibility flips before the animation")
	assert.Contains(t, adapter.View(), dialogTitle, "dialog fades out over a few frames")

	_, hits := a.compose()
	_, ok := hits.Find(RegionPrimary)
	assert.False(t, ok, "exiting dialog must not take clicks")
	_, ok = hits.Find(RegionOpen)
	assert.True(t, ok, "page button is live again during exit")

	settle(t, a, adapter)
	assert.Equal(t, 0.0, a.Transition.Progress())
	assert.NotContains(t, adapter.View(), dialogTitle)
}

// settle feeds frames until the transition stops.
func settle(t *testing.T, a *AppModel, adapter *appModelAdapter) {
	t.Helper()
	for i := 0; a.Transition.Animating(); i++ {
		require.Less(t, i, 1000, "transition did not settle")
		adapter.Update(frameMsg{id: a.Transition.id})
	}
}

func TestApp_TracesVisibilityChanges(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	opts := staticOptions()
	opts.Tracer = tp.Tracer("test")
	a, adapter := newTestApp(t, opts)

	runCmd(adapter, clickRegion(t, a, adapter, RegionOpen))
	a.Open()
	runCmd(adapter, leftClick(adapter, 0, 0))
	a.Close()

	spans := rec.Ended()
	require.Len(t, spans, 2, "idempotent calls must not emit spans")
	assert.Equal(t, trace.SpanOpen, spans[0].Name())
	assert.Contains(t, spans[0].Attributes(), attribute.String(trace.AttrTrigger, "open-button"))
	assert.Equal(t, trace.SpanClose, spans[1].Name())
	assert.Contains(t, spans[1].Attributes(), attribute.String(trace.AttrTrigger, "backdrop"))
}

func TestApp_NarrowTerminal(t *testing.T) {
	a, adapter := newTestApp(t, staticOptions())
	adapter.Update(tea.WindowSizeMsg{Width: 40, Height: 30})

	assert.Equal(t, 40, a.Page.Width)
	assert.Equal(t, 38, a.Dialog.Width)

	a.Open()
	runCmd(adapter, clickRegion(t, a, adapter, RegionSecondary))
	assert.False(t, a.Visible(), "buttons stay clickable on a narrow screen")

	adapter.Update(tea.WindowSizeMsg{Width: 4, Height: 30})
	assert.Equal(t, minBlockWidth, a.Page.Width)
	assertFitsWidth(t, adapter.View(), 4)
}

func TestApp_VeryNarrowTerminalKeepsEveryTriggerOnScreen(t *testing.T) {
	const w, h = 12, 60
	for _, id := range []string{RegionClose, RegionPrimary, RegionSecondary} {
		t.Run(id, func(t *testing.T) {
			a, adapter := newTestApp(t, staticOptions())
			adapter.Update(tea.WindowSizeMsg{Width: w, Height: h})
			a.Open()

			assertFitsWidth(t, adapter.View(), w)
			_, hits := a.compose()
			r, ok := hits.Find(id)
			require.True(t, ok)
			assert.LessOrEqual(t, r.Rect.X+r.Rect.W, w, "region %s off screen", id)
			assert.Equal(t, 1, r.Rect.H)

			runCmd(adapter, clickRegion(t, a, adapter, id))
			assert.False(t, a.Visible())
		})
	}
}

func assertFitsWidth(t *testing.T, view string, w int) {
	t.Helper()
	for i, line := range strings.Split(view, "\n") {
		assert.LessOrEqual(t, ansi.StringWidth(line), w, "row %d wider than screen", i)
	}
}

func TestApp_LogsTransitionsAtDebug(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.LevelDebug)
	log.SetOutput(&buf)

	a, adapter := newTestApp(t, Options{Logger: log})
	runCmd(adapter, clickRegion(t, a, adapter, RegionOpen))
	_, cmd := adapter.Update(keyMsg("esc"))
	runCmd(adapter, cmd)

	out := buf.String()
	assert.Contains(t, out, "modal.open via open-button")
	assert.Contains(t, out, "modal.close via escape")
}
