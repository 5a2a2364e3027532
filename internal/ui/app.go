package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	oteltrace "go.opentelemetry.io/otel/trace"

	"modalpage/internal/logger"
	"modalpage/internal/trace"
)

// Fallback screen size until the first tea.WindowSizeMsg arrives.
const (
	defaultWidth  = 80
	defaultHeight = 24
	minBlockWidth = 10
)

// Options configures an AppModel.
type Options struct {
	Animate         bool
	CloseOnBackdrop bool
	Tracer          oteltrace.Tracer // nil disables spans
	Logger          *logger.Logger   // nil uses logger.Default
}

// AppModel is the view controller. It owns the modal's visibility flag and
// routes input to the page or the dialog.
type AppModel struct {
	Page       *Page
	Dialog     *Dialog
	Keys       *KeyMap
	Escape     *KeyListener
	Transition *Transition

	visible         bool
	closeOnBackdrop bool
	width, height   int
	tracer          oteltrace.Tracer
	log             *logger.Logger
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root model with the modal closed.
func NewAppModel(opts Options) *AppModel {
	keys := DefaultKeyMap()
	log := opts.Logger
	if log == nil {
		log = logger.Default
	}
	a := &AppModel{
		Page:            NewPage(keys),
		Dialog:          NewDialog(keys),
		Keys:            keys,
		Transition:      NewTransition(opts.Animate),
		closeOnBackdrop: opts.CloseOnBackdrop,
		tracer:          opts.Tracer,
		log:             log,
	}
	a.Escape = NewKeyListener(keys.Close, func() tea.Cmd {
		return a.close(TriggerEscape)
	})
	a.Dialog.Focus.OnChange = func(from, to string) {
		a.log.Debug("focus %s -> %s", from, to)
	}
	return a
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (a *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: a}
}

// Visible reports whether the modal is open.
func (a *AppModel) Visible() bool {
	return a.visible
}

// Open shows the modal. Opening an open modal does nothing.
func (a *AppModel) Open() tea.Cmd {
	return a.open(TriggerProgrammatic)
}

// Close hides the modal. Closing a closed modal does nothing.
func (a *AppModel) Close() tea.Cmd {
	return a.close(TriggerProgrammatic)
}

// Mount attaches the Escape listener.
func (a *AppModel) Mount() {
	a.Escape.Attach()
}

// Unmount detaches the Escape listener. Call once the program has exited.
func (a *AppModel) Unmount() {
	a.Escape.Detach()
}

func (a *AppModel) open(t Trigger) tea.Cmd {
	if a.visible {
		return nil
	}
	a.visible = true
	a.Page.Hovered = false
	a.Dialog.Hover = ""
	a.Dialog.Focus.SetFocus(RegionPrimary)
	a.record(trace.SpanOpen, t)
	return a.Transition.To(1)
}

func (a *AppModel) close(t Trigger) tea.Cmd {
	if !a.visible {
		return nil
	}
	a.visible = false
	a.Dialog.Hover = ""
	a.record(trace.SpanClose, t)
	return a.Transition.To(0)
}

func (a *AppModel) record(span string, t Trigger) {
	a.log.Debug("%s via %s", span, t)
	trace.RecordTransition(context.Background(), a.tracer, span, t.String())
}

// Init implements tea.Model. Mounting the model attaches the Escape listener.
func (a *appModelAdapter) Init() tea.Cmd {
	a.Mount()
	return a.Page.Init()
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.resize(msg.Width, msg.Height)
		return a, nil
	case frameMsg:
		return a, a.Transition.Step(msg)
	case OpenModalMsg:
		return a, a.open(msg.Trigger)
	case CloseModalMsg:
		return a, a.close(msg.Trigger)
	case tea.MouseMsg:
		return a, a.handleMouse(msg)
	case tea.KeyMsg:
		if key.Matches(msg, a.Keys.ForceQuit) {
			return a, tea.Quit
		}
		if consumed, cmd := a.Escape.Handle(msg); consumed {
			return a, cmd
		}
		if a.visible {
			v, cmd := a.Dialog.Update(msg)
			a.Dialog = v.(*Dialog)
			return a, cmd
		}
		if key.Matches(msg, a.Keys.Quit) {
			return a, tea.Quit
		}
		v, cmd := a.Page.Update(msg)
		a.Page = v.(*Page)
		return a, cmd
	}
	return a, nil
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	screen, _ := a.compose()
	return screen
}

// resize records the screen size and narrows the page and dialog to fit.
// Below minBlockWidth the blocks stop shrinking and compose clips them.
func (a *AppModel) resize(w, h int) {
	a.width, a.height = w, h
	a.Page.Width = min(pageWidth, max(minBlockWidth, w))
	a.Dialog.Width = min(dialogWidth, max(minBlockWidth-2, w-2))
}

func (a *AppModel) size() (int, int) {
	w, h := a.width, a.height
	if w <= 0 {
		w = defaultWidth
	}
	if h <= 0 {
		h = defaultHeight
	}
	return w, h
}

// compose renders the full screen and the hit map that matches it.
// While closed (including during the exit transition) only page regions are
// live; while open the backdrop, dialog body and dialog buttons are.
func (a *AppModel) compose() (string, *HitMap) {
	w, h := a.size()
	hits := NewHitMap()

	page, pageRegions := a.Page.Render()
	px, py := CenterOf(w, h, page)
	screen := Splice(Canvas(w, h), page, px, py)

	progress := a.Transition.Progress()
	if !a.visible && progress == 0 {
		for _, r := range pageRegions {
			hits.Add(Region{ID: r.ID, Rect: r.Rect.Offset(px, py)})
		}
		return Clip(screen, w), hits
	}

	backdrop := Styles.Backdrop
	if progress < 0.5 {
		backdrop = Styles.BackdropFaint
	}
	screen = Dim(screen, backdrop)

	box, dialogRegions := a.Dialog.Render()
	dx, dy := CenterOf(w, h, box)
	dy += a.Transition.Rise()
	screen = Splice(screen, box, dx, dy)

	if a.visible {
		hits.AddRect(RegionBackdrop, 0, 0, w, h)
		bw, bh := lipgloss.Size(box)
		hits.AddRect(RegionDialog, dx, dy, bw, bh)
		for _, r := range dialogRegions {
			hits.Add(Region{ID: r.ID, Rect: r.Rect.Offset(dx, dy)})
		}
	} else {
		for _, r := range pageRegions {
			hits.Add(Region{ID: r.ID, Rect: r.Rect.Offset(px, py)})
		}
	}
	return Clip(screen, w), hits
}

// handleMouse hit-tests the event against the current frame.
func (a *AppModel) handleMouse(msg tea.MouseMsg) tea.Cmd {
	_, hits := a.compose()
	id := ""
	if r := hits.Test(msg.X, msg.Y); r != nil {
		id = r.ID
	}

	switch {
	case msg.Action == tea.MouseActionMotion:
		a.hover(id)
		return nil
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		return a.click(id)
	}
	return nil
}

func (a *AppModel) hover(id string) {
	a.Page.Hovered = id == RegionOpen
	switch id {
	case RegionClose, RegionPrimary, RegionSecondary:
		a.Dialog.Hover = id
	default:
		a.Dialog.Hover = ""
	}
}

func (a *AppModel) click(id string) tea.Cmd {
	switch id {
	case RegionOpen:
		return a.open(TriggerOpenButton)
	case RegionClose, RegionPrimary, RegionSecondary:
		return a.close(triggerForRegion(id))
	case RegionBackdrop:
		if a.closeOnBackdrop {
			return a.close(TriggerBackdrop)
		}
	}
	// RegionDialog and empty space swallow the click.
	return nil
}
