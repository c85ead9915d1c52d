package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/linecull/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/linecull/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/linecull/internal/core/domain"
	"github.com/custodia-labs/linecull/internal/core/ports/driving"
)

// phase tracks where the review flow currently is.
type phase int

const (
	// phaseReviewing shows the doomed lines and waits for a decision.
	phaseReviewing phase = iota
	// phaseRunning executes the removal.
	phaseRunning
	// phaseDone holds the finished run until the program exits.
	phaseDone
	// phaseAborted means the user walked away without touching the document.
	phaseAborted
)

// cleanCompleted carries the finished run back to the model.
type cleanCompleted struct {
	result *domain.RemovalResult
	err    error
}

// App is the review screen following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
//
// The screen lists every line that would be removed, lets the user scroll
// through them, and only mutates the document after an explicit confirm.
// After the program exits the caller reads the outcome via Result and Err.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// keys holds the active keybindings.
	keys *keymap.KeyMap

	// request is the removal that will run on confirm.
	request driving.CleanRequest

	// preview is the computed plan being reviewed.
	preview *driving.CleanPreview

	// phase tracks the review flow state.
	phase phase

	// cursor is the highlighted doomed line.
	cursor int

	// offset is the first visible doomed line (scroll position).
	offset int

	// result holds the finished run, once there is one.
	result *domain.RemovalResult

	// err holds the run error, if the removal failed.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates the first WindowSizeMsg has arrived.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new review screen for the given request and preview.
func NewApp(ports *Ports, request driving.CleanRequest, preview *driving.CleanPreview) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}
	if preview == nil {
		return nil, ErrMissingPreview
	}

	return &App{
		ports:   ports,
		ctx:     context.Background(),
		styles:  styles.DefaultStyles(),
		keys:    keymap.DefaultKeyMap(),
		request: request,
		preview: preview,
		phase:   phaseReviewing,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Done reports whether the removal ran to completion.
func (a *App) Done() bool {
	return a.phase == phaseDone
}

// Aborted reports whether the user cancelled the review.
func (a *App) Aborted() bool {
	return a.phase == phaseAborted
}

// Result returns the finished run, or nil if none ran.
func (a *App) Result() *domain.RemovalResult {
	return a.result
}

// Err returns the run error, if any.
func (a *App) Err() error {
	return a.err
}

// Cursor returns the index of the highlighted doomed line.
func (a *App) Cursor() int {
	return a.cursor
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("linecull - Review"),
	)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.clampScroll()
		return a, nil

	case cleanCompleted:
		a.phase = phaseDone
		a.result = msg.result
		a.err = msg.err
		return a, tea.Quit

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			if a.phase == phaseReviewing {
				a.phase = phaseAborted
			}
			return a, tea.Quit
		}

		// Ignore keys while the removal is running
		if a.phase != phaseReviewing {
			return a, nil
		}

		switch {
		case keymap.Matches(msg.String(), a.keys.Up):
			a.moveCursor(-1)
			return a, nil

		case keymap.Matches(msg.String(), a.keys.Down):
			a.moveCursor(1)
			return a, nil

		case keymap.Matches(msg.String(), a.keys.Confirm):
			a.phase = phaseRunning
			return a, a.runClean()

		case keymap.Matches(msg.String(), a.keys.Cancel),
			keymap.Matches(msg.String(), a.keys.Quit):
			a.phase = phaseAborted
			return a, tea.Quit
		}
	}

	return a, nil
}

// runClean executes the removal off the event loop.
func (a *App) runClean() tea.Cmd {
	return func() tea.Msg {
		result, err := a.ports.Clean.Clean(a.ctx, a.request)
		return cleanCompleted{result: result, err: err}
	}
}

// moveCursor shifts the highlight and keeps it inside the visible window.
func (a *App) moveCursor(delta int) {
	a.cursor += delta
	if a.cursor < 0 {
		a.cursor = 0
	}
	if maxIdx := len(a.preview.Doomed) - 1; a.cursor > maxIdx {
		a.cursor = maxIdx
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
	a.clampScroll()
}

// clampScroll keeps the cursor inside the visible window.
func (a *App) clampScroll() {
	visible := a.visibleRows()
	if a.cursor < a.offset {
		a.offset = a.cursor
	}
	if a.cursor >= a.offset+visible {
		a.offset = a.cursor - visible + 1
	}
	if a.offset < 0 {
		a.offset = 0
	}
}

// visibleRows is how many doomed lines fit between header and help line.
func (a *App) visibleRows() int {
	rows := a.height - 6
	if rows < 3 {
		rows = 3
	}
	return rows
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Loading..."
	}

	switch a.phase {
	case phaseRunning:
		return a.styles.Normal.Render(
			fmt.Sprintf("Removing %d lines from %s...", a.preview.LinesRemoved(), a.preview.DocumentPath))
	case phaseDone, phaseAborted:
		// The caller prints the outcome after the program exits.
		return ""
	case phaseReviewing:
	}

	var b strings.Builder

	b.WriteString(a.styles.Title.Render("Review removal: " + a.preview.DocumentPath))
	b.WriteString("\n")
	summary := fmt.Sprintf("%d lines -> %d lines, removing %d",
		a.preview.OriginalLineCount, a.preview.FinalLineCount, a.preview.LinesRemoved())
	if a.preview.OutOfRangeDropped > 0 {
		summary += fmt.Sprintf(" (%d out-of-range dropped)", a.preview.OutOfRangeDropped)
	}
	b.WriteString(a.styles.Subtitle.Render(summary))
	b.WriteString("\n\n")

	if len(a.preview.Doomed) == 0 {
		b.WriteString(a.styles.Muted.Render("No lines will be removed."))
		b.WriteString("\n")
	} else {
		b.WriteString(a.renderDoomed())
	}

	b.WriteString("\n")
	b.WriteString(a.styles.Help.Render("y confirm • esc cancel • ↑/k ↓/j move • ctrl+c quit"))

	return b.String()
}

// renderDoomed renders the visible window of lines marked for removal.
func (a *App) renderDoomed() string {
	doomed := a.preview.Doomed
	visible := a.visibleRows()

	end := a.offset + visible
	if end > len(doomed) {
		end = len(doomed)
	}

	gutter := len(fmt.Sprintf("%d", doomed[len(doomed)-1].Number))

	var b strings.Builder
	for i := a.offset; i < end; i++ {
		line := doomed[i]
		number := a.styles.LineNumber.Render(fmt.Sprintf("%*d", gutter, line.Number))
		text := a.truncate(line.Text, gutter)

		if i == a.cursor {
			b.WriteString(a.styles.Selected.Render(fmt.Sprintf("%*d │ %s", gutter, line.Number, text)))
		} else {
			b.WriteString(number)
			b.WriteString(a.styles.Muted.Render(" │ "))
			b.WriteString(a.styles.Doomed.Render(text))
		}
		b.WriteString("\n")
	}

	if end < len(doomed) {
		b.WriteString(a.styles.Muted.Render(fmt.Sprintf("… %d more", len(doomed)-end)))
		b.WriteString("\n")
	}

	return b.String()
}

// truncate trims line text so the row fits the terminal width.
func (a *App) truncate(text string, gutter int) string {
	budget := a.width - gutter - 4
	if budget <= 0 || len(text) <= budget {
		return text
	}
	if budget <= 1 {
		return "…"
	}
	return text[:budget-1] + "…"
}
