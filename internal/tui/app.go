package tui

import (
	"io"
	"log"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/todolist/internal/config"
	"github.com/jask/todolist/internal/task"
)

type focusArea int

const (
	focusInput focusArea = iota
	focusList
)

// App is the task list screen.
type App struct {
	cfg    config.UIConfig
	tasks  task.List
	input  textinput.Model
	keys   keyMap
	help   help.Model
	focus  focusArea
	cursor int
	offset int
	width  int
	height int
	newID  task.IDFunc
	logger *log.Logger
}

// Option customises a new App.
type Option func(*App)

// WithTasks replaces the seed tasks.
func WithTasks(tasks task.List) Option {
	return func(a *App) { a.tasks = tasks }
}

// WithIDFunc sets the id source for new tasks.
func WithIDFunc(fn task.IDFunc) Option {
	return func(a *App) { a.newID = fn }
}

// WithLogger sets the debug logger.
func WithLogger(l *log.Logger) Option {
	return func(a *App) { a.logger = l }
}

func New(cfg config.UIConfig, opts ...Option) *App {
	in := textinput.New()
	in.Placeholder = cfg.Placeholder
	in.Prompt = "› "
	in.Focus()

	a := &App{
		cfg:    cfg,
		tasks:  task.Seed(),
		input:  in,
		keys:   defaultKeyMap(),
		help:   help.New(),
		focus:  focusInput,
		newID:  task.NewID,
		logger: log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.resize()
	return a
}

func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

// Tasks returns the current list.
func (a *App) Tasks() task.List { return a.tasks }

// DraftText returns the add-task field contents.
func (a *App) DraftText() string { return a.input.Value() }

// SetDraftText replaces the add-task field contents verbatim.
func (a *App) SetDraftText(text string) {
	a.input.SetValue(text)
}

// AddTask appends the draft as a new task and clears the field. Blank drafts are ignored.
func (a *App) AddTask() bool {
	next, ok := a.tasks.Add(a.input.Value(), a.newID)
	if !ok {
		return false
	}
	a.tasks = next
	added := next[len(next)-1]
	a.logger.Printf("add task id=%s description=%q", added.ID, added.Description)
	a.input.SetValue("")
	a.cursor = len(a.tasks) - 1
	a.scrollToCursor()
	return true
}

// ToggleTask flips the completed flag of the task with id. Unknown ids are ignored.
func (a *App) ToggleTask(id string) bool {
	next, ok := a.tasks.Toggle(id)
	if !ok {
		return false
	}
	a.tasks = next
	a.logger.Printf("toggle task id=%s completed=%t", id, next[next.Index(id)].Completed)
	return true
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		a.resize()
		return a, nil
	case tea.MouseMsg:
		return a.handleMouse(m)
	case tea.KeyMsg:
		if key.Matches(m, a.keys.Quit) {
			return a, tea.Quit
		}
		if key.Matches(m, a.keys.Focus) {
			return a, a.switchFocus()
		}
		if a.focus == focusInput {
			return a.handleInputKey(m)
		}
		return a.handleListKey(m)
	}
	if a.focus == focusInput {
		var cmd tea.Cmd
		a.input, cmd = a.input.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a *App) handleInputKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, a.keys.Submit):
		a.AddTask()
		return a, nil
	case m.Type == tea.KeyEsc:
		return a, a.setFocus(focusList)
	}
	var cmd tea.Cmd
	a.input, cmd = a.input.Update(m)
	return a, cmd
}

func (a *App) handleListKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, a.keys.Back):
		return a, tea.Quit
	case key.Matches(m, a.keys.Up):
		a.moveCursor(-1)
	case key.Matches(m, a.keys.Down):
		a.moveCursor(1)
	case key.Matches(m, a.keys.Top):
		a.moveCursor(-len(a.tasks))
	case key.Matches(m, a.keys.Bottom):
		a.moveCursor(len(a.tasks))
	case key.Matches(m, a.keys.Toggle):
		if t, ok := a.selected(); ok {
			a.ToggleTask(t.ID)
		}
	}
	return a, nil
}

func (a *App) handleMouse(m tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch m.Button {
	case tea.MouseButtonWheelUp:
		a.moveCursor(-1)
		return a, nil
	case tea.MouseButtonWheelDown:
		a.moveCursor(1)
		return a, nil
	}
	if m.Action != tea.MouseActionPress || m.Button != tea.MouseButtonLeft {
		return a, nil
	}
	l := a.layout()
	switch {
	case m.Y == l.inputRow:
		x := m.X - l.left
		if x >= l.buttonStart && x < l.buttonStart+lipgloss.Width(addButtonLabel) {
			a.AddTask()
			return a, nil
		}
		return a, a.setFocus(focusInput)
	case m.Y >= l.listRow && m.Y < l.listRow+l.listRows:
		idx := a.offset + m.Y - l.listRow
		if idx >= len(a.tasks) {
			return a, nil
		}
		a.cursor = idx
		a.ToggleTask(a.tasks[idx].ID)
	}
	return a, nil
}

func (a *App) switchFocus() tea.Cmd {
	if a.focus == focusInput {
		return a.setFocus(focusList)
	}
	return a.setFocus(focusInput)
}

func (a *App) setFocus(f focusArea) tea.Cmd {
	a.focus = f
	if f == focusInput {
		return a.input.Focus()
	}
	a.input.Blur()
	return nil
}

func (a *App) selected() (task.Task, bool) {
	if a.cursor < 0 || a.cursor >= len(a.tasks) {
		return task.Task{}, false
	}
	return a.tasks[a.cursor], true
}

func (a *App) moveCursor(delta int) {
	if len(a.tasks) == 0 {
		a.cursor = 0
		return
	}
	a.cursor = min(max(a.cursor+delta, 0), len(a.tasks)-1)
	a.scrollToCursor()
}

func (a *App) scrollToCursor() {
	rows := a.layout().listRows
	if a.cursor < a.offset {
		a.offset = a.cursor
	}
	if a.cursor >= a.offset+rows {
		a.offset = a.cursor - rows + 1
	}
	a.offset = max(min(a.offset, len(a.tasks)-rows), 0)
}

func (a *App) resize() {
	l := a.layout()
	a.input.Width = max(l.fieldWidth-lipgloss.Width(a.input.Prompt)-1, 1)
	a.help.Width = l.width
	a.scrollToCursor()
}
