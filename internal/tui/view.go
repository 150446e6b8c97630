package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// layout holds screen coordinates shared by View and mouse hit testing.
type layout struct {
	width       int // container width
	left        int // container offset from the left edge of the terminal
	headerRow   int
	inputRow    int
	listRow     int
	listRows    int
	fieldWidth  int
	buttonStart int // relative to the container
}

// rows under the list: blank, status, help
const footerRows = 3

func (a *App) layout() layout {
	w := a.width
	if a.cfg.MaxWidth > 0 && (w == 0 || w > a.cfg.MaxWidth) {
		w = a.cfg.MaxWidth
	}
	if w <= 0 {
		w = defaultWidth
	}
	l := layout{width: w}
	if a.width > w {
		l.left = (a.width - w) / 2
	}
	pad := a.cfg.TopPaddingRows()
	l.headerRow = pad
	l.inputRow = pad + 2
	l.listRow = pad + 4
	l.listRows = len(a.tasks)
	if a.height > 0 {
		l.listRows = max(a.height-l.listRow-footerRows, 1)
	}
	l.fieldWidth = max(w-lipgloss.Width(addButtonLabel)-1, 1)
	l.buttonStart = l.fieldWidth + 1
	return l
}

func (a *App) View() string {
	l := a.layout()
	lines := make([]string, 0, l.listRow+l.listRows+footerRows)
	for i := 0; i < l.headerRow; i++ {
		lines = append(lines, "")
	}
	lines = append(lines,
		titleStyle.Width(l.width).Render(ansi.Truncate(a.cfg.Title, l.width, "…")),
		"",
		a.renderInputRow(l),
		ruleStyle.Render(strings.Repeat("─", l.width)),
	)
	lines = append(lines, a.renderTasks(l)...)
	lines = append(lines,
		"",
		statusStyle.Render(fmt.Sprintf("%d tasks, %d done", len(a.tasks), a.tasks.Completed())),
		a.renderHelp(),
	)
	body := lipgloss.JoinVertical(lipgloss.Left, lines...)
	if a.width > l.width {
		body = lipgloss.PlaceHorizontal(a.width, lipgloss.Center, lipgloss.NewStyle().Width(l.width).Render(body))
	}
	return body
}

func (a *App) renderInputRow(l layout) string {
	field := inputStyle.Width(l.fieldWidth).MaxWidth(l.fieldWidth).Render(a.input.View())
	return field + " " + addButtonStyle.Render(addButtonLabel)
}

func (a *App) renderTasks(l layout) []string {
	rows := make([]string, 0, l.listRows)
	end := min(a.offset+l.listRows, len(a.tasks))
	for i := a.offset; i < end; i++ {
		t := a.tasks[i]
		marker := "  "
		if a.focus == focusList && i == a.cursor {
			marker = cursorStyle.Render(cursorMarker)
		}
		box := checkboxOff
		desc := taskStyle
		if t.Completed {
			box = checkboxOn
			desc = doneStyle
		}
		avail := max(l.width-lipgloss.Width(cursorMarker)-lipgloss.Width(box)-1, 1)
		text := ansi.Truncate(singleLine(t.Description), avail, "…")
		rows = append(rows, marker+checkboxStyle.Render(box)+" "+desc.Render(text))
	}
	if len(a.tasks) == 0 {
		rows = append(rows, statusStyle.Render("  (no tasks yet)"))
	}
	for len(rows) < l.listRows && a.height > 0 {
		rows = append(rows, "")
	}
	return rows
}

func (a *App) renderHelp() string {
	if a.focus == focusInput {
		return a.help.View(a.keys.inputHelp())
	}
	return a.help.View(a.keys.listHelp())
}

// singleLine keeps each task on one terminal row.
func singleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
