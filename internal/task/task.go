package task

import (
	"errors"
	"slices"
	"strings"

	"github.com/google/uuid"
)

// ErrBlankDescription is returned by Validate for empty or whitespace-only text.
var ErrBlankDescription = errors.New("task description is blank")

// Task is a single to-do entry.
type Task struct {
	ID          string
	Description string
	Completed   bool
}

// List is an ordered task list. Operations return a new List and leave the receiver untouched.
type List []Task

// IDFunc returns a fresh task id.
type IDFunc func() string

// NewID is the default id source.
func NewID() string { return uuid.NewString() }

// Seed returns the tasks present when the screen first opens.
func Seed() List {
	return List{
		{ID: "1", Description: "Learn React Native"},
		{ID: "2", Description: "Build a TODO app"},
		{ID: "3", Description: "Submit assignment"},
		{ID: "4", Description: "Publish on GitHub Pages"},
	}
}

// Validate rejects blank descriptions.
func Validate(description string) error {
	if strings.TrimSpace(description) == "" {
		return ErrBlankDescription
	}
	return nil
}

// Add appends a new incomplete task. Blank descriptions are ignored and reported as false.
// The description is kept as typed.
func (l List) Add(description string, newID IDFunc) (List, bool) {
	if Validate(description) != nil {
		return l, false
	}
	if newID == nil {
		newID = NewID
	}
	id := newID()
	for id == "" || l.Index(id) >= 0 {
		id = NewID()
	}
	out := make(List, len(l), len(l)+1)
	copy(out, l)
	return append(out, Task{ID: id, Description: description}), true
}

// Toggle flips Completed on the task with the given id. Unknown ids leave the list as is.
func (l List) Toggle(id string) (List, bool) {
	idx := l.Index(id)
	if idx < 0 {
		return l, false
	}
	out := slices.Clone(l)
	out[idx].Completed = !out[idx].Completed
	return out, true
}

// Index returns the position of id or -1.
func (l List) Index(id string) int {
	return slices.IndexFunc(l, func(t Task) bool { return t.ID == id })
}

// Completed counts finished tasks.
func (l List) Completed() int {
	n := 0
	for _, t := range l {
		if t.Completed {
			n++
		}
	}
	return n
}
