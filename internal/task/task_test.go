package task

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func sequentialIDs(prefix string) IDFunc {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s%d", prefix, n)
	}
}

func TestSeed(t *testing.T) {
	t.Parallel()

	seed := Seed()
	require.Len(t, seed, 4)
	want := []string{"Learn React Native", "Build a TODO app", "Submit assignment", "Publish on GitHub Pages"}
	for i, tk := range seed {
		require.Equal(t, want[i], tk.Description)
		require.False(t, tk.Completed)
	}
	require.Zero(t, seed.Completed())
}

func TestAddRejectsBlank(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"", "   ", "\t\n"} {
		seed := Seed()
		out, ok := seed.Add(in, sequentialIDs("n"))
		require.False(t, ok, "input %q", in)
		require.Equal(t, Seed(), out)
		require.ErrorIs(t, Validate(in), ErrBlankDescription)
	}
}

func TestAddAppends(t *testing.T) {
	t.Parallel()

	seed := Seed()
	out, ok := seed.Add("Buy milk", sequentialIDs("n"))
	require.True(t, ok)
	require.Len(t, out, len(seed)+1)
	require.Equal(t, Task{ID: "n1", Description: "Buy milk"}, out[len(out)-1])
	require.Equal(t, Seed(), seed, "receiver must not change")
	require.Equal(t, seed, out[:len(seed)])
}

func TestAddKeepsIDsUnique(t *testing.T) {
	t.Parallel()

	out, ok := Seed().Add("Dup", func() string { return "1" })
	require.True(t, ok)
	last := out[len(out)-1]
	require.NotEqual(t, "1", last.ID)
	require.NotEmpty(t, last.ID)

	out, ok = out.Add("Default ids", nil)
	require.True(t, ok)
	seen := map[string]bool{}
	for _, tk := range out {
		require.False(t, seen[tk.ID], "duplicate id %s", tk.ID)
		seen[tk.ID] = true
	}
}

func TestToggle(t *testing.T) {
	t.Parallel()

	seed := Seed()
	once, ok := seed.Toggle("2")
	require.True(t, ok)
	require.True(t, once[1].Completed)
	for i := range seed {
		if i != 1 {
			require.Equal(t, seed[i], once[i])
		}
	}
	require.False(t, seed[1].Completed, "receiver must not change")
	require.Equal(t, 1, once.Completed())

	twice, ok := once.Toggle("2")
	require.True(t, ok)
	require.Equal(t, seed, twice)
}

func TestToggleUnknown(t *testing.T) {
	t.Parallel()

	seed := Seed()
	out, ok := seed.Toggle("missing")
	require.False(t, ok)
	require.Equal(t, Seed(), out)
	require.Equal(t, -1, seed.Index("missing"))
}

func TestAddThenToggleScenario(t *testing.T) {
	t.Parallel()

	list, ok := Seed().Add("Write tests", sequentialIDs("n"))
	require.True(t, ok)
	list, ok = list.Toggle(list[len(list)-1].ID)
	require.True(t, ok)

	require.Len(t, list, 5)
	last := list[4]
	require.Equal(t, "Write tests", last.Description)
	require.True(t, last.Completed)
	require.Equal(t, Seed(), list[:4])
}
