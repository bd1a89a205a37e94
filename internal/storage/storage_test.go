package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jacksmith/todo/internal/cli"
	"github.com/jacksmith/todo/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestStore writes content to a fresh task file and loads it.
func newTestStore(t *testing.T, content string) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "todo_list.txt")
	if content != "" {
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	s, err := Load(path, nil)
	require.NoError(t, err)
	return s
}

// fileContent returns the current task file contents.
func fileContent(t *testing.T, s *Store) string {
	t.Helper()
	data, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	return string(data)
}

// texts returns the task texts in list order.
func texts(s *Store) []string {
	var out []string
	for _, task := range s.Tasks() {
		out = append(out, task.Text)
	}
	return out
}

func requireIndexError(t *testing.T, err error) {
	t.Helper()
	var indexErr *cli.IndexError
	require.True(t, errors.As(err, &indexErr), "expected *cli.IndexError, got %v", err)
}

func TestLoad(t *testing.T) {
	t.Run("missing file gives empty store", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "absent.txt")
		s, err := Load(path, nil)
		require.NoError(t, err)
		assert.Equal(t, 0, s.Len())
		assert.Equal(t, path, s.Path())

		// Loading must not create the file
		_, err = os.Stat(path)
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("parses markers and legacy lines", func(t *testing.T) {
		s := newTestStore(t, "[ ] buy milk\n[*] walk dog\nold style entry\n")
		assert.Equal(t, []model.Task{
			{Text: "buy milk"},
			{Text: "walk dog", Done: true},
			{Text: "old style entry", Legacy: true},
		}, s.Tasks())
	})

	t.Run("skips blank lines", func(t *testing.T) {
		s := newTestStore(t, "[ ] a\n\n[ ] b\n\n")
		assert.Equal(t, []string{"a", "b"}, texts(s))
	})

	t.Run("unreadable path returns error", func(t *testing.T) {
		// A directory cannot be read as a task file
		_, err := Load(t.TempDir(), nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read task file")
	})
}

func TestSave(t *testing.T) {
	t.Run("round trip preserves order, text and state", func(t *testing.T) {
		s := newTestStore(t, "")
		require.NoError(t, s.Add([]string{"one", "two", "three"}))
		_, err := s.Complete(2)
		require.NoError(t, err)

		reloaded, err := Load(s.Path(), nil)
		require.NoError(t, err)
		assert.Equal(t, s.Tasks(), reloaded.Tasks())
	})

	t.Run("legacy lines are written back verbatim", func(t *testing.T) {
		content := "[ ] a\nraw line\n[*] b\n"
		s := newTestStore(t, content)
		require.NoError(t, s.Save())
		assert.Equal(t, content, fileContent(t, s))
	})

	t.Run("truncates previous content", func(t *testing.T) {
		s := newTestStore(t, "[ ] a\n[ ] b\n[ ] c\n")
		_, err := s.Remove(1)
		require.NoError(t, err)
		assert.Equal(t, "[ ] b\n[ ] c\n", fileContent(t, s))
	})

	t.Run("unwritable path returns error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing-dir", "todo_list.txt")
		s, err := Load(path, nil)
		require.NoError(t, err)

		err = s.Add([]string{"x"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to write task file")
		assert.False(t, cli.IsRecoverable(err))
	})
}

func TestAdd(t *testing.T) {
	t.Run("appends pending tasks in order", func(t *testing.T) {
		s := newTestStore(t, "[*] existing\n")
		require.NoError(t, s.Add([]string{"buy milk", "walk dog"}))

		assert.Equal(t, 3, s.Len())
		assert.Equal(t, []string{"existing", "buy milk", "walk dog"}, texts(s))
		for _, task := range s.Tasks()[1:] {
			assert.False(t, task.Done)
		}
		assert.Equal(t, "[*] existing\n[ ] buy milk\n[ ] walk dog\n", fileContent(t, s))
	})

	t.Run("empty arguments is a usage error", func(t *testing.T) {
		s := newTestStore(t, "")
		err := s.Add(nil)

		var usageErr *cli.UsageError
		require.True(t, errors.As(err, &usageErr))
		assert.Equal(t, 0, s.Len())

		// No save happened
		_, statErr := os.Stat(s.Path())
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("length grows by argument count", func(t *testing.T) {
		for n := 1; n <= 4; n++ {
			s := newTestStore(t, "[ ] a\n[ ] b\n")
			args := make([]string, n)
			for i := range args {
				args[i] = "task"
			}
			require.NoError(t, s.Add(args))
			assert.Equal(t, 2+n, s.Len())
		}
	})
}

func TestRemove(t *testing.T) {
	const content = "[ ] a\n[*] b\n[ ] c\n"

	t.Run("removes and shifts later tasks", func(t *testing.T) {
		s := newTestStore(t, content)
		removed, err := s.Remove(2)
		require.NoError(t, err)

		assert.Equal(t, model.Task{Text: "b", Done: true}, removed)
		assert.Equal(t, []string{"a", "c"}, texts(s))
		assert.Equal(t, "[ ] a\n[ ] c\n", fileContent(t, s))
	})

	t.Run("last index is accepted", func(t *testing.T) {
		s := newTestStore(t, content)
		_, err := s.Remove(3)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, texts(s))
	})

	t.Run("removing the only task empties the file", func(t *testing.T) {
		s := newTestStore(t, "[ ] only\n")
		_, err := s.Remove(1)
		require.NoError(t, err)
		assert.Equal(t, 0, s.Len())
		assert.Equal(t, "", fileContent(t, s))
	})

	for _, index := range []int{0, 4, -1} {
		t.Run("out of range leaves list unchanged", func(t *testing.T) {
			s := newTestStore(t, content)
			_, err := s.Remove(index)
			requireIndexError(t, err)
			assert.Equal(t, []string{"a", "b", "c"}, texts(s))
			assert.Equal(t, content, fileContent(t, s))
		})
	}
}

func TestComplete(t *testing.T) {
	const content = "[ ] a\n[ ] b\n[ ] c\n"

	t.Run("marks done and moves to end", func(t *testing.T) {
		s := newTestStore(t, content)
		done, err := s.Complete(1)
		require.NoError(t, err)

		assert.Equal(t, model.Task{Text: "a", Done: true}, done)
		assert.Equal(t, 3, s.Len())
		assert.Equal(t, []model.Task{
			{Text: "b"},
			{Text: "c"},
			{Text: "a", Done: true},
		}, s.Tasks())
		assert.Equal(t, "[ ] b\n[ ] c\n[*] a\n", fileContent(t, s))
	})

	t.Run("tasks before the index are unaffected", func(t *testing.T) {
		s := newTestStore(t, content)
		_, err := s.Complete(2)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "c", "b"}, texts(s))
	})

	t.Run("last index is accepted", func(t *testing.T) {
		s := newTestStore(t, content)
		_, err := s.Complete(3)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "c"}, texts(s))
		assert.True(t, s.Tasks()[2].Done)
	})

	t.Run("legacy line becomes a done task", func(t *testing.T) {
		s := newTestStore(t, "old entry\n[ ] new\n")
		_, err := s.Complete(1)
		require.NoError(t, err)
		assert.Equal(t, "[ ] new\n[*] old entry\n", fileContent(t, s))
	})

	t.Run("out of range leaves list unchanged", func(t *testing.T) {
		s := newTestStore(t, content)
		_, err := s.Complete(4)
		requireIndexError(t, err)
		assert.Equal(t, content, fileContent(t, s))
	})

	t.Run("empty list", func(t *testing.T) {
		s := newTestStore(t, "")
		_, err := s.Complete(1)
		requireIndexError(t, err)
	})
}

func TestEdit(t *testing.T) {
	const content = "[ ] a\n[*] b\n[ ] c\n"

	t.Run("replaces text and resets done task to pending", func(t *testing.T) {
		s := newTestStore(t, content)
		task, err := s.Edit(2, "bee")
		require.NoError(t, err)

		assert.Equal(t, model.NewTask("bee"), task)
		assert.Equal(t, []model.Task{
			{Text: "a"},
			{Text: "bee"},
			{Text: "c"},
		}, s.Tasks())
		assert.Equal(t, "[ ] a\n[ ] bee\n[ ] c\n", fileContent(t, s))
	})

	t.Run("out of range leaves list unchanged", func(t *testing.T) {
		s := newTestStore(t, content)
		_, err := s.Edit(9, "x")
		requireIndexError(t, err)
		assert.Equal(t, content, fileContent(t, s))
	})
}

func TestReset(t *testing.T) {
	t.Run("clears existing tasks", func(t *testing.T) {
		s := newTestStore(t, "[ ] a\n[*] b\nraw\n")
		require.NoError(t, s.Reset())
		assert.Equal(t, 0, s.Len())
		assert.Equal(t, "", fileContent(t, s))
	})

	t.Run("creates the file when missing", func(t *testing.T) {
		s := newTestStore(t, "")
		require.NoError(t, s.Reset())
		assert.Equal(t, "", fileContent(t, s))
	})
}

func TestTasksReturnsCopy(t *testing.T) {
	s := newTestStore(t, "[ ] a\n")
	tasks := s.Tasks()
	tasks[0].Text = "changed"
	assert.Equal(t, []string{"a"}, texts(s))
}

func TestScenario(t *testing.T) {
	s := newTestStore(t, "")

	require.NoError(t, s.Add([]string{"buy milk", "walk dog"}))
	assert.Equal(t, []model.Task{{Text: "buy milk"}, {Text: "walk dog"}}, s.Tasks())

	_, err := s.Complete(1)
	require.NoError(t, err)
	assert.Equal(t, []model.Task{{Text: "walk dog"}, {Text: "buy milk", Done: true}}, s.Tasks())

	_, err = s.Edit(1, "walk cat")
	require.NoError(t, err)
	assert.Equal(t, []model.Task{{Text: "walk cat"}, {Text: "buy milk", Done: true}}, s.Tasks())

	_, err = s.Remove(1)
	require.NoError(t, err)
	assert.Equal(t, []model.Task{{Text: "buy milk", Done: true}}, s.Tasks())

	reloaded, err := Load(s.Path(), nil)
	require.NoError(t, err)
	assert.Equal(t, s.Tasks(), reloaded.Tasks())
}
