package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/jacksmith/todo/internal/cli"
	"github.com/jacksmith/todo/internal/model"
	"github.com/spf13/cobra"
)

// emptyListMessage is printed instead of the list when there are no tasks.
const emptyListMessage = "Your todo list is empty!"

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List tasks",
	Long: `List all tasks with their current numbers.

Completed tasks are shown struck through. Lines in the task file without
a status marker are shown as they are.`,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	return renderList(os.Stdout, s.Tasks())
}

// renderList writes one numbered line per task and flushes once at the end.
func renderList(w io.Writer, tasks []model.Task) error {
	if len(tasks) == 0 {
		_, err := fmt.Fprintln(w, emptyListMessage)
		return err
	}

	bw := bufio.NewWriter(w)
	for i, t := range tasks {
		fmt.Fprintf(bw, "%s %s\n", cli.Bold(strconv.Itoa(i+1)), formatTaskText(t))
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write task list: %w", err)
	}
	return nil
}

func formatTaskText(t model.Task) string {
	switch {
	case t.Legacy:
		return t.Text
	case t.Done:
		return cli.Strike(t.Text)
	default:
		return t.Text
	}
}
