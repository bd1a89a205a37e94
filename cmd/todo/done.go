package main

import (
	"fmt"

	"github.com/jacksmith/todo/internal/cli"
	"github.com/spf13/cobra"
)

var doneCmd = &cobra.Command{
	Use:   "done <n>",
	Short: "Mark a task as done",
	Long: `Mark the task at position n as done.

The completed task moves to the end of the list, so every task after it
moves up one position.

Examples:
  todo done 1`,
	RunE:              runDone,
	ValidArgsFunction: completeTaskIndices,
}

func init() {
	rootCmd.AddCommand(doneCmd)
}

func runDone(cmd *cobra.Command, args []string) error {
	index, err := cli.ParseIndex("done", args, 0)
	if err != nil {
		return err
	}

	s, err := openStore()
	if err != nil {
		return err
	}

	task, err := s.Complete(index)
	if err != nil {
		return err
	}

	fmt.Println(task.Line())
	fmt.Println(cli.Green(fmt.Sprintf("Task '%s' marked as done.", task.Text)))
	return nil
}
