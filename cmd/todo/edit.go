package main

import (
	"fmt"
	"strings"

	"github.com/jacksmith/todo/internal/cli"
	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit <n> <text>",
	Short: "Replace a task's text",
	Long: `Replace the text of the task at position n.

The task keeps its position and becomes pending again, even if it was
done. Remaining arguments are joined with spaces.

With -i, the current text is opened in $VISUAL or $EDITOR instead.

Examples:
  todo edit 1 "walk cat"
  todo edit 1 -i`,
	RunE:              runEdit,
	ValidArgsFunction: completeTaskIndices,
}

var editInteractive bool

func init() {
	editCmd.Flags().BoolVarP(&editInteractive, "interactive", "i", false, "edit the task text in $EDITOR")
	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	index, err := cli.ParseIndex("edit", args, 0)
	if err != nil {
		return err
	}

	if !editInteractive && len(args) < 2 {
		return &cli.UsageError{Command: "edit", Message: "missing task text"}
	}

	s, err := openStore()
	if err != nil {
		return err
	}

	var text string
	if editInteractive {
		current, err := s.Task(index)
		if err != nil {
			return err
		}
		text, err = cli.EditText(current.Text)
		if err != nil {
			return err
		}
	} else {
		text = strings.Join(args[1:], " ")
	}

	task, err := s.Edit(index, text)
	if err != nil {
		return err
	}

	fmt.Println(task.Line())
	fmt.Println(cli.Green(fmt.Sprintf("Task %d updated.", index)))
	return nil
}
