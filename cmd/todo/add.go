package main

import (
	"fmt"

	"github.com/jacksmith/todo/internal/cli"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <text>...",
	Short: "Add tasks",
	Long: `Add one task per argument to the end of the list.

Text starting with "-" would be read as a flag; put -- before it.

Examples:
  todo add "buy milk"
  todo add "buy milk" "walk dog"
  todo add -- "-5 degrees outside"`,
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}

	if err := s.Add(args); err != nil {
		return err
	}

	fmt.Println(cli.Green("Task(s) added."))
	return nil
}
