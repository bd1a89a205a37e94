package main

import (
	"fmt"

	"github.com/jacksmith/todo/internal/cli"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Remove all tasks",
	Long: `Remove every task from the list. There is no confirmation and no undo.`,
	RunE: runReset,
}

func init() {
	rootCmd.AddCommand(resetCmd)
}

func runReset(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}

	if err := s.Reset(); err != nil {
		return err
	}

	fmt.Println(cli.Green("Task list cleared."))
	return nil
}
