package main

import (
	"fmt"

	"github.com/jacksmith/todo/internal/cli"
	"github.com/spf13/cobra"
)

var rmCmd = &cobra.Command{
	Use:   "rm <n>",
	Short: "Remove a task",
	Long: `Remove the task at position n.

Tasks after it move up one position.

Examples:
  todo rm 2`,
	RunE:              runRm,
	ValidArgsFunction: completeTaskIndices,
}

func init() {
	rootCmd.AddCommand(rmCmd)
}

func runRm(cmd *cobra.Command, args []string) error {
	index, err := cli.ParseIndex("rm", args, 0)
	if err != nil {
		return err
	}

	s, err := openStore()
	if err != nil {
		return err
	}

	removed, err := s.Remove(index)
	if err != nil {
		return err
	}

	fmt.Println(cli.Green(fmt.Sprintf("Task %d removed: %s", index, removed.Text)))
	return nil
}
