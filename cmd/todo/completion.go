package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jacksmith/todo/internal/cli"
	"github.com/spf13/cobra"
)

var completionCmd = &cobra.Command{
	Use:   "completion <bash|zsh|fish>",
	Short: "Generate shell completion scripts",
	Long: `Print a completion script for bash, zsh or fish.

Task numbers complete with the task text as a hint.

Examples:
  source <(todo completion bash)
  todo completion zsh > "${fpath[1]}/_todo"
  todo completion fish > ~/.config/fish/completions/todo.fish`,
	ValidArgs: []string{"bash", "zsh", "fish"},
	RunE:      runCompletion,
}

func init() {
	rootCmd.AddCommand(completionCmd)
}

func runCompletion(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return &cli.UsageError{Command: "completion", Message: "expected one shell: bash, zsh or fish"}
	}
	return writeCompletion(os.Stdout, args[0])
}

// writeCompletion writes the completion script for shell to w.
func writeCompletion(w io.Writer, shell string) error {
	switch shell {
	case "bash":
		return rootCmd.GenBashCompletionV2(w, true)
	case "zsh":
		return rootCmd.GenZshCompletion(w)
	case "fish":
		return rootCmd.GenFishCompletion(w, true)
	default:
		return &cli.UsageError{
			Command: "completion",
			Message: fmt.Sprintf("unsupported shell %q (expected bash, zsh or fish)", shell),
		}
	}
}

// completeTaskIndices completes the task number argument, using the task
// text as the description.
func completeTaskIndices(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	s, err := openStore()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	completions := make([]string, 0, s.Len())
	for i, t := range s.Tasks() {
		n := strconv.Itoa(i + 1)
		if strings.HasPrefix(n, toComplete) {
			completions = append(completions, n+"\t"+t.Text)
		}
	}

	return completions, cobra.ShellCompDirectiveNoFileComp
}
