// Package main is the entry point for the todo CLI.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jacksmith/todo/internal/cli"
	"github.com/jacksmith/todo/internal/logging"
	"github.com/jacksmith/todo/internal/storage"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Version is set at build time via ldflags.
var Version = "dev"

// usageHint is printed when todo runs without a command.
const usageHint = "Usage: todo [list|add <tasks>|rm <n>|done <n>|edit <n> <text>|reset]"

func main() {
	rootCmd.SetArgs(expandCommandPrefix(os.Args[1:]))
	if err := rootCmd.Execute(); err != nil {
		if !reportError(os.Stderr, err) {
			os.Exit(1)
		}
	}
}

// reportError prints err to w and reports whether the process may still
// exit normally. Usage mistakes leave the list untouched and are not fatal.
func reportError(w io.Writer, err error) bool {
	fmt.Fprintln(w, cli.Red(cli.FormatError(err)))
	return cli.IsRecoverable(err)
}

var rootCmd = &cobra.Command{
	Use:   "todo",
	Short: "todo - a personal task list kept in a plain text file",
	Long: `todo keeps a list of tasks in a plain text file, one task per line.

Tasks are referred to by their position in the list, starting at 1.
Positions shift when tasks are removed or completed, so run "todo list"
to see the current numbering.

The task file defaults to todo_list.txt in the working directory and can
be moved with TODO_FILE_PATH, the file_path config key or --file.`,
	Version:           Version,
	Args:              cobra.ArbitraryArgs,
	PersistentPreRunE: setup,
	SilenceErrors:     true,
	SilenceUsage:      true,
}

var (
	configPath string

	// appConfig and logger are resolved in setup before any command runs.
	appConfig = storage.DefaultConfig()
	logger    = logging.Discard()
)

func init() {
	// Set here rather than in the literal: runRoot refers back to rootCmd
	rootCmd.RunE = runRoot
	rootCmd.SetFlagErrorFunc(flagError)
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetVersionTemplate("todo version {{.Version}}\n")

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "config file (default $XDG_CONFIG_HOME/todo/config.yaml)")
	flags.String("file", "", "task file (default todo_list.txt, or $TODO_FILE_PATH)")
	flags.String("color", storage.DefaultColor, "styled output: auto, always or never")
	flags.BoolP("verbose", "v", storage.DefaultVerbose, "log debug details to stderr")
}

// setup resolves configuration, output styling and logging.
func setup(cmd *cobra.Command, args []string) error {
	cfg, err := storage.LoadConfig(configPath, cmd.Flags())
	if err != nil {
		return err
	}
	appConfig = cfg

	cli.SetColorMode(cfg.Color, os.Stdout)
	logger = logging.New(os.Stderr, cfg.Verbose)
	logger.Debug("resolved config", "file", cfg.FilePath, "color", cfg.Color)
	return nil
}

// runRoot prints the usage hint. Any positional argument reaching it
// names no command: known names and prefixes are routed to their
// subcommand by expandCommandPrefix before parsing.
func runRoot(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		fmt.Println(usageHint)
		return nil
	}

	if _, err := cli.MatchCommand(args[0], commandNames()); err != nil {
		return err
	}
	return &cli.UnknownCommandError{Name: args[0]}
}

// flagError reports flag parsing failures as usage errors. Task text or a
// task number starting with "-" lands here unless it follows "--".
func flagError(cmd *cobra.Command, err error) error {
	return &cli.UsageError{
		Command: cmd.Name(),
		Message: fmt.Sprintf("%v (put -- before arguments that start with '-')", err),
	}
}

// noArgs rejects positional arguments with a usage error.
func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return &cli.UsageError{
			Command: cmd.Name(),
			Message: fmt.Sprintf("unexpected arguments: %s", strings.Join(args, " ")),
		}
	}
	return nil
}

// expandCommandPrefix replaces an unambiguous command prefix, such as
// "li" for "list", with the full command name so that cobra parses the
// subcommand's own flags and arguments. Leading global flags are skipped.
func expandCommandPrefix(args []string) []string {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			return args
		}
		if strings.HasPrefix(arg, "-") {
			if flagTakesValue(arg) {
				i++
			}
			continue
		}

		name, err := cli.MatchCommand(arg, commandNames())
		if err != nil || name == arg {
			return args
		}
		expanded := append([]string(nil), args...)
		expanded[i] = name
		return expanded
	}
	return args
}

// flagTakesValue reports whether a global flag given without "=" consumes
// the next argument as its value.
func flagTakesValue(arg string) bool {
	if strings.Contains(arg, "=") {
		return false
	}

	var f *pflag.Flag
	flags := rootCmd.PersistentFlags()
	if name, ok := strings.CutPrefix(arg, "--"); ok {
		f = flags.Lookup(name)
	} else if name := strings.TrimPrefix(arg, "-"); len(name) == 1 {
		f = flags.ShorthandLookup(name)
	}
	return f != nil && f.NoOptDefVal == ""
}

// commandNames lists the user-facing subcommands.
func commandNames() []string {
	var names []string
	for _, c := range rootCmd.Commands() {
		if c.IsAvailableCommand() {
			names = append(names, c.Name())
		}
	}
	return names
}

// openStore loads the configured task file.
func openStore() (*storage.Store, error) {
	s, err := storage.Load(appConfig.FilePath, logger)
	if err != nil {
		return nil, err
	}
	logger.Debug("opened task list", "path", s.Path(), "tasks", s.Len())
	return s, nil
}
