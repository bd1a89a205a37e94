package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/jacksmith/todo/internal/cli"
	"github.com/jacksmith/todo/internal/model"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Export tasks as structured data",
	Long: `Export the task list as YAML, TOML or JSON.

Each task is written with its current number, text and done state.
This is a one-way export for scripts; it cannot be re-imported.

Examples:
  todo dump
  todo dump --format=toml
  todo dump -f json`,
	Args: noArgs,
	RunE: runDump,
}

var dumpFormat string

func init() {
	dumpCmd.Flags().StringVarP(&dumpFormat, "format", "f", "yaml", "output format: yaml, toml or json")
	dumpCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"yaml", "toml", "json"}, cobra.ShellCompDirectiveNoFileComp
	})
	rootCmd.AddCommand(dumpCmd)
}

func runDump(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	return writeExport(os.Stdout, dumpFormat, model.NewExport(s.Tasks()))
}

// writeExport encodes export to w in the named format.
func writeExport(w io.Writer, format string, export model.Export) error {
	switch format {
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(export); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		return enc.Close()
	case "toml":
		if err := toml.NewEncoder(w).Encode(export); err != nil {
			return fmt.Errorf("failed to encode TOML: %w", err)
		}
		return nil
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(export); err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
		return nil
	default:
		return &cli.UsageError{
			Command: "dump",
			Message: fmt.Sprintf("unknown format %q (expected yaml, toml or json)", format),
		}
	}
}
