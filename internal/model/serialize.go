package model

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// maxLineSize bounds a single task line when decoding.
const maxLineSize = 1024 * 1024

// Decode reads tasks from r, one per line. Blank lines are skipped.
func Decode(r io.Reader) ([]Task, error) {
	var tasks []Task

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		tasks = append(tasks, ParseLine(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read tasks: %w", err)
	}

	return tasks, nil
}

// Encode renders tasks in the backing file format, one line per task.
func Encode(tasks []Task) []byte {
	var b strings.Builder
	for _, t := range tasks {
		b.WriteString(t.Line())
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

// Record is the structured form of a task used by exports.
type Record struct {
	Index  int    `yaml:"index" toml:"index" json:"index"`
	Text   string `yaml:"text" toml:"text" json:"text"`
	Done   bool   `yaml:"done" toml:"done" json:"done"`
	Legacy bool   `yaml:"legacy,omitempty" toml:"legacy,omitempty" json:"legacy,omitempty"`
}

// Export is the document written by structured exports.
type Export struct {
	Tasks []Record `yaml:"tasks" toml:"tasks" json:"tasks"`
}

// NewExport builds an export document with 1-based indices.
func NewExport(tasks []Task) Export {
	records := make([]Record, 0, len(tasks))
	for i, t := range tasks {
		records = append(records, Record{
			Index:  i + 1,
			Text:   t.Text,
			Done:   t.Done,
			Legacy: t.Legacy,
		})
	}
	return Export{Tasks: records}
}
