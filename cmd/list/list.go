// file: cmd/list/list.go

package list

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/ha1tch/seekplot/pkg/sched"
)

// AlgorithmEntry describes a supported algorithm in the listing
type AlgorithmEntry struct {
	Name          string `json:"name"`
	Description   string `json:"description"`
	UsesDirection bool   `json:"uses_direction"`
	Default       bool   `json:"default,omitempty"`
}

// ListOptions configures the algorithm listing
type ListOptions struct {
	JSON bool      // Output in JSON format
	Out  io.Writer // Destination, stdout when nil
}

// DefaultListOptions returns default options for List
func DefaultListOptions() *ListOptions {
	return &ListOptions{
		JSON: false,
		Out:  os.Stdout,
	}
}

// List prints the supported scheduling algorithms
func List(opts *ListOptions) error {
	if opts == nil {
		opts = DefaultListOptions()
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}

	var entries []AlgorithmEntry
	for _, alg := range sched.Algorithms() {
		entries = append(entries, AlgorithmEntry{
			Name:          string(alg),
			Description:   alg.Describe(),
			UsesDirection: alg.UsesDirection(),
			Default:       alg == sched.DefaultAlgorithm,
		})
	}

	if opts.JSON {
		encoder := json.NewEncoder(opts.Out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(entries)
	}
	return outputText(opts.Out, entries)
}

func outputText(w io.Writer, entries []AlgorithmEntry) error {
	fmt.Fprintln(w, "Name    Direction  Description")
	fmt.Fprintln(w, "----    ---------  -----------")

	for _, e := range entries {
		dir := "-"
		if e.UsesDirection {
			dir = "yes"
		}
		desc := e.Description
		if e.Default {
			desc += " (default)"
		}
		if _, err := fmt.Fprintf(w, "%-6s  %-9s  %s\n", e.Name, dir, desc); err != nil {
			return err
		}
	}
	return nil
}
