// Package serializer formats structured data as YAML, JSON, or a flattened
// FIELD/VALUE table, writing to stdout or a file.
package serializer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

// Serializer writes structured data to a configured destination.
type Serializer interface {
	Serialize(ctx context.Context, data any) error
}

// Writer serializes data in a given format to an io.Writer.
type Writer struct {
	format Format
	out    io.Writer

	// path is non-empty when the writer owns a file destination.
	path string
}

// NewWriter creates a Writer for the given format and destination.
// Unknown formats fall back to JSON so callers always get usable output.
func NewWriter(format Format, out io.Writer) *Writer {
	if format.IsUnknown() {
		format = FormatJSON
	}
	if out == nil {
		out = os.Stdout
	}
	return &Writer{format: format, out: out}
}

// NewStdoutWriter creates a Writer targeting stdout.
func NewStdoutWriter(format Format) *Writer {
	return NewWriter(format, os.Stdout)
}

// NewFileWriterOrStdout creates a Writer targeting the given file path.
// An empty path or StdoutURI targets stdout. The destination file is
// created (or truncated) when Serialize is called.
func NewFileWriterOrStdout(format Format, path string) *Writer {
	if path == "" || path == StdoutURI {
		return NewStdoutWriter(format)
	}
	w := NewWriter(format, nil)
	w.path = path
	return w
}

// Serialize encodes data in the configured format and writes it out.
func (w *Writer) Serialize(ctx context.Context, data any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	out := w.out
	if w.path != "" {
		f, err := os.Create(w.path)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	switch w.format {
	case FormatYAML:
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(data); err != nil {
			return fmt.Errorf("failed to serialize to yaml: %w", err)
		}
		return enc.Close()
	case FormatTable:
		return writeTable(out, data)
	default:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(data); err != nil {
			return fmt.Errorf("failed to serialize to json: %w", err)
		}
		return nil
	}
}

// writeTable renders data as FIELD/VALUE rows with hierarchical keys,
// e.g. "[0].Name" for the Name field of the first slice element.
func writeTable(out io.Writer, data any) error {
	// Round-trip through JSON to get a uniform map/slice/scalar tree.
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to flatten data for table output: %w", err)
	}
	var tree any
	if err := json.Unmarshal(raw, &tree); err != nil {
		return fmt.Errorf("failed to flatten data for table output: %w", err)
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FIELD\tVALUE")
	flatten(tw, "", tree)
	return tw.Flush()
}

func flatten(tw io.Writer, prefix string, node any) {
	switch v := node.(type) {
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			flatten(tw, prefix+"."+k, v[k])
		}
	case []any:
		for i, item := range v {
			flatten(tw, fmt.Sprintf("%s[%d]", prefix, i), item)
		}
	default:
		fmt.Fprintf(tw, "%s\t%v\n", prefix, v)
	}
}
