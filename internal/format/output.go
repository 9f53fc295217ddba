package format

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Write writes output in the requested format.
//
// Supported formats:
// - json (default)
// - table
func Write(w io.Writer, v any, format string, pretty bool) error {
	switch format {
	case "", "json":
		return WriteJSON(w, v, pretty)
	case "table":
		return WriteTable(w, v)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// WriteJSON writes strict JSON output for CLI commands.
func WriteJSON(w io.Writer, v any, pretty bool) error {
	var b []byte
	var err error
	if pretty {
		b, err = json.MarshalIndent(v, "", "  ")
	} else {
		b, err = json.Marshal(v)
	}
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(b))
	return err
}

// WriteTable renders the `data` payload of an envelope as a table. A list of
// objects becomes one row per object; a single object becomes key/value rows.
func WriteTable(w io.Writer, v any) error {
	// Go through JSON so struct tags decide the column names.
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	var x any
	if err := json.Unmarshal(b, &x); err != nil {
		return err
	}
	if env, ok := x.(map[string]any); ok {
		if data, ok := env["data"]; ok {
			x = data
		}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Bold(true).Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})

	switch x := x.(type) {
	case []any:
		cols := columns(x)
		t.Headers(cols...)
		for _, el := range x {
			obj, _ := el.(map[string]any)
			row := make([]string, len(cols))
			for i, c := range cols {
				row[i] = cell(obj[c])
			}
			t.Row(row...)
		}
	case map[string]any:
		t.Headers("field", "value")
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			t.Row(k, cell(x[k]))
		}
	default:
		_, err := fmt.Fprintln(w, cell(x))
		return err
	}

	_, err = fmt.Fprintln(w, t.Render())
	return err
}

// columns orders keys with "id" and "title" first, then the rest sorted.
func columns(rows []any) []string {
	seen := map[string]bool{}
	var rest []string
	for _, el := range rows {
		obj, ok := el.(map[string]any)
		if !ok {
			continue
		}
		for k := range obj {
			if !seen[k] {
				seen[k] = true
				if k != "id" && k != "title" {
					rest = append(rest, k)
				}
			}
		}
	}
	sort.Strings(rest)
	var cols []string
	for _, k := range []string{"id", "title"} {
		if seen[k] {
			cols = append(cols, k)
		}
	}
	return append(cols, rest...)
}

func cell(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return strings.ReplaceAll(v, "\n", " ")
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		b, _ := json.Marshal(v)
		return string(b)
	}
}
