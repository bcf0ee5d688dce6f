package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

var (
	okColor   = color.New(color.FgGreen)
	warnColor = color.New(color.FgYellow)
	errColor  = color.New(color.FgRed, color.Bold)
	boldColor = color.New(color.Bold)
)

// newTable renders borderless, left-aligned tables.
func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w,
		tablewriter.WithConfig(tablewriter.Config{
			Row: tw.CellConfig{
				Formatting: tw.CellFormatting{AutoWrap: tw.WrapNone},
				Alignment:  tw.CellAlignment{Global: tw.AlignLeft},
			},
			Header: tw.CellConfig{
				Formatting: tw.CellFormatting{AutoFormat: tw.On},
				Alignment:  tw.CellAlignment{Global: tw.AlignLeft},
			},
		}),
		tablewriter.WithRendition(tw.Rendition{
			Borders: tw.BorderNone,
			Settings: tw.Settings{
				Separators: tw.Separators{ShowHeader: tw.Off},
			},
		}),
	)
}

func renderTable(w io.Writer, header []string, rows [][]string) error {
	table := newTable(w)
	table.Header(header)
	if err := table.Bulk(rows); err != nil {
		return err
	}
	return table.Render()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// feedStatus colors a feed's state for table output.
func feedStatus(enabled bool, failures int) string {
	switch {
	case !enabled && failures > 0:
		return errColor.Sprintf("disabled (%d failures)", failures)
	case !enabled:
		return warnColor.Sprint("stopped")
	case failures > 0:
		return warnColor.Sprintf("failing (%d)", failures)
	}
	return okColor.Sprint("active")
}

func success(format string, args ...any) {
	fmt.Fprintln(os.Stdout, okColor.Sprint("✓ ")+fmt.Sprintf(format, args...))
}
