package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/xuri/excelize/v2"
)

const (
	FormatSimple = "simple"
	FormatTable  = "table"
	FormatJSON   = "json"
	FormatCSV    = "csv"
	FormatXLSX   = "xlsx"
)

var Formats = []string{FormatSimple, FormatTable, FormatJSON, FormatCSV, FormatXLSX}

// Table is a rendered listing. Raw is what the json format encodes.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
	Raw     any
}

// Options control where and how a Table is written.
type Options struct {
	Format string
	// Out is the file written by the xlsx format.
	Out string
	// Describe renders one row for the simple format; it defaults to
	// joining header/value pairs.
	Describe func(row []string) string
}

func Write(w io.Writer, t Table, opts Options) error {
	switch opts.Format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(t.Raw)
	case FormatCSV:
		return writeCSV(w, t)
	case FormatXLSX:
		if opts.Out == "" {
			return fmt.Errorf("el formato xlsx requiere --out")
		}
		if err := WriteXLSX(opts.Out, t); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w, "Exportado %d filas a %s\n", len(t.Rows), opts.Out)
		return err
	case FormatTable:
		return writeTable(w, t)
	case FormatSimple, "":
		return writeSimple(w, t, opts.Describe)
	default:
		return fmt.Errorf("formato desconocido %q (use %s)", opts.Format, strings.Join(Formats, ", "))
	}
}

func writeSimple(w io.Writer, t Table, describe func([]string) string) error {
	if len(t.Rows) == 0 {
		_, err := fmt.Fprintf(w, "No hay %s\n", strings.ToLower(t.Title))
		return err
	}

	if describe == nil {
		describe = func(row []string) string {
			parts := make([]string, 0, len(row))
			for i, v := range row {
				parts = append(parts, t.Headers[i]+": "+v)
			}
			return strings.Join(parts, " | ")
		}
	}

	fmt.Fprintf(w, "%s: %d\n\n", t.Title, len(t.Rows))
	for i, row := range t.Rows {
		if _, err := fmt.Fprintf(w, "%d. %s\n", i+1, describe(colorize(row))); err != nil {
			return err
		}
	}
	return nil
}

func writeTable(w io.Writer, t Table) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(t.Headers, "\t")+"\t")

	dashes := make([]string, len(t.Headers))
	for i := range dashes {
		dashes[i] = "---"
	}
	fmt.Fprintln(tw, strings.Join(dashes, "\t")+"\t")

	for _, row := range t.Rows {
		fmt.Fprintln(tw, strings.Join(colorize(row), "\t")+"\t")
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "\nTotal: %d\n", len(t.Rows))
	return err
}

// colorize highlights paid status cells. Files keep the plain labels.
func colorize(row []string) []string {
	out := make([]string, len(row))
	for i, v := range row {
		switch v {
		case PaidLabel:
			out[i] = ColoredPaidStatus(true)
		case PendingLabel:
			out[i] = ColoredPaidStatus(false)
		default:
			out[i] = v
		}
	}
	return out
}

func writeCSV(w io.Writer, t Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Headers); err != nil {
		return err
	}
	if err := cw.WriteAll(t.Rows); err != nil {
		return err
	}
	return cw.Error()
}

// WriteXLSX saves the table as a single sheet workbook.
func WriteXLSX(path string, t Table) (err error) {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	sheet := t.Title
	if sheet == "" {
		sheet = "Sheet1"
	}
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	header, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create style: %w", err)
	}

	if err := writeXLSXRow(f, sheet, 1, t.Headers); err != nil {
		return err
	}
	last, _ := excelize.CoordinatesToCellName(len(t.Headers), 1)
	if err := f.SetCellStyle(sheet, "A1", last, header); err != nil {
		return fmt.Errorf("style header: %w", err)
	}

	for i, row := range t.Rows {
		if err := writeXLSXRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

func writeXLSXRow(f *excelize.File, sheet string, rowNum int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	row := make([]any, len(values))
	for i, v := range values {
		row[i] = v
	}
	if err := f.SetSheetRow(sheet, cell, &row); err != nil {
		return fmt.Errorf("write row %d: %w", rowNum, err)
	}
	return nil
}
