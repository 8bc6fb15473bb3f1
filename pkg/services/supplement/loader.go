package supplement

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/OKUMUKOKUMU/Weekly-Sales/pkg/models/domain"
	"github.com/xuri/excelize/v2"
)

// Load parses an uploaded attachment into a table. It never returns an
// error: absence, an unsupported extension, or a malformed file all become
// a TableLoadResult the composer can embed directly, so a bad attachment
// cannot abort report generation.
func Load(r io.Reader, filename, title string) domain.TableLoadResult {
	if r == nil {
		return domain.LoadFailure(fmt.Sprintf("no file supplied for %q", title))
	}

	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".csv":
		return loadDelimited(r, title, ',')
	case ".tsv":
		return loadDelimited(r, title, '\t')
	case ".txt":
		return loadDelimited(r, title, ',')
	case ".xlsx", ".xlsm":
		return loadWorkbook(r, title)
	default:
		return domain.LoadFailure(fmt.Sprintf(
			"unsupported attachment type %q for %s: expected .csv, .tsv, .txt, .xlsx or .xlsm", ext, filename))
	}
}

func loadDelimited(r io.Reader, title string, delimiter rune) domain.TableLoadResult {
	cr := csv.NewReader(r)
	cr.Comma = delimiter
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return domain.LoadFailure(fmt.Sprintf("failed to parse %s: %v", title, err))
	}
	return tableFromRecords(records, title)
}

func loadWorkbook(r io.Reader, title string) domain.TableLoadResult {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return domain.LoadFailure(fmt.Sprintf("failed to open %s workbook: %v", title, err))
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return domain.LoadFailure(fmt.Sprintf("%s workbook has no sheets", title))
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return domain.LoadFailure(fmt.Sprintf("failed to read %s sheet %q: %v", title, sheets[0], err))
	}
	return tableFromRecords(rows, title)
}

func tableFromRecords(records [][]string, title string) domain.TableLoadResult {
	records = dropEmptyRows(records)
	if len(records) < 2 {
		return domain.LoadFailure(fmt.Sprintf("%s has no data rows", title))
	}

	header := trimAll(records[0])
	table := domain.SupplementaryTable{Title: title, Columns: header}
	for _, rec := range records[1:] {
		row := trimAll(rec)
		// Pad short rows so every row renders with the full column set.
		for len(row) < len(header) {
			row = append(row, "")
		}
		table.Rows = append(table.Rows, row[:len(header)])
	}
	return domain.LoadedTable(table)
}

func dropEmptyRows(records [][]string) [][]string {
	var out [][]string
	for _, rec := range records {
		empty := true
		for _, cell := range rec {
			if strings.TrimSpace(cell) != "" {
				empty = false
				break
			}
		}
		if !empty {
			out = append(out, rec)
		}
	}
	return out
}

func trimAll(rec []string) []string {
	out := make([]string, len(rec))
	for i, cell := range rec {
		out[i] = strings.TrimSpace(cell)
	}
	return out
}
