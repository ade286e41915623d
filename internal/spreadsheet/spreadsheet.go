// Package spreadsheet reads and writes the two tabular formats the roster
// exchanges with the outside world: .xlsx and .ods. Rows are exposed as
// header-keyed maps over raw cell values, so numeric date serials reach the
// normalizers untouched.
package spreadsheet

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

const (
	ExtXLSX = ".xlsx"
	ExtODS  = ".ods"
)

const (
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypeODS  = "application/vnd.oasis.opendocument.spreadsheet"
)

// File is a rendered spreadsheet ready for download.
type File struct {
	Name        string
	ContentType string
	Content     []byte
}

// NormalizeFormat maps a user-supplied format name to a file extension.
// The empty string defaults to xlsx.
func NormalizeFormat(format string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "xlsx":
		return ExtXLSX, true
	case "ods":
		return ExtODS, true
	}
	return "", false
}

func ContentType(ext string) string {
	if strings.EqualFold(ext, ExtODS) {
		return contentTypeODS
	}
	return contentTypeXLSX
}

// Render writes the sheet and wraps it with the download metadata.
func Render(baseName, ext, sheetName string, headers []string, rows []map[string]string) (File, error) {
	content, err := Write(ext, sheetName, headers, rows)
	if err != nil {
		return File{}, err
	}
	return File{
		Name:        baseName + ext,
		ContentType: ContentType(ext),
		Content:     content,
	}, nil
}

// SupportedExtension reports whether the file may be read at all. Callers
// must gate on this before touching the payload bytes.
func SupportedExtension(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ExtXLSX, ExtODS:
		return true
	}
	return false
}

// ReadRows parses the first sheet of an .xlsx or .ods payload into rows
// keyed by the header row. Rows with no non-empty cell are dropped. Cells
// beyond the header width are ignored.
func ReadRows(filename string, data []byte) ([]map[string]string, error) {
	var (
		grid [][]string
		err  error
	)

	switch strings.ToLower(filepath.Ext(filename)) {
	case ExtXLSX:
		grid, err = readXLSX(data)
	case ExtODS:
		grid, err = readODS(data)
	default:
		return nil, fmt.Errorf("unsupported extension: %s", filepath.Ext(filename))
	}
	if err != nil {
		return nil, err
	}

	if len(grid) == 0 {
		return nil, fmt.Errorf("worksheet is empty")
	}

	headers := make([]string, len(grid[0]))
	for i, h := range grid[0] {
		headers[i] = strings.TrimSpace(h)
	}

	rows := make([]map[string]string, 0, len(grid)-1)
	for _, raw := range grid[1:] {
		row := make(map[string]string, len(headers))
		empty := true
		for i, header := range headers {
			if header == "" {
				continue
			}
			var cell string
			if i < len(raw) {
				cell = strings.TrimSpace(raw[i])
			}
			if cell != "" {
				empty = false
			}
			row[header] = cell
		}
		if empty {
			continue
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// Write serializes ordered headers plus rows into the requested format.
// ext must carry the leading dot.
func Write(ext, sheetName string, headers []string, rows []map[string]string) ([]byte, error) {
	switch strings.ToLower(ext) {
	case ExtXLSX:
		return writeXLSX(sheetName, headers, rows)
	case ExtODS:
		return writeODS(sheetName, headers, rows)
	}
	return nil, fmt.Errorf("unsupported extension: %s", ext)
}

func readXLSX(data []byte) ([][]string, error) {
	file, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	sheetName := file.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("no worksheet found")
	}

	// Raw values keep date cells as serial numbers instead of whatever
	// display format the authoring tool applied.
	return file.GetRows(sheetName, excelize.Options{RawCellValue: true})
}

func writeXLSX(sheetName string, headers []string, rows []map[string]string) ([]byte, error) {
	file := excelize.NewFile()
	defer func() { _ = file.Close() }()

	if err := file.SetSheetName(file.GetSheetName(0), sheetName); err != nil {
		return nil, err
	}

	if err := file.SetSheetRow(sheetName, "A1", &headers); err != nil {
		return nil, err
	}

	for i, row := range rows {
		values := make([]interface{}, len(headers))
		for j, header := range headers {
			values[j] = row[header]
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := file.SetSheetRow(sheetName, cell, &values); err != nil {
			return nil, err
		}
	}

	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
