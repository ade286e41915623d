package spreadsheet

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ODS is a zip package whose first sheet lives in content.xml. There is no
// maintained Go library for the format, so this file walks the XML token
// stream directly: only table rows, cells, repeat counts and typed values
// matter for tabular interchange.

const odsMimetype = "application/vnd.oasis.opendocument.spreadsheet"

// Keeps a stray number-columns-repeated="16384" filler cell from exploding
// a row into thousands of empty strings.
const odsMaxRepeat = 256

func readODS(data []byte) ([][]string, error) {
	archive, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("not a valid ods package: %w", err)
	}

	var content *zip.File
	for _, f := range archive.File {
		if f.Name == "content.xml" {
			content = f
			break
		}
	}
	if content == nil {
		return nil, fmt.Errorf("ods package has no content.xml")
	}

	rc, err := content.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return parseODSContent(rc)
}

func parseODSContent(r io.Reader) ([][]string, error) {
	dec := xml.NewDecoder(r)

	var (
		grid      [][]string
		row       []string
		inTable   bool
		tableSeen bool
		inCell    bool
		cellText  strings.Builder
		cellValue string
		repeat    int
	)

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("malformed content.xml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "table":
				if tableSeen {
					// Only the first sheet participates in import.
					if err := dec.Skip(); err != nil {
						return nil, err
					}
					continue
				}
				inTable = true
				tableSeen = true
			case "table-row":
				if inTable {
					row = nil
				}
			case "table-cell":
				if !inTable {
					continue
				}
				inCell = true
				cellText.Reset()
				cellValue = ""
				repeat = 1
				for _, attr := range t.Attr {
					switch attr.Name.Local {
					case "number-columns-repeated":
						if n, err := strconv.Atoi(attr.Value); err == nil && n > 1 {
							repeat = n
							if repeat > odsMaxRepeat {
								repeat = odsMaxRepeat
							}
						}
					case "date-value":
						cellValue = attr.Value
					case "value":
						if cellValue == "" {
							cellValue = attr.Value
						}
					}
				}
			}

		case xml.CharData:
			if inCell {
				cellText.Write(t)
			}

		case xml.EndElement:
			switch t.Name.Local {
			case "table":
				if inTable {
					inTable = false
				}
			case "table-row":
				if inTable {
					// Trailing empty cells are padding, not data.
					for len(row) > 0 && row[len(row)-1] == "" {
						row = row[:len(row)-1]
					}
					if len(row) > 0 {
						grid = append(grid, row)
					}
				}
			case "table-cell":
				if !inTable || !inCell {
					continue
				}
				inCell = false
				value := cellValue
				if value == "" {
					value = cellText.String()
				}
				for i := 0; i < repeat; i++ {
					row = append(row, value)
				}
			}
		}
	}

	return grid, nil
}

func writeODS(sheetName string, headers []string, rows []map[string]string) ([]byte, error) {
	var buf bytes.Buffer
	archive := zip.NewWriter(&buf)

	// The mimetype entry must come first and be stored uncompressed,
	// per the OpenDocument package spec.
	mimeHeader := &zip.FileHeader{Name: "mimetype", Method: zip.Store}
	w, err := archive.CreateHeader(mimeHeader)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write([]byte(odsMimetype)); err != nil {
		return nil, err
	}

	manifest, err := archive.Create("META-INF/manifest.xml")
	if err != nil {
		return nil, err
	}
	if _, err := manifest.Write([]byte(odsManifestXML)); err != nil {
		return nil, err
	}

	content, err := archive.Create("content.xml")
	if err != nil {
		return nil, err
	}
	if err := writeODSContent(content, sheetName, headers, rows); err != nil {
		return nil, err
	}

	if err := archive.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

const odsManifestXML = `<?xml version="1.0" encoding="UTF-8"?>
<manifest:manifest xmlns:manifest="urn:oasis:names:tc:opendocument:xmlns:manifest:1.0" manifest:version="1.2">
 <manifest:file-entry manifest:full-path="/" manifest:media-type="application/vnd.oasis.opendocument.spreadsheet"/>
 <manifest:file-entry manifest:full-path="content.xml" manifest:media-type="text/xml"/>
</manifest:manifest>
`

func writeODSContent(w io.Writer, sheetName string, headers []string, rows []map[string]string) error {
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	sb.WriteString(`<office:document-content` +
		` xmlns:office="urn:oasis:names:tc:opendocument:xmlns:office:1.0"` +
		` xmlns:table="urn:oasis:names:tc:opendocument:xmlns:table:1.0"` +
		` xmlns:text="urn:oasis:names:tc:opendocument:xmlns:text:1.0"` +
		` office:version="1.2">`)
	sb.WriteString(`<office:body><office:spreadsheet>`)
	sb.WriteString(`<table:table table:name="` + escapeXML(sheetName) + `">`)

	writeRow := func(values []string) {
		sb.WriteString(`<table:table-row>`)
		for _, v := range values {
			if v == "" {
				sb.WriteString(`<table:table-cell/>`)
				continue
			}
			sb.WriteString(`<table:table-cell office:value-type="string"><text:p>`)
			sb.WriteString(escapeXML(v))
			sb.WriteString(`</text:p></table:table-cell>`)
		}
		sb.WriteString(`</table:table-row>`)
	}

	writeRow(headers)
	for _, row := range rows {
		values := make([]string, len(headers))
		for i, header := range headers {
			values[i] = row[header]
		}
		writeRow(values)
	}

	sb.WriteString(`</table:table></office:spreadsheet></office:body></office:document-content>`)

	_, err := io.WriteString(w, sb.String())
	return err
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
