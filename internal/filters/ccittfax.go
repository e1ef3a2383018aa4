package filters

import (
	"bytes"
	"io"

	"golang.org/x/image/ccitt"
)

// CCITTFaxDecode decodes CCITT Group 3/4 fax compressed data, used for
// bi-level images in scanned documents.
//
// Parameters from the PDF decode parameters dictionary:
//   - K: group selector (<0 = Group 4, otherwise Group 3)
//   - Columns: width in pixels (default 1728)
//   - Rows: height in pixels (default auto-detect)
//   - BlackIs1: bit interpretation (maps to ccitt.Options.Invert)
func CCITTFaxDecode(data []byte, params Params) ([]byte, error) {
	columns := getIntParam(params, "Columns", 1728)
	rows := getIntParam(params, "Rows", 0)
	k := getIntParam(params, "K", 0)
	blackIs1 := getBoolParam(params, "BlackIs1", false)

	sf := ccitt.Group3
	if k < 0 {
		sf = ccitt.Group4
	}

	if rows == 0 {
		rows = ccitt.AutoDetectHeight
	}

	opts := &ccitt.Options{Invert: blackIs1}
	reader := ccitt.NewReader(bytes.NewReader(data), ccitt.MSB, sf, columns, rows, opts)
	return io.ReadAll(reader)
}
