// SPDX-License-Identifier: MIT

package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// readRows parses numeric CSV records. Rows may differ in length; blank
// lines and lines starting with '#' are skipped.
func readRows(r io.Reader) ([][]float64, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.Comment = '#'
	cr.TrimLeadingSpace = true

	var rows [][]float64
	for line := 1; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return rows, nil
		}
		if err != nil {
			return nil, err
		}

		row := make([]float64, len(rec))
		for i, field := range rec {
			if row[i], err = strconv.ParseFloat(strings.TrimSpace(field), 64); err != nil {
				return nil, fmt.Errorf("record %d, field %d: %w", line, i+1, err)
			}
		}
		rows = append(rows, row)
	}
}

// writeRow writes idx followed by values.
func writeRow(w *csv.Writer, idx int, values []float64) error {
	rec := make([]string, 0, len(values)+1)
	rec = append(rec, strconv.Itoa(idx))
	for _, v := range values {
		rec = append(rec, strconv.FormatFloat(v, 'g', -1, 64))
	}

	return w.Write(rec)
}
