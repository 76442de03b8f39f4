// Copyright ©2026 the kmerdb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tabio reads and writes the tab-delimited tables that the
// command-line tools exchange. Columns are addressed by 1-based index
// or by header name; an empty column specifier selects the last column.
package tabio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// A ColumnError reports a column specifier that cannot be resolved
// against a table's header.
type ColumnError struct {
	Spec    string
	Headers []string
}

func (e *ColumnError) Error() string {
	return fmt.Sprintf("tabio: no column %q in %q", e.Spec, e.Headers)
}

// A Reader reads tab-delimited rows, optionally with a leading header
// row.
type Reader struct {
	sc      *bufio.Scanner
	headers []string
	hasHead bool
	started bool
	line    int
}

// NewReader returns a Reader over r. If header is true the first row is
// consumed as column headers.
func NewReader(r io.Reader, header bool) *Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 1<<16), 1<<24)
	return &Reader{sc: sc, hasHead: header}
}

// Headers returns the header row, reading it if necessary. Without a
// header row it returns nil.
func (r *Reader) Headers() ([]string, error) {
	if !r.hasHead || r.started {
		return r.headers, nil
	}
	r.started = true
	if !r.sc.Scan() {
		if err := r.sc.Err(); err != nil {
			return nil, fmt.Errorf("tabio: reading header: %w", err)
		}
		// Empty input: no header, no rows.
		return nil, nil
	}
	r.line++
	r.headers = strings.Split(r.sc.Text(), "\t")
	return r.headers, nil
}

// FindColumn resolves a column specifier to a 0-based index. The
// specifier is a 1-based numeric index, a header name (exact, then
// case-insensitive), or empty for the last column. Name resolution
// requires a header row.
func (r *Reader) FindColumn(spec string) (int, error) {
	headers, err := r.Headers()
	if err != nil {
		return 0, err
	}
	if spec == "" || spec == "0" {
		return -1, nil // resolved per row to the last field
	}
	if n, err := strconv.Atoi(spec); err == nil && n > 0 {
		return n - 1, nil
	}
	for i, h := range headers {
		if h == spec {
			return i, nil
		}
	}
	for i, h := range headers {
		if strings.EqualFold(h, spec) {
			return i, nil
		}
	}
	return 0, &ColumnError{Spec: spec, Headers: headers}
}

// Field returns the column col of row, where col -1 selects the last
// field.
func Field(row []string, col int) (string, error) {
	if col == -1 {
		col = len(row) - 1
	}
	if col < 0 || col >= len(row) {
		return "", fmt.Errorf("tabio: row has %d fields, want column %d", len(row), col+1)
	}
	return row[col], nil
}

// Read returns the next data row. It returns io.EOF at the end of the
// input. Blank lines are skipped.
func (r *Reader) Read() ([]string, error) {
	if r.hasHead && !r.started {
		_, err := r.Headers()
		if err != nil {
			return nil, err
		}
	}
	for r.sc.Scan() {
		r.line++
		text := r.sc.Text()
		if text == "" {
			continue
		}
		return strings.Split(text, "\t"), nil
	}
	if err := r.sc.Err(); err != nil {
		return nil, fmt.Errorf("tabio: line %d: %w", r.line, err)
	}
	return nil, io.EOF
}

// Each calls fn for every remaining data row.
func (r *Reader) Each(fn func(row []string) error) error {
	for {
		row, err := r.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		err = fn(row)
		if err != nil {
			return err
		}
	}
}

// Line returns the 1-based number of the last line read.
func (r *Reader) Line() int { return r.line }

// A Writer writes tab-delimited rows.
type Writer struct {
	w *bufio.Writer
}

// NewWriter returns a Writer on w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// Write emits one row.
func (w *Writer) Write(fields ...string) error {
	_, err := w.w.WriteString(strings.Join(fields, "\t"))
	if err != nil {
		return err
	}
	return w.w.WriteByte('\n')
}

// Flush flushes buffered rows to the underlying writer.
func (w *Writer) Flush() error { return w.w.Flush() }
