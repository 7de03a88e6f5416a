// Package pty queries terminal dimensions.
package pty

import (
	"os"

	"github.com/creack/pty"
)

// Fallback dimensions used when the terminal size cannot be read.
const (
	FallbackCols = 80
	FallbackRows = 24
)

// Size represents terminal dimensions in rows and columns.
type Size struct {
	Rows uint16
	Cols uint16
}

// Query returns the size of the terminal behind f. Zero dimensions are an
// error: some ttys report 0x0 before the first resize.
func Query(f *os.File) (Size, error) {
	ws, err := pty.GetsizeFull(f)
	if err != nil {
		return Size{}, err
	}
	if ws.Rows == 0 || ws.Cols == 0 {
		return Size{}, errZeroSize
	}
	return Size{Rows: ws.Rows, Cols: ws.Cols}, nil
}

// QueryOrDefault is Query with the 80x24 fallback on any error.
func QueryOrDefault(f *os.File) Size {
	s, err := Query(f)
	if err != nil {
		return Size{Rows: FallbackRows, Cols: FallbackCols}
	}
	return s
}
