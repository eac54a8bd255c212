// Package extract turns uploaded statement files into raw UTF-8 text.
// It owns the only binary-format handling in the application; parsing
// of the extracted text lives in internal/parser.
package extract

import (
	"context"
	"io"
	"path/filepath"
	"strings"
)

// File is the subset of multipart.File the extractors need.
type File interface {
	io.Reader
	io.ReaderAt
}

// Text extracts the raw text of an uploaded statement. PDF files go
// through the text-layer reader; anything else (plain text, CSV) is
// read directly with encoding detection.
func Text(ctx context.Context, filename string, f File, size int64) (string, error) {
	if strings.EqualFold(filepath.Ext(filename), ".pdf") {
		return PDF(ctx, f, size)
	}

	return Plain(f)
}
