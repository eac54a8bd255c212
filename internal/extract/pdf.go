package extract

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PDF reads the text layer of a PDF page by page and returns the
// concatenated text in page order. Order matters downstream: the
// parser relies on date/description continuity across page breaks,
// so pages are extracted strictly sequentially.
//
// The whole extraction is bounded by ctx; on cancellation or timeout
// the upload fails as a unit and nothing is persisted.
func PDF(ctx context.Context, f io.ReaderAt, size int64) (string, error) {
	type result struct {
		text string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		text, err := readPages(f, size)
		done <- result{text: text, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", fmt.Errorf("pdf extraction: %w", ctx.Err())
	case r := <-done:
		if r.err != nil {
			return "", fmt.Errorf("pdf extraction: %w", r.err)
		}

		return r.text, nil
	}
}

func readPages(f io.ReaderAt, size int64) (text string, err error) {
	// The pdf library panics on some malformed documents.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("reading pdf: %v", r)
		}
	}()

	reader, err := pdf.NewReader(f, size)
	if err != nil {
		return "", fmt.Errorf("opening pdf: %w", err)
	}

	if reader.NumPage() == 0 {
		return "", fmt.Errorf("pdf has no pages")
	}

	var sb strings.Builder

	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		fonts := make(map[string]*pdf.Font)

		for _, name := range page.Fonts() {
			font := page.Font(name)
			fonts[name] = &font
		}

		pageText, err := page.GetPlainText(fonts)
		if err != nil {
			return "", fmt.Errorf("page %d: %w", i, err)
		}

		sb.WriteString(pageText)
		sb.WriteString("\n")
	}

	return sb.String(), nil
}
