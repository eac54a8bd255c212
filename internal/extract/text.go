package extract

import (
	"fmt"
	"io"

	"github.com/finwell-app/finwell/internal/encoding"
)

// Plain reads a text or CSV statement export, decoding whatever
// charset the bank's export tool produced into UTF-8.
func Plain(r io.Reader) (string, error) {
	utf8r, err := encoding.NewUTF8Reader(r)
	if err != nil {
		return "", fmt.Errorf("detect encoding: %w", err)
	}

	data, err := io.ReadAll(utf8r)
	if err != nil {
		return "", fmt.Errorf("reading statement text: %w", err)
	}

	return string(data), nil
}
