// Command statement parses a bank statement file from disk and prints
// the extracted result as JSON. It runs the same extraction and parsing
// pipeline the API uses on upload, which makes it handy for checking a
// statement layout against the configured patterns without standing up
// the server.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/finwell-app/finwell/internal/extract"
	"github.com/finwell-app/finwell/internal/parser"
)

func main() {
	var timeout time.Duration

	rootCmd := &cobra.Command{
		Use:          "statement <file>",
		Short:        "Parse a bank statement file and print the result as JSON",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), args[0], timeout)
		},
	}

	rootCmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "maximum time to spend extracting text")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, path string, timeout time.Duration) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat file: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	text, err := extract.Text(ctx, path, f, info.Size())
	if err != nil {
		return fmt.Errorf("failed to extract text: %w", err)
	}

	params := parser.New().Parse(text)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	return enc.Encode(params)
}
