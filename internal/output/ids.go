// Package output writes model listings to a stream.
package output

import (
	"bufio"
	"fmt"
	"io"

	"github.com/davetashner/lsmodels/internal/llm"
)

// WriteIDs writes each model's ID followed by a newline to w, preserving the
// order of models. Nothing else is written. It returns the first write error.
func WriteIDs(w io.Writer, models []llm.Model) error {
	bw := bufio.NewWriter(w)
	for _, m := range models {
		if _, err := fmt.Fprintln(bw, m.ID); err != nil {
			return fmt.Errorf("output: write model id: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("output: flush: %w", err)
	}
	return nil
}
