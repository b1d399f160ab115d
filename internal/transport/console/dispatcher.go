package console

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/reshetovitsme/nepse-digest/internal/modules/digest/domain"
)

// Dispatcher prints message chunks instead of posting them
type Dispatcher struct {
	out io.Writer
}

// New creates a dispatcher that writes to stdout
func New() *Dispatcher {
	return NewWithWriter(os.Stdout)
}

// NewWithWriter creates a dispatcher with a custom writer
func NewWithWriter(w io.Writer) *Dispatcher {
	return &Dispatcher{out: w}
}

// Send writes every chunk under a part header. Write errors count as failed parts.
func (d *Dispatcher) Send(ctx context.Context, chunks []string) domain.SendReport {
	var report domain.SendReport

	for i, part := range chunks {
		if err := ctx.Err(); err != nil {
			report.Failed += len(chunks) - i
			break
		}

		_, err := fmt.Fprintf(d.out, "----- part %d/%d (%d chars) -----\n%s\n\n", i+1, len(chunks), len([]rune(part)), part)
		if err != nil {
			slog.Error("Failed to print part", "part", i+1, "error", err)
			report.Failed++
			continue
		}
		report.Sent++
	}

	return report
}
