// Package batch drives bulk translation over an ordered collection of raw
// cell values, one blocking provider round trip per row.
package batch

import (
	"context"
	"fmt"

	"horse.fit/polyglot/internal/translation"
)

// FailedMarker is the literal value recorded for rows that could not be
// translated.
const FailedMarker = "Error"

// Outcome is the per-row result of a batch run: either a translated string
// or a failure marker. Outcomes correspond 1:1, by index, to the input rows.
type Outcome struct {
	Text   string
	Failed bool
}

// Value returns the cell value to write into the output column.
func (o Outcome) Value() string {
	if o.Failed {
		return FailedMarker
	}
	return o.Text
}

// Progress reports the state of the run after each processed row. Fraction
// grows monotonically and reaches exactly 1.0 after the final row.
type Progress struct {
	Row      int // 1-indexed row just completed
	Total    int
	Fraction float64
}

// Label renders the human-readable "row i of n" form.
func (p Progress) Label() string {
	return fmt.Sprintf("row %d of %d", p.Row, p.Total)
}

// Options controls one batch run.
type Options struct {
	TargetCode string
	// Progress, when set, is called once after every row, in row order.
	Progress func(Progress)
}

// Driver translates row collections through a resolver with automatic
// source detection per row.
type Driver struct {
	resolver *translation.Resolver
}

func NewDriver(resolver *translation.Resolver) *Driver {
	return &Driver{resolver: resolver}
}

// Run translates every cell into opts.TargetCode and returns one outcome
// per cell in input order. A row that fails (empty input or provider fault)
// yields a Failed outcome; it never aborts the rest of the batch. Rows are
// processed sequentially, so progress callbacks arrive strictly ordered.
func (d *Driver) Run(ctx context.Context, cells []string, opts Options) ([]Outcome, error) {
	if d == nil || d.resolver == nil {
		return nil, fmt.Errorf("batch driver is not initialized")
	}
	if opts.TargetCode == "" {
		return nil, fmt.Errorf("target language is required")
	}

	outcomes := make([]Outcome, 0, len(cells))
	total := len(cells)

	for i, cell := range cells {
		result, err := d.resolver.Resolve(ctx, cell, "auto", opts.TargetCode)
		switch {
		case err != nil || result == nil:
			// Empty cells and provider faults both degrade to the marker.
			outcomes = append(outcomes, Outcome{Failed: true})
		default:
			outcomes = append(outcomes, Outcome{Text: result.TranslatedText})
		}

		if opts.Progress != nil {
			opts.Progress(Progress{
				Row:      i + 1,
				Total:    total,
				Fraction: float64(i+1) / float64(total),
			})
		}
	}

	return outcomes, nil
}
