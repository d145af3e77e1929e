package report

import (
	"bufio"
	"fmt"
	"io"

	"github.com/taurusgroup/share-audit/pkg/math/polynomial"
	"github.com/taurusgroup/share-audit/pkg/share"
)

// Case is the outcome of running one test case.
type Case struct {
	Name string
	N, K int
	// Arithmetic is the name of the polynomial.Arithmetic used.
	Arithmetic string
	// Fingerprint identifies the decoded shares the results were computed from.
	Fingerprint string
	// Results holds one entry per decoded share, in index order.
	Results []share.ValidationResult
	// Polynomial is reconstructed from the basis.
	Polynomial *polynomial.Polynomial
	// Skipped counts shares omitted because their base or value was unusable.
	Skipped int
	// Err is set when the case failed, in which case Results and Polynomial are empty.
	Err error
}

// Wrong returns the results of the shares that do not lie on the polynomial.
func (c *Case) Wrong() []share.ValidationResult {
	var wrong []share.ValidationResult
	for _, r := range c.Results {
		if !r.Matches {
			wrong = append(wrong, r)
		}
	}
	return wrong
}

// Writer prints human readable reports.
type Writer struct {
	w *bufio.Writer
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// WriteCase prints the validation line of every share followed by the coefficients, x⁰ first.
// A failed case prints a single error line.
func (w *Writer) WriteCase(c *Case) error {
	if c.Err != nil {
		fmt.Fprintf(w.w, "Error in %s: %v\n", c.Name, c.Err)
		return w.w.Flush()
	}

	fmt.Fprintf(w.w, "\n=== %s ===\n", c.Name)
	fmt.Fprintln(w.w, "Checking shares...")
	for _, r := range c.Results {
		fmt.Fprintln(w.w, r.String())
	}
	if c.Skipped > 0 {
		fmt.Fprintf(w.w, "Skipped shares: %d\n", c.Skipped)
	}

	if c.Polynomial != nil {
		fmt.Fprintln(w.w, "\nReconstructed polynomial coefficients:")
		for d, coefficient := range c.Polynomial.Format() {
			fmt.Fprintf(w.w, "x^%d: %s\n", d, coefficient)
		}
	}
	return w.w.Flush()
}

// WriteCases prints every case in order, stopping at the first write error.
func (w *Writer) WriteCases(cases []*Case) error {
	for _, c := range cases {
		if err := w.WriteCase(c); err != nil {
			return fmt.Errorf("report: %s: %w", c.Name, err)
		}
	}
	return nil
}
