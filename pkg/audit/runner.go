// Package audit runs test cases: it decodes their shares, checks every share against the
// polynomial interpolated from the first k of them, and reconstructs that polynomial.
package audit

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/taurusgroup/share-audit/internal/hash"
	"github.com/taurusgroup/share-audit/internal/params"
	"github.com/taurusgroup/share-audit/internal/types"
	"github.com/taurusgroup/share-audit/pkg/document"
	"github.com/taurusgroup/share-audit/pkg/math/polynomial"
	"github.com/taurusgroup/share-audit/pkg/report"
	"github.com/taurusgroup/share-audit/pkg/share"
	"github.com/taurusgroup/share-audit/pkg/validate"
)

// Runner processes test cases one after the other. It keeps no state between cases.
type Runner struct {
	arithmetic polynomial.Arithmetic
	log        zerolog.Logger
}

// NewRunner returns a Runner. A nil arithmetic defaults to polynomial.Float.
func NewRunner(a polynomial.Arithmetic, logger zerolog.Logger) *Runner {
	if a == nil {
		a = polynomial.Float
	}
	return &Runner{arithmetic: a, log: logger}
}

// Run processes a single test case.
//
// The basis is made of the first k decoded shares, in index order. It is trusted as is:
// if one of its members is corrupted, honest shares are flagged and the polynomial is wrong.
//
// Errors are wrapped in an Error naming the case.
func (r *Runner) Run(c *document.Case) (*report.Case, error) {
	rc, err := r.run(c)
	if err != nil {
		return nil, Error{Case: c.Name, Err: err}
	}
	return rc, nil
}

func (r *Runner) run(c *document.Case) (*report.Case, error) {
	if c.Err != nil {
		return nil, c.Err
	}
	log := r.log.With().Str("case", c.Name).Int("n", c.N).Int("k", c.K).Logger()

	if c.K < 1 || c.K > c.N {
		return nil, fmt.Errorf("%w (n = %d, k = %d)", ErrInvalidThreshold, c.N, c.K)
	}
	if len(c.Skipped) > 0 {
		log.Debug().Ints("indices", c.Skipped).Msg("skipped shares")
	}

	shares, err := c.Decode()
	if err != nil {
		return nil, err
	}
	if len(shares) < c.K {
		return nil, &InsufficientSharesError{Need: c.K, Have: len(shares)}
	}

	if r.arithmetic == polynomial.Float {
		if large := beyondExactFloat(shares); len(large) > 0 {
			log.Warn().Ints("indices", large).Msg("share values exceed 2^53, float interpolation may drift")
		}
	}

	basis := share.Basis(shares, c.K)
	results, err := validate.New(r.arithmetic).Validate(shares, basis)
	if err != nil {
		return nil, err
	}
	f, err := r.arithmetic.Reconstruct(basis)
	if err != nil {
		return nil, fmt.Errorf("reconstruct: %w", err)
	}

	fingerprint, err := Fingerprint(c.Name, c.N, c.K, shares)
	if err != nil {
		return nil, err
	}

	rc := &report.Case{
		Name:        c.Name,
		N:           c.N,
		K:           c.K,
		Arithmetic:  r.arithmetic.Name(),
		Fingerprint: fingerprint,
		Results:     results,
		Polynomial:  f,
		Skipped:     len(c.Skipped),
	}
	log.Info().
		Str("fingerprint", fingerprint).
		Int("shares", len(shares)).
		Ints("wrong", validate.Mismatches(results)).
		Str("polynomial", f.String()).
		Msg("case done")
	return rc, nil
}

// RunAll processes every case in order. A failing case is reported through the Err field
// of its report.Case, and does not prevent the following cases from running.
func (r *Runner) RunAll(cases []*document.Case) []*report.Case {
	out := make([]*report.Case, 0, len(cases))
	for _, c := range cases {
		rc, err := r.Run(c)
		if err != nil {
			r.log.Error().Err(err).Str("case", c.Name).Msg("case failed")
			var caseErr Error
			if errors.As(err, &caseErr) {
				err = caseErr.Err
			}
			rc = &report.Case{
				Name:       c.Name,
				N:          c.N,
				K:          c.K,
				Arithmetic: r.arithmetic.Name(),
				Skipped:    len(c.Skipped),
				Err:        err,
			}
		}
		out = append(out, rc)
	}
	return out
}

// beyondExactFloat returns the indices of the shares whose value a float64 cannot hold exactly.
func beyondExactFloat(shares []share.Share) []int {
	var indices []int
	for _, s := range shares {
		if s.Y > params.MaxExactFloat || s.Y < -params.MaxExactFloat {
			indices = append(indices, s.Index)
		}
	}
	return indices
}

// Fingerprint identifies a case by its name, parameters and decoded shares.
func Fingerprint(name string, n, k int, shares []share.Share) (string, error) {
	h := hash.New()
	if err := h.WriteAny(name, types.ThresholdWrapper{N: uint32(n), K: uint32(k)}); err != nil {
		return "", err
	}
	for _, s := range shares {
		if err := h.WriteAny(s); err != nil {
			return "", err
		}
	}
	return h.Fingerprint(), nil
}
