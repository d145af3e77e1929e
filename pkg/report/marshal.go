package report

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/fxamacker/cbor/v2"
	"github.com/taurusgroup/share-audit/pkg/math/polynomial"
	"github.com/taurusgroup/share-audit/pkg/share"
)

type caseMarshal struct {
	Name         string
	N, K         int
	Arithmetic   string
	Fingerprint  string
	Results      []share.ValidationResult
	Coefficients []string
	Skipped      int
	Error        string `cbor:",omitempty"`
}

type archiveMarshal struct {
	Version int
	Cases   []cbor.RawMessage
}

const archiveVersion = 1

func (c *Case) MarshalBinary() ([]byte, error) {
	cm := &caseMarshal{
		Name:        c.Name,
		N:           c.N,
		K:           c.K,
		Arithmetic:  c.Arithmetic,
		Fingerprint: c.Fingerprint,
		Results:     c.Results,
		Skipped:     c.Skipped,
	}
	if c.Polynomial != nil {
		// exact rationals, so that nothing is lost to the two decimal display precision
		for _, coefficient := range c.Polynomial.Coefficients() {
			cm.Coefficients = append(cm.Coefficients, coefficient.RatString())
		}
	}
	if c.Err != nil {
		cm.Error = c.Err.Error()
	}
	return cbor.Marshal(cm)
}

func (c *Case) UnmarshalBinary(data []byte) error {
	var cm caseMarshal
	if err := cbor.Unmarshal(data, &cm); err != nil {
		return err
	}
	*c = Case{
		Name:        cm.Name,
		N:           cm.N,
		K:           cm.K,
		Arithmetic:  cm.Arithmetic,
		Fingerprint: cm.Fingerprint,
		Results:     cm.Results,
		Skipped:     cm.Skipped,
	}
	if len(cm.Coefficients) > 0 {
		coefficients := make([]*big.Rat, len(cm.Coefficients))
		for i, s := range cm.Coefficients {
			r, ok := new(big.Rat).SetString(s)
			if !ok {
				return fmt.Errorf("report: case %s: invalid coefficient %q", cm.Name, s)
			}
			coefficients[i] = r
		}
		c.Polynomial = polynomial.NewPolynomial(coefficients...)
	}
	if cm.Error != "" {
		c.Err = errors.New(cm.Error)
	}
	return nil
}

// MarshalArchive encodes the results of a whole run with CBOR.
func MarshalArchive(cases []*Case) ([]byte, error) {
	am := archiveMarshal{Version: archiveVersion, Cases: make([]cbor.RawMessage, 0, len(cases))}
	for _, c := range cases {
		data, err := c.MarshalBinary()
		if err != nil {
			return nil, fmt.Errorf("report: case %s: %w", c.Name, err)
		}
		am.Cases = append(am.Cases, data)
	}
	return cbor.Marshal(&am)
}

// UnmarshalArchive is the inverse of MarshalArchive.
func UnmarshalArchive(data []byte) ([]*Case, error) {
	var am archiveMarshal
	if err := cbor.Unmarshal(data, &am); err != nil {
		return nil, fmt.Errorf("report: %w", err)
	}
	if am.Version != archiveVersion {
		return nil, fmt.Errorf("report: unsupported archive version %d", am.Version)
	}
	cases := make([]*Case, len(am.Cases))
	for i, raw := range am.Cases {
		cases[i] = new(Case)
		if err := cases[i].UnmarshalBinary(raw); err != nil {
			return nil, err
		}
	}
	return cases, nil
}
