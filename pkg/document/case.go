package document

import (
	"github.com/taurusgroup/share-audit/pkg/math/radix"
	"github.com/taurusgroup/share-audit/pkg/share"
)

// Entry is an encoded share, as found in a document.
type Entry struct {
	Index int
	Base  int
	Value string
}

// Case is one independent test case of a document.
type Case struct {
	Name string
	// N is the declared number of shares and K the threshold.
	N, K int
	// Entries holds the well-formed shares with an index in 1…N, in increasing index order.
	Entries []Entry
	// Skipped holds the indices of shares that were present but had no usable base or value.
	Skipped []int
	// Err is set when the case itself could not be read.
	Err error
}

// Decode converts every entry to a share placed at x = index, in entry order.
// The first value that cannot be decoded fails the whole case.
func (c *Case) Decode() ([]share.Share, error) {
	shares := make([]share.Share, 0, len(c.Entries))
	for _, e := range c.Entries {
		y, err := radix.Decode(e.Value, e.Base)
		if err != nil {
			return nil, Error{Case: c.Name, Index: e.Index, Err: err}
		}
		shares = append(shares, share.New(e.Index, y))
	}
	return shares, nil
}
