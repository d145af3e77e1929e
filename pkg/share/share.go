package share

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Share is a decoded sample point (X, Y) of the unknown polynomial.
// X is conventionally the 1-based Index of the share in its document.
type Share struct {
	Index int
	X, Y  int64
}

// New returns the share with index i, placed at x = i.
func New(index int, y int64) Share {
	return Share{Index: index, X: int64(index), Y: y}
}

func (s Share) String() string {
	return fmt.Sprintf("share %d (%d, %d)", s.Index, s.X, s.Y)
}

// WriteTo implements io.WriterTo, writing Index, X and Y as big endian 64-bit integers.
func (s Share) WriteTo(w io.Writer) (int64, error) {
	buf := make([]byte, 24)
	binary.BigEndian.PutUint64(buf[0:], uint64(s.Index))
	binary.BigEndian.PutUint64(buf[8:], uint64(s.X))
	binary.BigEndian.PutUint64(buf[16:], uint64(s.Y))
	n, err := w.Write(buf)
	return int64(n), err
}

// Domain implements hash.WriterToWithDomain.
func (Share) Domain() string { return "Share" }

// ValidationResult records whether a share lies on the polynomial defined by a basis.
type ValidationResult struct {
	Index    int
	Reported int64
	Expected int64
	Matches  bool
}

func (r ValidationResult) String() string {
	if r.Matches {
		return fmt.Sprintf("Share %d is correct", r.Index)
	}
	return fmt.Sprintf("Share %d is WRONG (got %d, expected %d)", r.Index, r.Reported, r.Expected)
}
