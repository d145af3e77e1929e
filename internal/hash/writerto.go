package hash

import "io"

// WriterToWithDomain is a value that can write itself to a Hash, and names its domain.
//
// The domain keeps the encodings of different types apart when they happen to produce the same bytes.
type WriterToWithDomain interface {
	io.WriterTo

	// Domain returns a context string, unique for each implementor
	Domain() string
}

// writeWithDomain writes `(<domain><data>)`.
func writeWithDomain(w io.Writer, object WriterToWithDomain) error {
	if _, err := io.WriteString(w, "("+object.Domain()); err != nil {
		return err
	}
	if _, err := object.WriteTo(w); err != nil {
		return err
	}
	_, err := io.WriteString(w, ")")
	return err
}

// BytesWithDomain annotates raw bytes with a domain.
type BytesWithDomain struct {
	TheDomain string
	Bytes     []byte
}

// WriteTo implements io.WriterTo.
func (b BytesWithDomain) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(b.Bytes)
	return int64(n), err
}

// Domain implements WriterToWithDomain.
func (b BytesWithDomain) Domain() string {
	return b.TheDomain
}
