package types

import (
	"encoding/binary"
	"io"
)

// ThresholdWrapper wraps the (n, k) parameters of a test case and enables writing with domain.
type ThresholdWrapper struct {
	N, K uint32
}

// WriteTo implements io.WriterTo interface.
func (t ThresholdWrapper) WriteTo(w io.Writer) (int64, error) {
	intBuffer := make([]byte, 8)
	binary.BigEndian.PutUint32(intBuffer[:4], t.N)
	binary.BigEndian.PutUint32(intBuffer[4:], t.K)
	n, err := w.Write(intBuffer)
	return int64(n), err
}

// Domain implements hash.WriterToWithDomain.
func (ThresholdWrapper) Domain() string { return "Threshold" }
