package params

const (
	// MinBase and MaxBase bound the radix a share value may be encoded in.
	MinBase = 2
	MaxBase = 16

	// BitsValue is the number of magnitude bits of a decoded share value (int64).
	BitsValue = 63

	// CoefficientPrecision is the number of decimal places reconstructed coefficients are printed with.
	CoefficientPrecision = 2

	// MaxExactFloat = 2⁵³ is the largest magnitude below which every integer is representable in a float64.
	// Float interpolation is only guaranteed exact while intermediates stay below it.
	MaxExactFloat = 1 << 53

	// DigestLengthBytes is the size of a case fingerprint.
	DigestLengthBytes = 32
)
