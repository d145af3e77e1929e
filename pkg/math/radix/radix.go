package radix

import (
	"github.com/cronokirby/saferith"
	"github.com/taurusgroup/share-audit/internal/params"
)

// accumulatorBits is large enough to hold acc⋅base + digit for any acc < 2⁶³ and base ≤ 16.
const accumulatorBits = params.BitsValue + 8

// digitValue maps '0'…'9' to 0…9 and 'a'…'f' to 10…15.
// It returns -1 for every other byte, upper case letters included.
func digitValue(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'f':
		return int(c-'a') + 10
	default:
		return -1
	}
}

// ValidBase reports whether base can be decoded.
func ValidBase(base int) bool {
	return params.MinBase <= base && base <= params.MaxBase
}

// Decode interprets digits as a number written in the given base, most significant digit first.
//
// Share values are secret material, so the accumulation is done with saferith.Nat,
// which does not branch on the value being accumulated.
func Decode(digits string, base int) (int64, error) {
	if !ValidBase(base) {
		return 0, &InvalidBaseError{Base: base}
	}
	if len(digits) == 0 {
		return 0, &InvalidDigitError{Digits: digits, Base: base}
	}

	b := new(saferith.Nat).SetUint64(uint64(base))
	acc := new(saferith.Nat).SetUint64(0).Resize(accumulatorBits)
	d := new(saferith.Nat)
	for i := 0; i < len(digits); i++ {
		v := digitValue(digits[i])
		if v < 0 || v >= base {
			return 0, &InvalidDigitError{Digits: digits, Position: i, Base: base}
		}
		// acc = acc⋅base + v
		acc.Mul(acc, b, accumulatorBits)
		acc.Add(acc, d.SetUint64(uint64(v)), accumulatorBits)
		if acc.TrueLen() > params.BitsValue {
			return 0, &OverflowError{Digits: digits, Base: base}
		}
	}
	return int64(acc.Uint64()), nil
}
