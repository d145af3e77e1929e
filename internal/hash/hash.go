package hash

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/taurusgroup/share-audit/internal/params"
	"github.com/zeebo/blake3"
)

// Hash is the hash function used for fingerprinting test cases.
//
// Internally, this is a wrapper around blake3, with every written value
// prefixed by a domain so that different types never collide.
type Hash struct {
	h *blake3.Hasher
}

// New creates a Hash with an empty state.
func New() *Hash {
	return &Hash{h: blake3.New()}
}

// Digest returns a reader for the current output of the function.
//
// This finalizes the current state of the hash, and returns what's
// essentially a stream of random bytes.
func (hash *Hash) Digest() io.Reader {
	return hash.h.Digest()
}

// Sum returns a slice of length params.DigestLengthBytes resulting from the current hash state.
func (hash *Hash) Sum() []byte {
	out := make([]byte, params.DigestLengthBytes)
	if _, err := io.ReadFull(hash.Digest(), out); err != nil {
		panic(fmt.Sprintf("hash.Sum: internal hash failure: %v", err))
	}
	return out
}

// Fingerprint returns the hex encoding of the first 8 bytes of Sum, short enough for log lines.
func (hash *Hash) Fingerprint() string {
	return hex.EncodeToString(hash.Sum()[:8])
}

// WriteAny takes many different data types and writes them to the hash state.
//
// Currently supported types:
//
//   - []byte
//   - string
//   - int, int64
//   - hash.WriterToWithDomain
//
// This function will apply its own domain separation for the first three types.
// The last type already suggests which domain to use, and this function respects it.
func (hash *Hash) WriteAny(data ...interface{}) error {
	var err error
	for _, d := range data {
		switch t := d.(type) {
		case []byte:
			err = writeWithDomain(hash.h, &BytesWithDomain{
				TheDomain: "[]byte",
				Bytes:     t,
			})
			if err != nil {
				return fmt.Errorf("hash.Hash: write []byte: %w", err)
			}
		case string:
			err = writeWithDomain(hash.h, &BytesWithDomain{
				TheDomain: "string",
				Bytes:     []byte(t),
			})
			if err != nil {
				return fmt.Errorf("hash.Hash: write string: %w", err)
			}
		case int:
			if err = hash.writeInt64(int64(t)); err != nil {
				return fmt.Errorf("hash.Hash: write int: %w", err)
			}
		case int64:
			if err = hash.writeInt64(t); err != nil {
				return fmt.Errorf("hash.Hash: write int64: %w", err)
			}
		case WriterToWithDomain:
			if err = writeWithDomain(hash.h, t); err != nil {
				return fmt.Errorf("hash.Hash: write io.WriterTo: %w", err)
			}
		default:
			return fmt.Errorf("hash.Hash: unsupported type %T", d)
		}
	}
	return nil
}

func (hash *Hash) writeInt64(v int64) error {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, uint64(v))
	return writeWithDomain(hash.h, &BytesWithDomain{
		TheDomain: "int64",
		Bytes:     buf,
	})
}
