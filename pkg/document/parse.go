package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

const keysField = "keys"

type field struct {
	key   string
	value json.RawMessage
}

type keysMarshal struct {
	N *flexInt `json:"n"`
	K *flexInt `json:"k"`
}

// flexInt accepts both 4 and "4".
type flexInt int

func (f *flexInt) UnmarshalJSON(data []byte) error {
	s := string(bytes.TrimSpace(data))
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = strings.TrimSpace(unquoted)
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("document: not an integer: %s", data)
	}
	*f = flexInt(v)
	return nil
}

type entryMarshal struct {
	Base  json.RawMessage `json:"base"`
	Value json.RawMessage `json:"value"`
}

// Parse reads a JSON document and returns its test cases, in document order.
//
// An error is returned only when the document as a whole cannot be read.
// Problems confined to one test case are recorded in its Err field instead.
func Parse(r io.Reader, mode Mode) ([]*Case, error) {
	fields, err := readObject(json.NewDecoder(r))
	if err != nil {
		return nil, err
	}

	if mode == ModeAuto {
		mode = ModeMulti
		for _, f := range fields {
			if f.key == keysField {
				mode = ModeSingle
				break
			}
		}
	}

	switch mode {
	case ModeSingle:
		block := make(map[string]json.RawMessage, len(fields))
		for _, f := range fields {
			block[f.key] = f.value
		}
		return []*Case{parseCase(SingleCaseName, block)}, nil
	case ModeMulti:
		var cases []*Case
		for _, f := range fields {
			if !strings.HasPrefix(f.key, CasePrefix) {
				continue
			}
			var block map[string]json.RawMessage
			if err := json.Unmarshal(f.value, &block); err != nil {
				cases = append(cases, &Case{Name: f.key, Err: Error{Case: f.key, Err: err}})
				continue
			}
			cases = append(cases, parseCase(f.key, block))
		}
		if len(cases) == 0 {
			return nil, ErrNoCases
		}
		return cases, nil
	default:
		return nil, fmt.Errorf("document: invalid mode %s", mode)
	}
}

// readObject reads the top-level object, keeping its keys in document order.
func readObject(dec *json.Decoder) ([]field, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("document: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errors.New("document: top level is not an object")
	}
	var fields []field
	for dec.More() {
		tok, err = dec.Token()
		if err != nil {
			return nil, fmt.Errorf("document: %w", err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("document: unexpected token %v", tok)
		}
		var value json.RawMessage
		if err = dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("document: value of %q: %w", key, err)
		}
		fields = append(fields, field{key: key, value: value})
	}
	if _, err = dec.Token(); err != nil {
		return nil, fmt.Errorf("document: %w", err)
	}
	return fields, nil
}

func parseCase(name string, block map[string]json.RawMessage) *Case {
	c := &Case{Name: name}

	var keys keysMarshal
	raw, ok := block[keysField]
	if !ok {
		c.Err = Error{Case: name, Err: ErrMissingKeys}
		return c
	}
	if err := json.Unmarshal(raw, &keys); err != nil {
		c.Err = Error{Case: name, Err: fmt.Errorf("%w: %v", ErrMissingKeys, err)}
		return c
	}
	if keys.N == nil || keys.K == nil {
		c.Err = Error{Case: name, Err: ErrMissingKeys}
		return c
	}
	c.N, c.K = int(*keys.N), int(*keys.K)

	// only canonical keys count: "01" or "+2" are not share indices
	entries := make(map[int]json.RawMessage, len(block))
	indices := make([]int, 0, len(block))
	for key, raw := range block {
		index, err := strconv.Atoi(key)
		if err != nil || index < 1 || index > c.N || key != strconv.Itoa(index) {
			continue
		}
		entries[index] = raw
		indices = append(indices, index)
	}
	sort.Ints(indices)

	for _, index := range indices {
		entry, ok := parseEntry(index, entries[index])
		if !ok {
			c.Skipped = append(c.Skipped, index)
			continue
		}
		c.Entries = append(c.Entries, entry)
	}
	return c
}

// parseEntry reads {"base": …, "value": …}.
// The base keeps only its decimal digits, so "base": "10", "base": 10 and "base": " 10 " agree.
// ok is false when either field is missing or the base has no digits.
func parseEntry(index int, raw json.RawMessage) (Entry, bool) {
	var em entryMarshal
	if err := json.Unmarshal(raw, &em); err != nil {
		return Entry{}, false
	}

	base, err := strconv.Atoi(digitsOf(em.Base))
	if err != nil {
		return Entry{}, false
	}

	value, ok := scalarText(em.Value)
	if !ok {
		return Entry{}, false
	}
	return Entry{Index: index, Base: base, Value: value}, true
}

func digitsOf(raw json.RawMessage) string {
	var b strings.Builder
	for _, c := range raw {
		if '0' <= c && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// scalarText returns the text of a JSON string or number.
func scalarText(raw json.RawMessage) (string, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s), true
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String(), true
	}
	return "", false
}
