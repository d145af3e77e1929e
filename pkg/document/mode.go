package document

import "fmt"

// Mode selects how many test cases a document holds.
type Mode int

const (
	// ModeAuto treats a document with a top-level "keys" object as a single test case,
	// and any other document as a collection of test cases.
	ModeAuto Mode = iota
	// ModeSingle treats the whole document as one test case.
	ModeSingle
	// ModeMulti treats every top-level key starting with CasePrefix as a test case.
	ModeMulti
)

// CasePrefix marks the top-level keys holding a test case in ModeMulti.
const CasePrefix = "testcase"

// SingleCaseName is the name given to the test case of a ModeSingle document.
const SingleCaseName = "document"

func (m Mode) String() string {
	switch m {
	case ModeAuto:
		return "auto"
	case ModeSingle:
		return "single"
	case ModeMulti:
		return "multi"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode is the inverse of Mode.String.
func ParseMode(s string) (Mode, error) {
	for _, m := range []Mode{ModeAuto, ModeSingle, ModeMulti} {
		if m.String() == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("document: unknown mode %q (want auto, single or multi)", s)
}
