package builder

import (
	"fmt"
	"strconv"
)

// IDFn names the segment with the given zero-based sequence number.
// It must be deterministic: the same seq always yields the same ID.
type IDFn func(seq int) string

// Segment ID schemes accepted by IDScheme. Every scheme prepends a prefix
// to a code derived from the sequence number.
const (
	SchemeDecimal = "decimal" // 0, 1, ..., 9, 10, ...
	SchemeBase36  = "alnum"   // 0, ..., 9, a, ..., z, 10, ...
	SchemeLetters = "excel"   // A, ..., Z, AA, AB, ... (spreadsheet columns)
)

var schemeCodes = map[string]func(int) string{
	SchemeDecimal: strconv.Itoa,
	SchemeBase36:  func(seq int) string { return strconv.FormatInt(int64(seq), 36) },
	SchemeLetters: letterCode,
}

// Schemes lists the scheme names in documentation order.
func Schemes() []string {
	return []string{SchemeDecimal, SchemeBase36, SchemeLetters}
}

// IDScheme returns the generator prefix+code(seq) for the named scheme.
// An empty prefix is allowed; the codes alone are distinct.
//
// Errors: ErrUnknownIDScheme.
func IDScheme(scheme, prefix string) (IDFn, error) {
	code, ok := schemeCodes[scheme]
	if !ok {
		return nil, fmt.Errorf("%w: %q (want one of %v)", ErrUnknownIDScheme, scheme, Schemes())
	}

	return func(seq int) string {
		if seq < 0 {
			panic(fmt.Sprintf("builder: negative segment sequence %d", seq))
		}
		return prefix + code(seq)
	}, nil
}

// SymbolNumberIDFn returns prefix + decimal sequence, e.g. "s0", "s1", ...
func SymbolNumberIDFn(prefix string) IDFn {
	fn, _ := IDScheme(SchemeDecimal, prefix)

	return fn
}

// letterCode spells seq as a spreadsheet column: 0→A, 25→Z, 26→AA.
func letterCode(seq int) string {
	var out []byte
	for i := seq; i >= 0; i = i/26 - 1 {
		out = append(out, byte('A'+i%26))
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	return string(out)
}
