package vietqr

import (
	"fmt"
	"sort"
	"strings"
)

// RoutingTable resolves bank codes to BINs. It is immutable once built and
// safe for concurrent use.
type RoutingTable struct {
	entries     map[string]RoutingEntry
	defaultCode string
}

// DefaultRoutingTable is the built-in table with VCB as fallback.
var DefaultRoutingTable = mustRoutingTable(DefaultBankCode, defaultRoutingEntries...)

func mustRoutingTable(defaultCode string, entries ...RoutingEntry) *RoutingTable {
	rt, err := NewRoutingTable(defaultCode, entries...)
	if err != nil {
		panic(err)
	}
	return rt
}

// NewRoutingTable builds a table from entries. Codes are upper-cased; later
// entries override earlier ones with the same code. defaultCode must be one
// of the entries.
func NewRoutingTable(defaultCode string, entries ...RoutingEntry) (*RoutingTable, error) {
	rt := &RoutingTable{
		entries:     make(map[string]RoutingEntry, len(entries)),
		defaultCode: normalizeCode(defaultCode),
	}

	for _, e := range entries {
		code := normalizeCode(e.Code)
		if code == "" {
			return nil, &RoutingError{Code: e.Code, Err: fmt.Errorf("%w: empty code", ErrInvalidRoutingEntry)}
		}
		if len(e.BIN) != 6 || !isASCIIDigits(e.BIN) {
			return nil, &RoutingError{Code: e.Code, Err: fmt.Errorf("%w: BIN %q is not 6 digits", ErrInvalidRoutingEntry, e.BIN)}
		}
		e.Code = code
		rt.entries[code] = e
	}

	if _, ok := rt.entries[rt.defaultCode]; !ok {
		return nil, &RoutingError{Code: defaultCode, Err: ErrUnknownDefaultBank}
	}
	return rt, nil
}

// Merge returns a new table holding the receiver's entries overlaid with
// entries. The receiver is left untouched.
func (rt *RoutingTable) Merge(entries ...RoutingEntry) (*RoutingTable, error) {
	return rt.merge(rt.defaultCode, entries...)
}

// WithDefault returns a copy of the table using code as fallback.
func (rt *RoutingTable) WithDefault(code string) (*RoutingTable, error) {
	return rt.merge(code)
}

func (rt *RoutingTable) merge(defaultCode string, entries ...RoutingEntry) (*RoutingTable, error) {
	all := make([]RoutingEntry, 0, len(rt.entries)+len(entries))
	all = append(all, rt.Entries()...)
	all = append(all, entries...)
	return NewRoutingTable(defaultCode, all...)
}

// Resolve returns the entry for code and whether it was found. Unknown
// codes yield the default entry with ok == false.
func (rt *RoutingTable) Resolve(code string) (RoutingEntry, bool) {
	if e, ok := rt.entries[normalizeCode(code)]; ok {
		return e, true
	}
	return rt.entries[rt.defaultCode], false
}

// Lookup returns the BIN for code, falling back to the default bank.
func (rt *RoutingTable) Lookup(code string) string {
	e, _ := rt.Resolve(code)
	return e.BIN
}

// Default returns the fallback entry.
func (rt *RoutingTable) Default() RoutingEntry {
	return rt.entries[rt.defaultCode]
}

// Entries returns all entries sorted by code.
func (rt *RoutingTable) Entries() []RoutingEntry {
	result := make([]RoutingEntry, 0, len(rt.entries))
	for _, e := range rt.entries {
		result = append(result, e)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Code < result[j].Code
	})
	return result
}

// Len returns the number of codes in the table.
func (rt *RoutingTable) Len() int {
	return len(rt.entries)
}

// RoutingID looks code up in DefaultRoutingTable.
func RoutingID(code string) string {
	return DefaultRoutingTable.Lookup(code)
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
