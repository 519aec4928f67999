// Package inventory implements the in-memory inventory dataset: multi-file
// CSV ingestion with schema reconciliation, predicate search, per-category
// aggregation, and row preview.
package inventory

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Kind discriminates the cell value variants.
type Kind int

const (
	Null Kind = iota
	Text
	Number
)

// Value is a single cell. Numeric cells keep the raw source text so that
// equality comparisons see exactly what the file said, while aggregation
// works on the parsed decimal.
type Value struct {
	kind Kind
	raw  string
	num  decimal.Decimal
}

// ParseValue classifies one CSV field. Empty text is Null, text accepted by
// the decimal parser is Number, anything else is Text.
func ParseValue(text string) Value {
	if text == "" {
		return Value{}
	}
	if d, err := decimal.NewFromString(text); err == nil {
		return Value{kind: Number, raw: text, num: d}
	}
	return Value{kind: Text, raw: text}
}

// Kind returns the variant of the cell. The zero Value is Null.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull reports whether the cell is absent.
func (v Value) IsNull() bool {
	return v.kind == Null
}

// String returns the textual form of the cell: the raw source text for Text
// and Number cells, "" for Null.
func (v Value) String() string {
	return v.raw
}

// Decimal returns the numeric form of the cell and whether the cell is
// numeric.
func (v Value) Decimal() (decimal.Decimal, bool) {
	if v.kind != Number {
		return decimal.Decimal{}, false
	}
	return v.num, true
}

// MarshalJSON encodes Null as null, Number as a JSON number, and Text as a
// JSON string.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case Null:
		return []byte("null"), nil
	case Number:
		return []byte(v.num.String()), nil
	default:
		return json.Marshal(v.raw)
	}
}
