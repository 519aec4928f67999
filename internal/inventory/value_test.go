package inventory

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValue_Empty(t *testing.T) {
	v := ParseValue("")
	assert.True(t, v.IsNull())
	assert.Equal(t, Null, v.Kind())
	assert.Equal(t, "", v.String())
}

func TestParseValue_Number(t *testing.T) {
	v := ParseValue("12.5")
	require.Equal(t, Number, v.Kind())

	// The raw text survives for equality comparisons.
	assert.Equal(t, "12.5", v.String())

	d, ok := v.Decimal()
	require.True(t, ok)
	assert.True(t, d.Equal(decimal.RequireFromString("12.5")))
}

func TestParseValue_NumberKeepsSourceText(t *testing.T) {
	// "4" and "4.0" are the same number but different text.
	a := ParseValue("4")
	b := ParseValue("4.0")
	assert.Equal(t, "4", a.String())
	assert.Equal(t, "4.0", b.String())
}

func TestParseValue_Text(t *testing.T) {
	v := ParseValue("aisle-3")
	assert.Equal(t, Text, v.Kind())
	assert.Equal(t, "aisle-3", v.String())

	_, ok := v.Decimal()
	assert.False(t, ok)
}

func TestValue_MarshalJSON(t *testing.T) {
	row := Row{
		"name":     ParseValue("widget"),
		"quantity": ParseValue("12.5"),
	}

	data, err := json.Marshal(row)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"widget","quantity":12.5}`, string(data))

	data, err = json.Marshal(Value{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))
}

func TestRow_AbsentColumnIsNull(t *testing.T) {
	row := Row{"name": ParseValue("widget")}
	assert.True(t, row.Value("price").IsNull())
}

func TestRow_CloneIsIndependent(t *testing.T) {
	row := Row{"name": ParseValue("widget")}
	clone := row.Clone()
	clone["name"] = ParseValue("gadget")

	assert.Equal(t, "widget", row.Value("name").String())
	assert.Equal(t, "gadget", clone.Value("name").String())
}
