package inventory

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePredicate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Predicate
		wantErr bool
	}{
		{"simple", "category=electronics", Predicate{"category", "electronics"}, false},
		{"trims whitespace", " category = electronics ", Predicate{"category", "electronics"}, false},
		{"empty target", "category=", Predicate{"category", ""}, false},
		{"no equals", "category", Predicate{}, true},
		{"two equals", "a=b=c", Predicate{}, true},
		{"empty input", "", Predicate{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePredicate(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				var perr *PredicateError
				assert.True(t, errors.As(err, &perr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func searchFixture() *Store {
	rows := make([]Row, 0, 10)
	for i, category := range []string{
		"electronics", "tools", "electronics", "garden", "tools",
		"tools", "electronics", "garden", "", "tools",
	} {
		row := Row{"name": ParseValue(string(rune('a' + i)))}
		if category != "" {
			row["category"] = ParseValue(category)
		}
		rows = append(rows, row)
	}
	return newTestStore([]string{"name", "category"}, rows)
}

func TestSearch_ExactMatchesInRowOrder(t *testing.T) {
	store := searchFixture()

	rows, err := Search(store, "category=electronics")
	require.NoError(t, err)

	require.Len(t, rows, 3)
	assert.Equal(t, "a", rows[0].Value("name").String())
	assert.Equal(t, "c", rows[1].Value("name").String())
	assert.Equal(t, "g", rows[2].Value("name").String())
}

func TestSearch_AbsentColumnMatchesNothing(t *testing.T) {
	store := searchFixture()

	rows, err := Search(store, "warehouse=east")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestSearch_CaseSensitive(t *testing.T) {
	store := searchFixture()

	rows, err := Search(store, "category=Electronics")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestSearch_NullNeverMatches(t *testing.T) {
	store := searchFixture()

	// Row "i" has no category cell; even an empty target must not match it.
	rows, err := Search(store, "category=")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestSearch_NumericColumnsCompareAsText(t *testing.T) {
	store := newTestStore([]string{"quantity"}, []Row{
		{"quantity": ParseValue("4")},
		{"quantity": ParseValue("4.0")},
	})

	rows, err := Search(store, "quantity=4")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "4", rows[0].Value("quantity").String())
}

func TestSearch_MalformedPredicate(t *testing.T) {
	store := searchFixture()

	_, err := Search(store, "just some words")
	require.Error(t, err)

	var perr *PredicateError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "just some words", perr.Input)
}

func TestSearch_Idempotent(t *testing.T) {
	store := searchFixture()

	first, err := Search(store, "category=tools")
	require.NoError(t, err)
	second, err := Search(store, "category=tools")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSearch_EmptyStore(t *testing.T) {
	rows, err := Search(NewStore(), "category=tools")
	require.NoError(t, err)
	assert.Empty(t, rows)
}
