package inventory

import "iter"

// SourceFile records one ingested CSV file.
type SourceFile struct {
	Name string `json:"name"`
	Rows int    `json:"rows"`
}

// Store holds the unified row collection produced by one load: the rows in
// ingestion order (file order, then row order within each file) and the
// schema, the ordered union of every header seen.
//
// A Store is read-only once Load returns it. Load builds a fresh Store on
// every call; swapping a new Store in while another goroutine iterates the
// old one is the caller's problem to avoid — there is no locking here.
type Store struct {
	columns []string
	index   map[string]int
	rows    []Row
	sources []SourceFile
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{index: make(map[string]int)}
}

// RowCount returns the number of rows.
func (s *Store) RowCount() int {
	return len(s.rows)
}

// Columns returns the schema in first-seen order.
func (s *Store) Columns() []string {
	out := make([]string, len(s.columns))
	copy(out, s.columns)
	return out
}

// HasColumn reports whether the schema contains the named column.
func (s *Store) HasColumn(name string) bool {
	_, ok := s.index[name]
	return ok
}

// Sources returns the ingested files in load order.
func (s *Store) Sources() []SourceFile {
	out := make([]SourceFile, len(s.sources))
	copy(out, s.sources)
	return out
}

// All returns a restartable sequence over the rows in ingestion order.
func (s *Store) All() iter.Seq[Row] {
	return func(yield func(Row) bool) {
		for _, r := range s.rows {
			if !yield(r) {
				return
			}
		}
	}
}

// Preview returns the first min(n, RowCount) rows. n <= 0 yields an empty
// slice, n beyond the row count yields every row.
func (s *Store) Preview(n int) []Row {
	if n <= 0 {
		return []Row{}
	}
	if n > len(s.rows) {
		n = len(s.rows)
	}
	out := make([]Row, n)
	copy(out, s.rows[:n])
	return out
}

// addColumn appends a column to the schema if it is new.
func (s *Store) addColumn(name string) {
	if _, ok := s.index[name]; ok {
		return
	}
	s.index[name] = len(s.columns)
	s.columns = append(s.columns, name)
}

// appendRows commits one file's rows and records its provenance.
func (s *Store) appendRows(file string, rows []Row) {
	s.rows = append(s.rows, rows...)
	s.sources = append(s.sources, SourceFile{Name: file, Rows: len(rows)})
}
