package inventory

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// loadConfig carries the optional load dependencies.
type loadConfig struct {
	log zerolog.Logger
}

// LoadOption customizes a Load call.
type LoadOption func(*loadConfig)

// WithLogger attaches a logger to the load; per-file outcomes are logged
// under a fresh load_id.
func WithLogger(log zerolog.Logger) LoadOption {
	return func(c *loadConfig) {
		c.log = log
	}
}

// Load reads every .csv file in dir (lexicographic by name) into a fresh
// Store. Each file's header defines its local columns; the store's schema
// is the ordered union of every header. Files that fail to parse are
// skipped and reported in the returned FileError slice; only a directory
// that cannot be read at all is a hard error.
//
// Load never touches an existing store: callers replace their store with
// the returned one, so a failed load leaves the previous state intact.
func Load(dir string, opts ...LoadOption) (*Store, []FileError, error) {
	cfg := loadConfig{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, &IOError{Path: dir, Err: err}
	}

	log := cfg.log.With().Str("load_id", uuid.NewString()).Logger()

	store := NewStore()
	var fails []FileError
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".csv" {
			continue
		}

		name := entry.Name()
		header, rows, err := readFile(filepath.Join(dir, name), name)
		if err != nil {
			log.Warn().Str("file", name).Err(err).Msg("skipping file")
			fails = append(fails, FileError{File: name, Err: err})
			continue
		}

		for _, col := range header {
			store.addColumn(col)
		}
		store.appendRows(name, rows)
		log.Info().Str("file", name).Int("rows", len(rows)).Msg("loaded file")
	}

	log.Info().
		Int("rows", store.RowCount()).
		Int("columns", len(store.columns)).
		Int("failed_files", len(fails)).
		Msg("load complete")

	return store, fails, nil
}

// readFile parses one CSV file. The first record is the header; every
// following record becomes a Row keyed by that header. A parse error
// anywhere discards the whole file so a partially-read file never reaches
// the store.
func readFile(path, name string) ([]string, []Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, &IOError{Path: path, Err: err}
	}
	defer f.Close()

	r := csv.NewReader(f)

	header, err := r.Read()
	if err == io.EOF {
		return nil, nil, &ParseError{File: name, Err: errors.New("empty file")}
	}
	if err != nil {
		return nil, nil, &ParseError{File: name, Err: err}
	}

	var rows []Row
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, &ParseError{File: name, Err: err}
		}

		row := make(Row, len(header))
		for i, col := range header {
			if i >= len(record) {
				break
			}
			if v := ParseValue(record[i]); !v.IsNull() {
				row[col] = v
			}
		}
		rows = append(rows, row)
	}

	return header, rows, nil
}
