// internal/metadata/metadata.go
package metadata

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"derep-core/taxonomy"
)

// Column names expected in the metadata TSV header. The genome identifier is
// always the first column, whatever its header says.
const (
	colCompleteness  = "checkm_completeness"
	colContamination = "checkm_contamination"
	colTaxonomy      = "ncbi_taxonomy"
)

// Quality is the CheckM-style quality record for one genome.
type Quality struct {
	Completeness  float64
	Contamination float64
}

// Score is the scalar quality used for ordering and thresholds.
func (q Quality) Score() float64 { return q.Completeness - q.Contamination }

// Metadata holds per-genome quality records and taxonomy rank lists.
type Metadata struct {
	Quality  map[string]Quality
	Taxonomy map[string][]string
}

// Load reads genome metadata from path. A .db or .sqlite extension selects
// the sqlite cache built by derep-meta; anything else is parsed as a
// (possibly gzipped) TSV.
func Load(path string) (*Metadata, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite":
		return loadSQLite(path)
	}
	return loadTSV(path)
}

// row is one parsed metadata record with the taxonomy still unsplit, shared
// between the TSV loader and the cache builder.
type row struct {
	ID          string
	Quality     Quality
	TaxonomyStr string
}

func fromRows(rows []row) *Metadata {
	m := &Metadata{
		Quality:  make(map[string]Quality, len(rows)),
		Taxonomy: make(map[string][]string, len(rows)),
	}
	for _, r := range rows {
		m.Quality[r.ID] = r.Quality
		if ranks := taxonomy.Parse(r.TaxonomyStr); ranks != nil {
			m.Taxonomy[r.ID] = ranks
		}
	}
	return m
}

func loadTSV(path string) (*Metadata, error) {
	rows, err := readTSV(path)
	if err != nil {
		return nil, err
	}
	return fromRows(rows), nil
}

func readTSV(path string) ([]row, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()

	var r io.Reader = fh
	if strings.HasSuffix(path, ".gz") {
		gr, err := gzip.NewReader(fh)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		defer func() { _ = gr.Close() }()
		r = gr
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return nil, fmt.Errorf("%s: empty metadata file", path)
	}
	header := strings.Split(sc.Text(), "\t")
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.TrimSpace(h)] = i
	}
	var need [3]int
	for i, name := range []string{colCompleteness, colContamination, colTaxonomy} {
		idx, ok := cols[name]
		if !ok {
			return nil, fmt.Errorf("%s: missing column %q", path, name)
		}
		need[i] = idx
	}

	var rows []row
	ln := 1
	for sc.Scan() {
		ln++
		line := sc.Text()
		if line == "" {
			continue
		}
		f := strings.Split(line, "\t")
		if len(f) < len(header) {
			return nil, fmt.Errorf("%s:%d: %d fields, header has %d", path, ln, len(f), len(header))
		}
		comp, err := strconv.ParseFloat(f[need[0]], 64)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: bad %s: %v", path, ln, colCompleteness, err)
		}
		cont, err := strconv.ParseFloat(f[need[1]], 64)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: bad %s: %v", path, ln, colContamination, err)
		}
		rows = append(rows, row{
			ID:          f[0],
			Quality:     Quality{Completeness: comp, Contamination: cont},
			TaxonomyStr: f[need[2]],
		})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rows, nil
}
