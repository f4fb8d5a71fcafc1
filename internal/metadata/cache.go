// internal/metadata/cache.go
package metadata

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const cacheSchema = `
CREATE TABLE IF NOT EXISTS genomes (
	genome_id            TEXT PRIMARY KEY,
	checkm_completeness  REAL NOT NULL,
	checkm_contamination REAL NOT NULL,
	ncbi_taxonomy        TEXT NOT NULL DEFAULT ''
);`

// BuildCache compiles a metadata TSV into a sqlite database so repeated runs
// skip the TSV parse. Returns the number of genome records written.
func BuildCache(tsvPath, dbPath string) (int, error) {
	rows, err := readTSV(tsvPath)
	if err != nil {
		return 0, err
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return 0, fmt.Errorf("open cache %s: %w", dbPath, err)
	}
	defer func() { _ = db.Close() }()

	if _, err := db.Exec(cacheSchema); err != nil {
		return 0, fmt.Errorf("create cache schema: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin cache tx: %w", err)
	}
	stmt, err := tx.Prepare(`INSERT OR REPLACE INTO genomes
		(genome_id, checkm_completeness, checkm_contamination, ncbi_taxonomy)
		VALUES (?, ?, ?, ?)`)
	if err != nil {
		_ = tx.Rollback()
		return 0, fmt.Errorf("prepare insert: %w", err)
	}
	for _, r := range rows {
		if _, err := stmt.Exec(r.ID, r.Quality.Completeness, r.Quality.Contamination, r.TaxonomyStr); err != nil {
			_ = stmt.Close()
			_ = tx.Rollback()
			return 0, fmt.Errorf("insert %s: %w", r.ID, err)
		}
	}
	_ = stmt.Close()
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit cache: %w", err)
	}
	return len(rows), nil
}

func loadSQLite(path string) (*Metadata, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open cache %s: %w", path, err)
	}
	defer func() { _ = db.Close() }()

	res, err := db.Query(`SELECT genome_id, checkm_completeness, checkm_contamination, ncbi_taxonomy FROM genomes`)
	if err != nil {
		return nil, fmt.Errorf("query cache %s: %w", path, err)
	}
	defer func() { _ = res.Close() }()

	var rows []row
	for res.Next() {
		var r row
		if err := res.Scan(&r.ID, &r.Quality.Completeness, &r.Quality.Contamination, &r.TaxonomyStr); err != nil {
			return nil, fmt.Errorf("scan cache row: %w", err)
		}
		rows = append(rows, r)
	}
	if err := res.Err(); err != nil {
		return nil, fmt.Errorf("read cache %s: %w", path, err)
	}
	return fromRows(rows), nil
}
