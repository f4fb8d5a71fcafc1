// core/msa/reader.go
package msa

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
)

// Read loads a FASTA multiple sequence alignment into an id -> aligned
// sequence map. The record ID is the first whitespace-delimited token of the
// header. Gzip input and "-" for stdin are handled the same way as plain
// files.
//
// Because the file is an alignment, every sequence must have the same length
// and every ID must be unique; either violation is an error.
func Read(path string) (map[string]string, error) {
	rc, err := openReader(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()

	seqs, err := ReadFrom(rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return seqs, nil
}

// ReadFrom parses a FASTA alignment from r. See Read for the invariants.
func ReadFrom(r io.Reader) (map[string]string, error) {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, maxLine)

	seqs := make(map[string]string)
	var (
		id     string
		seq    = make([]byte, 0, 1<<16)
		alnLen = -1
	)

	flush := func() error {
		if id == "" {
			if len(seq) > 0 {
				return fmt.Errorf("sequence data before first header")
			}
			return nil
		}
		if _, dup := seqs[id]; dup {
			return fmt.Errorf("duplicate sequence ID %q", id)
		}
		if alnLen < 0 {
			alnLen = len(seq)
		} else if len(seq) != alnLen {
			return fmt.Errorf("sequence %q has length %d, alignment length is %d", id, len(seq), alnLen)
		}
		seqs[id] = string(seq)
		return nil
	}

	for sc.Scan() {
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			if err := flush(); err != nil {
				return nil, err
			}
			id = parseHeaderID(line[1:])
			if id == "" {
				return nil, fmt.Errorf("empty FASTA header")
			}
			seq = seq[:0]
			continue
		}
		seq = append(seq, bytes.TrimSpace(line)...)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("fasta scan: %w", err)
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return seqs, nil
}

func parseHeaderID(hdr []byte) string {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i])
	}
	return string(hdr)
}
