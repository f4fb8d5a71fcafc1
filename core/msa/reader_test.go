package msa

import (
	"compress/gzip"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const plain = `>RS_GCF_000001 some description
MKL-V
>GB_GCA_000002
MKLAV
`

// writeGz creates a gzipped FASTA file with provided data, returns the file path.
func writeGz(t *testing.T, data string) string {
	tmpdir := os.TempDir()
	path := filepath.Join(tmpdir, fmt.Sprintf("msa-%d.faa.gz", time.Now().UnixNano()))
	fh, err := os.Create(path)
	if err != nil {
		t.Fatalf("tmp: %v", err)
	}
	gw := gzip.NewWriter(fh)
	if _, err := gw.Write([]byte(data)); err != nil {
		t.Fatalf("write gz: %v", err)
	}
	if err := gw.Close(); err != nil {
		t.Fatalf("close gzip: %v", err)
	}
	if err := fh.Close(); err != nil {
		t.Fatalf("close file: %v", err)
	}
	return path
}

func TestReadFrom(t *testing.T) {
	seqs, err := ReadFrom(strings.NewReader(plain))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(seqs) != 2 {
		t.Fatalf("expected 2 sequences, got %d", len(seqs))
	}
	if seqs["RS_GCF_000001"] != "MKL-V" {
		t.Errorf("description not stripped from ID, got %v", seqs)
	}
	if seqs["GB_GCA_000002"] != "MKLAV" {
		t.Errorf("unexpected sequence map: %v", seqs)
	}
}

func TestReadFromMultiLineSequence(t *testing.T) {
	seqs, err := ReadFrom(strings.NewReader(">a\nMK\nLV\n>b\nMKLV\n"))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if seqs["a"] != "MKLV" {
		t.Fatalf("wrapped sequence not joined: %q", seqs["a"])
	}
}

func TestReadFromRejectsRaggedAlignment(t *testing.T) {
	_, err := ReadFrom(strings.NewReader(">a\nMKLV\n>b\nMK\n"))
	if err == nil || !strings.Contains(err.Error(), "alignment length") {
		t.Fatalf("expected alignment length error, got %v", err)
	}
}

func TestReadFromRejectsDuplicateID(t *testing.T) {
	_, err := ReadFrom(strings.NewReader(">a\nMK\n>a\nLV\n"))
	if err == nil || !strings.Contains(err.Error(), "duplicate") {
		t.Fatalf("expected duplicate ID error, got %v", err)
	}
}

func TestReadGzip(t *testing.T) {
	gzPath := writeGz(t, plain)
	defer func() { _ = os.Remove(gzPath) }()

	seqs, err := Read(gzPath)
	if err != nil {
		t.Fatalf("read gz: %v", err)
	}
	if len(seqs) != 2 {
		t.Fatalf("gzip parse failed, seqs=%v", seqs)
	}
}
