package writers

import (
	"bytes"
	"testing"
)

func TestWriteRepListSorted(t *testing.T) {
	reps := map[string]struct{}{
		"U_c":  {},
		"RS_a": {},
		"GB_b": {},
	}
	var buf bytes.Buffer
	if err := WriteRepList(&buf, reps); err != nil {
		t.Fatalf("write: %v", err)
	}
	want := "GB_b\nRS_a\nU_c\n"
	if buf.String() != want {
		t.Fatalf("got %q, want %q", buf.String(), want)
	}
}

func TestWriteRepListEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteRepList(&buf, nil); err != nil {
		t.Fatalf("write: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("empty set should write nothing, got %q", buf.String())
	}
}
