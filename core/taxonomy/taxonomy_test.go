package taxonomy

import (
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	got := Parse("d__Bacteria; p__Proteobacteria;c__Gamma;o__Ent;f__Entb;g__Escherichia;s__coli")
	want := []string{"d__Bacteria", "p__Proteobacteria", "c__Gamma", "o__Ent", "f__Entb", "g__Escherichia", "s__coli"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Parse = %v, want %v", got, want)
	}
	if Parse("") != nil {
		t.Errorf("Parse(\"\") should be nil")
	}
}

func TestGenus(t *testing.T) {
	tests := []struct {
		name  string
		ranks []string
		genus string
		ok    bool
	}{
		{"full", []string{"d__B", "p__P", "c__C", "o__O", "f__F", "g__Escherichia", "s__coli"}, "g__Escherichia", true},
		{"no species", []string{"d__B", "p__P", "c__C", "o__O", "f__F", "g__Escherichia"}, "g__Escherichia", true},
		{"placeholder", []string{"d__B", "p__P", "c__C", "o__O", "f__F", "g__", "s__"}, "", false},
		{"too short", []string{"d__B", "p__P", "c__C"}, "", false},
		{"empty", nil, "", false},
	}
	for _, tc := range tests {
		g, ok := Genus(tc.ranks)
		if g != tc.genus || ok != tc.ok {
			t.Errorf("%s: Genus = (%q,%v), want (%q,%v)", tc.name, g, ok, tc.genus, tc.ok)
		}
	}
}
