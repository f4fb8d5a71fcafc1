package derep

import (
	"reflect"
	"strings"
	"testing"
)

func TestOrderBucketsAndQuality(t *testing.T) {
	quality := map[string]float64{
		"U_low":   99.0, // user bucket always trails, even with top quality
		"RS_mid":  80.0,
		"RS_high": 95.0,
		"GB_high": 97.0,
		"GB_low":  50.0,
	}
	got, err := Order(NewSet("U_low", "RS_mid", "RS_high", "GB_high", "GB_low"), quality)
	if err != nil {
		t.Fatalf("Order: %v", err)
	}
	want := []string{"RS_high", "RS_mid", "GB_high", "GB_low", "U_low"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Order = %v, want %v", got, want)
	}
}

func TestOrderTieBreakIsLexical(t *testing.T) {
	quality := map[string]float64{"RS_b": 90, "RS_a": 90, "RS_c": 90}
	got, err := Order(NewSet("RS_b", "RS_a", "RS_c"), quality)
	if err != nil {
		t.Fatalf("Order: %v", err)
	}
	want := []string{"RS_a", "RS_b", "RS_c"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("tie-break order = %v, want %v", got, want)
	}
}

func TestOrderUnknownPrefix(t *testing.T) {
	_, err := Order(NewSet("XX_bad"), map[string]float64{"XX_bad": 1})
	if err == nil || !strings.Contains(err.Error(), "XX_bad") {
		t.Fatalf("expected unrecognized-prefix error naming the genome, got %v", err)
	}
}

func TestOrderEmpty(t *testing.T) {
	got, err := Order(NewSet(), nil)
	if err != nil || len(got) != 0 {
		t.Fatalf("Order(empty) = (%v,%v), want empty", got, err)
	}
}
