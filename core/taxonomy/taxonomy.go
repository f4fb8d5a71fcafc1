// core/taxonomy/taxonomy.go
package taxonomy

import "strings"

// Rank prefixes follow the NCBI/GTDB convention:
// d__;p__;c__;o__;f__;g__;s__
const (
	genusIndex  = 5
	genusPrefix = "g__"
)

// Parse splits an NCBI-style taxonomy string into its rank list, trimming
// whitespace around each rank. An empty input yields an empty list.
func Parse(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ";")
	ranks := make([]string, 0, len(parts))
	for _, p := range parts {
		ranks = append(ranks, strings.TrimSpace(p))
	}
	return ranks
}

// Genus returns the genus rank of a taxonomy rank list. A genome has a genus
// only when the list carries at least six ranks and the genus rank is more
// than the bare "g__" placeholder; otherwise the genome is unaffiliated.
func Genus(ranks []string) (string, bool) {
	if len(ranks) <= genusIndex {
		return "", false
	}
	g := ranks[genusIndex]
	if g == "" || g == genusPrefix {
		return "", false
	}
	return g, true
}
