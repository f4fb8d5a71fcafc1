// core/derep/order.go
package derep

import (
	"fmt"
	"sort"
	"strings"
)

// Genome identifier source prefixes, in processing priority order.
const (
	PrefixRefSeq  = "RS_"
	PrefixGenBank = "GB_"
	PrefixUser    = "U_"
)

func sourceRank(id string) (int, error) {
	switch {
	case strings.HasPrefix(id, PrefixRefSeq):
		return 0, nil
	case strings.HasPrefix(id, PrefixGenBank):
		return 1, nil
	case strings.HasPrefix(id, PrefixUser):
		return 2, nil
	}
	return 0, fmt.Errorf("unrecognized genome prefix: %s", id)
}

// Order produces the processing order for candidate genomes: RefSeq before
// GenBank before user-supplied, each bucket sorted by quality descending.
// Equal-quality genomes are ordered by identifier so repeated runs see the
// same sequence. An identifier with an unknown prefix is an error.
func Order(candidates Set, quality map[string]float64) ([]string, error) {
	var buckets [3][]string
	for id := range candidates {
		r, err := sourceRank(id)
		if err != nil {
			return nil, err
		}
		buckets[r] = append(buckets[r], id)
	}

	out := make([]string, 0, len(candidates))
	for _, b := range buckets {
		sort.Slice(b, func(i, j int) bool {
			qi, qj := quality[b[i]], quality[b[j]]
			if qi != qj {
				return qi > qj
			}
			return b[i] < b[j]
		})
		out = append(out, b...)
	}
	return out, nil
}
