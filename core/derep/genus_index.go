// core/derep/genus_index.go
package derep

import "derep-core/taxonomy"

// GenusIndex maps a genus label to the current representatives of that
// genus. It is an auxiliary locality structure over the representative set:
// lookups only narrow the comparison order, never the result, and the whole
// index can be rebuilt from (representatives x taxonomy) at any point.
type GenusIndex struct {
	genusOf map[string]string
	reps    map[string]Set
}

// NewGenusIndex derives each genome's genus from its taxonomy rank list and
// registers the starting representatives under theirs.
func NewGenusIndex(taxa map[string][]string, reps Set) *GenusIndex {
	x := &GenusIndex{
		genusOf: make(map[string]string, len(taxa)),
		reps:    make(map[string]Set),
	}
	for id, ranks := range taxa {
		if g, ok := taxonomy.Genus(ranks); ok {
			x.genusOf[id] = g
		}
	}
	x.Rebuild(reps)
	return x
}

// GenusOf returns the genus of a genome, if it has one.
func (x *GenusIndex) GenusOf(id string) (string, bool) {
	g, ok := x.genusOf[id]
	return g, ok
}

// Reps returns the representatives sharing a genus; nil when the genus is
// unknown, absent, or empty.
func (x *GenusIndex) Reps(genus string) Set {
	if genus == "" {
		return nil
	}
	return x.reps[genus]
}

// Add registers a newly promoted representative under its genus. Genomes
// without a genus are not indexed.
func (x *GenusIndex) Add(id string) {
	g, ok := x.genusOf[id]
	if !ok {
		return
	}
	s, ok := x.reps[g]
	if !ok {
		s = make(Set)
		x.reps[g] = s
	}
	s.Add(id)
}

// Rebuild drops all genus postings and re-registers the given representative
// set, restoring the index from its two sources of truth.
func (x *GenusIndex) Rebuild(reps Set) {
	x.reps = make(map[string]Set)
	for id := range reps {
		x.Add(id)
	}
}
