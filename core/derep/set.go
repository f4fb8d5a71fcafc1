// core/derep/set.go
package derep

// Set is a set of genome identifiers.
type Set map[string]struct{}

// NewSet builds a Set from the given identifiers.
func NewSet(ids ...string) Set {
	s := make(Set, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func (s Set) Add(id string)           { s[id] = struct{}{} }
func (s Set) Contains(id string) bool { _, ok := s[id]; return ok }

// Clone returns an independent copy.
func (s Set) Clone() Set {
	out := make(Set, len(s))
	for id := range s {
		out[id] = struct{}{}
	}
	return out
}
