// core/aai/aai.go
package aai

import "strings"

// Gap is the alignment gap character.
const Gap = '-'

// MismatchBudget returns the maximum tolerable mismatch count for a query
// sequence at the given identity threshold. The budget scales with the
// query's aligned (non-gap) length, so it is computed once per query and
// reused across every representative comparison.
func MismatchBudget(seq string, threshold float64) float64 {
	return (1.0 - threshold) * float64(len(seq)-strings.Count(seq, "-"))
}

// Mismatches counts mismatching positions between two aligned sequences,
// aborting as soon as the running count exceeds budget. A position counts as
// a mismatch only when both residues are non-gap and differ. The second
// return is false once the budget is exceeded; the count is then meaningless.
//
// Aligned sequences are fixed-length by construction, so unequal lengths are
// a programming error and panic.
func Mismatches(a, b string, budget float64) (int, bool) {
	if len(a) != len(b) {
		panic("aai: aligned sequence length mismatch")
	}
	mm := 0
	for i := 0; i < len(a); i++ {
		if a[i] == Gap || b[i] == Gap {
			continue
		}
		if a[i] != b[i] {
			mm++
			if float64(mm) > budget {
				return mm, false
			}
		}
	}
	return mm, true
}

// Test reports whether two aligned sequences meet the identity threshold.
// It is the boolean convenience form of Mismatches with the budget derived
// from b, the query sequence.
func Test(a, b string, threshold float64) bool {
	_, ok := Mismatches(a, b, MismatchBudget(b, threshold))
	return ok
}
