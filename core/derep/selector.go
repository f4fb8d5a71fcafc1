// core/derep/selector.go
package derep

import (
	"fmt"
	"sync"
	"sync/atomic"

	"derep-core/aai"
)

// Progress is called after each candidate is processed.
type Progress func(done, total int)

// Config controls a selection run.
type Config struct {
	Threshold float64 // AAI threshold for clustering to a representative
	Threads   int     // workers for the per-candidate comparison scan (<=1 = sequential)
	Progress  Progress
}

// Selector grows a representative set greedily: each candidate, taken in
// Order() sequence, is either clustered to an existing representative whose
// aligned sequence is close enough on either marker-gene domain, or promoted
// to a representative itself.
type Selector struct {
	cfg     Config
	arSeqs  map[string]string
	bacSeqs map[string]string
}

// NewSelector builds a Selector over the two domain alignments.
func NewSelector(cfg Config, arSeqs, bacSeqs map[string]string) *Selector {
	return &Selector{cfg: cfg, arSeqs: arSeqs, bacSeqs: bacSeqs}
}

// query carries one candidate's sequences and its per-domain mismatch
// budgets, computed once and shared by every comparison for that candidate.
type query struct {
	arSeq, bacSeq       string
	arBudget, bacBudget float64
}

// Run consumes the ordered candidates front to back and returns the final
// representative set. reps is not modified; idx is updated in place as
// candidates are promoted. Candidates are expected to carry sequences in
// both alignments; a missing sequence is an upstream validation failure and
// aborts the run.
func (s *Selector) Run(reps Set, ordered []string, idx *GenusIndex) (Set, error) {
	out := reps.Clone()
	total := len(ordered)

	for i, id := range ordered {
		bacSeq, ok := s.bacSeqs[id]
		if !ok {
			return nil, fmt.Errorf("genome %s has no bacterial sequence", id)
		}
		arSeq, ok := s.arSeqs[id]
		if !ok {
			return nil, fmt.Errorf("genome %s has no archaeal sequence", id)
		}

		q := query{
			arSeq:     arSeq,
			bacSeq:    bacSeq,
			arBudget:  aai.MismatchBudget(arSeq, s.cfg.Threshold),
			bacBudget: aai.MismatchBudget(bacSeq, s.cfg.Threshold),
		}

		genus, _ := idx.GenusOf(id)
		genusReps := idx.Reps(genus)

		// Fast path: representatives sharing the candidate's genus.
		matched, err := s.scan(setToSlice(genusReps), q)
		if err != nil {
			return nil, err
		}

		// Slow path: everything the fast path did not cover.
		if !matched {
			rest := make([]string, 0, len(out))
			for rid := range out {
				if !genusReps.Contains(rid) {
					rest = append(rest, rid)
				}
			}
			matched, err = s.scan(rest, q)
			if err != nil {
				return nil, err
			}
		}

		if !matched {
			out.Add(id)
			idx.Add(id)
		}

		if s.cfg.Progress != nil {
			s.cfg.Progress(i+1, total)
		}
	}
	return out, nil
}

// compare tests one candidate against one representative; a match on either
// domain clusters the candidate.
func (s *Selector) compare(repID string, q query) (bool, error) {
	repBac, ok := s.bacSeqs[repID]
	if !ok {
		return false, fmt.Errorf("representative %s has no bacterial sequence", repID)
	}
	repAr, ok := s.arSeqs[repID]
	if !ok {
		return false, fmt.Errorf("representative %s has no archaeal sequence", repID)
	}
	if _, ok := aai.Mismatches(repBac, q.bacSeq, q.bacBudget); ok {
		return true, nil
	}
	if _, ok := aai.Mismatches(repAr, q.arSeq, q.arBudget); ok {
		return true, nil
	}
	return false, nil
}

// Scans shorter than this stay sequential: goroutine startup costs more than
// the comparisons it would save.
const minParallelScan = 16

// scan reports whether the candidate matches any of repIDs, stopping at the
// first match. With Threads > 1 the comparisons are split across workers;
// the decision is an OR over all of them, so the outcome does not depend on
// which worker finds a match first.
func (s *Selector) scan(repIDs []string, q query) (bool, error) {
	if len(repIDs) == 0 {
		return false, nil
	}

	threads := s.cfg.Threads
	if threads <= 1 || len(repIDs) < minParallelScan {
		for _, rid := range repIDs {
			m, err := s.compare(rid, q)
			if err != nil || m {
				return m, err
			}
		}
		return false, nil
	}

	jobs := make(chan string, threads*2)
	var (
		wg       sync.WaitGroup
		stop     atomic.Bool
		hit      atomic.Bool
		mu       sync.Mutex
		firstErr error
	)

	wg.Add(threads)
	for w := 0; w < threads; w++ {
		go func() {
			defer wg.Done()
			for rid := range jobs {
				if stop.Load() {
					continue
				}
				m, err := s.compare(rid, q)
				if err != nil {
					mu.Lock()
					if firstErr == nil {
						firstErr = err
					}
					mu.Unlock()
					stop.Store(true)
					continue
				}
				if m {
					hit.Store(true)
					stop.Store(true)
				}
			}
		}()
	}

	for _, rid := range repIDs {
		if stop.Load() {
			break
		}
		jobs <- rid
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return false, firstErr
	}
	return hit.Load(), nil
}

func setToSlice(s Set) []string {
	if len(s) == 0 {
		return nil
	}
	out := make([]string, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	return out
}
