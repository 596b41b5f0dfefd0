package analyzer

import "sort"

// Result holds the method keys of one DAO class split into two disjoint sets
type Result struct {
	conforming    map[string]bool
	nonConforming map[string]bool
	lines         map[string]int
}

// NewResult creates an empty result
func NewResult() *Result {
	return &Result{conforming: map[string]bool{}, nonConforming: map[string]bool{}, lines: map[string]int{}}
}

// Record places key in the set matching verdict. A key recorded as non-conforming
// stays non-conforming and keeps the line of its first non-conforming declaration.
func (r *Result) Record(key string, verdict Verdict, line int) {
	if verdict == NonConforming {
		if !r.nonConforming[key] {
			r.lines[key] = line
		}
		delete(r.conforming, key)
		r.nonConforming[key] = true
		return
	}
	if r.nonConforming[key] || r.conforming[key] {
		return
	}
	r.conforming[key] = true
	r.lines[key] = line
}

// Line returns the 1-based declaration line recorded for key, 0 if unknown
func (r *Result) Line(key string) int {
	return r.lines[key]
}

// Verdict returns the verdict recorded for key
func (r *Result) Verdict(key string) (Verdict, bool) {
	if r.nonConforming[key] {
		return NonConforming, true
	}
	if r.conforming[key] {
		return Conforming, true
	}
	return NonConforming, false
}

// Conforming returns a sorted snapshot of conforming keys
func (r *Result) Conforming() []string {
	return sortedKeys(r.conforming)
}

// NonConforming returns a sorted snapshot of non-conforming keys
func (r *Result) NonConforming() []string {
	return sortedKeys(r.nonConforming)
}

// Len returns the total number of recorded keys
func (r *Result) Len() int {
	return len(r.conforming) + len(r.nonConforming)
}

func sortedKeys(set map[string]bool) []string {
	result := make([]string, 0, len(set))
	for key := range set {
		result = append(result, key)
	}
	sort.Strings(result)
	return result
}
