package match

import (
	"cmp"
	"slices"

	"record-generator/internal/common"
)

// DefaultMinScore is the similarity below which a name is not suggested.
const DefaultMinScore = 0.5

// Candidate is a known name scored against the name being looked up.
type Candidate struct {
	Name  string
	Score float64 // IdentSimilarity, 0-1
}

// CandidateList is sorted by score, best first.
type CandidateList []Candidate

// Rank scores every known name against target. Ties keep alphabetical
// order so the result is deterministic.
func Rank(target string, known []string) CandidateList {
	list := make(CandidateList, 0, len(known))
	for _, name := range known {
		list = append(list, Candidate{Name: name, Score: IdentSimilarity(target, name)})
	}

	slices.SortFunc(list, func(a, b Candidate) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}

		return cmp.Compare(a.Name, b.Name)
	})

	return list
}

// AboveThreshold returns the candidates scoring at least threshold.
func (c CandidateList) AboveThreshold(threshold float64) CandidateList {
	var out CandidateList

	for _, cand := range c {
		if cand.Score >= threshold {
			out = append(out, cand)
		}
	}

	return out
}

// Top returns at most n candidates.
func (c CandidateList) Top(n int) CandidateList {
	if n >= len(c) {
		return c
	}

	return c[:n]
}

// Names returns the candidate names in order.
func (c CandidateList) Names() []string {
	out := make([]string, len(c))
	for i, cand := range c {
		out[i] = cand.Name
	}

	return out
}

// Suggest returns up to limit known names similar to target, best first.
// Exact matches are never suggested; target is assumed to be unknown.
func Suggest(target string, known []string, limit int) []string {
	list := Rank(target, known).AboveThreshold(DefaultMinScore)
	list = slices.DeleteFunc(list, func(c Candidate) bool { return c.Name == target })

	if common.IsEmpty(list) {
		return nil
	}

	return list.Top(limit).Names()
}
