// core/polymer/tally.go
package polymer

// Tally tracks a chain as pair and element counts instead of materializing it.
// Each step costs O(distinct pairs), so large step counts stay cheap.
type Tally struct {
	pairs map[Pair]int
	elems map[rune]int
	rules Rules
	steps int
}

// NewTally seeds the counts from chain.
func NewTally(chain string, rules Rules) *Tally {
	elems := []rune(chain)
	if rules == nil {
		rules = Rules{}
	}
	t := &Tally{
		pairs: make(map[Pair]int),
		elems: Count(elems),
		rules: rules,
	}
	for _, pr := range splitPairs(elems) {
		t.pairs[pr]++
	}
	return t
}

// ApplyRules performs one expansion step on the counts.
func (t *Tally) ApplyRules() {
	next := make(map[Pair]int, len(t.pairs)*2)
	for pr, n := range t.pairs {
		ins, ok := t.rules[pr]
		if !ok {
			next[pr] += n
			continue
		}
		next[Pair{pr[0], ins}] += n
		next[Pair{ins, pr[1]}] += n
		t.elems[ins] += n
	}
	t.pairs = next
	t.steps++
}

// Step applies n expansion steps.
func (t *Tally) Step(n int) {
	for i := 0; i < n; i++ {
		t.ApplyRules()
	}
}

// Steps reports how many expansion steps have been applied.
func (t *Tally) Steps() int { return t.steps }

// Len is the length the materialized chain would have.
func (t *Tally) Len() int {
	n := 0
	for _, c := range t.elems {
		n += c
	}
	return n
}

// PairCount returns how often pr occurs in the chain.
func (t *Tally) PairCount(pr Pair) int { return t.pairs[pr] }

// Frequencies returns a copy of the element counts.
func (t *Tally) Frequencies() map[rune]int {
	out := make(map[rune]int, len(t.elems))
	for c, n := range t.elems {
		out[c] = n
	}
	return out
}

// Answer is the spread between the most and least frequent element.
func (t *Tally) Answer() (int, error) { return Spread(t.elems) }
