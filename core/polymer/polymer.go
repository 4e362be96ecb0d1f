// core/polymer/polymer.go
package polymer

// Polymerizer owns one chain and the rule table that grows it.
// It is not safe for concurrent use.
type Polymerizer struct {
	chain []rune
	rules Rules
	steps int
}

// New splits chain into characters; rules are used as given and never mutated.
func New(chain string, rules Rules) *Polymerizer {
	if rules == nil {
		rules = Rules{}
	}
	return &Polymerizer{chain: []rune(chain), rules: rules}
}

// Chain returns the current chain.
func (p *Polymerizer) Chain() string { return string(p.chain) }

// Len returns the current chain length in characters.
func (p *Polymerizer) Len() int { return len(p.chain) }

// Rules returns the rule table.
func (p *Polymerizer) Rules() Rules { return p.rules }

// Steps reports how many expansion steps have been applied.
func (p *Polymerizer) Steps() int { return p.steps }

// ApplyRules performs one expansion step and replaces the stored chain.
func (p *Polymerizer) ApplyRules() {
	p.chain = Expand(p.chain, p.rules)
	p.steps++
}

// Step applies n expansion steps.
func (p *Polymerizer) Step(n int) {
	for i := 0; i < n; i++ {
		p.ApplyRules()
	}
}

// Frequencies counts every element of the current chain.
func (p *Polymerizer) Frequencies() map[rune]int { return Count(p.chain) }

// Answer is the spread between the most and least frequent element.
func (p *Polymerizer) Answer() (int, error) { return Spread(p.Frequencies()) }

// Tally converts the current state into a pair-count tally.
func (p *Polymerizer) Tally() *Tally {
	t := NewTally(string(p.chain), p.rules)
	t.steps = p.steps
	return t
}

// Expand returns the next generation of chain. Chains shorter than two
// elements have no pairs and come back unchanged.
func Expand(chain []rune, rules Rules) []rune {
	pairs := splitPairs(chain)
	if len(pairs) == 0 {
		return append([]rune(nil), chain...)
	}
	frags := make([][]rune, len(pairs))
	for i, pr := range pairs {
		frags[i] = rules.apply(pr)
	}
	return glue(frags)
}

func splitPairs(chain []rune) []Pair {
	if len(chain) < 2 {
		return nil
	}
	pairs := make([]Pair, 0, len(chain)-1)
	for i := 0; i+1 < len(chain); i++ {
		pairs = append(pairs, Pair{chain[i], chain[i+1]})
	}
	return pairs
}

// glue joins overlapping fragments: each fragment's last element is the next
// fragment's first, so it is dropped everywhere except on the final fragment.
func glue(frags [][]rune) []rune {
	if len(frags) == 0 {
		return nil
	}
	n := 0
	for _, f := range frags {
		n += len(f)
	}
	out := make([]rune, 0, n-len(frags)+1)
	last := len(frags) - 1
	for _, f := range frags[:last] {
		out = append(out, f[:len(f)-1]...)
	}
	return append(out, frags[last]...)
}

// Count builds a frequency table for chain.
func Count(chain []rune) map[rune]int {
	freq := make(map[rune]int)
	for _, c := range chain {
		freq[c]++
	}
	return freq
}

// Spread returns max(count) - min(count) over freq.
func Spread(freq map[rune]int) (int, error) {
	if len(freq) == 0 {
		return 0, ErrEmptyChain
	}
	first := true
	var lo, hi int
	for _, n := range freq {
		if first {
			lo, hi, first = n, n, false
			continue
		}
		if n < lo {
			lo = n
		}
		if n > hi {
			hi = n
		}
	}
	return hi - lo, nil
}
