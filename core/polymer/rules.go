// core/polymer/rules.go
package polymer

// Pair is two adjacent elements (characters) of a chain.
type Pair [2]rune

func (p Pair) String() string { return string(p[:]) }

// Rules maps a pair to the element inserted between its two halves.
type Rules map[Pair]rune

// apply returns the fragment for one pair: A<ins>B on a hit, AB on a miss.
func (r Rules) apply(p Pair) []rune {
	if ins, ok := r[p]; ok {
		return []rune{p[0], ins, p[1]}
	}
	return []rune{p[0], p[1]}
}
