package output

// AnswerLine is the canonical text report. Keep it byte-stable.
const AnswerLine = "Answer for day 14: max - min frequency = %d\n"

// Result is one finished growth run.
type Result struct {
	Input       string
	Method      string
	Steps       int
	Length      int
	Answer      int
	Frequencies map[rune]int
	Chain       string // empty unless the chain was materialized and short
}
