package cmdutil

import (
	"context"
)

// Grower is the surface shared by the materializing expander and the pair tally.
type Grower interface {
	ApplyRules()
	Steps() int
	Len() int
	Frequencies() map[rune]int
	Answer() (int, error)
}

// RunSteps applies n expansion steps to g, checking ctx between steps.
// after, if non-nil, is called once per completed step.
func RunSteps(ctx context.Context, g Grower, n int, after func(Grower)) error {
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		g.ApplyRules()
		if after != nil {
			after(g)
		}
	}
	return nil
}
