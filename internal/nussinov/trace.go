package nussinov

import "fmt"

// Step is one frame of a traceback: the ranges still waiting to be
// explained, keyed "i-j", mapped to the color of their branch.
type Step map[string]int

// Trace replays the same traceback as Reconstruct but records the pending
// ranges after every range it explains, for animating how a structure is
// recovered. The first Step holds only (0, n-1).
func Trace(m *Matrix, seq Sequence, minLoop int) ([]Step, error) {
	steps := []Step{}
	err := traceback(m, seq, minLoop, nil, func(stack []span) {
		step := make(Step, len(stack))
		for _, s := range stack {
			step[fmt.Sprintf("%d-%d", s.i, s.j)] = s.color
		}
		steps = append(steps, step)
	})
	if err != nil {
		return nil, err
	}
	return steps, nil
}
