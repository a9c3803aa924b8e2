// SPDX-License-Identifier: MIT

package pattern

import "fmt"

// generatePointUniform removes cells independently and uniformly.
//
// Steps:
//  1. Partition the array by scope (global, per feature, per sample).
//  2. For each group: budget = EffectiveBudget(missing, size, ratio).
//  3. Draw min(budget, free) distinct free offsets without replacement.
//
// Complexity: O(size) time and memory.
func generatePointUniform(j *job) (*Outcome, error) {
	var requested int
	for gi, g := range j.groups() {
		budget, free := j.groupBudget(g)
		requested += budget
		k := budget
		if k > len(free) {
			if j.cfg.strict {
				return nil, j.shortfallErr(fmt.Sprintf("group %d", gi), budget, len(free))
			}
			k = len(free)
		}
		if k == 0 {
			continue
		}
		picks, err := j.stream.Choice(len(free), k, false)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", j.method, err)
		}
		for _, p := range picks {
			j.mark(free[p])
		}
	}
	return j.finish(requested, nil), nil
}
