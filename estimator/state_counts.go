// Package estimator: the state-counting aggregation.

package estimator

import "fmt"

// CountOption configures a single StateCounts call.
type CountOption func(*countOptions)

type countOptions struct {
	parents      []string
	completeOnly bool
}

// Parents conditions the counts on the given parent variables, in order.
func Parents(variables ...string) CountOption {
	return func(o *countOptions) {
		o.parents = append([]string(nil), variables...)
	}
}

// CompleteSamplesOnly overrides the estimator's default row-filtering
// policy for this call.
func CompleteSamplesOnly(complete bool) CountOption {
	return func(o *countOptions) { o.completeOnly = complete }
}

// CountTable is a zero-filled contingency table: one row per target state,
// one column per joint parent-state assignment. With no parents it has a
// single column whose assignment is empty.
type CountTable struct {
	// Variable is the target variable.
	Variable string

	// States are the row labels: the target's state space.
	States []string

	// Parents are the conditioning variables, empty when unconditioned.
	Parents []string

	// Assignments holds one parent-state combination per column, aligned
	// with Parents; combinations enumerate the cartesian product of the
	// parent state spaces in parent order, rightmost parent fastest.
	Assignments [][]string

	// Counts is indexed [state row][assignment column].
	Counts [][]float64
}

// Count returns the count for a target state under a parent assignment
// (given in Parents order; none when the table is unconditioned). Unknown
// states or assignments count zero.
func (t *CountTable) Count(state string, parentStates ...string) float64 {
	row := -1
	for i, s := range t.States {
		if s == state {
			row = i
			break
		}
	}
	if row < 0 {
		return 0
	}
	for j, a := range t.Assignments {
		if equalStrings(a, parentStates) {
			return t.Counts[row][j]
		}
	}

	return 0
}

// StateCounts aggregates the dataset into a contingency table of counts for
// the target variable, optionally conditioned on parent variables.
//
// Row filtering:
//   - complete-samples-only (per-call option, defaulting to the estimator's
//     policy): a row missing a value in ANY dataset column is excluded from
//     all counts;
//   - otherwise a row is counted unless the target cell or a requested
//     parent cell is missing.
//
// The table is zero-filled: every state of the target and every combination
// of parent states appears even when unobserved.
//
// Error conditions:
//   - ErrUnknownVariable : the target or a parent is not a dataset column.
//
// Complexity: O(R·P + Π|states(parent)|) for R rows and P parents.
func (e *Estimator) StateCounts(variable string, opts ...CountOption) (*CountTable, error) {
	o := countOptions{completeOnly: e.completeSamplesOnly}
	for _, opt := range opts {
		opt(&o)
	}

	// 1. Resolve columns and state spaces.
	col, ok := e.data.index[variable]
	if !ok {
		return nil, fmt.Errorf("%q: %w", variable, ErrUnknownVariable)
	}
	states, err := e.States(variable)
	if err != nil {
		return nil, err
	}
	parentCols := make([]int, len(o.parents))
	parentStates := make([][]string, len(o.parents))
	for i, p := range o.parents {
		pc, ok := e.data.index[p]
		if !ok {
			return nil, fmt.Errorf("%q: %w", p, ErrUnknownVariable)
		}
		parentCols[i] = pc
		if parentStates[i], err = e.States(p); err != nil {
			return nil, err
		}
	}

	// 2. Zero-filled table over the full cartesian assignment space.
	assignments := cartesian(parentStates)
	table := &CountTable{
		Variable:    variable,
		States:      states,
		Parents:     append([]string(nil), o.parents...),
		Assignments: assignments,
		Counts:      make([][]float64, len(states)),
	}
	for i := range table.Counts {
		table.Counts[i] = make([]float64, len(assignments))
	}
	rowOf := make(map[string]int, len(states))
	for i, s := range states {
		rowOf[s] = i
	}
	colOf := make(map[string]int, len(assignments))
	for j, a := range assignments {
		colOf[assignmentKey(a)] = j
	}

	// 3. Aggregate the rows that pass the filtering policy.
	for _, sample := range e.data.rows {
		if o.completeOnly && !e.data.complete(sample) {
			continue
		}
		if sample[col] == Missing {
			continue
		}
		assignment := make([]string, len(parentCols))
		observed := true
		for i, pc := range parentCols {
			if sample[pc] == Missing {
				observed = false
				break
			}
			assignment[i] = sample[pc]
		}
		if !observed {
			continue
		}
		row, ok := rowOf[sample[col]]
		if !ok {
			// A state outside an explicit enumeration is not counted.
			continue
		}
		if j, ok := colOf[assignmentKey(assignment)]; ok {
			table.Counts[row][j]++
		}
	}

	return table, nil
}

// cartesian enumerates the product of the given state spaces in order,
// rightmost space fastest. With no spaces it returns the single empty
// assignment.
func cartesian(spaces [][]string) [][]string {
	out := [][]string{{}}
	for _, space := range spaces {
		next := make([][]string, 0, len(out)*len(space))
		for _, prefix := range out {
			for _, s := range space {
				a := make([]string, len(prefix)+1)
				copy(a, prefix)
				a[len(prefix)] = s
				next = append(next, a)
			}
		}
		out = next
	}

	return out
}

// assignmentKey flattens an assignment for map lookup.
func assignmentKey(a []string) string {
	key := ""
	for _, s := range a {
		key += s + "\x1f"
	}

	return key
}

// equalStrings reports elementwise equality of two string slices.
func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
