// Package factor implements dense discrete potential tables and the factor
// algebra used for exact inference: products over the union of scopes and
// marginalization (summing out variables).
//
// A Factor holds an ordered scope of distinct variables, a positive
// cardinality per variable, and a flat row-major value buffer in which the
// last scope variable varies fastest (offset = Σ state[i]·stride[i], with
// stride[i] = Π cardinality[j] for j > i). All operations return factors
// owning fresh buffers; a derived factor never aliases its source.
//
// Errors:
//
//	ErrNilFactor          - nil operand passed to a binary operation.
//	ErrEmptyScope         - scope is (or would become) empty.
//	ErrDuplicateVariable  - a variable appears twice in one scope.
//	ErrCardinality        - non-positive or inconsistent cardinality.
//	ErrValueCount         - value buffer length does not match the shape.
//	ErrVariableNotInScope - an operation named a variable outside the scope.
package factor

import (
	"errors"
	"fmt"
)

// Sentinel errors for factor construction and algebra.
var (
	// ErrNilFactor indicates a nil *Factor operand.
	ErrNilFactor = errors.New("factor: nil factor")

	// ErrEmptyScope indicates an empty variable scope.
	ErrEmptyScope = errors.New("factor: empty scope")

	// ErrDuplicateVariable indicates a repeated variable in a scope.
	ErrDuplicateVariable = errors.New("factor: duplicate variable in scope")

	// ErrCardinality indicates a non-positive cardinality, a scope/cardinality
	// length mismatch, or operands disagreeing on a shared variable's
	// cardinality.
	ErrCardinality = errors.New("factor: invalid cardinality")

	// ErrValueCount indicates len(values) != product of cardinalities.
	ErrValueCount = errors.New("factor: value count does not match cardinalities")

	// ErrVariableNotInScope indicates a named variable absent from the scope.
	ErrVariableNotInScope = errors.New("factor: variable not in scope")
)

// Factor is a dense potential table over an ordered scope of discrete
// variables. Construct with New; the zero value is not usable.
type Factor struct {
	variables   []string  // ordered scope; distinct
	cardinality []int     // aligned with variables; each >= 1
	values      []float64 // row-major, last variable fastest
}

// New creates a Factor over the given ordered scope. All three slices are
// copied; the caller keeps ownership of its arguments.
//
// Error conditions:
//   - ErrEmptyScope        : variables is empty.
//   - ErrDuplicateVariable : a variable repeats in the scope.
//   - ErrCardinality       : len mismatch with variables, or an entry < 1.
//   - ErrValueCount        : len(values) != product of cardinalities.
//
// Complexity: O(len(values)).
func New(variables []string, cardinality []int, values []float64) (*Factor, error) {
	if len(variables) == 0 {
		return nil, ErrEmptyScope
	}
	if len(cardinality) != len(variables) {
		return nil, fmt.Errorf("%d cardinalities for %d variables: %w",
			len(cardinality), len(variables), ErrCardinality)
	}
	seen := make(map[string]struct{}, len(variables))
	size := 1
	for i, v := range variables {
		if _, dup := seen[v]; dup {
			return nil, fmt.Errorf("%q: %w", v, ErrDuplicateVariable)
		}
		seen[v] = struct{}{}
		if cardinality[i] < 1 {
			return nil, fmt.Errorf("%q has cardinality %d: %w",
				v, cardinality[i], ErrCardinality)
		}
		size *= cardinality[i]
	}
	if len(values) != size {
		return nil, fmt.Errorf("got %d values, want %d: %w",
			len(values), size, ErrValueCount)
	}

	f := &Factor{
		variables:   make([]string, len(variables)),
		cardinality: make([]int, len(cardinality)),
		values:      make([]float64, len(values)),
	}
	copy(f.variables, variables)
	copy(f.cardinality, cardinality)
	copy(f.values, values)

	return f, nil
}

// Scope returns a copy of the ordered variable scope.
func (f *Factor) Scope() []string {
	scope := make([]string, len(f.variables))
	copy(scope, f.variables)

	return scope
}

// InScope reports whether the named variable belongs to the scope.
func (f *Factor) InScope(variable string) bool {
	return f.axis(variable) >= 0
}

// Cardinality returns the number of states of the named scope variable.
// Returns ErrVariableNotInScope when the variable is not in scope.
func (f *Factor) Cardinality(variable string) (int, error) {
	ax := f.axis(variable)
	if ax < 0 {
		return 0, fmt.Errorf("%q: %w", variable, ErrVariableNotInScope)
	}

	return f.cardinality[ax], nil
}

// Values returns a copy of the flat row-major value buffer.
func (f *Factor) Values() []float64 {
	values := make([]float64, len(f.values))
	copy(values, f.values)

	return values
}

// Copy returns an independent deep copy of the factor.
func (f *Factor) Copy() *Factor {
	c, _ := New(f.variables, f.cardinality, f.values)

	return c
}

// axis returns the position of the variable in the scope, or -1.
func (f *Factor) axis(variable string) int {
	for i, v := range f.variables {
		if v == variable {
			return i
		}
	}

	return -1
}

// strides returns the per-axis stride of the row-major layout:
// stride[i] = Π cardinality[j] for j > i.
func (f *Factor) strides() []int {
	s := make([]int, len(f.cardinality))
	acc := 1
	for i := len(f.cardinality) - 1; i >= 0; i-- {
		s[i] = acc
		acc *= f.cardinality[i]
	}

	return s
}
