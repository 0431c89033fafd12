// Package factor: product, marginalization, and normalization.
//
// Product is the outer join over the union of two scopes: the result table
// ranges over every joint assignment and multiplies the aligned entries of
// both operands. Marginalize sums named variables out. Both walk the result
// table with a single odometer over joint assignments, carrying per-operand
// flat offsets updated by precomputed strides, so no per-entry index
// arithmetic beyond the carry loop is needed.

package factor

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Product returns the elementwise product of f and other over the union of
// their scopes. The result's scope is f's scope followed by other's extra
// variables in other's order. Commutative and associative up to variable
// order. The result owns a fresh buffer.
//
// Error conditions:
//   - ErrNilFactor   : other is nil.
//   - ErrCardinality : a shared variable has different cardinalities.
//
// Complexity: O(N) where N is the size of the result table.
func (f *Factor) Product(other *Factor) (*Factor, error) {
	if other == nil {
		return nil, ErrNilFactor
	}

	// 1. Check shared variables agree on cardinality.
	for i, v := range f.variables {
		if ax := other.axis(v); ax >= 0 && other.cardinality[ax] != f.cardinality[i] {
			return nil, fmt.Errorf("%q has cardinality %d vs %d: %w",
				v, f.cardinality[i], other.cardinality[ax], ErrCardinality)
		}
	}

	// 2. Fast path: identical scopes in identical order multiply flat.
	if sameScope(f.variables, other.variables) {
		out := f.Copy()
		floats.Mul(out.values, other.values)

		return out, nil
	}

	// 3. Result scope: f's variables, then other's variables not in f.
	resVars := make([]string, 0, len(f.variables)+len(other.variables))
	resCard := make([]int, 0, cap(resVars))
	resVars = append(resVars, f.variables...)
	resCard = append(resCard, f.cardinality...)
	for i, v := range other.variables {
		if f.axis(v) < 0 {
			resVars = append(resVars, v)
			resCard = append(resCard, other.cardinality[i])
		}
	}

	// 4. Per-result-axis strides into each operand (0 when absent).
	fStr, oStr := f.strides(), other.strides()
	strideF := make([]int, len(resVars))
	strideO := make([]int, len(resVars))
	size := 1
	for k, v := range resVars {
		if ax := f.axis(v); ax >= 0 {
			strideF[k] = fStr[ax]
		}
		if ax := other.axis(v); ax >= 0 {
			strideO[k] = oStr[ax]
		}
		size *= resCard[k]
	}

	// 5. Odometer walk over all joint assignments.
	values := make([]float64, size)
	state := make([]int, len(resVars))
	offF, offO := 0, 0
	for i := 0; i < size; i++ {
		values[i] = f.values[offF] * other.values[offO]
		for k := len(state) - 1; k >= 0; k-- {
			state[k]++
			offF += strideF[k]
			offO += strideO[k]
			if state[k] < resCard[k] {
				break
			}
			state[k] = 0
			offF -= strideF[k] * resCard[k]
			offO -= strideO[k] * resCard[k]
		}
	}

	return &Factor{variables: resVars, cardinality: resCard, values: values}, nil
}

// Marginalize returns a new factor with the named variables summed out,
// keeping the remaining scope in its original order. The receiver is not
// modified. Passing no variables returns a plain copy.
//
// Error conditions:
//   - ErrVariableNotInScope : a named variable is absent from the scope.
//   - ErrEmptyScope         : summing out would leave no variables.
//
// Complexity: O(len(values)).
func (f *Factor) Marginalize(variables ...string) (*Factor, error) {
	if len(variables) == 0 {
		return f.Copy(), nil
	}

	// 1. Validate the variables and build the drop set.
	drop := make(map[string]struct{}, len(variables))
	for _, v := range variables {
		if f.axis(v) < 0 {
			return nil, fmt.Errorf("%q: %w", v, ErrVariableNotInScope)
		}
		drop[v] = struct{}{}
	}

	// 2. Remaining scope in original order.
	resVars := make([]string, 0, len(f.variables)-len(drop))
	resCard := make([]int, 0, cap(resVars))
	for i, v := range f.variables {
		if _, gone := drop[v]; !gone {
			resVars = append(resVars, v)
			resCard = append(resCard, f.cardinality[i])
		}
	}
	if len(resVars) == 0 {
		return nil, ErrEmptyScope
	}

	// 3. Per-source-axis stride into the result (0 for dropped axes).
	resStrides := make([]int, len(resVars))
	acc := 1
	for i := len(resCard) - 1; i >= 0; i-- {
		resStrides[i] = acc
		acc *= resCard[i]
	}
	stride := make([]int, len(f.variables))
	next := 0
	for i, v := range f.variables {
		if _, gone := drop[v]; !gone {
			stride[i] = resStrides[next]
			next++
		}
	}

	// 4. Accumulate every source entry into its result cell.
	values := make([]float64, acc)
	state := make([]int, len(f.variables))
	off := 0
	for i := 0; i < len(f.values); i++ {
		values[off] += f.values[i]
		for k := len(state) - 1; k >= 0; k-- {
			state[k]++
			off += stride[k]
			if state[k] < f.cardinality[k] {
				break
			}
			state[k] = 0
			off -= stride[k] * f.cardinality[k]
		}
	}

	return &Factor{variables: resVars, cardinality: resCard, values: values}, nil
}

// MarginalizeInPlace sums the named variables out of the receiver itself.
// Same error conditions as Marginalize.
func (f *Factor) MarginalizeInPlace(variables ...string) error {
	out, err := f.Marginalize(variables...)
	if err != nil {
		return err
	}
	*f = *out

	return nil
}

// Normalize scales the values so they sum to one. A zero-sum table is left
// unchanged.
func (f *Factor) Normalize() {
	if sum := floats.Sum(f.values); sum != 0 {
		floats.Scale(1/sum, f.values)
	}
}

// sameScope reports whether two scopes are identical element for element.
func sameScope(a, b []string) bool {
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
