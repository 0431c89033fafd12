// Package model: sentinel error set.
//
// All builders and mutators return these sentinels (possibly wrapped with
// context via fmt.Errorf and %w); tests and callers match with errors.Is.
// Every error here signals a malformed model definition, never a transient
// condition: nothing is retryable and nothing needs rollback, since the
// builders read the source model without mutating it.

package model

import "errors"

var (
	// ErrFactorScope indicates a factor referencing a variable that is not a
	// node of the model. Returned by AddFactors, which registers nothing
	// from the failing call.
	ErrFactorScope = errors.New("model: factor defined on variable not in the model")

	// ErrNoFactors indicates that a secondary-structure builder was invoked
	// on a model with zero registered factors.
	ErrNoFactors = errors.New("model: no factors associated with the model")

	// ErrIncompleteFactorization indicates that the product of all
	// registered factors does not cover every model variable, so per-clique
	// marginals of the joint cannot be formed.
	ErrIncompleteFactorization = errors.New("model: factors do not cover all model variables")

	// ErrCliqueNotFound indicates a junction-tree lookup with an unknown
	// clique key.
	ErrCliqueNotFound = errors.New("model: clique not found")

	// ErrFactorNodeNotFound indicates a factor-graph lookup with an unknown
	// factor-node ID.
	ErrFactorNodeNotFound = errors.New("model: factor node not found")
)
