// Package estimator provides state counting over tabular sample data: the
// contingency tables of (variable state) × (joint parent-state combination)
// counts that parameter estimators are built from.
//
// A Dataset is a small column-ordered table of string-valued cells with an
// explicit missing marker; StateCounts aggregates it into a zero-filled
// CountTable. State spaces come either from an explicit enumeration
// (WithStateNames) or from the sorted distinct observed values of a column —
// always over the full dataset, independent of any per-call row filtering.
//
// Errors:
//
//	ErrUnknownVariable - a target or parent variable is not a dataset column.
package estimator

import (
	"errors"
	"fmt"
	"sort"
)

// Missing marks an absent cell. Rows appended without a value for a column
// get Missing in that column.
const Missing = ""

// ErrUnknownVariable indicates a variable that is not among the dataset's
// columns.
var ErrUnknownVariable = errors.New("estimator: variable not in dataset")

// Dataset is a column-ordered table of samples. Rows are appended; cells are
// string state labels, Missing when unobserved.
type Dataset struct {
	columns []string
	index   map[string]int
	rows    [][]string
}

// NewDataset creates an empty dataset over the given columns.
func NewDataset(columns ...string) *Dataset {
	index := make(map[string]int, len(columns))
	for i, c := range columns {
		index[c] = i
	}

	return &Dataset{columns: columns, index: index}
}

// Append adds one sample row. Columns absent from the map get Missing.
func (d *Dataset) Append(row map[string]string) {
	cells := make([]string, len(d.columns))
	for i, c := range d.columns {
		if v, ok := row[c]; ok {
			cells[i] = v
		} else {
			cells[i] = Missing
		}
	}
	d.rows = append(d.rows, cells)
}

// Columns returns the column names in table order.
func (d *Dataset) Columns() []string {
	out := make([]string, len(d.columns))
	copy(out, d.columns)

	return out
}

// Len returns the number of sample rows.
func (d *Dataset) Len() int {
	return len(d.rows)
}

// complete reports whether the row has no missing cell in any column.
func (d *Dataset) complete(row []string) bool {
	for _, cell := range row {
		if cell == Missing {
			return false
		}
	}

	return true
}

// Estimator computes state counts over a Dataset.
type Estimator struct {
	data                *Dataset
	stateNames          map[string][]string
	completeSamplesOnly bool
}

// Option configures an Estimator.
type Option func(*Estimator)

// WithStateNames fixes explicit state enumerations for the given variables;
// columns not named here derive their states from the observed data.
func WithStateNames(names map[string][]string) Option {
	return func(e *Estimator) {
		for v, states := range names {
			e.stateNames[v] = append([]string(nil), states...)
		}
	}
}

// WithCompleteSamplesOnly sets the default row-filtering policy: when true,
// rows missing a value in ANY column are excluded from every count.
func WithCompleteSamplesOnly(complete bool) Option {
	return func(e *Estimator) { e.completeSamplesOnly = complete }
}

// NewEstimator creates an estimator over the dataset.
func NewEstimator(data *Dataset, opts ...Option) *Estimator {
	e := &Estimator{data: data, stateNames: make(map[string][]string)}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// States returns the state space of a variable: the explicit enumeration
// when one was given, otherwise the sorted distinct observed (non-missing)
// values over the full dataset. Returns ErrUnknownVariable for a variable
// that is not a column.
func (e *Estimator) States(variable string) ([]string, error) {
	col, ok := e.data.index[variable]
	if !ok {
		return nil, fmt.Errorf("%q: %w", variable, ErrUnknownVariable)
	}
	if explicit, ok := e.stateNames[variable]; ok {
		out := make([]string, len(explicit))
		copy(out, explicit)

		return out, nil
	}
	seen := make(map[string]struct{})
	for _, row := range e.data.rows {
		if row[col] != Missing {
			seen[row[col]] = struct{}{}
		}
	}
	states := make([]string, 0, len(seen))
	for s := range seen {
		states = append(states, s)
	}
	sort.Strings(states)

	return states, nil
}
