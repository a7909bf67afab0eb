// Package reference provides read access to expert demonstrations.
//
// A demonstration is a table with one row per recorded frame and three
// columns per canonical joint: {joint}_x, {joint}_y and
// {joint}_confidence, all normalized to [0,1]. The comparison and overlay
// code depends only on the Dataset interface; Table, LoadCSV and Library
// are the bundled implementation.
package reference

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/posematch/pose"
)

// Sentinel errors for reference data access.
var (
	// ErrColumnNotFound indicates a lookup of a column the dataset lacks.
	ErrColumnNotFound = errors.New("reference: column not found")

	// ErrRaggedColumns indicates columns of differing lengths.
	ErrRaggedColumns = errors.New("reference: columns have different lengths")

	// ErrBadValue indicates a cell that is not a finite number.
	ErrBadValue = errors.New("reference: value is not a finite number")

	// ErrBadConfidence indicates a confidence cell outside [0,1].
	ErrBadConfidence = errors.New("reference: confidence outside [0,1]")

	// ErrEmptyHeader indicates a CSV without a header row or with a blank name.
	ErrEmptyHeader = errors.New("reference: missing or blank header")

	// ErrDuplicateColumn indicates the same column name appears twice.
	ErrDuplicateColumn = errors.New("reference: duplicate column")

	// ErrExerciseNotFound indicates no demonstration is stored for an id.
	ErrExerciseNotFound = errors.New("reference: exercise not found")

	// ErrBadExerciseID indicates an id that is empty or contains path separators.
	ErrBadExerciseID = errors.New("reference: invalid exercise id")
)

// Dataset is the minimal read-only view of a demonstration.
//
// RowCount is fixed for the lifetime of the dataset. Column returns the
// full column by name; callers must treat the slice as read-only.
type Dataset interface {
	RowCount() int
	Column(name string) ([]float64, error)
}

// Prefix returns rows [0, n) of a column, clipped to the rows available.
func Prefix(ds Dataset, name string, n int) ([]float64, error) {
	col, err := ds.Column(name)
	if err != nil {
		return nil, err
	}
	if n < 0 {
		n = 0
	}
	if n > len(col) {
		n = len(col)
	}
	return col[:n:n], nil
}

// CanonicalColumns lists the 51 columns a demonstration must carry,
// joint by joint in canonical order.
func CanonicalColumns() []string {
	out := make([]string, 0, 3*pose.JointCount)
	for _, j := range pose.Joints() {
		out = append(out, pose.Column(j, pose.AxisX), pose.Column(j, pose.AxisY), pose.ConfidenceColumn(j))
	}
	return out
}

// ValidateSchema checks ds carries every canonical column and that every
// confidence lies in [0,1].
func ValidateSchema(ds Dataset) error {
	for _, name := range CanonicalColumns() {
		if _, err := ds.Column(name); err != nil {
			return fmt.Errorf("schema: %w", err)
		}
	}
	for _, j := range pose.Joints() {
		name := pose.ConfidenceColumn(j)
		col, _ := ds.Column(name)
		for row, v := range col {
			if v < 0 || v > 1 {
				return fmt.Errorf("schema: %w: %q row %d is %v", ErrBadConfidence, name, row, v)
			}
		}
	}
	return nil
}
