// Package domain defines domain-level errors for the ordersearch feature.
package domain

import "errors"

var (
	// ErrUnknownField is returned when a form update names a field the search form does not have.
	ErrUnknownField = errors.New("unknown search form field")

	// ErrUnknownColumn is returned when sorting by a column key that is not in the column model.
	ErrUnknownColumn = errors.New("unknown column")

	// ErrPageNotFound is returned when no mounted page has the given id.
	// Pages are removed on unmount and after the idle timeout.
	ErrPageNotFound = errors.New("page not found")

	// ErrRowNotFound is returned when expanding a row index outside the current result set.
	ErrRowNotFound = errors.New("row not found")

	// ErrPageNotReady is returned when a row is expanded while the table is torn down for a search.
	ErrPageNotReady = errors.New("page is not ready")
)
