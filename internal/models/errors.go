package models

import (
	"errors"
	"fmt"
)

// The error taxonomy of the ledger. Every refused mutation surfaces as
// one of these so that callers can translate them for users.
var (
	ErrGeneral   = errors.New("an error occurred on the server during your request")
	ErrNotFound  = errors.New("there is no")
	ErrDuplicate = errors.New("the resource already exists")
	ErrReference = errors.New("the resource is still referenced")
	ErrCycle     = errors.New("the category tree is cyclic")
)

var (
	ErrAccountNameNotUnique = fmt.Errorf("%w: the account name must be unique", ErrDuplicate)
	ErrBudgetNotUnique      = fmt.Errorf("%w: there already is a budget for this category and month", ErrDuplicate)
	ErrIDNotUnique          = fmt.Errorf("%w: a resource with this ID already exists", ErrDuplicate)

	ErrAccountReferenced  = fmt.Errorf("%w by transactions, reassign or delete them first", ErrReference)
	ErrCategoryReferenced = fmt.Errorf("%w by transactions, budgets or child categories", ErrReference)

	ErrCategoryIsOwnAncestor = fmt.Errorf("%w: a category cannot be its own ancestor", ErrCycle)
)

// ValidationError is returned when an entity field is malformed or
// inconsistent. It carries the offending field and the reason the
// value was refused.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
