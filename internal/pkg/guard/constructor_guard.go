// Package guard provides ConstructorGuard, a marker embedded in value objects,
// commands and queries to tell constructor-built instances apart from zero values.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the object was not
// constructed and the caller did not supply a more specific error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard records whether its owner was created through a constructor.
// The zero value reports "not constructed".
//
// Example:
//
//	type GetOrderQuery struct {
//	    orderID kernel.UUID
//	    guard   guard.ConstructorGuard
//	}
//
//	func NewGetOrderQuery(id kernel.UUID) GetOrderQuery {
//	    return GetOrderQuery{orderID: id, guard: guard.NewConstructorGuard()}
//	}
//
//	func (q GetOrderQuery) Validate() error {
//	    return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. Otherwise it returns
// validationError, or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
