// Package guard provides ConstructorGuard, a marker embedded in commands, queries and
// aggregates so that zero values built with a struct literal fail validation.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes a nil error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard records whether its owner was created through the owner's constructor.
//
// Example:
//
//	var ErrQueryIsNotConstructed = errors.New("Query must be created via NewQuery")
//
//	type Query struct {
//	    orderID order.ID
//	    guard   guard.ConstructorGuard
//	}
//
//	func NewQuery(orderID order.ID) Query {
//	    return Query{orderID: orderID, guard: guard.NewConstructorGuard()}
//	}
//
//	func (q Query) Validate() error {
//	    return q.guard.Validate(ErrQueryIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
