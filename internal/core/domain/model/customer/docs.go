// Package customer models who placed an order, as far as prioritization cares.
//
// Customers are not stored on orders: a classifier derives the Class from the
// order id at resolution time.
package customer
