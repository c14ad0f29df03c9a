// Package queries contains the read side of the dispatch engine: order and
// master projections built from the storage ports.
//
// Queries never mutate state. Handlers read through a unit of work so that a
// single projection (an order, its master and its evidence) comes from one
// consistent snapshot of the store.
package queries
