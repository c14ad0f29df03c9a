// Package services provides domain services that coordinate several aggregates
// of the dispatch domain.
//
// The package includes:
//   - MasterDispatcher: picks the nearest free master for a new order and assigns it
package services
