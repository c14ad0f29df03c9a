// Package order provides the Order aggregate root of the dispatch system and
// the status state machine that governs its lifecycle.
//
// The package includes:
//   - Order: identity, service location, customer contact, master assignment,
//     timestamps and an optimistic concurrency version
//   - Status: the lifecycle state machine
//
// Lifecycle:
//
//	new ──assign──> assigned ──start──> in_progress ──complete──> completed
//	 │                 │                     │
//	 └─────reject──────┴───────reject────────┴──────────────────> rejected
//
// Key business rules:
//   - A master is referenced exactly while the status is assigned, in_progress or completed
//   - Completion requires at least one piece of attached evidence
//   - Evidence is accepted only while the order is assigned or in_progress
//   - completed and rejected are terminal; every further mutation is an invalid transition
//   - Every accepted mutation advances updatedAt and increments the version
package order
