// Package adl implements the activity/delivery log (ADL) entry: geotagged,
// timestamped evidence that work on an order was performed.
//
// An entry records a reference to externally stored media (a photo or a
// video), the GPS position where it was captured, the device capture time and
// an opaque annotation map. Entries are owned by exactly one order and are
// never modified after they are appended to the ledger.
//
// Eligibility (only assigned or in_progress orders accept evidence) is a rule
// of the order aggregate; this package validates the entry itself.
package adl
