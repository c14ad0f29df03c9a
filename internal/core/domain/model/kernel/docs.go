// Package kernel provides core domain primitives shared by the dispatch aggregates.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison capabilities
//   - GeoPoint: A WGS84 latitude/longitude pair with range validation and great-circle distance
//
// These primitives are immutable and safe for concurrent use. Their zero values are
// invalid and fail Validate, so aggregates can detect fields that were never set.
package kernel
