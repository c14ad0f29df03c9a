// Package master implements the Master aggregate: a field worker who executes
// dispatched orders.
//
// Orders reference masters by ID and never own them. A master has a name shown
// to dispatchers and a base location used by the assignment policy to pick the
// nearest free worker.
//
// Example usage:
//
//	base, _ := kernel.NewGeoPoint(41.01, 28.97)
//	m, err := master.NewMaster(kernel.NewUUID(), "Mehmet", base)
//	if err != nil {
//	    // Handle validation error
//	}
//	meters, _ := m.DistanceTo(orderLocation)
package master
