// Package loc defines the relative location model for nested consensus
// systems.
//
// A Location is a path in the system tree expressed relative to an implicit
// current system: a count of hops toward a shared ancestor (Parents) followed
// by an ordered root-to-leaf sequence of at most eight Junctions (Interior).
// A Location carries no absolute frame by itself; two systems holding equal
// Location values may be naming different places.
//
// All types in this package are plain values. Mutating operations
// (TakeFirst, PushBack, ...) act on the caller's own copy and never alias
// shared state, so values may be used concurrently without synchronization.
package loc
