// Package stream composes many Results element-wise over iter.Seq.
//
// Everything here is lazy and synchronous: nothing runs until the returned
// sequence is ranged over, and ranging again runs the computation again.
//
// Key operations:
// - Of/FromSlice: begin a sequence from values
// - Lift/Map: turn each element into a Result
// - Values/ValuesWith: keep the successful values, dropping (or handing off) failures
// - Failures/Partition: enumerate the failures
// - FirstOrDefault: take the first element or a fallback
package stream
