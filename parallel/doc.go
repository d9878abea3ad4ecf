// Package parallel splits index-range iteration across goroutines.
//
// For splits non-overlapping blocks of an index range across a fixed
// number of worker goroutines and waits for all of them to finish before
// returning. It is the index-based analogue of a thread pool that hands
// each worker a contiguous slice of the range instead of a task queue,
// matching the block-splitting behavior of the mesh library's original
// C++ parallel_for.
package parallel
