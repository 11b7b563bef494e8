// Package workerpool provides a small fixed-size goroutine pool used to
// parallelize the forward pull-relaxation pass of the optimal row solver.
//
// A Pool spawns N worker goroutines at construction and holds a FIFO
// queue of jobs behind a mutex, guarded by two condition variables: one
// signaling "work is available" (woken on Run) and one signaling "all
// submitted work has drained" (woken whenever a worker finishes a job).
// Wait blocks until the queue is empty and no job is still executing.
//
// Pool relies on the caller's jobs being disjoint writers: the solver
// partitions each table's destination-state range into contiguous,
// non-overlapping slices (see table.PrepareWorkers) before submitting one
// job per slice, so no synchronization is needed inside a job itself.
package workerpool
