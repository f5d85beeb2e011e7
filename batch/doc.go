// Package batch runs many independent route searches concurrently.
//
// Each Job is one complete astar.Search dispatched to a worker goroutine.
// astar.Search clones its input grid, so jobs may share a *grid.Grid as long
// as nobody mutates it while Run is in progress. Workers never share a
// working grid or an open set.
//
// Run bounds parallelism with an errgroup limit, records per-job outcomes in
// input order, and stops dispatching new jobs once the context is done.
// A failed job (bad endpoints, nil grid) does not stop the others; its error
// is reported in Outcome.Err.
//
// Metrics exports Prometheus counters and histograms for the searches; they
// can be scraped from any registry or dumped with WriteTextfile.
package batch
