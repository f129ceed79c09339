// Package quiesce coordinates workers that probe and save against a table
// with administrative operations — Resize, Clear, NewSearch — that
// require no worker to be mid-operation. It generalizes the host's
// package-level hot/stop flag pair into a reusable join-before-admin-op
// gate.
package quiesce

import "sync"

// Gate lets any number of workers announce "I am touching the table"
// and lets one coordinator wait for all of them to finish before running
// an administrative operation.
type Gate struct {
	wg sync.WaitGroup
}

// Enter marks the start of a table operation. Callers must call Exit
// exactly once for every Enter.
func (g *Gate) Enter() { g.wg.Add(1) }

// Exit marks the end of a table operation.
func (g *Gate) Exit() { g.wg.Done() }

// Quiesce waits for all outstanding Enter/Exit pairs to drain, then runs
// fn. Callers must ensure no new Enter happens concurrently with
// Quiesce; in practice this means signalling workers to pause before
// calling it.
func (g *Gate) Quiesce(fn func()) {
	g.wg.Wait()
	fn()
}
