package overlay

// Package overlay implements the reactive progress overlay engine: a pure
// screen-space geometry layout, a foreground color policy, derived render
// state, and a controller that subscribes to host events and repaints the
// owned drawable on every relevant change.
//
// The engine is single-threaded by design: it executes exclusively inside
// callbacks dispatched synchronously by the host, so no locking is needed.
// Each redraw cycle recomputes everything from scratch and runs to completion
// before returning control to the host.
