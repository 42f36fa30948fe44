package model

// Package model defines domain data structures shared across the app: the
// indicator configuration, derived render state, viewport metrics reported by
// the host, and small value types (vectors, colors, enums). Structures are
// designed for direct binding in the UI and explicit state transitions.
