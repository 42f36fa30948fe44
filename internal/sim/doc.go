package sim

// Package sim provides a deterministic, headless playback host implementing
// the host contract without any GUI. It backs the `headless` subcommand and
// smoke runs in CI: callers script frame advances and inspect the primitives
// recorded by the drawables.
