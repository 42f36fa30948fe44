package host

// Package host declares the narrow contract the overlay engine requires from
// the visualization application it draws into: frame and quit event sources,
// viewport metrics, drawable creation, and the primitive sink. The engine
// never mutates host state other than its own drawables.
