package ui

// Package ui contains the Fyne-based reference host: a viewport widget that
// stands in for the visualization application's 3D view, a drawable registry
// rendering overlay primitives through a software raster, trajectory playback
// controls, and the indicator settings dialog.
