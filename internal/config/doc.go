package config

// Package config manages indicator configuration persistence: a Fyne
// preferences backed settings manager for the desktop app, and a file loader
// for seeding initial defaults from yaml, json or toml.
