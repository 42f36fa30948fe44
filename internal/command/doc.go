package command

// Package command implements the thin textual command surface of the
// indicator: "progress on|off", "timestep <float>", "header <text>" and
// "unit fs|ps|ns". Commands mutate the overlay service configuration;
// invalid numeric input is ignored with a warning, unknown commands are
// reported to the caller and never affect engine state.
