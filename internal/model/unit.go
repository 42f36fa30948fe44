package model

// TimeUnit represents the physical unit a trajectory timestep is expressed in
type TimeUnit string

const (
	// UnitFemtoseconds is 1e-15 s, the common unit for MD integration steps
	UnitFemtoseconds TimeUnit = "fs"

	// UnitPicoseconds is 1e-12 s
	UnitPicoseconds TimeUnit = "ps"

	// UnitNanoseconds is 1e-9 s
	UnitNanoseconds TimeUnit = "ns"
)

// String returns the string representation of TimeUnit
func (u TimeUnit) String() string {
	return string(u)
}

// IsValid returns true if the unit is one of the supported time units
func (u TimeUnit) IsValid() bool {
	return u == UnitFemtoseconds || u == UnitPicoseconds || u == UnitNanoseconds
}

// TimeUnits returns all supported time units in display order
func TimeUnits() []TimeUnit {
	return []TimeUnit{UnitFemtoseconds, UnitPicoseconds, UnitNanoseconds}
}
