package cosmo

// UnitSystem is the internal unit basis expected by the downstream
// simulator. L, M and T are the sizes of the length, mass and time units
// in SI. Velocity and specific energy units are derived from these.
type UnitSystem struct {
	L, M, T float64
}

// SwiftUnits returns the unit system used by SWIFT's cosmological
// examples: lengths in Mpc, masses in 1e10 Msol, times in Gyr.
func SwiftUnits() UnitSystem {
	return UnitSystem{L: MpcInM, M: 1e10 * MSolInKg, T: GyrInS}
}

// V returns the size of the velocity unit in SI.
func (u UnitSystem) V() float64 { return u.L / u.T }

// U returns the size of the specific internal energy unit in SI.
func (u UnitSystem) U() float64 { return u.V() * u.V() }

// The snapshot header stores unit sizes in CGS rather than SI.

func (u UnitSystem) LengthCGS() float64 { return 100 * u.L }
func (u UnitSystem) MassCGS() float64   { return 1000 * u.M }
func (u UnitSystem) TimeCGS() float64   { return u.T }

// Electromagnetic and temperature units are not rescaled.

func (u UnitSystem) CurrentCGS() float64     { return 1 }
func (u UnitSystem) TemperatureCGS() float64 { return 1 }
