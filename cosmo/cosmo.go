package cosmo

import (
	"math"
)

// Physical constants in SI units. Values match the ones used by SWIFT's
// example initial condition scripts so that generated snapshots agree
// bit-for-bit with the reference setup.
const (
	MpcInM   = 3.085678e22    // m
	MSolInKg = 1.989e30       // kg
	GyrInS   = 3.085678e19    // s
	MHInKg   = 1.6737236e-27  // kg, hydrogen mass
	KBInJK   = 1.38064852e-23 // J/K, Boltzmann constant

	// H0 is the Hubble constant for h = 1, i.e. 100 km/s/Mpc, in 1/s.
	H0 = 1e5 / MpcInM
)

// HubbleFrac calculates h(z) = H(z)/H0. Here H(z) is from Hubble's Law,
// H(z)**2 = H0**2 (OmegaM (1+z)**3 + OmegaL). Assumes k, r = 0.
func HubbleFrac(omegaM, omegaL, z float64) float64 {
	return math.Sqrt(omegaM*math.Pow(1.0+z, 3.0) + omegaL)
}
