/*Package zeldovich computes particle initial conditions for the 1D
Zeldovich pancake collapse test.

The Zeldovich approximation gives a closed-form linear-order displacement
field for a sinusoidal density perturbation. Seeding a simulation with it
at high redshift and evolving to the collapse redshift is a standard
cosmological hydro test. All quantities here are computed in SI and
converted to the simulator's internal units in a single pass afterwards.
*/
package zeldovich

import (
	"fmt"
	"math"

	"github.com/action-project/swift-ics/cosmo"
)

// Params specifies the perturbation and the gas state at the starting
// redshift. The zero value is not usable, start from DefaultParams.
type Params struct {
	NumPart1D  int     // particles per dimension
	Rho0       float64 // mean density, h^2 kg m^-3
	TInit      float64 // gas temperature at ZInit, K
	ZInit      float64 // starting redshift
	ZCollapse  float64 // redshift at which the pancake collapses
	LambdaMpch float64 // perturbation wavelength, Mpc/h
	Gamma      float64 // gas adiabatic index
}

// DefaultParams returns the parameters of the standard 32^3 pancake
// setup: a 64 Mpc/h perturbation starting at z = 100 that collapses at
// z = 1.
func DefaultParams() Params {
	return Params{
		NumPart1D:  32,
		Rho0:       1.8788e-26,
		TInit:      100,
		ZInit:      100,
		ZCollapse:  1,
		LambdaMpch: 64,
		Gamma:      5.0 / 3.0,
	}
}

// NumPart returns the total particle count, NumPart1D^3.
func (p Params) NumPart() int {
	return p.NumPart1D * p.NumPart1D * p.NumPart1D
}

// Validate checks that the parameters describe a well-posed pancake. The
// redshift ordering keeps the displacement prefactor (1+zc)/(1+zi) below
// one, which protects the temperature formula from its pole.
func (p Params) Validate() error {
	switch {
	case p.NumPart1D <= 0:
		return fmt.Errorf("NumPart1D must be positive, got %d", p.NumPart1D)
	case p.Rho0 <= 0:
		return fmt.Errorf("Rho0 must be positive, got %g", p.Rho0)
	case p.TInit <= 0:
		return fmt.Errorf("TInitial must be positive, got %g", p.TInit)
	case p.LambdaMpch <= 0:
		return fmt.Errorf("LambdaMpch must be positive, got %g", p.LambdaMpch)
	case p.Gamma <= 1:
		return fmt.Errorf("Gamma must be greater than 1, got %g", p.Gamma)
	case p.ZCollapse < 0 || p.ZInit <= p.ZCollapse:
		return fmt.Errorf(
			"need 0 <= ZCollapse < ZInitial, got zc = %g, zi = %g",
			p.ZCollapse, p.ZInit,
		)
	}
	return nil
}

// ParticleSet holds one flat array per particle property. Vector
// properties are stored x-major, so particle i occupies Coords[3i:3i+3].
// The grid triple (i, j, k) maps to the flat index
// i*NumPart1D^2 + j*NumPart1D + k.
type ParticleSet struct {
	N       int
	BoxSize float64

	Coords           []float64
	Vels             []float64
	Masses           []float64
	SmoothingLengths []float64
	InternalEnergies []float64
	IDs              []uint64
}

// Pancake evaluates the Zeldovich displacement field on a uniform
// NumPart1D^3 grid and returns the perturbed particle set in SI units.
// Only the x coordinate is perturbed; y and z stay on the grid. Particle
// IDs are assigned sequentially from 1 in flat-index order.
func Pancake(p Params) (*ParticleSet, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	n1d := p.NumPart1D
	n := p.NumPart()

	lambda := p.LambdaMpch * cosmo.MpcInM
	xMin := -0.5 * lambda
	ki := 2 * math.Pi / lambda
	zfac := (1 + p.ZCollapse) / (1 + p.ZInit)

	boxSize := lambda
	dx := boxSize / float64(n1d)
	mi := boxSize * boxSize * boxSize * p.Rho0 / float64(n)
	hi := 1.2348 * dx
	vfac := -cosmo.H0 * (1 + p.ZCollapse) / math.Sqrt(1+p.ZInit)

	ps := &ParticleSet{
		N:       n,
		BoxSize: boxSize,

		Coords:           make([]float64, 3*n),
		Vels:             make([]float64, 3*n),
		Masses:           make([]float64, n),
		SmoothingLengths: make([]float64, n),
		InternalEnergies: make([]float64, n),
		IDs:              make([]uint64, n),
	}

	for i := 0; i < n1d; i++ {
		q := xMin + (float64(i)+0.5)*dx
		s := math.Sin(ki*q) / ki
		x := q - zfac*s - xMin
		T := p.TInit * math.Pow(1/(1-zfac*math.Cos(ki*q)), 2.0/3.0)
		u := cosmo.KBInJK * T / ((p.Gamma - 1) * cosmo.MHInKg)
		vx := vfac * s

		for j := 0; j < n1d; j++ {
			for k := 0; k < n1d; k++ {
				idx := (i*n1d+j)*n1d + k
				ps.Coords[3*idx+0] = x
				ps.Coords[3*idx+1] = (float64(j) + 0.5) * dx
				ps.Coords[3*idx+2] = (float64(k) + 0.5) * dx
				ps.Vels[3*idx+0] = vx
				ps.Masses[idx] = mi
				ps.SmoothingLengths[idx] = hi
				ps.InternalEnergies[idx] = u
				ps.IDs[idx] = uint64(idx) + 1
			}
		}
	}

	return ps, nil
}

// ConvertUnits rescales the set from SI into the given internal unit
// system. Each quantity is divided by its unit size exactly once, so
// calling this twice would double-convert.
func (ps *ParticleSet) ConvertUnits(u cosmo.UnitSystem) {
	for i := range ps.Coords {
		ps.Coords[i] /= u.L
		ps.Vels[i] /= u.V()
	}
	for i := range ps.Masses {
		ps.Masses[i] /= u.M
		ps.SmoothingLengths[i] /= u.L
		ps.InternalEnergies[i] /= u.U()
	}
	ps.BoxSize /= u.L
}
