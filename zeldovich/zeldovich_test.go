package zeldovich

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/action-project/swift-ics/cosmo"
)

func testParams(n1d int) Params {
	p := DefaultParams()
	p.NumPart1D = n1d
	return p
}

func TestFlatIndexBijection(t *testing.T) {
	p := testParams(8)
	ps, err := Pancake(p)
	if err != nil {
		t.Fatal(err.Error())
	}

	n1d := p.NumPart1D
	dx := ps.BoxSize / float64(n1d)
	seen := make([]bool, ps.N)
	for i := 0; i < n1d; i++ {
		for j := 0; j < n1d; j++ {
			for k := 0; k < n1d; k++ {
				idx := i*n1d*n1d + j*n1d + k
				assert.False(t, seen[idx], "index visited twice")
				seen[idx] = true
				// The unperturbed y and z coordinates pin down which
				// grid cell a flat index belongs to.
				assert.Equal(t, (float64(j)+0.5)*dx, ps.Coords[3*idx+1])
				assert.Equal(t, (float64(k)+0.5)*dx, ps.Coords[3*idx+2])
			}
		}
	}
	for idx := range seen {
		assert.True(t, seen[idx], "index never visited")
	}
}

func TestParticleIDsContiguous(t *testing.T) {
	ps, err := Pancake(testParams(6))
	if err != nil {
		t.Fatal(err.Error())
	}
	for i, id := range ps.IDs {
		assert.Equal(t, uint64(i)+1, id)
	}
}

func TestMassConservation(t *testing.T) {
	p := testParams(8)
	ps, err := Pancake(p)
	if err != nil {
		t.Fatal(err.Error())
	}
	us := cosmo.SwiftUnits()
	ps.ConvertUnits(us)

	sum := 0.0
	for _, m := range ps.Masses {
		sum += m
	}
	rho0Internal := p.Rho0 / (us.M / (us.L * us.L * us.L))
	expected := ps.BoxSize * ps.BoxSize * ps.BoxSize * rho0Internal
	assert.InEpsilon(t, expected, sum, 1e-12, "total mass")
}

func TestSmoothingLengthUniform(t *testing.T) {
	p := testParams(8)
	ps, err := Pancake(p)
	if err != nil {
		t.Fatal(err.Error())
	}
	us := cosmo.SwiftUnits()
	dx := ps.BoxSize / float64(p.NumPart1D)
	ps.ConvertUnits(us)

	expected := 1.2348 * dx / us.L
	for _, h := range ps.SmoothingLengths {
		assert.Equal(t, expected, h)
	}
}

// With an odd grid the middle cell sits exactly at q = 0, the center of
// the pancake, where sin(k q) = 0 and the displacement and velocity
// vanish.
func TestCenterCellUndisplaced(t *testing.T) {
	p := testParams(5)
	ps, err := Pancake(p)
	if err != nil {
		t.Fatal(err.Error())
	}

	n1d := p.NumPart1D
	dx := ps.BoxSize / float64(n1d)
	i := n1d / 2
	idx := i * n1d * n1d

	unperturbed := -0.5*ps.BoxSize + (float64(i)+0.5)*dx + 0.5*ps.BoxSize
	assert.InDelta(t, unperturbed, ps.Coords[3*idx], 1e-9*dx, "x at q = 0")
	assert.InDelta(t, 0, ps.Vels[3*idx], 1e-20, "vx at q = 0")

	// The central temperature follows directly from the growth factor.
	zfac := (1 + p.ZCollapse) / (1 + p.ZInit)
	T := p.TInit * math.Pow(1/(1-zfac), 2.0/3.0)
	u := cosmo.KBInJK * T / ((p.Gamma - 1) * cosmo.MHInKg)
	assert.InEpsilon(t, u, ps.InternalEnergies[idx], 1e-12, "u at q = 0")
}

// In an Einstein-de Sitter universe the growing mode scales with a, so
// the starting velocity is the displacement amplitude times a_i H(z_i).
// The velocity prefactor in Pancake is written in its collapsed form
// -H0 (1+zc)/sqrt(1+zi); this checks it against the physical one.
func TestVelocityMatchesGrowthRate(t *testing.T) {
	p := testParams(8)
	ps, err := Pancake(p)
	if err != nil {
		t.Fatal(err.Error())
	}

	n1d := p.NumPart1D
	dx := ps.BoxSize / float64(n1d)
	xMin := -0.5 * ps.BoxSize
	ki := 2 * math.Pi / ps.BoxSize
	zfac := (1 + p.ZCollapse) / (1 + p.ZInit)
	aInit := 1 / (1 + p.ZInit)
	Hzi := cosmo.H0 * cosmo.HubbleFrac(1, 0, p.ZInit)

	for i := 0; i < n1d; i++ {
		q := xMin + (float64(i)+0.5)*dx
		want := -Hzi * aInit * zfac * math.Sin(ki*q) / ki
		idx := i * n1d * n1d
		assert.InEpsilon(t, want, ps.Vels[3*idx], 1e-12, "vx at i = %d", i)
	}
}

func TestVelocitiesTransverseZero(t *testing.T) {
	ps, err := Pancake(testParams(6))
	if err != nil {
		t.Fatal(err.Error())
	}
	for idx := 0; idx < ps.N; idx++ {
		assert.Equal(t, 0.0, ps.Vels[3*idx+1])
		assert.Equal(t, 0.0, ps.Vels[3*idx+2])
	}
}

func TestCoordsInsideBox(t *testing.T) {
	ps, err := Pancake(testParams(16))
	if err != nil {
		t.Fatal(err.Error())
	}
	for _, x := range ps.Coords {
		assert.True(t, x >= 0 && x <= ps.BoxSize, "coordinate outside box")
	}
}

func TestDeterminism(t *testing.T) {
	a, err := Pancake(testParams(8))
	if err != nil {
		t.Fatal(err.Error())
	}
	b, err := Pancake(testParams(8))
	if err != nil {
		t.Fatal(err.Error())
	}
	assert.Equal(t, a, b, "runs differ")
}

func TestValidate(t *testing.T) {
	bad := []func(*Params){
		func(p *Params) { p.NumPart1D = 0 },
		func(p *Params) { p.Rho0 = -1 },
		func(p *Params) { p.TInit = 0 },
		func(p *Params) { p.LambdaMpch = 0 },
		func(p *Params) { p.Gamma = 1 },
		func(p *Params) { p.ZCollapse = 200 },
		func(p *Params) { p.ZCollapse = -1 },
	}
	for i, breakit := range bad {
		p := DefaultParams()
		breakit(&p)
		_, err := Pancake(p)
		assert.Error(t, err, "case %d", i)
	}
	assert.NoError(t, DefaultParams().Validate())
}

func TestDefaultNumPart(t *testing.T) {
	assert.Equal(t, 32768, DefaultParams().NumPart())
}
