package io

const (
	// DefaultSnapshotFile is the file name SWIFT's pancake example
	// parameter files expect.
	DefaultSnapshotFile = "zeldovichPancake.hdf5"

	ExampleZeldovichFile = `[Zeldovich]

# All parameters are optional. The defaults reproduce the standard
# ZeldovichPancake_3D setup and are listed below.

#######################
# Physics             #
#######################

# Number of particles along one side of the grid. The total particle
# count is the cube of this.
# NumPart1D = 32

# Mean comoving density in h^2 kg m^-3.
# Rho0 = 1.8788e-26

# Gas temperature at the starting redshift, in K.
# TInitial = 100

# Starting redshift of the simulation and redshift at which the pancake
# collapses. The collapse redshift must be below the starting one.
# ZInitial = 100
# ZCollapse = 1

# Wavelength of the sinusoidal perturbation in Mpc/h. This is also the
# box size.
# LambdaMpch = 64

# Gas adiabatic index.
# Gamma = 1.6666666666666667

#######################
# Output              #
#######################

# Snapshot file to write. Overwritten if it exists.
# Output = zeldovichPancake.hdf5

# Also dump an x / v_x / u text table, one row per particle. Useful for
# quick checks without an HDF5 reader; re-plot it later with -Profile.
# ProfileFile = zeldovichProfile.txt

# Show a scatter plot of x against v_x after writing. Requires python
# with matplotlib on the PATH.
# Plot = false

# Redirect log output to a file.
# LogFile = log.out`
)

// ZeldovichConfig mirrors the [Zeldovich] config file section.
type ZeldovichConfig struct {
	NumPart1D  int
	Rho0       float64
	TInitial   float64
	ZInitial   float64
	ZCollapse  float64
	LambdaMpch float64
	Gamma      float64

	Output      string
	ProfileFile string
	Plot        bool
	LogFile     string
}

type ZeldovichWrapper struct {
	Zeldovich ZeldovichConfig
}

// DefaultZeldovichWrapper returns a wrapper preloaded with the standard
// pancake parameters, ready to be filled in from a config file.
func DefaultZeldovichWrapper() *ZeldovichWrapper {
	con := ZeldovichConfig{
		NumPart1D:  32,
		Rho0:       1.8788e-26,
		TInitial:   100,
		ZInitial:   100,
		ZCollapse:  1,
		LambdaMpch: 64,
		Gamma:      5.0 / 3.0,
		Output:     DefaultSnapshotFile,
	}
	return &ZeldovichWrapper{con}
}

func (con *ZeldovichConfig) ValidOutput() bool {
	return con.Output != ""
}
func (con *ZeldovichConfig) ValidProfileFile() bool {
	return con.ProfileFile != ""
}
func (con *ZeldovichConfig) ValidLogFile() bool {
	return con.LogFile != ""
}
