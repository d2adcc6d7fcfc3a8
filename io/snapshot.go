/*Package io writes SWIFT-compatible initial condition snapshots.

The snapshot layout is the fixed, versionless schema SWIFT reads: a
/Header group of run metadata, /RuntimePars, a /Units group giving the
internal unit sizes in CGS, and one /PartType0 group of per-particle
datasets. Any structural deviation is a hard compatibility failure for
the consumer, so the layout here is not configurable.
*/
package io

import (
	"fmt"

	"github.com/scigolib/hdf5"

	"github.com/action-project/swift-ics/cosmo"
	"github.com/action-project/swift-ics/zeldovich"
)

// Header describes the run-level metadata stored in the snapshot's
// /Header and /RuntimePars groups.
type Header struct {
	BoxSize  float64 // internal length units, same for all three axes
	NumPart  int
	Time     float64
	NumFiles int32
	Dim      int32

	FlagEntropyICs       int32
	PeriodicBoundariesOn int32
}

// NewHeader returns the header for a single-file gas-only IC snapshot
// with the given box size and particle count.
func NewHeader(boxSize float64, numPart int) *Header {
	return &Header{
		BoxSize:              boxSize,
		NumPart:              numPart,
		Time:                 0,
		NumFiles:             1,
		Dim:                  3,
		FlagEntropyICs:       0,
		PeriodicBoundariesOn: 1,
	}
}

// partCounts spreads the particle count over the six slots SWIFT
// reserves for its particle types. Only gas (type 0) is populated.
func (h *Header) partCounts() []int64 {
	return []int64{int64(h.NumPart), 0, 0, 0, 0, 0}
}

// WriteSnapshot serializes the particle set and its metadata to a new
// HDF5 file at path, overwriting any existing file. The set must
// already be in the internal units described by us.
func WriteSnapshot(
	path string, hdr *Header, us cosmo.UnitSystem, ps *zeldovich.ParticleSet,
) error {
	fw, err := hdf5.CreateForWrite(path, hdf5.CreateTruncate)
	if err != nil {
		return err
	}
	defer fw.Close()

	if err := writeHeader(fw, hdr); err != nil {
		return err
	}
	if err := writeUnits(fw, us); err != nil {
		return err
	}
	if err := writeParticles(fw, ps); err != nil {
		return err
	}

	return fw.Close()
}

func writeHeader(fw *hdf5.FileWriter, hdr *Header) error {
	grp, err := fw.CreateGroup("/Header")
	if err != nil {
		return err
	}

	attrs := []struct {
		name string
		val  interface{}
	}{
		{"BoxSize", []float64{hdr.BoxSize, hdr.BoxSize, hdr.BoxSize}},
		{"NumPart_Total", hdr.partCounts()},
		{"NumPart_Total_HighWord", []int64{0, 0, 0, 0, 0, 0}},
		{"NumPart_ThisFile", hdr.partCounts()},
		{"Time", hdr.Time},
		{"NumFilesPerSnapshot", hdr.NumFiles},
		{"MassTable", []float64{0, 0, 0, 0, 0, 0}},
		{"Flag_Entropy_ICs", hdr.FlagEntropyICs},
		{"Dimension", hdr.Dim},
	}
	for _, a := range attrs {
		if err := grp.WriteAttribute(a.name, a.val); err != nil {
			return fmt.Errorf("attribute %q: %v", a.name, err)
		}
	}

	rt, err := fw.CreateGroup("/RuntimePars")
	if err != nil {
		return err
	}
	return rt.WriteAttribute("PeriodicBoundariesOn", hdr.PeriodicBoundariesOn)
}

func writeUnits(fw *hdf5.FileWriter, us cosmo.UnitSystem) error {
	grp, err := fw.CreateGroup("/Units")
	if err != nil {
		return err
	}

	attrs := []struct {
		name string
		val  float64
	}{
		{"Unit length in cgs (U_L)", us.LengthCGS()},
		{"Unit mass in cgs (U_M)", us.MassCGS()},
		{"Unit time in cgs (U_t)", us.TimeCGS()},
		{"Unit current in cgs (U_I)", us.CurrentCGS()},
		{"Unit temperature in cgs (U_T)", us.TemperatureCGS()},
	}
	for _, a := range attrs {
		if err := grp.WriteAttribute(a.name, a.val); err != nil {
			return fmt.Errorf("attribute %q: %v", a.name, err)
		}
	}
	return nil
}

func writeParticles(fw *hdf5.FileWriter, ps *zeldovich.ParticleSet) error {
	if _, err := fw.CreateGroup("/PartType0"); err != nil {
		return err
	}

	n := uint64(ps.N)

	// SWIFT reads coordinates at double precision and everything else
	// at single.
	err := writeFloat64(fw, "/PartType0/Coordinates", []uint64{n, 3}, ps.Coords)
	if err != nil {
		return err
	}
	err = writeFloat32(fw, "/PartType0/Velocities", []uint64{n, 3}, ps.Vels)
	if err != nil {
		return err
	}
	err = writeFloat32(fw, "/PartType0/Masses", []uint64{n}, ps.Masses)
	if err != nil {
		return err
	}
	err = writeFloat32(fw, "/PartType0/SmoothingLength", []uint64{n}, ps.SmoothingLengths)
	if err != nil {
		return err
	}
	err = writeFloat32(fw, "/PartType0/InternalEnergy", []uint64{n}, ps.InternalEnergies)
	if err != nil {
		return err
	}

	ds, err := fw.CreateDataset("/PartType0/ParticleIDs", hdf5.Uint64, []uint64{n})
	if err != nil {
		return err
	}
	return ds.Write(ps.IDs)
}

func writeFloat64(
	fw *hdf5.FileWriter, name string, dims []uint64, data []float64,
) error {
	ds, err := fw.CreateDataset(name, hdf5.Float64, dims)
	if err != nil {
		return err
	}
	return ds.Write(data)
}

func writeFloat32(
	fw *hdf5.FileWriter, name string, dims []uint64, data []float64,
) error {
	buf := make([]float32, len(data))
	for i, x := range data {
		buf[i] = float32(x)
	}
	ds, err := fw.CreateDataset(name, hdf5.Float32, dims)
	if err != nil {
		return err
	}
	return ds.Write(buf)
}
