package io

import (
	"bufio"
	"fmt"
	"os"

	"github.com/phil-mansfield/table"

	"github.com/action-project/swift-ics/zeldovich"
)

// WriteProfile dumps the pancake profile as a whitespace-delimited text
// table with one row per particle: x position, x velocity and specific
// internal energy, in whatever units the set is currently in.
func WriteProfile(path string, ps *zeldovich.ParticleSet) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "# x v_x u\n")
	for i := 0; i < ps.N; i++ {
		_, err := fmt.Fprintf(
			w, "%.12g %.12g %.12g\n",
			ps.Coords[3*i], ps.Vels[3*i], ps.InternalEnergies[i],
		)
		if err != nil {
			return err
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}
	return f.Close()
}

// ReadProfile reads back a table written by WriteProfile.
func ReadProfile(path string) (xs, vxs, us []float64, err error) {
	cols, err := table.ReadTable(path, []int{0, 1, 2}, nil)
	if err != nil {
		return nil, nil, nil, err
	}
	return cols[0], cols[1], cols[2], nil
}
