package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"gopkg.in/gcfg.v1"

	plt "github.com/phil-mansfield/pyplot"

	"github.com/action-project/swift-ics/cosmo"
	"github.com/action-project/swift-ics/io"
	"github.com/action-project/swift-ics/zeldovich"
)

func main() {
	var (
		icsFile, profileFile string
		exampleConfig        bool
	)

	flag.StringVar(
		&icsFile, "ICs", "",
		"Configuration file for [Zeldovich] mode.",
	)
	flag.StringVar(
		&profileFile, "Profile", "",
		"Re-plot a profile table written by a previous -ICs run.",
	)
	flag.BoolVar(
		&exampleConfig, "ExampleConfig", false,
		"Prints an example configuration file to stdout.",
	)

	flag.Parse()

	switch {
	case exampleConfig:
		fmt.Println(io.ExampleZeldovichFile)
	case profileFile != "":
		profileMain(profileFile)
	case icsFile != "":
		icsMain(icsFile)
	default:
		log.Fatalf(
			"Usage: $ %s [-ICs config | -Profile table | -ExampleConfig]",
			os.Args[0],
		)
	}
}

func icsMain(configPath string) {
	wrap := io.DefaultZeldovichWrapper()
	err := gcfg.ReadFileInto(wrap, configPath)
	if err != nil { log.Fatal(err.Error()) }
	con := &wrap.Zeldovich

	if !con.ValidOutput() {
		log.Fatal("Invalid/non-existent 'Output' value.")
	}
	if con.ValidLogFile() {
		f, err := os.Create(con.LogFile)
		if err != nil { log.Fatal(err.Error()) }
		defer f.Close()
		log.SetOutput(f)
	}

	p := zeldovich.Params{
		NumPart1D:  con.NumPart1D,
		Rho0:       con.Rho0,
		TInit:      con.TInitial,
		ZInit:      con.ZInitial,
		ZCollapse:  con.ZCollapse,
		LambdaMpch: con.LambdaMpch,
		Gamma:      con.Gamma,
	}
	ps, err := zeldovich.Pancake(p)
	if err != nil { log.Fatal(err.Error()) }

	us := cosmo.SwiftUnits()
	ps.ConvertUnits(us)

	hdr := io.NewHeader(ps.BoxSize, ps.N)
	err = io.WriteSnapshot(con.Output, hdr, us, ps)
	if err != nil { log.Fatal(err.Error()) }
	log.Printf("Wrote %d particles to %s", ps.N, con.Output)

	if con.ValidProfileFile() {
		err = io.WriteProfile(con.ProfileFile, ps)
		if err != nil { log.Fatal(err.Error()) }
		log.Printf("Wrote profile table to %s", con.ProfileFile)
	}

	if con.Plot {
		xs, vxs := make([]float64, ps.N), make([]float64, ps.N)
		for i := 0; i < ps.N; i++ {
			xs[i], vxs[i] = ps.Coords[3*i], ps.Vels[3*i]
		}
		plotPancake(xs, vxs)
	}
}

func profileMain(path string) {
	xs, vxs, _, err := io.ReadProfile(path)
	if err != nil { log.Fatal(err.Error()) }
	plotPancake(xs, vxs)
}

// plotPancake shows the phase-space sanity check: position against
// velocity along the perturbed axis. Blocks until the window is closed.
func plotPancake(xs, vxs []float64) {
	plt.Reset()
	plt.Figure()
	plt.Plot(xs, vxs, "k.")
	plt.XLabel(`$x$ $[{\rm Mpc}/h]$`, plt.FontSize(16))
	plt.YLabel(`$v_x$ $[{\rm km/s}]$`, plt.FontSize(16))
	plt.Title("Zeldovich pancake")
	plt.Show()
	plt.Execute()
}
