// identify-pocket lists the protein residues around a bound ligand in a
// structure file, together with ready-made PyMOL, make_ndx and VMD selections
// for the pocket.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/weitse-hsu/gmx-utils/pocket"
	"github.com/weitse-hsu/gmx-utils/structure"
	"github.com/weitse-hsu/gmx-utils/util"
)

func main() {
	var (
		input   = flag.String("i", "", "input PDB/GRO file containing the complex")
		resname = flag.String("r", "LIG", "residue name of the ligand")
		cutoff  = flag.Float64("c", 6.0, "cutoff distance in Å defining the pocket")
		logFile = flag.String("l", "identify_pocket.log", "log file")
	)
	flag.Parse()
	if *input == "" {
		fmt.Fprintln(os.Stderr, "identify-pocket: -i is required")
		flag.Usage()
		os.Exit(2)
	}

	t0 := time.Now()
	log, err := util.NewLog(*logFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Close()
	log.Printf("Command line: %s\n\n", strings.Join(os.Args, " "))

	s, err := structure.Read(*input)
	if err != nil {
		log.Error("reading structure", "file", *input, "err", err)
		os.Exit(1)
	}

	p, err := pocket.Identify(s, *resname, *cutoff)
	switch {
	case errors.Is(err, pocket.ErrNoLigand):
		log.Warn("no residues with the given ligand resname found, skipping pocket identification",
			"resname", *resname)
	case err != nil:
		log.Error("identifying pocket", "err", err)
		os.Exit(1)
	case len(p.Residues) == 0:
		log.Printf("No pocket residues found within the specified cutoff distance.\n")
	default:
		log.Printf("List of pocket residues (%d):\n", len(p.Residues))
		for _, r := range p.Residues {
			log.Printf("  %s %d\n", r.Name, r.ID)
		}
		log.Printf("\n- PyMOL selection:\n%s\n", p.PyMOLSelection())
		log.Printf("\n- GROMACS index file selection:\n%s\n", p.NDXSelection())
		log.Printf("\n- VMD selection:\n%s\n", p.VMDSelection())
	}

	log.Printf("\nElapsed time: %s\n", util.FormatDuration(time.Since(t0)))
}
