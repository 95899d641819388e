// identify-ss locates secondary-structure segments (helix, sheet or turn) in a
// protein structure and prints them per chain, with PyMOL selections named
// like H_A_1. The structure is classified with mkdssp unless the input is DSSP
// output already.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/weitse-hsu/gmx-utils/gmx"
	"github.com/weitse-hsu/gmx-utils/ss"
	"github.com/weitse-hsu/gmx-utils/util"
)

func main() {
	var (
		input     = flag.String("i", "", "input PDB file, or DSSP output (.dssp)")
		ssType    = flag.String("s", "", "secondary structure class: H (helix), S (sheet) or T (turn)")
		minLength = flag.Int("n", 5, "minimum segment length in residues")
		logFile   = flag.String("l", "identify_ss_domains.log", "log file")
	)
	flag.Parse()
	if *input == "" || len(*ssType) != 1 {
		fmt.Fprintln(os.Stderr, "identify-ss: -i and -s (one of H, S, T) are required")
		flag.Usage()
		os.Exit(2)
	}
	class := (*ssType)[0]

	t0 := time.Now()
	log, err := util.NewLog(*logFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Close()
	log.Printf("Command line: %s\n\n", strings.Join(os.Args, " "))

	assignments, err := assign(*input)
	if err != nil {
		log.Error("reading secondary structure", "file", *input, "err", err)
		os.Exit(1)
	}
	filtered, err := ss.Filter(assignments, class)
	if err != nil {
		log.Error("filtering assignments", "err", err)
		os.Exit(1)
	}
	segments := ss.Segments(filtered, *minLength)

	for _, chain := range ss.Chains(segments) {
		log.Printf("Chain %s:\n", chain)
		for _, seg := range segments {
			if seg.Chain == chain {
				log.Printf("  %s to %s\n", seg.StartLabel, seg.EndLabel)
			}
		}
	}
	for _, chain := range ss.Chains(segments) {
		n := 0
		for _, seg := range segments {
			if seg.Chain != chain {
				continue
			}
			n++
			log.Printf("select %s, %s\n", ss.SelectionName(class, chain, n), seg.PyMOLSelection())
		}
	}

	log.Printf("Elapsed time: %s\n", util.FormatDuration(time.Since(t0)))
}

// assign reads per-residue assignments, running mkdssp when the input is a
// structure file rather than DSSP output.
func assign(input string) ([]ss.Assignment, error) {
	if strings.HasSuffix(input, ".dssp") {
		f, err := os.Open(input)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return ss.ParseDSSP(f)
	}
	_, out, err := gmx.Run(context.Background(), []string{"mkdssp", "-i", input}, "")
	if err != nil {
		return nil, err
	}
	return ss.ParseDSSP(strings.NewReader(out))
}
